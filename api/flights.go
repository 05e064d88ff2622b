package api

import (
	"net/http"

	"github.com/Domenick1991/airportdesk/internal/domain"
	"github.com/Domenick1991/airportdesk/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.POST("/add-flight", h.add)
	router.GET("/get-shortest-time-travel-between-cities", h.shortest)
	router.GET("/calculate-fare", h.fare)
	router.GET("/calculate-revenue-collected/:flightId", h.revenue)
}

func (h *FlightHandler) add(c *gin.Context) {
	var flight domain.Flight
	if err := c.ShouldBindJSON(&flight); err != nil {
		badRequest(c, err)
		return
	}
	h.service.AddFlight(c.Request.Context(), flight)
	c.String(http.StatusOK, responseSuccess)
}

func (h *FlightHandler) shortest(c *gin.Context) {
	from, err := domain.ParseCity(c.Query("fromCity"))
	if err != nil {
		badRequest(c, err)
		return
	}
	to, err := domain.ParseCity(c.Query("toCity"))
	if err != nil {
		badRequest(c, err)
		return
	}
	duration, _ := h.service.ShortestDirectDuration(c.Request.Context(), from, to)
	c.JSON(http.StatusOK, duration)
}

func (h *FlightHandler) fare(c *gin.Context) {
	flightID, err := int64Param(c.Query("flightId"), "flightId")
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.service.CalculateFare(c.Request.Context(), flightID))
}

func (h *FlightHandler) revenue(c *gin.Context) {
	flightID, err := int64Param(c.Param("flightId"), "flightId")
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.service.RevenueForFlight(c.Request.Context(), flightID))
}
