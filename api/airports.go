package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/airportdesk/internal/domain"
	"github.com/Domenick1991/airportdesk/internal/service/airports"
	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	service airports.AirportUseCase
}

func NewAirportHandler(service airports.AirportUseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.POST("/add_airport", h.add)
	router.GET("/get-largest-aiport", h.largest)
	router.GET("/get-number-of-people-on-airport-on/:date", h.peopleOn)
	router.GET("/get-aiportName-from-flight-takeoff/:flightId", h.originAirport)
}

func (h *AirportHandler) add(c *gin.Context) {
	var airport domain.Airport
	if err := c.ShouldBindJSON(&airport); err != nil {
		badRequest(c, err)
		return
	}
	h.service.AddAirport(c.Request.Context(), airport)
	c.String(http.StatusOK, responseSuccess)
}

func (h *AirportHandler) largest(c *gin.Context) {
	airportName, ok := h.service.LargestAirportName(c.Request.Context())
	nameResult(c, airportName, ok)
}

func (h *AirportHandler) peopleOn(c *gin.Context) {
	date, err := domain.ParseDate(c.Param("date"))
	if err != nil {
		badRequest(c, err)
		return
	}
	airportName := c.Query("airportName")
	if airportName == "" {
		badRequest(c, errors.New("airportName is required"))
		return
	}
	c.JSON(http.StatusOK, h.service.PeopleAtAirportOnDate(c.Request.Context(), date, airportName))
}

func (h *AirportHandler) originAirport(c *gin.Context) {
	flightID, err := int64Param(c.Param("flightId"), "flightId")
	if err != nil {
		badRequest(c, err)
		return
	}
	airportName, ok := h.service.OriginAirportName(c.Request.Context(), flightID)
	nameResult(c, airportName, ok)
}
