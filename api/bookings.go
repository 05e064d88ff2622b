package api

import (
	"net/http"

	"github.com/Domenick1991/airportdesk/internal/domain"
	"github.com/Domenick1991/airportdesk/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/add-passenger", h.addPassenger)
	router.POST("/book-a-ticket", h.book)
	router.PUT("/cancel-a-ticket", h.cancel)
	router.GET("/get-count-of-bookings-done-by-a-passenger/:passengerId", h.count)
}

func (h *BookingHandler) addPassenger(c *gin.Context) {
	var passenger domain.Passenger
	if err := c.ShouldBindJSON(&passenger); err != nil {
		badRequest(c, err)
		return
	}
	h.service.AddPassenger(c.Request.Context(), passenger)
	c.String(http.StatusOK, responseSuccess)
}

func (h *BookingHandler) book(c *gin.Context) {
	flightID, passengerID, err := ticketParams(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	result(c, h.service.BookTicket(c.Request.Context(), flightID, passengerID))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	flightID, passengerID, err := ticketParams(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	result(c, h.service.CancelTicket(c.Request.Context(), flightID, passengerID))
}

func (h *BookingHandler) count(c *gin.Context) {
	passengerID, err := int64Param(c.Param("passengerId"), "passengerId")
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.service.CountBookingsByPassenger(c.Request.Context(), passengerID))
}

func ticketParams(c *gin.Context) (int64, int64, error) {
	flightID, err := int64Param(c.Query("flightId"), "flightId")
	if err != nil {
		return 0, 0, err
	}
	passengerID, err := int64Param(c.Query("passengerId"), "passengerId")
	if err != nil {
		return 0, 0, err
	}
	return flightID, passengerID, nil
}
