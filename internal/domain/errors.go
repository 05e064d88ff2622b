package domain

import "errors"

var (
	ErrFlightNotFound    = errors.New("flight not found")
	ErrPassengerNotFound = errors.New("passenger not found")
	ErrAirportNotFound   = errors.New("airport not found")

	ErrFlightFull    = errors.New("flight is at maximum capacity")
	ErrAlreadyBooked = errors.New("passenger already booked on this flight")
	ErrNotBooked     = errors.New("passenger has no booking on this flight")

	ErrUnknownCity = errors.New("unknown city")
	ErrInvalidDate = errors.New("invalid date")
)
