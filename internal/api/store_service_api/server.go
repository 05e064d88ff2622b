package store_service_api

import (
	"context"

	"github.com/Domenick1991/airportdesk/internal/service/airports"
	"github.com/Domenick1991/airportdesk/internal/service/booking"
	"github.com/Domenick1991/airportdesk/internal/service/flights"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Server implements StoreServiceServer on top of the use cases.
type Server struct {
	airports airports.AirportUseCase
	flights  flights.FlightUseCase
	bookings booking.BookingUseCase
}

func NewServer(airports airports.AirportUseCase, flights flights.FlightUseCase, bookings booking.BookingUseCase) *Server {
	return &Server{airports: airports, flights: flights, bookings: bookings}
}

func (s *Server) LargestAirport(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	name, ok := s.airports.LargestAirportName(ctx)
	if !ok {
		return nil, status.Error(codes.NotFound, "no airports")
	}
	return wrapperspb.String(name), nil
}

func (s *Server) CalculateFare(ctx context.Context, req *wrapperspb.Int64Value) (*wrapperspb.Int64Value, error) {
	return wrapperspb.Int64(int64(s.flights.CalculateFare(ctx, req.GetValue()))), nil
}

func (s *Server) RevenueForFlight(ctx context.Context, req *wrapperspb.Int64Value) (*wrapperspb.Int64Value, error) {
	return wrapperspb.Int64(int64(s.flights.RevenueForFlight(ctx, req.GetValue()))), nil
}

func (s *Server) CountBookingsByPassenger(ctx context.Context, req *wrapperspb.Int64Value) (*wrapperspb.Int64Value, error) {
	return wrapperspb.Int64(int64(s.bookings.CountBookingsByPassenger(ctx, req.GetValue()))), nil
}

var _ StoreServiceServer = (*Server)(nil)
