package flights

import (
	"context"

	"github.com/Domenick1991/airportdesk/internal/domain"
	"github.com/Domenick1991/airportdesk/internal/repository"
)

type FlightUseCase interface {
	AddFlight(ctx context.Context, flight domain.Flight)
	ShortestDirectDuration(ctx context.Context, from, to domain.City) (float64, bool)
	CalculateFare(ctx context.Context, flightID int64) int
	RevenueForFlight(ctx context.Context, flightID int64) int
}

type FlightService struct {
	repo repository.FlightRepository
}

func NewFlightService(repo repository.FlightRepository) *FlightService {
	return &FlightService{repo: repo}
}

func (s *FlightService) AddFlight(_ context.Context, flight domain.Flight) {
	s.repo.AddFlight(flight)
}

func (s *FlightService) ShortestDirectDuration(_ context.Context, from, to domain.City) (float64, bool) {
	return s.repo.ShortestDirectDuration(from, to)
}

func (s *FlightService) CalculateFare(_ context.Context, flightID int64) int {
	return s.repo.CalculateFare(flightID)
}

func (s *FlightService) RevenueForFlight(_ context.Context, flightID int64) int {
	return s.repo.RevenueForFlight(flightID)
}

var _ FlightUseCase = (*FlightService)(nil)
