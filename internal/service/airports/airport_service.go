package airports

import (
	"context"

	"github.com/Domenick1991/airportdesk/internal/domain"
	"github.com/Domenick1991/airportdesk/internal/repository"
)

type AirportUseCase interface {
	AddAirport(ctx context.Context, airport domain.Airport)
	LargestAirportName(ctx context.Context) (string, bool)
	PeopleAtAirportOnDate(ctx context.Context, date domain.Date, airportName string) int
	OriginAirportName(ctx context.Context, flightID int64) (string, bool)
}

type AirportService struct {
	repo repository.AirportRepository
}

func NewAirportService(repo repository.AirportRepository) *AirportService {
	return &AirportService{repo: repo}
}

func (s *AirportService) AddAirport(_ context.Context, airport domain.Airport) {
	s.repo.AddAirport(airport)
}

func (s *AirportService) LargestAirportName(_ context.Context) (string, bool) {
	return s.repo.LargestAirportName()
}

func (s *AirportService) PeopleAtAirportOnDate(_ context.Context, date domain.Date, airportName string) int {
	return s.repo.PeopleAtAirportOnDate(date, airportName)
}

func (s *AirportService) OriginAirportName(_ context.Context, flightID int64) (string, bool) {
	return s.repo.OriginAirportName(flightID)
}

var _ AirportUseCase = (*AirportService)(nil)
