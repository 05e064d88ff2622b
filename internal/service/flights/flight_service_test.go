package flights

import (
	"context"
	"testing"

	"github.com/Domenick1991/airportdesk/internal/domain"
	"github.com/Domenick1991/airportdesk/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) AddFlight(flight domain.Flight) {
	m.Called(flight)
}

func (m *MockFlightRepository) ShortestDirectDuration(from, to domain.City) (float64, bool) {
	args := m.Called(from, to)
	return args.Get(0).(float64), args.Bool(1)
}

func (m *MockFlightRepository) CalculateFare(flightID int64) int {
	args := m.Called(flightID)
	return args.Int(0)
}

func (m *MockFlightRepository) RevenueForFlight(flightID int64) int {
	args := m.Called(flightID)
	return args.Int(0)
}

func TestFlightService_Delegates(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo)

	ctx := context.Background()
	flight := domain.Flight{ID: 4, FromCity: domain.CityDelhi, ToCity: domain.CityMumbai, Duration: 2.5, MaxCapacity: 150}

	mockRepo.On("AddFlight", flight).Once()
	mockRepo.On("ShortestDirectDuration", domain.CityDelhi, domain.CityMumbai).Return(2.5, true).Once()
	mockRepo.On("CalculateFare", int64(4)).Return(3100).Once()
	mockRepo.On("RevenueForFlight", int64(4)).Return(6100).Once()

	service.AddFlight(ctx, flight)

	d, ok := service.ShortestDirectDuration(ctx, domain.CityDelhi, domain.CityMumbai)
	assert.True(t, ok)
	assert.Equal(t, 2.5, d)
	assert.Equal(t, 3100, service.CalculateFare(ctx, 4))
	assert.Equal(t, 6100, service.RevenueForFlight(ctx, 4))

	mockRepo.AssertExpectations(t)
}

func TestFlightService_NoDirectFlight(t *testing.T) {
	service := NewFlightService(repository.NewBookingStore())

	d, ok := service.ShortestDirectDuration(context.Background(), domain.CityParis, domain.CityTokyo)

	assert.False(t, ok)
	assert.Equal(t, float64(-1), d)
}
