package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/Domenick1991/airportdesk/internal/domain"
	"github.com/Domenick1991/airportdesk/internal/kafka"
	"github.com/Domenick1991/airportdesk/internal/repository"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	AddPassenger(ctx context.Context, passenger domain.Passenger)
	BookTicket(ctx context.Context, flightID, passengerID int64) error
	CancelTicket(ctx context.Context, flightID, passengerID int64) error
	CountBookingsByPassenger(ctx context.Context, passengerID int64) int
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	repo         repository.BookingRepository
	producer     Producer
	bookingTopic string
	logger       *slog.Logger
	now          func() time.Time
}

type BookingServiceOption func(*BookingService)

func WithLogger(logger *slog.Logger) BookingServiceOption {
	return func(s *BookingService) {
		s.logger = logger
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

// NewBookingService wires the store to an optional event producer. A nil
// producer or an empty topic disables publishing.
func NewBookingService(
	repo repository.BookingRepository,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		repo:         repo,
		producer:     producer,
		bookingTopic: bookingTopic,
		logger:       slog.Default(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) AddPassenger(_ context.Context, passenger domain.Passenger) {
	s.repo.AddPassenger(passenger)
}

func (s *BookingService) BookTicket(ctx context.Context, flightID, passengerID int64) error {
	fare := s.repo.CalculateFare(flightID)
	if err := s.repo.BookTicket(flightID, passengerID); err != nil {
		s.logger.Debug("booking rejected", "flight_id", flightID, "passenger_id", passengerID, "error", err)
		return err
	}

	s.publish(ctx, kafka.EventTicketBooked, flightID, passengerID, fare)
	return nil
}

func (s *BookingService) CancelTicket(ctx context.Context, flightID, passengerID int64) error {
	if err := s.repo.CancelTicket(flightID, passengerID); err != nil {
		return err
	}

	s.publish(ctx, kafka.EventTicketCancelled, flightID, passengerID, 0)
	return nil
}

func (s *BookingService) CountBookingsByPassenger(_ context.Context, passengerID int64) int {
	return s.repo.CountBookingsByPassenger(passengerID)
}

// publish is best-effort; the booking already happened, so failures are only logged.
func (s *BookingService) publish(ctx context.Context, eventType string, flightID, passengerID int64, fare int) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}

	event := kafka.BookingEvent{
		ID:          uuid.NewString(),
		Type:        eventType,
		FlightID:    flightID,
		PassengerID: passengerID,
		Fare:        fare,
		OccurredAt:  s.now().UTC(),
	}
	if p, ok := s.repo.GetPassenger(passengerID); ok {
		event.PassengerName = p.Name
		event.Email = p.Email
	}

	if err := s.producer.Publish(ctx, s.bookingTopic, event.Key(), event); err != nil {
		s.logger.Warn("failed to publish booking event",
			"type", eventType,
			"flight_id", flightID,
			"passenger_id", passengerID,
			"error", err,
		)
	}
}

var _ BookingUseCase = (*BookingService)(nil)
