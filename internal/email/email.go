package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Domenick1991/airportdesk/internal/kafka"
)

type Sender struct {
	logger *slog.Logger
}

func NewSender(logger *slog.Logger) *Sender {
	return &Sender{logger: logger}
}

// Send delivers the notification for event. Delivery is a log line for now.
func (s *Sender) Send(_ context.Context, event kafka.BookingEvent) error {
	s.logger.Info("send email",
		"to", event.Email,
		"subject", Subject(event),
		"passenger", event.PassengerName,
	)
	return nil
}

func Subject(event kafka.BookingEvent) string {
	switch event.Type {
	case kafka.EventTicketBooked:
		return fmt.Sprintf("Ticket booked on flight %d, fare %d", event.FlightID, event.Fare)
	case kafka.EventTicketCancelled:
		return fmt.Sprintf("Ticket on flight %d cancelled", event.FlightID)
	default:
		return fmt.Sprintf("Update for flight %d", event.FlightID)
	}
}
