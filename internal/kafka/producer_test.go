package kafka

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingEvent_JSON(t *testing.T) {
	event := BookingEvent{
		ID:          "e-1",
		Type:        EventTicketBooked,
		FlightID:    12,
		PassengerID: 7,
		Fare:        3050,
		OccurredAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"ticket_booked"`)
	assert.NotContains(t, string(data), `"email"`)
	assert.Equal(t, "12", event.Key())
}

func TestProducer_CheckConnection_NoBrokers(t *testing.T) {
	p := NewProducer(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer p.Close()

	assert.Error(t, p.CheckConnection(context.Background()))
}
