package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReader struct {
	mock.Mock
}

func (m *MockReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	args := m.Called(ctx)
	return args.Get(0).(kafka.Message), args.Error(1)
}

func (m *MockReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockReader) Close() error {
	args := m.Called()
	return args.Error(0)
}

func newTestConsumer(reader messageReader) *Consumer {
	return &Consumer{reader: reader, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func eventMessage(t *testing.T, offset int64, event BookingEvent) kafka.Message {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return kafka.Message{Offset: offset, Key: []byte(event.Key()), Value: data}
}

func TestConsumer_Consume(t *testing.T) {
	reader := &MockReader{}
	consumer := newTestConsumer(reader)

	ctx := context.Background()
	event := BookingEvent{ID: "e-1", Type: EventTicketBooked, FlightID: 3, PassengerID: 7, Fare: 3050}
	good := eventMessage(t, 1, event)
	bad := kafka.Message{Offset: 2, Value: []byte("{not json")}

	reader.On("FetchMessage", ctx).Return(good, nil).Once()
	reader.On("FetchMessage", ctx).Return(bad, nil).Once()
	reader.On("FetchMessage", ctx).Return(kafka.Message{}, context.Canceled).Once()
	reader.On("CommitMessages", ctx, []kafka.Message{good}).Return(nil).Once()
	reader.On("CommitMessages", ctx, []kafka.Message{bad}).Return(nil).Once()

	var got []BookingEvent
	err := consumer.Consume(ctx, func(_ context.Context, e BookingEvent) error {
		got = append(got, e)
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []BookingEvent{event}, got)
	reader.AssertExpectations(t)
}

// Сообщение не коммитится, если обработчик вернул ошибку
func TestConsumer_Consume_HandlerError(t *testing.T) {
	reader := &MockReader{}
	consumer := newTestConsumer(reader)

	ctx := context.Background()
	msg := eventMessage(t, 5, BookingEvent{ID: "e-2", Type: EventTicketCancelled, FlightID: 3})
	expectedErr := errors.New("redis down")

	reader.On("FetchMessage", ctx).Return(msg, nil).Once()

	err := consumer.Consume(ctx, func(context.Context, BookingEvent) error { return expectedErr })

	assert.ErrorIs(t, err, expectedErr)
	assert.ErrorContains(t, err, "e-2")
	reader.AssertNotCalled(t, "CommitMessages", mock.Anything, mock.Anything)
}

func TestConsumer_Consume_CommitError(t *testing.T) {
	reader := &MockReader{}
	consumer := newTestConsumer(reader)

	ctx := context.Background()
	msg := eventMessage(t, 9, BookingEvent{ID: "e-3", Type: EventTicketBooked})
	expectedErr := errors.New("coordinator gone")

	reader.On("FetchMessage", ctx).Return(msg, nil).Once()
	reader.On("CommitMessages", ctx, []kafka.Message{msg}).Return(expectedErr).Once()

	err := consumer.Consume(ctx, func(context.Context, BookingEvent) error { return nil })

	assert.ErrorIs(t, err, expectedErr)
	reader.AssertExpectations(t)
}

func TestDecodeEvent(t *testing.T) {
	testCases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "booking event", value: `{"id":"e-1","type":"ticket_booked","flight_id":1}`},
		{name: "not json", value: `{`, wantErr: true},
		{name: "missing type", value: `{"id":"e-1"}`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event, err := DecodeEvent(kafka.Message{Value: []byte(tc.value)})
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), event.FlightID)
		})
	}
}

func TestConsumer_CloseNil(t *testing.T) {
	var c *Consumer
	assert.NoError(t, c.Close())
}
