package email

import (
	"context"
	"log/slog"

	"github.com/Domenick1991/airportdesk/internal/kafka"
)

type Deduper interface {
	ClaimEvent(ctx context.Context, eventID string) (bool, error)
	ReleaseEvent(ctx context.Context, eventID string) error
}

type EventSender interface {
	Send(ctx context.Context, event kafka.BookingEvent) error
}

// Notifier turns booking events into passenger notifications, at most once per event id.
type Notifier struct {
	dedupe Deduper
	sender EventSender
	logger *slog.Logger
}

func NewNotifier(dedupe Deduper, sender EventSender, logger *slog.Logger) *Notifier {
	return &Notifier{dedupe: dedupe, sender: sender, logger: logger}
}

// HandleEvent is a kafka.EventHandler. Returning an error stops the consumer
// before the offset is committed, so only dedupe store failures are returned.
func (n *Notifier) HandleEvent(ctx context.Context, event kafka.BookingEvent) error {
	if event.Email == "" {
		return nil
	}

	if n.dedupe != nil && event.ID != "" {
		claimed, err := n.dedupe.ClaimEvent(ctx, event.ID)
		if err != nil {
			return err
		}
		if !claimed {
			n.logger.Debug("duplicate event skipped", "id", event.ID)
			return nil
		}
	}

	if err := n.sender.Send(ctx, event); err != nil {
		n.logger.Error("send notification failed", "id", event.ID, "error", err)
		n.release(ctx, event.ID)
	}
	return nil
}

// release drops the claim so a redelivery can retry the send.
func (n *Notifier) release(ctx context.Context, eventID string) {
	if n.dedupe == nil || eventID == "" {
		return
	}
	if err := n.dedupe.ReleaseEvent(ctx, eventID); err != nil {
		n.logger.Warn("release event claim failed", "id", eventID, "error", err)
	}
}
