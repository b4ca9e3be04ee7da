package message

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"MercadoPagoBridge/internal/domain/checkout"
	"MercadoPagoBridge/internal/domain/notification"
	"MercadoPagoBridge/internal/messaging"
)

type NotificationHandler interface {
	Handle(ctx context.Context, n notification.Notification) (notification.Outcome, error)
}

// NotificationMessageController handles Mercado Pago notifications queued by
// the webhook in async mode.
type NotificationMessageController struct {
	service NotificationHandler
}

func NewNotificationMessageController(s NotificationHandler) *NotificationMessageController {
	return &NotificationMessageController{service: s}
}

// HandleMessage processes one queued notification. Failures that redelivery
// cannot fix are marked permanent so they go straight to the DLQ.
func (c *NotificationMessageController) HandleMessage(ctx context.Context, key, value []byte) error {
	var env messaging.Envelope
	if err := json.Unmarshal(value, &env); err != nil {
		slog.ErrorContext(ctx, "Failed to unmarshal envelope", "key", string(key), slog.Any("error", err))
		return messaging.Permanent(fmt.Errorf("unmarshal envelope: %w", err))
	}

	slog.DebugContext(ctx, "Processing notification message",
		"event_id", env.EventID,
		"key", env.Key,
		"type", env.Type)

	var n notification.Notification
	if err := env.Decode(&n); err != nil {
		slog.ErrorContext(ctx, "Failed to unmarshal notification payload",
			"event_id", env.EventID, slog.Any("error", err))
		return messaging.Permanent(fmt.Errorf("unmarshal notification: %w", err))
	}

	outcome, err := c.service.Handle(ctx, n)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to process notification",
			"event_id", env.EventID,
			"payment_id", n.PaymentID,
			slog.Any("error", err))
		if isPermanent(err) {
			return messaging.Permanent(err)
		}
		return err
	}

	slog.InfoContext(ctx, "Notification processed",
		"event_id", env.EventID,
		"payment_id", n.PaymentID,
		"outcome", string(outcome))
	return nil
}

func isPermanent(err error) bool {
	return errors.Is(err, notification.ErrCorrelation) ||
		errors.Is(err, checkout.ErrCartNotFound)
}
