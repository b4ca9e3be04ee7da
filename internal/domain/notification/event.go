package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event is the audit record of one handled notification.
type Event struct {
	ID         uuid.UUID `json:"id"`
	PaymentID  string    `json:"payment_id"`
	Type       string    `json:"type"`
	Action     string    `json:"action"`
	CartID     string    `json:"cart_id,omitempty"`
	Outcome    string    `json:"outcome"`
	Error      string    `json:"error,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}

type EventQuery struct {
	CartID    string
	PaymentID string
	Limit     int
}

//go:generate mockgen -source event.go -destination mock_event.go -package notification

type EventSink interface {
	Record(ctx context.Context, event Event) error
	List(ctx context.Context, query EventQuery) ([]Event, error)
}
