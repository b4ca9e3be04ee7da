package order

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID                uuid.UUID `json:"id"`
	CartID            string    `json:"cart_id"`
	CurrencyCode      string    `json:"currency_code"`
	Total             int64     `json:"total"`
	ProviderID        string    `json:"provider_id"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
	Status            Status    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

type Status string

const (
	// StatusPending orders have an authorized payment that is not captured yet.
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)
