package checkout_repo

import (
	"encoding/json"
	"fmt"
	"time"

	"MercadoPagoBridge/internal/domain/checkout"
)

var cartColumns = []string{
	"id", "type", "currency_code",
	"customer_first_name", "customer_last_name", "customer_email",
	"payment_authorized_at", "completed_at", "created_at", "updated_at",
}

var lineItemColumns = []string{"id", "title", "description", "quantity", "unit_price"}

var sessionColumns = []string{"cart_id", "provider_id", "is_selected", "status", "data", "updated_at"}

type Cart struct {
	ID                  string
	Type                string
	CurrencyCode        string
	FirstName           string
	LastName            string
	Email               string
	PaymentAuthorizedAt *time.Time
	CompletedAt         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (m Cart) toDomain(items []checkout.LineItem) checkout.Cart {
	return checkout.Cart{
		ID:           m.ID,
		Type:         checkout.CartType(m.Type),
		CurrencyCode: m.CurrencyCode,
		Customer: checkout.Customer{
			FirstName: m.FirstName,
			LastName:  m.LastName,
			Email:     m.Email,
		},
		Items:               items,
		PaymentAuthorizedAt: m.PaymentAuthorizedAt,
		CompletedAt:         m.CompletedAt,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

type PaymentSession struct {
	CartID     string
	ProviderID string
	IsSelected bool
	Status     string
	Data       []byte
	UpdatedAt  time.Time
}

func (m PaymentSession) toDomain() (checkout.PaymentSession, error) {
	data := checkout.SessionData{}
	if len(m.Data) > 0 {
		if err := json.Unmarshal(m.Data, &data); err != nil {
			return checkout.PaymentSession{}, fmt.Errorf("decode session data: %w", err)
		}
	}
	return checkout.PaymentSession{
		CartID:     m.CartID,
		ProviderID: m.ProviderID,
		IsSelected: m.IsSelected,
		Status:     checkout.SessionStatus(m.Status),
		Data:       data,
		UpdatedAt:  m.UpdatedAt,
	}, nil
}
