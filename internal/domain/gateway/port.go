package gateway

import (
	"context"
	"errors"
	"fmt"
)

//go:generate mockgen -source port.go -destination mock_port.go -package gateway

// Gateway is the Mercado Pago REST surface the processor relies on.
type Gateway interface {
	CreatePreference(ctx context.Context, req PreferenceRequest) (PreferenceResponse, error)
	UpdatePreference(ctx context.Context, id string, req PreferenceRequest) (PreferenceResponse, error)
	GetPayment(ctx context.Context, id string) (Payment, error)
	SearchPayments(ctx context.Context, query PaymentSearch) ([]Payment, error)
}

type PreferenceRequest struct {
	Items             []Item   `json:"items"`
	Payer             Payer    `json:"payer"`
	NotificationURL   string   `json:"notification_url,omitempty"`
	ExternalReference string   `json:"external_reference,omitempty"`
	BackURLs          BackURLs `json:"back_urls"`
}

type Item struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	CurrencyID  string  `json:"currency_id"`
	UnitPrice   float64 `json:"unit_price"`
}

type Payer struct {
	Name    string `json:"name,omitempty"`
	Surname string `json:"surname,omitempty"`
	Email   string `json:"email,omitempty"`
}

type BackURLs struct {
	Success string `json:"success,omitempty"`
	Pending string `json:"pending,omitempty"`
	Failure string `json:"failure,omitempty"`
}

type PreferenceResponse struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

// Payment carries the fields the bridge reads plus the full provider
// document in Raw.
type Payment struct {
	ID                int64          `json:"id"`
	Status            string         `json:"status"`
	StatusDetail      string         `json:"status_detail"`
	ExternalReference string         `json:"external_reference"`
	TransactionAmount float64        `json:"transaction_amount"`
	CurrencyID        string         `json:"currency_id"`
	Captured          bool           `json:"captured"`
	Raw               map[string]any `json:"-"`
}

type PaymentSearch struct {
	ExternalReference string `url:"external_reference,omitempty"`
	Sort              string `url:"sort,omitempty"`
	Criteria          string `url:"criteria,omitempty"`
	Limit             int    `url:"limit,omitempty"`
	Offset            int    `url:"offset,omitempty"`
}

// APIError is a non-2xx response from Mercado Pago.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"error"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mercadopago: %d %s: %s", e.Status, e.Code, e.Message)
}

// AsAPIError unwraps err to an APIError when it carries one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
