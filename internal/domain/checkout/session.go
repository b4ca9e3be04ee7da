package checkout

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// SessionStatus is the host's payment session vocabulary.
type SessionStatus string

const (
	SessionAuthorized SessionStatus = "authorized"
	SessionPending    SessionStatus = "pending"
	SessionCanceled   SessionStatus = "canceled"
	SessionError      SessionStatus = "error"
)

// SessionData is the provider-owned blob persisted on a payment session.
type SessionData map[string]any

// Merge returns a new SessionData with other's keys written over d's.
func (d SessionData) Merge(other map[string]any) SessionData {
	out := make(SessionData, len(d)+len(other))
	for k, v := range d {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// String returns the value at key rendered as a string. Numbers decoded from
// JSON come back as float64 and are printed without exponent.
func (d SessionData) String(key string) string {
	switch v := d[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}

func (d SessionData) Bool(key string) bool {
	b, _ := d[key].(bool)
	return b
}

type PaymentSession struct {
	CartID     string        `json:"cart_id"`
	ProviderID string        `json:"provider_id"`
	IsSelected bool          `json:"is_selected"`
	Status     SessionStatus `json:"status"`
	Data       SessionData   `json:"data"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// PaymentContext is what the host hands to a provider when a session is
// created or refreshed.
type PaymentContext struct {
	ResourceID   string
	CurrencyCode string
	Amount       int64
	Customer     Customer
	Cart         Cart
	SessionData  SessionData
}

type AuthorizeResult struct {
	Status SessionStatus
	Data   SessionData
}

//go:generate mockgen -source session.go -destination mock_provider.go -package checkout

// PaymentProvider is the slice of a payment processor the host cart service
// drives.
type PaymentProvider interface {
	Identifier() string
	Initiate(ctx context.Context, pctx PaymentContext) (SessionData, error)
	Update(ctx context.Context, pctx PaymentContext) (SessionData, error)
	AuthorizePayment(ctx context.Context, data SessionData, authCtx map[string]any) (AuthorizeResult, error)
	GetPaymentStatus(ctx context.Context, data SessionData) (SessionStatus, error)
}
