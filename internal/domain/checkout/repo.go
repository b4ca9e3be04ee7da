package checkout

import (
	"context"
	"time"
)

//go:generate mockgen -source repo.go -destination mock_repo.go -package checkout

// CartRepo is bound to either the pool or a running transaction.
type CartRepo interface {
	// GetCart returns ErrCartNotFound when the cart does not exist. With
	// forUpdate the cart row stays locked until the transaction ends.
	GetCart(ctx context.Context, id string, forUpdate bool) (Cart, error)
	MarkPaymentAuthorized(ctx context.Context, cartID string, at time.Time) error
	MarkCompleted(ctx context.Context, cartID string, at time.Time) error

	// GetPaymentSession returns ErrSessionNotFound when absent.
	GetPaymentSession(ctx context.Context, cartID, providerID string) (PaymentSession, error)
	GetSelectedPaymentSession(ctx context.Context, cartID string) (PaymentSession, error)
	UpsertPaymentSession(ctx context.Context, session PaymentSession) error
	SelectPaymentSession(ctx context.Context, cartID, providerID string) error
}
