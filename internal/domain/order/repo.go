package order

import (
	"context"
	"time"

	"MercadoPagoBridge/internal/domain/checkout"
)

//go:generate mockgen -source repo.go -destination mock_repo.go -package order

type OrderRepo interface {
	// GetByCartID returns ErrNotFound when the cart has no order.
	GetByCartID(ctx context.Context, cartID string) (Order, error)
	// Create returns ErrAlreadyExists when an order for the same cart exists.
	Create(ctx context.Context, o Order) error
}

// CartSource is the part of the cart store an order is built from.
type CartSource interface {
	GetCart(ctx context.Context, id string, forUpdate bool) (checkout.Cart, error)
	GetSelectedPaymentSession(ctx context.Context, cartID string) (checkout.PaymentSession, error)
	MarkCompleted(ctx context.Context, cartID string, at time.Time) error
}
