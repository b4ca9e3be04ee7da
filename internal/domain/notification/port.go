package notification

import (
	"context"

	"MercadoPagoBridge/internal/domain/checkout"
	"MercadoPagoBridge/internal/domain/gateway"
	"MercadoPagoBridge/internal/domain/order"
)

//go:generate mockgen -source port.go -destination mock_port.go -package notification

type PaymentResolver interface {
	ResolvePayment(ctx context.Context, paymentID string) (gateway.Payment, error)
}

type CartService interface {
	RetrieveForUpdate(ctx context.Context, id string) (checkout.Cart, error)
	SetPaymentSession(ctx context.Context, cartID, providerID string) error
	AuthorizePayment(ctx context.Context, cartID string, authCtx map[string]any) (checkout.PaymentSession, error)
}

type OrderService interface {
	RetrieveByCartID(ctx context.Context, cartID string) (order.Order, error)
	CreateFromCart(ctx context.Context, cartID string) (order.Order, error)
}

// Services are the host services bound to one transaction.
type Services struct {
	Carts  CartService
	Orders OrderService
}

// Transactor runs fn in a single host transaction. An error returned by fn
// rolls back everything fn did.
type Transactor interface {
	InTransaction(ctx context.Context, fn func(s Services) error) error
}
