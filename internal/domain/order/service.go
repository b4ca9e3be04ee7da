package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type OrderService struct {
	repo  OrderRepo
	carts CartSource
	now   func() time.Time
}

func NewOrderService(repo OrderRepo, carts CartSource) *OrderService {
	return &OrderService{
		repo:  repo,
		carts: carts,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *OrderService) RetrieveByCartID(ctx context.Context, cartID string) (Order, error) {
	o, err := s.repo.GetByCartID(ctx, cartID)
	if err != nil {
		return Order{}, fmt.Errorf("get order by cart: %w", err)
	}
	return o, nil
}

// CreateFromCart turns a cart with an authorized payment into an order and
// completes the cart. Both writes must share the caller's transaction.
func (s *OrderService) CreateFromCart(ctx context.Context, cartID string) (Order, error) {
	cart, err := s.carts.GetCart(ctx, cartID, false)
	if err != nil {
		return Order{}, fmt.Errorf("get cart: %w", err)
	}
	if cart.CompletedAt != nil {
		return Order{}, ErrAlreadyExists
	}
	if !cart.IsPaymentAuthorized() {
		return Order{}, ErrPaymentNotAuthorized
	}

	session, err := s.carts.GetSelectedPaymentSession(ctx, cartID)
	if err != nil {
		return Order{}, fmt.Errorf("get payment session: %w", err)
	}

	cart = cart.WithTotals()
	o := Order{
		ID:                uuid.New(),
		CartID:            cart.ID,
		CurrencyCode:      cart.CurrencyCode,
		Total:             cart.Total,
		ProviderID:        session.ProviderID,
		ProviderPaymentID: session.Data.String("id"),
		Status:            StatusPending,
		CreatedAt:         s.now(),
	}

	if err := s.repo.Create(ctx, o); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return Order{}, ErrAlreadyExists
		}
		return Order{}, fmt.Errorf("create order: %w", err)
	}

	if err := s.carts.MarkCompleted(ctx, cartID, o.CreatedAt); err != nil {
		return Order{}, fmt.Errorf("complete cart: %w", err)
	}
	return o, nil
}
