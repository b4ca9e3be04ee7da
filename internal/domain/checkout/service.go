package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// CartService is the host side of a checkout: it owns carts and their payment
// sessions and drives the configured PaymentProvider.
type CartService struct {
	repo     CartRepo
	provider PaymentProvider
	now      func() time.Time
}

func NewCartService(repo CartRepo, provider PaymentProvider) *CartService {
	return &CartService{
		repo:     repo,
		provider: provider,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *CartService) Retrieve(ctx context.Context, id string) (Cart, error) {
	cart, err := s.repo.GetCart(ctx, id, false)
	if err != nil {
		return Cart{}, fmt.Errorf("get cart: %w", err)
	}
	return cart, nil
}

// RetrieveForUpdate loads the cart and keeps its row locked for the rest of
// the surrounding transaction.
func (s *CartService) RetrieveForUpdate(ctx context.Context, id string) (Cart, error) {
	cart, err := s.repo.GetCart(ctx, id, true)
	if err != nil {
		return Cart{}, fmt.Errorf("lock cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) RetrieveWithTotals(ctx context.Context, id string) (Cart, error) {
	cart, err := s.Retrieve(ctx, id)
	if err != nil {
		return Cart{}, err
	}
	return cart.WithTotals(), nil
}

// SetPaymentSession makes providerID the selected payment session of the
// cart, creating an empty session first when there is none.
func (s *CartService) SetPaymentSession(ctx context.Context, cartID, providerID string) error {
	if providerID != s.provider.Identifier() {
		return fmt.Errorf("%w: %s", ErrUnknownProvider, providerID)
	}

	_, err := s.repo.GetPaymentSession(ctx, cartID, providerID)
	if errors.Is(err, ErrSessionNotFound) {
		err = s.repo.UpsertPaymentSession(ctx, PaymentSession{
			CartID:     cartID,
			ProviderID: providerID,
			Status:     SessionPending,
			Data:       SessionData{},
			UpdatedAt:  s.now(),
		})
		if err != nil {
			return fmt.Errorf("create payment session: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("get payment session: %w", err)
	}

	if err := s.repo.SelectPaymentSession(ctx, cartID, providerID); err != nil {
		return fmt.Errorf("select payment session: %w", err)
	}
	return nil
}

// AuthorizePayment asks the provider to authorize the selected session and
// stores the outcome. The cart is stamped as authorized only when the
// provider reports SessionAuthorized.
func (s *CartService) AuthorizePayment(ctx context.Context, cartID string, authCtx map[string]any) (PaymentSession, error) {
	session, err := s.repo.GetSelectedPaymentSession(ctx, cartID)
	if err != nil {
		return PaymentSession{}, fmt.Errorf("get selected payment session: %w", err)
	}

	result, err := s.provider.AuthorizePayment(ctx, session.Data, authCtx)
	if err != nil {
		return PaymentSession{}, fmt.Errorf("authorize payment: %w", err)
	}

	session.Status = result.Status
	session.Data = result.Data
	session.UpdatedAt = s.now()
	if err := s.repo.UpsertPaymentSession(ctx, session); err != nil {
		return PaymentSession{}, fmt.Errorf("store payment session: %w", err)
	}

	if result.Status == SessionAuthorized {
		if err := s.repo.MarkPaymentAuthorized(ctx, cartID, session.UpdatedAt); err != nil {
			return PaymentSession{}, fmt.Errorf("mark payment authorized: %w", err)
		}
	}
	return session, nil
}

// InitiatePaymentSession creates a provider checkout for the cart and stores
// it as the selected session.
func (s *CartService) InitiatePaymentSession(ctx context.Context, cartID string) (PaymentSession, error) {
	cart, err := s.openCart(ctx, cartID)
	if err != nil {
		return PaymentSession{}, err
	}

	data, err := s.provider.Initiate(ctx, paymentContext(cart, nil))
	if err != nil {
		return PaymentSession{}, fmt.Errorf("initiate payment: %w", err)
	}

	session := PaymentSession{
		CartID:     cart.ID,
		ProviderID: s.provider.Identifier(),
		IsSelected: true,
		Status:     SessionPending,
		Data:       data,
		UpdatedAt:  s.now(),
	}
	if err := s.repo.UpsertPaymentSession(ctx, session); err != nil {
		return PaymentSession{}, fmt.Errorf("store payment session: %w", err)
	}
	if err := s.repo.SelectPaymentSession(ctx, cart.ID, session.ProviderID); err != nil {
		return PaymentSession{}, fmt.Errorf("select payment session: %w", err)
	}
	return session, nil
}

// UpdatePaymentSession pushes the cart's current items to the provider
// checkout created by InitiatePaymentSession.
func (s *CartService) UpdatePaymentSession(ctx context.Context, cartID string) (PaymentSession, error) {
	cart, err := s.openCart(ctx, cartID)
	if err != nil {
		return PaymentSession{}, err
	}

	session, err := s.repo.GetPaymentSession(ctx, cartID, s.provider.Identifier())
	if errors.Is(err, ErrSessionNotFound) {
		session = PaymentSession{
			CartID:     cartID,
			ProviderID: s.provider.Identifier(),
			Status:     SessionPending,
			Data:       SessionData{},
		}
	} else if err != nil {
		return PaymentSession{}, fmt.Errorf("get payment session: %w", err)
	}

	data, err := s.provider.Update(ctx, paymentContext(cart, session.Data))
	if err != nil {
		return PaymentSession{}, fmt.Errorf("update payment: %w", err)
	}

	session.Data = session.Data.Merge(data)
	session.UpdatedAt = s.now()
	if err := s.repo.UpsertPaymentSession(ctx, session); err != nil {
		return PaymentSession{}, fmt.Errorf("store payment session: %w", err)
	}
	return session, nil
}

// GetPaymentSession returns the provider session with its status derived
// from the stored session data.
func (s *CartService) GetPaymentSession(ctx context.Context, cartID string) (PaymentSession, error) {
	session, err := s.repo.GetPaymentSession(ctx, cartID, s.provider.Identifier())
	if err != nil {
		return PaymentSession{}, fmt.Errorf("get payment session: %w", err)
	}

	status, err := s.provider.GetPaymentStatus(ctx, session.Data)
	if err != nil {
		return PaymentSession{}, fmt.Errorf("get payment status: %w", err)
	}
	session.Status = status
	return session, nil
}

func (s *CartService) openCart(ctx context.Context, cartID string) (Cart, error) {
	cart, err := s.RetrieveWithTotals(ctx, cartID)
	if err != nil {
		return Cart{}, err
	}
	if cart.CompletedAt != nil {
		return Cart{}, ErrCartCompleted
	}
	return cart, nil
}

func paymentContext(cart Cart, data SessionData) PaymentContext {
	if data == nil {
		data = SessionData{}
	}
	return PaymentContext{
		ResourceID:   cart.ID,
		CurrencyCode: cart.CurrencyCode,
		Amount:       cart.Total,
		Customer:     cart.Customer,
		Cart:         cart,
		SessionData:  data,
	}
}
