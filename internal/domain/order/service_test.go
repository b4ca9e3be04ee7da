package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"MercadoPagoBridge/internal/domain/checkout"
	"MercadoPagoBridge/pkg/pointers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

func orderService(t *testing.T) (*OrderService, *MockOrderRepo, *MockCartSource) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := NewMockOrderRepo(ctrl)
	carts := NewMockCartSource(ctrl)

	service := NewOrderService(repo, carts)
	service.now = func() time.Time { return fixedNow }

	return service, repo, carts
}

func authorizedCart() checkout.Cart {
	return checkout.Cart{
		ID:                  "cart_1",
		Type:                checkout.CartTypeDefault,
		CurrencyCode:        "usd",
		Items:               []checkout.LineItem{{ID: "item_1", Quantity: 2, UnitPrice: 1000}},
		PaymentAuthorizedAt: pointers.Ptr(fixedNow.Add(-time.Minute)),
	}
}

func TestOrderService_RetrieveByCartID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	existing := Order{CartID: "cart_1", Status: StatusPending}

	testCases := []struct {
		name          string
		mock          func(repo *MockOrderRepo)
		expectedOrder Order
		expectedError error
	}{
		{
			name: "should return order when found",
			mock: func(repo *MockOrderRepo) {
				repo.EXPECT().GetByCartID(ctx, "cart_1").Return(existing, nil)
			},
			expectedOrder: existing,
		},
		{
			name: "should return ErrNotFound when cart has no order",
			mock: func(repo *MockOrderRepo) {
				repo.EXPECT().GetByCartID(ctx, "cart_1").Return(Order{}, ErrNotFound)
			},
			expectedError: ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service, repo, _ := orderService(t)
			tc.mock(repo)

			// when
			result, err := service.RetrieveByCartID(ctx, "cart_1")

			// then
			assert.Equal(t, tc.expectedOrder, result)
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderService_CreateFromCart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	session := checkout.PaymentSession{
		CartID:     "cart_1",
		ProviderID: "mercadopago",
		IsSelected: true,
		Status:     checkout.SessionAuthorized,
		Data:       checkout.SessionData{"id": float64(555)},
	}

	t.Run("should create order and complete cart", func(t *testing.T) {
		// given
		service, repo, carts := orderService(t)
		carts.EXPECT().GetCart(ctx, "cart_1", false).Return(authorizedCart(), nil)
		carts.EXPECT().GetSelectedPaymentSession(ctx, "cart_1").Return(session, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, o Order) error {
			assert.Equal(t, "cart_1", o.CartID)
			assert.Equal(t, int64(2000), o.Total)
			assert.Equal(t, "555", o.ProviderPaymentID)
			return nil
		})
		carts.EXPECT().MarkCompleted(ctx, "cart_1", fixedNow).Return(nil)

		// when
		o, err := service.CreateFromCart(ctx, "cart_1")

		// then
		require.NoError(t, err)
		assert.Equal(t, StatusPending, o.Status)
		assert.Equal(t, "mercadopago", o.ProviderID)
		assert.Equal(t, fixedNow, o.CreatedAt)
	})

	t.Run("should refuse cart without authorized payment", func(t *testing.T) {
		// given
		service, _, carts := orderService(t)
		cart := authorizedCart()
		cart.PaymentAuthorizedAt = nil
		carts.EXPECT().GetCart(ctx, "cart_1", false).Return(cart, nil)

		// when
		_, err := service.CreateFromCart(ctx, "cart_1")

		// then
		assert.ErrorIs(t, err, ErrPaymentNotAuthorized)
	})

	t.Run("should report completed cart as already ordered", func(t *testing.T) {
		// given
		service, _, carts := orderService(t)
		cart := authorizedCart()
		cart.CompletedAt = pointers.Ptr(fixedNow)
		carts.EXPECT().GetCart(ctx, "cart_1", false).Return(cart, nil)

		// when
		_, err := service.CreateFromCart(ctx, "cart_1")

		// then
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("should pass through unique violation as ErrAlreadyExists", func(t *testing.T) {
		// given
		service, repo, carts := orderService(t)
		carts.EXPECT().GetCart(ctx, "cart_1", false).Return(authorizedCart(), nil)
		carts.EXPECT().GetSelectedPaymentSession(ctx, "cart_1").Return(session, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(ErrAlreadyExists)

		// when
		_, err := service.CreateFromCart(ctx, "cart_1")

		// then
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("should wrap repository failure", func(t *testing.T) {
		// given
		service, repo, carts := orderService(t)
		carts.EXPECT().GetCart(ctx, "cart_1", false).Return(authorizedCart(), nil)
		carts.EXPECT().GetSelectedPaymentSession(ctx, "cart_1").Return(session, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("database error"))

		// when
		_, err := service.CreateFromCart(ctx, "cart_1")

		// then
		assert.EqualError(t, err, "create order: database error")
	})
}
