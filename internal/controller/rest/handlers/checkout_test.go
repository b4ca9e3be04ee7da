package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"MercadoPagoBridge/internal/domain/checkout"
	"MercadoPagoBridge/internal/domain/gateway"
	"MercadoPagoBridge/internal/domain/notification"
	"MercadoPagoBridge/internal/domain/order"
	"MercadoPagoBridge/internal/domain/processor"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	session checkout.PaymentSession
	err     error
}

func (f fakeSessions) InitiatePaymentSession(context.Context, string) (checkout.PaymentSession, error) {
	return f.session, f.err
}

func (f fakeSessions) UpdatePaymentSession(context.Context, string) (checkout.PaymentSession, error) {
	return f.session, f.err
}

func (f fakeSessions) GetPaymentSession(context.Context, string) (checkout.PaymentSession, error) {
	return f.session, f.err
}

type fakeOrders struct {
	order order.Order
	err   error
}

func (f fakeOrders) RetrieveByCartID(context.Context, string) (order.Order, error) {
	return f.order, f.err
}

func checkoutEngine(h CheckoutHandler) *gin.Engine {
	engine := gin.New()
	engine.POST("/store/carts/:cart_id/payment-sessions", h.InitiateSession)
	engine.POST("/store/carts/:cart_id/payment-sessions/refresh", h.RefreshSession)
	engine.GET("/store/carts/:cart_id/payment-session", h.GetSession)
	engine.GET("/store/carts/:cart_id/order", h.GetOrder)
	return engine
}

func TestCheckoutHandler_InitiateSession(t *testing.T) {
	t.Parallel()

	session := checkout.PaymentSession{
		CartID:     "cart_1",
		ProviderID: "mercadopago",
		Status:     checkout.SessionPending,
		Data:       checkout.SessionData{"preference_id": "pref_1"},
	}
	engine := checkoutEngine(NewCheckoutHandler(fakeSessions{session: session}, fakeOrders{}))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/store/carts/cart_1/payment-sessions", nil))

	require.Equal(t, http.StatusCreated, w.Code)
	var got checkout.PaymentSession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "pref_1", got.Data.String("preference_id"))
}

func TestCheckoutHandler_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"cart not found", fmt.Errorf("get cart: %w", checkout.ErrCartNotFound), http.StatusNotFound},
		{"cart completed", checkout.ErrCartCompleted, http.StatusConflict},
		{"missing preference", fmt.Errorf("update payment: %w", &processor.Error{Kind: processor.KindConfiguration, Message: "Preference id is not passing."}), http.StatusUnprocessableEntity},
		{"provider failure", &processor.Error{Kind: processor.KindProvider, Message: "Trying create preference"}, http.StatusBadGateway},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			engine := checkoutEngine(NewCheckoutHandler(fakeSessions{err: tt.err}, fakeOrders{}))
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/store/carts/cart_1/payment-sessions/refresh", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCheckoutHandler_GetOrder(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		engine := checkoutEngine(NewCheckoutHandler(fakeSessions{}, fakeOrders{order: order.Order{CartID: "cart_1", Status: order.StatusPending}}))
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/store/carts/cart_1/order", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"cart_id":"cart_1"`)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		engine := checkoutEngine(NewCheckoutHandler(fakeSessions{}, fakeOrders{err: fmt.Errorf("get order by cart: %w", order.ErrNotFound)}))
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/store/carts/cart_1/order", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

type fakeAdminDeps struct {
	payments []gateway.Payment
	events   []notification.Event
	query    notification.EventQuery
}

func (f *fakeAdminDeps) SearchPayments(context.Context, string) ([]gateway.Payment, error) {
	return f.payments, nil
}

func (f *fakeAdminDeps) Events(_ context.Context, q notification.EventQuery) ([]notification.Event, error) {
	f.query = q
	return f.events, nil
}

func TestAdminHandler(t *testing.T) {
	deps := &fakeAdminDeps{
		payments: []gateway.Payment{{ID: 555, Status: "approved", ExternalReference: "cart_1"}},
	}
	h := NewAdminHandler(deps, deps)
	engine := gin.New()
	engine.GET("/admin/carts/:cart_id/provider-payments", h.ProviderPayments)
	engine.GET("/admin/carts/:cart_id/notifications", h.Notifications)

	t.Run("provider payments", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/carts/cart_1/provider-payments", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"external_reference":"cart_1"`)
	})

	t.Run("notifications with filters", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/carts/cart_1/notifications?payment_id=555&limit=10", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"events":[]}`, w.Body.String())
		assert.Equal(t, notification.EventQuery{CartID: "cart_1", PaymentID: "555", Limit: 10}, deps.query)
	})

	t.Run("invalid limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/carts/cart_1/notifications?limit=abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
