package processor

import (
	"context"
	"errors"
	"testing"
	"time"

	"MercadoPagoBridge/internal/domain/checkout"
	"MercadoPagoBridge/internal/domain/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newProcessor(t *testing.T) (*Processor, *gateway.MockGateway) {
	t.Helper()

	gw := gateway.NewMockGateway(gomock.NewController(t))
	p := New(gw, Options{
		PublicKey:      "pk_test",
		SuccessBackURL: "https://shop.example.com/success",
		WebhookBaseURL: "https://api.example.com/",
		Timeout:        time.Second,
	})
	return p, gw
}

func paymentContext() checkout.PaymentContext {
	cart := checkout.Cart{
		ID:           "cart_1",
		Type:         checkout.CartTypeDefault,
		CurrencyCode: "usd",
		Items: []checkout.LineItem{
			{ID: "item_1", Title: "Mate", Description: "Gourd", Quantity: 2, UnitPrice: 1000},
		},
	}
	return checkout.PaymentContext{
		ResourceID:   "cart_1",
		CurrencyCode: "usd",
		Amount:       2000,
		Customer:     checkout.Customer{FirstName: "Ana", LastName: "Lopez", Email: "ana@example.com"},
		Cart:         cart,
		SessionData:  checkout.SessionData{},
	}
}

func TestProcessor_Initiate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should build preference from cart and return session data", func(t *testing.T) {
		// given
		p, gw := newProcessor(t)
		gw.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req gateway.PreferenceRequest) (gateway.PreferenceResponse, error) {
				require.Len(t, req.Items, 1)
				assert.Equal(t, "item_1", req.Items[0].ID)
				assert.Equal(t, 2, req.Items[0].Quantity)
				assert.Equal(t, "USD", req.Items[0].CurrencyID)
				assert.Equal(t, float64(10), req.Items[0].UnitPrice)
				assert.Equal(t, "cart_1", req.ExternalReference)
				assert.Equal(t, "https://api.example.com/mercadopago/hooks", req.NotificationURL)
				assert.Equal(t, "https://shop.example.com/success", req.BackURLs.Success)
				assert.Equal(t, gateway.Payer{Name: "Ana", Surname: "Lopez", Email: "ana@example.com"}, req.Payer)
				return gateway.PreferenceResponse{ID: "pref_1", InitPoint: "https://mp/init", SandboxInitPoint: "https://mp/sandbox"}, nil
			})

		// when
		data, err := p.Initiate(ctx, paymentContext())

		// then
		require.NoError(t, err)
		assert.Equal(t, checkout.SessionData{
			"public_key":          "pk_test",
			"preference_id":       "pref_1",
			"payment_url":         "https://mp/init",
			"payment_sandbox_url": "https://mp/sandbox",
		}, data)
	})

	t.Run("should return provider error with api code", func(t *testing.T) {
		// given
		p, gw := newProcessor(t)
		gw.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).
			Return(gateway.PreferenceResponse{}, &gateway.APIError{Status: 400, Code: "bad_request", Message: "invalid items"})

		// when
		_, err := p.Initiate(ctx, paymentContext())

		// then
		var perr *Error
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, KindProvider, perr.Kind)
		assert.Equal(t, "Trying create preference", perr.Message)
		assert.Equal(t, "bad_request", perr.Code)
		assert.Equal(t, "invalid items", perr.Detail)
		assert.ErrorIs(t, err, ErrProvider)
	})
}

func TestProcessor_Update(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should fail without provider call when preference id is missing", func(t *testing.T) {
		// given
		p, _ := newProcessor(t)

		// when
		_, err := p.Update(ctx, paymentContext())

		// then
		assert.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("should update the stored preference", func(t *testing.T) {
		// given
		p, gw := newProcessor(t)
		pctx := paymentContext()
		pctx.SessionData = checkout.SessionData{"preference_id": "pref_1"}
		gw.EXPECT().UpdatePreference(gomock.Any(), "pref_1", gomock.Any()).
			Return(gateway.PreferenceResponse{ID: "pref_1", InitPoint: "a", SandboxInitPoint: "b"}, nil)

		// when
		data, err := p.Update(ctx, pctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, "pref_1", data.String("preference_id"))
		assert.Equal(t, "a", data.String("payment_url"))
	})
}

func TestProcessor_AuthorizePayment(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	session := checkout.SessionData{"preference_id": "pref_1"}

	testCases := []struct {
		name           string
		providerStatus string
		expectedStatus checkout.SessionStatus
	}{
		{name: "approved payment is authorized", providerStatus: "approved", expectedStatus: checkout.SessionAuthorized},
		{name: "in process payment is pending", providerStatus: "in_process", expectedStatus: checkout.SessionPending},
		{name: "rejected payment is error", providerStatus: "rejected", expectedStatus: checkout.SessionError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			p, gw := newProcessor(t)
			gw.EXPECT().GetPayment(gomock.Any(), "555").Return(gateway.Payment{ID: 555, Status: tc.providerStatus}, nil)

			// when
			result, err := p.AuthorizePayment(ctx, session, map[string]any{"id": float64(555)})

			// then
			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, result.Status)
			assert.Equal(t, "555", result.Data.String("id"))
			assert.Equal(t, "pref_1", result.Data.String("preference_id"))
			assert.Equal(t, tc.providerStatus, result.Data.String("status"))
		})
	}

	t.Run("should chain nested detail on fetch failure", func(t *testing.T) {
		// given
		p, gw := newProcessor(t)
		gw.EXPECT().GetPayment(gomock.Any(), "555").Return(gateway.Payment{}, errors.New("connection reset"))

		// when
		_, err := p.AuthorizePayment(ctx, session, map[string]any{"id": "555"})

		// then
		var perr *Error
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "Error retrieving payment in authorize payment", perr.Message)
		assert.Equal(t, "connection reset", perr.Detail)
	})

	t.Run("should fail without provider call when id is missing", func(t *testing.T) {
		// given
		p, _ := newProcessor(t)

		// when
		_, err := p.AuthorizePayment(ctx, session, map[string]any{})

		// then
		var perr *Error
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, KindProvider, perr.Kind)
		assert.Equal(t, "Payment id is missing\n", perr.Detail)
	})
}

func TestProcessor_GetPaymentStatus(t *testing.T) {
	t.Parallel()

	p, _ := newProcessor(t)

	status, err := p.GetPaymentStatus(context.Background(), checkout.SessionData{"status": "charged_back"})

	require.NoError(t, err)
	assert.Equal(t, checkout.SessionCanceled, status)
}

func TestProcessor_CapturePayment(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p, _ := newProcessor(t)

	t.Run("should return captured data unchanged", func(t *testing.T) {
		data := checkout.SessionData{"id": "555", "captured": true}

		result, err := p.CapturePayment(ctx, data)

		require.NoError(t, err)
		assert.Equal(t, data, result)
	})

	t.Run("should refuse deferred capture", func(t *testing.T) {
		_, err := p.CapturePayment(ctx, checkout.SessionData{"id": "555"})

		assert.ErrorIs(t, err, ErrNotImplemented)
		assert.EqualError(t, err, "Error capturing payment")
	})
}

func TestProcessor_RetrievePayment(t *testing.T) {
	t.Parallel()

	// given
	p, gw := newProcessor(t)
	raw := map[string]any{"id": float64(555), "status": "approved", "external_reference": "cart_1"}
	gw.EXPECT().GetPayment(gomock.Any(), "555").Return(gateway.Payment{ID: 555, Status: "approved", Raw: raw}, nil)

	// when
	data, err := p.RetrievePayment(context.Background(), checkout.SessionData{"id": "555"})

	// then
	require.NoError(t, err)
	assert.Equal(t, checkout.SessionData(raw), data)
}

func TestProcessor_Unsupported(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p, _ := newProcessor(t)
	data := checkout.SessionData{"id": "555"}

	calls := map[Capability]func() error{
		CapCancel: func() error { _, err := p.CancelPayment(ctx, data); return err },
		CapRefund: func() error { _, err := p.RefundPayment(ctx, data, 100); return err },
		CapDelete: func() error { _, err := p.DeletePayment(ctx, data); return err },
		CapUpdatePaymentData: func() error {
			_, err := p.UpdatePaymentData(ctx, "sess_1", data)
			return err
		},
	}

	for c, call := range calls {
		t.Run(string(c), func(t *testing.T) {
			assert.ErrorIs(t, call(), ErrNotImplemented)
			assert.Equal(t, Unsupported, p.Supports(c))
		})
	}
}

func TestProcessor_Capabilities(t *testing.T) {
	t.Parallel()

	p, _ := newProcessor(t)
	caps := p.Capabilities()

	assert.Len(t, caps, 10)
	assert.Equal(t, Partial, caps[CapCapture])
	assert.Equal(t, Supported, caps[CapAuthorize])

	caps[CapRefund] = Supported
	assert.Equal(t, Unsupported, p.Supports(CapRefund))
}
