package mercadopago

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"MercadoPagoBridge/internal/domain/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(Config{
		BaseURL:     server.URL,
		AccessToken: "TEST-token",
		Timeout:     5 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 3,
			BaseDelay:   time.Millisecond,
			MaxDelay:    5 * time.Millisecond,
		},
	})
}

func TestClient_CreatePreference(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/checkout/preferences", r.URL.Path)
			assert.Equal(t, "Bearer TEST-token", r.Header.Get("Authorization"))
			assert.NotEmpty(t, r.Header.Get("X-Idempotency-Key"))

			var req gateway.PreferenceRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "cart_1", req.ExternalReference)
			assert.Equal(t, float64(10), req.Items[0].UnitPrice)

			_, _ = w.Write([]byte(`{"id":"pref_1","init_point":"https://mp/init","sandbox_init_point":"https://mp/sandbox"}`))
		})

		pref, err := client.CreatePreference(context.Background(), gateway.PreferenceRequest{
			ExternalReference: "cart_1",
			Items:             []gateway.Item{{ID: "item_1", Quantity: 2, CurrencyID: "USD", UnitPrice: 10}},
		})

		require.NoError(t, err)
		assert.Equal(t, gateway.PreferenceResponse{ID: "pref_1", InitPoint: "https://mp/init", SandboxInitPoint: "https://mp/sandbox"}, pref)
	})

	t.Run("returns APIError on 400 without retry", func(t *testing.T) {
		var calls atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"invalid items","error":"bad_request","status":400}`))
		})

		_, err := client.CreatePreference(context.Background(), gateway.PreferenceRequest{})

		apiErr, ok := gateway.AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
		assert.Equal(t, "bad_request", apiErr.Code)
		assert.Equal(t, "invalid items", apiErr.Message)
		assert.EqualValues(t, 1, calls.Load())
	})

	t.Run("retries 5xx with the same idempotency key", func(t *testing.T) {
		var calls atomic.Int32
		keys := make(chan string, 3)
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			keys <- r.Header.Get("X-Idempotency-Key")
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_, _ = w.Write([]byte(`{"id":"pref_1"}`))
		})

		pref, err := client.CreatePreference(context.Background(), gateway.PreferenceRequest{})

		require.NoError(t, err)
		assert.Equal(t, "pref_1", pref.ID)
		close(keys)
		first := <-keys
		for k := range keys {
			assert.Equal(t, first, k)
		}
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		var calls atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := client.CreatePreference(context.Background(), gateway.PreferenceRequest{})

		assert.ErrorIs(t, err, ErrUnavailable)
		assert.EqualValues(t, 3, calls.Load())
	})
}

func TestClient_UpdatePreference(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/checkout/preferences/pref_1", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"pref_1","init_point":"a"}`))
	})

	pref, err := client.UpdatePreference(context.Background(), "pref_1", gateway.PreferenceRequest{})

	require.NoError(t, err)
	assert.Equal(t, "a", pref.InitPoint)
}

func TestClient_GetPayment(t *testing.T) {
	t.Run("decodes typed fields and keeps raw document", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/v1/payments/555", r.URL.Path)
			assert.Empty(t, r.Header.Get("X-Idempotency-Key"))
			_, _ = w.Write([]byte(`{"id":555,"status":"approved","status_detail":"accredited","external_reference":"cart_1","transaction_amount":20,"currency_id":"USD","captured":true,"payer":{"email":"ana@example.com"}}`))
		})

		payment, err := client.GetPayment(context.Background(), "555")

		require.NoError(t, err)
		assert.Equal(t, int64(555), payment.ID)
		assert.Equal(t, "approved", payment.Status)
		assert.Equal(t, "cart_1", payment.ExternalReference)
		assert.True(t, payment.Captured)
		assert.Contains(t, payment.Raw, "payer")
	})

	t.Run("returns APIError on 404", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Payment not found","error":"not_found","status":404}`))
		})

		_, err := client.GetPayment(context.Background(), "404")

		apiErr, ok := gateway.AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, "not_found", apiErr.Code)
	})
}

func TestClient_SearchPayments(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payments/search", r.URL.Path)
		assert.Equal(t, "cart_1", r.URL.Query().Get("external_reference"))
		assert.Equal(t, "desc", r.URL.Query().Get("criteria"))
		assert.False(t, r.URL.Query().Has("limit"))
		_, _ = w.Write([]byte(`{"results":[{"id":1,"status":"rejected"},{"id":2,"status":"approved"}],"paging":{"total":2}}`))
	})

	payments, err := client.SearchPayments(context.Background(), gateway.PaymentSearch{
		ExternalReference: "cart_1",
		Sort:              "date_created",
		Criteria:          "desc",
	})

	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "approved", payments[1].Status)
}
