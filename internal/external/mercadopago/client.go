package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"MercadoPagoBridge/internal/domain/gateway"
	"MercadoPagoBridge/pkg/correlation"
	"MercadoPagoBridge/pkg/metrics"

	"github.com/google/go-querystring/query"
	"github.com/google/uuid"
)

const DefaultBaseURL = "https://api.mercadopago.com"

type Config struct {
	BaseURL       string
	AccessToken   string
	Timeout       time.Duration
	Retry         RetryConfig
	HTTPTransport http.RoundTripper
}

// Client talks to the Mercado Pago REST API with an access token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	retryCfg   RetryConfig
}

var _ gateway.Gateway = (*Client)(nil)

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   cfg.AccessToken,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: cfg.HTTPTransport,
		},
		retryCfg: cfg.Retry,
	}
}

func (c *Client) CreatePreference(ctx context.Context, req gateway.PreferenceRequest) (gateway.PreferenceResponse, error) {
	var out gateway.PreferenceResponse
	if err := c.do(ctx, "create_preference", http.MethodPost, "/checkout/preferences", req, &out); err != nil {
		return gateway.PreferenceResponse{}, fmt.Errorf("create preference: %w", err)
	}
	return out, nil
}

func (c *Client) UpdatePreference(ctx context.Context, id string, req gateway.PreferenceRequest) (gateway.PreferenceResponse, error) {
	var out gateway.PreferenceResponse
	path := "/checkout/preferences/" + url.PathEscape(id)
	if err := c.do(ctx, "update_preference", http.MethodPut, path, req, &out); err != nil {
		return gateway.PreferenceResponse{}, fmt.Errorf("update preference: %w", err)
	}
	return out, nil
}

func (c *Client) GetPayment(ctx context.Context, id string) (gateway.Payment, error) {
	var raw json.RawMessage
	if err := c.do(ctx, "get_payment", http.MethodGet, "/v1/payments/"+url.PathEscape(id), nil, &raw); err != nil {
		return gateway.Payment{}, fmt.Errorf("get payment: %w", err)
	}

	payment, err := decodePayment(raw)
	if err != nil {
		return gateway.Payment{}, fmt.Errorf("get payment: %w", err)
	}
	return payment, nil
}

type searchResponse struct {
	Results []json.RawMessage `json:"results"`
}

func (c *Client) SearchPayments(ctx context.Context, q gateway.PaymentSearch) ([]gateway.Payment, error) {
	values, err := query.Values(q)
	if err != nil {
		return nil, fmt.Errorf("encode search: %w", err)
	}

	var out searchResponse
	if err := c.do(ctx, "search_payments", http.MethodGet, "/v1/payments/search?"+values.Encode(), nil, &out); err != nil {
		return nil, fmt.Errorf("search payments: %w", err)
	}

	payments := make([]gateway.Payment, 0, len(out.Results))
	for _, raw := range out.Results {
		payment, err := decodePayment(raw)
		if err != nil {
			return nil, fmt.Errorf("search payments: %w", err)
		}
		payments = append(payments, payment)
	}
	return payments, nil
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func decodePayment(raw json.RawMessage) (gateway.Payment, error) {
	var payment gateway.Payment
	if err := json.Unmarshal(raw, &payment); err != nil {
		return gateway.Payment{}, fmt.Errorf("decode payment: %w", err)
	}
	if err := json.Unmarshal(raw, &payment.Raw); err != nil {
		return gateway.Payment{}, fmt.Errorf("decode payment: %w", err)
	}
	return payment, nil
}

// do sends one logical request. Writes carry a single idempotency key
// across retries so Mercado Pago deduplicates them.
func (c *Client) do(ctx context.Context, operation, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	idempotencyKey := ""
	if method != http.MethodGet {
		idempotencyKey = uuid.NewString()
	}

	return doWithRetry(ctx, c.retryCfg, func() error {
		return c.send(ctx, operation, method, path, payload, idempotencyKey, out)
	})
}

func (c *Client) send(ctx context.Context, operation, method, path string, payload []byte, idempotencyKey string, out any) error {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.Set("Accept", "application/json")
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if idempotencyKey != "" {
		httpReq.Header.Set("X-Idempotency-Key", idempotencyKey)
	}
	if id := correlation.FromContext(ctx); id != "" {
		httpReq.Header.Set(correlation.HeaderName, id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		metrics.ProviderRequestDuration.WithLabelValues(operation, "error").Observe(time.Since(start).Seconds())
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, _ := io.ReadAll(resp.Body)
	metrics.ProviderRequestDuration.WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	if resp.StatusCode/100 == 2 {
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	apiErr := &gateway.APIError{}
	_ = json.Unmarshal(raw, apiErr)
	apiErr.Status = resp.StatusCode
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(raw))
	}

	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %w", ErrUnavailable, apiErr)
	}
	return apiErr
}
