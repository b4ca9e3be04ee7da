// Package correlation provides utilities for correlation ID propagation.
package correlation

import (
	"context"

	"github.com/google/uuid"
)

// HeaderName is the HTTP header for correlation ID.
const HeaderName = "X-Correlation-ID"

// ProviderRequestHeader is the request id Mercado Pago attaches to webhook
// deliveries; it doubles as a correlation id when none is given.
const ProviderRequestHeader = "X-Request-Id"

// KafkaHeaderName is the Kafka header for correlation ID.
const KafkaHeaderName = "X-Correlation-ID"

type contextKey struct{}

// FromContext returns the correlation ID or "" when absent.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

func NewID() string {
	return uuid.New().String()
}
