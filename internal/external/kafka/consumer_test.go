package kafka

import (
	"context"
	"testing"

	"MercadoPagoBridge/pkg/correlation"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestExtractCorrelationID(t *testing.T) {
	t.Parallel()

	t.Run("uses header", func(t *testing.T) {
		ctx := extractCorrelationID(context.Background(), []kafka.Header{
			{Key: "other", Value: []byte("x")},
			{Key: correlation.KafkaHeaderName, Value: []byte("corr-1")},
		})
		assert.Equal(t, "corr-1", correlation.FromContext(ctx))
	})

	t.Run("generates when missing", func(t *testing.T) {
		ctx := extractCorrelationID(context.Background(), nil)
		assert.NotEmpty(t, correlation.FromContext(ctx))
	})
}

func TestCorrelationHeaders(t *testing.T) {
	t.Parallel()

	assert.Nil(t, correlationHeaders(context.Background()))

	ctx := correlation.WithID(context.Background(), "corr-2")
	assert.Equal(t, []kafka.Header{{Key: correlation.KafkaHeaderName, Value: []byte("corr-2")}}, correlationHeaders(ctx))
}
