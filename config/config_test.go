package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("PG_URL", "postgres://localhost/bridge")
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-token")
	t.Setenv("MERCADOPAGO_WEBHOOK_URL", "https://shop.example.com")

	cfg, err := New()

	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, WebhookModeSync, cfg.WebhookMode)
	assert.Equal(t, NotificationSinkPostgres, cfg.NotificationSink)
	assert.Equal(t, 5*time.Second, cfg.MercadoPagoTimeout)
	assert.Equal(t, 5*time.Minute, cfg.MercadoPagoWebhookTolerance)
	assert.Equal(t, "https://api.mercadopago.com", cfg.MercadoPagoBaseURL)
}

func TestNew_ParsesLists(t *testing.T) {
	t.Setenv("PG_URL", "postgres://localhost/bridge")
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-token")
	t.Setenv("MERCADOPAGO_WEBHOOK_URL", "https://shop.example.com")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("WEBHOOK_MODE", "kafka")

	cfg, err := New()

	require.NoError(t, err)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, WebhookModeKafka, cfg.WebhookMode)
}

func TestNew_RequiresAccessToken(t *testing.T) {
	t.Setenv("PG_URL", "postgres://localhost/bridge")
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "")
	t.Setenv("MERCADOPAGO_WEBHOOK_URL", "https://shop.example.com")

	_, err := New()

	assert.Error(t, err)
}
