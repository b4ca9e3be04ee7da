package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	WebhookModeSync  = "sync"
	WebhookModeKafka = "kafka"

	NotificationSinkPostgres   = "postgres"
	NotificationSinkOpensearch = "opensearch"
	NotificationSinkNone       = "none"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL,required,notEmpty"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	// LogFormat is "json" or "console"
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	MercadoPagoBaseURL        string `env:"MERCADOPAGO_BASE_URL" envDefault:"https://api.mercadopago.com"`
	MercadoPagoAccessToken    string `env:"MERCADOPAGO_ACCESS_TOKEN,required,notEmpty"`
	MercadoPagoPublicKey      string `env:"MERCADOPAGO_PUBLIC_KEY"`
	MercadoPagoSuccessBackURL string `env:"MERCADOPAGO_SUCCESS_BACK_URL"`
	MercadoPagoWebhookURL     string `env:"MERCADOPAGO_WEBHOOK_URL,required,notEmpty"`
	MercadoPagoWebhookSecret  string `env:"MERCADOPAGO_WEBHOOK_SECRET"`
	// Max age of a webhook signature timestamp; 0 disables the check
	MercadoPagoWebhookTolerance time.Duration `env:"MERCADOPAGO_WEBHOOK_TOLERANCE" envDefault:"5m"`
	MercadoPagoTimeout          time.Duration `env:"MERCADOPAGO_TIMEOUT" envDefault:"5s"`
	MercadoPagoRetryAttempts    int           `env:"MERCADOPAGO_RETRY_ATTEMPTS" envDefault:"3"`

	// Webhook processing mode: "sync" (in request) or "kafka" (queued)
	WebhookMode string `env:"WEBHOOK_MODE" envDefault:"sync"`

	KafkaBrokers                    []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaNotificationsTopic         string   `env:"KAFKA_NOTIFICATIONS_TOPIC" envDefault:"webhooks.mercadopago"`
	KafkaNotificationsDLQTopic      string   `env:"KAFKA_NOTIFICATIONS_DLQ_TOPIC" envDefault:"webhooks.mercadopago.dlq"`
	KafkaNotificationsConsumerGroup string   `env:"KAFKA_NOTIFICATIONS_CONSUMER_GROUP" envDefault:"mercadopago-bridge"`

	// NotificationSink is "postgres", "opensearch" or "none"
	NotificationSink             string   `env:"NOTIFICATION_SINK" envDefault:"postgres"`
	OpensearchUrls               []string `env:"OPENSEARCH_URLS" envSeparator:","`
	OpensearchIndexNotifications string   `env:"OPENSEARCH_INDEX_NOTIFICATIONS" envDefault:"mercadopago-notifications"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
