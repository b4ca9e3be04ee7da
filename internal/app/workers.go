package app

import (
	"context"
	"log/slog"

	"MercadoPagoBridge/config"
	"MercadoPagoBridge/internal/controller/message"
	"MercadoPagoBridge/internal/external/kafka"
	"MercadoPagoBridge/internal/messaging"
)

// StartWorkers starts the notification consumer in the background. It stops
// when ctx is cancelled; the returned func releases the DLQ writer.
func StartWorkers(ctx context.Context, cfg config.Config, service message.NotificationHandler) func() {
	dlqPub := kafka.NewDLQPublisher(cfg.KafkaBrokers, cfg.KafkaNotificationsDLQTopic)

	controller := message.NewNotificationMessageController(service)
	handler := messaging.WithMetrics(
		cfg.KafkaNotificationsTopic,
		cfg.KafkaNotificationsConsumerGroup,
		messaging.WithDLQ(
			messaging.WithRetry(controller.HandleMessage, messaging.DefaultRetryConfig()),
			dlqPub,
		),
	)
	consumer := kafka.NewConsumer(
		cfg.KafkaBrokers,
		cfg.KafkaNotificationsTopic,
		cfg.KafkaNotificationsConsumerGroup,
	)
	runner := messaging.NewRunner([]messaging.Worker{consumer}, handler)

	done := make(chan struct{})
	go func() {
		defer close(done)
		slog.Info("Starting notification consumer",
			"topic", cfg.KafkaNotificationsTopic,
			"group", cfg.KafkaNotificationsConsumerGroup)
		if err := runner.Start(ctx); err != nil {
			slog.Error("Notification runner failed", slog.Any("error", err))
		}
	}()

	return func() {
		<-done
		_ = runner.Close()
		if err := dlqPub.Close(); err != nil {
			slog.Error("Failed to close DLQ publisher", slog.Any("error", err))
		}
	}
}
