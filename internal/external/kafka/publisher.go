package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"MercadoPagoBridge/internal/messaging"
	"MercadoPagoBridge/pkg/correlation"

	"github.com/segmentio/kafka-go"
)

// Publisher implements messaging.Publisher using Kafka.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}

	return &Publisher{
		writer: writer,
	}
}

func (p *Publisher) Publish(ctx context.Context, env messaging.Envelope) error {
	value, err := json.Marshal(env)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:     []byte(env.Key),
		Value:   value,
		Headers: correlationHeaders(ctx),
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to publish message",
			"topic", p.writer.Topic,
			"key", env.Key,
			slog.Any("error", err))
		return err
	}

	slog.DebugContext(ctx, "Message published",
		"topic", p.writer.Topic,
		"key", env.Key,
		"event_id", env.EventID)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func correlationHeaders(ctx context.Context) []kafka.Header {
	corrID := correlation.FromContext(ctx)
	if corrID == "" {
		return nil
	}
	return []kafka.Header{{Key: correlation.KafkaHeaderName, Value: []byte(corrID)}}
}
