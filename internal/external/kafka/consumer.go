package kafka

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"MercadoPagoBridge/internal/messaging"
	"MercadoPagoBridge/pkg/correlation"

	"github.com/segmentio/kafka-go"
)

const (
	commitTimeout = 5 * time.Second
)

// Consumer implements messaging.Worker using Kafka.
type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, topic, groupID string) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:          brokers,
		Topic:            topic,
		GroupID:          groupID,
		MinBytes:         1,
		MaxBytes:         10e6, // 10MB
		CommitInterval:   0,    // synchronous commits
		StartOffset:      kafka.FirstOffset,
		MaxWait:          500 * time.Millisecond,
		RebalanceTimeout: 5 * time.Second,
	})

	return &Consumer{
		reader: reader,
	}
}

// Start fetches messages and passes them to handler until ctx is cancelled.
// A message is committed only after handler succeeds.
func (c *Consumer) Start(ctx context.Context, handler messaging.MessageHandler) error {
	slog.Info("Consumer started",
		"topic", c.reader.Config().Topic,
		"group_id", c.reader.Config().GroupID)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				slog.Info("Consumer stopped (context cancelled)")
				return nil
			}
			slog.Error("Failed to fetch message", slog.Any("error", err))
			return err
		}

		msgCtx := extractCorrelationID(ctx, msg.Headers)

		slog.DebugContext(msgCtx, "Message received",
			"topic", msg.Topic,
			"partition", msg.Partition,
			"offset", msg.Offset,
			"key", string(msg.Key))

		if err := handler(msgCtx, msg.Key, msg.Value); err != nil {
			slog.ErrorContext(msgCtx, "Handler error, message not committed",
				"topic", msg.Topic,
				"partition", msg.Partition,
				"offset", msg.Offset,
				"key", string(msg.Key),
				slog.Any("error", err))
			continue
		}

		// commit even when ctx is cancelled during shutdown
		commitCtx, cancel := context.WithTimeout(context.Background(), commitTimeout)
		err = c.reader.CommitMessages(commitCtx, msg)
		cancel()
		if err != nil {
			// redelivery is safe, confirmation is idempotent
			slog.ErrorContext(msgCtx, "Failed to commit message",
				"topic", msg.Topic,
				"partition", msg.Partition,
				"offset", msg.Offset,
				slog.Any("error", err))
			continue
		}

		slog.DebugContext(msgCtx, "Message committed",
			"topic", msg.Topic,
			"partition", msg.Partition,
			"offset", msg.Offset)
	}
}

func (c *Consumer) Close() error {
	slog.Info("Closing consumer",
		"topic", c.reader.Config().Topic,
		"group_id", c.reader.Config().GroupID)
	return c.reader.Close()
}

// extractCorrelationID returns ctx carrying the message's correlation id, or
// a fresh one when the header is absent.
func extractCorrelationID(ctx context.Context, headers []kafka.Header) context.Context {
	for _, h := range headers {
		if h.Key == correlation.KafkaHeaderName {
			return correlation.WithID(ctx, string(h.Value))
		}
	}
	return correlation.WithID(ctx, correlation.NewID())
}
