package health

import (
	"context"
	"errors"

	"github.com/segmentio/kafka-go"
)

var errBrokersUnreachable = errors.New("all brokers unreachable")

// NewKafkaChecker reports kafka as up when any broker accepts a connection.
func NewKafkaChecker(brokers []string) CheckerFunc {
	return NewCheckerFunc("kafka", func(ctx context.Context) error {
		for _, broker := range brokers {
			conn, err := kafka.DialContext(ctx, "tcp", broker)
			if err == nil {
				_ = conn.Close()
				return nil
			}
		}
		return errBrokersUnreachable
	})
}
