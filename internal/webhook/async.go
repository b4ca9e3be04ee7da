package webhook

import (
	"context"
	"fmt"

	"MercadoPagoBridge/internal/domain/notification"
	"MercadoPagoBridge/internal/messaging"
)

// MessageType tags notification envelopes on the topic.
const MessageType = "mercadopago.notification"

// OutcomeQueued means the notification was handed to the broker; the consumer
// decides the final outcome.
const OutcomeQueued notification.Outcome = "queued"

// AsyncProcessor publishes payment notifications to Kafka.
type AsyncProcessor struct {
	publisher messaging.Publisher
}

func NewAsyncProcessor(publisher messaging.Publisher) *AsyncProcessor {
	return &AsyncProcessor{publisher: publisher}
}

// Process drops non-payment notifications without publishing. Payment
// notifications are keyed by payment id so redeliveries land on the same
// partition.
func (p *AsyncProcessor) Process(ctx context.Context, n notification.Notification) (notification.Outcome, error) {
	if n.Type != notification.TypePayment {
		return notification.OutcomeSkipped, nil
	}

	envelope, err := messaging.NewEnvelope(n.PaymentID, MessageType, n)
	if err != nil {
		return "", fmt.Errorf("create envelope: %w", err)
	}
	if err := p.publisher.Publish(ctx, envelope); err != nil {
		return "", fmt.Errorf("publish notification: %w", err)
	}
	return OutcomeQueued, nil
}
