package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"MercadoPagoBridge/internal/domain/notification"
	"MercadoPagoBridge/internal/messaging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockPublisher captures published envelopes for assertions.
type mockPublisher struct {
	published  []messaging.Envelope
	publishErr error
}

func (m *mockPublisher) Publish(_ context.Context, env messaging.Envelope) error {
	m.published = append(m.published, env)
	return m.publishErr
}

func (m *mockPublisher) Close() error {
	return nil
}

func TestAsyncProcessor_Process(t *testing.T) {
	t.Run("publishes payment notification keyed by payment id", func(t *testing.T) {
		pub := &mockPublisher{}
		processor := NewAsyncProcessor(pub)

		n := notification.Notification{Type: "payment", Action: "payment.created", PaymentID: "555"}

		outcome, err := processor.Process(context.Background(), n)

		require.NoError(t, err)
		assert.Equal(t, OutcomeQueued, outcome)
		require.Len(t, pub.published, 1)
		env := pub.published[0]
		assert.Equal(t, "555", env.Key)
		assert.Equal(t, MessageType, env.Type)

		var decoded notification.Notification
		require.NoError(t, json.Unmarshal(env.Payload, &decoded))
		assert.Equal(t, n, decoded)
	})

	t.Run("skips other topics without publishing", func(t *testing.T) {
		pub := &mockPublisher{}
		processor := NewAsyncProcessor(pub)

		outcome, err := processor.Process(context.Background(), notification.Notification{Type: "merchant_order", PaymentID: "1"})

		require.NoError(t, err)
		assert.Equal(t, notification.OutcomeSkipped, outcome)
		assert.Empty(t, pub.published)
	})

	t.Run("propagates publish errors", func(t *testing.T) {
		brokerErr := errors.New("broker down")
		processor := NewAsyncProcessor(&mockPublisher{publishErr: brokerErr})

		_, err := processor.Process(context.Background(), notification.Notification{Type: "payment", PaymentID: "1"})

		assert.ErrorIs(t, err, brokerErr)
	})
}

type handlerFunc func(ctx context.Context, n notification.Notification) (notification.Outcome, error)

func (f handlerFunc) Handle(ctx context.Context, n notification.Notification) (notification.Outcome, error) {
	return f(ctx, n)
}

func TestSyncProcessor_Process(t *testing.T) {
	var got notification.Notification
	processor := NewSyncProcessor(handlerFunc(func(_ context.Context, n notification.Notification) (notification.Outcome, error) {
		got = n
		return notification.OutcomeConfirmed, nil
	}))

	n := notification.Notification{Type: "payment", Action: "payment.created", PaymentID: "555"}
	outcome, err := processor.Process(context.Background(), n)

	require.NoError(t, err)
	assert.Equal(t, notification.OutcomeConfirmed, outcome)
	assert.Equal(t, n, got)
}
