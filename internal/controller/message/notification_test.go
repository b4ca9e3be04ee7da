package message

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"MercadoPagoBridge/internal/domain/notification"
	"MercadoPagoBridge/internal/messaging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	calls   []notification.Notification
	outcome notification.Outcome
	err     error
}

func (f *fakeService) Handle(_ context.Context, n notification.Notification) (notification.Outcome, error) {
	f.calls = append(f.calls, n)
	return f.outcome, f.err
}

func envelopeBytes(t *testing.T, n notification.Notification) []byte {
	t.Helper()
	env, err := messaging.NewEnvelope(n.PaymentID, "mercadopago.notification", n)
	require.NoError(t, err)
	b, err := json.Marshal(env)
	require.NoError(t, err)
	return b
}

func TestNotificationMessageController_HandleMessage(t *testing.T) {
	t.Parallel()

	n := notification.Notification{Type: "payment", Action: "payment.created", PaymentID: "555"}

	tests := []struct {
		name          string
		value         func(t *testing.T) []byte
		serviceErr    error
		wantErr       bool
		wantPermanent bool
		wantCalls     int
	}{
		{
			name:      "handled",
			value:     func(t *testing.T) []byte { return envelopeBytes(t, n) },
			wantCalls: 1,
		},
		{
			name:          "malformed envelope",
			value:         func(*testing.T) []byte { return []byte("{") },
			wantErr:       true,
			wantPermanent: true,
		},
		{
			name:          "correlation failure is permanent",
			value:         func(t *testing.T) []byte { return envelopeBytes(t, n) },
			serviceErr:    fmt.Errorf("%w: payment 555", notification.ErrCorrelation),
			wantErr:       true,
			wantPermanent: true,
			wantCalls:     1,
		},
		{
			name:       "resolve failure is retried",
			value:      func(t *testing.T) []byte { return envelopeBytes(t, n) },
			serviceErr: fmt.Errorf("%w 555: %w", notification.ErrResolvePayment, errors.New("timeout")),
			wantErr:    true,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			svc := &fakeService{outcome: notification.OutcomeConfirmed, err: tt.serviceErr}
			controller := NewNotificationMessageController(svc)

			// when
			err := controller.HandleMessage(context.Background(), []byte("555"), tt.value(t))

			// then
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantPermanent, messaging.IsPermanent(err))
			} else {
				require.NoError(t, err)
			}
			require.Len(t, svc.calls, tt.wantCalls)
			if tt.wantCalls > 0 {
				assert.Equal(t, n, svc.calls[0])
			}
		})
	}
}
