package processor

import (
	"testing"

	"MercadoPagoBridge/internal/domain/checkout"

	"github.com/stretchr/testify/assert"
)

func TestMapStatus(t *testing.T) {
	t.Parallel()

	testCases := map[string]checkout.SessionStatus{
		"approved":      checkout.SessionAuthorized,
		"authorized":    checkout.SessionAuthorized,
		"refunded":      checkout.SessionCanceled,
		"charged_back":  checkout.SessionCanceled,
		"cancelled":     checkout.SessionCanceled,
		"rejected":      checkout.SessionError,
		"pending":       checkout.SessionPending,
		"in_process":    checkout.SessionPending,
		"in_mediation":  checkout.SessionPending,
		"":              checkout.SessionPending,
		"something_new": checkout.SessionPending,
	}

	for status, expected := range testCases {
		t.Run(status, func(t *testing.T) {
			assert.Equal(t, expected, MapStatus(status))
		})
	}
}

func TestHumanizeAmount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		amount   int64
		currency string
		expected float64
	}{
		{amount: 1000, currency: "usd", expected: 10},
		{amount: 1999, currency: "ARS", expected: 19.99},
		{amount: 500, currency: "jpy", expected: 500},
		{amount: 1000, currency: "zzz", expected: 10},
	}

	for _, tc := range testCases {
		t.Run(tc.currency, func(t *testing.T) {
			assert.InDelta(t, tc.expected, HumanizeAmount(tc.amount, tc.currency), 1e-9)
		})
	}
}
