package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// NotificationsTotal counts handled provider notifications by outcome
	// (confirmed, already_confirmed, not_actionable, skipped, failed).
	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "handled_total",
			Help:      "Total number of provider notifications handled, by outcome",
		},
		[]string{"action", "outcome"},
	)

	ProviderRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "request_duration_seconds",
			Help:      "Latency of calls to the payment provider API",
			Buckets:   []float64{.025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"operation", "status_code"},
	)
)

func init() {
	Registry.MustRegister(NotificationsTotal, ProviderRequestDuration)
}
