package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ib-77/outbound/pkg/outbound"
)

const outcomeCancelled = "cancelled"

// Metrics holds the Prometheus collectors for cancellation outcomes.
type Metrics struct {
	CancellationsTotal *prometheus.CounterVec
	EventsTotal        *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics with the default registry
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsWithRegistry creates metrics with a custom registry (useful for testing)
func NewMetricsWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		CancellationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "outbound_cancellations_total",
				Help: "Cancellation requests by outcome",
			},
			[]string{"outcome"}, // cancelled, invalid_identifier, not_found, already_shipped, unknown
		),
		EventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "outbound_cancellation_events_total",
				Help: "Compensating events derived by type",
			},
			[]string{"type"},
		),
	}
}

// RecordCancelled counts a successful cancellation and its events.
func (m *Metrics) RecordCancelled(events []outbound.Event) {
	if m == nil {
		return
	}
	m.CancellationsTotal.WithLabelValues(outcomeCancelled).Inc()
	for _, e := range events {
		m.EventsTotal.WithLabelValues(string(e.Type())).Inc()
	}
}

// RecordRejected counts a failed cancellation under its failure kind.
func (m *Metrics) RecordRejected(kind outbound.Kind) {
	if m == nil {
		return
	}
	m.CancellationsTotal.WithLabelValues(OutcomeLabel(kind)).Inc()
}

// OutcomeLabel turns a failure kind into a metric label value.
func OutcomeLabel(kind outbound.Kind) string {
	switch kind {
	case outbound.KindInvalidIdentifier:
		return "invalid_identifier"
	case outbound.KindNotFound:
		return "not_found"
	case outbound.KindAlreadyShipped:
		return "already_shipped"
	default:
		return "unknown"
	}
}
