package telemetry

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const metricsNamespace = "lifequote"

// QuoteMetrics holds Prometheus collectors for the quote engine.
// They are served from /-/metrics alongside the Go runtime collectors.
type QuoteMetrics struct {
	requests        *prometheus.CounterVec
	quotesReturned  prometheus.Counter
	premiums        prometheus.Histogram
	persistFailures *prometheus.CounterVec
	seeded          *prometheus.CounterVec
}

// NewQuoteMetrics registers the quote collectors on reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	factory := promauto.With(reg)

	return &QuoteMetrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "quote_requests_total",
			Help:      "Quote requests processed, by outcome.",
		}, []string{"outcome"}),
		quotesReturned: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "quotes_returned_total",
			Help:      "Individual plan quotes returned to callers.",
		}),
		premiums: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "monthly_premium_dollars",
			Help:      "Distribution of quoted monthly premiums.",
			Buckets:   []float64{10, 25, 50, 75, 100, 150, 250, 500, 1000, 2500},
		}),
		persistFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "persist_failures_total",
			Help:      "Audit records that could not be written, by collection.",
		}, []string{"collection"}),
		seeded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "catalog_seeded_records_total",
			Help:      "Catalog records inserted by the seed routine, by kind.",
		}, []string{"kind"}),
	}
}

// ObserveRequest records the outcome of one quote request.
// premiums holds the monthly premium of every returned quote.
func (m *QuoteMetrics) ObserveRequest(outcome string, premiums []float64) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(outcome).Inc()
	m.quotesReturned.Add(float64(len(premiums)))

	for _, p := range premiums {
		m.premiums.Observe(p)
	}
}

// PersistFailed counts a write to collection that was dropped.
func (m *QuoteMetrics) PersistFailed(collection string) {
	if m == nil {
		return
	}

	m.persistFailures.WithLabelValues(collection).Inc()
}

// Seeded counts catalog records inserted by a seed run.
func (m *QuoteMetrics) Seeded(insurers, plans int) {
	if m == nil {
		return
	}

	m.seeded.WithLabelValues("insurer").Add(float64(insurers))
	m.seeded.WithLabelValues("plan").Add(float64(plans))
}

// StartSpan starts an application-level span using the global tracer provider.
// It is a no-op span when telemetry is disabled.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(scopeName).Start(ctx, name, trace.WithAttributes(attrs...))
}
