package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Estimate outcomes.
const (
	OutcomeRows            = "rows"
	OutcomeNoResults       = "no_results"
	OutcomeInvalidQuantity = "invalid_quantity"
)

var (
	// Registry holds every costboard collector.
	Registry = prometheus.NewRegistry()

	EstimatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "costboard_estimates_total",
			Help: "Total number of estimates served",
		},
		[]string{"surface", "outcome"},
	)

	EstimateDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "costboard_estimate_duration_seconds",
			Help:    "Time taken to compute an estimate",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		},
	)

	CatalogParts = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "costboard_catalog_parts",
			Help: "Number of parts in the loaded catalog",
		},
	)
)

func init() {
	Registry.MustRegister(
		EstimatesTotal,
		EstimateDuration,
		CatalogParts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Outcome classifies an estimate by its effective quantity and row count.
func Outcome(quantity, rows int) string {
	switch {
	case quantity <= 0:
		return OutcomeInvalidQuantity
	case rows == 0:
		return OutcomeNoResults
	default:
		return OutcomeRows
	}
}

// ObserveEstimate records one estimate served on surface.
func ObserveEstimate(surface, outcome string, took time.Duration) {
	EstimatesTotal.WithLabelValues(surface, outcome).Inc()
	EstimateDuration.Observe(took.Seconds())
}

// Handler serves the registry in the prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
