package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Image generation API metrics
var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "imagegen_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "jan",
			Subsystem: "imagegen_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Generation outcomes: success, validation, not_configured, credential, policy, upstream_error
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "imagegen_api",
			Name:      "generations_total",
			Help:      "Image generation requests by outcome",
		},
		[]string{"outcome", "size", "quality"},
	)

	ProviderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "jan",
			Subsystem: "imagegen_api",
			Name:      "provider_duration_seconds",
			Help:      "Upstream image provider call duration in seconds",
			Buckets:   []float64{1, 2, 5, 10, 20, 30, 60, 120},
		},
		[]string{"provider", "model"},
	)

	ProviderErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "imagegen_api",
			Name:      "provider_errors_total",
			Help:      "Total provider call failures",
		},
		[]string{"provider", "kind"},
	)
)

// RecordRequest records an HTTP request.
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(durationSec)
}

// RecordGeneration records the outcome of one generation request.
func RecordGeneration(outcome, size, quality string) {
	if size == "" {
		size = "unknown"
	}
	if quality == "" {
		quality = "unknown"
	}
	GenerationsTotal.WithLabelValues(outcome, size, quality).Inc()
}

// RecordProviderCall records the latency of an upstream call and, when kind is non-empty, the failure.
func RecordProviderCall(provider, model, kind string, durationSec float64) {
	ProviderDuration.WithLabelValues(provider, model).Observe(durationSec)
	if kind != "" {
		ProviderErrorsTotal.WithLabelValues(provider, kind).Inc()
	}
}
