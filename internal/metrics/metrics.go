package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the routes service.
type MetricsRegistry struct {
	// HTTP metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Finder metrics: local store hits and misses per entity
	StoreHitsTotal   prometheus.CounterVec
	StoreMissesTotal prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commercialroutes_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "commercialroutes_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "commercialroutes_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),
		StoreHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commercialroutes_store_hits_total",
				Help: "Finder lookups answered from the local store",
			},
			[]string{"entity"},
		),
		StoreMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commercialroutes_store_misses_total",
				Help: "Finder lookups that fell through to a partner service",
			},
			[]string{"entity"},
		),
	}
}

// StoreHit records a finder store hit. Implements services.FinderMetrics.
func (m *MetricsRegistry) StoreHit(entity string) {
	m.StoreHitsTotal.WithLabelValues(entity).Inc()
}

// StoreMiss records a finder store miss.
func (m *MetricsRegistry) StoreMiss(entity string) {
	m.StoreMissesTotal.WithLabelValues(entity).Inc()
}
