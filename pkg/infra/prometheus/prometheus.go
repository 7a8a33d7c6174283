package prometheus

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry = prometheus.NewRegistry()

var (
	// Latency buckets in milliseconds
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000,
	}

	RequestTotal = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_requests_total",
			Help: "Total number of inbound requests processed",
		},
		[]string{"endpoint", "method", "status"},
	)

	OutboundRequestTotal = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_outbound_requests_total",
			Help: "Outbound calls by target and outcome",
		},
		[]string{"target", "outcome"},
	)

	OutboundLatency = promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bridge_outbound_latency_ms",
			Help:    "Outbound call latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"target"},
	)
)

var initOnce sync.Once

// Initialize adds the process and Go runtime collectors. Safe to call more
// than once.
func Initialize() {
	initOnce.Do(func() {
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewGoCollector(),
		)
	})
}

// Handler serves the bridge registry in the prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
