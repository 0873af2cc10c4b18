// Package metrics exposes Prometheus counters for the DFS endpoint and the
// HTTP server that publishes them.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the request collectors and the registry they live in.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New builds a private registry with Go runtime and process collectors plus
// the per-type request metrics.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tdfs_requests_total",
			Help: "Total number of DFS requests by message type and status code",
		}, []string{"type", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tdfs_request_duration_seconds",
			Help:    "DFS request latency by message type",
			Buckets: prometheus.DefBuckets,
		}, []string{"type"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.duration,
	)
	return m
}

// ObserveRequest records one finished request.
func (m *Metrics) ObserveRequest(kind, code string, elapsed time.Duration) {
	m.requests.WithLabelValues(kind, code).Inc()
	m.duration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
