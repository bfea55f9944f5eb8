// Package metrics exposes Prometheus collectors for HTTP traffic and remote sync outcomes.
package metrics

import (
	"net/http"
	"time"

	"github.com/SscSPs/construct_erp/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cerp"

// Registry owns the collectors of one process.
type Registry struct {
	reg *prometheus.Registry

	syncOps         *prometheus.CounterVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	sessions        prometheus.Gauge
}

// NewRegistry builds a registry with the Go runtime and process collectors attached.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		syncOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_operations_total",
			Help:      "Store mutations by resource, operation and sync outcome.",
		}, []string{"resource", "op", "outcome"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Sessions currently logged in.",
		}),
	}
	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.syncOps,
		r.requests,
		r.requestDuration,
		r.sessions,
	)
	return r
}

// ObserveSync counts a store mutation.
func (r *Registry) ObserveSync(resource, op string, status domain.SyncStatus) {
	r.syncOps.WithLabelValues(resource, op, string(status)).Inc()
}

// ObserveRequest records one HTTP request.
func (r *Registry) ObserveRequest(method, route, status string, elapsed time.Duration) {
	r.requests.WithLabelValues(method, route, status).Inc()
	r.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// SessionStarted and SessionEnded track the active session gauge.
func (r *Registry) SessionStarted() { r.sessions.Inc() }
func (r *Registry) SessionEnded()   { r.sessions.Dec() }

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer exposes the underlying registry for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}
