package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels recorded for every upstream provider call.
const (
	OutcomeLive     = "live"
	OutcomeFallback = "fallback"
)

// Collector exposes Prometheus metrics for inbound requests and the
// fallback behavior of every external provider.
type Collector struct {
	registry      *prometheus.Registry
	requestTotal  *prometheus.CounterVec
	externalCalls *prometheus.CounterVec
}

// NewCollector builds a collector backed by its own registry.
func NewCollector() (*Collector, error) {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "agripulse",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of inbound HTTP requests.",
	}, []string{"method", "path", "status"})

	externalCalls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "agripulse",
		Subsystem: "provider",
		Name:      "calls_total",
		Help:      "External provider calls by outcome (live or fallback).",
	}, []string{"provider", "outcome"})

	if err := registry.Register(requestTotal); err != nil {
		return nil, err
	}
	if err := registry.Register(externalCalls); err != nil {
		return nil, err
	}

	return &Collector{
		registry:      registry,
		requestTotal:  requestTotal,
		externalCalls: externalCalls,
	}, nil
}

// RequestServed records one finished HTTP request.
func (c *Collector) RequestServed(method, path, status string) {
	if c == nil {
		return
	}
	c.requestTotal.WithLabelValues(method, path, status).Inc()
}

// ExternalCall records an upstream call and whether its result was served
// live or substituted by the local fallback.
func (c *Collector) ExternalCall(provider, outcome string) {
	if c == nil {
		return
	}
	c.externalCalls.WithLabelValues(provider, outcome).Inc()
}

// Handler returns the scrape endpoint handler.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
