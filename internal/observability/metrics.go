// Package observability provides Prometheus metrics and gin middleware
// for monitoring the recipe gateway.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestsTotal counts inbound HTTP requests by method, route and status class.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_finder_requests_total",
			Help: "Total requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration records inbound request duration in seconds.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipe_finder_request_duration_seconds",
			Help:    "Request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// UpstreamRequestsTotal counts calls to the recipe API by operation and outcome.
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_finder_upstream_requests_total",
			Help: "Upstream requests",
		},
		[]string{"operation", "outcome"},
	)

	// UpstreamLatency records upstream call latency in seconds.
	UpstreamLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipe_finder_upstream_request_duration_seconds",
			Help:    "Upstream latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		UpstreamRequestsTotal,
		UpstreamLatency,
	)
}
