package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestTotal counts HTTP requests by method, route and status.
	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	// RequestDuration is the latency of HTTP requests.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "admin_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	// QueryTotal counts composer fetches by collection and outcome.
	QueryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_query_fetch_total",
			Help: "Total number of composed collection queries",
		},
		[]string{"collection", "status"},
	)
	// QueryDuration is the latency of a count+page fetch.
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "admin_query_fetch_duration_seconds",
			Help:    "Composed collection query latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"collection"},
	)
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)
