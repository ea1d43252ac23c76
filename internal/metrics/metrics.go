package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SignInFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_sign_in_failures_total",
			Help: "Rejected sign-in attempts, throttled ones included.",
		},
	)

	UploadedBytes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_uploaded_bytes_total",
			Help: "Bytes written by the upload endpoint per category.",
		},
		[]string{"type"},
	)
)
