// Package metrics exposes Prometheus collectors for the HTTP API and its
// access-control guards.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Guard names used as the "guard" label of GuardDenialsTotal.
const (
	GuardAuthenticate  = "authenticate"
	GuardRole          = "role"
	GuardPayloadAuthor = "payload_author"
	GuardOwnership     = "ownership"
)

var (
	// HTTPRequestsTotal counts completed requests by route pattern and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edupost_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "edupost_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// GuardDenialsTotal counts requests rejected by an access-control guard.
	GuardDenialsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edupost_guard_denials_total",
			Help: "Total number of requests rejected by an access-control guard",
		},
		[]string{"guard", "status"},
	)
)

// RecordHTTPRequest records one completed request. Unmatched routes are
// grouped under "unmatched" to keep label cardinality bounded.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordGuardDenial records a rejection by guard with the HTTP status sent.
func RecordGuardDenial(guard string, status int) {
	GuardDenialsTotal.WithLabelValues(guard, strconv.Itoa(status)).Inc()
}
