// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "starmilestone"

var (
	BadgeRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "badge_requests_total",
			Help:      "Badge requests by outcome.",
		},
		[]string{"outcome"}, // achieved, pending, invalid, error
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "GitHub API call duration in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~5s
		},
		[]string{"operation", "status"},
	)

	LogoFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logo_fetch_total",
			Help:      "Logo downloads by result.",
		},
		[]string{"result"}, // ok, error
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
		},
		[]string{"method", "path", "status"},
	)
)

// Badge outcomes.
const (
	OutcomeAchieved = "achieved"
	OutcomePending  = "pending"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// IncBadgeRequest counts one badge request with the given outcome.
func IncBadgeRequest(outcome string) {
	BadgeRequests.WithLabelValues(outcome).Inc()
}

// RecordUpstreamCall observes the duration of one GitHub API call.
func RecordUpstreamCall(operation, status string, duration time.Duration) {
	UpstreamRequestDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// IncLogoFetch counts one logo download, ok or not.
func IncLogoFetch(ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	LogoFetches.WithLabelValues(result).Inc()
}

// RecordHTTPRequestDuration observes one served HTTP request.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}
