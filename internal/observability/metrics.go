// Package observability holds the service's prometheus collectors.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Number of successful enrollments per activity.",
	}, []string{"activity"})

	withdrawalCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "withdrawals_total",
		Help:      "Number of successful withdrawals per activity.",
	}, []string{"activity"})

	rejectionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "rejections_total",
		Help:      "Number of rejected requests grouped by operation and reason.",
	}, []string{"operation", "reason"})

	rosterGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "roster_size",
		Help:      "Current participant count per activity.",
	}, []string{"activity"})

	httpRequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of HTTP requests grouped by method, route and status.",
	}, []string{"method", "route", "status"})

	httpDurationHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "activities_service",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency grouped by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func init() {
	prometheus.MustRegister(
		signupCounter,
		withdrawalCounter,
		rejectionCounter,
		rosterGauge,
		httpRequestCounter,
		httpDurationHistogram,
	)
}

// RecordSignup increments the signup counter for the activity.
func RecordSignup(activity string) {
	signupCounter.WithLabelValues(activity).Inc()
}

// RecordWithdrawal increments the withdrawal counter for the activity.
func RecordWithdrawal(activity string) {
	withdrawalCounter.WithLabelValues(activity).Inc()
}

// RecordRejection counts a rejected request by operation and reason.
func RecordRejection(operation, reason string) {
	rejectionCounter.WithLabelValues(operation, reason).Inc()
}

// SetRosterSize updates the roster size gauge for the activity.
func SetRosterSize(activity string, size int) {
	rosterGauge.WithLabelValues(activity).Set(float64(size))
}

// RecordHTTPRequest counts a completed request and observes its latency.
func RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	httpRequestCounter.WithLabelValues(method, route, statusText(status)).Inc()
	httpDurationHistogram.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func statusText(status int) string {
	switch {
	case status < 200:
		return "1xx"
	case status < 300:
		return "2xx"
	case status < 400:
		return "3xx"
	case status < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
