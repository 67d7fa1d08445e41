package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequestsTotal tracks the number of outbound calls to the Jablotron Cloud API.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jablonet_api_requests_total",
			Help: "Total number of Jablotron Cloud API requests made (by endpoint and outcome).",
		},
		[]string{"endpoint", "outcome"},
	)

	// APIRequestDuration measures the duration of outbound Jablotron Cloud API calls.
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jablonet_api_request_duration_seconds",
			Help:    "Duration of Jablotron Cloud API requests in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15), // 1ms → ~16s
		},
		[]string{"endpoint"},
	)

	// LoginsTotal tracks session logins by outcome.
	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jablonet_logins_total",
			Help: "Number of login attempts against userAuthorize.json by outcome.",
		},
		[]string{"outcome"},
	)

	// ControlActionsTotal tracks control actions by component kind and outcome.
	ControlActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jablonet_control_actions_total",
			Help: "Number of control actions issued (by component kind and outcome).",
		},
		[]string{"kind", "outcome"},
	)

	// NATSPublishErrors tracks NATS publish failures by subject.
	NATSPublishErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nats_publish_errors_total",
			Help: "Number of NATS publish failures by subject.",
		},
		[]string{"subject"},
	)
)

// IncRequest increments the API request counter.
func IncRequest(endpoint, outcome string) {
	APIRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
}

// ObserveRequest records the elapsed time of one API request.
func ObserveRequest(endpoint string, start time.Time) {
	APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

// IncLogin increments the login counter.
func IncLogin(outcome string) {
	LoginsTotal.WithLabelValues(outcome).Inc()
}

// IncControlAction increments the control action counter.
func IncControlAction(kind, outcome string) {
	ControlActionsTotal.WithLabelValues(kind, outcome).Inc()
}

// IncNATSPublishError increments the NATS publish error counter for the given subject.
func IncNATSPublishError(subject string) {
	NATSPublishErrors.WithLabelValues(subject).Inc()
}
