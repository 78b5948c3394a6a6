package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests being served",
		},
	)

	clientsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clients_submitted_total",
			Help: "Total number of client records submitted",
		},
	)

	clientStatusUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "client_status_updates_total",
			Help: "Total number of client status changes by new status",
		},
		[]string{"status"},
	)

	emailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emails_sent_total",
			Help: "Total number of email send attempts by result",
		},
		[]string{"result"},
	)
)

func RecordClientSubmitted() {
	clientsSubmitted.Inc()
}

func RecordStatusUpdate(status string) {
	clientStatusUpdates.WithLabelValues(status).Inc()
}

// RecordEmail counts a send attempt; result is "sent", "unconfigured" or "failed".
func RecordEmail(result string) {
	emailsSent.WithLabelValues(result).Inc()
}
