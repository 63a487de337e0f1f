package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .05, .1, .25, .5, 1, 2, 5},
		},
		[]string{"method", "route"},
	)

	ReportsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reports_created_total",
			Help: "Total number of submitted reports by computed priority",
		},
		[]string{"priority"},
	)

	OtpSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "otp_sent_total",
			Help: "Total number of OTP emails by purpose and outcome",
		},
		[]string{"purpose", "status"},
	)

	ReportEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_events_published_total",
			Help: "Total number of report events handed to the broker by outcome",
		},
		[]string{"status"},
	)

	UnreadCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_unread_cache_lookups_total",
			Help: "Unread notification counter cache lookups by result",
		},
		[]string{"result"},
	)

	JobRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "job_runs_total",
			Help: "Background job runs by job name and outcome",
		},
		[]string{"job", "status"},
	)
)

func Handler() http.Handler {
	return promhttp.Handler()
}
