package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	SignupsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "signups_total",
			Help: "Total successful signups",
		},
	)
	LoginsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Total successful logins",
		},
	)
	ReportsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reports_submitted_total",
			Help: "Total reports accepted",
		},
	)
)

// /metrics endpoint handler
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(SignupsTotal)
	prometheus.MustRegister(LoginsTotal)
	prometheus.MustRegister(ReportsSubmitted)
}
