package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics live in a registry owned by one server so several servers can coexist.
type Metrics struct {
	Registry    *prometheus.Registry
	ReqCount    *prometheus.CounterVec
	ReqDuration *prometheus.HistogramVec
	ErrorCount  *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		ReqCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dayspark_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		ReqDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "dayspark_request_duration_seconds",
				Help: "Request duration seconds",
			},
			[]string{"method", "path"},
		),
		ErrorCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dayspark_errors_total",
				Help: "Total handler errors",
			},
			[]string{"handler", "type"},
		),
	}
	m.Registry.MustRegister(m.ReqCount, m.ReqDuration, m.ErrorCount)
	return m
}
