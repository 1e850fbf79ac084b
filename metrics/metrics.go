// Package metrics exposes prometheus instrumentation for API calls.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

func New() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "openai_client_requests_total",
				Help: "Total number of API requests",
			},
			[]string{"backend", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "openai_client_request_duration_seconds",
				Help:    "API request duration in seconds",
				Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"backend"},
		),
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func (m *Metrics) RecordRequest(backend, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(backend, status).Inc()
	m.RequestDuration.WithLabelValues(backend).Observe(duration.Seconds())
}
