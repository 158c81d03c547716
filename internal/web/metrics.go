package web

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bnema/colorpref/internal/domain/entity"
)

const metricsNamespace = "colorpref"

// Metrics are the Prometheus collectors exported on /metrics.
type Metrics struct {
	optionChanges   *prometheus.CounterVec
	effectiveDark   prometheus.Gauge
	effectiveFlips  prometheus.Counter
	wsClients       prometheus.Gauge
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		optionChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "option_changes_total",
			Help:      "Number of theme option changes, by new option.",
		}, []string{"option"}),

		effectiveDark: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "effective_dark",
			Help:      "1 when the effective theme is dark, 0 when light.",
		}),

		effectiveFlips: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "effective_changes_total",
			Help:      "Number of effective theme changes.",
		}),

		wsClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "websocket_clients",
			Help:      "Number of connected websocket clients.",
		}),

		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests served, by route and status code.",
		}, []string{"route", "code"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

func (m *Metrics) observeOption(option entity.ThemeOption) {
	m.optionChanges.WithLabelValues(option.String()).Inc()
}

func (m *Metrics) observeEffective(effective entity.Effective, changed bool) {
	if effective.IsDark() {
		m.effectiveDark.Set(1)
	} else {
		m.effectiveDark.Set(0)
	}
	if changed {
		m.effectiveFlips.Inc()
	}
}

func (m *Metrics) setClients(n int) {
	m.wsClients.Set(float64(n))
}
