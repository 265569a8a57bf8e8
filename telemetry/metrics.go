// Package telemetry wires search runs into prometheus metrics and builds the
// slog loggers used by the command-line tools.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridpath/astar"
)

// Metrics holds the collectors for search runs. Each Metrics owns its own
// registry so tests and multiple tools never collide on registration.
type Metrics struct {
	Registry *prometheus.Registry

	runs     *prometheus.CounterVec
	expanded prometheus.Histogram
	pathLen  prometheus.Histogram
	duration *prometheus.HistogramVec
}

// NewMetrics registers the gridpath collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_runs_total",
			Help: "Search runs by terminal status.",
		}, []string{"status"}),
		expanded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_expanded_cells",
			Help:    "Cells expanded per search run.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~262k
		}),
		pathLen: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_path_length",
			Help:    "Step cost of found paths.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_run_duration_seconds",
			Help:    "Wall time of search runs, including onStep callbacks.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}, []string{"status"}),
	}
	reg.MustRegister(m.runs, m.expanded, m.pathLen, m.duration)

	return m
}

// Observe records one finished run.
func (m *Metrics) Observe(res *astar.Result, took time.Duration) {
	if res == nil {
		return
	}
	status := res.Status.String()
	m.runs.WithLabelValues(status).Inc()
	m.expanded.Observe(float64(res.Expanded))
	m.duration.WithLabelValues(status).Observe(took.Seconds())
	if res.Status == astar.Found {
		m.pathLen.Observe(float64(res.Cost))
	}
}

// Handler exposes the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
