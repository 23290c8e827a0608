// SPDX-License-Identifier: MIT

package diag

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/fesdiff/sweep"
)

const namespace = "fesdiff"

// Metrics is a sweep.Observer recording per-file counters in a private registry.
type Metrics struct {
	reg *prometheus.Registry

	files    prometheus.Counter
	rows     *prometheus.CounterVec
	fallback prometheus.Counter
	errors   *prometheus.CounterVec
	deltaF   prometheus.Gauge
	duration prometheus.Histogram
}

var _ sweep.Observer = (*Metrics)(nil)

// NewMetrics registers every instrument on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		reg: reg,
		files: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_processed_total",
			Help:      "FES files loaded and reduced",
		}),
		rows: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_total",
			Help:      "Table rows by assigned state (a, b, excluded)",
		}, []string{"state"}),
		fallback: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallback_total",
			Help:      "Files whose ΔF fell back to 0.0",
		}),
		errors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Run failures by error class",
		}, []string{"code"}),
		deltaF: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "delta_f",
			Help:      "Most recently computed free energy difference",
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "file_duration_seconds",
			Help:      "Time to load and reduce one file",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
}

// Observe implements sweep.Observer.
func (m *Metrics) Observe(rec sweep.Record, elapsed time.Duration) {
	res := rec.Result
	m.files.Inc()
	m.rows.WithLabelValues("a").Add(float64(res.CountA))
	m.rows.WithLabelValues("b").Add(float64(res.CountB))
	m.rows.WithLabelValues("excluded").Add(float64(res.Excluded))
	if res.Fallback {
		m.fallback.Inc()
	}
	m.deltaF.Set(res.DeltaF)
	m.duration.Observe(elapsed.Seconds())
}

// IncError counts a failed run under its class.
func (m *Metrics) IncError(c Code) { m.errors.WithLabelValues(string(c)).Inc() }

// Registry exposes the gatherer, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// WriteTextfile writes the registry in text exposition format to path,
// atomically, for a node-exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
