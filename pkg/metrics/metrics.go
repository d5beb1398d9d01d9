// Package metrics provides Prometheus metrics for the IPL analysis pipeline.
//
// The pipeline is a batch job with no scrape endpoint, so metrics are
// gathered from a private registry and exported in text exposition format
// (node-exporter textfile collector convention) at the end of a run.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the analysis pipeline.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Dataset metrics
	rowsLoaded   *prometheus.GaugeVec
	loadDuration prometheus.Histogram
	loadErrors   prometheus.Counter

	// Analysis metrics
	analysesCompleted prometheus.Counter
	analysisDuration  *prometheus.HistogramVec

	// Render metrics
	chartsWritten  prometheus.Counter
	renderDuration *prometheus.HistogramVec
	renderErrors   prometheus.Counter

	// Run metrics
	runDuration prometheus.Gauge
	lastRunUnix prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "ipl",
		subsystem:        "analysis",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.rowsLoaded = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "rows_loaded",
			Help:      "Number of rows loaded per source table",
		},
		[]string{"table"},
	)

	m.loadDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "load_duration_seconds",
		Help:      "Histogram of dataset load duration in seconds",
		Buckets:   m.histogramBuckets,
	})

	m.loadErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "load_errors_total",
		Help:      "Total number of dataset load failures",
	})

	m.analysesCompleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analyses_completed_total",
		Help:      "Total number of analyses that produced a result",
	})

	m.analysisDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "analysis_duration_seconds",
			Help:      "Aggregation duration in seconds per analysis",
			Buckets:   m.histogramBuckets,
		},
		[]string{"analysis"},
	)

	m.chartsWritten = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "charts_written_total",
		Help:      "Total number of chart images written to disk",
	})

	m.renderDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "render_duration_seconds",
			Help:      "Chart render duration in seconds per analysis",
			Buckets:   m.histogramBuckets,
		},
		[]string{"analysis"},
	)

	m.renderErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "render_errors_total",
		Help:      "Total number of chart render failures",
	})

	m.runDuration = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_duration_seconds",
		Help:      "Wall-clock duration of the last pipeline run in seconds",
	})

	m.lastRunUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix timestamp of the last completed pipeline run",
	})
}

// Manager methods; all are no-ops when metrics are disabled.

func (m *Manager) SetRowsLoaded(table string, rows int) {
	if !m.enabled {
		return
	}
	m.rowsLoaded.WithLabelValues(table).Set(float64(rows))
}

func (m *Manager) ObserveLoadDuration(d time.Duration) {
	if !m.enabled {
		return
	}
	m.loadDuration.Observe(d.Seconds())
}

func (m *Manager) RecordLoadError() {
	if !m.enabled {
		return
	}
	m.loadErrors.Inc()
}

func (m *Manager) RecordAnalysisCompleted(analysis string, d time.Duration) {
	if !m.enabled {
		return
	}
	m.analysesCompleted.Inc()
	m.analysisDuration.WithLabelValues(analysis).Observe(d.Seconds())
}

func (m *Manager) RecordChartWritten(analysis string, d time.Duration) {
	if !m.enabled {
		return
	}
	m.chartsWritten.Inc()
	m.renderDuration.WithLabelValues(analysis).Observe(d.Seconds())
}

func (m *Manager) RecordRenderError() {
	if !m.enabled {
		return
	}
	m.renderErrors.Inc()
}

func (m *Manager) RecordRunCompleted(d time.Duration) {
	if !m.enabled {
		return
	}
	m.runDuration.Set(d.Seconds())
	m.lastRunUnix.Set(float64(time.Now().Unix()))
}

// Package-level helpers delegating to the global manager.

func SetRowsLoaded(table string, rows int) { globalManager.SetRowsLoaded(table, rows) }

func ObserveLoadDuration(d time.Duration) { globalManager.ObserveLoadDuration(d) }

func RecordLoadError() { globalManager.RecordLoadError() }

func RecordAnalysisCompleted(analysis string, d time.Duration) {
	globalManager.RecordAnalysisCompleted(analysis, d)
}

func RecordChartWritten(analysis string, d time.Duration) {
	globalManager.RecordChartWritten(analysis, d)
}

func RecordRenderError() { globalManager.RecordRenderError() }

func RecordRunCompleted(d time.Duration) { globalManager.RecordRunCompleted(d) }
