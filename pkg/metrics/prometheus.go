// Package metrics provides Prometheus metrics for the Tandem matchmaking service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the Tandem service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Core Business Metrics - What really matters for a matchmaking engine
	pairsEvaluated  prometheus.Counter
	pairErrors      prometheus.Counter
	matchLatency    prometheus.Histogram
	reportsBuilt    prometheus.Counter
	reportDuration  prometheus.Histogram
	matchesReturned prometheus.Histogram

	// Roster Metrics - Business scale indicators
	rosterSeekers   prometheus.Gauge
	rosterProviders prometheus.Gauge

	// Operational Health Metrics
	reportQueueSize prometheus.Gauge
	workerCount     prometheus.Gauge

	// Worker Metrics - Processing performance
	workerProcessingLatency prometheus.Histogram
	workerErrors            prometheus.Counter

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Enhanced Error Metrics - Detailed error tracking
	errorsByComponent *prometheus.CounterVec
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
		namespace:        "tandem",
		subsystem:        "matchmaking",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
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

func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Core Business Metrics
	m.pairsEvaluated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pairs_evaluated_total",
		Help:      "Total number of seeker/provider pairs scored",
	})

	m.pairErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pair_errors_total",
		Help:      "Total number of pair evaluations aborted by bad input data",
	})

	m.matchLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "match_latency_milliseconds",
		Help:      "Histogram of per-seeker best-match computation latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.reportsBuilt = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reports_built_total",
		Help:      "Total number of population reports generated",
	})

	m.reportDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "report_duration_milliseconds",
		Help:      "Histogram of full population report build duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.matchesReturned = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matches_returned",
		Help:      "Histogram of ranked matches returned per seeker",
		Buckets:   []float64{0, 1, 2, 3, 4, 5, 10, 20},
	})

	// Roster Metrics
	m.rosterSeekers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_seekers",
		Help:      "Current number of seekers in the roster",
	})

	m.rosterProviders = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_providers",
		Help:      "Current number of providers in the roster",
	})

	// Operational Health Metrics
	m.reportQueueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "report_queue_size",
		Help:      "Current size of the report job queue (backlog indicator)",
	})

	m.workerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_count",
		Help:      "Current number of report workers (processing capacity)",
	})

	// Worker Metrics
	m.workerProcessingLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_processing_latency_milliseconds",
		Help:      "Histogram of report job processing latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.workerErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_errors_total",
		Help:      "Total number of report jobs that failed",
	})

	// HTTP Performance Metrics
	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	// Enhanced Error Metrics
	m.errorsByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Total number of errors by component and error type",
		},
		[]string{"component", "error_type"},
	)
}

// RecordPairEvaluated increments the evaluated pairs counter.
func RecordPairEvaluated() {
	globalManager.pairsEvaluated.Inc()
}

// RecordPairsEvaluated adds count to the evaluated pairs counter.
func RecordPairsEvaluated(count int) {
	if count > 0 {
		globalManager.pairsEvaluated.Add(float64(count))
	}
}

// RecordPairError increments the per-pair error counter.
func RecordPairError() {
	globalManager.pairErrors.Inc()
}

// RecordPairErrors adds count to the per-pair error counter.
func RecordPairErrors(count int) {
	if count > 0 {
		globalManager.pairErrors.Add(float64(count))
	}
}

// RecordMatchLatency records per-seeker matching latency in milliseconds.
func RecordMatchLatency(latencyMs float64) {
	globalManager.matchLatency.Observe(latencyMs)
}

// RecordReportBuilt increments the generated reports counter.
func RecordReportBuilt() {
	globalManager.reportsBuilt.Inc()
}

// RecordReportDuration records population report build duration in milliseconds.
func RecordReportDuration(durationMs float64) {
	globalManager.reportDuration.Observe(durationMs)
}

// RecordMatchesReturned records how many ranked matches a seeker received.
func RecordMatchesReturned(count int) {
	globalManager.matchesReturned.Observe(float64(count))
}

// UpdateRosterSeekers sets the current seeker roster size.
func UpdateRosterSeekers(count int) {
	globalManager.rosterSeekers.Set(float64(count))
}

// UpdateRosterProviders sets the current provider roster size.
func UpdateRosterProviders(count int) {
	globalManager.rosterProviders.Set(float64(count))
}

// UpdateReportQueueSize sets the current report job queue size.
func UpdateReportQueueSize(size int) {
	globalManager.reportQueueSize.Set(float64(size))
}

// UpdateWorkerCount sets the current report worker count.
func UpdateWorkerCount(count int) {
	globalManager.workerCount.Set(float64(count))
}

// RecordWorkerProcessingLatency records report job processing latency in milliseconds.
func RecordWorkerProcessingLatency(latencyMs float64) {
	globalManager.workerProcessingLatency.Observe(latencyMs)
}

// RecordWorkerError increments the failed report jobs counter.
func RecordWorkerError() {
	globalManager.workerErrors.Inc()
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByComponent increments the per-component error counter.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
