// Package metrics provides Prometheus metrics for the arcade leaderboard
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace string
	registry  prometheus.Registerer

	// Submission outcomes: improved, frozen, cooldown, not_improved.
	submissionsTotal *prometheus.CounterVec
	submissionErrors prometheus.Counter

	// Leaderboard reads.
	leaderboardReads   prometheus.Counter
	snapshotBuilds     prometheus.Counter
	aggregationLatency prometheus.Histogram

	// HTTP performance.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec

	// Store state.
	storeRecords prometheus.Gauge
	storeWallets prometheus.Gauge
	frozen       prometheus.Gauge

	// System health.
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers all collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "arcade",
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)

	m.submissionsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "submissions_total",
		Help:      "Score submissions by outcome.",
	}, []string{"outcome"})
	m.submissionErrors = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "submission_errors_total",
		Help:      "Submissions that failed with a storage or internal error.",
	})
	m.leaderboardReads = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "leaderboard_reads_total",
		Help:      "Leaderboard read requests served.",
	})
	m.snapshotBuilds = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "snapshot_builds_total",
		Help:      "Frozen final-results snapshots built.",
	})
	m.aggregationLatency = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "aggregation_latency_ms",
		Help:      "Latency of leaderboard aggregation in milliseconds.",
		Buckets:   []float64{0.1, 0.5, 1, 5, 10, 50, 100, 500},
	})
	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status code.",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	}, []string{"endpoint", "method", "status"})
	m.errorsByEndpoint = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "errors_by_endpoint_total",
		Help:      "Error responses by endpoint and error type.",
	}, []string{"endpoint", "type"})
	m.storeRecords = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "store_records",
		Help:      "Total score records in the store.",
	})
	m.storeWallets = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "store_wallets",
		Help:      "Distinct wallets with at least one record.",
	})
	m.frozen = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "frozen",
		Help:      "1 when the leaderboard is frozen, 0 otherwise.",
	})
	m.systemMemoryUsage = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "system_memory_bytes",
		Help:      "Current heap allocation in bytes.",
	})
	m.systemGoroutineCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines.",
	})

	return m
}

// GetRegistry exposes the custom registry for the /healthz handler.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordSubmission counts a submission outcome
// (improved, frozen, cooldown, not_improved).
func RecordSubmission(outcome string) {
	globalManager.submissionsTotal.WithLabelValues(outcome).Inc()
}

// RecordSubmissionError counts a hard submission failure.
func RecordSubmissionError() {
	globalManager.submissionErrors.Inc()
}

// RecordLeaderboardRead counts a leaderboard read.
func RecordLeaderboardRead() {
	globalManager.leaderboardReads.Inc()
}

// RecordSnapshotBuild counts a frozen snapshot build.
func RecordSnapshotBuild() {
	globalManager.snapshotBuilds.Inc()
}

// RecordAggregationLatency records aggregation latency in milliseconds.
func RecordAggregationLatency(ms float64) {
	globalManager.aggregationLatency.Observe(ms)
}

// RecordHTTPRequest counts an HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records request latency in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
}

// RecordErrorByEndpoint counts an error response.
func RecordErrorByEndpoint(endpoint, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, errorType).Inc()
}

// UpdateStoreRecords sets the store record gauge.
func UpdateStoreRecords(n int) {
	globalManager.storeRecords.Set(float64(n))
}

// UpdateStoreWallets sets the distinct-wallet gauge.
func UpdateStoreWallets(n int) {
	globalManager.storeWallets.Set(float64(n))
}

// UpdateFrozen sets the frozen gauge.
func UpdateFrozen(frozen bool) {
	if frozen {
		globalManager.frozen.Set(1)
		return
	}
	globalManager.frozen.Set(0)
}

// UpdateSystemMemoryUsage sets the heap allocation gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(n int) {
	globalManager.systemGoroutineCount.Set(float64(n))
}
