// Package metrics provides Prometheus metrics for the engagement analytics service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Pipeline metrics, labeled by view ("hourly_engagement", "visit_summary").
	pipelineRuns     *prometheus.CounterVec
	pipelineErrors   *prometheus.CounterVec
	pipelineDuration *prometheus.HistogramVec

	// Scoring pipeline internals.
	eventsScored      prometheus.Counter
	timezoneFallbacks prometheus.Counter

	// Ingestion metrics.
	eventsRecorded  prometheus.Counter
	eventsDuplicate prometheus.Counter
	queueDepth      prometheus.Gauge
	queueCapacity   prometheus.Gauge
	workerErrors    prometheus.Counter

	// HTTP metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global manager on a custom registry, so the default Go collectors stay out.
var (
	customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry
	globalManager  *Manager                   //nolint:gochecknoglobals // singleton manager
)

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with the given options.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "huddled",
		subsystem:        "analytics",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initialize()
	return m
}

func (m *Manager) initialize() {
	auto := promauto.With(m.registry)

	m.pipelineRuns = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pipeline_runs_total",
		Help:      "Total number of completed pipeline runs per view",
	}, []string{"view"})

	m.pipelineErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pipeline_errors_total",
		Help:      "Total number of failed pipeline runs per view",
	}, []string{"view"})

	m.pipelineDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pipeline_duration_seconds",
		Help:      "Duration of pipeline runs per view",
		Buckets:   m.histogramBuckets,
	}, []string{"view"})

	m.eventsScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_scored_total",
		Help:      "Total number of user events localized and scored",
	})

	m.timezoneFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "timezone_fallbacks_total",
		Help:      "Total number of users whose timezone failed to resolve and fell back to UTC",
	})

	m.eventsRecorded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_recorded_total",
		Help:      "Total number of ingested user events persisted to the store",
	})

	m.eventsDuplicate = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_duplicate_total",
		Help:      "Total number of duplicate ingested events detected",
	})

	m.queueDepth = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "event_queue_depth",
		Help:      "Current number of events waiting in the intake queue",
	})

	m.queueCapacity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "event_queue_capacity",
		Help:      "Configured capacity of the intake queue",
	})

	m.workerErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_errors_total",
		Help:      "Total number of errors while persisting ingested events",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by endpoint, method and status",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration by endpoint, method and status",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})
}

// GetRegistry returns the custom registry the global manager registers on.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers operating on the global manager.

func RecordPipelineRun(view string, seconds float64) {
	globalManager.pipelineRuns.WithLabelValues(view).Inc()
	globalManager.pipelineDuration.WithLabelValues(view).Observe(seconds)
}

func RecordPipelineError(view string) {
	globalManager.pipelineErrors.WithLabelValues(view).Inc()
}

func RecordEventsScored(n int) {
	globalManager.eventsScored.Add(float64(n))
}

func RecordTimezoneFallback() {
	globalManager.timezoneFallbacks.Inc()
}

func RecordEventRecorded() {
	globalManager.eventsRecorded.Inc()
}

func RecordEventDuplicate() {
	globalManager.eventsDuplicate.Inc()
}

func UpdateQueueDepth(n int) {
	globalManager.queueDepth.Set(float64(n))
}

func UpdateQueueCapacity(n int) {
	globalManager.queueCapacity.Set(float64(n))
}

func RecordWorkerError() {
	globalManager.workerErrors.Inc()
}

func RecordHTTPRequest(endpoint, method, status string, seconds float64) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(seconds)
}
