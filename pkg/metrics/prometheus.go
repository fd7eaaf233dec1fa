package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus collector of the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Orchestration
	orchestrations       *prometheus.CounterVec
	orchestrationLatency prometheus.Histogram
	eventsConsidered     prometheus.Counter
	eventsDuplicate      prometheus.Counter
	staleDestinations    prometheus.Counter

	// External feeds
	feedFailures *prometheus.CounterVec
	feedItems    *prometheus.CounterVec
	feedLatency  prometheus.Histogram

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	errorsByComponent *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "concierge",
		subsystem:        "engine",
		histogramBuckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 1000},
		constLabels:      map[string]string{},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.orchestrations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "orchestrations_total",
		Help:        "Total number of orchestration calls by resolved mode",
		ConstLabels: m.constLabels,
	}, []string{"mode"})

	m.orchestrationLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "orchestration_latency_milliseconds",
		Help:        "Histogram of engine orchestration latency in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})

	m.eventsConsidered = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "events_considered_total",
		Help:        "Total number of distinct feed events scored",
		ConstLabels: m.constLabels,
	})

	m.eventsDuplicate = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "events_duplicate_total",
		Help:        "Total number of feed events dropped for a repeated or empty id",
		ConstLabels: m.constLabels,
	})

	m.staleDestinations = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "stale_destinations_total",
		Help:        "Total number of destinations whose special was verified more than a day ago",
		ConstLabels: m.constLabels,
	})

	m.feedFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "feed",
		Name:        "fetch_failures_total",
		Help:        "Total number of failed external feed fetches",
		ConstLabels: m.constLabels,
	}, []string{"feed"})

	m.feedItems = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "feed",
		Name:        "items_total",
		Help:        "Total number of items converted from external feeds",
		ConstLabels: m.constLabels,
	}, []string{"feed"})

	m.feedLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   "feed",
		Name:        "fetch_latency_milliseconds",
		Help:        "Histogram of external feed fetch latency in milliseconds",
		Buckets:     []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		ConstLabels: m.constLabels,
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "http",
		Name:        "requests_total",
		Help:        "Total number of HTTP requests by endpoint and method",
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   "http",
		Name:        "request_duration_milliseconds",
		Help:        "HTTP request duration in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "status_code"})

	m.errorsByComponent = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "errors",
		Name:        "by_component_total",
		Help:        "Total number of errors by component and type",
		ConstLabels: m.constLabels,
	}, []string{"component", "error_type"})
}

// RecordOrchestration counts one orchestration in mode and its latency.
func (m *Manager) RecordOrchestration(mode string, latencyMs float64) {
	m.orchestrations.WithLabelValues(mode).Inc()
	m.orchestrationLatency.Observe(latencyMs)
}

// RecordEvents adds the scored and dropped event counts of one call.
func (m *Manager) RecordEvents(considered, duplicates int) {
	m.eventsConsidered.Add(float64(considered))
	m.eventsDuplicate.Add(float64(duplicates))
}

// RecordStaleDestinations adds the stale destination count of one call.
func (m *Manager) RecordStaleDestinations(n int) {
	m.staleDestinations.Add(float64(n))
}

// RecordFeedFetch records one feed fetch. A failed fetch adds no items.
func (m *Manager) RecordFeedFetch(feed string, items int, latencyMs float64, failed bool) {
	m.feedLatency.Observe(latencyMs)
	if failed {
		m.feedFailures.WithLabelValues(feed).Inc()
		return
	}
	m.feedItems.WithLabelValues(feed).Add(float64(items))
}

// RecordHTTPRequest records an HTTP request and its duration.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordError records an error with component and type labels.
func (m *Manager) RecordError(component, errorType string) {
	m.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// Global returns the process-wide manager registered on GetRegistry.
func Global() *Manager {
	return globalManager
}

// RecordOrchestration records on the global manager.
func RecordOrchestration(mode string, latencyMs float64) {
	globalManager.RecordOrchestration(mode, latencyMs)
}

// RecordHTTPRequest records on the global manager.
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

// RecordError records on the global manager.
func RecordError(component, errorType string) {
	globalManager.RecordError(component, errorType)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RegisterRuntimeCollectors adds the Go runtime and process collectors to reg.
// Collectors that are already registered are skipped.
func RegisterRuntimeCollectors(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return err
		}
	}
	return nil
}
