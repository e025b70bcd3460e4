// Package metrics provides Prometheus metrics for the tripace estimator.
package metrics

import (
	"fmt"
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus collector of the service.
type Manager struct {
	namespace         string
	subsystem         string
	histogramBuckets  []float64
	finishTimeBuckets []float64
	enabled           bool
	customLabels      map[string]string
	registry          prometheus.Registerer

	// Calculation metrics
	calculations       *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	computationErrors  prometheus.Counter
	tiers              *prometheus.CounterVec
	finishTime         *prometheus.HistogramVec

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorRateByEndpoint *prometheus.CounterVec

	systemGoroutineCount prometheus.Gauge
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
		namespace:         "tripace",
		subsystem:         "estimator",
		histogramBuckets:  prometheus.DefBuckets,
		finishTimeBuckets: []float64{60, 90, 120, 150, 180, 240, 300, 360, 480, 600, 720, 900},
		enabled:           true,
		customLabels:      make(map[string]string),
		registry:          prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one block per collector
	auto := promauto.With(m.registry)
	constLabels := prometheus.Labels(m.customLabels)

	m.calculations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "calculations_total",
			Help:        "Total number of successful finish-time calculations by race category",
			ConstLabels: constLabels,
		},
		[]string{"category"},
	)

	m.validationFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "validation_failures_total",
			Help:        "Total number of rejected input fields",
			ConstLabels: constLabels,
		},
		[]string{"field"},
	)

	m.computationErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "computation_errors_total",
		Help:        "Total number of calculations that failed after validation",
		ConstLabels: constLabels,
	})

	m.tiers = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "tier_assignments_total",
			Help:        "Performance tiers assigned per discipline",
			ConstLabels: constLabels,
		},
		[]string{"discipline", "tier"},
	)

	m.finishTime = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "finish_time_minutes",
			Help:        "Estimated total finish time in minutes",
			Buckets:     m.finishTimeBuckets,
			ConstLabels: constLabels,
		},
		[]string{"category"},
	)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests by endpoint and method",
			ConstLabels: constLabels,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "http_request_duration_milliseconds",
			Help:        "HTTP request duration in milliseconds",
			Buckets:     m.histogramBuckets,
			ConstLabels: constLabels,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "errors_by_endpoint_total",
			Help:        "Errors returned to clients by endpoint, method and error type",
			ConstLabels: constLabels,
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "system_goroutine_count",
		Help:        "Number of goroutines",
		ConstLabels: constLabels,
	})
}

// RecordCalculation counts a successful calculation.
func (m *Manager) RecordCalculation(category string) {
	if !m.enabled {
		return
	}
	m.calculations.WithLabelValues(category).Inc()
}

// RecordValidationFailure counts one rejected field.
func (m *Manager) RecordValidationFailure(field string) {
	if !m.enabled {
		return
	}
	m.validationFailures.WithLabelValues(field).Inc()
}

// RecordComputationError counts a calculation that failed after validation.
func (m *Manager) RecordComputationError() {
	if !m.enabled {
		return
	}
	m.computationErrors.Inc()
}

// RecordTier counts a tier assignment for a discipline.
func (m *Manager) RecordTier(discipline, tier string) {
	if !m.enabled {
		return
	}
	m.tiers.WithLabelValues(discipline, tier).Inc()
}

// ObserveFinishTime records an estimated total time. Negative or non-finite
// values are refused.
func (m *Manager) ObserveFinishTime(category string, minutes float64) error {
	if math.IsNaN(minutes) || math.IsInf(minutes, 0) || minutes < 0 {
		return fmt.Errorf("%w: finish time %v", ErrObserveFailed, minutes)
	}
	if !m.enabled {
		return nil
	}
	m.finishTime.WithLabelValues(category).Observe(minutes)
	return nil
}

// RecordHTTPRequest counts an HTTP request.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string) {
	if !m.enabled {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records an HTTP request duration in milliseconds.
func (m *Manager) RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	if !m.enabled {
		return
	}
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByEndpoint counts an error response.
func (m *Manager) RecordErrorByEndpoint(endpoint, method, errorType string) {
	if !m.enabled {
		return
	}
	m.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func (m *Manager) UpdateSystemGoroutineCount(count int) {
	if !m.enabled {
		return
	}
	m.systemGoroutineCount.Set(float64(count))
}

// RecordCalculation increments the calculations counter.
func RecordCalculation(category string) {
	globalManager.RecordCalculation(category)
}

// RecordValidationFailure increments the validation failures counter.
func RecordValidationFailure(field string) {
	globalManager.RecordValidationFailure(field)
}

// RecordComputationError increments the computation errors counter.
func RecordComputationError() {
	globalManager.RecordComputationError()
}

// RecordTier increments the tier assignments counter.
func RecordTier(discipline, tier string) {
	globalManager.RecordTier(discipline, tier)
}

// ObserveFinishTime records an estimated total time on the global manager.
func ObserveFinishTime(category string, minutes float64) error {
	return globalManager.ObserveFinishTime(category, minutes)
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode)
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.RecordHTTPRequestDuration(endpoint, method, statusCode, duration)
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.RecordErrorByEndpoint(endpoint, method, errorType)
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.UpdateSystemGoroutineCount(count)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
