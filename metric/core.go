package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all metrics the service records.
//
// The demonstration metrics carry no namespace on purpose: the query
// translator's PromQL templates target these exact names, so renaming them
// breaks every canned query.
type Metrics struct {
	// Demonstration metrics (names are part of the query contract)
	RequestsTotal   *prometheus.CounterVec
	RequestDuration prometheus.Histogram
	CPUUsage        prometheus.Gauge
	MemoryUsage     prometheus.Gauge

	// Service metrics
	TranslationsTotal *prometheus.CounterVec
	BackendRequests   *prometheus.CounterVec
	BackendDuration   prometheus.Histogram
	HealthCheckStatus *prometheus.GaugeVec
}

// Translation outcomes recorded on TranslationsTotal
const (
	TranslationMatched  = "matched"
	TranslationFallback = "fallback"
)

// Backend request outcomes recorded on BackendRequests
const (
	BackendSuccess     = "success"
	BackendUnreachable = "unreachable"
	BackendRejected    = "rejected"
	BackendError       = "error"
)

// NewMetrics creates a new Metrics instance with all service metrics
func NewMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "endpoint"},
		),

		RequestDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
		),

		CPUUsage: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "cpu_usage_percent",
				Help: "Current CPU usage percentage",
			},
		),

		MemoryUsage: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "memory_usage_bytes",
				Help: "Current memory usage in bytes",
			},
		),

		TranslationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "whisperer",
				Name:      "translations_total",
				Help:      "Natural language translations by outcome (matched or fallback)",
			},
			[]string{"outcome"},
		),

		BackendRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "whisperer",
				Subsystem: "backend",
				Name:      "requests_total",
				Help:      "Prometheus backend requests by outcome",
			},
			[]string{"outcome"},
		),

		BackendDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "whisperer",
				Subsystem: "backend",
				Name:      "request_duration_seconds",
				Help:      "Prometheus backend request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),

		HealthCheckStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "whisperer",
				Subsystem: "health",
				Name:      "check_status",
				Help:      "Health check status (0=unhealthy, 1=healthy)",
			},
			[]string{"component"},
		),
	}
}

// RecordRequest increments the HTTP request counter
func (c *Metrics) RecordRequest(method, endpoint string) {
	c.RequestsTotal.WithLabelValues(method, endpoint).Inc()
}

// RecordRequestDuration records HTTP request latency in seconds
func (c *Metrics) RecordRequestDuration(seconds float64) {
	c.RequestDuration.Observe(seconds)
}

// RecordCPUUsage updates the CPU usage gauge
func (c *Metrics) RecordCPUUsage(percent float64) {
	c.CPUUsage.Set(percent)
}

// RecordMemoryUsage updates the memory usage gauge
func (c *Metrics) RecordMemoryUsage(bytes float64) {
	c.MemoryUsage.Set(bytes)
}

// RecordTranslation increments the translation counter for an outcome
func (c *Metrics) RecordTranslation(outcome string) {
	c.TranslationsTotal.WithLabelValues(outcome).Inc()
}

// RecordBackendRequest increments the backend request counter for an outcome
func (c *Metrics) RecordBackendRequest(outcome string) {
	c.BackendRequests.WithLabelValues(outcome).Inc()
}

// RecordBackendDuration records backend request time
func (c *Metrics) RecordBackendDuration(duration time.Duration) {
	c.BackendDuration.Observe(duration.Seconds())
}

// RecordHealthStatus updates health check status for a component
func (c *Metrics) RecordHealthStatus(component string, healthy bool) {
	value := 0.0
	if healthy {
		value = 1.0
	}
	c.HealthCheckStatus.WithLabelValues(component).Set(value)
}
