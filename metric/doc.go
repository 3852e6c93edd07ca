// Package metric provides Prometheus-based metrics collection for the
// metrics-whisperer service.
//
// The package offers a centralized metrics registry managing both core service
// metrics (demonstration gauges and counters, translation and backend
// instrumentation) and custom component-specific metrics. The registry's
// exposition handler serves the Prometheus text format on the main service
// listener.
//
// # Architecture
//
// The package follows a three-layer design:
//
//  1. Core Metrics: service-level metrics automatically registered (Metrics type)
//  2. Component Registry: extensible registration for component-specific metrics (MetricsRegistrar interface)
//  3. Exposition Handler: Prometheus text-format handler mounted at GET /metrics
//
// The same registry object is shared by the HTTP gateway and the demonstration
// metrics generator; it is the only state those two ever touch in common.
//
// # Core Metrics
//
// Four demonstration metrics carry no namespace because the query translator's
// PromQL templates reference them by exact name:
//
//   - http_requests_total{method,endpoint}
//   - http_request_duration_seconds
//   - cpu_usage_percent
//   - memory_usage_bytes
//
// Renaming any of these silently breaks the canned queries, so treat the names
// as part of the service contract.
//
// Service-internal metrics use the "whisperer" namespace:
//
//   - whisperer_translations_total{outcome}
//   - whisperer_backend_requests_total{outcome}
//   - whisperer_backend_request_duration_seconds
//   - whisperer_health_check_status{component}
//
// Access core metrics through the registry:
//
//	registry := metric.NewMetricsRegistry()
//	core := registry.CoreMetrics()
//
//	core.RecordRequest("POST", "/query")
//	core.RecordRequestDuration(0.183)
//	core.RecordTranslation(metric.TranslationMatched)
//	core.RecordBackendRequest(metric.BackendSuccess)
//	core.RecordHealthStatus("backend", true)
//
// # Component-Specific Metrics
//
// Components can register custom metrics through the registry:
//
//	responses := prometheus.NewCounterVec(prometheus.CounterOpts{
//	    Namespace: "whisperer",
//	    Subsystem: "gateway",
//	    Name:      "responses_total",
//	    Help:      "HTTP responses by endpoint and status code",
//	}, []string{"endpoint", "code"})
//	err := registry.RegisterCounterVec("gateway", "responses_total", responses)
//
// Registration methods return errors for duplicate registration (tracked both
// at the registry level and by Prometheus itself) and for invalid collectors.
//
// # MetricsRegistrar Interface
//
// Components accept the MetricsRegistrar interface rather than the concrete
// registry, which keeps them testable with mock registrars:
//
//	func NewGateway(metrics metric.MetricsRegistrar) (*Gateway, error) {
//	    ...
//	    if err := metrics.RegisterCounterVec("gateway", "responses_total", vec); err != nil {
//	        return nil, err
//	    }
//	}
//
// # Exposition
//
// The registry exposes its contents through a standard promhttp handler with
// OpenMetrics enabled:
//
//	mux.Handle("/metrics", registry.Handler())
//
// The handler rides the main service listener; there is no separate metrics
// port.
//
// # Thread Safety
//
// All registry operations are thread-safe:
//   - Registration methods use mutex protection
//   - Metric recording is lock-free (Prometheus guarantee)
//   - CoreMetrics() returns a thread-safe shared instance
//   - PrometheusRegistry() is safe for concurrent access
//
// The request handlers and the demonstration generator record concurrently
// with no further coordination; every shared metric is a monotonic counter or
// a last-write-wins gauge.
package metric
