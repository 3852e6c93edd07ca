// Package health provides health monitoring for metrics-whisperer components
// with thread-safe status tracking and aggregation.
//
// The health package tracks the health of the pieces that make up the service,
// most importantly the connection to the metrics backend, and aggregates them
// into the system-wide status served by the HTTP health endpoint.
//
// # Health States
//
// The package supports three health states:
//   - Healthy: component operating normally
//   - Degraded: component operating with reduced functionality
//   - Unhealthy: component not functioning properly
//
// The three-state model matters here because an unreachable metrics backend
// does not take the service down. Question translation, request handling, and
// metric exposition all keep working; only query execution fails. That
// situation is degraded, not unhealthy, and the health endpoint reports it
// exactly that way.
//
// # Core Components
//
// Status: Individual component health state containing status level, descriptive
// message, timestamp, optional metrics, and hierarchical sub-statuses.
//
// Monitor: Thread-safe centralized tracking for multiple component health
// statuses with concurrent read/write access and automatic timestamp management.
//
// FromProbe: Converts the result of a backend connectivity probe into a Status
// with automatic error message sanitization.
//
// # Basic Usage
//
// Creating and tracking component health:
//
//	monitor := health.NewMonitor()
//
//	// Update component health
//	monitor.UpdateHealthy("demo-generator", "Emitting demonstration metrics")
//	monitor.Update("metrics-backend", health.FromProbe("metrics-backend", probeErr))
//
//	// Check individual component health
//	if status, exists := monitor.Get("metrics-backend"); exists {
//	    if status.IsDegraded() {
//	        log.Println("Backend unreachable, queries will fail")
//	    }
//	}
//
// # System-Wide Health Aggregation
//
// Combining component statuses into the system-wide indicator:
//
//	system := monitor.AggregateHealth("metrics-whisperer")
//
//	// Aggregation uses hierarchical rules:
//	// - Any unhealthy component → system unhealthy
//	// - Any degraded component (with no unhealthy) → system degraded
//	// - All healthy → system healthy
//
// The HTTP health endpoint maps the aggregate onto its two-value response
// vocabulary: a healthy aggregate reports "healthy", anything else reports
// "degraded". The endpoint itself always returns 200; health state is data,
// not an error.
//
// # Probe Conversion
//
// FromProbe turns a connectivity probe result into a Status:
//
//	err := client.Query(ctx, "up")
//	status := health.FromProbe("metrics-backend", err)
//	// err == nil → healthy, "Backend reachable"
//	// err != nil → degraded, sanitized error message
//
// # Health Metrics
//
// Attaching operational counters to a status:
//
//	status := health.NewHealthy("gateway", "Serving requests").
//	    WithMetrics(&health.Metrics{
//	        Uptime:        time.Since(start),
//	        QueriesServed: served.Load(),
//	    })
//
// # Security
//
// Error messages passed through FromProbe are automatically sanitized to remove
// potentially sensitive information before they can reach dashboards or API
// responses:
//
//	// Original probe error
//	err := "Get http://prometheus:9090/api/v1/query: connection refused"
//
//	// After sanitization
//	// "Get [URL] connection refused"
//
// Sanitization patterns:
//   - URLs: http://, https:// → [URL]
//   - File paths: /path/to/file, C:\path\to\file → [PATH]
//   - IP addresses: 192.168.1.100 → [IP]
//   - Ports: :8080 → :[PORT]
//   - Credentials: password=X, token=X, key=X, secret=X → [REDACTED]
//
// # Thread Safety
//
// All Monitor operations are thread-safe. The health endpoint reads aggregate
// state while the demo generator and probe paths update their components
// concurrently:
//
//	go monitor.UpdateHealthy("demo-generator", "Running")
//	go monitor.Update("metrics-backend", health.FromProbe("metrics-backend", err))
//
//	system := monitor.AggregateHealth("metrics-whisperer")
//
// The Monitor uses an RWMutex internally to allow concurrent reads while
// protecting writes. Status objects are immutable; methods like WithMetrics and
// WithSubStatus return new copies rather than modifying the original.
//
// # Design Decisions
//
// Three-State Model: Chose healthy/degraded/unhealthy over binary
// healthy/unhealthy so a lost backend connection can be distinguished from a
// broken service. The health endpoint keeps serving 200 either way.
//
// Automatic Sanitization: Probe error messages are sanitized by default with no
// opt-out. Backend URLs routinely carry hostnames, ports, and occasionally
// credentials, none of which belong in a health response.
//
// Value-Based Status: Status is a struct, not *Status, making it immutable and
// preventing accidental mutation. Methods like WithMetrics return new copies.
//
// Conservative Aggregation: System health follows worst-case rules. A single
// unhealthy component marks the entire system unhealthy so problems are not
// masked by healthy components.
package health
