// Package gateway exposes the service over HTTP: the query endpoint,
// the liveness and health reports, and the metrics exposition.
//
// # Routes
//
// Four routes on one chi router:
//   - POST /query: answer a natural-language question
//   - GET /: liveness message
//   - GET /health: aggregated component health, always HTTP 200
//   - GET /metrics: Prometheus exposition of the service registry
//
// # Error Mapping
//
// Pipeline failures map onto the wire by error class: transient
// (backend unreachable) → 503 with a fixed message, backend rejection →
// 400 carrying the backend's error text, anything else → 500 with the
// root cause. Handler panics are recovered by middleware and rendered
// as 500 "An unexpected error occurred". Every error body has the shape
// {"error": <message>, "status": <code>}.
//
// # Middleware
//
// Requests pass through request-ID propagation (incoming X-Request-ID
// honoured, UUID minted otherwise), structured request logging, panic
// recovery, and CORS (origin reflection with credentials, preflight
// short-circuit) in that order.
package gateway
