// Package promclient executes instant queries against a Prometheus
// server over its HTTP API.
//
// The client is deliberately thin: one GET per query with a fixed
// timeout, no retries, no result caching. Resilience decisions belong
// to the caller, which maps the classified failures onto its own
// responses.
//
// # Failure Classification
//
// Query failures carry a classification from the errors package:
//
//   - Transient: the backend could not be reached at all (connection
//     refused, timeout, DNS failure). Chains to ErrBackendUnreachable.
//   - Invalid: transport succeeded but the response payload reports an
//     error status. The chain carries an *APIError with the backend's
//     own error text, so callers can surface it verbatim.
//   - Fatal: the response could not be read or decoded.
//
// The payload status decides rejection, not the HTTP status code:
// Prometheus reports query errors with non-2xx codes and the same JSON
// envelope, and proxies can produce non-JSON bodies with any code.
//
// # Results
//
// Query returns the response's data object with the result kept as raw
// JSON, so callers that relay it keep the backend's exact payload.
// Vector decodes it for callers that need the sample values.
//
//	data, err := client.Query(ctx, "rate(cpu_usage_percent[5m])")
//	if err != nil {
//		return err
//	}
//	vec, err := data.Vector()
package promclient
