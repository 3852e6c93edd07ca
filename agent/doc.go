// Package agent wires the question-answering pipeline together.
//
// An Agent owns one pass through the system for each question:
//
//	translate -> query backend -> format -> append explore link
//
// # Failure Surface
//
// Of the four stages, only the backend query can fail a request.
// Translation falls back to a default expression for unmatched input,
// formatting degrades to a generic sentence, and link building is
// skipped when Grafana is not configured. Backend failures propagate
// with their classification intact so the HTTP layer can map them:
// transient to 503, invalid to 400, anything else to 500.
//
// # Instrumentation
//
// Translation outcomes are counted for every question. The contract
// request counter and latency histogram record only answered
// questions, preserving the original service's success-only
// accounting.
//
// Probe exposes the backend reachability check the health endpoint
// reports on; probe failures are returned, never raised.
package agent
