// Package errors provides standardized error handling patterns for metrics-whisperer components.
//
// # Overview
//
// The errors package implements a three-class error classification system for a
// service whose failures split cleanly along HTTP response lines: Transient
// (the metrics backend cannot be reached right now), Invalid (the backend or
// the caller rejected the input), and Fatal (anything unexpected during query
// execution).
//
// This classification lets the HTTP gateway pick response statuses without
// string matching on error text, and lets the health probe distinguish a
// degraded backend from a broken service.
//
// # Error Classification
//
// Errors are classified based on their type or content:
//
//   - Transient: backend unreachable, connection timeouts, DNS failures (maps to 503)
//   - Invalid: rejected queries, malformed request bodies, bad configuration input (maps to 400)
//   - Fatal: unexpected decode failures, invalid configuration, anything unclassified (maps to 500)
//
// The classification system integrates with Go's standard error handling
// patterns, supporting errors.Is(), errors.As(), and error wrapping chains.
//
// # Quick Start
//
// Use standard error variables for common conditions:
//
//	if resp == nil {
//	    return errors.ErrBackendUnreachable
//	}
//
// Wrap errors with context for debugging:
//
//	if err := json.Unmarshal(body, &apiResp); err != nil {
//	    return errors.WrapFatal(err, "Client", "Query", "decode response")
//	}
//
// Map classification to an HTTP status:
//
//	switch {
//	case errors.IsInvalid(err):
//	    status = http.StatusBadRequest
//	case errors.IsTransient(err):
//	    status = http.StatusServiceUnavailable
//	default:
//	    status = http.StatusInternalServerError
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// This format enables consistent log parsing and debugging across the service.
// The Wrap family of functions applies the pattern while preserving error
// classification through the chain.
//
// Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapTransient(err, "Client", "Query", "execute request")  // backend unreachable
//	errors.WrapInvalid(err, "Client", "Query", "run query")          // backend rejected the query
//	errors.WrapFatal(err, "Client", "Query", "decode response")      // unexpected failure
//
// The generic Wrap() function adds context without setting a class, so a
// classification set deeper in the chain survives:
//
//	errors.Wrap(err, "Agent", "Answer", "query backend")
//
// # Standard Error Variables
//
// Pre-defined error variables cover the recurring conditions:
//
//   - Component lifecycle: ErrAlreadyStarted, ErrNotStarted, ErrAlreadyStopped, ErrShuttingDown
//   - Metrics backend: ErrBackendUnreachable, ErrQueryRejected, ErrQueryFailed, ErrConnectionTimeout
//   - Request and data: ErrEmptyQuery, ErrInvalidData, ErrParsingFailed
//   - Configuration: ErrInvalidConfig, ErrMissingConfig
//
// Use these variables instead of creating custom error messages so that
// errors.Is checks keep working across packages.
//
// # Integration with errors.As/Is
//
// All error types support standard library error inspection:
//
//	var ce *errors.ClassifiedError
//	if errors.As(err, &ce) {
//	    log.Printf("component: %s, class: %s", ce.Component, ce.Class)
//	}
//
//	if errors.Is(err, errors.ErrQueryRejected) {
//	    // carry the backend's error text to the caller
//	}
//
//	wrapped := errors.Wrap(errors.ErrBackendUnreachable, "Agent", "Probe", "liveness query")
//	errors.IsTransient(wrapped) // true, classification preserved
//
// # Context Cancellation
//
// Context errors (context.DeadlineExceeded, context.Canceled) are classified
// as Transient, so a backend call cut short by the fixed query timeout is
// reported the same way as a refused connection.
//
// # Unknown Errors
//
// Classify() resolves errors that carry no explicit class by pattern, and
// defaults to Fatal when nothing matches: an error nobody anticipated is an
// internal failure, not something the caller can correct or wait out.
//
// # Thread Safety
//
// All classification and wrapping operations are thread-safe. Error variables
// are immutable and safe for concurrent access. The ClassifiedError type is
// safe to share across goroutines after creation.
package errors
