// Package generator emits demonstration metrics on a fixed interval so a
// fresh deployment has data to answer questions about.
//
// The generator owns no transport and serves no requests. It shares two
// things with the rest of the service: the metrics registry it writes and
// the health monitor it reports to. Each iteration overwrites the CPU and
// memory gauges with a uniform draw, increments the request counter for a
// random method and endpoint pair, and observes a synthetic request
// duration.
//
// # Lifecycle
//
// Start launches the loop; Stop halts it and waits up to a timeout for it
// to exit. The loop ends only through Stop or context cancellation: a
// panicking iteration is logged, reported to the health monitor as
// degraded, and followed by a longer backoff sleep in place of the normal
// interval.
package generator
