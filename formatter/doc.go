// Package formatter turns Prometheus query results into short
// natural-language sentences.
//
// # Rendering Rules
//
// The shape of the result picks the template:
//
//   - no samples: a fixed "no data found" message naming the question
//   - one sample: a unit-aware sentence; the unit is chosen by scanning
//     the question text for keywords in priority order (cpu, memory,
//     request+rate, latency/response time, error, then a generic
//     two-decimal rendering). A value that does not parse as a number
//     is shown verbatim as a status.
//   - two or three samples: each sample's instance label and raw value,
//     comma-joined
//   - more than three: the sample count and the arithmetic mean
//
// Unit conversions: memory values are bytes and shown in gigabytes
// alongside the exact byte count, latency values are seconds and shown
// in milliseconds, error values are ratios and shown as percentages.
//
// # Degradation
//
// Formatting never fails. A result the formatter cannot make sense of
// (wrong result shape, malformed sample, unparseable value where a
// number is required) produces a generic "trouble formatting" message
// and is logged; the caller still returns the raw data, so nothing is
// lost to the reader.
package formatter
