// Package translator maps natural-language metric questions onto PromQL.
package translator

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/Mohan777-G/metrics-whisperer-ai/errors"
)

// DefaultQuery is returned when no pattern matches the input. A bare
// liveness expression is valid against any backend, so translation can
// always produce something executable.
const DefaultQuery = "up"

// Entry is one row of the pattern table in source form
type Entry struct {
	Pattern string // regular expression searched anywhere in the normalized input
	PromQL  string // query template returned on match
}

// pattern is a compiled table row
type pattern struct {
	expr   *regexp.Regexp
	promql string
}

// Translator scans an ordered pattern table and returns the template of
// the first matching row. Table order is the precedence mechanism:
// earlier rows win, so the table is a slice and never a map.
type Translator struct {
	patterns []pattern
	logger   *slog.Logger
}

// DefaultTable returns the built-in pattern table in precedence order.
// The returned slice is a copy; mutating it does not affect translators
// already constructed.
func DefaultTable() []Entry {
	return []Entry{
		// CPU patterns
		{Pattern: `cpu usage|cpu utilization`, PromQL: `rate(cpu_usage_percent[5m])`},
		{Pattern: `average cpu`, PromQL: `avg(rate(cpu_usage_percent[5m]))`},
		{Pattern: `max cpu|maximum cpu`, PromQL: `max(rate(cpu_usage_percent[5m]))`},

		// Memory patterns
		{Pattern: `memory usage|memory utilization`, PromQL: `memory_usage_bytes`},
		{Pattern: `average memory`, PromQL: `avg(memory_usage_bytes)`},
		{Pattern: `memory consumption`, PromQL: `rate(memory_usage_bytes[5m])`},

		// Request patterns
		{Pattern: `request rate|requests per second`, PromQL: `rate(http_requests_total[5m])`},
		{Pattern: `request count|total requests`, PromQL: `sum(http_requests_total)`},
		{Pattern: `request latency|response time`, PromQL: `rate(http_request_duration_seconds[5m])`},
		{Pattern: `average latency|average response time`, PromQL: `avg(rate(http_request_duration_seconds[5m]))`},

		// Error patterns
		{Pattern: `error rate|errors`, PromQL: `rate(http_requests_total{status=~"5.."}[5m])`},
		{Pattern: `4xx errors`, PromQL: `rate(http_requests_total{status=~"4.."}[5m])`},
		{Pattern: `5xx errors`, PromQL: `rate(http_requests_total{status=~"5.."}[5m])`},

		// General patterns
		{Pattern: `availability|uptime`, PromQL: `up`},
		{Pattern: `disk usage`, PromQL: `disk_usage_bytes`},
		{Pattern: `network traffic`, PromQL: `rate(network_bytes_total[5m])`},
	}
}

// New creates a Translator over the built-in pattern table
func New(logger *slog.Logger) (*Translator, error) {
	return NewWithTable(logger, DefaultTable())
}

// NewWithTable creates a Translator over a caller-supplied table. Every
// pattern must compile and every template must parse as PromQL; a bad
// row fails construction rather than surfacing mid-request.
func NewWithTable(logger *slog.Logger, table []Entry) (*Translator, error) {
	if logger == nil {
		logger = slog.Default()
	}

	t := &Translator{
		patterns: make([]pattern, 0, len(table)),
		logger:   logger,
	}

	for i, entry := range table {
		expr, err := regexp.Compile(entry.Pattern)
		if err != nil {
			return nil, errors.WrapInvalid(
				fmt.Errorf("pattern %d %q does not compile: %w", i, entry.Pattern, err),
				"Translator", "NewWithTable", "compile pattern")
		}

		if _, err := parser.ParseExpr(entry.PromQL); err != nil {
			return nil, errors.WrapInvalid(
				fmt.Errorf("template %d %q is not valid PromQL: %w", i, entry.PromQL, err),
				"Translator", "NewWithTable", "parse query template")
		}

		t.patterns = append(t.patterns, pattern{expr: expr, promql: entry.PromQL})
	}

	if _, err := parser.ParseExpr(DefaultQuery); err != nil {
		return nil, errors.WrapFatal(
			fmt.Errorf("default query %q is not valid PromQL: %w", DefaultQuery, err),
			"Translator", "NewWithTable", "parse default query")
	}

	return t, nil
}

// Translate maps a free-text question onto PromQL. The input is
// normalized (lowercased, trimmed; punctuation kept) and the table is
// scanned in order; the first pattern found anywhere in the text wins.
// Unmatched input falls back to DefaultQuery, so translation never
// fails a request. The second return value reports whether a table row
// matched, for instrumentation.
func (t *Translator) Translate(input string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))

	for _, p := range t.patterns {
		if p.expr.MatchString(normalized) {
			t.logger.Info("Matched query pattern",
				"pattern", p.expr.String(),
				"promql", p.promql)
			return p.promql, true
		}
	}

	t.logger.Warn("No pattern matched query, using default", "query", normalized)
	return DefaultQuery, false
}

// Len returns the number of rows in the table
func (t *Translator) Len() int {
	return len(t.patterns)
}
