package translator

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/Mohan777-G/metrics-whisperer-ai/errors"
)

func newTestTranslator(t *testing.T) *Translator {
	t.Helper()
	tr, err := New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return tr
}

func TestNew_BuildsFullTable(t *testing.T) {
	tr := newTestTranslator(t)
	assert.Equal(t, len(DefaultTable()), tr.Len())
}

func TestNew_NilLogger(t *testing.T) {
	tr, err := New(nil)
	require.NoError(t, err)
	require.NotNil(t, tr)

	promql, matched := tr.Translate("show me cpu usage")
	assert.True(t, matched)
	assert.Equal(t, `rate(cpu_usage_percent[5m])`, promql)
}

func TestTranslate_KnownPatterns(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"cpu usage", "show me the cpu usage", `rate(cpu_usage_percent[5m])`},
		{"cpu utilization", "what is the cpu utilization?", `rate(cpu_usage_percent[5m])`},
		{"average cpu", "average cpu over the cluster", `avg(rate(cpu_usage_percent[5m]))`},
		{"max cpu", "max cpu this week", `max(rate(cpu_usage_percent[5m]))`},
		{"maximum cpu", "what was the maximum cpu?", `max(rate(cpu_usage_percent[5m]))`},
		{"memory usage", "memory usage please", `memory_usage_bytes`},
		{"memory utilization", "current memory utilization", `memory_usage_bytes`},
		{"average memory", "average memory across pods", `avg(memory_usage_bytes)`},
		{"memory consumption", "memory consumption trend", `rate(memory_usage_bytes[5m])`},
		{"request rate", "what's the request rate?", `rate(http_requests_total[5m])`},
		{"requests per second", "requests per second right now", `rate(http_requests_total[5m])`},
		{"request count", "request count since start", `sum(http_requests_total)`},
		{"total requests", "total requests served", `sum(http_requests_total)`},
		{"request latency", "request latency today", `rate(http_request_duration_seconds[5m])`},
		{"response time", "how is the response time?", `rate(http_request_duration_seconds[5m])`},
		{"average latency", "average latency please", `avg(rate(http_request_duration_seconds[5m]))`},
		{"average response time", "average response time for the api", `avg(rate(http_request_duration_seconds[5m]))`},
		{"error rate", "error rate over 5 minutes", `rate(http_requests_total{status=~"5.."}[5m])`},
		{"errors", "any errors?", `rate(http_requests_total{status=~"5.."}[5m])`},
		{"availability", "availability of the service", `up`},
		{"uptime", "uptime check", `up`},
		{"disk usage", "disk usage on the host", `disk_usage_bytes`},
		{"network traffic", "network traffic in and out", `rate(network_bytes_total[5m])`},
	}

	tr := newTestTranslator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promql, matched := tr.Translate(tt.input)
			assert.True(t, matched, "expected a table match")
			assert.Equal(t, tt.want, promql)
		})
	}
}

func TestTranslate_Normalization(t *testing.T) {
	tr := newTestTranslator(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"uppercase", "CPU USAGE", `rate(cpu_usage_percent[5m])`},
		{"mixed case", "Show Me The Memory Usage", `memory_usage_bytes`},
		{"surrounding whitespace", "   error rate   ", `rate(http_requests_total{status=~"5.."}[5m])`},
		{"embedded in sentence", "could you tell me about disk usage on node-3", `disk_usage_bytes`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promql, matched := tr.Translate(tt.input)
			assert.True(t, matched)
			assert.Equal(t, tt.want, promql)
		})
	}
}

// Earlier table rows win when several patterns occur in one question.
func TestTranslate_Precedence(t *testing.T) {
	tr := newTestTranslator(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		// "cpu usage" is listed before "average cpu"
		{"cpu usage beats average cpu", "average cpu usage", `rate(cpu_usage_percent[5m])`},
		// "memory usage" is listed before "average memory"
		{"memory usage beats average memory", "average memory usage", `memory_usage_bytes`},
		// "error rate|errors" is listed before the 4xx and 5xx rows,
		// and any input containing them also contains "errors", so the
		// broader row always wins
		{"errors shadows 5xx", "5xx errors last hour", `rate(http_requests_total{status=~"5.."}[5m])`},
		{"errors shadows 4xx", "show 4xx errors", `rate(http_requests_total{status=~"5.."}[5m])`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promql, matched := tr.Translate(tt.input)
			assert.True(t, matched)
			assert.Equal(t, tt.want, promql)
		})
	}
}

func TestTranslate_DefaultFallback(t *testing.T) {
	tr := newTestTranslator(t)

	tests := []struct {
		name  string
		input string
	}{
		{"unrelated question", "what is the meaning of life"},
		{"empty input", ""},
		{"whitespace only", "   "},
		{"near miss", "cpu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promql, matched := tr.Translate(tt.input)
			assert.False(t, matched, "expected fallback")
			assert.Equal(t, DefaultQuery, promql)
		})
	}
}

func TestTranslate_Deterministic(t *testing.T) {
	tr := newTestTranslator(t)

	first, matched := tr.Translate("average cpu usage")
	require.True(t, matched)

	for i := 0; i < 50; i++ {
		got, ok := tr.Translate("average cpu usage")
		require.True(t, ok)
		require.Equal(t, first, got)
	}
}

func TestNewWithTable_RejectsBadPattern(t *testing.T) {
	_, err := NewWithTable(nil, []Entry{
		{Pattern: `cpu usage`, PromQL: `up`},
		{Pattern: `[unclosed`, PromQL: `up`},
	})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsInvalid(err))
	assert.Contains(t, err.Error(), "does not compile")
}

func TestNewWithTable_RejectsBadPromQL(t *testing.T) {
	_, err := NewWithTable(nil, []Entry{
		{Pattern: `cpu usage`, PromQL: `rate(cpu_usage_percent[5m`},
	})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsInvalid(err))
	assert.Contains(t, err.Error(), "not valid PromQL")
}

func TestNewWithTable_EmptyTable(t *testing.T) {
	tr, err := NewWithTable(nil, nil)
	require.NoError(t, err)

	promql, matched := tr.Translate("cpu usage")
	assert.False(t, matched)
	assert.Equal(t, DefaultQuery, promql)
}

// The built-in templates must all survive the construction-time PromQL
// check, so construction over DefaultTable can never fail.
func TestDefaultTable_AllTemplatesValid(t *testing.T) {
	_, err := NewWithTable(nil, DefaultTable())
	require.NoError(t, err)
}

func TestDefaultTable_ReturnsCopy(t *testing.T) {
	table := DefaultTable()
	require.NotEmpty(t, table)

	table[0].PromQL = "mutated"
	assert.NotEqual(t, "mutated", DefaultTable()[0].PromQL)
}
