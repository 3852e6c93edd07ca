// Package formatter renders Prometheus query results as natural-language
// sentences.
package formatter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Mohan777-G/metrics-whisperer-ai/promclient"
)

// sample is the raw view of one instant-vector sample. Values stay as
// the backend's strings so rendering can show them verbatim.
type sample struct {
	Metric map[string]string `json:"metric"`
	Value  []any             `json:"value"`
}

// rawValue returns the sample's value string. A sample without a value
// field reads as "0".
func (s sample) rawValue() (string, error) {
	if s.Value == nil {
		return "0", nil
	}
	if len(s.Value) < 2 {
		return "", fmt.Errorf("value pair has %d elements", len(s.Value))
	}
	str, ok := s.Value[1].(string)
	if !ok {
		return "", fmt.Errorf("value is %T, not a string", s.Value[1])
	}
	return str, nil
}

// instance returns the sample's instance label, "unknown" when absent
func (s sample) instance() string {
	if inst := s.Metric["instance"]; inst != "" {
		return inst
	}
	return "unknown"
}

// Formatter renders query results for human readers. Rendering never
// fails: anything it cannot make sense of degrades to a generic
// message, and the caller still returns the raw data alongside.
type Formatter struct {
	logger *slog.Logger
}

// New creates a Formatter
func New(logger *slog.Logger) *Formatter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Formatter{logger: logger}
}

// Format renders a sentence for the result of a query. The phrasing is
// chosen from the original question text; promql is carried for
// logging only.
func (f *Formatter) Format(query, promql string, data *promclient.QueryData) (msg string) {
	// Formatting must never fail the request
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error("Formatter panic recovered", "panic", r, "promql", promql)
			msg = degradedMessage(query)
		}
	}()

	var samples []sample
	if data != nil && len(data.Result) > 0 {
		if err := json.Unmarshal(data.Result, &samples); err != nil {
			f.logger.Error("Response formatting error", "error", err, "promql", promql)
			return degradedMessage(query)
		}
	}

	if len(samples) == 0 {
		return fmt.Sprintf(
			"No data found for your query '%s'. The system might be collecting metrics or the query timeframe might be too narrow.",
			query)
	}

	if len(samples) == 1 {
		return f.formatSingle(query, promql, samples[0])
	}
	return f.formatMultiple(query, promql, samples)
}

// formatSingle renders a one-sample result. The rendering rule is
// picked by keyword from the question text, first match wins.
func (f *Formatter) formatSingle(query, promql string, s sample) string {
	raw, err := s.rawValue()
	if err != nil {
		f.logger.Error("Response formatting error", "error", err, "promql", promql)
		return degradedMessage(query)
	}

	num, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Sprintf("The current status is: %s. ", raw)
	}

	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "cpu"):
		return fmt.Sprintf("The CPU usage is currently %.2f%%. ", num)
	case strings.Contains(q, "memory"):
		gb := num / (1 << 30)
		return fmt.Sprintf("The memory usage is %.2f GB (%s bytes). ", gb, commaBytes(num))
	case strings.Contains(q, "request") && strings.Contains(q, "rate"):
		return fmt.Sprintf("The request rate is %.2f requests per second. ", num)
	case strings.Contains(q, "latency") || strings.Contains(q, "response time"):
		return fmt.Sprintf("The average response time is %.2f milliseconds. ", num*1000)
	case strings.Contains(q, "error"):
		return fmt.Sprintf("The error rate is %.2f%%. ", num*100)
	default:
		return fmt.Sprintf("The current value is %.2f. ", num)
	}
}

// formatMultiple renders a multi-sample result: per-instance raw values
// up to three samples, count and mean beyond that.
func (f *Formatter) formatMultiple(query, promql string, samples []sample) string {
	if len(samples) <= 3 {
		parts := make([]string, 0, len(samples))
		for _, s := range samples {
			raw, err := s.rawValue()
			if err != nil {
				f.logger.Error("Response formatting error", "error", err, "promql", promql)
				return degradedMessage(query)
			}
			parts = append(parts, s.instance()+": "+raw)
		}
		return fmt.Sprintf("Here are the values for '%s': %s. ", query, strings.Join(parts, ", "))
	}

	var sum float64
	for _, s := range samples {
		raw, err := s.rawValue()
		if err != nil {
			f.logger.Error("Response formatting error", "error", err, "promql", promql)
			return degradedMessage(query)
		}
		num, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			f.logger.Error("Response formatting error", "error", err, "promql", promql)
			return degradedMessage(query)
		}
		sum += num
	}
	avg := sum / float64(len(samples))

	return fmt.Sprintf("Found %d data points for '%s' with an average value of %.2f. ",
		len(samples), query, avg)
}

// commaBytes renders a byte count with thousands separators and no
// decimals
func commaBytes(v float64) string {
	return humanize.Commaf(math.RoundToEven(v))
}

func degradedMessage(query string) string {
	return fmt.Sprintf(
		"I found some data for '%s', but had trouble formatting it clearly. Raw data available in the response details.",
		query)
}
