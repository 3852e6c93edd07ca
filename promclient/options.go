package promclient

import (
	"log/slog"
	"time"

	"github.com/Mohan777-G/metrics-whisperer-ai/metric"
)

// ClientOption is a functional option for configuring the Client
type ClientOption func(*Client) error

// WithTimeout sets the per-request timeout. Non-positive values keep
// the default.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) error {
		if d > 0 {
			c.timeout = d
		}
		return nil
	}
}

// WithLogger sets a custom logger for the client
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}

// WithMetrics enables backend request instrumentation. Every query
// records an outcome counter and a duration observation.
func WithMetrics(metrics *metric.Metrics) ClientOption {
	return func(c *Client) error {
		c.metrics = metrics
		return nil
	}
}
