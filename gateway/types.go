package gateway

import (
	"fmt"
	"time"

	"github.com/Mohan777-G/metrics-whisperer-ai/errors"
)

// Defaults applied by Config.Validate
const (
	DefaultMaxRequestSize  = 1 << 20
	DefaultShutdownTimeout = 30 * time.Second
)

// Config holds the HTTP gateway settings
type Config struct {
	// Addr is the listen address (e.g. ":8000")
	Addr string

	// CORSOrigins lists allowed origins; "*" allows any. An empty list
	// disables CORS headers entirely.
	CORSOrigins []string

	// MaxRequestSize limits request body size in bytes;
	// DefaultMaxRequestSize when zero
	MaxRequestSize int64

	// ShutdownTimeout bounds the graceful drain when the run context is
	// cancelled; DefaultShutdownTimeout when zero
	ShutdownTimeout time.Duration
}

// Validate ensures the gateway configuration is usable
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.WrapInvalid(errors.ErrMissingConfig, "Config", "Validate",
			"listen address cannot be empty")
	}

	if c.MaxRequestSize < 0 {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "Validate",
			"max request size cannot be negative")
	}
	if c.MaxRequestSize == 0 {
		c.MaxRequestSize = DefaultMaxRequestSize
	}
	if c.MaxRequestSize > 100<<20 {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "Validate",
			fmt.Sprintf("max request size %d exceeds the 100MB ceiling", c.MaxRequestSize))
	}

	if c.ShutdownTimeout < 0 {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "Validate",
			"shutdown timeout cannot be negative")
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}

	return nil
}

// QueryRequest is the POST /query request body. Query is a pointer so a
// body that omits the field can be told apart from an empty question;
// an empty question is legal and falls through to the default query.
type QueryRequest struct {
	Query *string `json:"query"`
}

type rootResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type healthResponse struct {
	Status              string `json:"status"`
	PrometheusConnected bool   `json:"prometheus_connected"`
	Timestamp           string `json:"timestamp"`
	Version             string `json:"version"`
}
