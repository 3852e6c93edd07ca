// Package promclient provides a thin client for the Prometheus instant
// query HTTP API.
package promclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Mohan777-G/metrics-whisperer-ai/errors"
	"github.com/Mohan777-G/metrics-whisperer-ai/metric"
)

// DefaultTimeout bounds each backend request when no timeout is
// configured.
const DefaultTimeout = 30 * time.Second

// probeQuery is a minimal expression every Prometheus server answers,
// used for reachability checks.
const probeQuery = "up"

// Client executes instant queries against a Prometheus server. One
// request per query: no retries, no caching, no pooling beyond the
// underlying HTTP client's defaults.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	logger  *slog.Logger
	metrics *metric.Metrics
}

// New creates a client for the Prometheus server at baseURL
func New(baseURL string, opts ...ClientOption) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.WrapInvalid(
			fmt.Errorf("base URL is empty"),
			"Client", "New", "validate base URL")
	}

	c := &Client{
		baseURL: baseURL,
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, errors.WrapInvalid(err, "Client", "New", "apply option")
		}
	}

	c.http = &http.Client{Timeout: c.timeout}

	return c, nil
}

// URL returns the base URL of the Prometheus server
func (c *Client) URL() string {
	return c.baseURL
}

// Query executes a PromQL instant query.
//
// Failures are classified for the HTTP layer: transport failures
// (refused, timeout, DNS) are transient; a response whose payload
// reports an error status is invalid and carries an *APIError with the
// backend's text; anything unexpected while reading or decoding the
// response is fatal.
func (c *Client) Query(ctx context.Context, promql string) (*QueryData, error) {
	queryURL := c.baseURL + "/api/v1/query?" + url.Values{"query": {promql}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, queryURL, nil)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Client", "Query", "build request")
	}

	c.logger.Info("Querying Prometheus", "promql", promql)

	start := time.Now()
	resp, err := c.http.Do(req)
	c.recordDuration(time.Since(start))
	if err != nil {
		c.recordOutcome(metric.BackendUnreachable)
		c.logger.Error("Prometheus connection error", "error", err)
		return nil, errors.WrapTransient(
			fmt.Errorf("%w: %v", errors.ErrBackendUnreachable, err),
			"Client", "Query", "reach metrics backend")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.recordOutcome(metric.BackendError)
		c.logger.Error("Query execution error", "error", err)
		return nil, errors.WrapFatal(err, "Client", "Query", "read response body")
	}

	var envelope apiResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.recordOutcome(metric.BackendError)
		c.logger.Error("Query execution error", "error", err, "status_code", resp.StatusCode)
		return nil, errors.WrapFatal(err, "Client", "Query", "decode response envelope")
	}

	// The payload status is authoritative: Prometheus reports query
	// errors with a non-2xx status code and the same envelope, so the
	// HTTP status code itself is not consulted.
	if envelope.Status != statusSuccess {
		msg := envelope.Error
		if msg == "" {
			msg = "Unknown error"
		}
		c.recordOutcome(metric.BackendRejected)
		c.logger.Warn("Prometheus rejected query",
			"promql", promql,
			"error_type", envelope.ErrorType,
			"error", msg)
		return nil, errors.WrapInvalid(
			&APIError{Type: envelope.ErrorType, Message: msg},
			"Client", "Query", "execute query")
	}

	var data QueryData
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		c.recordOutcome(metric.BackendError)
		c.logger.Error("Query execution error", "error", err)
		return nil, errors.WrapFatal(err, "Client", "Query", "decode query data")
	}

	if len(envelope.Warnings) > 0 {
		c.logger.Warn("Prometheus returned warnings",
			"promql", promql,
			"warnings", envelope.Warnings)
	}

	c.recordOutcome(metric.BackendSuccess)
	return &data, nil
}

// Probe checks whether the backend is reachable and answering queries.
// It issues a minimal liveness query and discards the data.
func (c *Client) Probe(ctx context.Context) error {
	_, err := c.Query(ctx, probeQuery)
	return err
}

func (c *Client) recordOutcome(outcome string) {
	if c.metrics != nil {
		c.metrics.RecordBackendRequest(outcome)
	}
}

func (c *Client) recordDuration(d time.Duration) {
	if c.metrics != nil {
		c.metrics.RecordBackendDuration(d)
	}
}
