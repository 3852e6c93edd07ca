package promclient

import (
	"encoding/json"
	"fmt"

	"github.com/prometheus/common/model"
)

// apiResponse is the envelope every Prometheus API response arrives in,
// success or failure.
type apiResponse struct {
	Status    string          `json:"status"`
	Data      json.RawMessage `json:"data"`
	ErrorType string          `json:"errorType,omitempty"`
	Error     string          `json:"error,omitempty"`
	Warnings  []string        `json:"warnings,omitempty"`
}

const statusSuccess = "success"

// QueryData is the data object of a successful instant query response.
// Result is kept as raw JSON so the payload round-trips to callers
// byte-for-byte; use Vector to decode it.
type QueryData struct {
	ResultType string          `json:"resultType"`
	Result     json.RawMessage `json:"result"`
}

// Vector decodes the result as an instant vector. A missing or null
// result decodes to an empty vector, matching a query that matched no
// series.
func (d *QueryData) Vector() (model.Vector, error) {
	if d == nil || len(d.Result) == 0 || string(d.Result) == "null" {
		return model.Vector{}, nil
	}

	var vec model.Vector
	if err := json.Unmarshal(d.Result, &vec); err != nil {
		return nil, fmt.Errorf("decode result as vector: %w", err)
	}
	return vec, nil
}

// APIError is a failure the backend itself reported: transport
// succeeded but the response payload carried an error status. Message
// is never empty; a response with no error text gets "Unknown error".
type APIError struct {
	Type    string // backend's errorType field, may be empty
	Message string // backend's error text
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("backend rejected query (%s): %s", e.Type, e.Message)
	}
	return "backend rejected query: " + e.Message
}
