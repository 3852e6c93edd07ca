package gateway

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"time"

	whisperer "github.com/Mohan777-G/metrics-whisperer-ai"
	"github.com/Mohan777-G/metrics-whisperer-ai/errors"
	"github.com/Mohan777-G/metrics-whisperer-ai/health"
	"github.com/Mohan777-G/metrics-whisperer-ai/promclient"
)

// backendComponent names the metrics backend in health reporting
const backendComponent = "metrics-backend"

// handleRoot reports liveness
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, rootResponse{
		Message:   "AI Prometheus Agent is running!",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// handleQuery answers one natural-language question
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	// Read with one spare byte so an oversized body is detectable
	body, err := io.ReadAll(io.LimitReader(r.Body, s.cfg.MaxRequestSize+1))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if int64(len(body)) > s.cfg.MaxRequestSize {
		s.writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("Request body exceeds maximum size of %d bytes", s.cfg.MaxRequestSize))
		return
	}

	var req QueryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}
	if req.Query == nil {
		s.writeError(w, http.StatusBadRequest, "Request body must include a query field")
		return
	}

	resp, err := s.agent.Answer(r.Context(), *req.Query)
	if err != nil {
		s.writeQueryError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// writeQueryError maps pipeline failures onto the wire contract
func (s *Server) writeQueryError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("Query failed",
		"error", err,
		"request_id", RequestID(r.Context()))

	var apiErr *promclient.APIError
	switch {
	case errors.IsTransient(err):
		s.writeError(w, http.StatusServiceUnavailable, "Unable to connect to Prometheus server")
	case stderrors.As(err, &apiErr):
		s.writeError(w, http.StatusBadRequest, "Prometheus query failed: "+apiErr.Message)
	case errors.IsInvalid(err):
		s.writeError(w, http.StatusBadRequest, "Prometheus query failed: "+errors.RootCause(err).Error())
	default:
		s.writeError(w, http.StatusInternalServerError, "Query execution failed: "+errors.RootCause(err).Error())
	}
}

// handleHealth reports overall service health. The endpoint never
// fails: an unreachable backend degrades the report instead of
// erroring it, and the response is always HTTP 200.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	err := s.agent.Probe(r.Context())
	connected := err == nil
	if err != nil {
		s.logger.Warn("Backend health probe failed", "error", err)
	}

	s.monitor.Update(backendComponent, health.FromProbe(backendComponent, err))

	status := "healthy"
	if overall := s.monitor.AggregateHealth("metrics-whisperer"); !overall.IsHealthy() {
		status = "degraded"
	}

	for name, component := range s.monitor.GetAll() {
		s.metrics.RecordHealthStatus(name, component.IsHealthy())
	}

	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:              status,
		PrometheusConnected: connected,
		Timestamp:           time.Now().UTC().Format(time.RFC3339),
		Version:             whisperer.Version,
	})
}

// writeJSON writes v as the JSON response body
func (s *Server) writeJSON(w http.ResponseWriter, statusCode int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError,
			fmt.Sprintf("An unexpected error occurred: %v", err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data)
}

// writeError writes an error response in the fixed wire shape
func (s *Server) writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := map[string]any{
		"error":  message,
		"status": statusCode,
	}

	data, _ := json.Marshal(response)
	w.Write(data)
}
