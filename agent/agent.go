// Package agent orchestrates the question-to-answer pipeline: translate,
// query, format, link.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Mohan777-G/metrics-whisperer-ai/errors"
	"github.com/Mohan777-G/metrics-whisperer-ai/formatter"
	"github.com/Mohan777-G/metrics-whisperer-ai/grafana"
	"github.com/Mohan777-G/metrics-whisperer-ai/metric"
	"github.com/Mohan777-G/metrics-whisperer-ai/promclient"
	"github.com/Mohan777-G/metrics-whisperer-ai/translator"
)

// Response is the payload for an answered question
type Response struct {
	NaturalLanguageResponse string                `json:"natural_language_response"`
	PromQLQuery             string                `json:"promql_query"`
	RawData                 *promclient.QueryData `json:"raw_data"`
	GrafanaURL              *string               `json:"grafana_url"`
	ExecutionTime           float64               `json:"execution_time"`
}

// Deps are the collaborators an Agent is assembled from. Translator,
// Client, and Formatter are required; the rest may be nil.
type Deps struct {
	Translator *translator.Translator
	Client     *promclient.Client
	Formatter  *formatter.Formatter
	Links      *grafana.LinkBuilder
	Metrics    *metric.Metrics
	Logger     *slog.Logger
}

// Agent answers natural-language questions about system metrics
type Agent struct {
	translator *translator.Translator
	client     *promclient.Client
	formatter  *formatter.Formatter
	links      *grafana.LinkBuilder
	metrics    *metric.Metrics
	logger     *slog.Logger
}

// New creates an Agent from its collaborators
func New(deps Deps) (*Agent, error) {
	if deps.Translator == nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("translator is required"), "Agent", "New", "validate dependencies")
	}
	if deps.Client == nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("metrics client is required"), "Agent", "New", "validate dependencies")
	}
	if deps.Formatter == nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("formatter is required"), "Agent", "New", "validate dependencies")
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	return &Agent{
		translator: deps.Translator,
		client:     deps.Client,
		formatter:  deps.Formatter,
		links:      deps.Links,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
	}, nil
}

// Answer runs the pipeline for one question. Translation and link
// building never fail; only the backend query can, and its classified
// error propagates for the HTTP layer to map.
func (a *Agent) Answer(ctx context.Context, question string) (*Response, error) {
	start := time.Now()

	promql, matched := a.translator.Translate(question)
	a.logger.Info("Translated query", "question", question, "promql", promql)
	a.recordTranslation(matched)

	data, err := a.client.Query(ctx, promql)
	if err != nil {
		return nil, errors.Wrap(err, "Agent", "Answer", "query backend")
	}

	sentence := a.formatter.Format(question, promql, data)

	var grafanaURL *string
	if link := a.links.ExploreURL(promql); link != "" {
		sentence += "You can visualize this data at: " + link
		grafanaURL = &link
	}

	elapsed := time.Since(start).Seconds()

	if a.metrics != nil {
		a.metrics.RecordRequest(http.MethodPost, "/query")
		a.metrics.RecordRequestDuration(elapsed)
	}

	return &Response{
		NaturalLanguageResponse: sentence,
		PromQLQuery:             promql,
		RawData:                 data,
		GrafanaURL:              grafanaURL,
		ExecutionTime:           elapsed,
	}, nil
}

// Probe checks whether the metrics backend is reachable. Used by the
// health endpoint; the error is reported, never raised to callers.
func (a *Agent) Probe(ctx context.Context) error {
	return a.client.Probe(ctx)
}

func (a *Agent) recordTranslation(matched bool) {
	if a.metrics == nil {
		return
	}
	if matched {
		a.metrics.RecordTranslation(metric.TranslationMatched)
		return
	}
	a.metrics.RecordTranslation(metric.TranslationFallback)
}
