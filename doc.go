// Package whisperer is a natural-language question answering service for
// Prometheus metrics: plain-English questions in, plain-English answers
// out, with the PromQL and raw samples alongside.
//
// # Architecture
//
// One HTTP service, one pipeline, one background loop:
//
//	┌─────────────────────────────────────┐
//	│           HTTP Gateway              │  POST /query, GET /,
//	│   (chi router, CORS, request IDs)   │  GET /health, GET /metrics
//	└─────────────────┬───────────────────┘
//	                  ↓ delegates to
//	┌─────────────────────────────────────┐
//	│              Agent                  │  translate → query →
//	│   (question-to-answer pipeline)     │  format → link
//	└──┬──────────┬──────────┬────────┬───┘
//	   ↓          ↓          ↓        ↓
//	┌────────┐┌─────────┐┌─────────┐┌────────┐
//	│Translator││PromClient││Formatter││Grafana │
//	│ (regex │ │ (instant││(sentence││(explore│
//	│ table) │ │  query) ││ render) ││ links) │
//	└────────┘└─────────┘└─────────┘└────────┘
//
// A demonstration metrics generator runs beside the gateway and feeds
// the same instrumentation registry, so a fresh deployment has live
// gauges and counters for the canned queries to find.
//
// # Request Flow
//
// A question arrives at POST /query and walks the pipeline:
//
//  1. The translator matches it against an ordered pattern table; the
//     first match yields a PromQL template, no match yields "up".
//  2. The client executes one instant query against the backend.
//  3. The formatter renders the samples into an English sentence.
//  4. When Grafana is configured, an explore link rides on the answer.
//
// Translation and link building never fail a request. Backend failures
// map onto the HTTP surface by class: unreachable → 503, rejected by
// the backend → 400 with the backend's error text, anything else → 500.
// Formatting failures degrade to a generic sentence and still return 200.
//
// # Packages
//
// Pipeline:
//   - translator: ordered regex table, natural language → PromQL
//   - promclient: Prometheus HTTP API client (instant queries, probe)
//   - formatter: query results → English sentences
//   - grafana: speculative explore link construction
//   - agent: pipeline orchestration and response assembly
//
// Service:
//   - gateway: HTTP routes, middleware, error mapping
//   - generator: demonstration metrics loop
//   - metric: instrumentation registry (explicit, no globals)
//   - health: component health monitor and aggregation
//   - config: environment-first configuration
//   - errors: classified error handling
//
// # Usage
//
// Assemble the pipeline explicitly; there is no ambient state:
//
//	metrics := metric.NewMetricsRegistry()
//	trans, _ := translator.New(logger)
//	client, _ := promclient.New(cfg.Prometheus.URL,
//	    promclient.WithTimeout(cfg.Prometheus.QueryTimeout),
//	    promclient.WithMetrics(metrics.CoreMetrics()))
//
//	ag, _ := agent.New(agent.Deps{
//	    Translator: trans,
//	    Client:     client,
//	    Formatter:  formatter.New(logger),
//	    Links:      grafana.New(cfg.Grafana.URL),
//	    Metrics:    metrics.CoreMetrics(),
//	    Logger:     logger,
//	})
//
//	srv, _ := gateway.New(gateway.Config{Addr: cfg.Server.Addr()},
//	    gateway.Deps{Agent: ag, Registry: metrics, Monitor: monitor})
//
// # Design Principles
//
// Explicit dependencies:
//   - Every collaborator is passed in; nothing reaches for globals
//   - The instrumentation registry is an object shared on purpose
//
// Degrade, don't die:
//   - Unmatched questions fall back to a default query
//   - Formatting trouble produces a softer sentence, not an error
//   - A failed generator iteration backs off and the loop continues
//
// Fixed wire contract:
//   - Demonstration metric names are part of the query contract
//   - Error payloads carry {"error", "status"} at the stated codes
package whisperer
