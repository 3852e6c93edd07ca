// Package main implements the entry point for the metrics whisperer
// service: natural-language questions about Prometheus metrics in,
// plain-English answers out.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	whisperer "github.com/Mohan777-G/metrics-whisperer-ai"
	"github.com/Mohan777-G/metrics-whisperer-ai/agent"
	"github.com/Mohan777-G/metrics-whisperer-ai/config"
	"github.com/Mohan777-G/metrics-whisperer-ai/formatter"
	"github.com/Mohan777-G/metrics-whisperer-ai/gateway"
	"github.com/Mohan777-G/metrics-whisperer-ai/generator"
	"github.com/Mohan777-G/metrics-whisperer-ai/grafana"
	"github.com/Mohan777-G/metrics-whisperer-ai/health"
	"github.com/Mohan777-G/metrics-whisperer-ai/metric"
	"github.com/Mohan777-G/metrics-whisperer-ai/promclient"
	"github.com/Mohan777-G/metrics-whisperer-ai/translator"
)

// Build information constants
const (
	BuildTime = "dev"
	appName   = "metrics-whisperer"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("Application failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	cliCfg, logger, shouldExit, err := initializeCLI()
	if shouldExit || err != nil {
		return err
	}

	cfg, err := initializeConfiguration(cliCfg)
	if err != nil {
		return err
	}

	if cliCfg.Validate {
		slog.Info("Configuration is valid")
		return nil
	}

	// Shared instrumentation and health state for all components
	registry := metric.NewMetricsRegistry()
	monitor := health.NewMonitor()

	ag, err := buildPipeline(cfg, registry, logger)
	if err != nil {
		return err
	}

	gen, err := buildGenerator(cfg, registry, monitor, logger)
	if err != nil {
		return err
	}

	srv, err := buildGateway(cfg, cliCfg, ag, registry, monitor, logger)
	if err != nil {
		return err
	}

	return runWithSignalHandling(srv, gen, cliCfg.ShutdownTimeout)
}

// initializeCLI parses flags and sets up logging
func initializeCLI() (*CLIConfig, *slog.Logger, bool, error) {
	cliCfg := parseFlags()
	if err := validateFlags(cliCfg); err != nil {
		return nil, nil, false, fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, whisperer.Version)
		return nil, nil, true, nil
	}

	if cliCfg.ShowHelp {
		printDetailedHelp()
		return nil, nil, true, nil
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	slog.Info("Starting metrics whisperer (natural language Prometheus queries)",
		"version", whisperer.Version,
		"build_time", BuildTime,
		"config_dir", cliCfg.ConfigDir)

	return cliCfg, logger, false, nil
}

// initializeConfiguration loads configuration and applies flag overrides
func initializeConfiguration(cliCfg *CLIConfig) (*config.Config, error) {
	cfg, err := config.LoadFrom(cliCfg.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// A nonzero --http-port wins over environment and file values
	if cliCfg.HTTPPort > 0 {
		cfg.Server.Port = cliCfg.HTTPPort
	}

	return cfg, nil
}

// buildPipeline assembles the question-to-answer pipeline
func buildPipeline(cfg *config.Config, registry *metric.MetricsRegistry, logger *slog.Logger) (*agent.Agent, error) {
	trans, err := translator.New(logger)
	if err != nil {
		return nil, fmt.Errorf("create translator: %w", err)
	}

	client, err := promclient.New(cfg.Prometheus.URL,
		promclient.WithTimeout(cfg.Prometheus.QueryTimeout),
		promclient.WithLogger(logger),
		promclient.WithMetrics(registry.CoreMetrics()))
	if err != nil {
		return nil, fmt.Errorf("create metrics client: %w", err)
	}

	ag, err := agent.New(agent.Deps{
		Translator: trans,
		Client:     client,
		Formatter:  formatter.New(logger),
		Links:      grafana.New(cfg.Grafana.URL),
		Metrics:    registry.CoreMetrics(),
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}

	slog.Info("Pipeline assembled",
		"prometheus_url", cfg.Prometheus.URL,
		"grafana_links", cfg.Grafana.URL != "")

	return ag, nil
}

// buildGenerator creates the demo metrics generator, or nil when disabled
func buildGenerator(
	cfg *config.Config,
	registry *metric.MetricsRegistry,
	monitor *health.Monitor,
	logger *slog.Logger,
) (*generator.Generator, error) {
	if !cfg.Generator.Enabled {
		slog.Info("Demo metrics generator disabled in config")
		return nil, nil
	}

	gen, err := generator.New(generator.Config{
		Interval: cfg.Generator.Interval,
		Backoff:  cfg.Generator.ErrorBackoff,
	}, registry.CoreMetrics(), monitor, logger)
	if err != nil {
		return nil, fmt.Errorf("create generator: %w", err)
	}

	return gen, nil
}

// buildGateway creates the HTTP gateway
func buildGateway(
	cfg *config.Config,
	cliCfg *CLIConfig,
	ag *agent.Agent,
	registry *metric.MetricsRegistry,
	monitor *health.Monitor,
	logger *slog.Logger,
) (*gateway.Server, error) {
	srv, err := gateway.New(gateway.Config{
		Addr:            cfg.Server.Addr(),
		CORSOrigins:     cfg.Server.CORSOrigins,
		ShutdownTimeout: cliCfg.ShutdownTimeout,
	}, gateway.Deps{
		Agent:    ag,
		Registry: registry,
		Monitor:  monitor,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create HTTP gateway: %w", err)
	}

	return srv, nil
}

// runWithSignalHandling starts the generator and gateway, then blocks
// until a shutdown signal or a server failure. Shutdown runs in reverse
// startup order: the gateway drains first, the generator stops last.
func runWithSignalHandling(srv *gateway.Server, gen *generator.Generator, shutdownTimeout time.Duration) error {
	signalCtx, signalCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer signalCancel()

	if gen != nil {
		if err := gen.Start(signalCtx); err != nil {
			return fmt.Errorf("start generator: %w", err)
		}
	}

	ready := make(chan struct{})
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start(signalCtx, ready)
	}()

	select {
	case <-ready:
	case err := <-serverErr:
		stopGenerator(gen, shutdownTimeout)
		return fmt.Errorf("start HTTP server: %w", err)
	}
	slog.Info("Service started successfully")

	select {
	case <-signalCtx.Done():
		slog.Info("Received shutdown signal")
	case err := <-serverErr:
		stopGenerator(gen, shutdownTimeout)
		return fmt.Errorf("HTTP server failed: %w", err)
	}

	// The gateway stops itself on context cancellation; wait for the
	// drain to finish before stopping the generator.
	if err := <-serverErr; err != nil {
		slog.Error("Error during HTTP server shutdown", "error", err)
		stopGenerator(gen, shutdownTimeout)
		return err
	}

	stopGenerator(gen, shutdownTimeout)

	slog.Info("Shutdown complete")
	return nil
}

func stopGenerator(gen *generator.Generator, timeout time.Duration) {
	if gen == nil {
		return
	}
	if err := gen.Stop(timeout); err != nil {
		slog.Error("Error stopping generator", "error", err)
	}
}
