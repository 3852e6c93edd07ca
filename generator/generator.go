package generator

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Mohan777-G/metrics-whisperer-ai/errors"
	"github.com/Mohan777-G/metrics-whisperer-ai/health"
	"github.com/Mohan777-G/metrics-whisperer-ai/metric"
)

// Defaults for the generation loop
const (
	DefaultInterval = 5 * time.Second
	DefaultBackoff  = 10 * time.Second
)

// componentName identifies the generator in health reporting
const componentName = "demo-generator"

// Simulated traffic drawn by each iteration
var (
	sampleMethods   = []string{"GET", "POST", "PUT", "DELETE"}
	sampleEndpoints = []string{"/api/users", "/api/orders", "/api/products"}
)

// Status represents the lifecycle state of the generator
type Status int

// Possible generator statuses
const (
	StatusStopped Status = iota
	StatusRunning
	StatusStopping
)

// String returns the string representation of Status
func (s Status) String() string {
	switch s {
	case StatusStopped:
		return "stopped"
	case StatusRunning:
		return "running"
	case StatusStopping:
		return "stopping"
	default:
		return "unknown"
	}
}

// Config holds the generation loop settings
type Config struct {
	// Interval between iterations; DefaultInterval when zero
	Interval time.Duration
	// Backoff replaces the interval after a failed iteration;
	// DefaultBackoff when zero
	Backoff time.Duration
}

// Generator periodically overwrites the demonstration gauges and
// increments the demonstration counters. It shares nothing with
// request handling except the instrumentation objects.
type Generator struct {
	interval time.Duration
	backoff  time.Duration
	metrics  *metric.Metrics
	monitor  *health.Monitor
	logger   *slog.Logger

	status     atomic.Value // Status
	iterations atomic.Int64

	done chan struct{}
	wg   sync.WaitGroup
	mu   sync.Mutex
}

// New creates a Generator. The metrics registry is required; the
// health monitor may be nil.
func New(cfg Config, metrics *metric.Metrics, monitor *health.Monitor, logger *slog.Logger) (*Generator, error) {
	if metrics == nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("metrics registry is required"),
			"Generator", "New", "validate dependencies")
	}
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = DefaultBackoff
	}

	g := &Generator{
		interval: cfg.Interval,
		backoff:  cfg.Backoff,
		metrics:  metrics,
		monitor:  monitor,
		logger:   logger,
	}
	g.status.Store(StatusStopped)

	return g, nil
}

// Status returns the current lifecycle state
func (g *Generator) Status() Status {
	return g.status.Load().(Status)
}

// Interval returns the configured generation interval
func (g *Generator) Interval() time.Duration {
	return g.interval
}

// Backoff returns the sleep applied after a failed iteration
func (g *Generator) Backoff() time.Duration {
	return g.backoff
}

// Iterations returns the number of completed iterations
func (g *Generator) Iterations() int64 {
	return g.iterations.Load()
}

// Start launches the generation loop. The loop runs until Stop is
// called or ctx is cancelled.
func (g *Generator) Start(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Status() != StatusStopped {
		return errors.ErrAlreadyStarted
	}

	g.done = make(chan struct{})
	g.status.Store(StatusRunning)
	g.reportHealthy("Generating demonstration metrics")

	g.wg.Add(1)
	go g.run(ctx)

	g.logger.Info("Demo metrics generator started", "interval", g.interval)
	return nil
}

// Stop halts the loop and waits for it to exit, up to timeout
func (g *Generator) Stop(timeout time.Duration) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Status() == StatusStopped {
		return nil
	}

	g.status.Store(StatusStopping)
	close(g.done)

	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	stopped := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(timeout):
		g.status.Store(StatusStopped)
		return errors.WrapTransient(
			fmt.Errorf("loop did not exit within %v", timeout),
			"Generator", "Stop", "wait for loop")
	}

	g.status.Store(StatusStopped)
	g.reportUnhealthy("Generator stopped")
	g.logger.Info("Demo metrics generator stopped")
	return nil
}

// run is the generation loop. A failed iteration switches the next
// sleep to the backoff; nothing short of lifecycle shutdown ends the
// loop.
func (g *Generator) run(ctx context.Context) {
	defer g.wg.Done()

	for {
		wait := g.interval
		if !g.generateOnce() {
			wait = g.backoff
		}

		select {
		case <-ctx.Done():
			g.status.Store(StatusStopped)
			g.reportUnhealthy("Generator stopped")
			return
		case <-g.done:
			return
		case <-time.After(wait):
		}
	}
}

// generateOnce writes one round of demonstration values. Reports false
// when the iteration panicked.
func (g *Generator) generateOnce() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("Error generating sample metrics", "panic", r)
			g.reportDegraded(fmt.Sprintf("Iteration failed: %v", r))
			ok = false
		}
	}()

	g.metrics.RecordCPUUsage(uniform(10, 90))
	g.metrics.RecordMemoryUsage(uniform(1e9, 8e9))
	g.metrics.RecordRequest(pick(sampleMethods), pick(sampleEndpoints))
	g.metrics.RecordRequestDuration(uniform(0.1, 2.0))

	g.iterations.Add(1)
	g.reportHealthy("Generating demonstration metrics")
	return true
}

func (g *Generator) reportHealthy(msg string) {
	if g.monitor != nil {
		g.monitor.UpdateHealthy(componentName, msg)
	}
}

func (g *Generator) reportDegraded(msg string) {
	if g.monitor != nil {
		g.monitor.UpdateDegraded(componentName, msg)
	}
}

func (g *Generator) reportUnhealthy(msg string) {
	if g.monitor != nil {
		g.monitor.UpdateUnhealthy(componentName, msg)
	}
}

// uniform draws from [low, high)
func uniform(low, high float64) float64 {
	return low + rand.Float64()*(high-low)
}

func pick(choices []string) string {
	return choices[rand.IntN(len(choices))]
}
