package gateway

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Mohan777-G/metrics-whisperer-ai/agent"
	"github.com/Mohan777-G/metrics-whisperer-ai/errors"
	"github.com/Mohan777-G/metrics-whisperer-ai/health"
	"github.com/Mohan777-G/metrics-whisperer-ai/metric"
)

// Server timeouts. WriteTimeout must outlast the backend query timeout
// or long instant queries get their responses cut off.
const (
	readTimeout  = 10 * time.Second
	writeTimeout = 60 * time.Second
	idleTimeout  = 60 * time.Second
)

// Deps bundles the collaborators the gateway serves. All but Logger
// are required.
type Deps struct {
	Agent    *agent.Agent
	Registry *metric.MetricsRegistry
	Monitor  *health.Monitor
	Logger   *slog.Logger
}

// Server is the HTTP face of the service
type Server struct {
	cfg     Config
	agent   *agent.Agent
	monitor *health.Monitor
	metrics *metric.Metrics
	logger  *slog.Logger

	router     chi.Router
	httpServer *http.Server

	// Lifecycle
	running  bool
	mu       sync.RWMutex
	stopChan chan struct{}
	stopOnce sync.Once
}

// New creates the gateway and wires its routes
func New(cfg Config, deps Deps) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Agent == nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("agent is required"), "Server", "New", "validate dependencies")
	}
	if deps.Registry == nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("metrics registry is required"), "Server", "New", "validate dependencies")
	}
	if deps.Monitor == nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("health monitor is required"), "Server", "New", "validate dependencies")
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	s := &Server{
		cfg:      cfg,
		agent:    deps.Agent,
		monitor:  deps.Monitor,
		metrics:  deps.Registry.CoreMetrics(),
		logger:   deps.Logger,
		stopChan: make(chan struct{}),
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(s.logMiddleware)
	r.Use(s.recoverMiddleware)
	if len(cfg.CORSOrigins) > 0 {
		r.Use(s.corsMiddleware)
	}

	r.Get("/", s.handleRoot)
	r.Post("/query", s.handleQuery)
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", deps.Registry.Handler())

	s.router = r
	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return s, nil
}

// Handler exposes the routing tree
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the server until ctx is cancelled, Stop is called, or the
// listener fails. The ready channel, when non-nil, is closed once the
// server is about to accept connections.
func (s *Server) Start(ctx context.Context, ready chan<- struct{}) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.WrapFatal(errors.ErrAlreadyStarted, "Server", "Start",
			"server already running")
	}
	s.running = true
	server := s.httpServer
	s.mu.Unlock()

	errChan := make(chan error, 1)
	go func() {
		defer close(errChan)
		s.logger.Info("HTTP server starting", "addr", s.cfg.Addr)

		// ListenAndServe blocks after binding the socket, so readiness
		// is signalled immediately before the call
		if ready != nil {
			close(ready)
		}

		if err := server.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			select {
			case errChan <- err:
			case <-ctx.Done():
			case <-s.stopChan:
			}
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("HTTP server context cancelled, shutting down")
		return s.Stop(s.cfg.ShutdownTimeout)

	case <-s.stopChan:
		return nil

	case err, ok := <-errChan:
		if !ok {
			// Listener exited cleanly after a stop raced ahead of us
			return nil
		}
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
		return errors.WrapFatal(err, "Server", "Start", "HTTP server failed")
	}
}

// Stop gracefully shuts down the server, waiting up to timeout for
// in-flight requests to finish
func (s *Server) Stop(timeout time.Duration) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	server := s.httpServer
	s.mu.Unlock()

	s.stopOnce.Do(func() {
		close(s.stopChan)
	})

	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		s.logger.Error("Failed to shut down HTTP server gracefully", "error", err)
		return errors.WrapTransient(err, "Server", "Stop", "graceful shutdown")
	}

	s.mu.Lock()
	s.running = false
	s.mu.Unlock()

	s.logger.Info("HTTP server stopped")
	return nil
}

// IsRunning reports whether the server is accepting requests
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}
