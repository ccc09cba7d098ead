package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/SwineFeather/nordics-gateway/pkg/api/handlers"
	"github.com/SwineFeather/nordics-gateway/pkg/api/middleware"
	"github.com/SwineFeather/nordics-gateway/pkg/config"
	"github.com/SwineFeather/nordics-gateway/pkg/ratelimit"
	"github.com/SwineFeather/nordics-gateway/pkg/ratelimit/storage"
	"github.com/SwineFeather/nordics-gateway/pkg/security/headers"
	"github.com/SwineFeather/nordics-gateway/pkg/telemetry/logging"
	"github.com/SwineFeather/nordics-gateway/pkg/telemetry/metrics"
	"github.com/SwineFeather/nordics-gateway/pkg/validation"
)

// Server is the gateway HTTP server.
type Server struct {
	cfg    atomic.Pointer[config.Config]
	logger *logging.Logger

	limiter   *ratelimit.Limiter
	backend   storage.Backend
	sweeper   *ratelimit.Sweeper
	collector *metrics.Collector

	httpServer   *http.Server
	shutdownOnce sync.Once

	mu        sync.RWMutex
	isRunning bool
}

// New wires a server from a validated configuration.
func New(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	s := &Server{
		logger: logger,
		limiter: ratelimit.NewLimiter(ratelimit.Config{
			Enabled:     cfg.Security.RateLimit.Enabled,
			Window:      cfg.Security.RateLimit.Window,
			MaxRequests: cfg.Security.RateLimit.MaxRequests,
		}),
	}
	s.cfg.Store(cfg)

	if cfg.Telemetry.Metrics.Enabled {
		s.collector = metrics.NewCollector(cfg.Telemetry.Metrics, nil)
	}

	backend, err := newBackend(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage backend: %w", err)
	}
	s.backend = backend

	if cfg.Security.RateLimit.Enabled && cfg.Security.RateLimit.SweepSchedule != "" {
		s.sweeper = ratelimit.NewSweeper(s.limiter, backend, cfg.Security.RateLimit.SweepSchedule, logger.Slog())
	}

	return s, nil
}

// newBackend creates the snapshot storage backend named by the config.
func newBackend(cfg config.StorageConfig) (storage.Backend, error) {
	switch cfg.Backend {
	case "sqlite":
		return storage.NewSQLiteBackendWithConfig(storage.SQLiteBackendConfig{
			DBPath:      cfg.SQLite.Path,
			BusyTimeout: cfg.SQLite.BusyTimeout,
		})
	case "memory", "":
		return storage.NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Start starts the HTTP server and blocks until the context is cancelled,
// a shutdown signal arrives, or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	cfg := s.cfg.Load()

	// Carry rate-limit windows across restarts.
	if entries, err := s.backend.LoadAll(ctx); err != nil {
		s.logger.Warn("failed to restore rate-limit windows", "error", err)
	} else if len(entries) > 0 {
		s.limiter.Restore(entries)
		s.logger.Info("restored rate-limit windows", "count", len(entries))
	}

	if s.sweeper != nil {
		if err := s.sweeper.Start(ctx); err != nil {
			return fmt.Errorf("failed to start rate-limit sweeper: %w", err)
		}
	}

	s.httpServer = &http.Server{
		Addr:           cfg.Server.ListenAddress,
		Handler:        s.Handler(),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting gateway",
			"address", cfg.Server.ListenAddress,
			"rate_limit_enabled", cfg.Security.RateLimit.Enabled,
			"storage_backend", cfg.Storage.Backend,
		)

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		s.logger.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully stops the server: drains in-flight requests, stops
// the sweeper, and snapshots live rate-limit windows to storage.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		cfg := s.cfg.Load()
		s.logger.Info("initiating graceful shutdown", "timeout", cfg.Server.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				s.logger.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		if s.sweeper != nil {
			s.sweeper.Stop()
		}

		if entries := s.limiter.Snapshot(); len(entries) > 0 {
			if err := s.backend.SaveAll(shutdownCtx, entries); err != nil {
				s.logger.Warn("failed to snapshot rate-limit windows", "error", err)
			}
		}
		if err := s.backend.Close(); err != nil {
			s.logger.Warn("failed to close storage backend", "error", err)
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		s.logger.Info("gateway stopped")
	})

	return shutdownErr
}

// ApplyConfig applies the runtime-safe parts of a reloaded configuration:
// security header policy and rate-limit thresholds. Everything else keeps
// its startup value.
func (s *Server) ApplyConfig(cfg *config.Config) {
	s.cfg.Store(cfg)
	s.limiter.UpdateConfig(ratelimit.Config{
		Enabled:     cfg.Security.RateLimit.Enabled,
		Window:      cfg.Security.RateLimit.Window,
		MaxRequests: cfg.Security.RateLimit.MaxRequests,
	})
	s.logger.Info("applied reloaded configuration",
		"rate_limit_enabled", cfg.Security.RateLimit.Enabled,
		"rate_limit_max", cfg.Security.RateLimit.MaxRequests,
	)
}

// Handler builds the routed handler with the full middleware chain.
// Exposed for tests and embedding.
func (s *Server) Handler() http.Handler {
	cfg := s.cfg.Load()

	api := handlers.New(handlers.Options{
		Validator:    validation.NewValidator(nil),
		Logger:       s.logger,
		Collector:    s.collector,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/profile", api.UpdateProfile)
	mux.HandleFunc("POST /api/forum/posts", api.CreatePost)
	mux.HandleFunc("POST /api/forum/comments", api.CreateComment)
	mux.HandleFunc("POST /api/uploads", api.RegisterUpload)
	mux.HandleFunc("GET /health", api.Health)

	if s.collector != nil {
		mux.Handle("GET "+cfg.Telemetry.Metrics.Path, s.collector.Handler())
	}

	var handler http.Handler = mux
	handler = middleware.Timeout(cfg.Server.RequestTimeout)(handler)
	handler = middleware.RateLimit(s.limiter, s.logger, s.collector)(handler)
	handler = middleware.SecurityHeaders(s.headerConfig)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Logging(s.logger, s.collector)(handler)
	handler = middleware.Recovery(s.logger)(handler)

	return handler
}

// headerConfig reads the current security header configuration. Used as
// the per-request source by the headers middleware so reloads take effect
// immediately.
func (s *Server) headerConfig() headers.Config {
	return s.cfg.Load().Security.Headers
}

// IsRunning reports whether the server is serving.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}
