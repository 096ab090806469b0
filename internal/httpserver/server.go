package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/job-restart-operator/internal/infra/shutdown"
)

// Server serves the health, readiness and job status endpoints.
type Server struct {
	logger     *slog.Logger
	appState   appstater
	jobs       jobStatuser
	port       string
	server     *http.Server
	addr       atomic.Pointer[net.Addr]
	ready      chan struct{}
	inShutdown atomic.Bool
}

// New creates a new HTTP server instance
func New(logger *slog.Logger, appState appstater, jobs jobStatuser, port string) *Server {
	return &Server{
		logger:   logger,
		appState: appState,
		jobs:     jobs,
		port:     port,
		ready:    make(chan struct{}),
	}
}

var _ shutdown.Shutdowner = (*Server)(nil)

// Name returns the name of the server component
func (s *Server) Name() string {
	return "http-server"
}

// Ping returns nil when the server is ready to serve.
func (s *Server) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
		return nil
	default:
		return errors.New("http server is not ready")
	}
}

// Handler returns the router with all endpoints registered.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	router.Get(pathHealthz, s.handleHealthz)
	router.Get(pathReadyz, s.handleReadyz)
	router.Get(pathStatus, s.handleStatus)

	return router
}

// Start binds the port and serves in a goroutine.
func (s *Server) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "http server is shutting down, skipping start")

		return nil
	}

	listener, err := listen(ctx, s.port)
	if err != nil {
		return fmt.Errorf("start http server: %w", err)
	}

	addr := listener.Addr()
	s.addr.Store(&addr)
	s.server = newHTTPServer(s.Handler())

	s.logger.InfoContext(ctx, "http server listening", "addr", addr.String())

	go func() {
		close(s.ready)

		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.ErrorContext(ctx, "http server error", "reason", err)
		}
	}()

	return nil
}

// Addr returns the bound address, or empty before Start.
func (s *Server) Addr() string {
	addr := s.addr.Load()
	if addr == nil {
		return ""
	}

	return (*addr).String()
}

// Ready returns a channel that is closed when the HTTP server is ready to serve requests
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "http server is already shutting down, skipping shutdown")

		return nil
	}

	s.logger.InfoContext(ctx, "shutting down http server")

	if s.server == nil {
		return nil
	}

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	s.logger.InfoContext(ctx, "http server closed properly")

	return nil
}
