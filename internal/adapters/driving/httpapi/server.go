// Package httpapi exposes the export and search services over HTTP.
package httpapi

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/sia-ops/shiftsheet/internal/core/ports/driving"
	"github.com/sia-ops/shiftsheet/internal/logger"
)

// Config configures the HTTP server.
type Config struct {
	// Addr is the listen address, e.g. ":3001".
	Addr string

	// BasicAuthUsername and BasicAuthPassword guard every /api route.
	// Empty credentials disable the auth middleware.
	BasicAuthUsername string
	BasicAuthPassword string
}

// Server serves the export trigger and search endpoints.
type Server struct {
	mu       sync.Mutex
	cfg      Config
	export   driving.ExportService
	search   driving.SearchService
	server   *http.Server
	listener net.Listener
}

// NewServer creates an HTTP server over the driving services.
func NewServer(cfg Config, export driving.ExportService, search driving.SearchService) *Server {
	return &Server{
		cfg:    cfg,
		export: export,
		search: search,
	}
}

// Start begins listening on the configured address.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/export", s.handleExport)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/test-auth", s.handleTestAuth)

	handler := http.Handler(mux)
	if s.cfg.BasicAuthUsername != "" || s.cfg.BasicAuthPassword != "" {
		handler = basicAuth(s.cfg.BasicAuthUsername, s.cfg.BasicAuthPassword, handler)
	}

	s.server = &http.Server{
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 5 * time.Minute, // an export run does real work
	}

	listener, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Warn("http server: %v", err)
		}
	}()

	logger.Info("listening on %s", listener.Addr())
	return nil
}

// Addr returns the bound address. Useful when Addr was ":0".
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return s.cfg.Addr
	}
	return s.listener.Addr().String()
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
