// Package gatewayhttp serves the gateway's HTTP surface: the ReACT-augmented
// chat-completions endpoint and a passthrough proxy for everything else.
package gatewayhttp

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/coho-labs/actgate/internal/config"
	"github.com/coho-labs/actgate/internal/react"
)

// Orchestrator is the subset of react.Orchestrator's behavior the server
// depends on, so tests can substitute a fake.
type Orchestrator interface {
	Run(ctx context.Context, req react.Request) (*react.Result, error)
}

// Server is the gateway's HTTP server.
type Server struct {
	cfg          *config.Config
	orchestrator Orchestrator
	router       chi.Router
	http         *http.Server
}

// New builds a Server. orchestrator runs the ReACT loop for every chat
// request; cfg supplies the model allowlist and the upstream base URL the
// passthrough proxy targets.
func New(cfg *config.Config, orchestrator Orchestrator) (*Server, error) {
	upstreamURL, err := url.Parse(cfg.UpstreamBaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing upstream base URL: %w", err)
	}

	s := &Server{
		cfg:          cfg,
		orchestrator: orchestrator,
		router:       chi.NewRouter(),
	}
	s.setupRoutes(httputil.NewSingleHostReverseProxy(upstreamURL))
	return s, nil
}

func (s *Server) setupRoutes(passthrough http.Handler) {
	r := s.router

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Post("/v1/chat/completions", s.handleChatCompletions)
	r.Options("/v1/chat/completions", s.handleChatCompletionsOptions)

	// Non-chat paths are an external collaborator's concern; this is
	// infrastructure glue to give the router a concrete default route.
	r.Handle("/*", passthrough)
}

func (s *Server) logf(format string, args ...any) {
	log.Printf(format, args...)
}

// Start begins listening on cfg.Port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.http = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	log.Printf("actgate listening on http://localhost%s", addr)
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}
