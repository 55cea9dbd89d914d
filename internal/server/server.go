// Package server exposes the resolution pipeline over HTTP. Routing uses
// chi; responses are JSON with a localized apology envelope on failure so
// the client always has something to show the user.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bizsakhi/sakhi/internal/pipeline"
	"github.com/bizsakhi/sakhi/internal/query"
	"github.com/bizsakhi/sakhi/internal/service"
)

// UserResolver extracts the acting user identity from a request. Auth is
// out of scope; the default resolver trusts the X-User-ID header, then the
// identity carried in the body or query string, then the shared default.
type UserResolver func(r *http.Request, bodyID string) string

// DefaultUserResolver is the header-then-body-then-default resolver.
func DefaultUserResolver(r *http.Request, bodyID string) string {
	if id := r.Header.Get("X-User-ID"); id != "" {
		return id
	}
	if bodyID != "" {
		return bodyID
	}
	if id := r.URL.Query().Get("user_id"); id != "" {
		return id
	}
	return "default"
}

// Server hosts the chat and summary API.
type Server struct {
	pipeline *pipeline.Pipeline
	queries  *query.Responder
	ledger   service.Ledger
	history  service.HistorySink
	resolver UserResolver
	httpSrv  *http.Server
	port     int
}

// New creates a server around the pipeline and its collaborators.
func New(port int, p *pipeline.Pipeline, queries *query.Responder, ledger service.Ledger, history service.HistorySink) *Server {
	return &Server{
		pipeline: p,
		queries:  queries,
		ledger:   ledger,
		history:  history,
		resolver: DefaultUserResolver,
		port:     port,
	}
}

// SetUserResolver replaces the identity resolver, for deployments that
// terminate auth upstream and inject a different identity carrier.
func (s *Server) SetUserResolver(resolver UserResolver) {
	if resolver != nil {
		s.resolver = resolver
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/chat", func(r chi.Router) {
			r.Post("/message", s.handleChatMessage)
			r.Post("/voice", s.handleChatVoice)
			r.Post("/confirm-items", s.handleConfirmItems)
			r.Get("/history", s.handleChatHistory)
		})
		r.Route("/summary", func(r chi.Router) {
			r.Get("/income", s.handleIncomeSummary)
			r.Get("/expense", s.handleExpenseSummary)
			r.Get("/profit-loss", s.handleProfitLoss)
			r.Get("/inventory", s.handleInventorySummary)
		})
	})

	return r
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		slog.Info("http server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.httpSrv.Shutdown(shutdownCtx)
	}()

	slog.Info("http server listening", "port", s.port)
	if err := s.httpSrv.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("http listen: %w", err)
	}
	return nil
}
