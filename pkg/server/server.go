// Package server exposes the planning pipeline as an HTTP JSON API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/catalog"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/planner"
)

// Defaults for Config.
const (
	DefaultAddr        = ":8080"
	DefaultReportRPS   = 1.0
	DefaultReportBurst = 3

	maxBodyBytes    = 1 << 20
	shutdownTimeout = 10 * time.Second
)

// Config holds the HTTP server settings.
type Config struct {
	Addr        string
	ReportRPS   float64 // sustained report requests per second
	ReportBurst int
}

// Server routes API requests to the pipeline.
type Server struct {
	cfg      Config
	pipeline *planner.Pipeline
	catalog  *catalog.Catalog
	limiter  *rate.Limiter
	router   *chi.Mux
}

// New creates a server. Zero config values take the package defaults and a
// nil catalog serves the built-in tables.
func New(p *planner.Pipeline, cat *catalog.Catalog, cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.ReportRPS <= 0 {
		cfg.ReportRPS = DefaultReportRPS
	}
	if cfg.ReportBurst <= 0 {
		cfg.ReportBurst = DefaultReportBurst
	}
	if cat == nil {
		cat = catalog.Default()
	}
	if p == nil {
		p = planner.NewPipeline()
	}

	s := &Server{
		cfg:      cfg,
		pipeline: p,
		catalog:  cat,
		limiter:  rate.NewLimiter(rate.Limit(cfg.ReportRPS), cfg.ReportBurst),
		router:   chi.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)
		r.Post("/hints", s.handleHints)
		r.Post("/score", s.handleScore)
		r.Post("/cost", s.handleCost)
		r.With(s.throttle).Post("/report", s.handleReport)
		r.With(s.throttle).Post("/analyze", s.handleAnalyze)
	})
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
		slog.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	}
}

// throttle rejects requests beyond the report rate with 429.
func (s *Server) throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusTooManyRequests, "report rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}
