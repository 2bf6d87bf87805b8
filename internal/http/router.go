package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/preston-bernstein/hockey-bracket-service/internal/http/handlers"
	"github.com/preston-bernstein/hockey-bracket-service/internal/http/middleware"
	"github.com/preston-bernstein/hockey-bracket-service/internal/metrics"
)

// RouterConfig carries the cross-cutting pieces mounted around the routes.
type RouterConfig struct {
	Logger         *slog.Logger
	Recorder       *metrics.Recorder
	AllowedOrigins []string
	// Admin is mounted under /admin only when non-nil.
	Admin *handlers.AdminHandler
}

// NewRouter registers HTTP routes on a chi mux with recovery, logging, metrics and CORS.
func NewRouter(handler *handlers.Handler, cfg RouterConfig) nethttp.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(func(next nethttp.Handler) nethttp.Handler {
		return middleware.LoggingMiddleware(cfg.Logger, cfg.Recorder, next)
	})
	r.Use(newCORS(cfg.AllowedOrigins).Handler)

	r.NotFound(handlers.NotFound(cfg.Logger))
	r.MethodNotAllowed(handlers.MethodNotAllowed(cfg.Logger))

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/leagues/{leagueID}/playoffs", handler.LeaguePlayoffs)
	r.Get("/api/league-playoff", handler.LegacyLeaguePlayoff)

	if cfg.Admin != nil {
		r.Post("/admin/brackets/refresh", cfg.Admin.RefreshBracket)
	}
	return r
}

func newCORS(origins []string) *cors.Cors {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{nethttp.MethodGet, nethttp.MethodHead, nethttp.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
	})
}
