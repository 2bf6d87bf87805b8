package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/hockey-bracket-service/internal/app/brackets"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/bracket"
	"github.com/preston-bernstein/hockey-bracket-service/internal/logging"
	"github.com/preston-bernstein/hockey-bracket-service/internal/warmer"
)

// BracketService is the read side of the bracket application service.
type BracketService interface {
	Bracket(ctx context.Context, leagueID, season string) (bracket.Response, error)
}

// Handler wires HTTP routes to the bracket service.
type Handler struct {
	svc      BracketService
	logger   *slog.Logger
	statusFn func() warmer.Status
}

// NewHandler constructs a Handler. A nil statusFn reports ready unconditionally.
func NewHandler(svc BracketService, logger *slog.Logger, statusFn func() warmer.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// LeaguePlayoffs serves GET /leagues/{leagueID}/playoffs?season=.
func (h *Handler) LeaguePlayoffs(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.serveBracket(w, r, chi.URLParam(r, "leagueID"), r.URL.Query().Get("season"))
}

// LegacyLeaguePlayoff serves GET /api/league-playoff?leagueId=&season= for embedded widgets.
func (h *Handler) LegacyLeaguePlayoff(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	h.serveBracket(w, r, q.Get("leagueId"), q.Get("season"))
}

func (h *Handler) serveBracket(w nethttp.ResponseWriter, r *nethttp.Request, leagueID, season string) {
	logger := loggerFromContext(r, h.logger)
	if h.svc == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "bracket service not configured", logger)
		return
	}

	resp, err := h.svc.Bracket(r.Context(), leagueID, season)
	if err != nil {
		status, msg := bracketErrorStatus(err)
		if status >= nethttp.StatusInternalServerError {
			logging.Warn(logger, "bracket request failed",
				logging.FieldLeagueID, leagueID, logging.FieldSeason, season, "err", err)
		}
		writeError(w, r, status, msg, logger)
		return
	}

	logging.Info(logger, "served bracket",
		logging.FieldLeagueID, resp.LeagueID,
		logging.FieldSeason, resp.Season,
		logging.FieldPlaceholder, resp.Placeholder,
	)
	writeJSON(w, nethttp.StatusOK, resp, logger)
}

func bracketErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, brackets.ErrInvalidRequest):
		return nethttp.StatusBadRequest, brackets.ErrInvalidRequest.Error()
	case errors.Is(err, brackets.ErrStandingsUnavailable):
		return nethttp.StatusBadGateway, brackets.ErrStandingsUnavailable.Error()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nethttp.StatusServiceUnavailable, "request cancelled"
	default:
		return nethttp.StatusInternalServerError, "internal error"
	}
}
