package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/bracket"
	"github.com/preston-bernstein/hockey-bracket-service/internal/http/requestutil"
	"github.com/preston-bernstein/hockey-bracket-service/internal/logging"
)

// BracketRefresher rebuilds a bracket and replaces its cache entry.
type BracketRefresher interface {
	Refresh(ctx context.Context, leagueID, season string) (bracket.Response, error)
}

// AdminHandler exposes admin-only endpoints (e.g., forced bracket refresh).
type AdminHandler struct {
	svc    BracketRefresher
	token  string
	logger *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(svc BracketRefresher, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		svc:    svc,
		token:  token,
		logger: logger,
	}
}

// RefreshBracket rebuilds the bracket for ?leagueId=&season=, bypassing the cache.
// Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshBracket(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.svc == nil {
		writeError(w, r, http.StatusServiceUnavailable, "bracket service not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	leagueID := strings.TrimSpace(r.URL.Query().Get("leagueId"))
	season := strings.TrimSpace(r.URL.Query().Get("season"))

	resp, err := h.svc.Refresh(r.Context(), leagueID, season)
	if err != nil {
		status, msg := bracketErrorStatus(err)
		logging.Warn(logger, "admin bracket refresh failed",
			slog.String(logging.FieldLeagueID, leagueID),
			slog.String(logging.FieldSeason, season),
			slog.Any("err", err),
		)
		writeError(w, r, status, msg, logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"leagueId":    resp.LeagueID,
		"season":      resp.Season,
		"placeholder": resp.Placeholder,
		"status":      "ok",
	}, logger)
	logging.Info(logger, "admin bracket refreshed",
		slog.String(logging.FieldLeagueID, resp.LeagueID),
		slog.String(logging.FieldSeason, resp.Season),
		slog.Bool(logging.FieldPlaceholder, resp.Placeholder),
	)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := r.Header.Get("Authorization")
	want := "Bearer " + h.token
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
