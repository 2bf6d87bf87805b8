package brackets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/bracket"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/games"
	"github.com/preston-bernstein/hockey-bracket-service/internal/logging"
	"github.com/preston-bernstein/hockey-bracket-service/internal/metrics"
	"github.com/preston-bernstein/hockey-bracket-service/internal/playoffs"
	"github.com/preston-bernstein/hockey-bracket-service/internal/providers"
	"github.com/preston-bernstein/hockey-bracket-service/internal/store"
)

var (
	// ErrInvalidRequest is returned when the league or season is missing.
	ErrInvalidRequest = errors.New("leagueId and season are required")
	// ErrStandingsUnavailable is returned when standings cannot be fetched.
	ErrStandingsUnavailable = errors.New("failed to fetch standings")
)

// Archive persists completed brackets so finished seasons survive restarts and cache expiry.
type Archive interface {
	LoadBracket(leagueID, season string) (bracket.Response, error)
	WriteBracketSnapshot(resp bracket.Response) error
}

// Options configures a Service.
type Options struct {
	Format bracket.Format
	// CacheTTL of zero disables caching.
	CacheTTL time.Duration
	// ExplicitElimination reports whether a season's standings carry trustworthy elimination markers.
	ExplicitElimination func(season string) bool
	Reconstructor       *playoffs.Reconstructor
	// Archive is optional; nil disables snapshot reads and writes.
	Archive Archive
}

// Service reconstructs playoff brackets from upstream standings and games.
type Service struct {
	provider      providers.DataProvider
	cache         store.Cache
	archive       Archive
	reconstructor *playoffs.Reconstructor
	format        bracket.Format
	cacheTTL      time.Duration
	explicit      func(string) bool
	logger        *slog.Logger
	metrics       *metrics.Recorder
	now           func() time.Time
}

// NewService wires a Service. A nil cache disables caching.
func NewService(provider providers.DataProvider, cache store.Cache, opts Options, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	format := opts.Format
	if len(format.Conferences) == 0 {
		format = bracket.StandardFormat
	}
	rec := opts.Reconstructor
	if rec == nil {
		rec = playoffs.NewReconstructor()
	}
	explicit := opts.ExplicitElimination
	if explicit == nil {
		explicit = func(string) bool { return false }
	}
	return &Service{
		provider:      provider,
		cache:         cache,
		archive:       opts.Archive,
		reconstructor: rec,
		format:        format,
		cacheTTL:      opts.CacheTTL,
		explicit:      explicit,
		logger:        logger,
		metrics:       recorder,
		now:           time.Now,
	}
}

// Bracket returns the bracket for a league season, serving from cache when possible.
func (s *Service) Bracket(ctx context.Context, leagueID, season string) (bracket.Response, error) {
	leagueID, season, err := normalize(leagueID, season)
	if err != nil {
		return bracket.Response{}, err
	}

	if resp, ok := s.cached(ctx, leagueID, season); ok {
		return resp, nil
	}
	if resp, ok := s.archived(ctx, leagueID, season); ok {
		s.remember(ctx, resp)
		return resp, nil
	}
	return s.build(ctx, leagueID, season)
}

// Refresh rebuilds the bracket for a league season, bypassing the cache and archive reads.
func (s *Service) Refresh(ctx context.Context, leagueID, season string) (bracket.Response, error) {
	leagueID, season, err := normalize(leagueID, season)
	if err != nil {
		return bracket.Response{}, err
	}
	return s.build(ctx, leagueID, season)
}

func normalize(leagueID, season string) (string, string, error) {
	leagueID = strings.TrimSpace(leagueID)
	season = strings.TrimSpace(season)
	if leagueID == "" || season == "" {
		return "", "", ErrInvalidRequest
	}
	return leagueID, season, nil
}

func (s *Service) cacheEnabled() bool {
	return s.cache != nil && s.cacheTTL > 0
}

func (s *Service) cached(ctx context.Context, leagueID, season string) (bracket.Response, bool) {
	if !s.cacheEnabled() {
		return bracket.Response{}, false
	}
	logger := logging.FromContext(ctx, s.logger)

	resp, ok, err := s.cache.Get(ctx, store.BracketKey(leagueID, season))
	if err != nil {
		logging.Warn(logger, "bracket cache read failed", logging.FieldLeagueID, leagueID, logging.FieldSeason, season, "err", err)
		return bracket.Response{}, false
	}
	s.metrics.RecordCacheLookup(ok)
	return resp, ok
}

func (s *Service) build(ctx context.Context, leagueID, season string) (bracket.Response, error) {
	logger := logging.FromContext(ctx, s.logger)
	start := s.now()

	if s.provider == nil {
		return bracket.Response{}, fmt.Errorf("%w: %w", ErrStandingsUnavailable, providers.ErrProviderUnavailable)
	}

	standings, err := s.provider.FetchStandings(ctx, leagueID, season)
	if err != nil {
		logging.Error(logger, "standings fetch failed", err, logging.FieldLeagueID, leagueID, logging.FieldSeason, season)
		return bracket.Response{}, fmt.Errorf("%w: %w", ErrStandingsUnavailable, err)
	}

	eligible := playoffs.ResolveEligible(standings, s.format)
	logging.Info(logger, "resolved eligible teams",
		logging.FieldLeagueID, leagueID, logging.FieldSeason, season, logging.FieldCount, len(eligible))

	list, err := s.provider.FetchPlayoffGames(ctx, leagueID, season, playoffs.TeamIDs(eligible))
	if err != nil {
		// No games means a synthetic bracket rather than a failed request.
		logging.Warn(logger, "playoff games fetch failed, continuing without games",
			logging.FieldLeagueID, leagueID, logging.FieldSeason, season, "err", err)
		list = []games.Game{}
	}

	result := s.reconstructor.Build(eligible, list, playoffs.Options{
		Format:                     s.format,
		HasExplicitEliminationData: s.explicit(season),
	})
	elapsed := s.now().Sub(start)
	s.metrics.RecordBracketBuild(elapsed, result.Placeholder)

	if result.Placeholder {
		logging.Info(logger, "no playoff games found, serving placeholder bracket",
			logging.FieldLeagueID, leagueID, logging.FieldSeason, season, logging.FieldPlaceholder, true)
	} else {
		logging.Info(logger, "bracket reconstructed",
			logging.FieldLeagueID, leagueID, logging.FieldSeason, season,
			logging.FieldCount, len(result.Series), logging.FieldDurationMS, elapsed.Milliseconds())
	}

	resp := bracket.Response{
		Bracket:     result.Bracket,
		LeagueID:    leagueID,
		Season:      season,
		Placeholder: result.Placeholder,
	}
	s.remember(ctx, resp)
	s.persist(ctx, resp)
	return resp, nil
}

// remember caches real brackets only; placeholder win counts are random and must not be pinned.
func (s *Service) remember(ctx context.Context, resp bracket.Response) {
	if !s.cacheEnabled() || resp.Placeholder {
		return
	}
	if err := s.cache.Set(ctx, store.BracketKey(resp.LeagueID, resp.Season), resp, s.cacheTTL); err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "bracket cache write failed",
			logging.FieldLeagueID, resp.LeagueID, logging.FieldSeason, resp.Season, "err", err)
	}
}

// archived serves a previously completed bracket from the snapshot archive.
func (s *Service) archived(ctx context.Context, leagueID, season string) (bracket.Response, bool) {
	if s.archive == nil {
		return bracket.Response{}, false
	}
	resp, err := s.archive.LoadBracket(leagueID, season)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logging.Warn(logging.FromContext(ctx, s.logger), "bracket snapshot read failed",
				logging.FieldLeagueID, leagueID, logging.FieldSeason, season, "err", err)
		}
		return bracket.Response{}, false
	}
	if !isComplete(resp) {
		return bracket.Response{}, false
	}
	logging.Info(logging.FromContext(ctx, s.logger), "serving archived bracket",
		logging.FieldLeagueID, leagueID, logging.FieldSeason, season)
	return resp, true
}

// persist archives brackets whose final has been decided; nothing else is stable enough to pin.
func (s *Service) persist(ctx context.Context, resp bracket.Response) {
	if s.archive == nil || !isComplete(resp) {
		return
	}
	if err := s.archive.WriteBracketSnapshot(resp); err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "bracket snapshot write failed",
			logging.FieldLeagueID, resp.LeagueID, logging.FieldSeason, resp.Season, "err", err)
	}
}

func isComplete(resp bracket.Response) bool {
	final := resp.Bracket.Final
	return !resp.Placeholder && final != nil && final.Status == bracket.SeriesCompleted && final.Winner != nil
}
