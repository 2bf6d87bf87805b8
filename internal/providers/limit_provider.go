package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/games"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/teams"
)

const defaultRequestsPerMinute = 60

// rateLimitedProvider wraps a DataProvider and spaces upstream calls with a token bucket.
type rateLimitedProvider struct {
	next    DataProvider
	limiter *rate.Limiter
	logger  *slog.Logger
	name    string
}

// NewRateLimitedProvider returns a DataProvider that allows requestsPerMinute upstream calls.
// Calls block until a token is available or ctx is done.
func NewRateLimitedProvider(next DataProvider, name string, requestsPerMinute int, logger *slog.Logger) DataProvider {
	if requestsPerMinute <= 0 {
		requestsPerMinute = defaultRequestsPerMinute
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1),
		logger:  logger,
		name:    name,
	}
}

func (p *rateLimitedProvider) FetchStandings(ctx context.Context, leagueID, season string) ([]teams.Team, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchStandings(ctx, leagueID, season)
}

func (p *rateLimitedProvider) FetchPlayoffGames(ctx context.Context, leagueID, season string, teamIDs []int) ([]games.Game, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchPlayoffGames(ctx, leagueID, season, teamIDs)
}

func (p *rateLimitedProvider) wait(ctx context.Context) error {
	if p.next == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider unavailable")
		return ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "rate-limited fetch canceled", "err", err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}
