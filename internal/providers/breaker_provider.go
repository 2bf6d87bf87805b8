package providers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/games"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/teams"
	"github.com/preston-bernstein/hockey-bracket-service/internal/metrics"
)

const (
	defaultBreakerTimeout  = 30 * time.Second
	defaultBreakerInterval = time.Minute
	breakerMinRequests     = 5
	breakerFailureRatio    = 0.6
)

// BreakerConfig tunes the circuit breaker; zero values use defaults.
type BreakerConfig struct {
	// Timeout is how long the breaker stays open before probing again.
	Timeout time.Duration
	// Interval clears closed-state counts.
	Interval time.Duration
}

// breakerProvider stops calling an upstream that keeps failing.
type breakerProvider struct {
	next DataProvider
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps next in a circuit breaker. While open, calls fail fast with ErrProviderUnavailable.
// Rate limit and context errors do not count as upstream failures.
func NewBreakerProvider(next DataProvider, name string, cfg BreakerConfig, logger *slog.Logger, recorder *metrics.Recorder) DataProvider {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultBreakerTimeout
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultBreakerInterval
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < breakerMinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= breakerFailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logWithProvider(context.Background(), logger, slog.LevelWarn, name, "provider circuit breaker state changed",
				"from_state", from.String(), "to_state", to.String())
			recorder.RecordBreakerStateChange(name, to.String())
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			if _, ok := AsRateLimitError(err); ok {
				return true
			}
			return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
	})
	return &breakerProvider{next: next, cb: cb}
}

func (b *breakerProvider) FetchStandings(ctx context.Context, leagueID, season string) ([]teams.Team, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.FetchStandings(ctx, leagueID, season)
	})
	if err != nil {
		return nil, breakerError(err)
	}
	return out.([]teams.Team), nil
}

func (b *breakerProvider) FetchPlayoffGames(ctx context.Context, leagueID, season string, teamIDs []int) ([]games.Game, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.FetchPlayoffGames(ctx, leagueID, season, teamIDs)
	})
	if err != nil {
		return nil, breakerError(err)
	}
	return out.([]games.Game), nil
}

// State reports the breaker state name.
func (b *breakerProvider) State() string {
	return b.cb.State().String()
}

func breakerError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	return err
}
