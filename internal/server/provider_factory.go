package server

import (
	"log/slog"

	"github.com/preston-bernstein/hockey-bracket-service/internal/config"
	"github.com/preston-bernstein/hockey-bracket-service/internal/metrics"
	"github.com/preston-bernstein/hockey-bracket-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (retry, breaker, rate limit).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

// wrap layers retry outermost, then the circuit breaker, then the rate limiter.
// The fixture is local, so it only gets the retry layer.
func (f providerFactory) wrap(cfg config.Config, base providers.DataProvider) providers.DataProvider {
	name := normalizeProviderName(cfg.Provider, base)
	next := base
	if isRemote(base) {
		next = providers.NewRateLimitedProvider(next, name, cfg.HockeyAPI.RequestsPerMinute, f.logger)
		next = providers.NewBreakerProvider(next, name, providers.BreakerConfig{
			Timeout:  breakerTimeout,
			Interval: breakerInterval,
		}, f.logger, f.metrics)
	}
	return providers.NewRetryingProvider(next, f.logger, f.metrics, name, 0, 0)
}
