package server

import (
	"log/slog"

	"github.com/preston-bernstein/hockey-bracket-service/internal/config"
	"github.com/preston-bernstein/hockey-bracket-service/internal/providers"
	"github.com/preston-bernstein/hockey-bracket-service/internal/providers/fixture"
	"github.com/preston-bernstein/hockey-bracket-service/internal/providers/hockeyapi"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch normalizeProviderName(cfg.Provider, nil) {
	case fixture.ProviderName, "provider":
		return fixture.New()
	case hockeyapi.ProviderName:
		return hockeyapi.NewClient(hockeyapi.Config{
			BaseURL: cfg.HockeyAPI.BaseURL,
			APIKey:  cfg.HockeyAPI.APIKey,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}

// isRemote reports whether provider talks to an upstream API and needs quota protection.
func isRemote(provider providers.DataProvider) bool {
	_, ok := provider.(*hockeyapi.Client)
	return ok
}
