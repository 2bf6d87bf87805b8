package config

// Config holds runtime configuration for the server.
type Config struct {
	Port      string
	Provider  string
	HockeyAPI HockeyAPIConfig
	Metrics   MetricsConfig
	Cache     CacheConfig
	Playoffs  PlayoffsConfig
	Warm      WarmConfig
	Log       LogConfig
	CORS      CORSConfig
	Snapshots SnapshotsConfig
	// AdminToken guards the admin refresh route; empty disables it.
	AdminToken string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:       envOrDefault(envPort, defaultPort),
		Provider:   envOrDefault(envProvider, defaultProvider),
		HockeyAPI:  loadHockeyAPI(),
		Metrics:    loadMetrics(),
		Cache:      loadCache(),
		Playoffs:   loadPlayoffs(),
		Warm:       loadWarm(),
		Log:        loadLog(),
		CORS:       loadCORS(),
		Snapshots:  loadSnapshots(),
		AdminToken: envOrDefault(envAdminToken, ""),
	}
}

// LogConfig controls logger level and output format.
type LogConfig struct {
	Level  string
	Format string
}

func loadLog() LogConfig {
	return LogConfig{
		Level:  envOrDefault(envLogLevel, defaultLogLevel),
		Format: envOrDefault(envLogFormat, defaultLogFormat),
	}
}

// CORSConfig lists origins allowed to embed the bracket endpoints.
type CORSConfig struct {
	AllowedOrigins []string
}

func loadCORS() CORSConfig {
	return CORSConfig{AllowedOrigins: listEnvOrDefault(envCORSAllowOrigins, defaultCORSOrigins)}
}
