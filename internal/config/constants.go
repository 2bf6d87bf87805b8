package config

import "time"

const (
	envPort             = "PORT"
	envProvider         = "PROVIDER"
	envHockeyBaseURL    = "HOCKEY_API_BASE_URL"
	envHockeyAPIKey     = "HOCKEY_API_KEY"
	envHockeyRPM        = "HOCKEY_API_REQUESTS_PER_MINUTE"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"
	envCacheTTL         = "CACHE_TTL"
	envRedisURL         = "REDIS_URL"
	envExplicitSeasons  = "EXPLICIT_ELIMINATION_SEASONS"
	envTeamsPerConf     = "PLAYOFF_TEAMS_PER_CONFERENCE"
	envWarmTargets      = "WARM_TARGETS"
	envWarmInterval     = "WARM_INTERVAL"
	envCORSAllowOrigins = "CORS_ALLOW_ORIGINS"
	envLogLevel         = "LOG_LEVEL"
	envLogFormat        = "LOG_FORMAT"
	envAdminToken       = "ADMIN_TOKEN"
	envSnapshotsOn      = "SNAPSHOTS_ENABLED"
	envSnapshotFolder   = "SNAPSHOT_FOLDER"
	envSnapshotSeasons  = "SNAPSHOT_SEASONS_PER_LEAGUE"

	defaultPort          = "4000"
	defaultProvider      = "fixture"
	defaultHockeyBaseURL = "https://api.hockeytech.example/v1"
	// Upstream free tier allows 60 req/min; stay at the ceiling and let the limiter queue the rest.
	defaultHockeyRPM    = 60
	defaultMetricsPort  = "9090"
	defaultServiceName  = "hockey-bracket-service"
	defaultCacheTTL     = 5 * Duration(time.Minute)
	defaultWarmInterval = 10 * Duration(time.Minute)
	defaultTeamsPerConf = 8
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"

	defaultSnapshotsOn     = false
	defaultSnapshotFolder  = "data/snapshots"
	defaultSnapshotSeasons = 10
)

var (
	// Only this season's standings carry trustworthy elimination markers.
	defaultExplicitSeasons = []string{"2023-2024"}
	defaultCORSOrigins     = []string{"*"}
)
