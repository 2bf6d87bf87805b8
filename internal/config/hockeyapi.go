package config

// HockeyAPIConfig controls how we talk to the upstream sports-data API.
type HockeyAPIConfig struct {
	BaseURL           string
	APIKey            string
	RequestsPerMinute int
}

func loadHockeyAPI() HockeyAPIConfig {
	return HockeyAPIConfig{
		BaseURL:           envOrDefault(envHockeyBaseURL, defaultHockeyBaseURL),
		APIKey:            envOrDefault(envHockeyAPIKey, ""),
		RequestsPerMinute: intEnvOrDefault(envHockeyRPM, defaultHockeyRPM),
	}
}
