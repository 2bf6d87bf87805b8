package hockeyapi

import "time"

const (
	defaultBaseURL     = "https://api.hockeytech.example/v1"
	defaultPerPage     = 100
	defaultHTTPTimeout = 10 * time.Second
	defaultMaxPages    = 10
	seasonTypePlayoffs = "POSTSEASON"
)
