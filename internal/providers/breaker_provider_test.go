package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/hockey-bracket-service/internal/metrics"
)

func TestBreakerProviderPassesThroughSuccess(t *testing.T) {
	bp := NewBreakerProvider(&flakeyProvider{}, "upstream", BreakerConfig{}, nil, metrics.NewRecorder())

	standings, err := bp.FetchStandings(context.Background(), "12", "2024-2025")
	if err != nil || len(standings) != 1 {
		t.Fatalf("expected standings, got %v %v", standings, err)
	}
	list, err := bp.FetchPlayoffGames(context.Background(), "12", "2024-2025", []int{1})
	if err != nil || len(list) != 1 {
		t.Fatalf("expected games, got %v %v", list, err)
	}
}

func TestBreakerProviderOpensAfterRepeatedFailures(t *testing.T) {
	inner := &flakeyProvider{failures: 100}
	bp := NewBreakerProvider(inner, "upstream", BreakerConfig{Timeout: time.Hour}, nil, metrics.NewRecorder()).(*breakerProvider)

	for i := 0; i < breakerMinRequests; i++ {
		if _, err := bp.FetchStandings(context.Background(), "12", "2024-2025"); err == nil {
			t.Fatalf("expected upstream error on call %d", i)
		}
	}
	if got := bp.State(); got != "open" {
		t.Fatalf("expected breaker open, got %s", got)
	}

	_, err := bp.FetchPlayoffGames(context.Background(), "12", "2024-2025", nil)
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable while open, got %v", err)
	}
	if got := inner.calls.Load(); got != breakerMinRequests {
		t.Fatalf("expected upstream not called while open, got %d calls", got)
	}
}

func TestBreakerProviderIgnoresRateLimits(t *testing.T) {
	inner := &flakeyProvider{failures: 100, err: &RateLimitError{StatusCode: 429}}
	bp := NewBreakerProvider(inner, "upstream", BreakerConfig{}, nil, metrics.NewRecorder()).(*breakerProvider)

	for i := 0; i < breakerMinRequests*2; i++ {
		_, err := bp.FetchStandings(context.Background(), "12", "2024-2025")
		if _, ok := AsRateLimitError(err); !ok {
			t.Fatalf("expected rate limit error to pass through, got %v", err)
		}
	}
	if got := bp.State(); got != "closed" {
		t.Fatalf("expected breaker to stay closed on rate limits, got %s", got)
	}
}
