package providers

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRateLimitedProviderSpacesCalls(t *testing.T) {
	inner := &flakeyProvider{}
	// 1200/min is one token every 50ms; the first call uses the initial burst.
	rl := NewRateLimitedProvider(inner, "limited", 1200, nil)

	start := time.Now()
	if _, err := rl.FetchStandings(context.Background(), "12", "2024-2025"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := rl.FetchPlayoffGames(context.Background(), "12", "2024-2025", nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Fatalf("expected second call to wait for a token, elapsed %s", elapsed)
	}
	if got := inner.calls.Load(); got != 2 {
		t.Fatalf("expected inner provider called twice, got %d", got)
	}
}

func TestRateLimitedProviderRespectsCanceledContext(t *testing.T) {
	inner := &flakeyProvider{}
	rl := NewRateLimitedProvider(inner, "limited", 1, nil)

	// Drain the burst token.
	if _, err := rl.FetchStandings(context.Background(), "12", "2024-2025"); err != nil {
		t.Fatalf("expected first call to pass, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := rl.FetchStandings(ctx, "12", "2024-2025"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if got := inner.calls.Load(); got != 1 {
		t.Fatalf("expected inner provider not called on canceled context, got %d calls", got)
	}
}

func TestRateLimitedProviderHandlesNilInner(t *testing.T) {
	rl := NewRateLimitedProvider(nil, "limited", 60, nil)

	_, err := rl.FetchPlayoffGames(context.Background(), "12", "2024-2025", nil)
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestRateLimitedProviderDefaultsRate(t *testing.T) {
	rl := NewRateLimitedProvider(&flakeyProvider{}, "limited", 0, nil).(*rateLimitedProvider)
	if got := rl.limiter.Limit(); got != 1 {
		t.Fatalf("expected default of one request per second, got %v", got)
	}
}
