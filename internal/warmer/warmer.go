package warmer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/hockey-bracket-service/internal/config"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/bracket"
	"github.com/preston-bernstein/hockey-bracket-service/internal/logging"
	"github.com/preston-bernstein/hockey-bracket-service/internal/metrics"
)

const (
	defaultInterval = 10 * time.Minute
	// Failures tolerated before readiness drops.
	maxConsecutiveFailures = 3
)

// Refresher rebuilds and caches one league season bracket.
type Refresher interface {
	Refresh(ctx context.Context, leagueID, season string) (bracket.Response, error)
}

// Warmer refreshes configured brackets on an interval so reads hit a warm cache.
type Warmer struct {
	refresher Refresher
	targets   []config.WarmTarget
	logger    *slog.Logger
	metrics   *metrics.Recorder
	interval  time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the warm loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the warmer has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < maxConsecutiveFailures
}

// New constructs a Warmer with sane defaults.
func New(refresher Refresher, targets []config.WarmTarget, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Warmer {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Warmer{
		refresher: refresher,
		targets:   append([]config.WarmTarget(nil), targets...),
		logger:    logger,
		metrics:   recorder,
		interval:  interval,
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
}

// Start begins warming until the context is cancelled or Stop is called.
func (w *Warmer) Start(ctx context.Context) {
	w.startMu.Lock()
	if w.started {
		w.startMu.Unlock()
		return
	}
	w.started = true
	w.startMu.Unlock()

	w.ticker = time.NewTicker(w.interval)

	go func() {
		defer close(w.stopped)
		logging.Info(w.logger, "warmer started",
			slog.Int64(logging.FieldDurationMS, w.interval.Milliseconds()),
			slog.Int(logging.FieldCount, len(w.targets)))
		w.runOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				w.ticker.Stop()
				logging.Info(w.logger, "warmer stopped")
				return
			case <-w.done:
				w.ticker.Stop()
				logging.Info(w.logger, "warmer stopped")
				return
			case <-w.ticker.C:
				w.runOnce(ctx)
			}
		}
	}()
}

// Stop halts the loop and waits for an in-flight cycle to finish or ctx to end.
func (w *Warmer) Stop(ctx context.Context) error {
	w.stopOnce.Do(func() {
		close(w.done)
	})

	w.startMu.Lock()
	started := w.started
	w.startMu.Unlock()
	if !started {
		return nil
	}

	select {
	case <-w.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// runOnce refreshes every target; the cycle fails if any target fails.
func (w *Warmer) runOnce(ctx context.Context) {
	start := time.Now()
	w.recordAttempt(start)

	var errs []error
	placeholders := 0
	for _, target := range w.targets {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		resp, err := w.refresher.Refresh(ctx, target.LeagueID, target.Season)
		if err != nil {
			logging.Error(w.logger, "warm refresh failed", err,
				logging.FieldLeagueID, target.LeagueID, logging.FieldSeason, target.Season)
			errs = append(errs, fmt.Errorf("%s: %w", target, err))
			continue
		}
		if resp.Placeholder {
			placeholders++
		}
	}

	err := errors.Join(errs...)
	w.metrics.RecordWarmCycle(time.Since(start), err)
	if err != nil {
		w.recordFailure(err, start)
		return
	}

	w.recordSuccess(start)
	logging.Info(w.logger, "warmer refreshed brackets",
		logging.FieldCount, len(w.targets),
		logging.FieldPlaceholder, placeholders,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (w *Warmer) recordAttempt(at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.LastAttempt = at
}

func (w *Warmer) recordSuccess(at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.ConsecutiveFailures = 0
	w.status.LastError = ""
	w.status.LastSuccess = at
}

func (w *Warmer) recordFailure(err error, at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.ConsecutiveFailures++
	if err != nil {
		w.status.LastError = err.Error()
	}
	w.status.LastAttempt = at
}

// Status returns a snapshot of the warmer's recent health.
func (w *Warmer) Status() Status {
	w.statusMu.RLock()
	defer w.statusMu.RUnlock()
	return w.status
}
