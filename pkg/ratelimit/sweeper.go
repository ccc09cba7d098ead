package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// SnapshotStore is the subset of the storage backend the sweeper needs.
// Declared here so the sweeper does not import the storage package.
type SnapshotStore interface {
	SaveAll(ctx context.Context, entries []Entry) error
	Purge(ctx context.Context, before time.Time) (int, error)
}

// Sweeper periodically removes expired window entries and, when a store is
// configured, snapshots the surviving counters. It complements the
// opportunistic cleanup the middleware performs on a fraction of requests:
// under a sustained spoofed-identifier flood the probabilistic path alone
// lets the table grow between lucky cleanups.
type Sweeper struct {
	limiter  *Limiter
	store    SnapshotStore
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
}

// NewSweeper creates a sweeper for the limiter. The store may be nil, in
// which case the sweeper only cleans the in-memory table. An empty schedule
// disables the sweeper.
func NewSweeper(limiter *Limiter, store SnapshotStore, schedule string, logger *slog.Logger) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{
		limiter:  limiter,
		store:    store,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "ratelimit.sweeper"),
	}
}

// Start begins scheduled sweeping. Common schedules:
//
//	"@every 5m"   - every five minutes
//	"*/10 * * * *" - every ten minutes on the clock
//
// If no schedule is configured the sweeper does nothing.
func (s *Sweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.schedule == "" {
		s.logger.Info("sweep schedule not configured, skipping sweeper")
		return nil
	}

	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", s.schedule, err)
	}

	if _, err := s.cron.AddFunc(s.schedule, func() {
		s.sweep(ctx)
	}); err != nil {
		return fmt.Errorf("failed to schedule sweep: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("rate-limit sweeper started", "schedule", s.schedule)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// sweep runs one cleanup cycle.
func (s *Sweeper) sweep(ctx context.Context) {
	removed := s.limiter.Cleanup()

	if s.store != nil {
		if purged, err := s.store.Purge(ctx, time.Now()); err != nil {
			s.logger.Error("failed to purge stored entries", "error", err)
		} else {
			removed += purged
		}
		if err := s.store.SaveAll(ctx, s.limiter.Snapshot()); err != nil {
			s.logger.Error("failed to snapshot rate-limit state", "error", err)
		}
	}

	if removed > 0 {
		s.logger.Info("sweep completed", "removed", removed, "tracked", s.limiter.Len())
	} else {
		s.logger.Debug("sweep completed, nothing expired")
	}
}

// Stop halts scheduled sweeping and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.running = false

	s.logger.Info("rate-limit sweeper stopped")
}
