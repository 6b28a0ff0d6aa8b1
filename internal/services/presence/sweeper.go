package presence

import (
	"context"
	"log/slog"
	"time"

	"batepapo/internal/dependencies/clock"
	"batepapo/internal/dependencies/ident"
	"batepapo/internal/model"
	"batepapo/internal/storage"
)

// Default sweep cadence and silence threshold
const (
	DefaultInterval = time.Second
	DefaultTimeout  = 10 * time.Second
)

// Sweeper periodically evicts participants that have stopped heartbeating
// and appends a departure notice for each eviction. It is owned by the
// process lifecycle: Run blocks until the context is cancelled, and a
// failed tick never stops the next one.
type Sweeper struct {
	storage  storage.Storage
	clock    clock.Clock
	ident    ident.Generator
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

// New creates a new Sweeper
func New(store storage.Storage, clk clock.Clock, gen ident.Generator, interval, timeout time.Duration, logger *slog.Logger) *Sweeper {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Sweeper{
		storage:  store,
		clock:    clk,
		ident:    gen,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
}

// Run executes sweep ticks on the configured interval until ctx is done
func (s *Sweeper) Run(ctx context.Context) {
	s.logger.Info("presence sweeper started",
		slog.Duration("interval", s.interval),
		slog.Duration("timeout", s.timeout))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("presence sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep runs one eviction scan. Per-entry failures are logged and the scan
// moves on; a registration racing the scan is last-write-wins on the store.
func (s *Sweeper) sweep(ctx context.Context) {
	participants, err := s.storage.ListParticipants(ctx)
	if err != nil {
		s.logger.Error("sweep scan failed", slog.String("error", err.Error()))
		return
	}

	now := s.clock.Now()
	for _, p := range participants {
		if !p.Stale(now, s.timeout) {
			continue
		}
		s.evict(ctx, p.Name, now)
	}
}

// evict removes one stale participant and appends its departure notice
func (s *Sweeper) evict(ctx context.Context, name string, now time.Time) {
	if err := s.storage.DeleteParticipant(ctx, name); err != nil {
		s.logger.Error("failed to evict stale participant",
			slog.String("participant", name),
			slog.String("error", err.Error()))
		return
	}

	notice := model.NewStatusMessage(s.ident.NewMessageID(), name, model.DepartureText, now)
	if err := s.storage.InsertMessage(ctx, notice); err != nil {
		s.logger.Error("failed to append departure notice",
			slog.String("participant", name),
			slog.String("error", err.Error()))
		return
	}

	s.logger.Info("evicted stale participant", slog.String("participant", name))
}
