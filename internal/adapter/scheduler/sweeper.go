package scheduler

import (
	"context"
	"log/slog"
	"time"

	"brandcollab/internal/core/port"
)

// Sweeper runs the expiration sweep on a fixed interval. It holds no state
// between runs: a run that crashes or is cut short is simply redone in full
// on the next tick.
type Sweeper struct {
	sweep      port.SweepUseCase
	logger     *slog.Logger
	interval   time.Duration
	runOnStart bool
}

// NewSweeper creates a scheduler for sweep.
func NewSweeper(sweep port.SweepUseCase, logger *slog.Logger, interval time.Duration, runOnStart bool) *Sweeper {
	return &Sweeper{
		sweep:      sweep,
		logger:     logger.With(slog.String("component", "sweeper")),
		interval:   interval,
		runOnStart: runOnStart,
	}
}

// RunForever sweeps every interval until ctx is cancelled.
func (s *Sweeper) RunForever(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	if s.runOnStart {
		s.RunOnce(ctx)
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs one sweep bounded by the interval, so a stuck run never
// overlaps the next one.
func (s *Sweeper) RunOnce(ctx context.Context) port.SweepResult {
	ctx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	res, err := s.sweep.RunExpirationSweep(ctx)
	if err != nil {
		s.logger.Warn("expiration sweep incomplete",
			slog.Int("promoted", res.Promoted),
			slog.Int("deleted", res.Deleted),
			slog.Any("error", err),
		)
	}
	return res
}
