package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"brandcollab/internal/core/domain"
	"brandcollab/internal/core/port"
)

// DefaultRetention is how long an expired campaign is kept before deletion.
const DefaultRetention = 7 * 24 * time.Hour

// errSkip marks a candidate that no longer qualifies once locked.
var errSkip = errors.New("candidate no longer qualifies")

// SweepUseCase promotes overdue active campaigns to expired and deletes
// campaigns that stayed expired past the retention window. Each candidate is
// re-checked under its record lock and written independently, so a sweep
// can race user transitions and can be aborted between records.
type SweepUseCase struct {
	campaigns port.CampaignRepository
	retention time.Duration
	opts      options
}

var _ port.SweepUseCase = (*SweepUseCase)(nil)

// NewSweepUseCase creates a sweep. A non-positive retention means DefaultRetention.
func NewSweepUseCase(campaigns port.CampaignRepository, retention time.Duration, opts ...Option) *SweepUseCase {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &SweepUseCase{
		campaigns: campaigns,
		retention: retention,
		opts:      buildOptions(opts),
	}
}

// RunExpirationSweep runs the promotion pass followed by the retention pass.
// Per-record failures are logged, counted in Failed and skipped. An error is
// returned when a candidate selection fails or ctx is cancelled; the result
// then reflects the work done so far.
func (s *SweepUseCase) RunExpirationSweep(ctx context.Context) (port.SweepResult, error) {
	start := time.Now()
	defer s.opts.metrics.SweepDone(start)

	now := s.opts.now()
	var res port.SweepResult

	promoteErr := s.promote(ctx, now, &res)
	if errors.Is(promoteErr, context.Canceled) || errors.Is(promoteErr, context.DeadlineExceeded) {
		return res, promoteErr
	}
	retainErr := s.purge(ctx, now, &res)

	s.opts.logger.Info("expiration sweep finished",
		slog.Int("promoted", res.Promoted),
		slog.Int("deleted", res.Deleted),
		slog.Int("failed", res.Failed),
		slog.Duration("took", time.Since(start)),
	)
	return res, errors.Join(promoteErr, retainErr)
}

func (s *SweepUseCase) promote(ctx context.Context, now time.Time, res *port.SweepResult) error {
	candidates, err := s.campaigns.ListOverdueCampaigns(ctx, now)
	if err != nil {
		return fmt.Errorf("select overdue campaigns: %w", err)
	}
	for _, c := range candidates {
		if err = ctx.Err(); err != nil {
			return err
		}
		_, err = s.campaigns.UpdateCampaign(ctx, c.ID, func(current domain.Campaign) (domain.Campaign, error) {
			if !current.IsStale(now) {
				return domain.Campaign{}, errSkip
			}
			return domain.TransitionCampaignStatus(current, domain.CampaignExpired, domain.InitiatorSystem, now)
		})
		switch {
		case err == nil:
			res.Promoted++
			s.opts.metrics.Promoted()
		case errors.Is(err, errSkip), errors.Is(err, domain.ErrNotFound):
		default:
			res.Failed++
			s.opts.metrics.Failed("promote")
			s.opts.logger.Warn("expire campaign failed",
				slog.String("campaign_id", c.ID),
				slog.Any("error", err),
			)
		}
	}
	return nil
}

func (s *SweepUseCase) purge(ctx context.Context, now time.Time, res *port.SweepResult) error {
	candidates, err := s.campaigns.ListExpiredBefore(ctx, now.Add(-s.retention))
	if err != nil {
		return fmt.Errorf("select expired campaigns: %w", err)
	}
	for _, c := range candidates {
		if err = ctx.Err(); err != nil {
			return err
		}
		err = s.campaigns.DeleteCampaign(ctx, c.ID, func(current domain.Campaign) error {
			if !current.RetentionElapsed(now, s.retention) {
				return errSkip
			}
			return nil
		})
		switch {
		case err == nil:
			res.Deleted++
			s.opts.metrics.Deleted()
		case errors.Is(err, errSkip), errors.Is(err, domain.ErrNotFound):
		default:
			res.Failed++
			s.opts.metrics.Failed("retain")
			s.opts.logger.Warn("delete expired campaign failed",
				slog.String("campaign_id", c.ID),
				slog.Any("error", err),
			)
		}
	}
	return nil
}
