package usecase

import (
	"context"
	"fmt"

	"brandcollab/internal/core/domain"
	"brandcollab/internal/core/port"
)

// LifecycleUseCase implements port.LifecycleUseCase. It authorises each call
// through a Guard and delegates status changes to the domain transition
// functions, applied inside the repository's per-record mutation.
type LifecycleUseCase struct {
	campaigns    port.CampaignRepository
	applications port.ApplicationRepository
	guard        *Guard
	opts         options
}

var _ port.LifecycleUseCase = (*LifecycleUseCase)(nil)

// NewLifecycleUseCase creates the campaign and application use case.
func NewLifecycleUseCase(campaigns port.CampaignRepository, applications port.ApplicationRepository, opts ...Option) *LifecycleUseCase {
	return &LifecycleUseCase{
		campaigns:    campaigns,
		applications: applications,
		guard:        NewGuard(campaigns, applications),
		opts:         buildOptions(opts),
	}
}

// CreateCampaign creates a campaign owned by owner, who must be a brand.
func (u *LifecycleUseCase) CreateCampaign(ctx context.Context, owner domain.Actor, fields domain.CampaignFields) (domain.Campaign, error) {
	if err := u.guard.RequireRole(owner, domain.RoleBrand); err != nil {
		return domain.Campaign{}, err
	}
	c, err := domain.NewCampaign(u.opts.newID(), owner.ID, fields, u.opts.now())
	if err != nil {
		return domain.Campaign{}, err
	}
	if err = u.campaigns.CreateCampaign(ctx, c); err != nil {
		return domain.Campaign{}, fmt.Errorf("create campaign: %w", err)
	}
	return c, nil
}

// GetCampaign returns a campaign by id.
func (u *LifecycleUseCase) GetCampaign(ctx context.Context, id string) (domain.Campaign, error) {
	return u.campaigns.GetCampaign(ctx, id)
}

// ListCampaigns returns the campaigns created by owner.
func (u *LifecycleUseCase) ListCampaigns(ctx context.Context, owner domain.Actor, includeExpired bool) ([]domain.Campaign, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}
	return u.campaigns.ListCampaignsByCreator(ctx, owner.ID, includeExpired)
}

// ListActiveCampaigns returns active campaigns, hiding stale ones the sweep
// has not reached yet.
func (u *LifecycleUseCase) ListActiveCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	all, err := u.campaigns.ListCampaignsByStatus(ctx, domain.CampaignActive)
	if err != nil {
		return nil, err
	}
	now := u.opts.now()
	feed := make([]domain.Campaign, 0, len(all))
	for _, c := range all {
		if !c.IsStale(now) {
			feed = append(feed, c)
		}
	}
	return feed, nil
}

// TransitionCampaign moves a campaign to target on behalf of its creator.
// Requests for the expired status are refused before anything is read,
// since only the sweep may set it.
func (u *LifecycleUseCase) TransitionCampaign(ctx context.Context, actor domain.Actor, id string, target domain.CampaignStatus) (domain.Campaign, error) {
	if target == domain.CampaignExpired {
		return domain.Campaign{}, fmt.Errorf("%w: only the expiration sweep may expire campaign %s", domain.ErrInvalidTransition, id)
	}
	if _, err := u.guard.OwnedCampaign(ctx, actor, id); err != nil {
		return domain.Campaign{}, err
	}
	updated, err := u.campaigns.UpdateCampaign(ctx, id, func(current domain.Campaign) (domain.Campaign, error) {
		if err := ownsCampaign(actor, current); err != nil {
			return domain.Campaign{}, err
		}
		return domain.TransitionCampaignStatus(current, target, domain.InitiatorOwner, u.opts.now())
	})
	if err != nil {
		return domain.Campaign{}, err
	}
	u.opts.metrics.Transition(updated.Status)
	return updated, nil
}

// UpdateCampaign applies a partial update of descriptive fields.
func (u *LifecycleUseCase) UpdateCampaign(ctx context.Context, actor domain.Actor, id string, patch domain.CampaignPatch) (domain.Campaign, error) {
	if _, err := u.guard.OwnedCampaign(ctx, actor, id); err != nil {
		return domain.Campaign{}, err
	}
	return u.campaigns.UpdateCampaign(ctx, id, func(current domain.Campaign) (domain.Campaign, error) {
		if err := ownsCampaign(actor, current); err != nil {
			return domain.Campaign{}, err
		}
		return current.ApplyPatch(patch, u.opts.now())
	})
}

// DeleteCampaign removes a campaign that is already expired. Applications
// referencing it are left in place.
func (u *LifecycleUseCase) DeleteCampaign(ctx context.Context, actor domain.Actor, id string) error {
	if _, err := u.guard.OwnedCampaign(ctx, actor, id); err != nil {
		return err
	}
	return u.campaigns.DeleteCampaign(ctx, id, func(current domain.Campaign) error {
		if err := ownsCampaign(actor, current); err != nil {
			return err
		}
		if current.Status != domain.CampaignExpired {
			return fmt.Errorf("%w: campaign %s is %s, only expired campaigns can be deleted", domain.ErrInvalidState, id, current.Status)
		}
		return nil
	})
}
