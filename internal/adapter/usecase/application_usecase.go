package usecase

import (
	"context"
	"errors"
	"fmt"

	"brandcollab/internal/core/domain"
)

// ApplyToCampaign submits a pitch. A second submission by the same
// influencer overwrites the existing application and resets it to pending,
// whatever its previous status.
func (u *LifecycleUseCase) ApplyToCampaign(ctx context.Context, influencer domain.Actor, campaignID string, pitch domain.Pitch) (domain.Application, error) {
	if err := u.guard.RequireRole(influencer, domain.RoleInfluencer); err != nil {
		return domain.Application{}, err
	}

	existing, err := u.applications.FindApplication(ctx, campaignID, influencer.ID)
	switch {
	case err == nil:
		updated, err := u.applications.UpdateApplication(ctx, existing.ID, func(current domain.Application) (domain.Application, error) {
			return current.Reapply(pitch, u.opts.now())
		})
		if !errors.Is(err, domain.ErrNotFound) {
			return updated, err
		}
		// withdrawn concurrently; fall through to a fresh insert
	case !errors.Is(err, domain.ErrNotFound):
		return domain.Application{}, err
	}

	c, err := u.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return domain.Application{}, err
	}
	a, err := domain.NewApplication(u.opts.newID(), c, influencer, pitch, u.opts.now())
	if err != nil {
		return domain.Application{}, err
	}
	stored, err := u.applications.UpsertApplication(ctx, a)
	if err != nil {
		return domain.Application{}, fmt.Errorf("store application: %w", err)
	}
	return stored, nil
}

// WithdrawApplication deletes a pending application of influencer.
func (u *LifecycleUseCase) WithdrawApplication(ctx context.Context, influencer domain.Actor, applicationID string) error {
	if _, err := u.guard.SubmittedApplication(ctx, influencer, applicationID); err != nil {
		return err
	}
	return u.applications.DeleteApplication(ctx, applicationID, func(current domain.Application) error {
		if err := submittedBy(influencer, current); err != nil {
			return err
		}
		return current.CanWithdraw()
	})
}

// DecideApplication approves or rejects a pending application on behalf of
// the brand that created its campaign.
func (u *LifecycleUseCase) DecideApplication(ctx context.Context, brand domain.Actor, applicationID string, decision domain.ApplicationStatus) (domain.Application, error) {
	if decision != domain.ApplicationApproved && decision != domain.ApplicationRejected {
		return domain.Application{}, fmt.Errorf("%w: decision must be approved or rejected, got %q", domain.ErrValidation, decision)
	}
	if _, err := u.guard.DecidableApplication(ctx, brand, applicationID); err != nil {
		return domain.Application{}, err
	}
	return u.applications.UpdateApplication(ctx, applicationID, func(current domain.Application) (domain.Application, error) {
		return domain.DecideApplication(current, decision, u.opts.now())
	})
}

// GetApplication returns an application to its influencer or its brand.
func (u *LifecycleUseCase) GetApplication(ctx context.Context, actor domain.Actor, applicationID string) (domain.Application, error) {
	return u.guard.VisibleApplication(ctx, actor, applicationID)
}

// ListCampaignApplications returns the applications to a campaign owned by brand.
func (u *LifecycleUseCase) ListCampaignApplications(ctx context.Context, brand domain.Actor, campaignID string) ([]domain.Application, error) {
	if _, err := u.guard.OwnedCampaign(ctx, brand, campaignID); err != nil {
		return nil, err
	}
	return u.applications.ListApplicationsByCampaign(ctx, campaignID)
}

// ListMyApplications returns the applications submitted by influencer.
func (u *LifecycleUseCase) ListMyApplications(ctx context.Context, influencer domain.Actor) ([]domain.Application, error) {
	if err := influencer.Validate(); err != nil {
		return nil, err
	}
	return u.applications.ListApplicationsByInfluencer(ctx, influencer.ID)
}
