package port

import (
	"context"

	"brandcollab/internal/core/domain"
)

// CampaignUseCase defines the campaign operations exposed to callers. Every
// mutating call takes the acting identity explicitly.
type CampaignUseCase interface {
	// CreateCampaign creates a campaign owned by owner in draft or active.
	CreateCampaign(ctx context.Context, owner domain.Actor, fields domain.CampaignFields) (domain.Campaign, error)
	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id string) (domain.Campaign, error)
	// ListCampaigns returns the campaigns owned by owner.
	ListCampaigns(ctx context.Context, owner domain.Actor, includeExpired bool) ([]domain.Campaign, error)
	// ListActiveCampaigns returns the discovery feed: active campaigns that
	// are not past their end date.
	ListActiveCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// TransitionCampaign moves a campaign to target on behalf of its creator.
	TransitionCampaign(ctx context.Context, actor domain.Actor, id string, target domain.CampaignStatus) (domain.Campaign, error)
	// UpdateCampaign changes descriptive fields. Status is never altered.
	UpdateCampaign(ctx context.Context, actor domain.Actor, id string, patch domain.CampaignPatch) (domain.Campaign, error)
	// DeleteCampaign removes an expired campaign on behalf of its creator.
	DeleteCampaign(ctx context.Context, actor domain.Actor, id string) error
}

// ApplicationUseCase defines the application operations exposed to callers.
type ApplicationUseCase interface {
	// ApplyToCampaign submits or re-submits an application.
	ApplyToCampaign(ctx context.Context, influencer domain.Actor, campaignID string, pitch domain.Pitch) (domain.Application, error)
	// WithdrawApplication deletes a pending application of influencer.
	WithdrawApplication(ctx context.Context, influencer domain.Actor, applicationID string) error
	// DecideApplication approves or rejects a pending application.
	DecideApplication(ctx context.Context, brand domain.Actor, applicationID string, decision domain.ApplicationStatus) (domain.Application, error)
	// GetApplication returns an application visible to actor.
	GetApplication(ctx context.Context, actor domain.Actor, applicationID string) (domain.Application, error)
	// ListCampaignApplications returns the applications to a campaign owned by brand.
	ListCampaignApplications(ctx context.Context, brand domain.Actor, campaignID string) ([]domain.Application, error)
	// ListMyApplications returns the applications submitted by influencer.
	ListMyApplications(ctx context.Context, influencer domain.Actor) ([]domain.Application, error)
}

// SweepUseCase runs the expiration sweep. It is invoked by the scheduler,
// never by end users.
type SweepUseCase interface {
	RunExpirationSweep(ctx context.Context) (SweepResult, error)
}

// LifecycleUseCase is everything the HTTP adapter needs.
type LifecycleUseCase interface {
	CampaignUseCase
	ApplicationUseCase
}

// SweepResult counts what a sweep changed. Failed counts records skipped
// because their write failed.
type SweepResult struct {
	Promoted int `json:"promoted"`
	Deleted  int `json:"deleted"`
	Failed   int `json:"failed"`
}
