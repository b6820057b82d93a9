package port

import (
	"context"
	"time"

	"brandcollab/internal/core/domain"
)

// CampaignMutation computes the new state of a campaign from its current
// state. Returning an error aborts the write.
type CampaignMutation func(current domain.Campaign) (domain.Campaign, error)

// ApplicationMutation computes the new state of an application from its
// current state. Returning an error aborts the write.
type ApplicationMutation func(current domain.Application) (domain.Application, error)

// CampaignRepository is the persistence port for campaigns. Implementations
// must run UpdateCampaign and DeleteCampaign as atomic read-modify-write
// operations on the single record: no other write to the same campaign may
// interleave between the read handed to the callback and the write. Missing
// records are reported as domain.ErrNotFound.
type CampaignRepository interface {
	// CreateCampaign stores a new campaign.
	CreateCampaign(ctx context.Context, c domain.Campaign) error
	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id string) (domain.Campaign, error)
	// ListCampaignsByCreator returns the campaigns owned by creatorID, newest
	// first. Expired campaigns are omitted unless includeExpired is set.
	ListCampaignsByCreator(ctx context.Context, creatorID string, includeExpired bool) ([]domain.Campaign, error)
	// ListCampaignsByStatus returns every campaign holding status.
	ListCampaignsByStatus(ctx context.Context, status domain.CampaignStatus) ([]domain.Campaign, error)
	// ListOverdueCampaigns returns active campaigns whose end date is
	// strictly before now.
	ListOverdueCampaigns(ctx context.Context, now time.Time) ([]domain.Campaign, error)
	// ListExpiredBefore returns expired campaigns whose expiredAt is strictly
	// before cutoff.
	ListExpiredBefore(ctx context.Context, cutoff time.Time) ([]domain.Campaign, error)
	// UpdateCampaign locks the campaign, applies fn and persists the result.
	UpdateCampaign(ctx context.Context, id string, fn CampaignMutation) (domain.Campaign, error)
	// DeleteCampaign locks the campaign and deletes it when check passes.
	DeleteCampaign(ctx context.Context, id string, check func(domain.Campaign) error) error
}

// ApplicationRepository is the persistence port for applications. At most
// one application may exist per (campaign, influencer) pair.
type ApplicationRepository interface {
	// GetApplication returns an application by id.
	GetApplication(ctx context.Context, id string) (domain.Application, error)
	// FindApplication returns the application of influencerID to campaignID.
	FindApplication(ctx context.Context, campaignID, influencerID string) (domain.Application, error)
	// UpsertApplication inserts a. When an application for the same pair
	// already exists its pitch is overwritten and its status reset to
	// pending instead; snapshot fields keep their original values. The
	// stored record is returned.
	UpsertApplication(ctx context.Context, a domain.Application) (domain.Application, error)
	// UpdateApplication locks the application, applies fn and persists the result.
	UpdateApplication(ctx context.Context, id string, fn ApplicationMutation) (domain.Application, error)
	// DeleteApplication locks the application and deletes it when check passes.
	DeleteApplication(ctx context.Context, id string, check func(domain.Application) error) error
	// ListApplicationsByCampaign returns applications to campaignID, oldest first.
	ListApplicationsByCampaign(ctx context.Context, campaignID string) ([]domain.Application, error)
	// ListApplicationsByInfluencer returns applications by influencerID, newest first.
	ListApplicationsByInfluencer(ctx context.Context, influencerID string) ([]domain.Application, error)
}
