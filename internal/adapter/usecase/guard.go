package usecase

import (
	"context"
	"fmt"

	"brandcollab/internal/core/domain"
	"brandcollab/internal/core/port"
)

// Guard resolves ownership of campaigns and applications for an acting
// identity. It only reads from the store; mutations stay with the caller.
type Guard struct {
	campaigns    port.CampaignRepository
	applications port.ApplicationRepository
}

// NewGuard returns a guard reading from the given repositories.
func NewGuard(campaigns port.CampaignRepository, applications port.ApplicationRepository) *Guard {
	return &Guard{campaigns: campaigns, applications: applications}
}

// RequireRole rejects actors without an identity or with a different role.
func (g *Guard) RequireRole(actor domain.Actor, role domain.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.Role != role {
		return fmt.Errorf("%w: %s %s cannot act as %s", domain.ErrForbidden, actor.Role, actor.ID, role)
	}
	return nil
}

// OwnedCampaign loads a campaign and checks that actor created it.
func (g *Guard) OwnedCampaign(ctx context.Context, actor domain.Actor, id string) (domain.Campaign, error) {
	if err := actor.Validate(); err != nil {
		return domain.Campaign{}, err
	}
	c, err := g.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return domain.Campaign{}, err
	}
	if err = ownsCampaign(actor, c); err != nil {
		return domain.Campaign{}, err
	}
	return c, nil
}

// SubmittedApplication loads an application and checks that actor submitted it.
func (g *Guard) SubmittedApplication(ctx context.Context, actor domain.Actor, id string) (domain.Application, error) {
	if err := actor.Validate(); err != nil {
		return domain.Application{}, err
	}
	a, err := g.applications.GetApplication(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	if err = submittedBy(actor, a); err != nil {
		return domain.Application{}, err
	}
	return a, nil
}

// DecidableApplication loads an application and checks that actor created
// the campaign it targets. An application whose campaign has been deleted
// cannot be decided and reports domain.ErrNotFound.
func (g *Guard) DecidableApplication(ctx context.Context, actor domain.Actor, id string) (domain.Application, error) {
	if err := actor.Validate(); err != nil {
		return domain.Application{}, err
	}
	a, err := g.applications.GetApplication(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	if _, err = g.OwnedCampaign(ctx, actor, a.CampaignID); err != nil {
		return domain.Application{}, fmt.Errorf("campaign %s of application %s: %w", a.CampaignID, a.ID, err)
	}
	return a, nil
}

// VisibleApplication loads an application readable by actor: its
// influencer or the brand that owns its campaign.
func (g *Guard) VisibleApplication(ctx context.Context, actor domain.Actor, id string) (domain.Application, error) {
	if err := actor.Validate(); err != nil {
		return domain.Application{}, err
	}
	a, err := g.applications.GetApplication(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	if a.InfluencerID != actor.ID && a.BrandID != actor.ID {
		return domain.Application{}, fmt.Errorf("%w: application %s is not visible to %s", domain.ErrForbidden, a.ID, actor.ID)
	}
	return a, nil
}

func ownsCampaign(actor domain.Actor, c domain.Campaign) error {
	if c.CreatorID != actor.ID {
		return fmt.Errorf("%w: campaign %s is not owned by %s", domain.ErrForbidden, c.ID, actor.ID)
	}
	return nil
}

func submittedBy(actor domain.Actor, a domain.Application) error {
	if a.InfluencerID != actor.ID {
		return fmt.Errorf("%w: application %s was not submitted by %s", domain.ErrForbidden, a.ID, actor.ID)
	}
	return nil
}
