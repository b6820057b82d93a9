package domain

import (
	"fmt"
	"strings"
	"time"
)

// ApplicationStatus describes where an influencer's application stands.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Application is an influencer's request to take part in a campaign.
//
// CampaignTitle, InfluencerName and InfluencerEmail are snapshots taken when
// the record is first created. They are not kept in sync with the campaign or
// the influencer profile; readers that need live values must join them.
// CampaignID may dangle once the campaign has been deleted.
type Application struct {
	ID              string
	CampaignID      string
	InfluencerID    string
	BrandID         string
	Message         string
	ProposedContent string
	Status          ApplicationStatus
	CampaignTitle   string
	InfluencerName  string
	InfluencerEmail string
	DecidedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Pitch is what an influencer submits when applying.
type Pitch struct {
	Message         string
	ProposedContent string
}

// ParseDecision converts a textual decision into a terminal status.
func ParseDecision(value string) (ApplicationStatus, error) {
	switch s := ApplicationStatus(strings.ToLower(strings.TrimSpace(value))); s {
	case ApplicationApproved, ApplicationRejected:
		return s, nil
	default:
		return "", fmt.Errorf("%w: decision must be approved or rejected, got %q", ErrValidation, value)
	}
}

func (p Pitch) normalize() (Pitch, error) {
	p.Message = strings.TrimSpace(p.Message)
	p.ProposedContent = strings.TrimSpace(p.ProposedContent)
	if p.Message == "" {
		return Pitch{}, fmt.Errorf("%w: message is required", ErrValidation)
	}
	return p, nil
}

// NewApplication builds a pending application for campaign c.
func NewApplication(id string, c Campaign, influencer Actor, pitch Pitch, now time.Time) (Application, error) {
	pitch, err := pitch.normalize()
	if err != nil {
		return Application{}, err
	}
	return Application{
		ID:              id,
		CampaignID:      c.ID,
		InfluencerID:    influencer.ID,
		BrandID:         c.CreatorID,
		Message:         pitch.Message,
		ProposedContent: pitch.ProposedContent,
		Status:          ApplicationPending,
		CampaignTitle:   c.Title,
		InfluencerName:  influencer.Name,
		InfluencerEmail: influencer.Email,
		CreatedAt:       now.UTC(),
		UpdatedAt:       now.UTC(),
	}, nil
}

// Reapply overwrites the pitch and resets the application to pending,
// whatever its previous status.
func (a Application) Reapply(pitch Pitch, now time.Time) (Application, error) {
	pitch, err := pitch.normalize()
	if err != nil {
		return Application{}, err
	}
	updated := a
	updated.Message = pitch.Message
	updated.ProposedContent = pitch.ProposedContent
	updated.Status = ApplicationPending
	updated.DecidedAt = nil
	updated.UpdatedAt = now.UTC()
	return updated, nil
}

// DecideApplication applies a brand decision. Decisions are one-shot: only a
// pending application can be decided.
func DecideApplication(a Application, decision ApplicationStatus, now time.Time) (Application, error) {
	if decision != ApplicationApproved && decision != ApplicationRejected {
		return Application{}, fmt.Errorf("%w: decision must be approved or rejected, got %q", ErrValidation, decision)
	}
	if a.Status != ApplicationPending {
		return Application{}, fmt.Errorf("%w: application is %s, not pending", ErrInvalidState, a.Status)
	}
	updated := a
	updated.Status = decision
	decidedAt := now.UTC()
	updated.DecidedAt = &decidedAt
	updated.UpdatedAt = decidedAt
	return updated, nil
}

// CanWithdraw reports whether the application may still be deleted by its
// influencer.
func (a Application) CanWithdraw() error {
	if a.Status != ApplicationPending {
		return fmt.Errorf("%w: application is %s, not pending", ErrInvalidState, a.Status)
	}
	return nil
}
