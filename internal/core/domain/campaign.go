package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CampaignStatus describes the lifecycle of a campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
	CampaignArchived  CampaignStatus = "archived"
	CampaignExpired   CampaignStatus = "expired"
)

// Initiator identifies who requests a campaign transition. Only the system
// may move a campaign into CampaignExpired.
type Initiator int

const (
	InitiatorOwner Initiator = iota
	InitiatorSystem
)

// Campaign represents a brand-created engagement influencers can apply to.
// Budget is optional; StartDate, EndDate and ExpiredAt are nil when unset.
type Campaign struct {
	ID           string
	CreatorID    string
	Title        string
	Description  string
	Budget       *decimal.Decimal
	AudienceTags []string
	ContentTypes []string
	StartDate    *time.Time
	EndDate      *time.Time
	Status       CampaignStatus
	ExpiredAt    *time.Time // set only while status is expired
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CampaignFields holds the input for a new campaign. An empty Status means
// CampaignDraft.
type CampaignFields struct {
	Title        string
	Description  string
	Budget       *decimal.Decimal
	AudienceTags []string
	ContentTypes []string
	StartDate    *time.Time
	EndDate      *time.Time
	Status       CampaignStatus
}

// CampaignPatch holds a partial update. Nil fields are left unchanged.
type CampaignPatch struct {
	Title        *string
	Description  *string
	Budget       *decimal.Decimal
	AudienceTags *[]string
	ContentTypes *[]string
	StartDate    *time.Time
	EndDate      *time.Time
}

// ParseCampaignStatus converts a textual status into a CampaignStatus.
func ParseCampaignStatus(value string) (CampaignStatus, error) {
	status := CampaignStatus(strings.ToLower(strings.TrimSpace(value)))
	switch status {
	case CampaignDraft, CampaignActive, CampaignCompleted, CampaignArchived, CampaignExpired:
		return status, nil
	default:
		return "", fmt.Errorf("%w: unknown campaign status %q", ErrValidation, value)
	}
}

// NewCampaign validates fields and builds a campaign owned by creatorID.
func NewCampaign(id, creatorID string, fields CampaignFields, now time.Time) (Campaign, error) {
	status := fields.Status
	if status == "" {
		status = CampaignDraft
	}
	if status != CampaignDraft && status != CampaignActive {
		return Campaign{}, fmt.Errorf("%w: initial status must be draft or active, got %q", ErrValidation, status)
	}

	c := Campaign{
		ID:           id,
		CreatorID:    creatorID,
		Title:        strings.TrimSpace(fields.Title),
		Description:  strings.TrimSpace(fields.Description),
		Budget:       fields.Budget,
		AudienceTags: normalizeTags(fields.AudienceTags),
		ContentTypes: normalizeTags(fields.ContentTypes),
		StartDate:    utcPtr(fields.StartDate),
		EndDate:      utcPtr(fields.EndDate),
		Status:       status,
		CreatedAt:    now.UTC(),
		UpdatedAt:    now.UTC(),
	}
	if err := c.validate(); err != nil {
		return Campaign{}, err
	}
	return c, nil
}

// ApplyPatch returns a copy of c with the patch applied. Status and creator
// are never touched.
func (c Campaign) ApplyPatch(p CampaignPatch, now time.Time) (Campaign, error) {
	updated := c
	if p.Title != nil {
		updated.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		updated.Description = strings.TrimSpace(*p.Description)
	}
	if p.Budget != nil {
		updated.Budget = p.Budget
	}
	if p.AudienceTags != nil {
		updated.AudienceTags = normalizeTags(*p.AudienceTags)
	}
	if p.ContentTypes != nil {
		updated.ContentTypes = normalizeTags(*p.ContentTypes)
	}
	if p.StartDate != nil {
		updated.StartDate = utcPtr(p.StartDate)
	}
	if p.EndDate != nil {
		updated.EndDate = utcPtr(p.EndDate)
	}
	if err := updated.validate(); err != nil {
		return Campaign{}, err
	}
	updated.UpdatedAt = now.UTC()
	return updated, nil
}

func (c Campaign) validate() error {
	if c.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if c.Description == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	if c.Budget != nil && c.Budget.IsNegative() {
		return fmt.Errorf("%w: budget must not be negative", ErrValidation)
	}
	if c.StartDate != nil && c.EndDate != nil && c.EndDate.Before(*c.StartDate) {
		return fmt.Errorf("%w: end date is before start date", ErrValidation)
	}
	return nil
}

// TransitionCampaignStatus validates and applies a status change. Entering
// CampaignExpired stamps ExpiredAt and is reserved for InitiatorSystem;
// leaving it clears ExpiredAt.
func TransitionCampaignStatus(c Campaign, target CampaignStatus, by Initiator, now time.Time) (Campaign, error) {
	if target == CampaignExpired && by != InitiatorSystem {
		return Campaign{}, fmt.Errorf("%w: %s -> %s is reserved for the expiration sweep", ErrInvalidTransition, c.Status, target)
	}
	if !isCampaignTransitionAllowed(c.Status, target) {
		return Campaign{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.Status, target)
	}

	updated := c
	updated.Status = target
	updated.UpdatedAt = now.UTC()
	if target == CampaignExpired {
		expiredAt := now.UTC()
		updated.ExpiredAt = &expiredAt
	}
	if c.Status == CampaignExpired {
		updated.ExpiredAt = nil
	}
	return updated, nil
}

// isCampaignTransitionAllowed is the campaign transition graph.
func isCampaignTransitionAllowed(from, to CampaignStatus) bool {
	switch from {
	case CampaignDraft:
		return to == CampaignActive
	case CampaignActive:
		return to == CampaignCompleted || to == CampaignArchived || to == CampaignExpired
	case CampaignArchived, CampaignCompleted, CampaignExpired:
		return to == CampaignActive
	default:
		return false
	}
}

// IsStale reports whether the campaign is active past its end date and is
// waiting for the sweep to expire it.
func (c Campaign) IsStale(now time.Time) bool {
	return c.Status == CampaignActive && c.EndDate != nil && c.EndDate.Before(now)
}

// RetentionElapsed reports whether an expired campaign has been kept longer
// than retention and may be deleted.
func (c Campaign) RetentionElapsed(now time.Time, retention time.Duration) bool {
	return c.Status == CampaignExpired && c.ExpiredAt != nil && c.ExpiredAt.Before(now.Add(-retention))
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || slices.Contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
