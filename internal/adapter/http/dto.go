package httpadapter

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"brandcollab/internal/core/domain"
)

const dateLayout = "2006-01-02"

// date accepts either a calendar date (2006-01-02, read as UTC midnight) or
// an RFC 3339 timestamp.
type date struct {
	time.Time
}

func (d *date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("date %q is neither YYYY-MM-DD nor RFC 3339", s)
	}
	d.Time = t
	return nil
}

func (d *date) ptr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

type createCampaignRequest struct {
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Budget       *decimal.Decimal `json:"budget"`
	AudienceTags []string         `json:"audience_tags"`
	ContentTypes []string         `json:"content_types"`
	StartDate    *date            `json:"start_date"`
	EndDate      *date            `json:"end_date"`
	Status       string           `json:"status"`
}

func (req createCampaignRequest) fields() (domain.CampaignFields, error) {
	fields := domain.CampaignFields{
		Title:        req.Title,
		Description:  req.Description,
		Budget:       req.Budget,
		AudienceTags: req.AudienceTags,
		ContentTypes: req.ContentTypes,
		StartDate:    req.StartDate.ptr(),
		EndDate:      req.EndDate.ptr(),
	}
	if req.Status != "" {
		status, err := domain.ParseCampaignStatus(req.Status)
		if err != nil {
			return domain.CampaignFields{}, err
		}
		fields.Status = status
	}
	return fields, nil
}

type updateCampaignRequest struct {
	Title        *string          `json:"title"`
	Description  *string          `json:"description"`
	Budget       *decimal.Decimal `json:"budget"`
	AudienceTags *[]string        `json:"audience_tags"`
	ContentTypes *[]string        `json:"content_types"`
	StartDate    *date            `json:"start_date"`
	EndDate      *date            `json:"end_date"`
}

func (req updateCampaignRequest) patch() domain.CampaignPatch {
	return domain.CampaignPatch{
		Title:        req.Title,
		Description:  req.Description,
		Budget:       req.Budget,
		AudienceTags: req.AudienceTags,
		ContentTypes: req.ContentTypes,
		StartDate:    req.StartDate.ptr(),
		EndDate:      req.EndDate.ptr(),
	}
}

type transitionRequest struct {
	Status string `json:"status"`
}

type applyRequest struct {
	Message         string `json:"message"`
	ProposedContent string `json:"proposed_content"`
}

type decisionRequest struct {
	Decision string `json:"decision"`
}

type campaignResponse struct {
	ID           string           `json:"id"`
	CreatorID    string           `json:"creator_id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Budget       *decimal.Decimal `json:"budget,omitempty"`
	AudienceTags []string         `json:"audience_tags"`
	ContentTypes []string         `json:"content_types"`
	StartDate    *time.Time       `json:"start_date,omitempty"`
	EndDate      *time.Time       `json:"end_date,omitempty"`
	Status       string           `json:"status"`
	ExpiredAt    *time.Time       `json:"expired_at,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:           c.ID,
		CreatorID:    c.CreatorID,
		Title:        c.Title,
		Description:  c.Description,
		Budget:       c.Budget,
		AudienceTags: nonNil(c.AudienceTags),
		ContentTypes: nonNil(c.ContentTypes),
		StartDate:    c.StartDate,
		EndDate:      c.EndDate,
		Status:       string(c.Status),
		ExpiredAt:    c.ExpiredAt,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toCampaignResponses(cs []domain.Campaign) []campaignResponse {
	out := make([]campaignResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCampaignResponse(c))
	}
	return out
}

type applicationResponse struct {
	ID              string     `json:"id"`
	CampaignID      string     `json:"campaign_id"`
	InfluencerID    string     `json:"influencer_id"`
	BrandID         string     `json:"brand_id"`
	Message         string     `json:"message"`
	ProposedContent string     `json:"proposed_content,omitempty"`
	Status          string     `json:"status"`
	CampaignTitle   string     `json:"campaign_title"`
	InfluencerName  string     `json:"influencer_name,omitempty"`
	InfluencerEmail string     `json:"influencer_email,omitempty"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func toApplicationResponse(a domain.Application) applicationResponse {
	return applicationResponse{
		ID:              a.ID,
		CampaignID:      a.CampaignID,
		InfluencerID:    a.InfluencerID,
		BrandID:         a.BrandID,
		Message:         a.Message,
		ProposedContent: a.ProposedContent,
		Status:          string(a.Status),
		CampaignTitle:   a.CampaignTitle,
		InfluencerName:  a.InfluencerName,
		InfluencerEmail: a.InfluencerEmail,
		DecidedAt:       a.DecidedAt,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func toApplicationResponses(as []domain.Application) []applicationResponse {
	out := make([]applicationResponse, 0, len(as))
	for _, a := range as {
		out = append(out, toApplicationResponse(a))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
