package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func campaignIn(status CampaignStatus) Campaign {
	c := Campaign{ID: "c1", CreatorID: "b1", Title: "Launch", Description: "Spring launch", Status: status}
	if status == CampaignExpired {
		at := testNow.Add(-time.Hour)
		c.ExpiredAt = &at
	}
	return c
}

func TestTransitionCampaignStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    CampaignStatus
		to      CampaignStatus
		by      Initiator
		allowed bool
	}{
		{"draft to active", CampaignDraft, CampaignActive, InitiatorOwner, true},
		{"draft to completed", CampaignDraft, CampaignCompleted, InitiatorOwner, false},
		{"draft to archived", CampaignDraft, CampaignArchived, InitiatorOwner, false},
		{"active to completed", CampaignActive, CampaignCompleted, InitiatorOwner, true},
		{"active to archived", CampaignActive, CampaignArchived, InitiatorOwner, true},
		{"active to draft", CampaignActive, CampaignDraft, InitiatorOwner, false},
		{"active to expired by owner", CampaignActive, CampaignExpired, InitiatorOwner, false},
		{"active to expired by system", CampaignActive, CampaignExpired, InitiatorSystem, true},
		{"draft to expired by system", CampaignDraft, CampaignExpired, InitiatorSystem, false},
		{"archived to active", CampaignArchived, CampaignActive, InitiatorOwner, true},
		{"archived to completed", CampaignArchived, CampaignCompleted, InitiatorOwner, false},
		{"completed to active", CampaignCompleted, CampaignActive, InitiatorOwner, true},
		{"completed to expired by owner", CampaignCompleted, CampaignExpired, InitiatorOwner, false},
		{"expired to active", CampaignExpired, CampaignActive, InitiatorOwner, true},
		{"expired to archived", CampaignExpired, CampaignArchived, InitiatorOwner, false},
		{"active to active", CampaignActive, CampaignActive, InitiatorOwner, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TransitionCampaignStatus(campaignIn(tt.from), tt.to, tt.by, testNow)
			if !tt.allowed {
				require.ErrorIs(t, err, ErrInvalidTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, got.Status)
			assert.Equal(t, testNow, got.UpdatedAt)
		})
	}
}

func TestTransitionCampaignStatus_ExpiredAt(t *testing.T) {
	expired, err := TransitionCampaignStatus(campaignIn(CampaignActive), CampaignExpired, InitiatorSystem, testNow)
	require.NoError(t, err)
	require.NotNil(t, expired.ExpiredAt)
	assert.Equal(t, testNow, *expired.ExpiredAt)

	reactivated, err := TransitionCampaignStatus(expired, CampaignActive, InitiatorOwner, testNow.Add(time.Hour))
	require.NoError(t, err)
	assert.Nil(t, reactivated.ExpiredAt)
	assert.Equal(t, CampaignActive, reactivated.Status)

	// the input is never mutated
	assert.Equal(t, CampaignExpired, expired.Status)
	assert.NotNil(t, expired.ExpiredAt)
}

func TestNewCampaign(t *testing.T) {
	start := testNow
	end := testNow.AddDate(0, 1, 0)
	budget := decimal.RequireFromString("1500.50")

	c, err := NewCampaign("c1", "b1", CampaignFields{
		Title:        "  Launch ",
		Description:  "Spring launch",
		Budget:       &budget,
		AudienceTags: []string{"gamers", " gamers", "", "parents"},
		StartDate:    &start,
		EndDate:      &end,
	}, testNow)
	require.NoError(t, err)
	assert.Equal(t, CampaignDraft, c.Status)
	assert.Equal(t, "Launch", c.Title)
	assert.Equal(t, "b1", c.CreatorID)
	assert.Equal(t, []string{"gamers", "parents"}, c.AudienceTags)
	assert.Empty(t, c.ContentTypes)
	assert.Nil(t, c.ExpiredAt)
	assert.True(t, budget.Equal(*c.Budget))

	_, err = NewCampaign("c2", "b1", CampaignFields{Title: "x", Description: "y", Status: CampaignArchived}, testNow)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewCampaign("c3", "b1", CampaignFields{Title: "x", Description: "y", Status: CampaignExpired}, testNow)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewCampaign_Validation(t *testing.T) {
	negative := decimal.NewFromInt(-1)
	start := testNow
	before := testNow.Add(-24 * time.Hour)

	tests := []struct {
		name   string
		fields CampaignFields
	}{
		{"missing title", CampaignFields{Description: "d"}},
		{"blank title", CampaignFields{Title: "   ", Description: "d"}},
		{"missing description", CampaignFields{Title: "t"}},
		{"negative budget", CampaignFields{Title: "t", Description: "d", Budget: &negative}},
		{"end before start", CampaignFields{Title: "t", Description: "d", StartDate: &start, EndDate: &before}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCampaign("c", "b", tt.fields, testNow)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCampaign_ApplyPatch(t *testing.T) {
	c := campaignIn(CampaignActive)
	title := "Relaunch"
	tags := []string{"travel"}

	updated, err := c.ApplyPatch(CampaignPatch{Title: &title, AudienceTags: &tags}, testNow)
	require.NoError(t, err)
	assert.Equal(t, "Relaunch", updated.Title)
	assert.Equal(t, []string{"travel"}, updated.AudienceTags)
	assert.Equal(t, CampaignActive, updated.Status)
	assert.Equal(t, "b1", updated.CreatorID)
	assert.Equal(t, "Launch", c.Title)

	empty := ""
	_, err = c.ApplyPatch(CampaignPatch{Description: &empty}, testNow)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCampaign_IsStale(t *testing.T) {
	yesterday := testNow.Add(-24 * time.Hour)
	tomorrow := testNow.Add(24 * time.Hour)

	active := campaignIn(CampaignActive)
	assert.False(t, active.IsStale(testNow), "no end date")

	active.EndDate = &tomorrow
	assert.False(t, active.IsStale(testNow))

	active.EndDate = &yesterday
	assert.True(t, active.IsStale(testNow))

	archived := campaignIn(CampaignArchived)
	archived.EndDate = &yesterday
	assert.False(t, archived.IsStale(testNow))
}

func TestCampaign_RetentionElapsed(t *testing.T) {
	retention := 7 * 24 * time.Hour
	c := campaignIn(CampaignExpired)

	at := testNow.Add(-retention + time.Minute)
	c.ExpiredAt = &at
	assert.False(t, c.RetentionElapsed(testNow, retention))

	at = testNow.Add(-retention - time.Minute)
	c.ExpiredAt = &at
	assert.True(t, c.RetentionElapsed(testNow, retention))

	c.Status = CampaignActive
	assert.False(t, c.RetentionElapsed(testNow, retention))
}

func TestParseCampaignStatus(t *testing.T) {
	s, err := ParseCampaignStatus(" Archived ")
	require.NoError(t, err)
	assert.Equal(t, CampaignArchived, s)

	_, err = ParseCampaignStatus("paused")
	assert.ErrorIs(t, err, ErrValidation)
}
