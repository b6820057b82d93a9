package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandcollab/internal/core/domain"
)

var base = time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)

func TestStore_CampaignRoundTrip(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	c := domain.Campaign{ID: "c1", CreatorID: "b1", Title: "t", AudienceTags: []string{"a"}, Status: domain.CampaignDraft, CreatedAt: base}

	require.NoError(t, s.CreateCampaign(ctx, c))
	require.Error(t, s.CreateCampaign(ctx, c), "duplicate id")

	got, err := s.GetCampaign(ctx, "c1")
	require.NoError(t, err)
	got.AudienceTags[0] = "mutated"

	again, err := s.GetCampaign(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, again.AudienceTags, "callers get copies")

	_, err = s.GetCampaign(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_UpdateCampaign(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, s.CreateCampaign(ctx, domain.Campaign{ID: "c1", CreatorID: "b1", Status: domain.CampaignDraft}))

	updated, err := s.UpdateCampaign(ctx, "c1", func(current domain.Campaign) (domain.Campaign, error) {
		current.Status = domain.CampaignActive
		current.CreatorID = "intruder"
		return current, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "b1", updated.CreatorID)
	assert.Equal(t, domain.CampaignActive, updated.Status)

	boom := errors.New("boom")
	_, err = s.UpdateCampaign(ctx, "c1", func(current domain.Campaign) (domain.Campaign, error) {
		current.Status = domain.CampaignArchived
		return current, boom
	})
	require.ErrorIs(t, err, boom)

	got, err := s.GetCampaign(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignActive, got.Status, "failed mutation is not written")

	_, err = s.UpdateCampaign(ctx, "nope", func(c domain.Campaign) (domain.Campaign, error) { return c, nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_DeleteCampaign(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, s.CreateCampaign(ctx, domain.Campaign{ID: "c1", Status: domain.CampaignActive}))

	refuse := errors.New("refused")
	require.ErrorIs(t, s.DeleteCampaign(ctx, "c1", func(domain.Campaign) error { return refuse }), refuse)
	require.NoError(t, s.DeleteCampaign(ctx, "c1", nil))
	assert.ErrorIs(t, s.DeleteCampaign(ctx, "c1", nil), domain.ErrNotFound)
}

func TestStore_CampaignSelections(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	past := base.Add(-time.Hour)
	future := base.Add(time.Hour)
	expiredLongAgo := base.Add(-10 * 24 * time.Hour)
	expiredRecently := base.Add(-time.Hour)

	for _, c := range []domain.Campaign{
		{ID: "overdue", CreatorID: "b1", Status: domain.CampaignActive, EndDate: &past, CreatedAt: base},
		{ID: "running", CreatorID: "b1", Status: domain.CampaignActive, EndDate: &future, CreatedAt: base.Add(time.Minute)},
		{ID: "open", CreatorID: "b2", Status: domain.CampaignActive, CreatedAt: base.Add(2 * time.Minute)},
		{ID: "archived", CreatorID: "b1", Status: domain.CampaignArchived, EndDate: &past, CreatedAt: base.Add(3 * time.Minute)},
		{ID: "old", CreatorID: "b1", Status: domain.CampaignExpired, ExpiredAt: &expiredLongAgo, CreatedAt: base.Add(4 * time.Minute)},
		{ID: "recent", CreatorID: "b2", Status: domain.CampaignExpired, ExpiredAt: &expiredRecently, CreatedAt: base.Add(5 * time.Minute)},
	} {
		require.NoError(t, s.CreateCampaign(ctx, c))
	}

	ids := func(cs []domain.Campaign) []string {
		out := make([]string, 0, len(cs))
		for _, c := range cs {
			out = append(out, c.ID)
		}
		return out
	}

	overdue, err := s.ListOverdueCampaigns(ctx, base)
	require.NoError(t, err)
	assert.Equal(t, []string{"overdue"}, ids(overdue))

	expired, err := s.ListExpiredBefore(ctx, base.Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []string{"old"}, ids(expired))

	active, err := s.ListCampaignsByStatus(ctx, domain.CampaignActive)
	require.NoError(t, err)
	assert.Equal(t, []string{"open", "running", "overdue"}, ids(active))

	mine, err := s.ListCampaignsByCreator(ctx, "b1", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"archived", "running", "overdue"}, ids(mine))

	mine, err = s.ListCampaignsByCreator(ctx, "b1", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"old", "archived", "running", "overdue"}, ids(mine))
}

func TestStore_UpsertApplication(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	decided := base.Add(time.Hour)

	first := domain.Application{
		ID: "a1", CampaignID: "c1", InfluencerID: "i1", Message: "A",
		Status: domain.ApplicationRejected, DecidedAt: &decided, CampaignTitle: "Launch", CreatedAt: base,
	}
	stored, err := s.UpsertApplication(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, "a1", stored.ID)

	stored, err = s.UpsertApplication(ctx, domain.Application{
		ID: "a2", CampaignID: "c1", InfluencerID: "i1", Message: "B",
		Status: domain.ApplicationPending, CampaignTitle: "Renamed", CreatedAt: base.Add(time.Hour), UpdatedAt: base.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "a1", stored.ID)
	assert.Equal(t, "B", stored.Message)
	assert.Equal(t, domain.ApplicationPending, stored.Status)
	assert.Nil(t, stored.DecidedAt)
	assert.Equal(t, "Launch", stored.CampaignTitle, "snapshots keep their original value")

	found, err := s.FindApplication(ctx, "c1", "i1")
	require.NoError(t, err)
	assert.Equal(t, stored, found)

	_, err = s.GetApplication(ctx, "a2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_DeleteApplicationFreesPair(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	_, err := s.UpsertApplication(ctx, domain.Application{ID: "a1", CampaignID: "c1", InfluencerID: "i1"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteApplication(ctx, "a1", nil))
	_, err = s.FindApplication(ctx, "c1", "i1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.UpsertApplication(ctx, domain.Application{ID: "a2", CampaignID: "c1", InfluencerID: "i1"})
	require.NoError(t, err)
	found, err := s.FindApplication(ctx, "c1", "i1")
	require.NoError(t, err)
	assert.Equal(t, "a2", found.ID)
}
