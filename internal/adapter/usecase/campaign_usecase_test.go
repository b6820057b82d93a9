package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandcollab/internal/core/domain"
)

func TestCreateCampaign(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.svc.CreateCampaign(ctx, brandB, domain.CampaignFields{Title: "Launch", Description: "Desc"})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, brandB.ID, c.CreatorID)
	assert.Equal(t, domain.CampaignDraft, c.Status)
	assert.Equal(t, f.clock.Now(), c.CreatedAt)

	stored, err := f.svc.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, stored.ID)

	_, err = f.svc.CreateCampaign(ctx, influencer, domain.CampaignFields{Title: "Launch", Description: "Desc"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.svc.CreateCampaign(ctx, domain.Actor{Role: domain.RoleBrand}, domain.CampaignFields{Title: "Launch", Description: "Desc"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.svc.CreateCampaign(ctx, brandB, domain.CampaignFields{Title: "Launch"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.svc.GetCampaign(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransitionCampaign(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.activeCampaign(t, f.clock.Now().Add(48*time.Hour))

	t.Run("foreign brand is forbidden", func(t *testing.T) {
		_, err := f.svc.TransitionCampaign(ctx, brandX, c.ID, domain.CampaignArchived)
		require.ErrorIs(t, err, domain.ErrForbidden)

		got, err := f.svc.GetCampaign(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.CampaignActive, got.Status)
	})

	t.Run("owner cannot expire", func(t *testing.T) {
		_, err := f.svc.TransitionCampaign(ctx, brandB, c.ID, domain.CampaignExpired)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)

		_, err = f.svc.TransitionCampaign(ctx, brandX, "missing", domain.CampaignExpired)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("edge outside the graph", func(t *testing.T) {
		_, err := f.svc.TransitionCampaign(ctx, brandB, c.ID, domain.CampaignDraft)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("archive and reactivate", func(t *testing.T) {
		archived, err := f.svc.TransitionCampaign(ctx, brandB, c.ID, domain.CampaignArchived)
		require.NoError(t, err)
		assert.Equal(t, domain.CampaignArchived, archived.Status)
		assert.Equal(t, brandB.ID, archived.CreatorID)

		active, err := f.svc.TransitionCampaign(ctx, brandB, c.ID, domain.CampaignActive)
		require.NoError(t, err)
		assert.Equal(t, domain.CampaignActive, active.Status)
	})

	t.Run("missing campaign", func(t *testing.T) {
		_, err := f.svc.TransitionCampaign(ctx, brandB, "missing", domain.CampaignArchived)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUpdateCampaign_KeepsCreatorAndStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.activeCampaign(t, f.clock.Now().Add(48*time.Hour))

	title := "Renamed"
	f.clock.Advance(time.Minute)
	updated, err := f.svc.UpdateCampaign(ctx, brandB, c.ID, domain.CampaignPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, brandB.ID, updated.CreatorID)
	assert.Equal(t, domain.CampaignActive, updated.Status)
	assert.Equal(t, f.clock.Now(), updated.UpdatedAt)

	_, err = f.svc.UpdateCampaign(ctx, brandX, c.ID, domain.CampaignPatch{Title: &title})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDeleteCampaign(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.activeCampaign(t, f.clock.Now().Add(-time.Hour))

	err := f.svc.DeleteCampaign(ctx, brandB, c.ID)
	require.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = f.sweep.RunExpirationSweep(ctx)
	require.NoError(t, err)

	require.ErrorIs(t, f.svc.DeleteCampaign(ctx, brandX, c.ID), domain.ErrForbidden)
	require.NoError(t, f.svc.DeleteCampaign(ctx, brandB, c.ID))

	_, err = f.svc.GetCampaign(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListCampaigns(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := f.clock.Now()

	live := f.activeCampaign(t, now.Add(72*time.Hour))
	f.clock.Advance(time.Second)
	stale := f.activeCampaign(t, now.Add(-time.Hour))
	f.clock.Advance(time.Second)
	_, err := f.svc.CreateCampaign(ctx, brandX, domain.CampaignFields{Title: "X", Description: "X", Status: domain.CampaignActive})
	require.NoError(t, err)

	mine, err := f.svc.ListCampaigns(ctx, brandB, false)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, stale.ID, mine[0].ID, "newest first")

	feed, err := f.svc.ListActiveCampaigns(ctx)
	require.NoError(t, err)
	for _, c := range feed {
		assert.NotEqual(t, stale.ID, c.ID, "stale campaigns are hidden from discovery")
	}
	assert.Len(t, feed, 2)

	_, err = f.sweep.RunExpirationSweep(ctx)
	require.NoError(t, err)

	mine, err = f.svc.ListCampaigns(ctx, brandB, false)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, live.ID, mine[0].ID)

	mine, err = f.svc.ListCampaigns(ctx, brandB, true)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
