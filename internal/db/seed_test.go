package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandcollab/internal/adapter/memory"
	"brandcollab/internal/adapter/usecase"
	"brandcollab/internal/core/domain"
)

func TestSeed(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, Seed(ctx, usecase.NewLifecycleUseCase(store, store)))

	drafts, err := store.ListCampaignsByStatus(ctx, domain.CampaignDraft)
	require.NoError(t, err)
	assert.Len(t, drafts, 3)

	active, err := store.ListCampaignsByStatus(ctx, domain.CampaignActive)
	require.NoError(t, err)
	assert.Len(t, active, 9)

	sweep := usecase.NewSweepUseCase(store, usecase.DefaultRetention)
	res, err := sweep.RunExpirationSweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Promoted, "one overdue campaign per brand")

	for n := 1; n <= 10; n++ {
		apps, err := store.ListApplicationsByInfluencer(ctx, fmt.Sprintf("influencer-%d", n))
		require.NoError(t, err)
		assert.Len(t, apps, 3)
	}
}
