package postgres

import (
	"context"
	"errors"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandcollab/internal/config/configs"
	"brandcollab/internal/core/domain"
	"brandcollab/internal/db"
)

// newTestPool connects to the database named by PSQL_TEST_ADDRESS, migrates
// it and empties both tables. The test is skipped when the variable is unset.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(addr))

	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u}, nil)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(), `TRUNCATE campaigns, applications`)
	require.NoError(t, err)
	return pool
}

func TestCampaignRepository(t *testing.T) {
	pool := newTestPool(t)
	repo := NewCampaignRepository(pool)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	end := now.Add(-time.Hour)
	budget := decimal.RequireFromString("1999.99")

	c := domain.Campaign{
		ID: "c1", CreatorID: "b1", Title: "Launch", Description: "Desc",
		Budget: &budget, AudienceTags: []string{"gamers"},
		EndDate: &end, Status: domain.CampaignActive, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.CreateCampaign(ctx, c))

	got, err := repo.GetCampaign(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, budget.Equal(*got.Budget))
	assert.Equal(t, []string{"gamers"}, got.AudienceTags)
	assert.Empty(t, got.ContentTypes)
	assert.Nil(t, got.StartDate)
	assert.True(t, end.Equal(*got.EndDate))

	overdue, err := repo.ListOverdueCampaigns(ctx, now)
	require.NoError(t, err)
	require.Len(t, overdue, 1)

	expired, err := repo.UpdateCampaign(ctx, "c1", func(current domain.Campaign) (domain.Campaign, error) {
		return domain.TransitionCampaignStatus(current, domain.CampaignExpired, domain.InitiatorSystem, now)
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignExpired, expired.Status)

	visible, err := repo.ListCampaignsByCreator(ctx, "b1", false)
	require.NoError(t, err)
	assert.Empty(t, visible)

	old, err := repo.ListExpiredBefore(ctx, now.Add(time.Second))
	require.NoError(t, err)
	require.Len(t, old, 1)

	refuse := errors.New("refused")
	require.ErrorIs(t, repo.DeleteCampaign(ctx, "c1", func(domain.Campaign) error { return refuse }), refuse)
	require.NoError(t, repo.DeleteCampaign(ctx, "c1", nil))

	_, err = repo.GetCampaign(ctx, "c1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.UpdateCampaign(ctx, "c1", func(c domain.Campaign) (domain.Campaign, error) { return c, nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCampaignRepository_UpdateIsSerialised(t *testing.T) {
	pool := newTestPool(t)
	repo := NewCampaignRepository(pool)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.CreateCampaign(ctx, domain.Campaign{
		ID: "c1", CreatorID: "b1", Title: "0", Description: "d", Status: domain.CampaignActive, CreatedAt: now, UpdatedAt: now,
	}))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.UpdateCampaign(ctx, "c1", func(current domain.Campaign) (domain.Campaign, error) {
				current.Title += "+"
				return current, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.GetCampaign(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "0++++++++++", got.Title, "no lost updates")
}

func TestApplicationRepository(t *testing.T) {
	pool := newTestPool(t)
	repo := NewApplicationRepository(pool)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	a := domain.Application{
		ID: "a1", CampaignID: "c1", InfluencerID: "i1", BrandID: "b1", Message: "A",
		Status: domain.ApplicationPending, CampaignTitle: "Launch", CreatedAt: now, UpdatedAt: now,
	}
	stored, err := repo.UpsertApplication(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, "a1", stored.ID)

	decided, err := repo.UpdateApplication(ctx, "a1", func(current domain.Application) (domain.Application, error) {
		return domain.DecideApplication(current, domain.ApplicationRejected, now)
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationRejected, decided.Status)

	b := a
	b.ID = "a2"
	b.Message = "B"
	b.CampaignTitle = "Renamed"
	stored, err = repo.UpsertApplication(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, "a1", stored.ID)
	assert.Equal(t, "B", stored.Message)
	assert.Equal(t, domain.ApplicationPending, stored.Status)
	assert.Nil(t, stored.DecidedAt)
	assert.Equal(t, "Launch", stored.CampaignTitle)

	found, err := repo.FindApplication(ctx, "c1", "i1")
	require.NoError(t, err)
	assert.Equal(t, "a1", found.ID)

	byCampaign, err := repo.ListApplicationsByCampaign(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, byCampaign, 1)

	require.NoError(t, repo.DeleteApplication(ctx, "a1", func(current domain.Application) error {
		return current.CanWithdraw()
	}))
	_, err = repo.FindApplication(ctx, "c1", "i1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	mine, err := repo.ListApplicationsByInfluencer(ctx, "i1")
	require.NoError(t, err)
	assert.Empty(t, mine)
}
