package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"brandcollab/internal/adapter/memory"
	"brandcollab/internal/core/domain"
)

var (
	brandB     = domain.Actor{ID: "brand-b", Role: domain.RoleBrand}
	brandX     = domain.Actor{ID: "brand-x", Role: domain.RoleBrand}
	influencer = domain.Actor{ID: "inf-i", Role: domain.RoleInfluencer, Name: "Ivy", Email: "ivy@example.com"}
	other      = domain.Actor{ID: "inf-j", Role: domain.RoleInfluencer, Name: "Jo"}
)

// simClock is a settable clock shared by the use cases under test.
type simClock struct {
	mu  sync.Mutex
	now time.Time
}

func newSimClock() *simClock {
	return &simClock{now: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *simClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *simClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	store *memory.Store
	clock *simClock
	svc   *LifecycleUseCase
	sweep *SweepUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	clock := newSimClock()
	return &fixture{
		store: store,
		clock: clock,
		svc:   NewLifecycleUseCase(store, store, WithClock(clock.Now)),
		sweep: NewSweepUseCase(store, DefaultRetention, WithClock(clock.Now)),
	}
}

// activeCampaign creates an active campaign of brandB ending at end.
func (f *fixture) activeCampaign(t *testing.T, end time.Time) domain.Campaign {
	t.Helper()
	c, err := f.svc.CreateCampaign(context.Background(), brandB, domain.CampaignFields{
		Title:       "Summer drop",
		Description: "Short-form videos for the summer collection",
		EndDate:     &end,
		Status:      domain.CampaignActive,
	})
	require.NoError(t, err)
	return c
}
