package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"brandcollab/internal/core/domain"
	"brandcollab/internal/core/port"
)

// Seed creates demo brands' campaigns and influencer applications through
// the lifecycle use case, so the data obeys the same rules as real traffic.
// Some campaigns end in the past and are left for the sweep to expire.
func Seed(ctx context.Context, uc port.LifecycleUseCase) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	today := time.Now().UTC().Truncate(24 * time.Hour)

	audiences := []string{"gen-z", "parents", "gamers", "fitness", "travel"}
	contentTypes := []string{"reel", "story", "video", "post", "live"}

	var campaignIDs []string
	for b := 1; b <= 3; b++ {
		brand := domain.Actor{ID: fmt.Sprintf("brand-%d", b), Role: domain.RoleBrand}
		for i := 1; i <= 4; i++ {
			budget := decimal.NewFromInt(int64(500 * (1 + r.Intn(20))))
			start := today.AddDate(0, 0, -r.Intn(30))
			end := today.AddDate(0, 0, 7+r.Intn(60))
			if i == 4 { // already overdue
				start = today.AddDate(0, 0, -30)
				end = today.AddDate(0, 0, -1)
			}
			status := domain.CampaignActive
			if i == 3 {
				status = domain.CampaignDraft
			}
			c, err := uc.CreateCampaign(ctx, brand, domain.CampaignFields{
				Title:        fmt.Sprintf("Campaign %d of %s", i, brand.ID),
				Description:  "Seeded demo campaign.",
				Budget:       &budget,
				AudienceTags: []string{audiences[r.Intn(len(audiences))], audiences[r.Intn(len(audiences))]},
				ContentTypes: []string{contentTypes[r.Intn(len(contentTypes))]},
				StartDate:    &start,
				EndDate:      &end,
				Status:       status,
			})
			if err != nil {
				return fmt.Errorf("seed campaign: %w", err)
			}
			if c.Status == domain.CampaignActive {
				campaignIDs = append(campaignIDs, c.ID)
			}
		}
	}

	for n := 1; n <= 10; n++ {
		influencer := domain.Actor{
			ID:    fmt.Sprintf("influencer-%d", n),
			Role:  domain.RoleInfluencer,
			Name:  fmt.Sprintf("Influencer %d", n),
			Email: fmt.Sprintf("influencer-%d@example.com", n),
		}
		for _, idx := range r.Perm(len(campaignIDs))[:min(3, len(campaignIDs))] {
			_, err := uc.ApplyToCampaign(ctx, influencer, campaignIDs[idx], domain.Pitch{
				Message:         fmt.Sprintf("Hi! %s would love to work with you.", influencer.Name),
				ProposedContent: contentTypes[r.Intn(len(contentTypes))],
			})
			if err != nil {
				return fmt.Errorf("seed application: %w", err)
			}
		}
	}
	return nil
}
