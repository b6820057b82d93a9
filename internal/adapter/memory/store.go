// Package memory provides an in-memory implementation of the campaign and
// application repositories, used for tests and ephemeral environments.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"brandcollab/internal/core/domain"
	"brandcollab/internal/core/port"
)

var (
	_ port.CampaignRepository    = (*Store)(nil)
	_ port.ApplicationRepository = (*Store)(nil)
)

type pairKey struct {
	campaignID   string
	influencerID string
}

// Store keeps campaigns and applications in maps guarded by one mutex.
// Mutation callbacks run with the lock held, which makes every
// read-modify-write atomic per record.
type Store struct {
	mu           sync.RWMutex
	campaigns    map[string]domain.Campaign
	applications map[string]domain.Application
	byPair       map[pairKey]string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		campaigns:    make(map[string]domain.Campaign),
		applications: make(map[string]domain.Application),
		byPair:       make(map[pairKey]string),
	}
}

// CreateCampaign stores a new campaign.
func (s *Store) CreateCampaign(_ context.Context, c domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.campaigns[c.ID]; ok {
		return fmt.Errorf("campaign %s already exists", c.ID)
	}
	s.campaigns[c.ID] = cloneCampaign(c)
	return nil
}

// GetCampaign returns a campaign by id.
func (s *Store) GetCampaign(_ context.Context, id string) (domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.campaigns[id]
	if !ok {
		return domain.Campaign{}, fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	return cloneCampaign(c), nil
}

// ListCampaignsByCreator returns campaigns of creatorID, newest first.
func (s *Store) ListCampaignsByCreator(_ context.Context, creatorID string, includeExpired bool) ([]domain.Campaign, error) {
	return s.selectCampaigns(func(c domain.Campaign) bool {
		return c.CreatorID == creatorID && (includeExpired || c.Status != domain.CampaignExpired)
	}), nil
}

// ListCampaignsByStatus returns campaigns holding status, newest first.
func (s *Store) ListCampaignsByStatus(_ context.Context, status domain.CampaignStatus) ([]domain.Campaign, error) {
	return s.selectCampaigns(func(c domain.Campaign) bool {
		return c.Status == status
	}), nil
}

// ListOverdueCampaigns returns active campaigns whose end date is before now.
func (s *Store) ListOverdueCampaigns(_ context.Context, now time.Time) ([]domain.Campaign, error) {
	return s.selectCampaigns(func(c domain.Campaign) bool {
		return c.IsStale(now)
	}), nil
}

// ListExpiredBefore returns expired campaigns with expiredAt before cutoff.
func (s *Store) ListExpiredBefore(_ context.Context, cutoff time.Time) ([]domain.Campaign, error) {
	return s.selectCampaigns(func(c domain.Campaign) bool {
		return c.Status == domain.CampaignExpired && c.ExpiredAt != nil && c.ExpiredAt.Before(cutoff)
	}), nil
}

// UpdateCampaign applies fn to the stored campaign under the store lock.
func (s *Store) UpdateCampaign(_ context.Context, id string, fn port.CampaignMutation) (domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.campaigns[id]
	if !ok {
		return domain.Campaign{}, fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	updated, err := fn(cloneCampaign(current))
	if err != nil {
		return domain.Campaign{}, err
	}
	updated.ID = current.ID
	updated.CreatorID = current.CreatorID
	s.campaigns[id] = cloneCampaign(updated)
	return updated, nil
}

// DeleteCampaign removes the campaign when check passes. Applications are
// not touched.
func (s *Store) DeleteCampaign(_ context.Context, id string, check func(domain.Campaign) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.campaigns[id]
	if !ok {
		return fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	if check != nil {
		if err := check(cloneCampaign(current)); err != nil {
			return err
		}
	}
	delete(s.campaigns, id)
	return nil
}

// GetApplication returns an application by id.
func (s *Store) GetApplication(_ context.Context, id string) (domain.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.applications[id]
	if !ok {
		return domain.Application{}, fmt.Errorf("application %s: %w", id, domain.ErrNotFound)
	}
	return a, nil
}

// FindApplication returns the application of influencerID to campaignID.
func (s *Store) FindApplication(_ context.Context, campaignID, influencerID string) (domain.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byPair[pairKey{campaignID: campaignID, influencerID: influencerID}]
	if !ok {
		return domain.Application{}, fmt.Errorf("application of %s to campaign %s: %w", influencerID, campaignID, domain.ErrNotFound)
	}
	return s.applications[id], nil
}

// UpsertApplication inserts a or re-pitches the existing application of the
// same influencer to the same campaign.
func (s *Store) UpsertApplication(_ context.Context, a domain.Application) (domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pairKey{campaignID: a.CampaignID, influencerID: a.InfluencerID}
	if id, ok := s.byPair[key]; ok {
		existing := s.applications[id]
		existing.Message = a.Message
		existing.ProposedContent = a.ProposedContent
		existing.Status = domain.ApplicationPending
		existing.DecidedAt = nil
		existing.UpdatedAt = a.UpdatedAt
		s.applications[id] = existing
		return existing, nil
	}
	if _, ok := s.applications[a.ID]; ok {
		return domain.Application{}, fmt.Errorf("application %s already exists", a.ID)
	}
	s.applications[a.ID] = a
	s.byPair[key] = a.ID
	return a, nil
}

// UpdateApplication applies fn to the stored application under the store lock.
func (s *Store) UpdateApplication(_ context.Context, id string, fn port.ApplicationMutation) (domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.applications[id]
	if !ok {
		return domain.Application{}, fmt.Errorf("application %s: %w", id, domain.ErrNotFound)
	}
	updated, err := fn(current)
	if err != nil {
		return domain.Application{}, err
	}
	updated.ID = current.ID
	updated.CampaignID = current.CampaignID
	updated.InfluencerID = current.InfluencerID
	s.applications[id] = updated
	return updated, nil
}

// DeleteApplication removes the application when check passes.
func (s *Store) DeleteApplication(_ context.Context, id string, check func(domain.Application) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.applications[id]
	if !ok {
		return fmt.Errorf("application %s: %w", id, domain.ErrNotFound)
	}
	if check != nil {
		if err := check(current); err != nil {
			return err
		}
	}
	delete(s.applications, id)
	delete(s.byPair, pairKey{campaignID: current.CampaignID, influencerID: current.InfluencerID})
	return nil
}

// ListApplicationsByCampaign returns applications to campaignID, oldest first.
func (s *Store) ListApplicationsByCampaign(_ context.Context, campaignID string) ([]domain.Application, error) {
	out := s.selectApplications(func(a domain.Application) bool { return a.CampaignID == campaignID })
	slices.Reverse(out)
	return out, nil
}

// ListApplicationsByInfluencer returns applications by influencerID, newest first.
func (s *Store) ListApplicationsByInfluencer(_ context.Context, influencerID string) ([]domain.Application, error) {
	return s.selectApplications(func(a domain.Application) bool { return a.InfluencerID == influencerID }), nil
}

func (s *Store) selectCampaigns(match func(domain.Campaign) bool) []domain.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Campaign, 0)
	for _, c := range s.campaigns {
		if match(c) {
			out = append(out, cloneCampaign(c))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *Store) selectApplications(match func(domain.Application) bool) []domain.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Application, 0)
	for _, a := range s.applications {
		if match(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func cloneCampaign(c domain.Campaign) domain.Campaign {
	c.AudienceTags = slices.Clone(c.AudienceTags)
	c.ContentTypes = slices.Clone(c.ContentTypes)
	return c
}
