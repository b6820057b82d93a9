package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"brandcollab/internal/core/domain"
	"brandcollab/internal/core/port"
)

const campaignColumns = `id, creator_id, title, description, budget, audience_tags, content_types,
	start_date, end_date, status, expired_at, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool for PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// CreateCampaign inserts a campaign.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO campaigns (`+campaignColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		c.ID, c.CreatorID, c.Title, c.Description, nullBudget(c.Budget),
		nonNil(c.AudienceTags), nonNil(c.ContentTypes),
		c.StartDate, c.EndDate, string(c.Status), c.ExpiredAt, c.CreatedAt, c.UpdatedAt)
	return err
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	return c, err
}

// ListCampaignsByCreator returns the campaigns of creatorID, newest first.
func (r *CampaignRepository) ListCampaignsByCreator(ctx context.Context, creatorID string, includeExpired bool) ([]domain.Campaign, error) {
	return r.list(ctx, `
		SELECT `+campaignColumns+` FROM campaigns
		WHERE creator_id = $1 AND ($2 OR status <> 'expired')
		ORDER BY created_at DESC, id DESC`, creatorID, includeExpired)
}

// ListCampaignsByStatus returns the campaigns holding status, newest first.
func (r *CampaignRepository) ListCampaignsByStatus(ctx context.Context, status domain.CampaignStatus) ([]domain.Campaign, error) {
	return r.list(ctx, `
		SELECT `+campaignColumns+` FROM campaigns
		WHERE status = $1
		ORDER BY created_at DESC, id DESC`, string(status))
}

// ListOverdueCampaigns returns active campaigns whose end date is before now.
func (r *CampaignRepository) ListOverdueCampaigns(ctx context.Context, now time.Time) ([]domain.Campaign, error) {
	return r.list(ctx, `
		SELECT `+campaignColumns+` FROM campaigns
		WHERE status = 'active' AND end_date IS NOT NULL AND end_date < $1
		ORDER BY end_date, id`, now)
}

// ListExpiredBefore returns expired campaigns with expired_at before cutoff.
func (r *CampaignRepository) ListExpiredBefore(ctx context.Context, cutoff time.Time) ([]domain.Campaign, error) {
	return r.list(ctx, `
		SELECT `+campaignColumns+` FROM campaigns
		WHERE status = 'expired' AND expired_at < $1
		ORDER BY expired_at, id`, cutoff)
}

// UpdateCampaign locks the row with SELECT ... FOR UPDATE, applies fn and
// writes the result within the same transaction.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, id string, fn port.CampaignMutation) (domain.Campaign, error) {
	var updated domain.Campaign
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		current, err := r.lock(ctx, tx, id)
		if err != nil {
			return err
		}
		updated, err = fn(current)
		if err != nil {
			return err
		}
		// id and creator_id are never written back
		updated.ID = current.ID
		updated.CreatorID = current.CreatorID
		_, err = tx.Exec(ctx, `
			UPDATE campaigns SET
				title = $2, description = $3, budget = $4, audience_tags = $5, content_types = $6,
				start_date = $7, end_date = $8, status = $9, expired_at = $10, updated_at = $11
			WHERE id = $1`,
			id, updated.Title, updated.Description, nullBudget(updated.Budget),
			nonNil(updated.AudienceTags), nonNil(updated.ContentTypes),
			updated.StartDate, updated.EndDate, string(updated.Status), updated.ExpiredAt, updated.UpdatedAt)
		return err
	})
	if err != nil {
		return domain.Campaign{}, err
	}
	return updated, nil
}

// DeleteCampaign locks the row and deletes it when check passes.
func (r *CampaignRepository) DeleteCampaign(ctx context.Context, id string, check func(domain.Campaign) error) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		current, err := r.lock(ctx, tx, id)
		if err != nil {
			return err
		}
		if check != nil {
			if err = check(current); err != nil {
				return err
			}
		}
		_, err = tx.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
		return err
	})
}

func (r *CampaignRepository) lock(ctx context.Context, tx pgx.Tx, id string) (domain.Campaign, error) {
	c, err := scanCampaign(tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	return c, err
}

func (r *CampaignRepository) list(ctx context.Context, query string, args ...any) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c      domain.Campaign
		budget decimal.NullDecimal
		status string
	)
	err := row.Scan(
		&c.ID,
		&c.CreatorID,
		&c.Title,
		&c.Description,
		&budget,
		&c.AudienceTags,
		&c.ContentTypes,
		&c.StartDate,
		&c.EndDate,
		&status,
		&c.ExpiredAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return domain.Campaign{}, err
	}
	if budget.Valid {
		b := budget.Decimal
		c.Budget = &b
	}
	c.Status = domain.CampaignStatus(status)
	return c, nil
}

func nullBudget(b *decimal.Decimal) decimal.NullDecimal {
	if b == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *b, Valid: true}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
