package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brandcollab/internal/core/domain"
	"brandcollab/internal/core/port"
)

const applicationColumns = `id, campaign_id, influencer_id, brand_id, message, proposed_content, status,
	campaign_title, influencer_name, influencer_email, decided_at, created_at, updated_at`

// ApplicationRepository implements port.ApplicationRepository using pgxpool.
// Uniqueness of (campaign_id, influencer_id) is enforced by the schema.
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

var _ port.ApplicationRepository = (*ApplicationRepository)(nil)

// NewApplicationRepository returns a new repository instance.
func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

// GetApplication returns an application by id.
func (r *ApplicationRepository) GetApplication(ctx context.Context, id string) (domain.Application, error) {
	a, err := scanApplication(r.pool.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Application{}, fmt.Errorf("application %s: %w", id, domain.ErrNotFound)
	}
	return a, err
}

// FindApplication returns the application of influencerID to campaignID.
func (r *ApplicationRepository) FindApplication(ctx context.Context, campaignID, influencerID string) (domain.Application, error) {
	a, err := scanApplication(r.pool.QueryRow(ctx, `
		SELECT `+applicationColumns+` FROM applications
		WHERE campaign_id = $1 AND influencer_id = $2`, campaignID, influencerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Application{}, fmt.Errorf("application of %s to campaign %s: %w", influencerID, campaignID, domain.ErrNotFound)
	}
	return a, err
}

// UpsertApplication inserts a, or re-pitches the existing row for the same
// pair. Snapshot columns are only written on insert.
func (r *ApplicationRepository) UpsertApplication(ctx context.Context, a domain.Application) (domain.Application, error) {
	return scanApplication(r.pool.QueryRow(ctx, `
		INSERT INTO applications (`+applicationColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		ON CONFLICT (campaign_id, influencer_id) DO UPDATE SET
			message = EXCLUDED.message,
			proposed_content = EXCLUDED.proposed_content,
			status = 'pending',
			decided_at = NULL,
			updated_at = EXCLUDED.updated_at
		RETURNING `+applicationColumns,
		a.ID, a.CampaignID, a.InfluencerID, a.BrandID, a.Message, a.ProposedContent, string(a.Status),
		a.CampaignTitle, a.InfluencerName, a.InfluencerEmail, a.DecidedAt, a.CreatedAt, a.UpdatedAt))
}

// UpdateApplication locks the row, applies fn and writes the result.
func (r *ApplicationRepository) UpdateApplication(ctx context.Context, id string, fn port.ApplicationMutation) (domain.Application, error) {
	var updated domain.Application
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		current, err := r.lock(ctx, tx, id)
		if err != nil {
			return err
		}
		updated, err = fn(current)
		if err != nil {
			return err
		}
		updated.ID = current.ID
		updated.CampaignID = current.CampaignID
		updated.InfluencerID = current.InfluencerID
		_, err = tx.Exec(ctx, `
			UPDATE applications SET
				message = $2, proposed_content = $3, status = $4, decided_at = $5, updated_at = $6
			WHERE id = $1`,
			id, updated.Message, updated.ProposedContent, string(updated.Status), updated.DecidedAt, updated.UpdatedAt)
		return err
	})
	if err != nil {
		return domain.Application{}, err
	}
	return updated, nil
}

// DeleteApplication locks the row and deletes it when check passes.
func (r *ApplicationRepository) DeleteApplication(ctx context.Context, id string, check func(domain.Application) error) error {
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
		_, err = tx.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
		return err
	})
}

// ListApplicationsByCampaign returns applications to campaignID, oldest first.
func (r *ApplicationRepository) ListApplicationsByCampaign(ctx context.Context, campaignID string) ([]domain.Application, error) {
	return r.list(ctx, `
		SELECT `+applicationColumns+` FROM applications
		WHERE campaign_id = $1
		ORDER BY created_at, id`, campaignID)
}

// ListApplicationsByInfluencer returns applications by influencerID, newest first.
func (r *ApplicationRepository) ListApplicationsByInfluencer(ctx context.Context, influencerID string) ([]domain.Application, error) {
	return r.list(ctx, `
		SELECT `+applicationColumns+` FROM applications
		WHERE influencer_id = $1
		ORDER BY created_at DESC, id DESC`, influencerID)
}

func (r *ApplicationRepository) lock(ctx context.Context, tx pgx.Tx, id string) (domain.Application, error) {
	a, err := scanApplication(tx.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Application{}, fmt.Errorf("application %s: %w", id, domain.ErrNotFound)
	}
	return a, err
}

func (r *ApplicationRepository) list(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Application, error) {
		return scanApplication(row)
	})
}

func scanApplication(row pgx.Row) (domain.Application, error) {
	var (
		a      domain.Application
		status string
	)
	err := row.Scan(
		&a.ID,
		&a.CampaignID,
		&a.InfluencerID,
		&a.BrandID,
		&a.Message,
		&a.ProposedContent,
		&status,
		&a.CampaignTitle,
		&a.InfluencerName,
		&a.InfluencerEmail,
		&a.DecidedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return domain.Application{}, err
	}
	a.Status = domain.ApplicationStatus(status)
	return a, nil
}
