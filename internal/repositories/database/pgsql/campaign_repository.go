package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/shepherdsuite/church_mgmt_app/internal/apperrors"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portsrepo "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/repositories"
)

type PgxCampaignRepository struct {
	BaseRepository
}

// newPgxCampaignRepository creates a new repository for donation campaigns.
func newPgxCampaignRepository(pool *pgxpool.Pool) portsrepo.CampaignRepository {
	return &PgxCampaignRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CampaignRepository = (*PgxCampaignRepository)(nil)

const campaignSelectColumns = `
	dc.campaign_id, dc.church_id, dc.title, dc.description,
	dc.goal_amount, dc.raised_amount, dc.currency,
	dc.starts_at, dc.ends_at, dc.status,
	dc.created_at, dc.created_by, dc.last_updated_at, dc.last_updated_by
`

func scanCampaign(row pgx.Row) (*domain.DonationCampaign, error) {
	var c domain.DonationCampaign
	err := row.Scan(
		&c.CampaignID, &c.ChurchID, &c.Title, &c.Description,
		&c.GoalAmount, &c.RaisedAmount, &c.Currency,
		&c.StartsAt, &c.EndsAt, &c.Status,
		&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan campaign row", err)
	}
	return &c, nil
}

func (r *PgxCampaignRepository) SaveCampaign(ctx context.Context, campaign domain.DonationCampaign) error {
	query := `
		INSERT INTO donation_campaigns (
			campaign_id, church_id, title, description,
			goal_amount, raised_amount, currency,
			starts_at, ends_at, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		campaign.CampaignID, campaign.ChurchID, campaign.Title, campaign.Description,
		campaign.GoalAmount, campaign.RaisedAmount, campaign.Currency,
		campaign.StartsAt, campaign.EndsAt, campaign.Status,
		campaign.CreatedAt, campaign.CreatedBy, campaign.LastUpdatedAt, campaign.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return apperrors.NewConflictError("campaign ID " + campaign.CampaignID + " already exists")
			}
			if pgErr.Code == "23503" {
				return apperrors.NewValidationFailedError("church does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save campaign "+campaign.CampaignID, err)
	}
	return nil
}

func (r *PgxCampaignRepository) FindCampaignByID(ctx context.Context, churchID, campaignID string) (*domain.DonationCampaign, error) {
	query := `SELECT ` + campaignSelectColumns + ` FROM donation_campaigns dc WHERE dc.church_id = $1 AND dc.campaign_id = $2;`
	return scanCampaign(r.Pool.QueryRow(ctx, query, churchID, campaignID))
}

func (r *PgxCampaignRepository) ListCampaigns(ctx context.Context, churchID string, limit, offset int) ([]domain.DonationCampaign, error) {
	query := `
		SELECT ` + campaignSelectColumns + `
		FROM donation_campaigns dc
		WHERE dc.church_id = $1
		ORDER BY dc.created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, churchID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list campaigns for church "+churchID, err)
	}
	defer rows.Close()

	campaigns := []domain.DonationCampaign{}
	for rows.Next() {
		var c domain.DonationCampaign
		if err := rows.Scan(
			&c.CampaignID, &c.ChurchID, &c.Title, &c.Description,
			&c.GoalAmount, &c.RaisedAmount, &c.Currency,
			&c.StartsAt, &c.EndsAt, &c.Status,
			&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan campaign row", err)
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read campaign rows", err)
	}
	return campaigns, nil
}

func (r *PgxCampaignRepository) UpdateCampaign(ctx context.Context, campaign domain.DonationCampaign) error {
	query := `
		UPDATE donation_campaigns SET
			title = $3, description = $4, goal_amount = $5,
			starts_at = $6, ends_at = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE church_id = $1 AND campaign_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		campaign.ChurchID, campaign.CampaignID,
		campaign.Title, campaign.Description, campaign.GoalAmount,
		campaign.StartsAt, campaign.EndsAt,
		campaign.LastUpdatedAt, campaign.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update campaign "+campaign.CampaignID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCampaignRepository) UpdateCampaignStatus(ctx context.Context, churchID, campaignID string, status domain.CampaignStatus, updatedBy string) error {
	query := `
		UPDATE donation_campaigns SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE church_id = $1 AND campaign_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, churchID, campaignID, status, time.Now(), updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of campaign "+campaignID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCampaignRepository) AddStatusChange(ctx context.Context, change domain.CampaignStatusChange) error {
	query := `
		INSERT INTO campaign_status_history (change_id, campaign_id, from_status, to_status, comment, changed_by, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		change.ChangeID, change.CampaignID, change.FromStatus, change.ToStatus,
		change.Comment, change.ChangedBy, change.ChangedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to record status change for campaign "+change.CampaignID, err)
	}
	return nil
}

func (r *PgxCampaignRepository) ListStatusHistory(ctx context.Context, churchID, campaignID string) ([]domain.CampaignStatusChange, error) {
	query := `
		SELECT h.change_id, h.campaign_id, h.from_status, h.to_status, h.comment, h.changed_by, h.changed_at
		FROM campaign_status_history h
		JOIN donation_campaigns dc ON dc.campaign_id = h.campaign_id
		WHERE dc.church_id = $1 AND h.campaign_id = $2
		ORDER BY h.changed_at;
	`
	rows, err := r.Pool.Query(ctx, query, churchID, campaignID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list status history for campaign "+campaignID, err)
	}
	defer rows.Close()

	history := []domain.CampaignStatusChange{}
	for rows.Next() {
		var h domain.CampaignStatusChange
		if err := rows.Scan(&h.ChangeID, &h.CampaignID, &h.FromStatus, &h.ToStatus, &h.Comment, &h.ChangedBy, &h.ChangedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan status change row", err)
		}
		history = append(history, h)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read status change rows", err)
	}
	return history, nil
}

func (r *PgxCampaignRepository) AddToRaisedAmount(ctx context.Context, churchID, campaignID string, amount decimal.Decimal) error {
	query := `
		UPDATE donation_campaigns SET raised_amount = raised_amount + $3, last_updated_at = $4
		WHERE church_id = $1 AND campaign_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, churchID, campaignID, amount, time.Now())
	if err != nil {
		return apperrors.NewAppError(500, "failed to add to raised amount of campaign "+campaignID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
