package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shepherdsuite/church_mgmt_app/internal/apperrors"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portsrepo "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/repositories"
)

type PgxDonationRepository struct {
	BaseRepository
}

// newPgxDonationRepository creates a new repository for donations.
func newPgxDonationRepository(pool *pgxpool.Pool) portsrepo.DonationRepository {
	return &PgxDonationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DonationRepository = (*PgxDonationRepository)(nil)

const donationSelectColumns = `
	d.donation_id, d.church_id, d.member_id, d.category_id, d.campaign_id,
	d.amount, d.currency, d.method, d.reference, d.donated_at,
	d.created_at, d.created_by, d.last_updated_at, d.last_updated_by
`

func scanDonation(row pgx.Row) (*domain.Donation, error) {
	var d domain.Donation
	err := row.Scan(
		&d.DonationID, &d.ChurchID, &d.MemberID, &d.CategoryID, &d.CampaignID,
		&d.Amount, &d.Currency, &d.Method, &d.Reference, &d.DonatedAt,
		&d.CreatedAt, &d.CreatedBy, &d.LastUpdatedAt, &d.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan donation row", err)
	}
	return &d, nil
}

func (r *PgxDonationRepository) SaveDonation(ctx context.Context, donation domain.Donation) error {
	query := `
		INSERT INTO donations (
			donation_id, church_id, member_id, category_id, campaign_id,
			amount, currency, method, reference, donated_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		donation.DonationID, donation.ChurchID, donation.MemberID, donation.CategoryID, donation.CampaignID,
		donation.Amount, donation.Currency, donation.Method, donation.Reference, donation.DonatedAt,
		donation.CreatedAt, donation.CreatedBy, donation.LastUpdatedAt, donation.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return apperrors.NewConflictError("donation ID " + donation.DonationID + " already exists")
			}
			if pgErr.Code == "23503" {
				return apperrors.NewValidationFailedError("referenced member, category or campaign does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save donation "+donation.DonationID, err)
	}
	return nil
}

func (r *PgxDonationRepository) FindDonationByID(ctx context.Context, churchID, donationID string) (*domain.Donation, error) {
	query := `SELECT ` + donationSelectColumns + ` FROM donations d WHERE d.church_id = $1 AND d.donation_id = $2;`
	return scanDonation(r.Pool.QueryRow(ctx, query, churchID, donationID))
}

func (r *PgxDonationRepository) ListDonations(ctx context.Context, churchID string, filter portsrepo.DonationFilter, limit, offset int) ([]domain.Donation, error) {
	query := `SELECT ` + donationSelectColumns + ` FROM donations d WHERE d.church_id = $1`
	args := []any{churchID}

	if filter.From != nil {
		args = append(args, *filter.From)
		query += ` AND d.donated_at >= $` + itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += ` AND d.donated_at < $` + itoa(len(args))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		query += ` AND d.category_id = $` + itoa(len(args))
	}
	if filter.CampaignID != nil {
		args = append(args, *filter.CampaignID)
		query += ` AND d.campaign_id = $` + itoa(len(args))
	}
	if filter.MemberID != nil {
		args = append(args, *filter.MemberID)
		query += ` AND d.member_id = $` + itoa(len(args))
	}

	args = append(args, limit)
	query += ` ORDER BY d.donated_at DESC LIMIT $` + itoa(len(args))
	args = append(args, offset)
	query += ` OFFSET $` + itoa(len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list donations for church "+churchID, err)
	}
	defer rows.Close()

	donations := []domain.Donation{}
	for rows.Next() {
		var d domain.Donation
		if err := rows.Scan(
			&d.DonationID, &d.ChurchID, &d.MemberID, &d.CategoryID, &d.CampaignID,
			&d.Amount, &d.Currency, &d.Method, &d.Reference, &d.DonatedAt,
			&d.CreatedAt, &d.CreatedBy, &d.LastUpdatedAt, &d.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan donation row", err)
		}
		donations = append(donations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read donation rows", err)
	}
	return donations, nil
}

func (r *PgxDonationRepository) UpdateDonation(ctx context.Context, donation domain.Donation) error {
	query := `
		UPDATE donations SET
			member_id = $3, category_id = $4, amount = $5, method = $6,
			reference = $7, donated_at = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE church_id = $1 AND donation_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		donation.ChurchID, donation.DonationID,
		donation.MemberID, donation.CategoryID, donation.Amount, donation.Method,
		donation.Reference, donation.DonatedAt,
		donation.LastUpdatedAt, donation.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update donation "+donation.DonationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDonationRepository) DeleteDonation(ctx context.Context, churchID, donationID string) error {
	query := `DELETE FROM donations WHERE church_id = $1 AND donation_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, churchID, donationID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete donation "+donationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
