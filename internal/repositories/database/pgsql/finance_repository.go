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

type PgxFinanceRepository struct {
	BaseRepository
}

// newPgxFinanceRepository creates a new repository for manual financial
// records and reconciliation aggregates.
func newPgxFinanceRepository(pool *pgxpool.Pool) portsrepo.FinanceRepository {
	return &PgxFinanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.FinanceRepository = (*PgxFinanceRepository)(nil)

const manualRecordSelectColumns = `
	r.record_id, r.church_id, r.kind, r.source, r.description,
	r.amount, r.currency, r.recorded_for,
	r.created_at, r.created_by, r.last_updated_at, r.last_updated_by
`

func (r *PgxFinanceRepository) SaveManualRecord(ctx context.Context, record domain.ManualFinancialRecord) error {
	query := `
		INSERT INTO manual_financial_records (
			record_id, church_id, kind, source, description,
			amount, currency, recorded_for,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		record.RecordID, record.ChurchID, record.Kind, record.Source, record.Description,
		record.Amount, record.Currency, record.RecordedFor,
		record.CreatedAt, record.CreatedBy, record.LastUpdatedAt, record.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return apperrors.NewConflictError("record ID " + record.RecordID + " already exists")
			}
			if pgErr.Code == "23503" {
				return apperrors.NewValidationFailedError("church does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save financial record "+record.RecordID, err)
	}
	return nil
}

func (r *PgxFinanceRepository) FindManualRecordByID(ctx context.Context, churchID, recordID string) (*domain.ManualFinancialRecord, error) {
	query := `SELECT ` + manualRecordSelectColumns + ` FROM manual_financial_records r WHERE r.church_id = $1 AND r.record_id = $2;`
	var rec domain.ManualFinancialRecord
	err := r.Pool.QueryRow(ctx, query, churchID, recordID).Scan(
		&rec.RecordID, &rec.ChurchID, &rec.Kind, &rec.Source, &rec.Description,
		&rec.Amount, &rec.Currency, &rec.RecordedFor,
		&rec.CreatedAt, &rec.CreatedBy, &rec.LastUpdatedAt, &rec.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find financial record "+recordID, err)
	}
	return &rec, nil
}

func (r *PgxFinanceRepository) ListManualRecords(ctx context.Context, churchID string, limit, offset int) ([]domain.ManualFinancialRecord, error) {
	query := `
		SELECT ` + manualRecordSelectColumns + `
		FROM manual_financial_records r
		WHERE r.church_id = $1
		ORDER BY r.recorded_for DESC, r.created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, churchID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list financial records for church "+churchID, err)
	}
	defer rows.Close()

	records := []domain.ManualFinancialRecord{}
	for rows.Next() {
		var rec domain.ManualFinancialRecord
		if err := rows.Scan(
			&rec.RecordID, &rec.ChurchID, &rec.Kind, &rec.Source, &rec.Description,
			&rec.Amount, &rec.Currency, &rec.RecordedFor,
			&rec.CreatedAt, &rec.CreatedBy, &rec.LastUpdatedAt, &rec.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan financial record row", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read financial record rows", err)
	}
	return records, nil
}

func (r *PgxFinanceRepository) UpdateManualRecord(ctx context.Context, record domain.ManualFinancialRecord) error {
	query := `
		UPDATE manual_financial_records SET
			kind = $3, source = $4, description = $5, amount = $6, recorded_for = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE church_id = $1 AND record_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		record.ChurchID, record.RecordID,
		record.Kind, record.Source, record.Description, record.Amount, record.RecordedFor,
		record.LastUpdatedAt, record.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update financial record "+record.RecordID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxFinanceRepository) DeleteManualRecord(ctx context.Context, churchID, recordID string) error {
	query := `DELETE FROM manual_financial_records WHERE church_id = $1 AND record_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, churchID, recordID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete financial record "+recordID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxFinanceRepository) sumQuery(ctx context.Context, query, what string, args ...any) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum "+what, err)
	}
	return total, nil
}

func (r *PgxFinanceRepository) SumDonations(ctx context.Context, churchID string, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM donations
		WHERE church_id = $1 AND donated_at >= $2 AND donated_at < $3;
	`
	return r.sumQuery(ctx, query, "donations", churchID, from, to)
}

func (r *PgxFinanceRepository) SumDonationsByCategory(ctx context.Context, churchID string, from, to time.Time) ([]domain.CategoryTotal, error) {
	query := `
		SELECT COALESCE(c.name, 'uncategorised'), COALESCE(SUM(d.amount), 0)
		FROM donations d
		LEFT JOIN donation_categories c ON c.category_id = d.category_id
		WHERE d.church_id = $1 AND d.donated_at >= $2 AND d.donated_at < $3
		GROUP BY c.name
		ORDER BY c.name;
	`
	rows, err := r.Pool.Query(ctx, query, churchID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sum donations by category", err)
	}
	defer rows.Close()

	totals := []domain.CategoryTotal{}
	for rows.Next() {
		var t domain.CategoryTotal
		if err := rows.Scan(&t.Category, &t.Total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category total row", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read category total rows", err)
	}
	return totals, nil
}

func (r *PgxFinanceRepository) SumPaidExpenses(ctx context.Context, churchID string, from, to time.Time) (decimal.Decimal, error) {
	// Only paid expenses count against the books.
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE church_id = $1 AND status = 'paid' AND incurred_at >= $2 AND incurred_at < $3;
	`
	return r.sumQuery(ctx, query, "paid expenses", churchID, from, to)
}

func (r *PgxFinanceRepository) SumManualRecords(ctx context.Context, churchID string, kind domain.FinancialRecordKind, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM manual_financial_records
		WHERE church_id = $1 AND kind = $2 AND recorded_for >= $3 AND recorded_for < $4;
	`
	return r.sumQuery(ctx, query, "manual records", churchID, kind, from, to)
}
