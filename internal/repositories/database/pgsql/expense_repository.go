package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shepherdsuite/church_mgmt_app/internal/apperrors"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portsrepo "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/repositories"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expenses.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepository {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

const expenseSelectColumns = `
	e.expense_id, e.church_id, e.title, e.category, e.vendor,
	e.amount, e.currency, e.incurred_at, e.status,
	e.created_at, e.created_by, e.last_updated_at, e.last_updated_by
`

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var e domain.Expense
	err := row.Scan(
		&e.ExpenseID, &e.ChurchID, &e.Title, &e.Category, &e.Vendor,
		&e.Amount, &e.Currency, &e.IncurredAt, &e.Status,
		&e.CreatedAt, &e.CreatedBy, &e.LastUpdatedAt, &e.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan expense row", err)
	}
	return &e, nil
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		INSERT INTO expenses (
			expense_id, church_id, title, category, vendor,
			amount, currency, incurred_at, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		expense.ExpenseID, expense.ChurchID, expense.Title, expense.Category, expense.Vendor,
		expense.Amount, expense.Currency, expense.IncurredAt, expense.Status,
		expense.CreatedAt, expense.CreatedBy, expense.LastUpdatedAt, expense.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return apperrors.NewConflictError("expense ID " + expense.ExpenseID + " already exists")
			}
			if pgErr.Code == "23503" {
				return apperrors.NewValidationFailedError("church does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save expense "+expense.ExpenseID, err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, churchID, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseSelectColumns + ` FROM expenses e WHERE e.church_id = $1 AND e.expense_id = $2;`
	return scanExpense(r.Pool.QueryRow(ctx, query, churchID, expenseID))
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, churchID string, status *domain.ExpenseStatus, limit, offset int) ([]domain.Expense, error) {
	query := `SELECT ` + expenseSelectColumns + ` FROM expenses e WHERE e.church_id = $1`
	args := []any{churchID}
	if status != nil {
		args = append(args, *status)
		query += ` AND e.status = $` + itoa(len(args))
	}
	args = append(args, limit)
	query += ` ORDER BY e.incurred_at DESC LIMIT $` + itoa(len(args))
	args = append(args, offset)
	query += ` OFFSET $` + itoa(len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list expenses for church "+churchID, err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(
			&e.ExpenseID, &e.ChurchID, &e.Title, &e.Category, &e.Vendor,
			&e.Amount, &e.Currency, &e.IncurredAt, &e.Status,
			&e.CreatedAt, &e.CreatedBy, &e.LastUpdatedAt, &e.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan expense row", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read expense rows", err)
	}
	return expenses, nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		UPDATE expenses SET
			title = $3, category = $4, vendor = $5, amount = $6, incurred_at = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE church_id = $1 AND expense_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		expense.ChurchID, expense.ExpenseID,
		expense.Title, expense.Category, expense.Vendor, expense.Amount, expense.IncurredAt,
		expense.LastUpdatedAt, expense.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update expense "+expense.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) UpdateExpenseStatus(ctx context.Context, churchID, expenseID string, status domain.ExpenseStatus, updatedBy string) error {
	query := `
		UPDATE expenses SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE church_id = $1 AND expense_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, churchID, expenseID, status, time.Now(), updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of expense "+expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) AddStatusChange(ctx context.Context, change domain.ExpenseStatusChange) error {
	query := `
		INSERT INTO expense_status_history (change_id, expense_id, from_status, to_status, comment, changed_by, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		change.ChangeID, change.ExpenseID, change.FromStatus, change.ToStatus,
		change.Comment, change.ChangedBy, change.ChangedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to record status change for expense "+change.ExpenseID, err)
	}
	return nil
}

func (r *PgxExpenseRepository) ListStatusHistory(ctx context.Context, churchID, expenseID string) ([]domain.ExpenseStatusChange, error) {
	query := `
		SELECT h.change_id, h.expense_id, h.from_status, h.to_status, h.comment, h.changed_by, h.changed_at
		FROM expense_status_history h
		JOIN expenses e ON e.expense_id = h.expense_id
		WHERE e.church_id = $1 AND h.expense_id = $2
		ORDER BY h.changed_at;
	`
	rows, err := r.Pool.Query(ctx, query, churchID, expenseID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list status history for expense "+expenseID, err)
	}
	defer rows.Close()

	history := []domain.ExpenseStatusChange{}
	for rows.Next() {
		var h domain.ExpenseStatusChange
		if err := rows.Scan(&h.ChangeID, &h.ExpenseID, &h.FromStatus, &h.ToStatus, &h.Comment, &h.ChangedBy, &h.ChangedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan status change row", err)
		}
		history = append(history, h)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read status change rows", err)
	}
	return history, nil
}

func (r *PgxExpenseRepository) AddAttachment(ctx context.Context, churchID string, attachment domain.ExpenseAttachment) error {
	// The attachment's expense must belong to the given church.
	query := `
		INSERT INTO expense_attachments (attachment_id, expense_id, file_name, file_url, uploaded_by, uploaded_at)
		SELECT $1, e.expense_id, $3, $4, $5, $6
		FROM expenses e
		WHERE e.expense_id = $2 AND e.church_id = $7;
	`
	tag, err := r.Pool.Exec(ctx, query,
		attachment.AttachmentID, attachment.ExpenseID, attachment.FileName,
		attachment.FileURL, attachment.UploadedBy, attachment.UploadedAt, churchID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to add attachment to expense "+attachment.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) ListAttachments(ctx context.Context, churchID, expenseID string) ([]domain.ExpenseAttachment, error) {
	query := `
		SELECT a.attachment_id, a.expense_id, a.file_name, a.file_url, a.uploaded_by, a.uploaded_at
		FROM expense_attachments a
		JOIN expenses e ON e.expense_id = a.expense_id
		WHERE e.church_id = $1 AND a.expense_id = $2
		ORDER BY a.uploaded_at;
	`
	rows, err := r.Pool.Query(ctx, query, churchID, expenseID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list attachments for expense "+expenseID, err)
	}
	defer rows.Close()

	attachments := []domain.ExpenseAttachment{}
	for rows.Next() {
		var a domain.ExpenseAttachment
		if err := rows.Scan(&a.AttachmentID, &a.ExpenseID, &a.FileName, &a.FileURL, &a.UploadedBy, &a.UploadedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan attachment row", err)
		}
		attachments = append(attachments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read attachment rows", err)
	}
	return attachments, nil
}

func (r *PgxExpenseRepository) DeleteAttachment(ctx context.Context, churchID, expenseID, attachmentID string) error {
	query := `
		DELETE FROM expense_attachments a
		USING expenses e
		WHERE e.expense_id = a.expense_id
		  AND e.church_id = $1 AND a.expense_id = $2 AND a.attachment_id = $3;
	`
	tag, err := r.Pool.Exec(ctx, query, churchID, expenseID, attachmentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete attachment "+attachmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
