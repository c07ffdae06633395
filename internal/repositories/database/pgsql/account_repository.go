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

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

const accountSelectColumns = `
	a.account_id, a.name, a.email, a.phone, a.password_hash, a.role, a.is_active,
	a.auth_provider, a.provider_user_id, a.refresh_token_hash, a.refresh_token_expiry_time,
	a.created_at, a.created_by, a.last_updated_at, a.last_updated_by, a.deleted_at
`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.AccountID,
		&a.Name,
		&a.Email,
		&a.Phone,
		&a.PasswordHash,
		&a.Role,
		&a.IsActive,
		&a.AuthProvider,
		&a.ProviderUserID,
		&a.RefreshTokenHash,
		&a.RefreshTokenExpiryTime,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.LastUpdatedAt,
		&a.LastUpdatedBy,
		&a.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan account row", err)
	}
	return &a, nil
}

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `
		INSERT INTO accounts (
			account_id, name, email, phone, password_hash, role, is_active,
			auth_provider, provider_user_id, refresh_token_hash, refresh_token_expiry_time,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		account.AccountID,
		account.Name,
		account.Email,
		account.Phone,
		account.PasswordHash,
		account.Role,
		account.IsActive,
		account.AuthProvider,
		account.ProviderUserID,
		account.RefreshTokenHash,
		account.RefreshTokenExpiryTime,
		account.CreatedAt,
		account.CreatedBy,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("an account with email " + account.Email + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save account "+account.AccountID, err)
	}
	return nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountSelectColumns + ` FROM accounts a WHERE a.account_id = $1 AND a.deleted_at IS NULL;`
	return scanAccount(r.Pool.QueryRow(ctx, query, accountID))
}

func (r *PgxAccountRepository) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountSelectColumns + ` FROM accounts a WHERE lower(a.email) = lower($1) AND a.deleted_at IS NULL;`
	return scanAccount(r.Pool.QueryRow(ctx, query, email))
}

func (r *PgxAccountRepository) FindAccountByProviderDetails(ctx context.Context, authProvider, providerUserID string) (*domain.Account, error) {
	query := `SELECT ` + accountSelectColumns + ` FROM accounts a WHERE a.auth_provider = $1 AND a.provider_user_id = $2 AND a.deleted_at IS NULL;`
	return scanAccount(r.Pool.QueryRow(ctx, query, authProvider, providerUserID))
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts SET
			name = $2, phone = $3, password_hash = $4, role = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE account_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		account.AccountID,
		account.Name,
		account.Phone,
		account.PasswordHash,
		account.Role,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update account "+account.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAccountRepository) SetAccountActive(ctx context.Context, accountID string, isActive bool, updatedBy string) error {
	query := `
		UPDATE accounts SET is_active = $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, accountID, isActive, time.Now(), updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update active flag for account "+accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAccountRepository) UpdateRefreshToken(ctx context.Context, accountID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	query := `
		UPDATE accounts SET refresh_token_hash = $2, refresh_token_expiry_time = $3
		WHERE account_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, accountID, refreshTokenHash, refreshTokenExpiryTime)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update refresh token for account "+accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAccountRepository) ClearRefreshToken(ctx context.Context, accountID string) error {
	query := `
		UPDATE accounts SET refresh_token_hash = '', refresh_token_expiry_time = NULL
		WHERE account_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, accountID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to clear refresh token for account "+accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAccountRepository) MarkAccountDeleted(ctx context.Context, accountID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE accounts SET deleted_at = $2, is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE account_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, accountID, deletedAt, deletedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark account "+accountID+" deleted", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
