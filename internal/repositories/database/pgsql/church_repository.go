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

type PgxChurchRepository struct {
	BaseRepository
}

// newPgxChurchRepository creates a new repository for church data.
func newPgxChurchRepository(pool *pgxpool.Pool) portsrepo.ChurchRepository {
	return &PgxChurchRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ChurchRepository = (*PgxChurchRepository)(nil)

const churchSelectColumns = `
	c.church_id, c.name, c.address, c.email, c.phone, c.logo_url,
	c.currency_code, c.service_day, c.is_active,
	c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
`

func scanChurchRows(rows pgx.Rows) ([]domain.Church, error) {
	defer rows.Close()
	churches := []domain.Church{}
	for rows.Next() {
		var c domain.Church
		if err := rows.Scan(
			&c.ChurchID, &c.Name, &c.Address, &c.Email, &c.Phone, &c.LogoURL,
			&c.CurrencyCode, &c.ServiceDay, &c.IsActive,
			&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan church row", err)
		}
		churches = append(churches, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read church rows", err)
	}
	return churches, nil
}

func (r *PgxChurchRepository) SaveChurch(ctx context.Context, church domain.Church) error {
	query := `
		INSERT INTO churches (
			church_id, name, address, email, phone, logo_url,
			currency_code, service_day, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		church.ChurchID, church.Name, church.Address, church.Email, church.Phone, church.LogoURL,
		church.CurrencyCode, church.ServiceDay, church.IsActive,
		church.CreatedAt, church.CreatedBy, church.LastUpdatedAt, church.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewConflictError("church ID " + church.ChurchID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save church "+church.ChurchID, err)
	}
	return nil
}

func (r *PgxChurchRepository) FindChurchByID(ctx context.Context, churchID string) (*domain.Church, error) {
	query := `SELECT ` + churchSelectColumns + ` FROM churches c WHERE c.church_id = $1;`
	var c domain.Church
	err := r.Pool.QueryRow(ctx, query, churchID).Scan(
		&c.ChurchID, &c.Name, &c.Address, &c.Email, &c.Phone, &c.LogoURL,
		&c.CurrencyCode, &c.ServiceDay, &c.IsActive,
		&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find church "+churchID, err)
	}
	return &c, nil
}

func (r *PgxChurchRepository) ListChurchesByAccountID(ctx context.Context, accountID string) ([]domain.Church, error) {
	query := `
		SELECT ` + churchSelectColumns + `
		FROM churches c
		JOIN church_memberships cm ON c.church_id = cm.church_id
		WHERE cm.account_id = $1 AND cm.role <> 'REMOVED'
		ORDER BY c.created_at;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list churches for account "+accountID, err)
	}
	return scanChurchRows(rows)
}

func (r *PgxChurchRepository) UpdateChurch(ctx context.Context, church domain.Church) error {
	query := `
		UPDATE churches SET
			name = $2, address = $3, email = $4, phone = $5,
			currency_code = $6, service_day = $7, is_active = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE church_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		church.ChurchID, church.Name, church.Address, church.Email, church.Phone,
		church.CurrencyCode, church.ServiceDay, church.IsActive,
		church.LastUpdatedAt, church.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update church "+church.ChurchID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxChurchRepository) UpdateChurchLogo(ctx context.Context, churchID, logoURL, updatedBy string) error {
	query := `
		UPDATE churches SET logo_url = $2, last_updated_at = $3, last_updated_by = $4
		WHERE church_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, churchID, logoURL, time.Now(), updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update logo for church "+churchID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxChurchRepository) AddMembership(ctx context.Context, membership domain.ChurchMembership) error {
	query := `
		INSERT INTO church_memberships (account_id, church_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (account_id, church_id) DO UPDATE SET role = EXCLUDED.role;
	` // Upsert: add the account or update its role if it is already linked
	_, err := r.Pool.Exec(ctx, query,
		membership.AccountID,
		membership.ChurchID,
		membership.Role,
		membership.JoinedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("account or church does not exist")
		}
		return apperrors.NewAppError(500, "failed to add account "+membership.AccountID+" to church "+membership.ChurchID, err)
	}
	return nil
}

func (r *PgxChurchRepository) FindMembership(ctx context.Context, accountID, churchID string) (*domain.ChurchMembership, error) {
	query := `
		SELECT cm.account_id, a.name, cm.church_id, cm.role, cm.joined_at
		FROM church_memberships cm
		JOIN accounts a ON a.account_id = cm.account_id
		WHERE cm.account_id = $1 AND cm.church_id = $2;
	`
	var m domain.ChurchMembership
	err := r.Pool.QueryRow(ctx, query, accountID, churchID).Scan(
		&m.AccountID, &m.AccountName, &m.ChurchID, &m.Role, &m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("church not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find membership of "+accountID+" in church "+churchID, err)
	}
	return &m, nil
}

func (r *PgxChurchRepository) ListMemberships(ctx context.Context, churchID string) ([]domain.ChurchMembership, error) {
	query := `
		SELECT cm.account_id, a.name, cm.church_id, cm.role, cm.joined_at
		FROM church_memberships cm
		JOIN accounts a ON a.account_id = cm.account_id
		WHERE cm.church_id = $1 AND cm.role <> 'REMOVED'
		ORDER BY cm.joined_at;
	`
	rows, err := r.Pool.Query(ctx, query, churchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list memberships for church "+churchID, err)
	}
	defer rows.Close()

	memberships := []domain.ChurchMembership{}
	for rows.Next() {
		var m domain.ChurchMembership
		if err := rows.Scan(&m.AccountID, &m.AccountName, &m.ChurchID, &m.Role, &m.JoinedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan membership row", err)
		}
		memberships = append(memberships, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read membership rows", err)
	}
	return memberships, nil
}

func (r *PgxChurchRepository) UpdateMembershipRole(ctx context.Context, accountID, churchID string, role domain.ChurchRole) error {
	query := `
		UPDATE church_memberships SET role = $3
		WHERE account_id = $1 AND church_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, accountID, churchID, role)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update role of "+accountID+" in church "+churchID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxChurchRepository) SaveDonationCategory(ctx context.Context, category domain.DonationCategory) error {
	query := `
		INSERT INTO donation_categories (category_id, church_id, name, is_active)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, category.CategoryID, category.ChurchID, category.Name, category.IsActive)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewConflictError("donation category " + category.Name + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save donation category "+category.CategoryID, err)
	}
	return nil
}

func (r *PgxChurchRepository) ListDonationCategories(ctx context.Context, churchID string) ([]domain.DonationCategory, error) {
	query := `
		SELECT category_id, church_id, name, is_active
		FROM donation_categories WHERE church_id = $1 ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, churchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list donation categories for church "+churchID, err)
	}
	defer rows.Close()

	categories := []domain.DonationCategory{}
	for rows.Next() {
		var cat domain.DonationCategory
		if err := rows.Scan(&cat.CategoryID, &cat.ChurchID, &cat.Name, &cat.IsActive); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan donation category row", err)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read donation category rows", err)
	}
	return categories, nil
}

func (r *PgxChurchRepository) SaveChurchService(ctx context.Context, service domain.ChurchService) error {
	query := `
		INSERT INTO church_services (service_id, church_id, name, day, start_time)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, service.ServiceID, service.ChurchID, service.Name, service.Day, service.StartTime)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewConflictError("church service " + service.Name + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save church service "+service.ServiceID, err)
	}
	return nil
}

func (r *PgxChurchRepository) ListChurchServices(ctx context.Context, churchID string) ([]domain.ChurchService, error) {
	query := `
		SELECT service_id, church_id, name, day, start_time
		FROM church_services WHERE church_id = $1 ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, churchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list services for church "+churchID, err)
	}
	defer rows.Close()

	services := []domain.ChurchService{}
	for rows.Next() {
		var s domain.ChurchService
		if err := rows.Scan(&s.ServiceID, &s.ChurchID, &s.Name, &s.Day, &s.StartTime); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan church service row", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read church service rows", err)
	}
	return services, nil
}
