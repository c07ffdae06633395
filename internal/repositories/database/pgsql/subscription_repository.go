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

type PgxSubscriptionRepository struct {
	BaseRepository
}

// newPgxSubscriptionRepository creates a new repository for subscription data.
func newPgxSubscriptionRepository(pool *pgxpool.Pool) portsrepo.SubscriptionRepository {
	return &PgxSubscriptionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SubscriptionRepository = (*PgxSubscriptionRepository)(nil)

const subscriptionSelectColumns = `
	s.subscription_id, s.account_id, s.plan, s.status, s.billing_cycle,
	s.period_start, s.period_end, s.gateway_ref,
	s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
`

func scanSubscription(row pgx.Row) (*domain.Subscription, error) {
	var s domain.Subscription
	err := row.Scan(
		&s.SubscriptionID, &s.AccountID, &s.Plan, &s.Status, &s.BillingCycle,
		&s.PeriodStart, &s.PeriodEnd, &s.GatewayRef,
		&s.CreatedAt, &s.CreatedBy, &s.LastUpdatedAt, &s.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan subscription row", err)
	}
	return &s, nil
}

func (r *PgxSubscriptionRepository) SaveSubscription(ctx context.Context, sub domain.Subscription) error {
	query := `
		INSERT INTO subscriptions (
			subscription_id, account_id, plan, status, billing_cycle,
			period_start, period_end, gateway_ref,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		sub.SubscriptionID, sub.AccountID, sub.Plan, sub.Status, sub.BillingCycle,
		sub.PeriodStart, sub.PeriodEnd, sub.GatewayRef,
		sub.CreatedAt, sub.CreatedBy, sub.LastUpdatedAt, sub.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewConflictError("subscription with gateway reference " + sub.GatewayRef + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save subscription "+sub.SubscriptionID, err)
	}
	return nil
}

func (r *PgxSubscriptionRepository) FindCurrentByAccountID(ctx context.Context, accountID string) (*domain.Subscription, error) {
	// Most recent record wins; the service layer interprets its status.
	query := `
		SELECT ` + subscriptionSelectColumns + `
		FROM subscriptions s
		WHERE s.account_id = $1
		ORDER BY s.created_at DESC
		LIMIT 1;
	`
	return scanSubscription(r.Pool.QueryRow(ctx, query, accountID))
}

func (r *PgxSubscriptionRepository) FindByGatewayRef(ctx context.Context, gatewayRef string) (*domain.Subscription, error) {
	query := `SELECT ` + subscriptionSelectColumns + ` FROM subscriptions s WHERE s.gateway_ref = $1;`
	return scanSubscription(r.Pool.QueryRow(ctx, query, gatewayRef))
}

func (r *PgxSubscriptionRepository) UpdateSubscription(ctx context.Context, sub domain.Subscription) error {
	query := `
		UPDATE subscriptions SET
			plan = $2, status = $3, billing_cycle = $4,
			period_start = $5, period_end = $6, gateway_ref = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE subscription_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		sub.SubscriptionID, sub.Plan, sub.Status, sub.BillingCycle,
		sub.PeriodStart, sub.PeriodEnd, sub.GatewayRef,
		sub.LastUpdatedAt, sub.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update subscription "+sub.SubscriptionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// PgxUsageRepository answers the usage counts the entitlement evaluator
// compares against plan limits.
type PgxUsageRepository struct {
	BaseRepository
}

func newPgxUsageRepository(pool *pgxpool.Pool) portsrepo.UsageCounters {
	return &PgxUsageRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.UsageCounters = (*PgxUsageRepository)(nil)

func (r *PgxUsageRepository) countOne(ctx context.Context, query, accountID, what string) (int, error) {
	var count int
	if err := r.Pool.QueryRow(ctx, query, accountID).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count "+what+" for account "+accountID, err)
	}
	return count, nil
}

func (r *PgxUsageRepository) CountChurches(ctx context.Context, accountID string) (int, error) {
	query := `SELECT COUNT(*) FROM churches WHERE created_by = $1;`
	return r.countOne(ctx, query, accountID, "churches")
}

func (r *PgxUsageRepository) CountCampaigns(ctx context.Context, accountID string) (int, error) {
	// Campaigns count against the creator of the church they live in,
	// regardless of which staff member created them.
	query := `
		SELECT COUNT(*)
		FROM donation_campaigns dc
		JOIN churches c ON c.church_id = dc.church_id
		WHERE c.created_by = $1 AND dc.status NOT IN ('cancelled');
	`
	return r.countOne(ctx, query, accountID, "campaigns")
}

func (r *PgxUsageRepository) CountAdminStaff(ctx context.Context, accountID string) (int, error) {
	// Staff added to the account's churches, excluding the creator itself.
	query := `
		SELECT COUNT(*)
		FROM church_memberships cm
		JOIN churches c ON c.church_id = cm.church_id
		WHERE c.created_by = $1
		  AND cm.account_id <> $1
		  AND cm.role IN ('ADMIN', 'STAFF');
	`
	return r.countOne(ctx, query, accountID, "admin staff")
}

func (r *PgxUsageRepository) CountVolunteerTeams(ctx context.Context, accountID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM volunteer_teams vt
		JOIN churches c ON c.church_id = vt.church_id
		WHERE c.created_by = $1 AND vt.is_active = TRUE;
	`
	return r.countOne(ctx, query, accountID, "volunteer teams")
}
