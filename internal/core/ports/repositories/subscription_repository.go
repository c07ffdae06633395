package repositories

import (
	"context"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
)

// SubscriptionRepository defines persistence operations for subscriptions.
type SubscriptionRepository interface {
	SaveSubscription(ctx context.Context, sub domain.Subscription) error
	// FindCurrentByAccountID returns the account's current subscription record,
	// or apperrors.ErrNotFound when the account never subscribed.
	FindCurrentByAccountID(ctx context.Context, accountID string) (*domain.Subscription, error)
	FindByGatewayRef(ctx context.Context, gatewayRef string) (*domain.Subscription, error)
	UpdateSubscription(ctx context.Context, sub domain.Subscription) error
}

// UsageCounters exposes the counts the entitlement evaluator compares against
// plan limits. Counts are account-scoped: resources created by (or, for staff,
// inside churches created by) the account.
type UsageCounters interface {
	CountChurches(ctx context.Context, accountID string) (int, error)
	CountCampaigns(ctx context.Context, accountID string) (int, error)
	CountAdminStaff(ctx context.Context, accountID string) (int, error)
	CountVolunteerTeams(ctx context.Context, accountID string) (int, error)
}
