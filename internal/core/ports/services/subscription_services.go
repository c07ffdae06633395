package services

import (
	"context"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
)

// EntitlementSvc decides whether plan limits permit an action. Failures to
// load the subscription or usage counts surface as errors and never resolve
// to an allow.
type EntitlementSvc interface {
	// CurrentPlan resolves the account's effective plan. Accounts without a
	// subscription record, or whose subscription is not active, are on the
	// free plan.
	CurrentPlan(ctx context.Context, accountID string) (domain.Plan, error)

	// Evaluate compares current usage against the plan limit for the action.
	Evaluate(ctx context.Context, accountID string, action domain.EntitlementAction) (domain.EntitlementDecision, error)

	// RequireEntitlement runs Evaluate and converts a denial into an
	// apperrors.EntitlementError.
	RequireEntitlement(ctx context.Context, accountID string, action domain.EntitlementAction) error

	// RequireMinimumPlan fails unless the account's effective plan is at
	// least the required plan.
	RequireMinimumPlan(ctx context.Context, accountID string, required domain.Plan) error

	// RequireActiveSubscription fails unless the account holds an active
	// paid subscription.
	RequireActiveSubscription(ctx context.Context, accountID string) error
}

// SubscriptionLifecycleSvc manages the subscription records themselves.
type SubscriptionLifecycleSvc interface {
	// GetCurrentSubscription returns the account's subscription record, or
	// ErrNotFound when the account never subscribed.
	GetCurrentSubscription(ctx context.Context, accountID string) (*domain.Subscription, error)

	// Subscribe starts (or replaces) a paid subscription for the account.
	Subscribe(ctx context.Context, accountID string, req dto.SubscribeRequest) (*domain.Subscription, error)

	// Cancel marks the account's active subscription cancelled. Access runs
	// until the period end.
	Cancel(ctx context.Context, accountID string) (*domain.Subscription, error)

	// Renew reactivates a cancelled or expired subscription for a new period.
	Renew(ctx context.Context, accountID string) (*domain.Subscription, error)

	// HandleGatewayEvent applies a payment-gateway webhook event to the
	// subscription it references.
	HandleGatewayEvent(ctx context.Context, req dto.PaymentWebhookRequest) error
}

// SubscriptionSvcFacade combines entitlement evaluation and lifecycle management.
type SubscriptionSvcFacade interface {
	EntitlementSvc
	SubscriptionLifecycleSvc
}
