package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shepherdsuite/church_mgmt_app/internal/apperrors"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portsrepo "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
)

// subscriptionService implements the SubscriptionSvcFacade interface. It is
// the single place plan entitlements are decided.
type subscriptionService struct {
	BaseService
	subscriptionRepo portsrepo.SubscriptionRepository
	usageRepo        portsrepo.UsageCounters
}

// NewSubscriptionService creates a new subscription service with the provided dependencies
func NewSubscriptionService(
	subscriptionRepo portsrepo.SubscriptionRepository,
	usageRepo portsrepo.UsageCounters,
) portssvc.SubscriptionSvcFacade {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		usageRepo:        usageRepo,
	}
}

var _ portssvc.SubscriptionSvcFacade = (*subscriptionService)(nil)

// effectivePlan maps a subscription record to the plan the account actually
// enjoys right now. A cancelled subscription keeps its plan until the paid
// period ends; expired (or absent) records fall back to free.
func effectivePlan(sub *domain.Subscription, now time.Time) domain.Plan {
	if sub == nil {
		return domain.PlanFree
	}
	switch sub.Status {
	case domain.SubscriptionActive:
		if now.Before(sub.PeriodEnd) {
			return sub.Plan
		}
	case domain.SubscriptionCancelled:
		if now.Before(sub.PeriodEnd) {
			return sub.Plan
		}
	}
	return domain.PlanFree
}

// CurrentPlan resolves the account's effective plan. Lookup failures surface
// as errors so a broken subscription store can never silently grant access.
func (s *subscriptionService) CurrentPlan(ctx context.Context, accountID string) (domain.Plan, error) {
	sub, err := s.subscriptionRepo.FindCurrentByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.PlanFree, nil
		}
		s.LogError(ctx, err, "Failed to load subscription for plan resolution",
			slog.String("account_id", accountID))
		return "", fmt.Errorf("failed to resolve current plan: %w", err)
	}
	return effectivePlan(sub, time.Now()), nil
}

// usageFor returns the current count the plan limit for the action compares against.
func (s *subscriptionService) usageFor(ctx context.Context, accountID string, action domain.EntitlementAction) (int, error) {
	switch action {
	case domain.ActionCreateChurch:
		return s.usageRepo.CountChurches(ctx, accountID)
	case domain.ActionCreateCampaign:
		return s.usageRepo.CountCampaigns(ctx, accountID)
	case domain.ActionAddAdminStaff:
		return s.usageRepo.CountAdminStaff(ctx, accountID)
	case domain.ActionCreateVolunteerTeam:
		return s.usageRepo.CountVolunteerTeams(ctx, accountID)
	}
	return 0, fmt.Errorf("unknown entitlement action %q", action)
}

// requiredPlanFor returns the cheapest plan whose limit would permit one more
// of the action given the current usage.
func requiredPlanFor(action domain.EntitlementAction, currentUsage int) domain.Plan {
	for _, plan := range []domain.Plan{domain.PlanStarter, domain.PlanOrganisation} {
		limit := domain.LimitFor(plan, action)
		if limit == domain.Unlimited || currentUsage < limit {
			return plan
		}
	}
	return domain.PlanOrganisation
}

// Evaluate compares current usage against the plan limit for the action.
func (s *subscriptionService) Evaluate(ctx context.Context, accountID string, action domain.EntitlementAction) (domain.EntitlementDecision, error) {
	plan, err := s.CurrentPlan(ctx, accountID)
	if err != nil {
		return domain.EntitlementDecision{}, err
	}

	limit := domain.LimitFor(plan, action)
	if limit == domain.Unlimited {
		return domain.EntitlementDecision{Allowed: true, CurrentPlan: plan}, nil
	}

	usage, err := s.usageFor(ctx, accountID, action)
	if err != nil {
		s.LogError(ctx, err, "Failed to count usage for entitlement check",
			slog.String("account_id", accountID),
			slog.String("action", string(action)))
		return domain.EntitlementDecision{}, fmt.Errorf("failed to evaluate entitlement: %w", err)
	}

	if usage < limit {
		return domain.EntitlementDecision{Allowed: true, CurrentPlan: plan}, nil
	}

	hint := "upgrade_subscription"
	if plan == domain.PlanFree {
		hint = "subscribe"
	}
	decision := domain.EntitlementDecision{
		Allowed:      false,
		Reason:       "plan_limit_reached",
		Action:       hint,
		CurrentPlan:  plan,
		RequiredPlan: requiredPlanFor(action, usage),
	}
	s.LogInfo(ctx, "Entitlement denied",
		slog.String("account_id", accountID),
		slog.String("action", string(action)),
		slog.String("plan", string(plan)),
		slog.Int("usage", usage),
		slog.Int("limit", limit))
	return decision, nil
}

// entitlementNouns words each gated action for denial messages.
var entitlementNouns = map[domain.EntitlementAction]struct{ singular, plural string }{
	domain.ActionCreateChurch:        {"church", "churches"},
	domain.ActionCreateCampaign:      {"campaign", "campaigns"},
	domain.ActionAddAdminStaff:       {"admin or staff member", "admin or staff members"},
	domain.ActionCreateVolunteerTeam: {"volunteer team", "volunteer teams"},
}

// denialMessage names the cap that was hit, e.g. "the free plan allows at
// most 1 church".
func denialMessage(plan domain.Plan, action domain.EntitlementAction) string {
	nouns, ok := entitlementNouns[action]
	if !ok {
		return "your current plan does not allow this action"
	}
	limit := domain.LimitFor(plan, action)
	switch limit {
	case 0:
		return fmt.Sprintf("the %s plan does not include %s", plan, nouns.plural)
	case 1:
		return fmt.Sprintf("the %s plan allows at most 1 %s", plan, nouns.singular)
	default:
		return fmt.Sprintf("the %s plan allows at most %d %s", plan, limit, nouns.plural)
	}
}

// RequireEntitlement converts an Evaluate denial into an EntitlementError.
func (s *subscriptionService) RequireEntitlement(ctx context.Context, accountID string, action domain.EntitlementAction) error {
	decision, err := s.Evaluate(ctx, accountID, action)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return apperrors.NewEntitlementDeniedError(
			denialMessage(decision.CurrentPlan, action),
			decision.Reason,
			decision.Action,
			string(decision.CurrentPlan),
			string(decision.RequiredPlan),
		)
	}
	return nil
}

// RequireMinimumPlan fails unless the account's effective plan ranks at or
// above the required plan.
func (s *subscriptionService) RequireMinimumPlan(ctx context.Context, accountID string, required domain.Plan) error {
	plan, err := s.CurrentPlan(ctx, accountID)
	if err != nil {
		return err
	}
	if plan.AtLeast(required) {
		return nil
	}
	hint := "upgrade_subscription"
	if plan == domain.PlanFree {
		hint = "subscribe"
	}
	return apperrors.NewEntitlementDeniedError(
		"this feature requires the "+string(required)+" plan",
		"minimum_plan_not_met",
		hint,
		string(plan),
		string(required),
	)
}

// RequireActiveSubscription fails unless the account holds an active paid subscription.
func (s *subscriptionService) RequireActiveSubscription(ctx context.Context, accountID string) error {
	sub, err := s.subscriptionRepo.FindCurrentByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewEntitlementDeniedError(
				"an active subscription is required",
				"no_subscription",
				"subscribe",
				string(domain.PlanFree),
				string(domain.PlanStarter),
			)
		}
		s.LogError(ctx, err, "Failed to load subscription for active check",
			slog.String("account_id", accountID))
		return fmt.Errorf("failed to check subscription: %w", err)
	}
	if sub.Status != domain.SubscriptionActive || !time.Now().Before(sub.PeriodEnd) {
		return apperrors.NewEntitlementDeniedError(
			"your subscription is not active",
			"subscription_inactive",
			"renew_subscription",
			string(effectivePlan(sub, time.Now())),
			string(sub.Plan),
		)
	}
	return nil
}

// GetCurrentSubscription returns the account's subscription record.
func (s *subscriptionService) GetCurrentSubscription(ctx context.Context, accountID string) (*domain.Subscription, error) {
	return s.subscriptionRepo.FindCurrentByAccountID(ctx, accountID)
}

// Subscribe starts (or replaces) a paid subscription for the account.
func (s *subscriptionService) Subscribe(ctx context.Context, accountID string, req dto.SubscribeRequest) (*domain.Subscription, error) {
	plan := domain.Plan(req.Plan)
	if !plan.Valid() || plan == domain.PlanFree {
		return nil, apperrors.NewValidationFailedError("plan must be starter or organisation")
	}

	now := time.Now()
	cycle := domain.BillingCycle(req.BillingCycle)

	current, err := s.subscriptionRepo.FindCurrentByAccountID(ctx, accountID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load subscription before subscribe",
			slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to load current subscription: %w", err)
	}

	// Re-subscribing while active is a plan change: the existing record is
	// updated in place with a fresh period.
	if current != nil && current.Status == domain.SubscriptionActive && now.Before(current.PeriodEnd) {
		current.Plan = plan
		current.BillingCycle = cycle
		current.PeriodStart = now
		current.PeriodEnd = now.Add(cycle.PeriodLength())
		if req.GatewayRef != "" {
			current.GatewayRef = req.GatewayRef
		}
		current.LastUpdatedAt = now
		current.LastUpdatedBy = accountID
		if err := s.subscriptionRepo.UpdateSubscription(ctx, *current); err != nil {
			return nil, err
		}
		s.LogInfo(ctx, "Subscription plan changed",
			slog.String("account_id", accountID),
			slog.String("plan", string(plan)))
		return current, nil
	}

	sub := domain.Subscription{
		SubscriptionID: uuid.NewString(),
		AccountID:      accountID,
		Plan:           plan,
		Status:         domain.SubscriptionActive,
		BillingCycle:   cycle,
		PeriodStart:    now,
		PeriodEnd:      now.Add(cycle.PeriodLength()),
		GatewayRef:     req.GatewayRef,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     accountID,
			LastUpdatedAt: now,
			LastUpdatedBy: accountID,
		},
	}
	if err := s.subscriptionRepo.SaveSubscription(ctx, sub); err != nil {
		s.LogError(ctx, err, "Failed to save subscription",
			slog.String("account_id", accountID))
		return nil, err
	}
	s.LogInfo(ctx, "Subscription started",
		slog.String("account_id", accountID),
		slog.String("plan", string(plan)),
		slog.String("billing_cycle", string(cycle)))
	return &sub, nil
}

// Cancel marks the account's active subscription cancelled. The plan's
// entitlements run until the period end.
func (s *subscriptionService) Cancel(ctx context.Context, accountID string) (*domain.Subscription, error) {
	sub, err := s.subscriptionRepo.FindCurrentByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if sub.Status != domain.SubscriptionActive {
		return nil, apperrors.NewValidationFailedError("no active subscription to cancel")
	}

	now := time.Now()
	sub.Status = domain.SubscriptionCancelled
	sub.LastUpdatedAt = now
	sub.LastUpdatedBy = accountID
	if err := s.subscriptionRepo.UpdateSubscription(ctx, *sub); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Subscription cancelled", slog.String("account_id", accountID))
	return sub, nil
}

// Renew reactivates a cancelled or expired subscription for a fresh billing period.
func (s *subscriptionService) Renew(ctx context.Context, accountID string) (*domain.Subscription, error) {
	sub, err := s.subscriptionRepo.FindCurrentByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if sub.Status == domain.SubscriptionActive && time.Now().Before(sub.PeriodEnd) {
		return nil, apperrors.NewConflictError("subscription is already active")
	}

	now := time.Now()
	sub.Status = domain.SubscriptionActive
	sub.PeriodStart = now
	sub.PeriodEnd = now.Add(sub.BillingCycle.PeriodLength())
	sub.LastUpdatedAt = now
	sub.LastUpdatedBy = accountID
	if err := s.subscriptionRepo.UpdateSubscription(ctx, *sub); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Subscription renewed",
		slog.String("account_id", accountID),
		slog.String("plan", string(sub.Plan)))
	return sub, nil
}

// HandleGatewayEvent applies a payment-gateway webhook event to the
// subscription it references.
func (s *subscriptionService) HandleGatewayEvent(ctx context.Context, req dto.PaymentWebhookRequest) error {
	sub, err := s.subscriptionRepo.FindByGatewayRef(ctx, req.GatewayRef)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Gateway event for unknown subscription",
				slog.String("gateway_ref", req.GatewayRef),
				slog.String("event", req.Event))
		}
		return err
	}

	now := time.Now()
	switch req.Event {
	case "payment.succeeded":
		sub.Status = domain.SubscriptionActive
		sub.PeriodStart = now
		sub.PeriodEnd = now.Add(sub.BillingCycle.PeriodLength())
	case "payment.failed":
		// Payment failures leave the subscription untouched until the
		// gateway reports expiry; the period end already bounds access.
		s.LogWarn(ctx, "Payment failed for subscription",
			slog.String("subscription_id", sub.SubscriptionID),
			slog.String("gateway_ref", req.GatewayRef))
		return nil
	case "subscription.expired":
		sub.Status = domain.SubscriptionExpired
	default:
		return apperrors.NewValidationFailedError("unknown gateway event " + req.Event)
	}

	sub.LastUpdatedAt = now
	sub.LastUpdatedBy = "payment-gateway"
	if err := s.subscriptionRepo.UpdateSubscription(ctx, *sub); err != nil {
		s.LogError(ctx, err, "Failed to apply gateway event",
			slog.String("subscription_id", sub.SubscriptionID),
			slog.String("event", req.Event))
		return err
	}
	s.LogInfo(ctx, "Gateway event applied",
		slog.String("subscription_id", sub.SubscriptionID),
		slog.String("event", req.Event))
	return nil
}
