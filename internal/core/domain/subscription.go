package domain

import "time"

// Plan is a subscription tier. Plans form a strict order used for
// entitlement comparisons: free < starter < organisation.
type Plan string

const (
	PlanFree         Plan = "free"
	PlanStarter      Plan = "starter"
	PlanOrganisation Plan = "organisation"
)

// planOrdinals fixes the tier ordering. Unknown plans get ordinal -1 and
// therefore never satisfy a minimum-plan check.
var planOrdinals = map[Plan]int{
	PlanFree:         0,
	PlanStarter:      1,
	PlanOrganisation: 2,
}

// Ordinal returns the numeric rank of the plan, or -1 for unknown plans.
func (p Plan) Ordinal() int {
	ord, ok := planOrdinals[p]
	if !ok {
		return -1
	}
	return ord
}

// Valid reports whether the plan is a known tier.
func (p Plan) Valid() bool {
	_, ok := planOrdinals[p]
	return ok
}

// AtLeast reports whether the plan ranks at or above the required plan.
func (p Plan) AtLeast(required Plan) bool {
	return p.Valid() && required.Valid() && p.Ordinal() >= required.Ordinal()
}

// SubscriptionStatus is the lifecycle state of a subscription.
// active -> cancelled | expired; Renew moves either back to active with a
// fresh billing period. No transitions are time-driven inside this core.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionExpired   SubscriptionStatus = "expired"
)

// BillingCycle is the renewal interval of a subscription.
type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingAnnual  BillingCycle = "annual"
)

// PeriodLength returns the duration a billing cycle covers.
func (b BillingCycle) PeriodLength() time.Duration {
	if b == BillingAnnual {
		return 365 * 24 * time.Hour
	}
	return 30 * 24 * time.Hour
}

// Subscription is an account's paid (or free) plan record. An account has at
// most one subscription considered current at a time.
type Subscription struct {
	SubscriptionID string             `json:"subscriptionID"` // Primary Key (UUID)
	AccountID      string             `json:"accountID"`
	Plan           Plan               `json:"plan"`
	Status         SubscriptionStatus `json:"status"`
	BillingCycle   BillingCycle       `json:"billingCycle"`
	PeriodStart    time.Time          `json:"periodStart"`
	PeriodEnd      time.Time          `json:"periodEnd"`
	GatewayRef     string             `json:"gatewayRef,omitempty"` // payment gateway reference
	AuditFields
}

// EntitlementAction names a plan-gated creation action.
type EntitlementAction string

const (
	ActionCreateChurch        EntitlementAction = "create_church"
	ActionCreateCampaign      EntitlementAction = "create_campaign"
	ActionAddAdminStaff       EntitlementAction = "add_admin_staff"
	ActionCreateVolunteerTeam EntitlementAction = "create_volunteer_team"
)

// Unlimited marks a plan limit with no numeric cap.
const Unlimited = -1

// planLimits is the per-plan decision table for gated actions.
var planLimits = map[Plan]map[EntitlementAction]int{
	PlanFree: {
		ActionCreateChurch:        1,
		ActionCreateCampaign:      0,
		ActionAddAdminStaff:       0,
		ActionCreateVolunteerTeam: 1,
	},
	PlanStarter: {
		ActionCreateChurch:        3,
		ActionCreateCampaign:      5,
		ActionAddAdminStaff:       5,
		ActionCreateVolunteerTeam: 10,
	},
	PlanOrganisation: {
		ActionCreateChurch:        Unlimited,
		ActionCreateCampaign:      Unlimited,
		ActionAddAdminStaff:       Unlimited,
		ActionCreateVolunteerTeam: Unlimited,
	},
}

// LimitFor returns the usage cap the plan places on the action. Unknown plans
// fall back to the free tier; unknown actions are unlimited.
func LimitFor(plan Plan, action EntitlementAction) int {
	limits, ok := planLimits[plan]
	if !ok {
		limits = planLimits[PlanFree]
	}
	limit, ok := limits[action]
	if !ok {
		return Unlimited
	}
	return limit
}

// EntitlementDecision is the outcome of evaluating a gated action.
type EntitlementDecision struct {
	Allowed      bool   `json:"allowed"`
	Reason       string `json:"reason,omitempty"`
	Action       string `json:"action,omitempty"` // hint: subscribe / upgrade_subscription / renew_subscription
	CurrentPlan  Plan   `json:"currentPlan,omitempty"`
	RequiredPlan Plan   `json:"requiredPlan,omitempty"`
}
