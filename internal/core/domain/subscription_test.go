package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
)

func TestPlan_AtLeast(t *testing.T) {
	tests := []struct {
		name     string
		plan     domain.Plan
		required domain.Plan
		want     bool
	}{
		{
			name:     "free meets free",
			plan:     domain.PlanFree,
			required: domain.PlanFree,
			want:     true,
		},
		{
			name:     "free below starter",
			plan:     domain.PlanFree,
			required: domain.PlanStarter,
			want:     false,
		},
		{
			name:     "starter meets starter",
			plan:     domain.PlanStarter,
			required: domain.PlanStarter,
			want:     true,
		},
		{
			name:     "organisation meets starter",
			plan:     domain.PlanOrganisation,
			required: domain.PlanStarter,
			want:     true,
		},
		{
			name:     "unknown plan meets nothing",
			plan:     domain.Plan("enterprise"),
			required: domain.PlanFree,
			want:     false,
		},
		{
			name:     "nothing meets an unknown requirement",
			plan:     domain.PlanOrganisation,
			required: domain.Plan("enterprise"),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.plan.AtLeast(tt.required))
		})
	}
}

func TestPlan_Ordinal(t *testing.T) {
	assert.Equal(t, 0, domain.PlanFree.Ordinal())
	assert.Equal(t, 1, domain.PlanStarter.Ordinal())
	assert.Equal(t, 2, domain.PlanOrganisation.Ordinal())
	assert.Equal(t, -1, domain.Plan("enterprise").Ordinal())
}

func TestLimitFor(t *testing.T) {
	tests := []struct {
		name   string
		plan   domain.Plan
		action domain.EntitlementAction
		want   int
	}{
		{
			name:   "free plan allows one church",
			plan:   domain.PlanFree,
			action: domain.ActionCreateChurch,
			want:   1,
		},
		{
			name:   "free plan allows no campaigns",
			plan:   domain.PlanFree,
			action: domain.ActionCreateCampaign,
			want:   0,
		},
		{
			name:   "starter plan caps campaigns at five",
			plan:   domain.PlanStarter,
			action: domain.ActionCreateCampaign,
			want:   5,
		},
		{
			name:   "organisation plan is uncapped",
			plan:   domain.PlanOrganisation,
			action: domain.ActionCreateChurch,
			want:   domain.Unlimited,
		},
		{
			name:   "unknown plan falls back to free limits",
			plan:   domain.Plan("enterprise"),
			action: domain.ActionCreateCampaign,
			want:   0,
		},
		{
			name:   "unknown action is unlimited",
			plan:   domain.PlanStarter,
			action: domain.EntitlementAction("export_reports"),
			want:   domain.Unlimited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.LimitFor(tt.plan, tt.action))
		})
	}
}

func TestBillingCycle_PeriodLength(t *testing.T) {
	assert.Equal(t, 30*24, int(domain.BillingMonthly.PeriodLength().Hours()))
	assert.Equal(t, 365*24, int(domain.BillingAnnual.PeriodLength().Hours()))
}
