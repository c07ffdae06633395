package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
)

func TestExpenseStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.ExpenseStatus
		to   domain.ExpenseStatus
		want bool
	}{
		{"pending to approved", domain.ExpensePending, domain.ExpenseApproved, true},
		{"pending to rejected", domain.ExpensePending, domain.ExpenseRejected, true},
		{"pending straight to paid", domain.ExpensePending, domain.ExpensePaid, false},
		{"approved to paid", domain.ExpenseApproved, domain.ExpensePaid, true},
		{"approved back to pending", domain.ExpenseApproved, domain.ExpensePending, false},
		{"rejected is terminal", domain.ExpenseRejected, domain.ExpenseApproved, false},
		{"paid is terminal", domain.ExpensePaid, domain.ExpenseApproved, false},
		{"no self transition", domain.ExpensePending, domain.ExpensePending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestCampaignStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.CampaignStatus
		to   domain.CampaignStatus
		want bool
	}{
		{"draft to active", domain.CampaignDraft, domain.CampaignActive, true},
		{"draft to cancelled", domain.CampaignDraft, domain.CampaignCancelled, true},
		{"draft straight to completed", domain.CampaignDraft, domain.CampaignCompleted, false},
		{"draft straight to paused", domain.CampaignDraft, domain.CampaignPaused, false},
		{"active to paused", domain.CampaignActive, domain.CampaignPaused, true},
		{"active to completed", domain.CampaignActive, domain.CampaignCompleted, true},
		{"active to cancelled", domain.CampaignActive, domain.CampaignCancelled, true},
		{"active back to draft", domain.CampaignActive, domain.CampaignDraft, false},
		{"paused resumes to active", domain.CampaignPaused, domain.CampaignActive, true},
		{"paused to completed", domain.CampaignPaused, domain.CampaignCompleted, true},
		{"cancelled is terminal", domain.CampaignCancelled, domain.CampaignActive, false},
		{"completed is terminal", domain.CampaignCompleted, domain.CampaignActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}
