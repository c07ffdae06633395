package dto

import (
	"time"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ManualRecordRequest defines data for a manual financial record.
type ManualRecordRequest struct {
	Kind        domain.FinancialRecordKind `json:"kind" binding:"required,oneof=income expense"`
	Source      string                     `json:"source" binding:"required,min=2,max=150"`
	Description string                     `json:"description" binding:"omitempty,max=500"`
	Amount      decimal.Decimal            `json:"amount" binding:"required"`
	RecordedFor string                     `json:"recordedFor" binding:"required,datetime=2006-01"` // month, e.g. "2026-08"
}

// ManualRecordResponse defines data returned for a manual financial record.
type ManualRecordResponse struct {
	RecordID    string                     `json:"recordID"`
	ChurchID    string                     `json:"churchID"`
	Kind        domain.FinancialRecordKind `json:"kind"`
	Source      string                     `json:"source"`
	Description string                     `json:"description,omitempty"`
	Amount      decimal.Decimal            `json:"amount"`
	Currency    string                     `json:"currency"`
	RecordedFor time.Time                  `json:"recordedFor"`
	CreatedAt   time.Time                  `json:"createdAt"`
}

// ToManualRecordResponse converts domain.ManualFinancialRecord to DTO.
func ToManualRecordResponse(r *domain.ManualFinancialRecord) ManualRecordResponse {
	return ManualRecordResponse{
		RecordID:    r.RecordID,
		ChurchID:    r.ChurchID,
		Kind:        r.Kind,
		Source:      r.Source,
		Description: r.Description,
		Amount:      r.Amount,
		Currency:    r.Currency,
		RecordedFor: r.RecordedFor,
		CreatedAt:   r.CreatedAt,
	}
}

// FinancialSummaryResponse is the reconciliation view for a period.
type FinancialSummaryResponse struct {
	ChurchID            string                 `json:"churchID"`
	PeriodStart         time.Time              `json:"periodStart"`
	PeriodEnd           time.Time              `json:"periodEnd"`
	DonationTotal       decimal.Decimal        `json:"donationTotal"`
	ExpenseTotal        decimal.Decimal        `json:"expenseTotal"`
	ManualIncome        decimal.Decimal        `json:"manualIncome"`
	ManualExpense       decimal.Decimal        `json:"manualExpense"`
	NetPosition         decimal.Decimal        `json:"netPosition"`
	DonationsByCategory []domain.CategoryTotal `json:"donationsByCategory"`
}

// ToFinancialSummaryResponse converts domain.FinancialSummary to DTO.
func ToFinancialSummaryResponse(s *domain.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		ChurchID:            s.ChurchID,
		PeriodStart:         s.PeriodStart,
		PeriodEnd:           s.PeriodEnd,
		DonationTotal:       s.DonationTotal,
		ExpenseTotal:        s.ExpenseTotal,
		ManualIncome:        s.ManualIncome,
		ManualExpense:       s.ManualExpense,
		NetPosition:         s.NetPosition,
		DonationsByCategory: s.DonationsByCat,
	}
}
