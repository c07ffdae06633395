package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialRecordKind distinguishes manual income from manual expense entries.
type FinancialRecordKind string

const (
	RecordIncome  FinancialRecordKind = "income"
	RecordExpense FinancialRecordKind = "expense"
)

// ManualFinancialRecord is a hand-entered figure used to reconcile the books
// against money that never passed through the donation or expense flows.
type ManualFinancialRecord struct {
	RecordID    string              `json:"recordID"` // Primary Key (UUID)
	ChurchID    string              `json:"churchID"`
	Kind        FinancialRecordKind `json:"kind"`
	Source      string              `json:"source"`
	Description string              `json:"description,omitempty"`
	Amount      decimal.Decimal     `json:"amount"`
	Currency    string              `json:"currency"`
	RecordedFor time.Time           `json:"recordedFor"` // first day of the month the figure covers
	AuditFields
}

// CategoryTotal is one line of a per-category breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// FinancialSummary is the reconciliation view for a church over a period.
// Only paid expenses count against the books.
type FinancialSummary struct {
	ChurchID       string          `json:"churchID"`
	PeriodStart    time.Time       `json:"periodStart"`
	PeriodEnd      time.Time       `json:"periodEnd"`
	DonationTotal  decimal.Decimal `json:"donationTotal"`
	ExpenseTotal   decimal.Decimal `json:"expenseTotal"`
	ManualIncome   decimal.Decimal `json:"manualIncome"`
	ManualExpense  decimal.Decimal `json:"manualExpense"`
	NetPosition    decimal.Decimal `json:"netPosition"`
	DonationsByCat []CategoryTotal `json:"donationsByCategory"`
}
