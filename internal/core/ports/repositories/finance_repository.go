package repositories

import (
	"context"
	"time"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DonationFilter narrows donation listings.
type DonationFilter struct {
	From       *time.Time
	To         *time.Time
	CategoryID *string
	CampaignID *string
	MemberID   *string
}

// DonationRepository defines persistence operations for donations.
type DonationRepository interface {
	SaveDonation(ctx context.Context, donation domain.Donation) error
	FindDonationByID(ctx context.Context, churchID, donationID string) (*domain.Donation, error)
	ListDonations(ctx context.Context, churchID string, filter DonationFilter, limit, offset int) ([]domain.Donation, error)
	UpdateDonation(ctx context.Context, donation domain.Donation) error
	DeleteDonation(ctx context.Context, churchID, donationID string) error
}

// ExpenseRepository defines persistence operations for expenses, their
// append-only status history and attachments.
type ExpenseRepository interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	FindExpenseByID(ctx context.Context, churchID, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, churchID string, status *domain.ExpenseStatus, limit, offset int) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	UpdateExpenseStatus(ctx context.Context, churchID, expenseID string, status domain.ExpenseStatus, updatedBy string) error
	AddStatusChange(ctx context.Context, change domain.ExpenseStatusChange) error
	ListStatusHistory(ctx context.Context, churchID, expenseID string) ([]domain.ExpenseStatusChange, error)

	AddAttachment(ctx context.Context, churchID string, attachment domain.ExpenseAttachment) error
	ListAttachments(ctx context.Context, churchID, expenseID string) ([]domain.ExpenseAttachment, error)
	DeleteAttachment(ctx context.Context, churchID, expenseID, attachmentID string) error
}

// CampaignRepository defines persistence operations for donation campaigns.
type CampaignRepository interface {
	SaveCampaign(ctx context.Context, campaign domain.DonationCampaign) error
	FindCampaignByID(ctx context.Context, churchID, campaignID string) (*domain.DonationCampaign, error)
	ListCampaigns(ctx context.Context, churchID string, limit, offset int) ([]domain.DonationCampaign, error)
	UpdateCampaign(ctx context.Context, campaign domain.DonationCampaign) error

	UpdateCampaignStatus(ctx context.Context, churchID, campaignID string, status domain.CampaignStatus, updatedBy string) error
	AddStatusChange(ctx context.Context, change domain.CampaignStatusChange) error
	ListStatusHistory(ctx context.Context, churchID, campaignID string) ([]domain.CampaignStatusChange, error)

	AddToRaisedAmount(ctx context.Context, churchID, campaignID string, amount decimal.Decimal) error
}

// FinanceRepository defines the aggregation queries behind reconciliation plus
// CRUD for manual financial records.
type FinanceRepository interface {
	SaveManualRecord(ctx context.Context, record domain.ManualFinancialRecord) error
	FindManualRecordByID(ctx context.Context, churchID, recordID string) (*domain.ManualFinancialRecord, error)
	ListManualRecords(ctx context.Context, churchID string, limit, offset int) ([]domain.ManualFinancialRecord, error)
	UpdateManualRecord(ctx context.Context, record domain.ManualFinancialRecord) error
	DeleteManualRecord(ctx context.Context, churchID, recordID string) error

	SumDonations(ctx context.Context, churchID string, from, to time.Time) (decimal.Decimal, error)
	SumDonationsByCategory(ctx context.Context, churchID string, from, to time.Time) ([]domain.CategoryTotal, error)
	SumPaidExpenses(ctx context.Context, churchID string, from, to time.Time) (decimal.Decimal, error)
	SumManualRecords(ctx context.Context, churchID string, kind domain.FinancialRecordKind, from, to time.Time) (decimal.Decimal, error)
}

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	SaveNotifications(ctx context.Context, notifications []domain.Notification) error
	FindNotificationByID(ctx context.Context, churchID, accountID, notificationID string) (*domain.Notification, error)
	ListNotificationsByAccount(ctx context.Context, churchID, accountID string, unreadOnly bool, limit, offset int) ([]domain.Notification, error)
	// MarkNotificationRead is idempotent: an already-read notification keeps
	// its original read timestamp.
	MarkNotificationRead(ctx context.Context, churchID, accountID, notificationID string, readAt time.Time) error
}
