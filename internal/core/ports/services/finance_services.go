package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/ports/repositories"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
	"github.com/shepherdsuite/church_mgmt_app/internal/utils/pagination"
)

// DonationSvcFacade defines operations for recording and querying donations.
type DonationSvcFacade interface {
	// RecordDonation persists a donation. A campaign reference also adds the
	// amount to the campaign's raised total.
	RecordDonation(ctx context.Context, churchID, requestingAccountID string, req dto.CreateDonationRequest) (*domain.Donation, error)
	GetDonationByID(ctx context.Context, churchID, donationID string) (*domain.Donation, error)
	ListDonations(ctx context.Context, churchID string, filter repositories.DonationFilter, params pagination.Params) ([]domain.Donation, error)
	UpdateDonation(ctx context.Context, churchID, donationID, requestingAccountID string, req dto.UpdateDonationRequest) (*domain.Donation, error)
	DeleteDonation(ctx context.Context, churchID, donationID, requestingAccountID string) error
}

// ExpenseReaderSvc defines read operations for expenses
type ExpenseReaderSvc interface {
	GetExpenseByID(ctx context.Context, churchID, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, churchID string, status *domain.ExpenseStatus, params pagination.Params) ([]domain.Expense, error)
	ListStatusHistory(ctx context.Context, churchID, expenseID string) ([]domain.ExpenseStatusChange, error)
}

// ExpenseWriterSvc defines write operations for expenses
type ExpenseWriterSvc interface {
	CreateExpense(ctx context.Context, churchID, requestingAccountID string, req dto.CreateExpenseRequest) (*domain.Expense, error)
	// UpdateExpense edits an expense's details. Only pending expenses may be edited.
	UpdateExpense(ctx context.Context, churchID, expenseID, requestingAccountID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)
	// TransitionExpense moves the expense along its lifecycle and appends a
	// status-history entry.
	TransitionExpense(ctx context.Context, churchID, expenseID, requestingAccountID string, next domain.ExpenseStatus, comment string) (*domain.Expense, error)
}

// ExpenseAttachmentSvc defines operations for expense receipts/invoices.
type ExpenseAttachmentSvc interface {
	AddAttachment(ctx context.Context, churchID, expenseID, requestingAccountID, fileName string, file multipart.File) (*domain.ExpenseAttachment, error)
	ListAttachments(ctx context.Context, churchID, expenseID string) ([]domain.ExpenseAttachment, error)
	DeleteAttachment(ctx context.Context, churchID, expenseID, attachmentID, requestingAccountID string) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
	ExpenseAttachmentSvc
}

// CampaignSvcFacade defines operations for donation campaigns.
type CampaignSvcFacade interface {
	// CreateCampaign persists a new draft campaign. Creation is gated on the
	// church creator's plan entitlements.
	CreateCampaign(ctx context.Context, churchID, requestingAccountID string, req dto.CreateCampaignRequest) (*domain.DonationCampaign, error)
	GetCampaignByID(ctx context.Context, churchID, campaignID string) (*domain.DonationCampaign, error)
	ListCampaigns(ctx context.Context, churchID string, params pagination.Params) ([]domain.DonationCampaign, error)
	UpdateCampaign(ctx context.Context, churchID, campaignID, requestingAccountID string, req dto.UpdateCampaignRequest) (*domain.DonationCampaign, error)
	// TransitionCampaign moves the campaign along its lifecycle and appends a
	// status-history entry.
	TransitionCampaign(ctx context.Context, churchID, campaignID, requestingAccountID string, next domain.CampaignStatus, comment string) (*domain.DonationCampaign, error)
	ListCampaignHistory(ctx context.Context, churchID, campaignID string) ([]domain.CampaignStatusChange, error)
}

// FinanceSvcFacade defines manual financial records and reconciliation.
type FinanceSvcFacade interface {
	CreateManualRecord(ctx context.Context, churchID, requestingAccountID string, req dto.ManualRecordRequest) (*domain.ManualFinancialRecord, error)
	ListManualRecords(ctx context.Context, churchID string, params pagination.Params) ([]domain.ManualFinancialRecord, error)
	UpdateManualRecord(ctx context.Context, churchID, recordID, requestingAccountID string, req dto.ManualRecordRequest) (*domain.ManualFinancialRecord, error)
	DeleteManualRecord(ctx context.Context, churchID, recordID, requestingAccountID string) error

	// GetFinancialSummary aggregates donations, paid expenses and manual
	// records over the period.
	GetFinancialSummary(ctx context.Context, churchID string, from, to time.Time) (*domain.FinancialSummary, error)
}
