package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shepherdsuite/church_mgmt_app/internal/apperrors"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portsrepo "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
	"github.com/shepherdsuite/church_mgmt_app/internal/utils/pagination"
)

// financeService implements the FinanceSvcFacade interface
type financeService struct {
	BaseService
	financeRepo portsrepo.FinanceRepository
	churchRepo  portsrepo.ChurchRepository
}

// NewFinanceService creates a new finance service with the provided dependencies
func NewFinanceService(financeRepo portsrepo.FinanceRepository, churchRepo portsrepo.ChurchRepository, authorizer portssvc.ChurchAuthorizerSvc) portssvc.FinanceSvcFacade {
	return &financeService{
		BaseService: BaseService{ChurchAuthorizer: authorizer},
		financeRepo: financeRepo,
		churchRepo:  churchRepo,
	}
}

var _ portssvc.FinanceSvcFacade = (*financeService)(nil)

// parseRecordedFor turns a "YYYY-MM" month string into the first day of that
// month in UTC.
func parseRecordedFor(value string) (time.Time, error) {
	month, err := time.Parse("2006-01", value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationFailedError("recordedFor must be a month in YYYY-MM format")
	}
	return month.UTC(), nil
}

// CreateManualRecord enters a hand-recorded figure in the church's currency.
func (s *financeService) CreateManualRecord(ctx context.Context, churchID, requestingAccountID string, req dto.ManualRecordRequest) (*domain.ManualFinancialRecord, error) {
	if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleStaff); err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, apperrors.NewValidationFailedError("amount must be greater than zero")
	}

	recordedFor, err := parseRecordedFor(req.RecordedFor)
	if err != nil {
		return nil, err
	}

	church, err := s.churchRepo.FindChurchByID(ctx, churchID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record := domain.ManualFinancialRecord{
		RecordID:    uuid.NewString(),
		ChurchID:    churchID,
		Kind:        req.Kind,
		Source:      req.Source,
		Description: req.Description,
		Amount:      req.Amount,
		Currency:    church.CurrencyCode,
		RecordedFor: recordedFor,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingAccountID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingAccountID,
		},
	}
	if err := s.financeRepo.SaveManualRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save manual record", slog.String("church_id", churchID))
		return nil, err
	}

	s.LogInfo(ctx, "Manual financial record created",
		slog.String("record_id", record.RecordID),
		slog.String("church_id", churchID))
	return &record, nil
}

// ListManualRecords retrieves a paginated list of the church's manual records.
func (s *financeService) ListManualRecords(ctx context.Context, churchID string, params pagination.Params) ([]domain.ManualFinancialRecord, error) {
	records, err := s.financeRepo.ListManualRecords(ctx, churchID, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list manual records", slog.String("church_id", churchID))
		return nil, err
	}
	if records == nil {
		return []domain.ManualFinancialRecord{}, nil
	}
	return records, nil
}

// UpdateManualRecord edits a manual record.
func (s *financeService) UpdateManualRecord(ctx context.Context, churchID, recordID, requestingAccountID string, req dto.ManualRecordRequest) (*domain.ManualFinancialRecord, error) {
	if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleStaff); err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, apperrors.NewValidationFailedError("amount must be greater than zero")
	}

	record, err := s.financeRepo.FindManualRecordByID(ctx, churchID, recordID)
	if err != nil {
		return nil, err
	}

	recordedFor, err := parseRecordedFor(req.RecordedFor)
	if err != nil {
		return nil, err
	}

	record.Kind = req.Kind
	record.Source = req.Source
	record.Description = req.Description
	record.Amount = req.Amount
	record.RecordedFor = recordedFor
	record.LastUpdatedAt = time.Now()
	record.LastUpdatedBy = requestingAccountID

	if err := s.financeRepo.UpdateManualRecord(ctx, *record); err != nil {
		s.LogError(ctx, err, "Failed to update manual record", slog.String("record_id", recordID))
		return nil, err
	}
	return record, nil
}

// DeleteManualRecord removes a manual record.
func (s *financeService) DeleteManualRecord(ctx context.Context, churchID, recordID, requestingAccountID string) error {
	if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleAdmin); err != nil {
		return err
	}
	if err := s.financeRepo.DeleteManualRecord(ctx, churchID, recordID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete manual record", slog.String("record_id", recordID))
		}
		return err
	}
	return nil
}

// GetFinancialSummary aggregates donations, paid expenses and manual records
// over the period. Only paid expenses count against the books.
func (s *financeService) GetFinancialSummary(ctx context.Context, churchID string, from, to time.Time) (*domain.FinancialSummary, error) {
	if !to.After(from) {
		return nil, apperrors.NewValidationFailedError("period end must be after period start")
	}

	donationTotal, err := s.financeRepo.SumDonations(ctx, churchID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum donations", slog.String("church_id", churchID))
		return nil, err
	}
	expenseTotal, err := s.financeRepo.SumPaidExpenses(ctx, churchID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum paid expenses", slog.String("church_id", churchID))
		return nil, err
	}
	manualIncome, err := s.financeRepo.SumManualRecords(ctx, churchID, domain.RecordIncome, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum manual income", slog.String("church_id", churchID))
		return nil, err
	}
	manualExpense, err := s.financeRepo.SumManualRecords(ctx, churchID, domain.RecordExpense, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum manual expense", slog.String("church_id", churchID))
		return nil, err
	}
	byCategory, err := s.financeRepo.SumDonationsByCategory(ctx, churchID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum donations by category", slog.String("church_id", churchID))
		return nil, err
	}
	if byCategory == nil {
		byCategory = []domain.CategoryTotal{}
	}

	net := donationTotal.Add(manualIncome).Sub(expenseTotal).Sub(manualExpense)
	return &domain.FinancialSummary{
		ChurchID:       churchID,
		PeriodStart:    from,
		PeriodEnd:      to,
		DonationTotal:  donationTotal,
		ExpenseTotal:   expenseTotal,
		ManualIncome:   manualIncome,
		ManualExpense:  manualExpense,
		NetPosition:    net,
		DonationsByCat: byCategory,
	}, nil
}
