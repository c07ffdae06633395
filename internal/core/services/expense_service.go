package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"github.com/shepherdsuite/church_mgmt_app/internal/apperrors"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portsrepo "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
	"github.com/shepherdsuite/church_mgmt_app/internal/platform/storage"
	"github.com/shepherdsuite/church_mgmt_app/internal/utils/pagination"
)

// expenseService implements the ExpenseSvcFacade interface
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepository
	churchRepo  portsrepo.ChurchRepository
	fileStore   storage.FileStore
}

// NewExpenseService creates a new expense service with the provided dependencies
func NewExpenseService(expenseRepo portsrepo.ExpenseRepository, churchRepo portsrepo.ChurchRepository, fileStore storage.FileStore, authorizer portssvc.ChurchAuthorizerSvc) portssvc.ExpenseSvcFacade {
	return &expenseService{
		BaseService: BaseService{ChurchAuthorizer: authorizer},
		expenseRepo: expenseRepo,
		churchRepo:  churchRepo,
		fileStore:   fileStore,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense raises a new expense in pending status.
func (s *expenseService) CreateExpense(ctx context.Context, churchID, requestingAccountID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleStaff); err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, apperrors.NewValidationFailedError("amount must be greater than zero")
	}

	church, err := s.churchRepo.FindChurchByID(ctx, churchID)
	if err != nil {
		return nil, err
	}

	incurredAt := time.Now()
	if req.IncurredAt != nil {
		incurredAt = *req.IncurredAt
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:  uuid.NewString(),
		ChurchID:   churchID,
		Title:      req.Title,
		Category:   req.Category,
		Vendor:     req.Vendor,
		Amount:     req.Amount,
		Currency:   church.CurrencyCode,
		IncurredAt: incurredAt,
		Status:     domain.ExpensePending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingAccountID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingAccountID,
		},
	}
	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("church_id", churchID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense created",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("church_id", churchID))
	return &expense, nil
}

// GetExpenseByID retrieves an expense within the church.
func (s *expenseService) GetExpenseByID(ctx context.Context, churchID, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, churchID, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find expense", slog.String("expense_id", expenseID))
		}
		return nil, err
	}
	return expense, nil
}

// ListExpenses retrieves a paginated list of the church's expenses.
func (s *expenseService) ListExpenses(ctx context.Context, churchID string, status *domain.ExpenseStatus, params pagination.Params) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx, churchID, status, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses", slog.String("church_id", churchID))
		return nil, err
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// UpdateExpense edits an expense's details. Only pending expenses may be edited.
func (s *expenseService) UpdateExpense(ctx context.Context, churchID, expenseID, requestingAccountID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleStaff); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, churchID, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.Status != domain.ExpensePending {
		return nil, apperrors.NewConflictError("only pending expenses can be edited")
	}

	if req.Title != "" {
		expense.Title = req.Title
	}
	if req.Category != "" {
		expense.Category = req.Category
	}
	if req.Vendor != "" {
		expense.Vendor = req.Vendor
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() || req.Amount.IsZero() {
			return nil, apperrors.NewValidationFailedError("amount must be greater than zero")
		}
		expense.Amount = *req.Amount
	}
	if req.IncurredAt != nil {
		expense.IncurredAt = *req.IncurredAt
	}
	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = requestingAccountID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, err
	}
	return expense, nil
}

// TransitionExpense moves the expense along its lifecycle. Approving,
// rejecting and paying require ADMIN; every move appends a history entry.
func (s *expenseService) TransitionExpense(ctx context.Context, churchID, expenseID, requestingAccountID string, next domain.ExpenseStatus, comment string) (*domain.Expense, error) {
	if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleAdmin); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, churchID, expenseID)
	if err != nil {
		return nil, err
	}
	if !expense.Status.CanTransitionTo(next) {
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("expense cannot move from %s to %s", expense.Status, next))
	}

	if err := s.expenseRepo.UpdateExpenseStatus(ctx, churchID, expenseID, next, requestingAccountID); err != nil {
		s.LogError(ctx, err, "Failed to update expense status", slog.String("expense_id", expenseID))
		return nil, err
	}

	change := domain.ExpenseStatusChange{
		ChangeID:   uuid.NewString(),
		ExpenseID:  expenseID,
		FromStatus: expense.Status,
		ToStatus:   next,
		Comment:    comment,
		ChangedBy:  requestingAccountID,
		ChangedAt:  time.Now(),
	}
	if err := s.expenseRepo.AddStatusChange(ctx, change); err != nil {
		s.LogError(ctx, err, "Failed to record expense status change", slog.String("expense_id", expenseID))
		return nil, err
	}

	expense.Status = next
	expense.LastUpdatedAt = change.ChangedAt
	expense.LastUpdatedBy = requestingAccountID

	s.LogInfo(ctx, "Expense status changed",
		slog.String("expense_id", expenseID),
		slog.String("from", string(change.FromStatus)),
		slog.String("to", string(next)))
	return expense, nil
}

// ListStatusHistory lists the expense's status changes, oldest first.
func (s *expenseService) ListStatusHistory(ctx context.Context, churchID, expenseID string) ([]domain.ExpenseStatusChange, error) {
	if _, err := s.expenseRepo.FindExpenseByID(ctx, churchID, expenseID); err != nil {
		return nil, err
	}
	return s.expenseRepo.ListStatusHistory(ctx, churchID, expenseID)
}

// AddAttachment uploads a receipt/invoice and records it against the expense.
func (s *expenseService) AddAttachment(ctx context.Context, churchID, expenseID, requestingAccountID, fileName string, file multipart.File) (*domain.ExpenseAttachment, error) {
	if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleStaff); err != nil {
		return nil, err
	}

	if _, err := s.expenseRepo.FindExpenseByID(ctx, churchID, expenseID); err != nil {
		return nil, err
	}

	fileURL, err := s.fileStore.Upload(ctx, file, "expense_attachments")
	if err != nil {
		s.LogError(ctx, err, "Failed to upload expense attachment", slog.String("expense_id", expenseID))
		return nil, apperrors.NewAppError(500, "failed to upload attachment", err)
	}

	attachment := domain.ExpenseAttachment{
		AttachmentID: uuid.NewString(),
		ExpenseID:    expenseID,
		FileName:     fileName,
		FileURL:      fileURL,
		UploadedBy:   requestingAccountID,
		UploadedAt:   time.Now(),
	}
	if err := s.expenseRepo.AddAttachment(ctx, churchID, attachment); err != nil {
		s.LogError(ctx, err, "Failed to record expense attachment", slog.String("expense_id", expenseID))
		return nil, err
	}
	return &attachment, nil
}

// ListAttachments lists the expense's stored attachments.
func (s *expenseService) ListAttachments(ctx context.Context, churchID, expenseID string) ([]domain.ExpenseAttachment, error) {
	if _, err := s.expenseRepo.FindExpenseByID(ctx, churchID, expenseID); err != nil {
		return nil, err
	}
	attachments, err := s.expenseRepo.ListAttachments(ctx, churchID, expenseID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expense attachments", slog.String("expense_id", expenseID))
		return nil, err
	}
	if attachments == nil {
		return []domain.ExpenseAttachment{}, nil
	}
	return attachments, nil
}

// DeleteAttachment removes a single attachment from the expense.
func (s *expenseService) DeleteAttachment(ctx context.Context, churchID, expenseID, attachmentID, requestingAccountID string) error {
	if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleStaff); err != nil {
		return err
	}
	if err := s.expenseRepo.DeleteAttachment(ctx, churchID, expenseID, attachmentID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete expense attachment", slog.String("attachment_id", attachmentID))
		}
		return err
	}
	return nil
}
