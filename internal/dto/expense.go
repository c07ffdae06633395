package dto

import (
	"time"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines data for raising an expense.
type CreateExpenseRequest struct {
	Title      string          `json:"title" binding:"required,min=2,max=150"`
	Category   string          `json:"category" binding:"omitempty,max=100"`
	Vendor     string          `json:"vendor" binding:"omitempty,max=150"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	IncurredAt *time.Time      `json:"incurredAt"`
}

// UpdateExpenseRequest defines data for editing a pending expense.
type UpdateExpenseRequest struct {
	Title      string           `json:"title" binding:"omitempty,min=2,max=150"`
	Category   string           `json:"category" binding:"omitempty,max=100"`
	Vendor     string           `json:"vendor" binding:"omitempty,max=150"`
	Amount     *decimal.Decimal `json:"amount"`
	IncurredAt *time.Time       `json:"incurredAt"`
}

// ExpenseTransitionRequest carries the optional comment recorded with a
// status change (approve/reject/pay).
type ExpenseTransitionRequest struct {
	Comment string `json:"comment" binding:"omitempty,max=500"`
}

// ExpenseResponse defines data returned for an expense.
type ExpenseResponse struct {
	ExpenseID  string               `json:"expenseID"`
	ChurchID   string               `json:"churchID"`
	Title      string               `json:"title"`
	Category   string               `json:"category,omitempty"`
	Vendor     string               `json:"vendor,omitempty"`
	Amount     decimal.Decimal      `json:"amount"`
	Currency   string               `json:"currency"`
	IncurredAt time.Time            `json:"incurredAt"`
	Status     domain.ExpenseStatus `json:"status"`
	CreatedAt  time.Time            `json:"createdAt"`
	CreatedBy  string               `json:"createdBy"`
}

// ToExpenseResponse converts domain.Expense to DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:  e.ExpenseID,
		ChurchID:   e.ChurchID,
		Title:      e.Title,
		Category:   e.Category,
		Vendor:     e.Vendor,
		Amount:     e.Amount,
		Currency:   e.Currency,
		IncurredAt: e.IncurredAt,
		Status:     e.Status,
		CreatedAt:  e.CreatedAt,
		CreatedBy:  e.CreatedBy,
	}
}

// ExpenseStatusChangeResponse is one status-history entry.
type ExpenseStatusChangeResponse struct {
	ChangeID   string               `json:"changeID"`
	FromStatus domain.ExpenseStatus `json:"fromStatus"`
	ToStatus   domain.ExpenseStatus `json:"toStatus"`
	Comment    string               `json:"comment,omitempty"`
	ChangedBy  string               `json:"changedBy"`
	ChangedAt  time.Time            `json:"changedAt"`
}

// ExpenseAttachmentResponse is one stored attachment.
type ExpenseAttachmentResponse struct {
	AttachmentID string    `json:"attachmentID"`
	FileName     string    `json:"fileName"`
	FileURL      string    `json:"fileURL"`
	UploadedBy   string    `json:"uploadedBy"`
	UploadedAt   time.Time `json:"uploadedAt"`
}
