package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseStatus is the lifecycle state of an expense.
// pending -> approved | rejected; approved -> paid.
type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "pending"
	ExpenseApproved ExpenseStatus = "approved"
	ExpenseRejected ExpenseStatus = "rejected"
	ExpensePaid     ExpenseStatus = "paid"
)

// expenseTransitions enumerates the legal status moves.
var expenseTransitions = map[ExpenseStatus][]ExpenseStatus{
	ExpensePending:  {ExpenseApproved, ExpenseRejected},
	ExpenseApproved: {ExpensePaid},
}

// CanTransitionTo reports whether the status may move to next.
func (s ExpenseStatus) CanTransitionTo(next ExpenseStatus) bool {
	for _, allowed := range expenseTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Expense is a church-scoped spend request with an approval lifecycle.
type Expense struct {
	ExpenseID  string          `json:"expenseID"` // Primary Key (UUID)
	ChurchID   string          `json:"churchID"`
	Title      string          `json:"title"`
	Category   string          `json:"category,omitempty"`
	Vendor     string          `json:"vendor,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	IncurredAt time.Time       `json:"incurredAt"`
	Status     ExpenseStatus   `json:"status"`
	AuditFields
}

// ExpenseStatusChange is one append-only entry in an expense's status history.
type ExpenseStatusChange struct {
	ChangeID   string        `json:"changeID"`
	ExpenseID  string        `json:"expenseID"`
	FromStatus ExpenseStatus `json:"fromStatus"`
	ToStatus   ExpenseStatus `json:"toStatus"`
	Comment    string        `json:"comment,omitempty"`
	ChangedBy  string        `json:"changedBy"`
	ChangedAt  time.Time     `json:"changedAt"`
}

// ExpenseAttachment is a stored receipt/invoice file attached to an expense.
// Attachments are appended; deletion targets a single attachment by ID.
type ExpenseAttachment struct {
	AttachmentID string    `json:"attachmentID"`
	ExpenseID    string    `json:"expenseID"`
	FileName     string    `json:"fileName"`
	FileURL      string    `json:"fileURL"`
	UploadedBy   string    `json:"uploadedBy"`
	UploadedAt   time.Time `json:"uploadedAt"`
}
