package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shepherdsuite/church_mgmt_app/internal/apperrors"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
	"github.com/shepherdsuite/church_mgmt_app/internal/utils/pagination"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockExpenseRepository
	mockChurchRepo *MockChurchRepository
	mockFileStore  *MockFileStore
	mockAuthorizer *MockChurchAuthorizer
	service        portssvc.ExpenseSvcFacade

	churchID  string
	accountID string
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExpenseRepository)
	suite.mockChurchRepo = new(MockChurchRepository)
	suite.mockFileStore = new(MockFileStore)
	suite.mockAuthorizer = new(MockChurchAuthorizer)
	suite.service = services.NewExpenseService(suite.mockRepo, suite.mockChurchRepo, suite.mockFileStore, suite.mockAuthorizer)

	suite.churchID = uuid.NewString()
	suite.accountID = uuid.NewString()
}

func (suite *ExpenseServiceTestSuite) pendingExpense() *domain.Expense {
	return &domain.Expense{
		ExpenseID:  uuid.NewString(),
		ChurchID:   suite.churchID,
		Title:      "Sound equipment repair",
		Amount:     decimal.NewFromInt(250),
		Currency:   "NGN",
		IncurredAt: time.Now(),
		Status:     domain.ExpensePending,
	}
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_Success() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Title:  "Generator fuel",
		Vendor: "Total Filling Station",
		Amount: decimal.NewFromInt(120),
	}

	suite.mockAuthorizer.On("AuthorizeAction", ctx, suite.accountID, suite.churchID, domain.ChurchRoleStaff).Return(nil).Once()
	suite.mockChurchRepo.On("FindChurchByID", ctx, suite.churchID).
		Return(&domain.Church{ChurchID: suite.churchID, CurrencyCode: "NGN"}, nil).Once()
	suite.mockRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.ChurchID == suite.churchID &&
			e.Status == domain.ExpensePending &&
			e.Currency == "NGN" &&
			e.CreatedBy == suite.accountID
	})).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.churchID, suite.accountID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.NotEmpty(expense.ExpenseID)
	suite.Equal(domain.ExpensePending, expense.Status)
	suite.Equal("NGN", expense.Currency)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockChurchRepo.AssertExpectations(suite.T())
	suite.mockAuthorizer.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_ZeroAmountRejected() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{Title: "Nothing", Amount: decimal.Zero}

	suite.mockAuthorizer.On("AuthorizeAction", ctx, suite.accountID, suite.churchID, domain.ChurchRoleStaff).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.churchID, suite.accountID, req)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_NotStaffForbidden() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{Title: "Chairs", Amount: decimal.NewFromInt(50)}
	forbidden := apperrors.NewForbiddenError("requires STAFF role in this church")

	suite.mockAuthorizer.On("AuthorizeAction", ctx, suite.accountID, suite.churchID, domain.ChurchRoleStaff).Return(forbidden).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.churchID, suite.accountID, req)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_ApprovedIsClosedToEdits() {
	ctx := context.Background()
	expense := suite.pendingExpense()
	expense.Status = domain.ExpenseApproved
	newTitle := "Changed title"

	suite.mockAuthorizer.On("AuthorizeAction", ctx, suite.accountID, suite.churchID, domain.ChurchRoleStaff).Return(nil).Once()
	suite.mockRepo.On("FindExpenseByID", ctx, suite.churchID, expense.ExpenseID).Return(expense, nil).Once()

	updated, err := suite.service.UpdateExpense(ctx, suite.churchID, expense.ExpenseID, suite.accountID, dto.UpdateExpenseRequest{Title: newTitle})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestTransitionExpense_PendingToApproved() {
	ctx := context.Background()
	expense := suite.pendingExpense()

	suite.mockAuthorizer.On("AuthorizeAction", ctx, suite.accountID, suite.churchID, domain.ChurchRoleAdmin).Return(nil).Once()
	suite.mockRepo.On("FindExpenseByID", ctx, suite.churchID, expense.ExpenseID).Return(expense, nil).Once()
	suite.mockRepo.On("UpdateExpenseStatus", ctx, suite.churchID, expense.ExpenseID, domain.ExpenseApproved, suite.accountID).Return(nil).Once()
	suite.mockRepo.On("AddStatusChange", ctx, mock.MatchedBy(func(change domain.ExpenseStatusChange) bool {
		return change.ExpenseID == expense.ExpenseID &&
			change.FromStatus == domain.ExpensePending &&
			change.ToStatus == domain.ExpenseApproved &&
			change.ChangedBy == suite.accountID
	})).Return(nil).Once()

	updated, err := suite.service.TransitionExpense(ctx, suite.churchID, expense.ExpenseID, suite.accountID, domain.ExpenseApproved, "looks fine")

	suite.Require().NoError(err)
	suite.Equal(domain.ExpenseApproved, updated.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestTransitionExpense_PendingToPaidIllegal() {
	ctx := context.Background()
	expense := suite.pendingExpense()

	suite.mockAuthorizer.On("AuthorizeAction", ctx, suite.accountID, suite.churchID, domain.ChurchRoleAdmin).Return(nil).Once()
	suite.mockRepo.On("FindExpenseByID", ctx, suite.churchID, expense.ExpenseID).Return(expense, nil).Once()

	updated, err := suite.service.TransitionExpense(ctx, suite.churchID, expense.ExpenseID, suite.accountID, domain.ExpensePaid, "")

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateExpenseStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestTransitionExpense_RejectedIsTerminal() {
	ctx := context.Background()
	expense := suite.pendingExpense()
	expense.Status = domain.ExpenseRejected

	suite.mockAuthorizer.On("AuthorizeAction", ctx, suite.accountID, suite.churchID, domain.ChurchRoleAdmin).Return(nil).Once()
	suite.mockRepo.On("FindExpenseByID", ctx, suite.churchID, expense.ExpenseID).Return(expense, nil).Once()

	updated, err := suite.service.TransitionExpense(ctx, suite.churchID, expense.ExpenseID, suite.accountID, domain.ExpenseApproved, "")

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *ExpenseServiceTestSuite) TestTransitionExpense_ApprovedToPaid() {
	ctx := context.Background()
	expense := suite.pendingExpense()
	expense.Status = domain.ExpenseApproved

	suite.mockAuthorizer.On("AuthorizeAction", ctx, suite.accountID, suite.churchID, domain.ChurchRoleAdmin).Return(nil).Once()
	suite.mockRepo.On("FindExpenseByID", ctx, suite.churchID, expense.ExpenseID).Return(expense, nil).Once()
	suite.mockRepo.On("UpdateExpenseStatus", ctx, suite.churchID, expense.ExpenseID, domain.ExpensePaid, suite.accountID).Return(nil).Once()
	suite.mockRepo.On("AddStatusChange", ctx, mock.AnythingOfType("domain.ExpenseStatusChange")).Return(nil).Once()

	updated, err := suite.service.TransitionExpense(ctx, suite.churchID, expense.ExpenseID, suite.accountID, domain.ExpensePaid, "")

	suite.Require().NoError(err)
	suite.Equal(domain.ExpensePaid, updated.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_NilBecomesEmptySlice() {
	ctx := context.Background()
	params := pagination.Params{Page: 1, Limit: 10, Offset: 0}

	suite.mockRepo.On("ListExpenses", ctx, suite.churchID, (*domain.ExpenseStatus)(nil), 10, 0).
		Return(nil, nil).Once()

	expenses, err := suite.service.ListExpenses(ctx, suite.churchID, nil, params)

	suite.Require().NoError(err)
	suite.NotNil(expenses)
	suite.Empty(expenses)
}

func (suite *ExpenseServiceTestSuite) TestAddAttachment_UploadsThenRecords() {
	ctx := context.Background()
	expense := suite.pendingExpense()

	suite.mockAuthorizer.On("AuthorizeAction", ctx, suite.accountID, suite.churchID, domain.ChurchRoleStaff).Return(nil).Once()
	suite.mockRepo.On("FindExpenseByID", ctx, suite.churchID, expense.ExpenseID).Return(expense, nil).Once()
	suite.mockFileStore.On("Upload", ctx, nil, "expense_attachments").
		Return("https://cdn.example.com/receipt.pdf", nil).Once()
	suite.mockRepo.On("AddAttachment", ctx, suite.churchID, mock.MatchedBy(func(a domain.ExpenseAttachment) bool {
		return a.ExpenseID == expense.ExpenseID &&
			a.FileName == "receipt.pdf" &&
			a.FileURL == "https://cdn.example.com/receipt.pdf" &&
			a.UploadedBy == suite.accountID
	})).Return(nil).Once()

	attachment, err := suite.service.AddAttachment(ctx, suite.churchID, expense.ExpenseID, suite.accountID, "receipt.pdf", nil)

	suite.Require().NoError(err)
	suite.Require().NotNil(attachment)
	suite.NotEmpty(attachment.AttachmentID)
	suite.mockFileStore.AssertExpectations(suite.T())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestAddAttachment_MissingExpense() {
	ctx := context.Background()
	expenseID := uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeAction", ctx, suite.accountID, suite.churchID, domain.ChurchRoleStaff).Return(nil).Once()
	suite.mockRepo.On("FindExpenseByID", ctx, suite.churchID, expenseID).Return(nil, apperrors.ErrNotFound).Once()

	attachment, err := suite.service.AddAttachment(ctx, suite.churchID, expenseID, suite.accountID, "receipt.pdf", nil)

	suite.Require().Error(err)
	suite.Nil(attachment)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockFileStore.AssertNotCalled(suite.T(), "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestExpenseService(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
