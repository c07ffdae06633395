package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shepherdsuite/church_mgmt_app/internal/apperrors"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
	"github.com/shepherdsuite/church_mgmt_app/internal/utils/pagination"
)

type NotificationServiceTestSuite struct {
	suite.Suite
	mockRepo        *MockNotificationRepository
	mockChurchRepo  *MockChurchRepository
	mockAccountRepo *MockAccountRepository
	mockMailer      *MockMailer
	mockAuthorizer  *MockChurchAuthorizer
	service         portssvc.NotificationSvcFacade

	churchID  string
	accountID string
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockNotificationRepository)
	suite.mockChurchRepo = new(MockChurchRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockMailer = new(MockMailer)
	suite.mockAuthorizer = new(MockChurchAuthorizer)
	suite.service = services.NewNotificationService(
		suite.mockRepo, suite.mockChurchRepo, suite.mockAccountRepo, suite.mockMailer, suite.mockAuthorizer)

	suite.churchID = uuid.NewString()
	suite.accountID = uuid.NewString()
}

func (suite *NotificationServiceTestSuite) memberships() []domain.ChurchMembership {
	return []domain.ChurchMembership{
		{AccountID: uuid.NewString(), ChurchID: suite.churchID, Role: domain.ChurchRoleAdmin},
		{AccountID: uuid.NewString(), ChurchID: suite.churchID, Role: domain.ChurchRoleMember},
		{AccountID: uuid.NewString(), ChurchID: suite.churchID, Role: domain.ChurchRoleRemoved},
	}
}

func (suite *NotificationServiceTestSuite) TestBroadcast_SkipsRemovedMemberships() {
	ctx := context.Background()
	req := dto.BroadcastNotificationRequest{
		Title:   "Service moved",
		Body:    "Sunday service starts at 10am this week.",
		Channel: domain.ChannelInApp,
	}

	suite.mockAuthorizer.On("AuthorizeAction", ctx, suite.accountID, suite.churchID, domain.ChurchRoleStaff).Return(nil).Once()
	suite.mockChurchRepo.On("ListMemberships", ctx, suite.churchID).Return(suite.memberships(), nil).Once()
	suite.mockRepo.On("SaveNotifications", ctx, mock.MatchedBy(func(ns []domain.Notification) bool {
		return len(ns) == 2
	})).Return(nil).Once()

	count, err := suite.service.Broadcast(ctx, suite.churchID, suite.accountID, req)

	suite.Require().NoError(err)
	suite.Equal(2, count)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockMailer.AssertNotCalled(suite.T(), "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestBroadcast_RoleFilter() {
	ctx := context.Background()
	memberships := suite.memberships()
	req := dto.BroadcastNotificationRequest{
		Title:   "Leaders meeting",
		Body:    "Leaders meet after service.",
		Channel: domain.ChannelInApp,
		Role:    domain.ChurchRoleAdmin,
	}

	suite.mockAuthorizer.On("AuthorizeAction", ctx, suite.accountID, suite.churchID, domain.ChurchRoleStaff).Return(nil).Once()
	suite.mockChurchRepo.On("ListMemberships", ctx, suite.churchID).Return(memberships, nil).Once()
	suite.mockRepo.On("SaveNotifications", ctx, mock.MatchedBy(func(ns []domain.Notification) bool {
		return len(ns) == 1 && ns[0].AccountID == memberships[0].AccountID
	})).Return(nil).Once()

	count, err := suite.service.Broadcast(ctx, suite.churchID, suite.accountID, req)

	suite.Require().NoError(err)
	suite.Equal(1, count)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestBroadcast_NoRecipientsSavesNothing() {
	ctx := context.Background()
	req := dto.BroadcastNotificationRequest{
		Title:   "Hello",
		Body:    "Anyone there?",
		Channel: domain.ChannelInApp,
		Role:    domain.ChurchRoleVolunteer,
	}

	suite.mockAuthorizer.On("AuthorizeAction", ctx, suite.accountID, suite.churchID, domain.ChurchRoleStaff).Return(nil).Once()
	suite.mockChurchRepo.On("ListMemberships", ctx, suite.churchID).Return(suite.memberships(), nil).Once()

	count, err := suite.service.Broadcast(ctx, suite.churchID, suite.accountID, req)

	suite.Require().NoError(err)
	suite.Zero(count)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveNotifications", mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestBroadcast_EmailFailureDoesNotFailBroadcast() {
	ctx := context.Background()
	memberships := []domain.ChurchMembership{
		{AccountID: uuid.NewString(), ChurchID: suite.churchID, Role: domain.ChurchRoleMember},
	}
	account := &domain.Account{AccountID: memberships[0].AccountID, Email: "member@example.com"}
	req := dto.BroadcastNotificationRequest{
		Title:   "Harvest",
		Body:    "Harvest service this Sunday.",
		Channel: domain.ChannelEmail,
	}

	suite.mockAuthorizer.On("AuthorizeAction", ctx, suite.accountID, suite.churchID, domain.ChurchRoleStaff).Return(nil).Once()
	suite.mockChurchRepo.On("ListMemberships", ctx, suite.churchID).Return(memberships, nil).Once()
	suite.mockRepo.On("SaveNotifications", ctx, mock.Anything).Return(nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockMailer.On("Send", ctx, account.Email, req.Title, req.Body).Return(assert.AnError).Once()

	count, err := suite.service.Broadcast(ctx, suite.churchID, suite.accountID, req)

	suite.Require().NoError(err)
	suite.Equal(1, count)
	suite.mockMailer.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestBroadcast_NotStaffForbidden() {
	ctx := context.Background()
	req := dto.BroadcastNotificationRequest{
		Title:   "Nope",
		Body:    "Not allowed.",
		Channel: domain.ChannelInApp,
	}

	suite.mockAuthorizer.On("AuthorizeAction", ctx, suite.accountID, suite.churchID, domain.ChurchRoleStaff).
		Return(apperrors.NewForbiddenError("requires STAFF role in this church")).Once()

	count, err := suite.service.Broadcast(ctx, suite.churchID, suite.accountID, req)

	suite.Require().Error(err)
	suite.Zero(count)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockChurchRepo.AssertNotCalled(suite.T(), "ListMemberships", mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestListMine_NilBecomesEmptySlice() {
	ctx := context.Background()
	params := pagination.Params{Page: 1, Limit: 10, Offset: 0}

	suite.mockRepo.On("ListNotificationsByAccount", ctx, suite.churchID, suite.accountID, true, 10, 0).
		Return(nil, nil).Once()

	notifications, err := suite.service.ListMine(ctx, suite.churchID, suite.accountID, true, params)

	suite.Require().NoError(err)
	suite.NotNil(notifications)
	suite.Empty(notifications)
}

func (suite *NotificationServiceTestSuite) TestMarkRead_ReturnsCurrentState() {
	ctx := context.Background()
	notificationID := uuid.NewString()
	readAt := time.Now().Add(-time.Hour)
	stored := &domain.Notification{
		NotificationID: notificationID,
		ChurchID:       suite.churchID,
		AccountID:      suite.accountID,
		ReadAt:         &readAt,
	}

	suite.mockRepo.On("MarkNotificationRead", ctx, suite.churchID, suite.accountID, notificationID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRepo.On("FindNotificationByID", ctx, suite.churchID, suite.accountID, notificationID).Return(stored, nil).Once()

	notification, err := suite.service.MarkRead(ctx, suite.churchID, suite.accountID, notificationID)

	suite.Require().NoError(err)
	suite.Require().NotNil(notification)
	// An earlier read keeps its original timestamp.
	suite.Equal(&readAt, notification.ReadAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestMarkRead_NotFound() {
	ctx := context.Background()
	notificationID := uuid.NewString()

	suite.mockRepo.On("MarkNotificationRead", ctx, suite.churchID, suite.accountID, notificationID, mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrNotFound).Once()

	notification, err := suite.service.MarkRead(ctx, suite.churchID, suite.accountID, notificationID)

	suite.Require().Error(err)
	suite.Nil(notification)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindNotificationByID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationService(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
