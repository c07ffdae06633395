package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shepherdsuite/church_mgmt_app/internal/apperrors"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
	"github.com/shepherdsuite/church_mgmt_app/internal/utils/pagination"
)

type TeamServiceTestSuite struct {
	suite.Suite
	mockRepo        *MockTeamRepository
	mockChurchRepo  *MockChurchRepository
	mockEntitlement *MockEntitlementSvc
	mockAuthorizer  *MockChurchAuthorizer
	service         portssvc.TeamSvcFacade

	churchID  string
	creatorID string
	accountID string
}

func (suite *TeamServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTeamRepository)
	suite.mockChurchRepo = new(MockChurchRepository)
	suite.mockEntitlement = new(MockEntitlementSvc)
	suite.mockAuthorizer = new(MockChurchAuthorizer)
	suite.service = services.NewTeamService(suite.mockRepo, suite.mockChurchRepo, suite.mockEntitlement, suite.mockAuthorizer)

	suite.churchID = uuid.NewString()
	suite.creatorID = uuid.NewString()
	suite.accountID = uuid.NewString()
}

func (suite *TeamServiceTestSuite) expectStaff(ctx context.Context) {
	suite.mockAuthorizer.On("AuthorizeAction", ctx, suite.accountID, suite.churchID, domain.ChurchRoleStaff).Return(nil).Once()
}

func (suite *TeamServiceTestSuite) TestCreateTeam_GatesOnChurchCreatorPlan() {
	ctx := context.Background()
	req := dto.CreateTeamRequest{Name: "Ushering", Description: "Welcomes and seats worshippers"}

	suite.expectStaff(ctx)
	suite.mockChurchRepo.On("FindChurchByID", ctx, suite.churchID).
		Return(&domain.Church{ChurchID: suite.churchID, AuditFields: domain.AuditFields{CreatedBy: suite.creatorID}}, nil).Once()
	suite.mockEntitlement.On("RequireEntitlement", ctx, suite.creatorID, domain.ActionCreateVolunteerTeam).Return(nil).Once()
	suite.mockRepo.On("SaveTeam", ctx, mock.MatchedBy(func(t domain.VolunteerTeam) bool {
		return t.ChurchID == suite.churchID &&
			t.Name == "Ushering" &&
			t.IsActive &&
			t.CreatedBy == suite.accountID
	})).Return(nil).Once()

	team, err := suite.service.CreateTeam(ctx, suite.churchID, suite.accountID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(team)
	suite.True(team.IsActive)
	suite.mockEntitlement.AssertExpectations(suite.T())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TeamServiceTestSuite) TestCreateTeam_PlanLimitReached() {
	ctx := context.Background()
	req := dto.CreateTeamRequest{Name: "Choir"}
	denied := apperrors.NewEntitlementDeniedError("your current plan does not allow this action",
		"plan_limit_reached", "upgrade_subscription", "free", "starter")

	suite.expectStaff(ctx)
	suite.mockChurchRepo.On("FindChurchByID", ctx, suite.churchID).
		Return(&domain.Church{ChurchID: suite.churchID, AuditFields: domain.AuditFields{CreatedBy: suite.creatorID}}, nil).Once()
	suite.mockEntitlement.On("RequireEntitlement", ctx, suite.creatorID, domain.ActionCreateVolunteerTeam).Return(denied).Once()

	team, err := suite.service.CreateTeam(ctx, suite.churchID, suite.accountID, req)

	suite.Require().Error(err)
	suite.Nil(team)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTeam", mock.Anything, mock.Anything)
}

func (suite *TeamServiceTestSuite) TestCreateTeam_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateTeamRequest{Name: "Ushering"}

	suite.expectStaff(ctx)
	suite.mockChurchRepo.On("FindChurchByID", ctx, suite.churchID).
		Return(&domain.Church{ChurchID: suite.churchID, AuditFields: domain.AuditFields{CreatedBy: suite.creatorID}}, nil).Once()
	suite.mockEntitlement.On("RequireEntitlement", ctx, suite.creatorID, domain.ActionCreateVolunteerTeam).Return(nil).Once()
	suite.mockRepo.On("SaveTeam", ctx, mock.AnythingOfType("domain.VolunteerTeam")).
		Return(apperrors.NewConflictError("a team with this name already exists in this church")).Once()

	team, err := suite.service.CreateTeam(ctx, suite.churchID, suite.accountID, req)

	suite.Require().Error(err)
	suite.Nil(team)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *TeamServiceTestSuite) TestUpdateTeam_Deactivate() {
	ctx := context.Background()
	teamID := uuid.NewString()
	inactive := false
	stored := &domain.VolunteerTeam{
		TeamID:   teamID,
		ChurchID: suite.churchID,
		Name:     "Ushering",
		IsActive: true,
	}

	suite.expectStaff(ctx)
	suite.mockRepo.On("FindTeamByID", ctx, suite.churchID, teamID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateTeam", ctx, mock.MatchedBy(func(t domain.VolunteerTeam) bool {
		return !t.IsActive && t.Name == "Ushering" && t.LastUpdatedBy == suite.accountID
	})).Return(nil).Once()

	team, err := suite.service.UpdateTeam(ctx, suite.churchID, teamID, suite.accountID, dto.UpdateTeamRequest{IsActive: &inactive})

	suite.Require().NoError(err)
	suite.False(team.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TeamServiceTestSuite) TestDeleteTeam_RequiresAdmin() {
	ctx := context.Background()
	teamID := uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeAction", ctx, suite.accountID, suite.churchID, domain.ChurchRoleAdmin).
		Return(apperrors.NewForbiddenError("insufficient permissions for this church")).Once()

	err := suite.service.DeleteTeam(ctx, suite.churchID, teamID, suite.accountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteTeam", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TeamServiceTestSuite) TestDeleteTeam_Success() {
	ctx := context.Background()
	teamID := uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeAction", ctx, suite.accountID, suite.churchID, domain.ChurchRoleAdmin).
		Return(nil).Once()
	suite.mockRepo.On("DeleteTeam", ctx, suite.churchID, teamID, suite.accountID).Return(nil).Once()

	err := suite.service.DeleteTeam(ctx, suite.churchID, teamID, suite.accountID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TeamServiceTestSuite) TestDeleteTeam_AlreadyInactive() {
	ctx := context.Background()
	teamID := uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeAction", ctx, suite.accountID, suite.churchID, domain.ChurchRoleAdmin).
		Return(nil).Once()
	suite.mockRepo.On("DeleteTeam", ctx, suite.churchID, teamID, suite.accountID).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTeam(ctx, suite.churchID, teamID, suite.accountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TeamServiceTestSuite) TestAddTeamMember_TeamMustExist() {
	ctx := context.Background()
	teamID := uuid.NewString()
	req := dto.AddTeamMemberRequest{MemberID: uuid.NewString()}

	suite.expectStaff(ctx)
	suite.mockRepo.On("FindTeamByID", ctx, suite.churchID, teamID).
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AddTeamMember(ctx, suite.churchID, teamID, suite.accountID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "AddTeamMember", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TeamServiceTestSuite) TestAddTeamMember_Success() {
	ctx := context.Background()
	teamID := uuid.NewString()
	req := dto.AddTeamMemberRequest{MemberID: uuid.NewString()}

	suite.expectStaff(ctx)
	suite.mockRepo.On("FindTeamByID", ctx, suite.churchID, teamID).
		Return(&domain.VolunteerTeam{TeamID: teamID, ChurchID: suite.churchID}, nil).Once()
	suite.mockRepo.On("AddTeamMember", ctx, suite.churchID, mock.MatchedBy(func(tm domain.TeamMember) bool {
		return tm.TeamID == teamID && tm.MemberID == req.MemberID
	})).Return(nil).Once()

	err := suite.service.AddTeamMember(ctx, suite.churchID, teamID, suite.accountID, req)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TeamServiceTestSuite) TestAddTeamMember_AlreadyOnRoster() {
	ctx := context.Background()
	teamID := uuid.NewString()
	req := dto.AddTeamMemberRequest{MemberID: uuid.NewString()}

	suite.expectStaff(ctx)
	suite.mockRepo.On("FindTeamByID", ctx, suite.churchID, teamID).
		Return(&domain.VolunteerTeam{TeamID: teamID, ChurchID: suite.churchID}, nil).Once()
	suite.mockRepo.On("AddTeamMember", ctx, suite.churchID, mock.AnythingOfType("domain.TeamMember")).
		Return(apperrors.NewConflictError("member is already on this team")).Once()

	err := suite.service.AddTeamMember(ctx, suite.churchID, teamID, suite.accountID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *TeamServiceTestSuite) TestListTeams_NilBecomesEmptySlice() {
	ctx := context.Background()
	params := pagination.Params{Page: 1, Limit: 20, Offset: 0}

	suite.mockRepo.On("ListTeams", ctx, suite.churchID, 20, 0).Return(nil, nil).Once()

	teams, err := suite.service.ListTeams(ctx, suite.churchID, params)

	suite.Require().NoError(err)
	suite.NotNil(teams)
	suite.Empty(teams)
}

func (suite *TeamServiceTestSuite) TestListTeamMembers_TeamMustExist() {
	ctx := context.Background()
	teamID := uuid.NewString()

	suite.mockRepo.On("FindTeamByID", ctx, suite.churchID, teamID).
		Return(nil, apperrors.ErrNotFound).Once()

	members, err := suite.service.ListTeamMembers(ctx, suite.churchID, teamID)

	suite.Require().Error(err)
	suite.Nil(members)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestTeamService(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
