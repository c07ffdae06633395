package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shepherdsuite/church_mgmt_app/internal/apperrors"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
)

type DonationServiceTestSuite struct {
	suite.Suite
	mockRepo         *MockDonationRepository
	mockCampaignRepo *MockCampaignRepository
	mockChurchRepo   *MockChurchRepository
	mockAuthorizer   *MockChurchAuthorizer
	service          portssvc.DonationSvcFacade

	churchID  string
	accountID string
}

func (suite *DonationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDonationRepository)
	suite.mockCampaignRepo = new(MockCampaignRepository)
	suite.mockChurchRepo = new(MockChurchRepository)
	suite.mockAuthorizer = new(MockChurchAuthorizer)
	suite.service = services.NewDonationService(suite.mockRepo, suite.mockCampaignRepo, suite.mockChurchRepo, suite.mockAuthorizer)

	suite.churchID = uuid.NewString()
	suite.accountID = uuid.NewString()
}

func (suite *DonationServiceTestSuite) expectStaff(ctx context.Context) {
	suite.mockAuthorizer.On("AuthorizeAction", ctx, suite.accountID, suite.churchID, domain.ChurchRoleStaff).Return(nil).Once()
}

func (suite *DonationServiceTestSuite) expectChurch(ctx context.Context) {
	suite.mockChurchRepo.On("FindChurchByID", ctx, suite.churchID).
		Return(&domain.Church{ChurchID: suite.churchID, CurrencyCode: "NGN"}, nil).Once()
}

func (suite *DonationServiceTestSuite) TestRecordDonation_UsesChurchCurrency() {
	ctx := context.Background()
	req := dto.CreateDonationRequest{Amount: decimal.NewFromInt(500), Method: domain.DonationCash}

	suite.expectStaff(ctx)
	suite.expectChurch(ctx)
	suite.mockRepo.On("SaveDonation", ctx, mock.MatchedBy(func(d domain.Donation) bool {
		return d.ChurchID == suite.churchID &&
			d.Currency == "NGN" &&
			d.CampaignID == nil &&
			d.CreatedBy == suite.accountID
	})).Return(nil).Once()

	donation, err := suite.service.RecordDonation(ctx, suite.churchID, suite.accountID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(donation)
	suite.Equal("NGN", donation.Currency)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCampaignRepo.AssertNotCalled(suite.T(), "AddToRaisedAmount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DonationServiceTestSuite) TestRecordDonation_CampaignAddsToRaisedTotal() {
	ctx := context.Background()
	campaignID := uuid.NewString()
	amount := decimal.NewFromInt(1000)
	req := dto.CreateDonationRequest{Amount: amount, Method: domain.DonationCash, CampaignID: &campaignID}

	suite.expectStaff(ctx)
	suite.expectChurch(ctx)
	suite.mockCampaignRepo.On("FindCampaignByID", ctx, suite.churchID, campaignID).
		Return(&domain.DonationCampaign{CampaignID: campaignID, Status: domain.CampaignActive}, nil).Once()
	suite.mockRepo.On("SaveDonation", ctx, mock.AnythingOfType("domain.Donation")).Return(nil).Once()
	suite.mockCampaignRepo.On("AddToRaisedAmount", ctx, suite.churchID, campaignID, amount).Return(nil).Once()

	donation, err := suite.service.RecordDonation(ctx, suite.churchID, suite.accountID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(donation)
	suite.mockCampaignRepo.AssertExpectations(suite.T())
}

func (suite *DonationServiceTestSuite) TestRecordDonation_DraftCampaignRejected() {
	ctx := context.Background()
	campaignID := uuid.NewString()
	req := dto.CreateDonationRequest{Amount: decimal.NewFromInt(100), Method: domain.DonationCash, CampaignID: &campaignID}

	suite.expectStaff(ctx)
	suite.expectChurch(ctx)
	suite.mockCampaignRepo.On("FindCampaignByID", ctx, suite.churchID, campaignID).
		Return(&domain.DonationCampaign{CampaignID: campaignID, Status: domain.CampaignDraft}, nil).Once()

	donation, err := suite.service.RecordDonation(ctx, suite.churchID, suite.accountID, req)

	suite.Require().Error(err)
	suite.Nil(donation)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDonation", mock.Anything, mock.Anything)
}

func (suite *DonationServiceTestSuite) TestRecordDonation_UnknownCampaign() {
	ctx := context.Background()
	campaignID := uuid.NewString()
	req := dto.CreateDonationRequest{Amount: decimal.NewFromInt(100), Method: domain.DonationCash, CampaignID: &campaignID}

	suite.expectStaff(ctx)
	suite.expectChurch(ctx)
	suite.mockCampaignRepo.On("FindCampaignByID", ctx, suite.churchID, campaignID).
		Return(nil, apperrors.ErrNotFound).Once()

	donation, err := suite.service.RecordDonation(ctx, suite.churchID, suite.accountID, req)

	suite.Require().Error(err)
	suite.Nil(donation)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *DonationServiceTestSuite) TestUpdateDonation_AmountChangeAdjustsCampaignByDelta() {
	ctx := context.Background()
	campaignID := uuid.NewString()
	donationID := uuid.NewString()
	stored := &domain.Donation{
		DonationID: donationID,
		ChurchID:   suite.churchID,
		CampaignID: &campaignID,
		Amount:     decimal.NewFromInt(1000),
		Currency:   "NGN",
		Method:     domain.DonationCash,
	}
	newAmount := decimal.NewFromInt(1500)
	req := dto.UpdateDonationRequest{Amount: &newAmount}

	suite.expectStaff(ctx)
	suite.mockRepo.On("FindDonationByID", ctx, suite.churchID, donationID).Return(stored, nil).Once()
	suite.mockCampaignRepo.On("AddToRaisedAmount", ctx, suite.churchID, campaignID, decimal.NewFromInt(500)).Return(nil).Once()
	suite.mockRepo.On("UpdateDonation", ctx, mock.MatchedBy(func(d domain.Donation) bool {
		return d.Amount.Equal(newAmount)
	})).Return(nil).Once()

	donation, err := suite.service.UpdateDonation(ctx, suite.churchID, donationID, suite.accountID, req)

	suite.Require().NoError(err)
	suite.True(donation.Amount.Equal(newAmount))
	suite.mockCampaignRepo.AssertExpectations(suite.T())
}

func (suite *DonationServiceTestSuite) TestDeleteDonation_ReversesCampaignContribution() {
	ctx := context.Background()
	campaignID := uuid.NewString()
	donationID := uuid.NewString()
	stored := &domain.Donation{
		DonationID: donationID,
		ChurchID:   suite.churchID,
		CampaignID: &campaignID,
		Amount:     decimal.NewFromInt(750),
	}

	suite.mockAuthorizer.On("AuthorizeAction", ctx, suite.accountID, suite.churchID, domain.ChurchRoleAdmin).Return(nil).Once()
	suite.mockRepo.On("FindDonationByID", ctx, suite.churchID, donationID).Return(stored, nil).Once()
	suite.mockRepo.On("DeleteDonation", ctx, suite.churchID, donationID).Return(nil).Once()
	suite.mockCampaignRepo.On("AddToRaisedAmount", ctx, suite.churchID, campaignID, decimal.NewFromInt(-750)).Return(nil).Once()

	err := suite.service.DeleteDonation(ctx, suite.churchID, donationID, suite.accountID)

	suite.Require().NoError(err)
	suite.mockCampaignRepo.AssertExpectations(suite.T())
}

func (suite *DonationServiceTestSuite) TestRecordDonation_ZeroAmountRejected() {
	ctx := context.Background()
	req := dto.CreateDonationRequest{Amount: decimal.Zero, Method: domain.DonationCash}

	suite.expectStaff(ctx)

	donation, err := suite.service.RecordDonation(ctx, suite.churchID, suite.accountID, req)

	suite.Require().Error(err)
	suite.Nil(donation)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestDonationService(t *testing.T) {
	suite.Run(t, new(DonationServiceTestSuite))
}
