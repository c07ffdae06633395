package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"google.golang.org/api/idtoken"

	"github.com/shepherdsuite/church_mgmt_app/internal/apperrors"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
	"github.com/shepherdsuite/church_mgmt_app/internal/utils"
)

// MockGoogleAuthService is a mock type for the GoogleAuthSvcFacade interface
type MockGoogleAuthService struct {
	mock.Mock
}

func (m *MockGoogleAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockAccountRepository
	mockGoogleAuth *MockGoogleAuthService
	service        portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.mockGoogleAuth = new(MockGoogleAuthService)
	suite.service = services.NewAccountService(suite.mockRepo, suite.mockGoogleAuth)
}

// --- Register ---

func (suite *AccountServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Name:     "Chinedu Eze",
		Email:    "chinedu@example.com",
		Phone:    "0803 123 4567",
		Password: "a-strong-password",
	}

	suite.mockRepo.On("FindAccountByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Email == req.Email &&
			a.Phone == "08031234567" &&
			a.Role == domain.RoleMember &&
			a.IsActive &&
			a.PasswordHash != "" &&
			a.PasswordHash != req.Password
	})).Return(nil).Once()

	account, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.True(utils.CheckPasswordHash(req.Password, account.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Name:     "Chinedu Eze",
		Email:    "chinedu@example.com",
		Phone:    "08031234567",
		Password: "a-strong-password",
	}

	suite.mockRepo.On("FindAccountByEmail", ctx, req.Email).
		Return(&domain.Account{AccountID: uuid.NewString(), Email: req.Email}, nil).Once()

	account, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestRegister_InvalidPhone() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Name:     "Chinedu Eze",
		Email:    "chinedu@example.com",
		Phone:    "12345",
		Password: "a-strong-password",
	}

	account, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAccountByEmail", mock.Anything, mock.Anything)
}

// --- AuthenticateAccount ---

func (suite *AccountServiceTestSuite) TestAuthenticateAccount_Success() {
	ctx := context.Background()
	password := "a-strong-password"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	stored := &domain.Account{
		AccountID:    uuid.NewString(),
		Email:        "chinedu@example.com",
		PasswordHash: hash,
		IsActive:     true,
	}

	suite.mockRepo.On("FindAccountByEmail", ctx, stored.Email).Return(stored, nil).Once()

	account, err := suite.service.AuthenticateAccount(ctx, stored.Email, password)

	suite.Require().NoError(err)
	suite.Equal(stored.AccountID, account.AccountID)
}

func (suite *AccountServiceTestSuite) TestAuthenticateAccount_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("the-right-password")
	suite.Require().NoError(err)
	stored := &domain.Account{
		AccountID:    uuid.NewString(),
		Email:        "chinedu@example.com",
		PasswordHash: hash,
		IsActive:     true,
	}

	suite.mockRepo.On("FindAccountByEmail", ctx, stored.Email).Return(stored, nil).Once()

	account, err := suite.service.AuthenticateAccount(ctx, stored.Email, "the-wrong-password")

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AccountServiceTestSuite) TestAuthenticateAccount_UnknownEmailSameError() {
	ctx := context.Background()

	suite.mockRepo.On("FindAccountByEmail", ctx, "nobody@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.AuthenticateAccount(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(account)
	// An unknown email reads the same as a bad password.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AccountServiceTestSuite) TestAuthenticateAccount_DeactivatedAccount() {
	ctx := context.Background()
	hash, err := utils.HashPassword("a-strong-password")
	suite.Require().NoError(err)
	stored := &domain.Account{
		AccountID:    uuid.NewString(),
		Email:        "chinedu@example.com",
		PasswordHash: hash,
		IsActive:     false,
	}

	suite.mockRepo.On("FindAccountByEmail", ctx, stored.Email).Return(stored, nil).Once()

	account, err := suite.service.AuthenticateAccount(ctx, stored.Email, "a-strong-password")

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- AuthenticateWithGoogle ---

func googlePayload(subject, email, name string) *idtoken.Payload {
	return &idtoken.Payload{
		Subject: subject,
		Claims: map[string]any{
			"email": email,
			"name":  name,
		},
	}
}

func (suite *AccountServiceTestSuite) TestAuthenticateWithGoogle_ExistingProviderAccount() {
	ctx := context.Background()
	providerUserID := "google-sub-123"
	stored := &domain.Account{
		AccountID:      uuid.NewString(),
		Email:          "chinedu@example.com",
		IsActive:       true,
		AuthProvider:   "google",
		ProviderUserID: providerUserID,
	}

	suite.mockGoogleAuth.On("ValidateGoogleIDToken", ctx, "valid-token").
		Return(googlePayload(providerUserID, stored.Email, "Chinedu Eze"), nil).Once()
	suite.mockRepo.On("FindAccountByProviderDetails", ctx, "google", providerUserID).Return(stored, nil).Once()

	account, err := suite.service.AuthenticateWithGoogle(ctx, "valid-token")

	suite.Require().NoError(err)
	suite.Equal(stored.AccountID, account.AccountID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestAuthenticateWithGoogle_LinksExistingEmailAccount() {
	ctx := context.Background()
	providerUserID := "google-sub-456"
	stored := &domain.Account{
		AccountID: uuid.NewString(),
		Email:     "chinedu@example.com",
		IsActive:  true,
	}

	suite.mockGoogleAuth.On("ValidateGoogleIDToken", ctx, "valid-token").
		Return(googlePayload(providerUserID, stored.Email, "Chinedu Eze"), nil).Once()
	suite.mockRepo.On("FindAccountByProviderDetails", ctx, "google", providerUserID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindAccountByEmail", ctx, stored.Email).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountID == stored.AccountID &&
			a.AuthProvider == "google" &&
			a.ProviderUserID == providerUserID
	})).Return(nil).Once()

	account, err := suite.service.AuthenticateWithGoogle(ctx, "valid-token")

	suite.Require().NoError(err)
	suite.Equal(stored.AccountID, account.AccountID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestAuthenticateWithGoogle_CreatesAccountOnFirstLogin() {
	ctx := context.Background()
	providerUserID := "google-sub-789"

	suite.mockGoogleAuth.On("ValidateGoogleIDToken", ctx, "valid-token").
		Return(googlePayload(providerUserID, "new@example.com", "New Person"), nil).Once()
	suite.mockRepo.On("FindAccountByProviderDetails", ctx, "google", providerUserID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindAccountByEmail", ctx, "new@example.com").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Email == "new@example.com" &&
			a.AuthProvider == "google" &&
			a.ProviderUserID == providerUserID &&
			a.PasswordHash == "" &&
			a.Role == domain.RoleMember
	})).Return(nil).Once()

	account, err := suite.service.AuthenticateWithGoogle(ctx, "valid-token")

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal("google", account.AuthProvider)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestAuthenticateWithGoogle_MissingClaims() {
	ctx := context.Background()

	suite.mockGoogleAuth.On("ValidateGoogleIDToken", ctx, "valid-token").
		Return(googlePayload("google-sub-000", "", ""), nil).Once()

	account, err := suite.service.AuthenticateWithGoogle(ctx, "valid-token")

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AccountServiceTestSuite) TestAuthenticateWithGoogle_InvalidToken() {
	ctx := context.Background()

	suite.mockGoogleAuth.On("ValidateGoogleIDToken", ctx, "bad-token").
		Return(nil, assert.AnError).Once()

	account, err := suite.service.AuthenticateWithGoogle(ctx, "bad-token")

	suite.Require().Error(err)
	suite.Nil(account)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAccountByProviderDetails", mock.Anything, mock.Anything, mock.Anything)
}

// --- Profile and lifecycle ---

func (suite *AccountServiceTestSuite) TestUpdateProfile_Success() {
	ctx := context.Background()
	stored := &domain.Account{
		AccountID: uuid.NewString(),
		Name:      "Old Name",
		Phone:     "08031234567",
	}

	suite.mockRepo.On("FindAccountByID", ctx, stored.AccountID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == "New Name" && a.Phone == "08031234567"
	})).Return(nil).Once()

	account, err := suite.service.UpdateProfile(ctx, stored.AccountID, dto.UpdateProfileRequest{Name: "New Name"})

	suite.Require().NoError(err)
	suite.Equal("New Name", account.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_OnlySelf() {
	ctx := context.Background()
	accountID := uuid.NewString()

	err := suite.service.DeactivateAccount(ctx, accountID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "SetAccountActive", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockRepo.On("SetAccountActive", ctx, accountID, false, accountID).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, accountID, accountID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
