package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shepherdsuite/church_mgmt_app/internal/apperrors"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/platform/config"
	"github.com/shepherdsuite/church_mgmt_app/internal/utils"
)

// MockAccountReader is a mock type for the AccountReaderSvc interface
type MockAccountReader struct {
	mock.Mock
}

func (m *MockAccountReader) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountReader) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// --- Test Suite Setup ---

type TokenServiceTestSuite struct {
	suite.Suite
	cfg             *config.Config
	mockAccountsSvc *MockAccountReader
	service         portssvc.TokenSvcFacade
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		JWTSecret:                  "test-secret-for-signing-tokens",
		JWTExpiryDuration:          15 * time.Minute,
		JWTIssuer:                  "church-mgmt-test",
		RefreshTokenExpiryDuration: 7 * 24 * time.Hour,
	}
	suite.mockAccountsSvc = new(MockAccountReader)
	suite.service = services.NewTokenService(suite.cfg, suite.mockAccountsSvc)
}

func (suite *TokenServiceTestSuite) TestGenerateAccessToken_RoundTrip() {
	ctx := context.Background()
	account := &domain.Account{AccountID: uuid.NewString()}

	token, expiry, err := suite.service.GenerateAccessToken(ctx, account)

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.WithinDuration(time.Now().Add(suite.cfg.JWTExpiryDuration), expiry, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(account.AccountID, claims.Subject)
	suite.Equal(suite.cfg.JWTIssuer, claims.Issuer)
}

func (suite *TokenServiceTestSuite) TestGenerateAccessToken_WrongSecretRejected() {
	ctx := context.Background()
	account := &domain.Account{AccountID: uuid.NewString()}

	token, _, err := suite.service.GenerateAccessToken(ctx, account)
	suite.Require().NoError(err)

	_, err = utils.ParseAndValidateJWT(token, "a-different-secret")
	suite.Require().Error(err)
}

func (suite *TokenServiceTestSuite) TestGenerateRefreshToken_UniquePerCall() {
	ctx := context.Background()
	account := &domain.Account{AccountID: uuid.NewString()}

	first, expiry, err := suite.service.GenerateRefreshToken(ctx, account)
	suite.Require().NoError(err)
	second, _, err := suite.service.GenerateRefreshToken(ctx, account)
	suite.Require().NoError(err)

	suite.NotEmpty(first)
	suite.NotEqual(first, second)
	suite.WithinDuration(time.Now().Add(suite.cfg.RefreshTokenExpiryDuration), expiry, 5*time.Second)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Success() {
	ctx := context.Background()
	rawToken := "the-raw-refresh-token"
	expiry := time.Now().Add(time.Hour)
	account := &domain.Account{
		AccountID:              uuid.NewString(),
		RefreshTokenHash:       utils.HashRefreshToken(rawToken),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockAccountsSvc.On("GetAccountByID", ctx, account.AccountID).Return(account, nil).Once()

	result, err := suite.service.ValidateAndParseRefreshToken(ctx, account.AccountID, rawToken)

	suite.Require().NoError(err)
	suite.Equal(account.AccountID, result.AccountID)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_WrongToken() {
	ctx := context.Background()
	expiry := time.Now().Add(time.Hour)
	account := &domain.Account{
		AccountID:              uuid.NewString(),
		RefreshTokenHash:       utils.HashRefreshToken("the-stored-token"),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockAccountsSvc.On("GetAccountByID", ctx, account.AccountID).Return(account, nil).Once()

	result, err := suite.service.ValidateAndParseRefreshToken(ctx, account.AccountID, "a-different-token")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Expired() {
	ctx := context.Background()
	rawToken := "the-raw-refresh-token"
	expiry := time.Now().Add(-time.Minute)
	account := &domain.Account{
		AccountID:              uuid.NewString(),
		RefreshTokenHash:       utils.HashRefreshToken(rawToken),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockAccountsSvc.On("GetAccountByID", ctx, account.AccountID).Return(account, nil).Once()

	result, err := suite.service.ValidateAndParseRefreshToken(ctx, account.AccountID, rawToken)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_NoStoredToken() {
	ctx := context.Background()
	account := &domain.Account{AccountID: uuid.NewString()}

	suite.mockAccountsSvc.On("GetAccountByID", ctx, account.AccountID).Return(account, nil).Once()

	result, err := suite.service.ValidateAndParseRefreshToken(ctx, account.AccountID, "whatever")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_UnknownAccount() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountsSvc.On("GetAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.ValidateAndParseRefreshToken(ctx, accountID, "whatever")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestTokenService(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
