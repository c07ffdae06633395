package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/api/idtoken"

	"github.com/shepherdsuite/church_mgmt_app/internal/apperrors"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/platform/config"
	"github.com/shepherdsuite/church_mgmt_app/internal/utils"
)

// tokenService implements the TokenSvcFacade for handling JWT and refresh tokens.
type tokenService struct {
	cfg        *config.Config
	accountSvc portssvc.AccountReaderSvc
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, accountSvc portssvc.AccountReaderSvc) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:        cfg,
		accountSvc: accountSvc,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given account.
func (s *tokenService) GenerateAccessToken(ctx context.Context, account *domain.Account) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(account.AccountID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

// GenerateRefreshToken creates a new refresh token for the given account.
// The caller stores only its hash.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, account *domain.Account) (string, time.Time, error) {
	rawRefreshToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiryTime := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	return rawRefreshToken, expiryTime, nil
}

// ValidateAndParseRefreshToken validates a refresh token string against the
// account's stored hash and expiry, returning the account on success.
func (s *tokenService) ValidateAndParseRefreshToken(ctx context.Context, accountID string, refreshTokenString string) (*domain.Account, error) {
	account, err := s.accountSvc.GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to retrieve account for refresh token validation: %w", err)
	}

	if account.RefreshTokenHash == "" || account.RefreshTokenExpiryTime == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if time.Now().After(*account.RefreshTokenExpiryTime) {
		return nil, apperrors.NewUnauthorizedError("refresh token has expired")
	}
	if !utils.CompareRefreshTokenHash(refreshTokenString, account.RefreshTokenHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return account, nil
}

// googleAuthService implements GoogleAuthSvcFacade using Google's idtoken validator.
type googleAuthService struct {
	cfg *config.Config
}

// NewGoogleAuthService creates a new Google sign-in validator.
func NewGoogleAuthService(cfg *config.Config) portssvc.GoogleAuthSvcFacade {
	return &googleAuthService{cfg: cfg}
}

var _ portssvc.GoogleAuthSvcFacade = (*googleAuthService)(nil)

// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
func (s *googleAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, fmt.Errorf("google sign-in is not configured")
	}
	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid google ID token")
	}
	return payload, nil
}
