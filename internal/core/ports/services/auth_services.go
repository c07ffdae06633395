package services

import (
	"context"
	"time"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, account *domain.Account) (string, time.Time, error)
	GenerateRefreshToken(ctx context.Context, account *domain.Account) (string, time.Time, error)
	// ValidateAndParseRefreshToken validates a refresh token string against an
	// account's stored token details. It returns the account if the token is
	// valid and not expired.
	ValidateAndParseRefreshToken(ctx context.Context, accountID string, refreshTokenString string) (*domain.Account, error)
}

// GoogleAuthSvcFacade defines the interface for Google sign-in operations.
type GoogleAuthSvcFacade interface {
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
