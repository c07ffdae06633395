package services

import (
	"context"
	"time"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves an account by ID.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAccountByEmail retrieves an account by email.
	GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error)

	// UpdateProfile updates the caller's own profile fields.
	UpdateProfile(ctx context.Context, accountID string, req dto.UpdateProfileRequest) (*domain.Account, error)

	// UpdateRefreshToken stores the refresh token hash and expiry for an account.
	UpdateRefreshToken(ctx context.Context, accountID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken removes the stored refresh token for an account.
	ClearRefreshToken(ctx context.Context, accountID string) error
}

// AccountLifecycleSvc defines operations for managing account lifecycle
type AccountLifecycleSvc interface {
	// DeactivateAccount marks an account inactive. Only the account owner may
	// deactivate itself.
	DeactivateAccount(ctx context.Context, accountID string, requestingAccountID string) error
}

// AccountAuthSvc defines operations for account authentication
type AccountAuthSvc interface {
	// AuthenticateAccount authenticates an account with email and password.
	AuthenticateAccount(ctx context.Context, email, password string) (*domain.Account, error)

	// AuthenticateWithGoogle authenticates (creating the account on first
	// login) from a validated Google ID token.
	AuthenticateWithGoogle(ctx context.Context, idTokenString string) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountLifecycleSvc
	AccountAuthSvc
}
