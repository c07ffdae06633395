package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shepherdsuite/church_mgmt_app/internal/apperrors"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portsrepo "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
	"github.com/shepherdsuite/church_mgmt_app/internal/utils"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	googleAuth  portssvc.GoogleAuthSvcFacade
}

// NewAccountService creates a new account service with the provided dependencies
func NewAccountService(accountRepo portsrepo.AccountRepository, googleAuth portssvc.GoogleAuthSvcFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		googleAuth:  googleAuth,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// GetAccountByID retrieves an account by ID
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// GetAccountByEmail retrieves an account by email
func (s *accountService) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by email")
		}
		return nil, err
	}
	return account, nil
}

// Register creates a new account with a hashed password
func (s *accountService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error) {
	phone, err := utils.NormalizePhone(req.Phone)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}

	if _, err := s.accountRepo.FindAccountByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.NewConflictError("an account with this email already exists")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check existing account during registration")
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, apperrors.NewAppError(500, "failed to process password", err)
	}

	role := domain.AccountRole(req.Role)
	if req.Role == "" {
		role = domain.RoleMember
	}

	now := time.Now()
	accountID := uuid.NewString()
	account := domain.Account{
		AccountID:    accountID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        phone,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     accountID,
			LastUpdatedAt: now,
			LastUpdatedBy: accountID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account registered", slog.String("account_id", accountID))
	return &account, nil
}

// AuthenticateAccount authenticates an account with email and password
func (s *accountService) AuthenticateAccount(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		s.LogError(ctx, err, "Failed to load account for authentication")
		return nil, err
	}

	if !account.IsActive {
		return nil, apperrors.NewUnauthorizedError("account is deactivated")
	}
	if account.PasswordHash == "" || !utils.CheckPasswordHash(password, account.PasswordHash) {
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	return account, nil
}

// AuthenticateWithGoogle authenticates (creating the account on first login)
// from a validated Google ID token.
func (s *accountService) AuthenticateWithGoogle(ctx context.Context, idTokenString string) (*domain.Account, error) {
	payload, err := s.googleAuth.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		return nil, err
	}

	providerUserID := payload.Subject
	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if providerUserID == "" || email == "" {
		return nil, apperrors.NewUnauthorizedError("google token is missing required claims")
	}

	account, err := s.accountRepo.FindAccountByProviderDetails(ctx, "google", providerUserID)
	if err == nil {
		if !account.IsActive {
			return nil, apperrors.NewUnauthorizedError("account is deactivated")
		}
		return account, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up google account")
		return nil, err
	}

	// Link to an existing email account if one exists.
	if existing, err := s.accountRepo.FindAccountByEmail(ctx, email); err == nil {
		existing.AuthProvider = "google"
		existing.ProviderUserID = providerUserID
		existing.LastUpdatedAt = time.Now()
		existing.LastUpdatedBy = existing.AccountID
		if err := s.accountRepo.UpdateAccount(ctx, *existing); err != nil {
			s.LogError(ctx, err, "Failed to link google identity", slog.String("account_id", existing.AccountID))
			return nil, err
		}
		return existing, nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check existing email during google sign-in")
		return nil, err
	}

	now := time.Now()
	accountID := uuid.NewString()
	account = &domain.Account{
		AccountID:      accountID,
		Name:           name,
		Email:          email,
		Role:           domain.RoleMember,
		IsActive:       true,
		AuthProvider:   "google",
		ProviderUserID: providerUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     accountID,
			LastUpdatedAt: now,
			LastUpdatedBy: accountID,
		},
	}
	if err := s.accountRepo.SaveAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to save google account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created via google sign-in", slog.String("account_id", accountID))
	return account, nil
}

// UpdateProfile updates the caller's own profile fields
func (s *accountService) UpdateProfile(ctx context.Context, accountID string, req dto.UpdateProfileRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		account.Name = req.Name
	}
	if req.Phone != "" {
		phone, err := utils.NormalizePhone(req.Phone)
		if err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		account.Phone = phone
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = accountID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

// UpdateRefreshToken stores the refresh token hash and expiry for an account
func (s *accountService) UpdateRefreshToken(ctx context.Context, accountID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	return s.accountRepo.UpdateRefreshToken(ctx, accountID, refreshTokenHash, refreshTokenExpiryTime)
}

// ClearRefreshToken removes the stored refresh token for an account
func (s *accountService) ClearRefreshToken(ctx context.Context, accountID string) error {
	return s.accountRepo.ClearRefreshToken(ctx, accountID)
}

// DeactivateAccount marks an account inactive. Only the account owner may
// deactivate itself.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, requestingAccountID string) error {
	if accountID != requestingAccountID {
		return apperrors.NewForbiddenError("you can only deactivate your own account")
	}
	if err := s.accountRepo.SetAccountActive(ctx, accountID, false, requestingAccountID); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}
