package repositories

import (
	"context"
	"time"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
)

// AccountRepository defines persistence operations for platform accounts.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindAccountByProviderDetails(ctx context.Context, authProvider, providerUserID string) (*domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	SetAccountActive(ctx context.Context, accountID string, isActive bool, updatedBy string) error
	UpdateRefreshToken(ctx context.Context, accountID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error
	ClearRefreshToken(ctx context.Context, accountID string) error
	MarkAccountDeleted(ctx context.Context, accountID string, deletedAt time.Time, deletedBy string) error
}
