package repositories

import (
	"context"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
)

// ChurchRepository defines persistence operations for churches, memberships
// and church-nested configuration (donation categories, services).
type ChurchRepository interface {
	SaveChurch(ctx context.Context, church domain.Church) error
	FindChurchByID(ctx context.Context, churchID string) (*domain.Church, error)
	ListChurchesByAccountID(ctx context.Context, accountID string) ([]domain.Church, error)
	UpdateChurch(ctx context.Context, church domain.Church) error
	UpdateChurchLogo(ctx context.Context, churchID, logoURL, updatedBy string) error

	AddMembership(ctx context.Context, membership domain.ChurchMembership) error
	FindMembership(ctx context.Context, accountID, churchID string) (*domain.ChurchMembership, error)
	ListMemberships(ctx context.Context, churchID string) ([]domain.ChurchMembership, error)
	UpdateMembershipRole(ctx context.Context, accountID, churchID string, role domain.ChurchRole) error

	SaveDonationCategory(ctx context.Context, category domain.DonationCategory) error
	ListDonationCategories(ctx context.Context, churchID string) ([]domain.DonationCategory, error)

	SaveChurchService(ctx context.Context, service domain.ChurchService) error
	ListChurchServices(ctx context.Context, churchID string) ([]domain.ChurchService, error)
}
