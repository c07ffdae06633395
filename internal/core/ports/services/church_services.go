package services

import (
	"context"
	"mime/multipart"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
)

// ChurchReaderSvc defines read operations for church data
type ChurchReaderSvc interface {
	// FindChurchByID retrieves a specific church by its ID.
	FindChurchByID(ctx context.Context, churchID string) (*domain.Church, error)

	// ListAccountChurches retrieves the churches an account belongs to.
	ListAccountChurches(ctx context.Context, accountID string) ([]domain.Church, error)
}

// ChurchWriterSvc defines write operations for church data
type ChurchWriterSvc interface {
	// CreateChurch persists a new church with the creator as ADMIN.
	// Creation is gated on the creator's plan entitlements.
	CreateChurch(ctx context.Context, creatorAccountID string, req dto.CreateChurchRequest) (*domain.Church, error)

	// UpdateChurch updates church profile fields. Requires ADMIN.
	UpdateChurch(ctx context.Context, churchID, requestingAccountID string, req dto.UpdateChurchRequest) (*domain.Church, error)

	// UpdateChurchLogo uploads a new logo image and stores its URL. Requires ADMIN.
	UpdateChurchLogo(ctx context.Context, churchID, requestingAccountID string, file multipart.File) (*domain.Church, error)
}

// ChurchMembershipSvc defines operations for managing church staff and members
type ChurchMembershipSvc interface {
	// AddStaff links an account to the church with a role. Adding ADMIN or
	// STAFF is gated on the church creator's plan entitlements.
	AddStaff(ctx context.Context, churchID, requestingAccountID string, req dto.AddStaffRequest) (*domain.ChurchMembership, error)

	// ListStaff retrieves all memberships for a church.
	ListStaff(ctx context.Context, churchID, requestingAccountID string) ([]domain.ChurchMembership, error)

	// UpdateStaffRole changes the role of an existing membership.
	UpdateStaffRole(ctx context.Context, churchID, requestingAccountID, targetAccountID string, newRole domain.ChurchRole) error

	// RemoveStaff marks a membership REMOVED. The church creator cannot be removed.
	RemoveStaff(ctx context.Context, churchID, requestingAccountID, targetAccountID string) error
}

// ChurchAuthorizerSvc defines operations for church authorization
type ChurchAuthorizerSvc interface {
	// ResolveAccess returns the caller's effective role in the church, or
	// ErrForbidden when there is no usable membership.
	ResolveAccess(ctx context.Context, accountID, churchID string) (domain.ChurchRole, error)

	// AuthorizeAction checks that the account holds at least the required role
	// in the church.
	AuthorizeAction(ctx context.Context, accountID, churchID string, requiredRole domain.ChurchRole) error
}

// ChurchCatalogSvc defines operations for church-nested configuration.
type ChurchCatalogSvc interface {
	CreateDonationCategory(ctx context.Context, churchID, requestingAccountID string, req dto.CreateDonationCategoryRequest) (*domain.DonationCategory, error)
	ListDonationCategories(ctx context.Context, churchID string) ([]domain.DonationCategory, error)

	CreateChurchService(ctx context.Context, churchID, requestingAccountID string, req dto.CreateChurchServiceRequest) (*domain.ChurchService, error)
	ListChurchServices(ctx context.Context, churchID string) ([]domain.ChurchService, error)
}

// ChurchSvcFacade combines all church-related service interfaces
// This is a facade for clients that need access to all operations
type ChurchSvcFacade interface {
	ChurchReaderSvc
	ChurchWriterSvc
	ChurchMembershipSvc
	ChurchAuthorizerSvc
	ChurchCatalogSvc
}
