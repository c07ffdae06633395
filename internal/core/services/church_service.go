package services

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"github.com/shepherdsuite/church_mgmt_app/internal/apperrors"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portsrepo "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
	"github.com/shepherdsuite/church_mgmt_app/internal/platform/storage"
	"github.com/shepherdsuite/church_mgmt_app/internal/utils"
)

// churchService implements the ChurchSvcFacade interface
type churchService struct {
	BaseService
	churchRepo  portsrepo.ChurchRepository
	accountRepo portsrepo.AccountRepository
	entitlement portssvc.EntitlementSvc
	fileStore   storage.FileStore
}

// NewChurchService creates a new church service with the provided dependencies
func NewChurchService(
	churchRepo portsrepo.ChurchRepository,
	accountRepo portsrepo.AccountRepository,
	entitlement portssvc.EntitlementSvc,
	fileStore storage.FileStore,
) portssvc.ChurchSvcFacade {
	return &churchService{
		churchRepo:  churchRepo,
		accountRepo: accountRepo,
		entitlement: entitlement,
		fileStore:   fileStore,
	}
}

var _ portssvc.ChurchSvcFacade = (*churchService)(nil)

// FindChurchByID retrieves a church by its ID
func (s *churchService) FindChurchByID(ctx context.Context, churchID string) (*domain.Church, error) {
	church, err := s.churchRepo.FindChurchByID(ctx, churchID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find church by ID", slog.String("church_id", churchID))
		}
		return nil, err
	}
	return church, nil
}

// ListAccountChurches retrieves the churches an account belongs to
func (s *churchService) ListAccountChurches(ctx context.Context, accountID string) ([]domain.Church, error) {
	churches, err := s.churchRepo.ListChurchesByAccountID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list churches for account", slog.String("account_id", accountID))
		return nil, err
	}
	if churches == nil {
		return []domain.Church{}, nil
	}
	return churches, nil
}

// CreateChurch persists a new church with the creator as ADMIN. Creation is
// gated on the creator's plan entitlements.
func (s *churchService) CreateChurch(ctx context.Context, creatorAccountID string, req dto.CreateChurchRequest) (*domain.Church, error) {
	if err := s.entitlement.RequireEntitlement(ctx, creatorAccountID, domain.ActionCreateChurch); err != nil {
		return nil, err
	}

	phone := req.Phone
	if phone != "" {
		normalized, err := utils.NormalizePhone(phone)
		if err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		phone = normalized
	}

	currencyCode := req.CurrencyCode
	if currencyCode == "" {
		currencyCode = "NGN"
	}

	now := time.Now()
	church := domain.Church{
		ChurchID:     uuid.NewString(),
		Name:         req.Name,
		Address:      req.Address,
		Email:        req.Email,
		Phone:        phone,
		CurrencyCode: currencyCode,
		ServiceDay:   req.ServiceDay,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorAccountID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorAccountID,
		},
	}

	if err := s.churchRepo.SaveChurch(ctx, church); err != nil {
		s.LogError(ctx, err, "Failed to save church", slog.String("church_id", church.ChurchID))
		return nil, err
	}

	membership := domain.ChurchMembership{
		AccountID: creatorAccountID,
		ChurchID:  church.ChurchID,
		Role:      domain.ChurchRoleAdmin,
		JoinedAt:  now,
	}
	if err := s.churchRepo.AddMembership(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add creator as admin to new church",
			slog.String("church_id", church.ChurchID),
			slog.String("account_id", creatorAccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Church created",
		slog.String("church_id", church.ChurchID),
		slog.String("account_id", creatorAccountID))
	return &church, nil
}

// UpdateChurch updates church profile fields. Requires ADMIN.
func (s *churchService) UpdateChurch(ctx context.Context, churchID, requestingAccountID string, req dto.UpdateChurchRequest) (*domain.Church, error) {
	if err := s.AuthorizeAction(ctx, requestingAccountID, churchID, domain.ChurchRoleAdmin); err != nil {
		return nil, err
	}

	church, err := s.churchRepo.FindChurchByID(ctx, churchID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		church.Name = req.Name
	}
	if req.Address != "" {
		church.Address = req.Address
	}
	if req.Email != "" {
		church.Email = req.Email
	}
	if req.Phone != "" {
		phone, err := utils.NormalizePhone(req.Phone)
		if err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		church.Phone = phone
	}
	if req.CurrencyCode != "" {
		church.CurrencyCode = req.CurrencyCode
	}
	if req.ServiceDay != "" {
		church.ServiceDay = req.ServiceDay
	}
	church.LastUpdatedAt = time.Now()
	church.LastUpdatedBy = requestingAccountID

	if err := s.churchRepo.UpdateChurch(ctx, *church); err != nil {
		s.LogError(ctx, err, "Failed to update church", slog.String("church_id", churchID))
		return nil, err
	}
	return church, nil
}

// UpdateChurchLogo uploads a new logo image and stores its URL. Requires ADMIN.
func (s *churchService) UpdateChurchLogo(ctx context.Context, churchID, requestingAccountID string, file multipart.File) (*domain.Church, error) {
	if err := s.AuthorizeAction(ctx, requestingAccountID, churchID, domain.ChurchRoleAdmin); err != nil {
		return nil, err
	}
	if s.fileStore == nil {
		return nil, apperrors.NewAppError(500, "file storage is not configured", nil)
	}

	logoURL, err := s.fileStore.Upload(ctx, file, "church_logos")
	if err != nil {
		s.LogError(ctx, err, "Failed to upload church logo", slog.String("church_id", churchID))
		return nil, apperrors.NewAppError(500, "failed to upload logo", err)
	}

	if err := s.churchRepo.UpdateChurchLogo(ctx, churchID, logoURL, requestingAccountID); err != nil {
		return nil, err
	}
	return s.churchRepo.FindChurchByID(ctx, churchID)
}

// ResolveAccess returns the caller's effective role in the church.
func (s *churchService) ResolveAccess(ctx context.Context, accountID, churchID string) (domain.ChurchRole, error) {
	membership, err := s.churchRepo.FindMembership(ctx, accountID, churchID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.NewForbiddenError("no access to this church")
		}
		s.LogError(ctx, err, "Failed to resolve church membership",
			slog.String("account_id", accountID),
			slog.String("church_id", churchID))
		return "", err
	}
	if membership.Role == domain.ChurchRoleRemoved {
		return "", apperrors.NewForbiddenError("no access to this church")
	}
	return membership.Role, nil
}

// AuthorizeAction checks that the account holds at least the required role in the church.
func (s *churchService) AuthorizeAction(ctx context.Context, accountID, churchID string, requiredRole domain.ChurchRole) error {
	role, err := s.ResolveAccess(ctx, accountID, churchID)
	if err != nil {
		return err
	}
	if !role.Meets(requiredRole) {
		return apperrors.NewForbiddenError("insufficient permissions for this church")
	}
	return nil
}

// AddStaff links an account to the church with a role. Adding ADMIN or STAFF
// is gated on the church creator's plan entitlements.
func (s *churchService) AddStaff(ctx context.Context, churchID, requestingAccountID string, req dto.AddStaffRequest) (*domain.ChurchMembership, error) {
	if err := s.AuthorizeAction(ctx, requestingAccountID, churchID, domain.ChurchRoleAdmin); err != nil {
		return nil, err
	}

	target, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("account not found")
		}
		return nil, err
	}

	if req.Role == domain.ChurchRoleAdmin || req.Role == domain.ChurchRoleStaff {
		church, err := s.churchRepo.FindChurchByID(ctx, churchID)
		if err != nil {
			return nil, err
		}
		if err := s.entitlement.RequireEntitlement(ctx, church.CreatedBy, domain.ActionAddAdminStaff); err != nil {
			return nil, err
		}
	}

	membership := domain.ChurchMembership{
		AccountID:   target.AccountID,
		AccountName: target.Name,
		ChurchID:    churchID,
		Role:        req.Role,
		JoinedAt:    time.Now(),
	}
	if err := s.churchRepo.AddMembership(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add staff to church",
			slog.String("church_id", churchID),
			slog.String("account_id", target.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Staff added to church",
		slog.String("church_id", churchID),
		slog.String("account_id", target.AccountID),
		slog.String("role", string(req.Role)))
	return &membership, nil
}

// ListStaff retrieves all memberships for a church.
func (s *churchService) ListStaff(ctx context.Context, churchID, requestingAccountID string) ([]domain.ChurchMembership, error) {
	if err := s.AuthorizeAction(ctx, requestingAccountID, churchID, domain.ChurchRoleMember); err != nil {
		return nil, err
	}
	return s.churchRepo.ListMemberships(ctx, churchID)
}

// UpdateStaffRole changes the role of an existing membership.
func (s *churchService) UpdateStaffRole(ctx context.Context, churchID, requestingAccountID, targetAccountID string, newRole domain.ChurchRole) error {
	if err := s.AuthorizeAction(ctx, requestingAccountID, churchID, domain.ChurchRoleAdmin); err != nil {
		return err
	}

	church, err := s.churchRepo.FindChurchByID(ctx, churchID)
	if err != nil {
		return err
	}
	if targetAccountID == church.CreatedBy {
		return apperrors.NewForbiddenError("the church creator's role cannot be changed")
	}

	if err := s.churchRepo.UpdateMembershipRole(ctx, targetAccountID, churchID, newRole); err != nil {
		s.LogError(ctx, err, "Failed to update membership role",
			slog.String("church_id", churchID),
			slog.String("account_id", targetAccountID))
		return err
	}
	return nil
}

// RemoveStaff marks a membership REMOVED. The church creator cannot be removed.
func (s *churchService) RemoveStaff(ctx context.Context, churchID, requestingAccountID, targetAccountID string) error {
	return s.UpdateStaffRole(ctx, churchID, requestingAccountID, targetAccountID, domain.ChurchRoleRemoved)
}

// CreateDonationCategory adds a donation classification bucket to the church.
func (s *churchService) CreateDonationCategory(ctx context.Context, churchID, requestingAccountID string, req dto.CreateDonationCategoryRequest) (*domain.DonationCategory, error) {
	if err := s.AuthorizeAction(ctx, requestingAccountID, churchID, domain.ChurchRoleStaff); err != nil {
		return nil, err
	}

	category := domain.DonationCategory{
		CategoryID: uuid.NewString(),
		ChurchID:   churchID,
		Name:       req.Name,
		IsActive:   true,
	}
	if err := s.churchRepo.SaveDonationCategory(ctx, category); err != nil {
		return nil, err
	}
	return &category, nil
}

// ListDonationCategories lists the church's donation categories.
func (s *churchService) ListDonationCategories(ctx context.Context, churchID string) ([]domain.DonationCategory, error) {
	return s.churchRepo.ListDonationCategories(ctx, churchID)
}

// CreateChurchService adds a recurring service to the church's schedule.
func (s *churchService) CreateChurchService(ctx context.Context, churchID, requestingAccountID string, req dto.CreateChurchServiceRequest) (*domain.ChurchService, error) {
	if err := s.AuthorizeAction(ctx, requestingAccountID, churchID, domain.ChurchRoleStaff); err != nil {
		return nil, err
	}

	service := domain.ChurchService{
		ServiceID: uuid.NewString(),
		ChurchID:  churchID,
		Name:      req.Name,
		Day:       req.Day,
		StartTime: req.StartTime,
	}
	if err := s.churchRepo.SaveChurchService(ctx, service); err != nil {
		return nil, err
	}
	return &service, nil
}

// ListChurchServices lists the church's recurring services.
func (s *churchService) ListChurchServices(ctx context.Context, churchID string) ([]domain.ChurchService, error) {
	return s.churchRepo.ListChurchServices(ctx, churchID)
}
