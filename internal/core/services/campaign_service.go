package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shepherdsuite/church_mgmt_app/internal/apperrors"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portsrepo "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
	"github.com/shepherdsuite/church_mgmt_app/internal/utils/pagination"
)

// campaignService implements the CampaignSvcFacade interface
type campaignService struct {
	BaseService
	campaignRepo portsrepo.CampaignRepository
	churchRepo   portsrepo.ChurchRepository
	entitlement  portssvc.EntitlementSvc
}

// NewCampaignService creates a new campaign service with the provided dependencies
func NewCampaignService(campaignRepo portsrepo.CampaignRepository, churchRepo portsrepo.ChurchRepository, entitlement portssvc.EntitlementSvc, authorizer portssvc.ChurchAuthorizerSvc) portssvc.CampaignSvcFacade {
	return &campaignService{
		BaseService:  BaseService{ChurchAuthorizer: authorizer},
		campaignRepo: campaignRepo,
		churchRepo:   churchRepo,
		entitlement:  entitlement,
	}
}

var _ portssvc.CampaignSvcFacade = (*campaignService)(nil)

// CreateCampaign persists a new draft campaign. Campaign creation counts
// against the church creator's plan.
func (s *campaignService) CreateCampaign(ctx context.Context, churchID, requestingAccountID string, req dto.CreateCampaignRequest) (*domain.DonationCampaign, error) {
	if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleStaff); err != nil {
		return nil, err
	}
	if req.GoalAmount.IsNegative() || req.GoalAmount.IsZero() {
		return nil, apperrors.NewValidationFailedError("goal amount must be greater than zero")
	}
	if req.StartsAt != nil && req.EndsAt != nil && req.EndsAt.Before(*req.StartsAt) {
		return nil, apperrors.NewValidationFailedError("campaign end must be after its start")
	}

	church, err := s.churchRepo.FindChurchByID(ctx, churchID)
	if err != nil {
		return nil, err
	}
	if err := s.entitlement.RequireEntitlement(ctx, church.CreatedBy, domain.ActionCreateCampaign); err != nil {
		return nil, err
	}

	now := time.Now()
	campaign := domain.DonationCampaign{
		CampaignID:   uuid.NewString(),
		ChurchID:     churchID,
		Title:        req.Title,
		Description:  req.Description,
		GoalAmount:   req.GoalAmount,
		RaisedAmount: decimal.Zero,
		Currency:     church.CurrencyCode,
		StartsAt:     req.StartsAt,
		EndsAt:       req.EndsAt,
		Status:       domain.CampaignDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingAccountID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingAccountID,
		},
	}
	if err := s.campaignRepo.SaveCampaign(ctx, campaign); err != nil {
		s.LogError(ctx, err, "Failed to save campaign", slog.String("church_id", churchID))
		return nil, err
	}

	s.LogInfo(ctx, "Campaign created",
		slog.String("campaign_id", campaign.CampaignID),
		slog.String("church_id", churchID))
	return &campaign, nil
}

// GetCampaignByID retrieves a campaign within the church.
func (s *campaignService) GetCampaignByID(ctx context.Context, churchID, campaignID string) (*domain.DonationCampaign, error) {
	campaign, err := s.campaignRepo.FindCampaignByID(ctx, churchID, campaignID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find campaign", slog.String("campaign_id", campaignID))
		}
		return nil, err
	}
	return campaign, nil
}

// ListCampaigns retrieves a paginated list of the church's campaigns.
func (s *campaignService) ListCampaigns(ctx context.Context, churchID string, params pagination.Params) ([]domain.DonationCampaign, error) {
	campaigns, err := s.campaignRepo.ListCampaigns(ctx, churchID, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list campaigns", slog.String("church_id", churchID))
		return nil, err
	}
	if campaigns == nil {
		return []domain.DonationCampaign{}, nil
	}
	return campaigns, nil
}

// UpdateCampaign edits a campaign's details. Completed and cancelled
// campaigns are closed to edits.
func (s *campaignService) UpdateCampaign(ctx context.Context, churchID, campaignID, requestingAccountID string, req dto.UpdateCampaignRequest) (*domain.DonationCampaign, error) {
	if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleStaff); err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepo.FindCampaignByID(ctx, churchID, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.Status == domain.CampaignCompleted || campaign.Status == domain.CampaignCancelled {
		return nil, apperrors.NewConflictError("completed or cancelled campaigns cannot be edited")
	}

	if req.Title != "" {
		campaign.Title = req.Title
	}
	if req.Description != "" {
		campaign.Description = req.Description
	}
	if req.GoalAmount != nil {
		if req.GoalAmount.IsNegative() || req.GoalAmount.IsZero() {
			return nil, apperrors.NewValidationFailedError("goal amount must be greater than zero")
		}
		campaign.GoalAmount = *req.GoalAmount
	}
	if req.StartsAt != nil {
		campaign.StartsAt = req.StartsAt
	}
	if req.EndsAt != nil {
		campaign.EndsAt = req.EndsAt
	}
	if campaign.StartsAt != nil && campaign.EndsAt != nil && campaign.EndsAt.Before(*campaign.StartsAt) {
		return nil, apperrors.NewValidationFailedError("campaign end must be after its start")
	}
	campaign.LastUpdatedAt = time.Now()
	campaign.LastUpdatedBy = requestingAccountID

	if err := s.campaignRepo.UpdateCampaign(ctx, *campaign); err != nil {
		s.LogError(ctx, err, "Failed to update campaign", slog.String("campaign_id", campaignID))
		return nil, err
	}
	return campaign, nil
}

// TransitionCampaign moves the campaign along its lifecycle and appends a
// status-history entry. Requires ADMIN.
func (s *campaignService) TransitionCampaign(ctx context.Context, churchID, campaignID, requestingAccountID string, next domain.CampaignStatus, comment string) (*domain.DonationCampaign, error) {
	if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleAdmin); err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepo.FindCampaignByID(ctx, churchID, campaignID)
	if err != nil {
		return nil, err
	}
	if !campaign.Status.CanTransitionTo(next) {
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("campaign cannot move from %s to %s", campaign.Status, next))
	}

	if err := s.campaignRepo.UpdateCampaignStatus(ctx, churchID, campaignID, next, requestingAccountID); err != nil {
		s.LogError(ctx, err, "Failed to update campaign status", slog.String("campaign_id", campaignID))
		return nil, err
	}

	change := domain.CampaignStatusChange{
		ChangeID:   uuid.NewString(),
		CampaignID: campaignID,
		FromStatus: campaign.Status,
		ToStatus:   next,
		Comment:    comment,
		ChangedBy:  requestingAccountID,
		ChangedAt:  time.Now(),
	}
	if err := s.campaignRepo.AddStatusChange(ctx, change); err != nil {
		s.LogError(ctx, err, "Failed to record campaign status change", slog.String("campaign_id", campaignID))
		return nil, err
	}

	campaign.Status = next
	campaign.LastUpdatedAt = change.ChangedAt
	campaign.LastUpdatedBy = requestingAccountID

	s.LogInfo(ctx, "Campaign status changed",
		slog.String("campaign_id", campaignID),
		slog.String("from", string(change.FromStatus)),
		slog.String("to", string(next)))
	return campaign, nil
}

// ListCampaignHistory lists the campaign's status changes, oldest first.
func (s *campaignService) ListCampaignHistory(ctx context.Context, churchID, campaignID string) ([]domain.CampaignStatusChange, error) {
	if _, err := s.campaignRepo.FindCampaignByID(ctx, churchID, campaignID); err != nil {
		return nil, err
	}
	return s.campaignRepo.ListStatusHistory(ctx, churchID, campaignID)
}
