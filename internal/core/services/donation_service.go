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
	"github.com/shepherdsuite/church_mgmt_app/internal/utils/pagination"
)

// donationService implements the DonationSvcFacade interface
type donationService struct {
	BaseService
	donationRepo portsrepo.DonationRepository
	campaignRepo portsrepo.CampaignRepository
	churchRepo   portsrepo.ChurchRepository
}

// NewDonationService creates a new donation service with the provided dependencies
func NewDonationService(donationRepo portsrepo.DonationRepository, campaignRepo portsrepo.CampaignRepository, churchRepo portsrepo.ChurchRepository, authorizer portssvc.ChurchAuthorizerSvc) portssvc.DonationSvcFacade {
	return &donationService{
		BaseService:  BaseService{ChurchAuthorizer: authorizer},
		donationRepo: donationRepo,
		campaignRepo: campaignRepo,
		churchRepo:   churchRepo,
	}
}

var _ portssvc.DonationSvcFacade = (*donationService)(nil)

// RecordDonation persists a donation in the church's currency. A campaign
// reference must point at an active campaign and adds the amount to its
// raised total.
func (s *donationService) RecordDonation(ctx context.Context, churchID, requestingAccountID string, req dto.CreateDonationRequest) (*domain.Donation, error) {
	if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleStaff); err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, apperrors.NewValidationFailedError("amount must be greater than zero")
	}

	church, err := s.churchRepo.FindChurchByID(ctx, churchID)
	if err != nil {
		return nil, err
	}

	if req.CampaignID != nil {
		campaign, err := s.campaignRepo.FindCampaignByID(ctx, churchID, *req.CampaignID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewNotFoundError("campaign not found")
			}
			return nil, err
		}
		if campaign.Status != domain.CampaignActive {
			return nil, apperrors.NewValidationFailedError("donations can only be recorded against an active campaign")
		}
	}

	donatedAt := time.Now()
	if req.DonatedAt != nil {
		donatedAt = *req.DonatedAt
	}

	now := time.Now()
	donation := domain.Donation{
		DonationID: uuid.NewString(),
		ChurchID:   churchID,
		MemberID:   req.MemberID,
		CategoryID: req.CategoryID,
		CampaignID: req.CampaignID,
		Amount:     req.Amount,
		Currency:   church.CurrencyCode,
		Method:     req.Method,
		Reference:  req.Reference,
		DonatedAt:  donatedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingAccountID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingAccountID,
		},
	}
	if err := s.donationRepo.SaveDonation(ctx, donation); err != nil {
		s.LogError(ctx, err, "Failed to save donation", slog.String("church_id", churchID))
		return nil, err
	}

	if req.CampaignID != nil {
		if err := s.campaignRepo.AddToRaisedAmount(ctx, churchID, *req.CampaignID, req.Amount); err != nil {
			s.LogError(ctx, err, "Failed to add donation to campaign total",
				slog.String("donation_id", donation.DonationID),
				slog.String("campaign_id", *req.CampaignID))
			return nil, err
		}
	}

	s.LogInfo(ctx, "Donation recorded",
		slog.String("donation_id", donation.DonationID),
		slog.String("church_id", churchID))
	return &donation, nil
}

// GetDonationByID retrieves a donation within the church.
func (s *donationService) GetDonationByID(ctx context.Context, churchID, donationID string) (*domain.Donation, error) {
	donation, err := s.donationRepo.FindDonationByID(ctx, churchID, donationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find donation", slog.String("donation_id", donationID))
		}
		return nil, err
	}
	return donation, nil
}

// ListDonations retrieves a filtered, paginated list of the church's donations.
func (s *donationService) ListDonations(ctx context.Context, churchID string, filter portsrepo.DonationFilter, params pagination.Params) ([]domain.Donation, error) {
	donations, err := s.donationRepo.ListDonations(ctx, churchID, filter, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list donations", slog.String("church_id", churchID))
		return nil, err
	}
	if donations == nil {
		return []domain.Donation{}, nil
	}
	return donations, nil
}

// UpdateDonation corrects a donation record. Campaign references are fixed at
// recording time and cannot be changed here.
func (s *donationService) UpdateDonation(ctx context.Context, churchID, donationID, requestingAccountID string, req dto.UpdateDonationRequest) (*domain.Donation, error) {
	if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleStaff); err != nil {
		return nil, err
	}

	donation, err := s.donationRepo.FindDonationByID(ctx, churchID, donationID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if req.Amount.IsNegative() || req.Amount.IsZero() {
			return nil, apperrors.NewValidationFailedError("amount must be greater than zero")
		}
		if donation.CampaignID != nil && !req.Amount.Equal(donation.Amount) {
			delta := req.Amount.Sub(donation.Amount)
			if err := s.campaignRepo.AddToRaisedAmount(ctx, churchID, *donation.CampaignID, delta); err != nil {
				s.LogError(ctx, err, "Failed to adjust campaign total",
					slog.String("donation_id", donationID),
					slog.String("campaign_id", *donation.CampaignID))
				return nil, err
			}
		}
		donation.Amount = *req.Amount
	}
	if req.MemberID != nil {
		donation.MemberID = req.MemberID
	}
	if req.CategoryID != nil {
		donation.CategoryID = req.CategoryID
	}
	if req.Method != "" {
		donation.Method = req.Method
	}
	if req.Reference != "" {
		donation.Reference = req.Reference
	}
	if req.DonatedAt != nil {
		donation.DonatedAt = *req.DonatedAt
	}
	donation.LastUpdatedAt = time.Now()
	donation.LastUpdatedBy = requestingAccountID

	if err := s.donationRepo.UpdateDonation(ctx, *donation); err != nil {
		s.LogError(ctx, err, "Failed to update donation", slog.String("donation_id", donationID))
		return nil, err
	}
	return donation, nil
}

// DeleteDonation removes a donation record and reverses its campaign
// contribution when one exists.
func (s *donationService) DeleteDonation(ctx context.Context, churchID, donationID, requestingAccountID string) error {
	if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleAdmin); err != nil {
		return err
	}

	donation, err := s.donationRepo.FindDonationByID(ctx, churchID, donationID)
	if err != nil {
		return err
	}

	if err := s.donationRepo.DeleteDonation(ctx, churchID, donationID); err != nil {
		s.LogError(ctx, err, "Failed to delete donation", slog.String("donation_id", donationID))
		return err
	}

	if donation.CampaignID != nil {
		if err := s.campaignRepo.AddToRaisedAmount(ctx, churchID, *donation.CampaignID, donation.Amount.Neg()); err != nil {
			s.LogError(ctx, err, "Failed to reverse campaign total",
				slog.String("donation_id", donationID),
				slog.String("campaign_id", *donation.CampaignID))
			return err
		}
	}

	s.LogInfo(ctx, "Donation deleted",
		slog.String("donation_id", donationID),
		slog.String("church_id", churchID))
	return nil
}
