package dto

import (
	"time"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDonationRequest defines data for recording a donation.
type CreateDonationRequest struct {
	MemberID   *string               `json:"memberID"`
	CategoryID *string               `json:"categoryID"`
	CampaignID *string               `json:"campaignID"`
	Amount     decimal.Decimal       `json:"amount" binding:"required"`
	Method     domain.DonationMethod `json:"method" binding:"required,oneof=cash transfer card other"`
	Reference  string                `json:"reference" binding:"omitempty,max=100"`
	DonatedAt  *time.Time            `json:"donatedAt"`
}

// UpdateDonationRequest defines data for correcting a donation record.
type UpdateDonationRequest struct {
	MemberID   *string               `json:"memberID"`
	CategoryID *string               `json:"categoryID"`
	Amount     *decimal.Decimal      `json:"amount"`
	Method     domain.DonationMethod `json:"method" binding:"omitempty,oneof=cash transfer card other"`
	Reference  string                `json:"reference" binding:"omitempty,max=100"`
	DonatedAt  *time.Time            `json:"donatedAt"`
}

// DonationResponse defines data returned for a donation.
type DonationResponse struct {
	DonationID string                `json:"donationID"`
	ChurchID   string                `json:"churchID"`
	MemberID   *string               `json:"memberID,omitempty"`
	CategoryID *string               `json:"categoryID,omitempty"`
	CampaignID *string               `json:"campaignID,omitempty"`
	Amount     decimal.Decimal       `json:"amount"`
	Currency   string                `json:"currency"`
	Method     domain.DonationMethod `json:"method"`
	Reference  string                `json:"reference,omitempty"`
	DonatedAt  time.Time             `json:"donatedAt"`
	CreatedAt  time.Time             `json:"createdAt"`
}

// ToDonationResponse converts domain.Donation to DTO.
func ToDonationResponse(d *domain.Donation) DonationResponse {
	return DonationResponse{
		DonationID: d.DonationID,
		ChurchID:   d.ChurchID,
		MemberID:   d.MemberID,
		CategoryID: d.CategoryID,
		CampaignID: d.CampaignID,
		Amount:     d.Amount,
		Currency:   d.Currency,
		Method:     d.Method,
		Reference:  d.Reference,
		DonatedAt:  d.DonatedAt,
		CreatedAt:  d.CreatedAt,
	}
}

// ListDonationsResponse wraps a paginated list of donations.
type ListDonationsResponse struct {
	Donations []DonationResponse `json:"donations"`
	Page      int                `json:"page"`
	Limit     int                `json:"limit"`
}
