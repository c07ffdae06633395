package dto

import (
	"time"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCampaignRequest defines data for creating a donation campaign.
type CreateCampaignRequest struct {
	Title       string          `json:"title" binding:"required,min=2,max=150"`
	Description string          `json:"description" binding:"omitempty,max=1000"`
	GoalAmount  decimal.Decimal `json:"goalAmount" binding:"required"`
	StartsAt    *time.Time      `json:"startsAt"`
	EndsAt      *time.Time      `json:"endsAt"`
}

// UpdateCampaignRequest defines data for editing a campaign.
type UpdateCampaignRequest struct {
	Title       string           `json:"title" binding:"omitempty,min=2,max=150"`
	Description string           `json:"description" binding:"omitempty,max=1000"`
	GoalAmount  *decimal.Decimal `json:"goalAmount"`
	StartsAt    *time.Time       `json:"startsAt"`
	EndsAt      *time.Time       `json:"endsAt"`
}

// CampaignTransitionRequest moves a campaign to a new lifecycle status.
type CampaignTransitionRequest struct {
	Status  domain.CampaignStatus `json:"status" binding:"required,oneof=active paused cancelled completed"`
	Comment string                `json:"comment" binding:"omitempty,max=500"`
}

// CampaignResponse defines data returned for a campaign.
type CampaignResponse struct {
	CampaignID   string                `json:"campaignID"`
	ChurchID     string                `json:"churchID"`
	Title        string                `json:"title"`
	Description  string                `json:"description,omitempty"`
	GoalAmount   decimal.Decimal       `json:"goalAmount"`
	RaisedAmount decimal.Decimal       `json:"raisedAmount"`
	Currency     string                `json:"currency"`
	StartsAt     *time.Time            `json:"startsAt,omitempty"`
	EndsAt       *time.Time            `json:"endsAt,omitempty"`
	Status       domain.CampaignStatus `json:"status"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// ToCampaignResponse converts domain.DonationCampaign to DTO.
func ToCampaignResponse(c *domain.DonationCampaign) CampaignResponse {
	return CampaignResponse{
		CampaignID:   c.CampaignID,
		ChurchID:     c.ChurchID,
		Title:        c.Title,
		Description:  c.Description,
		GoalAmount:   c.GoalAmount,
		RaisedAmount: c.RaisedAmount,
		Currency:     c.Currency,
		StartsAt:     c.StartsAt,
		EndsAt:       c.EndsAt,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
	}
}

// CampaignStatusChangeResponse is one status-history entry.
type CampaignStatusChangeResponse struct {
	ChangeID   string                `json:"changeID"`
	FromStatus domain.CampaignStatus `json:"fromStatus"`
	ToStatus   domain.CampaignStatus `json:"toStatus"`
	Comment    string                `json:"comment,omitempty"`
	ChangedBy  string                `json:"changedBy"`
	ChangedAt  time.Time             `json:"changedAt"`
}
