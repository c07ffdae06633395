package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignStatus is the lifecycle state of a donation campaign.
// draft -> active -> paused | cancelled | completed; paused -> active.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCancelled CampaignStatus = "cancelled"
	CampaignCompleted CampaignStatus = "completed"
)

var campaignTransitions = map[CampaignStatus][]CampaignStatus{
	CampaignDraft:  {CampaignActive, CampaignCancelled},
	CampaignActive: {CampaignPaused, CampaignCancelled, CampaignCompleted},
	CampaignPaused: {CampaignActive, CampaignCancelled, CampaignCompleted},
}

// CanTransitionTo reports whether the status may move to next.
func (s CampaignStatus) CanTransitionTo(next CampaignStatus) bool {
	for _, allowed := range campaignTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// DonationCampaign is a church-scoped fundraising drive.
type DonationCampaign struct {
	CampaignID   string          `json:"campaignID"` // Primary Key (UUID)
	ChurchID     string          `json:"churchID"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	GoalAmount   decimal.Decimal `json:"goalAmount"`
	RaisedAmount decimal.Decimal `json:"raisedAmount"`
	Currency     string          `json:"currency"`
	StartsAt     *time.Time      `json:"startsAt,omitempty"`
	EndsAt       *time.Time      `json:"endsAt,omitempty"`
	Status       CampaignStatus  `json:"status"`
	AuditFields
}

// CampaignStatusChange is one append-only entry in a campaign's status history.
type CampaignStatusChange struct {
	ChangeID   string         `json:"changeID"`
	CampaignID string         `json:"campaignID"`
	FromStatus CampaignStatus `json:"fromStatus"`
	ToStatus   CampaignStatus `json:"toStatus"`
	Comment    string         `json:"comment,omitempty"`
	ChangedBy  string         `json:"changedBy"`
	ChangedAt  time.Time      `json:"changedAt"`
}
