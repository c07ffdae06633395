package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DonationMethod is how a donation was received.
type DonationMethod string

const (
	DonationCash     DonationMethod = "cash"
	DonationTransfer DonationMethod = "transfer"
	DonationCard     DonationMethod = "card"
	DonationOther    DonationMethod = "other"
)

// Donation is a single gift received by a church.
type Donation struct {
	DonationID string          `json:"donationID"` // Primary Key (UUID)
	ChurchID   string          `json:"churchID"`
	MemberID   *string         `json:"memberID,omitempty"`   // nil for anonymous gifts
	CategoryID *string         `json:"categoryID,omitempty"` // DonationCategory reference
	CampaignID *string         `json:"campaignID,omitempty"` // DonationCampaign reference
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Method     DonationMethod  `json:"method"`
	Reference  string          `json:"reference,omitempty"` // bank/teller reference
	DonatedAt  time.Time       `json:"donatedAt"`
	AuditFields
}
