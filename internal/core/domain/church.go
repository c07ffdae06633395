package domain

import "time"

// Church is the unit of data isolation: every member, team, donation, expense,
// campaign, financial record and notification belongs to exactly one church.
type Church struct {
	ChurchID string `json:"churchID"` // Primary Key (UUID)
	Name     string `json:"name"`
	Address  string `json:"address"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LogoURL  string `json:"logoURL"`

	// Settings
	CurrencyCode string `json:"currencyCode"` // e.g. "NGN"
	ServiceDay   string `json:"serviceDay"`   // e.g. "sunday"

	IsActive bool `json:"isActive"`
	AuditFields
}

// ChurchRole defines the possible roles an account can have within a church.
type ChurchRole string

const (
	ChurchRoleAdmin     ChurchRole = "ADMIN"
	ChurchRoleStaff     ChurchRole = "STAFF"
	ChurchRoleVolunteer ChurchRole = "VOLUNTEER"
	ChurchRoleMember    ChurchRole = "MEMBER"
	ChurchRoleRemoved   ChurchRole = "REMOVED" // tombstone for removed memberships
)

// roleRank orders church roles for permission comparisons. Higher outranks lower.
var roleRank = map[ChurchRole]int{
	ChurchRoleMember:    1,
	ChurchRoleVolunteer: 2,
	ChurchRoleStaff:     3,
	ChurchRoleAdmin:     4,
}

// Meets reports whether the role grants at least the permissions of required.
// REMOVED (and any unknown role) meets nothing.
func (r ChurchRole) Meets(required ChurchRole) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}
	want, ok := roleRank[required]
	if !ok {
		return false
	}
	return have >= want
}

// ChurchMembership links an account to a church with a church-scoped role.
type ChurchMembership struct {
	AccountID   string     `json:"accountID"`
	AccountName string     `json:"accountName"`
	ChurchID    string     `json:"churchID"`
	Role        ChurchRole `json:"role"`
	JoinedAt    time.Time  `json:"joinedAt"`
}

// DonationCategory is a church-defined bucket for classifying donations
// (tithe, offering, building fund, ...).
type DonationCategory struct {
	CategoryID string `json:"categoryID"`
	ChurchID   string `json:"churchID"`
	Name       string `json:"name"`
	IsActive   bool   `json:"isActive"`
}

// ChurchService is a recurring service/meeting the church holds.
type ChurchService struct {
	ServiceID string `json:"serviceID"`
	ChurchID  string `json:"churchID"`
	Name      string `json:"name"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"` // "HH:MM", informational only
}
