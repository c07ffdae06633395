package domain

import "time"

// VolunteerTeam is a church-scoped serving team (ushers, choir, media, ...).
type VolunteerTeam struct {
	TeamID      string `json:"teamID"` // Primary Key (UUID)
	ChurchID    string `json:"churchID"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	LeadMember  string `json:"leadMemberID,omitempty"` // Member reference
	IsActive    bool   `json:"isActive"`
	AuditFields
}

// TeamMember links a congregation member to a volunteer team.
type TeamMember struct {
	TeamID      string    `json:"teamID"`
	MemberID    string    `json:"memberID"`
	MemberName  string    `json:"memberName"`
	ServedSince time.Time `json:"servedSince"`
}
