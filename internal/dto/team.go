package dto

import (
	"time"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
)

// CreateTeamRequest defines data for creating a volunteer team.
type CreateTeamRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Description  string `json:"description" binding:"omitempty,max=500"`
	LeadMemberID string `json:"leadMemberID" binding:"omitempty"`
}

// UpdateTeamRequest defines data for updating a volunteer team.
type UpdateTeamRequest struct {
	Name         string `json:"name" binding:"omitempty,min=2,max=100"`
	Description  string `json:"description" binding:"omitempty,max=500"`
	LeadMemberID string `json:"leadMemberID" binding:"omitempty"`
	IsActive     *bool  `json:"isActive"`
}

// TeamResponse defines data returned for a volunteer team.
type TeamResponse struct {
	TeamID       string    `json:"teamID"`
	ChurchID     string    `json:"churchID"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	LeadMemberID string    `json:"leadMemberID,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToTeamResponse converts domain.VolunteerTeam to DTO.
func ToTeamResponse(t *domain.VolunteerTeam) TeamResponse {
	return TeamResponse{
		TeamID:       t.TeamID,
		ChurchID:     t.ChurchID,
		Name:         t.Name,
		Description:  t.Description,
		LeadMemberID: t.LeadMember,
		IsActive:     t.IsActive,
		CreatedAt:    t.CreatedAt,
	}
}

// AddTeamMemberRequest defines data for adding a member to a team.
type AddTeamMemberRequest struct {
	MemberID string `json:"memberID" binding:"required"`
}

// TeamMemberResponse defines data returned for a team member.
type TeamMemberResponse struct {
	TeamID      string    `json:"teamID"`
	MemberID    string    `json:"memberID"`
	MemberName  string    `json:"memberName,omitempty"`
	ServedSince time.Time `json:"servedSince"`
}
