package dto

import (
	"time"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
)

// CreateMemberRequest defines data for registering a congregation member.
type CreateMemberRequest struct {
	FirstName     string     `json:"firstName" binding:"required,min=2,max=100"`
	LastName      string     `json:"lastName" binding:"required,min=2,max=100"`
	Email         string     `json:"email" binding:"omitempty,email"`
	Phone         string     `json:"phone" binding:"omitempty,phone_ng"`
	Gender        string     `json:"gender" binding:"omitempty,oneof=male female"`
	MaritalStatus string     `json:"maritalStatus" binding:"omitempty,oneof=single married widowed divorced"`
	JoinedDate    *time.Time `json:"joinedDate"`
}

// UpdateMemberRequest defines data for updating a member record.
type UpdateMemberRequest struct {
	FirstName     string              `json:"firstName" binding:"omitempty,min=2,max=100"`
	LastName      string              `json:"lastName" binding:"omitempty,min=2,max=100"`
	Email         string              `json:"email" binding:"omitempty,email"`
	Phone         string              `json:"phone" binding:"omitempty,phone_ng"`
	Gender        string              `json:"gender" binding:"omitempty,oneof=male female"`
	MaritalStatus string              `json:"maritalStatus" binding:"omitempty,oneof=single married widowed divorced"`
	JoinedDate    *time.Time          `json:"joinedDate"`
	Status        domain.MemberStatus `json:"status" binding:"omitempty,oneof=active inactive"`
}

// MemberResponse defines data returned for a member.
type MemberResponse struct {
	MemberID      string              `json:"memberID"`
	ChurchID      string              `json:"churchID"`
	FirstName     string              `json:"firstName"`
	LastName      string              `json:"lastName"`
	Email         string              `json:"email,omitempty"`
	Phone         string              `json:"phone,omitempty"`
	Gender        string              `json:"gender,omitempty"`
	MaritalStatus string              `json:"maritalStatus,omitempty"`
	JoinedDate    *time.Time          `json:"joinedDate,omitempty"`
	Status        domain.MemberStatus `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// ToMemberResponse converts domain.Member to DTO.
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:      m.MemberID,
		ChurchID:      m.ChurchID,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Email:         m.Email,
		Phone:         m.Phone,
		Gender:        m.Gender,
		MaritalStatus: m.MaritalStatus,
		JoinedDate:    m.JoinedDate,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
	}
}

// ListMembersResponse wraps a paginated list of members.
type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}

// MemberNoteRequest defines data for appending or editing a member note.
type MemberNoteRequest struct {
	Body string `json:"body" binding:"required,min=1,max=2000"`
}

// MemberNoteResponse defines data returned for a member note.
type MemberNoteResponse struct {
	NoteID    string    `json:"noteID"`
	MemberID  string    `json:"memberID"`
	Body      string    `json:"body"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToMemberNoteResponse converts domain.MemberNote to DTO.
func ToMemberNoteResponse(n *domain.MemberNote) MemberNoteResponse {
	return MemberNoteResponse{
		NoteID:    n.NoteID,
		MemberID:  n.MemberID,
		Body:      n.Body,
		CreatedBy: n.CreatedBy,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
