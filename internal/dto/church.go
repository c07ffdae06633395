package dto

import (
	"time"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
)

// CreateChurchRequest defines data for creating a new church.
type CreateChurchRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=150"`
	Address      string `json:"address" binding:"omitempty,max=250"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone" binding:"omitempty,phone_ng"`
	CurrencyCode string `json:"currencyCode" binding:"omitempty,len=3"`
	ServiceDay   string `json:"serviceDay" binding:"omitempty,oneof=sunday monday tuesday wednesday thursday friday saturday"`
}

// UpdateChurchRequest defines data for updating church details.
type UpdateChurchRequest struct {
	Name         string `json:"name" binding:"omitempty,min=2,max=150"`
	Address      string `json:"address" binding:"omitempty,max=250"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone" binding:"omitempty,phone_ng"`
	CurrencyCode string `json:"currencyCode" binding:"omitempty,len=3"`
	ServiceDay   string `json:"serviceDay" binding:"omitempty,oneof=sunday monday tuesday wednesday thursday friday saturday"`
}

// ChurchResponse defines data returned for a church.
type ChurchResponse struct {
	ChurchID     string    `json:"churchID"`
	Name         string    `json:"name"`
	Address      string    `json:"address,omitempty"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	LogoURL      string    `json:"logoURL,omitempty"`
	CurrencyCode string    `json:"currencyCode"`
	ServiceDay   string    `json:"serviceDay,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	CreatedBy    string    `json:"createdBy"`
}

// ToChurchResponse converts domain.Church to DTO.
func ToChurchResponse(c *domain.Church) ChurchResponse {
	return ChurchResponse{
		ChurchID:     c.ChurchID,
		Name:         c.Name,
		Address:      c.Address,
		Email:        c.Email,
		Phone:        c.Phone,
		LogoURL:      c.LogoURL,
		CurrencyCode: c.CurrencyCode,
		ServiceDay:   c.ServiceDay,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
		CreatedBy:    c.CreatedBy,
	}
}

// ListChurchesResponse wraps a list of churches.
type ListChurchesResponse struct {
	Churches []ChurchResponse `json:"churches"`
}

// ToListChurchesResponse converts a slice of domain.Church to DTO.
func ToListChurchesResponse(cs []domain.Church) ListChurchesResponse {
	list := make([]ChurchResponse, len(cs))
	for i, c := range cs {
		list[i] = ToChurchResponse(&c)
	}
	return ListChurchesResponse{Churches: list}
}

// AddStaffRequest defines data for adding a staff account to a church.
type AddStaffRequest struct {
	AccountID string            `json:"accountID" binding:"required"`
	Role      domain.ChurchRole `json:"role" binding:"required,oneof=ADMIN STAFF VOLUNTEER MEMBER"`
}

// UpdateStaffRoleRequest defines data for changing a membership's role.
type UpdateStaffRoleRequest struct {
	Role domain.ChurchRole `json:"role" binding:"required,oneof=ADMIN STAFF VOLUNTEER MEMBER"`
}

// MembershipResponse defines data returned about a church membership.
type MembershipResponse struct {
	AccountID   string            `json:"accountID"`
	AccountName string            `json:"accountName,omitempty"`
	ChurchID    string            `json:"churchID"`
	Role        domain.ChurchRole `json:"role"`
	JoinedAt    time.Time         `json:"joinedAt"`
}

// ToMembershipResponse converts domain.ChurchMembership to DTO.
func ToMembershipResponse(m *domain.ChurchMembership) MembershipResponse {
	return MembershipResponse{
		AccountID:   m.AccountID,
		AccountName: m.AccountName,
		ChurchID:    m.ChurchID,
		Role:        m.Role,
		JoinedAt:    m.JoinedAt,
	}
}

// CreateDonationCategoryRequest defines data for a church donation category.
type CreateDonationCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// CreateChurchServiceRequest defines data for a recurring church service.
type CreateChurchServiceRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=100"`
	Day       string `json:"day" binding:"required,oneof=sunday monday tuesday wednesday thursday friday saturday"`
	StartTime string `json:"startTime" binding:"omitempty,datetime=15:04"`
}
