package dto

import (
	"time"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
)

// BroadcastNotificationRequest sends a notification to every account linked
// to the church (optionally restricted by church role).
type BroadcastNotificationRequest struct {
	Title   string                     `json:"title" binding:"required,min=2,max=150"`
	Body    string                     `json:"body" binding:"required,min=1,max=2000"`
	Channel domain.NotificationChannel `json:"channel" binding:"required,oneof=in_app email"`
	Role    domain.ChurchRole          `json:"role" binding:"omitempty,oneof=ADMIN STAFF VOLUNTEER MEMBER"`
}

// NotificationResponse defines data returned for a notification.
type NotificationResponse struct {
	NotificationID string                     `json:"notificationID"`
	ChurchID       string                     `json:"churchID"`
	Title          string                     `json:"title"`
	Body           string                     `json:"body"`
	Channel        domain.NotificationChannel `json:"channel"`
	IsRead         bool                       `json:"isRead"`
	ReadAt         *time.Time                 `json:"readAt,omitempty"`
	CreatedAt      time.Time                  `json:"createdAt"`
}

// ToNotificationResponse converts domain.Notification to DTO.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		ChurchID:       n.ChurchID,
		Title:          n.Title,
		Body:           n.Body,
		Channel:        n.Channel,
		IsRead:         n.IsRead,
		ReadAt:         n.ReadAt,
		CreatedAt:      n.CreatedAt,
	}
}
