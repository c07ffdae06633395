package domain

import "time"

// NotificationChannel is how a notification is delivered.
type NotificationChannel string

const (
	ChannelInApp NotificationChannel = "in_app"
	ChannelEmail NotificationChannel = "email"
)

// Notification is a church-scoped message addressed to one account.
// Marking a notification read is idempotent: re-reading keeps the original
// read timestamp.
type Notification struct {
	NotificationID string              `json:"notificationID"` // Primary Key (UUID)
	ChurchID       string              `json:"churchID"`
	AccountID      string              `json:"accountID"` // recipient
	Title          string              `json:"title"`
	Body           string              `json:"body"`
	Channel        NotificationChannel `json:"channel"`
	IsRead         bool                `json:"isRead"`
	ReadAt         *time.Time          `json:"readAt,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	CreatedBy      string              `json:"createdBy"`
}
