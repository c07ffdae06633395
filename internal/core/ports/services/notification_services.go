package services

import (
	"context"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
	"github.com/shepherdsuite/church_mgmt_app/internal/utils/pagination"
)

// NotificationSvcFacade defines operations for church notifications.
type NotificationSvcFacade interface {
	// Broadcast creates a notification for every account linked to the church
	// (optionally restricted by role) and returns the recipient count. Email
	// delivery is best-effort.
	Broadcast(ctx context.Context, churchID, requestingAccountID string, req dto.BroadcastNotificationRequest) (int, error)

	// ListMine retrieves the caller's notifications in the church.
	ListMine(ctx context.Context, churchID, accountID string, unreadOnly bool, params pagination.Params) ([]domain.Notification, error)

	// MarkRead marks one of the caller's notifications read. Idempotent: the
	// original read timestamp is kept.
	MarkRead(ctx context.Context, churchID, accountID, notificationID string) (*domain.Notification, error)
}
