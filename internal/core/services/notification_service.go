package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shepherdsuite/church_mgmt_app/internal/apperrors"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portsrepo "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
	"github.com/shepherdsuite/church_mgmt_app/internal/platform/notify"
	"github.com/shepherdsuite/church_mgmt_app/internal/utils/pagination"
)

// notificationService implements the NotificationSvcFacade interface
type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepository
	churchRepo       portsrepo.ChurchRepository
	accountRepo      portsrepo.AccountRepository
	mailer           notify.Mailer
}

// NewNotificationService creates a new notification service with the provided dependencies
func NewNotificationService(notificationRepo portsrepo.NotificationRepository, churchRepo portsrepo.ChurchRepository, accountRepo portsrepo.AccountRepository, mailer notify.Mailer, authorizer portssvc.ChurchAuthorizerSvc) portssvc.NotificationSvcFacade {
	return &notificationService{
		BaseService:      BaseService{ChurchAuthorizer: authorizer},
		notificationRepo: notificationRepo,
		churchRepo:       churchRepo,
		accountRepo:      accountRepo,
		mailer:           mailer,
	}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// Broadcast creates a notification for every account linked to the church,
// optionally restricted to one church role, and returns the recipient count.
// Email delivery is best-effort: send failures are logged and never fail the
// broadcast.
func (s *notificationService) Broadcast(ctx context.Context, churchID, requestingAccountID string, req dto.BroadcastNotificationRequest) (int, error) {
	if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleStaff); err != nil {
		return 0, err
	}

	memberships, err := s.churchRepo.ListMemberships(ctx, churchID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list memberships for broadcast", slog.String("church_id", churchID))
		return 0, err
	}

	now := time.Now()
	notifications := make([]domain.Notification, 0, len(memberships))
	for _, m := range memberships {
		if m.Role == domain.ChurchRoleRemoved {
			continue
		}
		if req.Role != "" && m.Role != req.Role {
			continue
		}
		notifications = append(notifications, domain.Notification{
			NotificationID: uuid.NewString(),
			ChurchID:       churchID,
			AccountID:      m.AccountID,
			Title:          req.Title,
			Body:           req.Body,
			Channel:        req.Channel,
			CreatedAt:      now,
			CreatedBy:      requestingAccountID,
		})
	}
	if len(notifications) == 0 {
		return 0, nil
	}

	if err := s.notificationRepo.SaveNotifications(ctx, notifications); err != nil {
		s.LogError(ctx, err, "Failed to save notifications", slog.String("church_id", churchID))
		return 0, err
	}

	if req.Channel == domain.ChannelEmail {
		for _, n := range notifications {
			account, err := s.accountRepo.FindAccountByID(ctx, n.AccountID)
			if err != nil {
				s.LogWarn(ctx, "Skipping email for unresolvable recipient",
					slog.String("account_id", n.AccountID))
				continue
			}
			if err := s.mailer.Send(ctx, account.Email, req.Title, req.Body); err != nil {
				s.LogWarn(ctx, "Failed to send notification email",
					slog.String("account_id", n.AccountID),
					slog.String("error", err.Error()))
			}
		}
	}

	s.LogInfo(ctx, "Notification broadcast",
		slog.String("church_id", churchID),
		slog.Int("recipients", len(notifications)))
	return len(notifications), nil
}

// ListMine retrieves the caller's notifications in the church, newest first.
func (s *notificationService) ListMine(ctx context.Context, churchID, accountID string, unreadOnly bool, params pagination.Params) ([]domain.Notification, error) {
	notifications, err := s.notificationRepo.ListNotificationsByAccount(ctx, churchID, accountID, unreadOnly, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list notifications", slog.String("account_id", accountID))
		return nil, err
	}
	if notifications == nil {
		return []domain.Notification{}, nil
	}
	return notifications, nil
}

// MarkRead marks one of the caller's notifications read. Re-reading keeps the
// original read timestamp.
func (s *notificationService) MarkRead(ctx context.Context, churchID, accountID, notificationID string) (*domain.Notification, error) {
	if err := s.notificationRepo.MarkNotificationRead(ctx, churchID, accountID, notificationID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to mark notification read", slog.String("notification_id", notificationID))
		}
		return nil, err
	}
	return s.notificationRepo.FindNotificationByID(ctx, churchID, accountID, notificationID)
}
