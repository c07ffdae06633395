package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shepherdsuite/church_mgmt_app/internal/apperrors"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portsrepo "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/repositories"
)

type PgxNotificationRepository struct {
	BaseRepository
}

// newPgxNotificationRepository creates a new repository for notifications.
func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepository {
	return &PgxNotificationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.NotificationRepository = (*PgxNotificationRepository)(nil)

const notificationSelectColumns = `
	n.notification_id, n.church_id, n.account_id, n.title, n.body, n.channel,
	n.read_at, n.created_at, n.created_by
`

func (r *PgxNotificationRepository) SaveNotifications(ctx context.Context, notifications []domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO notifications (notification_id, church_id, account_id, title, body, channel, read_at, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, n := range notifications {
		if _, err := tx.Exec(ctx, query,
			n.NotificationID, n.ChurchID, n.AccountID, n.Title, n.Body, n.Channel,
			n.ReadAt, n.CreatedAt, n.CreatedBy,
		); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return apperrors.NewValidationFailedError("church or account does not exist")
			}
			return apperrors.NewAppError(500, "failed to save notification "+n.NotificationID, err)
		}
	}
	return r.Commit(ctx, tx)
}

func (r *PgxNotificationRepository) FindNotificationByID(ctx context.Context, churchID, accountID, notificationID string) (*domain.Notification, error) {
	query := `
		SELECT ` + notificationSelectColumns + `
		FROM notifications n
		WHERE n.church_id = $1 AND n.account_id = $2 AND n.notification_id = $3;
	`
	var n domain.Notification
	err := r.Pool.QueryRow(ctx, query, churchID, accountID, notificationID).Scan(
		&n.NotificationID, &n.ChurchID, &n.AccountID, &n.Title, &n.Body, &n.Channel,
		&n.ReadAt, &n.CreatedAt, &n.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find notification "+notificationID, err)
	}
	n.IsRead = n.ReadAt != nil
	return &n, nil
}

func (r *PgxNotificationRepository) ListNotificationsByAccount(ctx context.Context, churchID, accountID string, unreadOnly bool, limit, offset int) ([]domain.Notification, error) {
	query := `
		SELECT ` + notificationSelectColumns + `
		FROM notifications n
		WHERE n.church_id = $1 AND n.account_id = $2
	`
	args := []any{churchID, accountID}
	if unreadOnly {
		query += ` AND n.read_at IS NULL`
	}
	args = append(args, limit)
	query += ` ORDER BY n.created_at DESC LIMIT $` + itoa(len(args))
	args = append(args, offset)
	query += ` OFFSET $` + itoa(len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list notifications for account "+accountID, err)
	}
	defer rows.Close()

	notifications := []domain.Notification{}
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(
			&n.NotificationID, &n.ChurchID, &n.AccountID, &n.Title, &n.Body, &n.Channel,
			&n.ReadAt, &n.CreatedAt, &n.CreatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan notification row", err)
		}
		n.IsRead = n.ReadAt != nil
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read notification rows", err)
	}
	return notifications, nil
}

func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, churchID, accountID, notificationID string, readAt time.Time) error {
	// COALESCE keeps the original timestamp when the notification is already read.
	query := `
		UPDATE notifications SET read_at = COALESCE(read_at, $4)
		WHERE church_id = $1 AND account_id = $2 AND notification_id = $3;
	`
	tag, err := r.Pool.Exec(ctx, query, churchID, accountID, notificationID, readAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark notification "+notificationID+" read", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
