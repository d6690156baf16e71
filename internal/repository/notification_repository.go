package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"peduli-kasih/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, notif *domain.Notification) error
	ListByWorker(ctx context.Context, workerID uuid.UUID, unreadOnly bool, params domain.PaginationParams) ([]domain.Notification, int64, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, workerID uuid.UUID) error
	CountUnread(ctx context.Context, workerID uuid.UUID) (int64, error)
}

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	query := `
		INSERT INTO notifications (id, worker_id, type, title, message, data)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		notif.ID, notif.WorkerID, notif.Type, notif.Title, notif.Message, notif.Data,
	).Scan(&notif.CreatedAt)
}

func (r *notificationRepository) ListByWorker(ctx context.Context, workerID uuid.UUID, unreadOnly bool, params domain.PaginationParams) ([]domain.Notification, int64, error) {
	params.Validate()

	filter := ``
	if unreadOnly {
		filter = ` AND is_read = FALSE`
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM notifications WHERE worker_id = $1` + filter
	if err := r.db.GetContext(ctx, &total, countQuery, workerID); err != nil {
		return nil, 0, err
	}

	var notifs []domain.Notification
	query := `SELECT * FROM notifications WHERE worker_id = $1` + filter + `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &notifs, query, workerID, params.PageSize, params.Offset())
	return notifs, total, err
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *notificationRepository) MarkAllAsRead(ctx context.Context, workerID uuid.UUID) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE worker_id = $1 AND is_read = FALSE`
	_, err := r.db.ExecContext(ctx, query, workerID)
	return err
}

func (r *notificationRepository) CountUnread(ctx context.Context, workerID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM notifications WHERE worker_id = $1 AND is_read = FALSE`
	err := r.db.GetContext(ctx, &count, query, workerID)
	return count, err
}
