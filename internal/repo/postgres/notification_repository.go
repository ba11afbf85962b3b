package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/giftlist/internal/domain"
	"github.com/Gunvolt24/giftlist/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.NotificationRepository = (*NotificationRepository)(nil)

// NotificationRepository — журнал подготовленных уведомлений.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository — конструктор NotificationRepository.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// SaveNotification — идемпотентная вставка по id (повторная доставка события не плодит дубли).
func (r *NotificationRepository) SaveNotification(ctx context.Context, n *domain.Notification) error {
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO notifications (id, host_name, phone, kind, text, link, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING
	`, n.ID, n.HostName, n.Phone, n.Kind, n.Text, n.Link, n.CreatedAt); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListNotifications — последние limit уведомлений.
func (r *NotificationRepository) ListNotifications(ctx context.Context, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, host_name, phone, kind, text, link, created_at
		FROM notifications
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("select notifications: %w", err)
	}
	defer rows.Close()

	list := make([]domain.Notification, 0, limit)
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.HostName, &n.Phone, &n.Kind, &n.Text, &n.Link, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("notifications rows: %w", err)
	}
	return list, nil
}
