package ports

import (
	"context"

	"github.com/Gunvolt24/giftlist/internal/domain"
)

// NotificationRepository — журнал подготовленных уведомлений хостам.
type NotificationRepository interface {
	SaveNotification(ctx context.Context, n *domain.Notification) error
	ListNotifications(ctx context.Context, limit int) ([]domain.Notification, error)
}
