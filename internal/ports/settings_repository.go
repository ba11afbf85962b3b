package ports

import (
	"context"

	"github.com/Gunvolt24/giftlist/internal/domain"
)

// SettingsRepository — настройки события: адрес доставки, хосты, шаблоны уведомлений.
type SettingsRepository interface {
	// DeliveryAddress — (nil, nil), если адрес ещё не задан.
	DeliveryAddress(ctx context.Context) (*domain.DeliveryAddress, error)
	SaveDeliveryAddress(ctx context.Context, address *domain.DeliveryAddress) error

	ListHosts(ctx context.Context) ([]domain.Host, error)
	CreateHost(ctx context.Context, host *domain.Host) error
	DeleteHost(ctx context.Context, id string) error

	ListTemplates(ctx context.Context) ([]domain.NotificationTemplate, error)
	// Template — шаблон по виду события; domain.ErrNotFound, если его нет.
	Template(ctx context.Context, kind string) (*domain.NotificationTemplate, error)
	SaveTemplate(ctx context.Context, template *domain.NotificationTemplate) error
}
