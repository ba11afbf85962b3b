package ports

import (
	"context"

	"github.com/Gunvolt24/giftlist/internal/domain"
)

// GuestService — действия гостя.
type GuestService interface {
	Reserve(ctx context.Context, visitorID string, req *domain.ReserveRequest) (*domain.ReserveResult, error)
	SubmitSurprise(ctx context.Context, req *domain.SurpriseRequest) (*domain.SurpriseItem, error)
}

// ReservationAdmin — управление резервациями и сюрпризами.
type ReservationAdmin interface {
	ListReservations(ctx context.Context, limit, offset int) ([]domain.Reservation, error)
	CancelReservation(ctx context.Context, id string) error
	ListSurprises(ctx context.Context, limit, offset int) ([]domain.SurpriseItem, error)
	DeleteSurprise(ctx context.Context, id string) error
}

// VisitorReservations — локальные резервации посетителя.
type VisitorReservations interface {
	Reservations(ctx context.Context, visitorID string) ([]domain.LocalReservation, error)
	Remove(ctx context.Context, visitorID, id string) (bool, error)
	Clear(ctx context.Context, visitorID string) error
}

// NotificationAdmin — хосты, шаблоны и журнал уведомлений.
type NotificationAdmin interface {
	ListHosts(ctx context.Context) ([]domain.Host, error)
	CreateHost(ctx context.Context, host *domain.Host) error
	DeleteHost(ctx context.Context, id string) error
	ListTemplates(ctx context.Context) ([]domain.NotificationTemplate, error)
	SaveTemplate(ctx context.Context, template *domain.NotificationTemplate) error
	Preview(template *domain.NotificationTemplate, event *domain.RegistryEvent) string
	ListNotifications(ctx context.Context, limit int) ([]domain.Notification, error)
}
