package ports

import (
	"context"

	"github.com/Gunvolt24/giftlist/internal/domain"
)

// ReservationRepository — серверные резервации и подарки-сюрпризы.
type ReservationRepository interface {
	// Reserve — транзакционно создаёт резервацию и помечает продукт зарезервированным.
	// domain.ErrNotFound — продукта нет; domain.ErrAlreadyReserved — продукт уже занят.
	Reserve(ctx context.Context, reservation *domain.Reservation) error
	ListReservations(ctx context.Context, limit, offset int) ([]domain.Reservation, error)
	// CancelReservation — удаляет резервацию и снимает отметку с продукта; возвращает productID.
	CancelReservation(ctx context.Context, id string) (string, error)

	CreateSurprise(ctx context.Context, item *domain.SurpriseItem) error
	ListSurprises(ctx context.Context, limit, offset int) ([]domain.SurpriseItem, error)
	DeleteSurprise(ctx context.Context, id string) error
}
