package ports

import (
	"context"

	"github.com/Gunvolt24/giftlist/internal/domain"
)

// RegistryValidator — проверка входных данных гостей и администратора.
// Все методы возвращают ошибку, оборачивающую validate.ErrInvalidInput.
type RegistryValidator interface {
	ValidateReservation(ctx context.Context, req *domain.ReserveRequest) error
	ValidateSurprise(ctx context.Context, req *domain.SurpriseRequest) error
	ValidateProduct(ctx context.Context, product *domain.Product) error
	ValidateCategory(ctx context.Context, category *domain.Category) error
}
