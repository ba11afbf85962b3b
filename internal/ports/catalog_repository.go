package ports

import (
	"context"

	"github.com/Gunvolt24/giftlist/internal/domain"
)

// CatalogRepository — хранилище категорий и продуктов.
// Get/Update/Delete по несуществующему id возвращают domain.ErrNotFound.
type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) error
	UpdateCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, id string) error

	// ListProducts — продукты категории; пустой categoryID — весь каталог.
	ListProducts(ctx context.Context, categoryID string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error

	ProgressStats(ctx context.Context) (domain.ProgressStats, error)
}
