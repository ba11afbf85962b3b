package ports

import (
	"context"

	"github.com/Gunvolt24/giftlist/internal/domain"
)

// CatalogReader — публичное чтение каталога (через кэш).
type CatalogReader interface {
	Overview(ctx context.Context) (*domain.Overview, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListProducts(ctx context.Context, categoryID string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	Progress(ctx context.Context) (domain.ProgressStats, error)
	DeliveryAddress(ctx context.Context) (domain.DeliveryAddress, error)
}

// CatalogAdmin — изменение каталога и настроек организатором.
type CatalogAdmin interface {
	CreateCategory(ctx context.Context, category *domain.Category) error
	UpdateCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, id string) error
	CreateProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
	SetDeliveryAddress(ctx context.Context, address *domain.DeliveryAddress) error
	InvalidateAll(ctx context.Context)
}
