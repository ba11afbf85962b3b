package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Gunvolt24/giftlist/internal/domain"
	"github.com/Gunvolt24/giftlist/internal/ports"
)

var (
	_ ports.CatalogReader = (*CatalogService)(nil)
	_ ports.CatalogAdmin  = (*CatalogService)(nil)
)

// CatalogService — чтение каталога через TTL-кэш и его изменение организатором.
type CatalogService struct {
	repo      ports.CatalogRepository
	settings  ports.SettingsRepository
	cache     QueryCache
	log       ports.Logger
	validator ports.RegistryValidator
	now       func() time.Time
}

// NewCatalogService — DI-конструктор.
func NewCatalogService(
	repo ports.CatalogRepository,
	settings ports.SettingsRepository,
	cache QueryCache,
	log ports.Logger,
	validator ports.RegistryValidator,
) *CatalogService {
	return &CatalogService{
		repo:      repo,
		settings:  settings,
		cache:     cache,
		log:       log,
		validator: validator,
		now:       time.Now,
	}
}

// Overview — категории, прогресс и адрес доставки; части читаются параллельно.
func (s *CatalogService) Overview(ctx context.Context) (*domain.Overview, error) {
	var out domain.Overview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		categories, err := s.ListCategories(gctx)
		out.Categories = categories
		return err
	})
	g.Go(func() error {
		progress, err := s.Progress(gctx)
		out.Progress = progress
		return err
	})
	g.Go(func() error {
		address, err := s.DeliveryAddress(gctx)
		out.DeliveryAddress = address
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Errorf(ctx, "overview failed err=%v", err)
		return nil, err
	}
	return &out, nil
}

// ListCategories — категории (кэш "categories").
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return CachedQuery(ctx, s.cache, KeyCategories, s.repo.ListCategories)
}

// ListProducts — продукты категории или всего каталога (кэш "products_<id|all>").
func (s *CatalogService) ListProducts(ctx context.Context, categoryID string) ([]domain.Product, error) {
	return CachedQuery(ctx, s.cache, ProductsKey(categoryID), s.fetchProducts(categoryID))
}

// GetProduct — продукт по id, напрямую из хранилища.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	return product, nil
}

// Progress — статистика резерваций (кэш "progress_stats").
func (s *CatalogService) Progress(ctx context.Context) (domain.ProgressStats, error) {
	return CachedQuery(ctx, s.cache, KeyProgressStats, s.repo.ProgressStats)
}

// DeliveryAddress — адрес доставки (кэш "delivery_address"); пустой, если не задан.
func (s *CatalogService) DeliveryAddress(ctx context.Context) (domain.DeliveryAddress, error) {
	return CachedQuery(ctx, s.cache, KeyDeliveryAddress, s.fetchAddress)
}

func (s *CatalogService) CreateCategory(ctx context.Context, category *domain.Category) error {
	if err := s.validator.ValidateCategory(ctx, category); err != nil {
		return err
	}
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	category.CreatedAt = s.now().UTC()

	if err := s.repo.CreateCategory(ctx, category); err != nil {
		s.log.Errorf(ctx, "repo.CreateCategory failed name=%s err=%v", category.Name, err)
		return fmt.Errorf("create category: %w", err)
	}
	s.revalidateCategories(ctx)
	return nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, category *domain.Category) error {
	if err := s.validator.ValidateCategory(ctx, category); err != nil {
		return err
	}
	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		return fmt.Errorf("update category %s: %w", category.ID, err)
	}
	s.revalidateCategories(ctx)
	return nil
}

// DeleteCategory — удаляет категорию вместе с её продуктами.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	s.revalidateCategories(ctx)
	s.revalidateProducts(ctx, id)
	return nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *domain.Product) error {
	if err := s.validator.ValidateProduct(ctx, product); err != nil {
		return err
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	product.IsReserved = false
	product.CreatedAt = s.now().UTC()

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		s.log.Errorf(ctx, "repo.CreateProduct failed name=%s err=%v", product.Name, err)
		return fmt.Errorf("create product: %w", err)
	}
	s.revalidateProducts(ctx, product.CategoryID)
	return nil
}

// UpdateProduct — обновляет продукт; при смене категории сбрасываются обе.
func (s *CatalogService) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if err := s.validator.ValidateProduct(ctx, product); err != nil {
		return err
	}
	prev, err := s.repo.GetProduct(ctx, product.ID)
	if err != nil {
		return fmt.Errorf("get product %s: %w", product.ID, err)
	}
	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return fmt.Errorf("update product %s: %w", product.ID, err)
	}

	s.revalidateProducts(ctx, product.CategoryID)
	if prev.CategoryID != product.CategoryID {
		s.cache.Delete(ProductsKey(prev.CategoryID))
	}
	return nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	prev, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("get product %s: %w", id, err)
	}
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	s.revalidateProducts(ctx, prev.CategoryID)
	return nil
}

func (s *CatalogService) SetDeliveryAddress(ctx context.Context, address *domain.DeliveryAddress) error {
	if err := s.settings.SaveDeliveryAddress(ctx, address); err != nil {
		return fmt.Errorf("save delivery address: %w", err)
	}
	if err := Revalidate(ctx, s.cache, KeyDeliveryAddress, s.fetchAddress); err != nil {
		s.log.Warnf(ctx, "revalidate %s failed err=%v", KeyDeliveryAddress, err)
	}
	return nil
}

// InvalidateAll — полностью очищает кэш каталога.
func (s *CatalogService) InvalidateAll(ctx context.Context) {
	s.cache.Clear()
	s.log.Infof(ctx, "catalog cache cleared")
}

func (s *CatalogService) revalidateCategories(ctx context.Context) {
	if err := Revalidate(ctx, s.cache, KeyCategories, s.repo.ListCategories); err != nil {
		s.log.Warnf(ctx, "revalidate %s failed err=%v", KeyCategories, err)
	}
}

// revalidateProducts — категория, весь каталог и прогресс.
func (s *CatalogService) revalidateProducts(ctx context.Context, categoryID string) {
	categories := []string{categoryID}
	if categoryID != "" {
		categories = append(categories, "")
	}
	for _, cat := range categories {
		key := ProductsKey(cat)
		if err := Revalidate(ctx, s.cache, key, s.fetchProducts(cat)); err != nil {
			s.log.Warnf(ctx, "revalidate %s failed err=%v", key, err)
		}
	}
	if err := Revalidate(ctx, s.cache, KeyProgressStats, s.repo.ProgressStats); err != nil {
		s.log.Warnf(ctx, "revalidate %s failed err=%v", KeyProgressStats, err)
	}
}

func (s *CatalogService) fetchProducts(categoryID string) func(context.Context) ([]domain.Product, error) {
	return func(ctx context.Context) ([]domain.Product, error) {
		return s.repo.ListProducts(ctx, categoryID)
	}
}

func (s *CatalogService) fetchAddress(ctx context.Context) (domain.DeliveryAddress, error) {
	address, err := s.settings.DeliveryAddress(ctx)
	if err != nil {
		return domain.DeliveryAddress{}, err
	}
	if address == nil {
		return domain.DeliveryAddress{}, nil
	}
	return *address, nil
}
