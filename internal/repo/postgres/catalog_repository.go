package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/giftlist/internal/domain"
	"github.com/Gunvolt24/giftlist/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что CatalogRepository удовлетворяет интерфейсу CatalogRepository.
var _ ports.CatalogRepository = (*CatalogRepository)(nil)

// CatalogRepository — категории и продукты на Postgres (pgxpool).
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository — конструктор CatalogRepository.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

const productColumns = `id, category_id, name, description, image_url, store_url, price_cents, is_reserved, created_at`

// ListCategories — все категории в порядке sort_order.
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, sort_order, created_at
		FROM categories
		ORDER BY sort_order, name
	`)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.SortOrder, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("categories rows: %w", err)
	}
	return categories, nil
}

// GetCategory — категория по id.
func (r *CatalogRepository) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	var c domain.Category
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, description, sort_order, created_at
		FROM categories
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Description, &c.SortOrder, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select category: %w", err)
	}
	return &c, nil
}

// CreateCategory — вставка категории.
func (r *CatalogRepository) CreateCategory(ctx context.Context, category *domain.Category) error {
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO categories (id, name, description, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, category.ID, category.Name, category.Description, category.SortOrder, category.CreatedAt); err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// UpdateCategory — обновление полей категории.
func (r *CatalogRepository) UpdateCategory(ctx context.Context, category *domain.Category) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE categories
		SET name = $2, description = $3, sort_order = $4
		WHERE id = $1
	`, category.ID, category.Name, category.Description, category.SortOrder)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteCategory — удаляет категорию; продукты и их резервации удаляются каскадно.
func (r *CatalogRepository) DeleteCategory(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListProducts — продукты категории или всего каталога (пустой categoryID).
func (r *CatalogRepository) ListProducts(ctx context.Context, categoryID string) ([]domain.Product, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if categoryID == "" {
		rows, err = r.pool.Query(ctx, `
			SELECT `+productColumns+`
			FROM products
			ORDER BY created_at, id
		`)
	} else {
		rows, err = r.pool.Query(ctx, `
			SELECT `+productColumns+`
			FROM products
			WHERE category_id = $1
			ORDER BY created_at, id
		`, categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("products rows: %w", err)
	}
	return products, nil
}

// GetProduct — продукт по id.
func (r *CatalogRepository) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// CreateProduct — вставка продукта.
func (r *CatalogRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		product.ID, product.CategoryID, product.Name, product.Description, product.ImageURL,
		product.StoreURL, product.PriceCents, product.IsReserved, product.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// UpdateProduct — обновление полей продукта; отметку резервации меняет только ReservationRepository.
func (r *CatalogRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE products
		SET category_id = $2, name = $3, description = $4, image_url = $5, store_url = $6, price_cents = $7
		WHERE id = $1
	`,
		product.ID, product.CategoryID, product.Name, product.Description, product.ImageURL,
		product.StoreURL, product.PriceCents,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteProduct — удаляет продукт вместе с его резервацией.
func (r *CatalogRepository) DeleteProduct(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ProgressStats — число продуктов, зарезервированных продуктов и сюрпризов одним запросом.
func (r *CatalogRepository) ProgressStats(ctx context.Context) (domain.ProgressStats, error) {
	var total, reserved, surprises int
	if err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM products),
			(SELECT count(*) FROM products WHERE is_reserved),
			(SELECT count(*) FROM surprise_items)
	`).Scan(&total, &reserved, &surprises); err != nil {
		return domain.ProgressStats{}, fmt.Errorf("select progress: %w", err)
	}
	return domain.NewProgressStats(total, reserved, surprises), nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.ImageURL,
		&p.StoreURL, &p.PriceCents, &p.IsReserved, &p.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return &p, nil
}
