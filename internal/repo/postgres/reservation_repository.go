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

// Проверка, что ReservationRepository удовлетворяет интерфейсу ReservationRepository.
var _ ports.ReservationRepository = (*ReservationRepository)(nil)

// ReservationRepository — резервации и подарки-сюрпризы на Postgres (pgxpool).
type ReservationRepository struct {
	pool *pgxpool.Pool
}

// NewReservationRepository — конструктор ReservationRepository.
func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

// Reserve — в одной транзакции блокирует строку продукта, создаёт резервацию и ставит is_reserved.
func (r *ReservationRepository) Reserve(ctx context.Context, reservation *domain.Reservation) error {
	if reservation == nil || reservation.ID == "" || reservation.ProductID == "" {
		return errors.New("reservation is empty or id/product_id is required")
	}

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, transaction)

	// 1) Блокировка продукта: параллельные Reserve по одному продукту выполняются последовательно.
	var reserved bool
	err = transaction.QueryRow(ctx, `
		SELECT is_reserved FROM products WHERE id = $1 FOR UPDATE
	`, reservation.ProductID).Scan(&reserved)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("lock product: %w", err)
	}
	if reserved {
		return domain.ErrAlreadyReserved
	}

	// 2) Резервация.
	if _, err = transaction.Exec(ctx, `
		INSERT INTO reservations (
			id, product_id, reserved_by, reserved_contact, is_anonymous, message, photo, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		reservation.ID, reservation.ProductID, reservation.ReservedBy, reservation.ReservedContact,
		reservation.IsAnonymous, reservation.Message, reservation.PhotoDataURI, reservation.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}

	// 3) Отметка на продукте.
	if _, err = transaction.Exec(ctx, `
		UPDATE products SET is_reserved = TRUE WHERE id = $1
	`, reservation.ProductID); err != nil {
		return fmt.Errorf("mark product reserved: %w", err)
	}

	return transaction.Commit(ctx)
}

// ListReservations — страница резерваций, новые первыми.
func (r *ReservationRepository) ListReservations(ctx context.Context, limit, offset int) ([]domain.Reservation, error) {
	limit, offset = normalizePage(limit, offset)

	rows, err := r.pool.Query(ctx, `
		SELECT id, product_id, reserved_by, reserved_contact, is_anonymous, message, photo, created_at
		FROM reservations
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select reservations: %w", err)
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0, limit)
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(
			&res.ID, &res.ProductID, &res.ReservedBy, &res.ReservedContact,
			&res.IsAnonymous, &res.Message, &res.PhotoDataURI, &res.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reservations rows: %w", err)
	}
	return reservations, nil
}

// CancelReservation — удаляет резервацию и снимает отметку с продукта.
func (r *ReservationRepository) CancelReservation(ctx context.Context, id string) (string, error) {
	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer rollback(ctx, transaction)

	var productID string
	err = transaction.QueryRow(ctx, `
		DELETE FROM reservations WHERE id = $1 RETURNING product_id
	`, id).Scan(&productID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("delete reservation: %w", err)
	}

	if _, err = transaction.Exec(ctx, `
		UPDATE products SET is_reserved = FALSE WHERE id = $1
	`, productID); err != nil {
		return "", fmt.Errorf("unmark product: %w", err)
	}

	if err := transaction.Commit(ctx); err != nil {
		return "", err
	}
	return productID, nil
}

// CreateSurprise — вставка подарка-сюрприза.
func (r *ReservationRepository) CreateSurprise(ctx context.Context, item *domain.SurpriseItem) error {
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO surprise_items (
			id, name, description, given_by, contact, is_anonymous, message, photo, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		item.ID, item.Name, item.Description, item.GivenBy, item.Contact,
		item.IsAnonymous, item.Message, item.PhotoDataURI, item.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert surprise: %w", err)
	}
	return nil
}

// ListSurprises — страница сюрпризов, новые первыми.
func (r *ReservationRepository) ListSurprises(ctx context.Context, limit, offset int) ([]domain.SurpriseItem, error) {
	limit, offset = normalizePage(limit, offset)

	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, given_by, contact, is_anonymous, message, photo, created_at
		FROM surprise_items
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select surprises: %w", err)
	}
	defer rows.Close()

	items := make([]domain.SurpriseItem, 0, limit)
	for rows.Next() {
		var item domain.SurpriseItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.GivenBy, &item.Contact,
			&item.IsAnonymous, &item.Message, &item.PhotoDataURI, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan surprise: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("surprises rows: %w", err)
	}
	return items, nil
}

// DeleteSurprise — удаляет сюрприз по id.
func (r *ReservationRepository) DeleteSurprise(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM surprise_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete surprise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// rollback — откат незавершённой транзакции; ErrTxClosed после Commit игнорируем.
func rollback(ctx context.Context, transaction pgx.Tx) {
	if rbErr := transaction.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		_ = rbErr
	}
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
