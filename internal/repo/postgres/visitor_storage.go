package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/giftlist/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	_ ports.VisitorStorage  = (*VisitorStorage)(nil)
	_ ports.KeyValueStorage = (*visitorKV)(nil)
)

// VisitorStorage — key-value хранилище посетителей в таблице visitor_storage.
type VisitorStorage struct {
	pool *pgxpool.Pool
}

// NewVisitorStorage — конструктор VisitorStorage.
func NewVisitorStorage(pool *pgxpool.Pool) *VisitorStorage {
	return &VisitorStorage{pool: pool}
}

// ForVisitor — хранилище, ограниченное ключами одного посетителя.
func (s *VisitorStorage) ForVisitor(visitorID string) ports.KeyValueStorage {
	return &visitorKV{pool: s.pool, visitorID: visitorID}
}

type visitorKV struct {
	pool      *pgxpool.Pool
	visitorID string
}

func (kv *visitorKV) GetItem(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := kv.pool.QueryRow(ctx, `
		SELECT value FROM visitor_storage WHERE visitor_id = $1 AND key = $2
	`, kv.visitorID, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select visitor item: %w", err)
	}
	return value, true, nil
}

func (kv *visitorKV) SetItem(ctx context.Context, key string, value []byte) error {
	if _, err := kv.pool.Exec(ctx, `
		INSERT INTO visitor_storage (visitor_id, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (visitor_id, key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`, kv.visitorID, key, value); err != nil {
		return fmt.Errorf("upsert visitor item: %w", err)
	}
	return nil
}

func (kv *visitorKV) RemoveItem(ctx context.Context, key string) error {
	if _, err := kv.pool.Exec(ctx, `
		DELETE FROM visitor_storage WHERE visitor_id = $1 AND key = $2
	`, kv.visitorID, key); err != nil {
		return fmt.Errorf("delete visitor item: %w", err)
	}
	return nil
}
