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

// Проверка, что SettingsRepository удовлетворяет интерфейсу SettingsRepository.
var _ ports.SettingsRepository = (*SettingsRepository)(nil)

// SettingsRepository — адрес доставки, хосты и шаблоны уведомлений.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository — конструктор SettingsRepository.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

// DeliveryAddress — единственная строка адреса; (nil, nil), если адрес не задан.
func (r *SettingsRepository) DeliveryAddress(ctx context.Context) (*domain.DeliveryAddress, error) {
	var a domain.DeliveryAddress
	err := r.pool.QueryRow(ctx, `
		SELECT recipient, street, number, complement, district, city, state, zip_code, notes
		FROM delivery_address
		WHERE id = 1
	`).Scan(&a.Recipient, &a.Street, &a.Number, &a.Complement, &a.District, &a.City, &a.State, &a.ZipCode, &a.Notes)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select delivery address: %w", err)
	}
	return &a, nil
}

// SaveDeliveryAddress — upsert единственной строки адреса.
func (r *SettingsRepository) SaveDeliveryAddress(ctx context.Context, address *domain.DeliveryAddress) error {
	if address == nil {
		return errors.New("delivery address is empty")
	}
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO delivery_address (
			id, recipient, street, number, complement, district, city, state, zip_code, notes
		) VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			recipient = EXCLUDED.recipient,
			street = EXCLUDED.street,
			number = EXCLUDED.number,
			complement = EXCLUDED.complement,
			district = EXCLUDED.district,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			zip_code = EXCLUDED.zip_code,
			notes = EXCLUDED.notes
	`,
		address.Recipient, address.Street, address.Number, address.Complement, address.District,
		address.City, address.State, address.ZipCode, address.Notes,
	); err != nil {
		return fmt.Errorf("upsert delivery address: %w", err)
	}
	return nil
}

// ListHosts — все хосты в порядке добавления.
func (r *SettingsRepository) ListHosts(ctx context.Context) ([]domain.Host, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, phone, notify_enabled, created_at
		FROM hosts
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("select hosts: %w", err)
	}
	defer rows.Close()

	hosts := make([]domain.Host, 0)
	for rows.Next() {
		var h domain.Host
		if err := rows.Scan(&h.ID, &h.Name, &h.Phone, &h.NotifyEnabled, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan host: %w", err)
		}
		hosts = append(hosts, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("hosts rows: %w", err)
	}
	return hosts, nil
}

// CreateHost — вставка хоста.
func (r *SettingsRepository) CreateHost(ctx context.Context, host *domain.Host) error {
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO hosts (id, name, phone, notify_enabled, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, host.ID, host.Name, host.Phone, host.NotifyEnabled, host.CreatedAt); err != nil {
		return fmt.Errorf("insert host: %w", err)
	}
	return nil
}

// DeleteHost — удаляет хоста по id.
func (r *SettingsRepository) DeleteHost(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM hosts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete host: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListTemplates — шаблоны всех видов событий.
func (r *SettingsRepository) ListTemplates(ctx context.Context) ([]domain.NotificationTemplate, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT kind, body, active, updated_at
		FROM notification_templates
		ORDER BY kind
	`)
	if err != nil {
		return nil, fmt.Errorf("select templates: %w", err)
	}
	defer rows.Close()

	templates := make([]domain.NotificationTemplate, 0, 2)
	for rows.Next() {
		var t domain.NotificationTemplate
		if err := rows.Scan(&t.Kind, &t.Body, &t.Active, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("templates rows: %w", err)
	}
	return templates, nil
}

// Template — шаблон по виду события.
func (r *SettingsRepository) Template(ctx context.Context, kind string) (*domain.NotificationTemplate, error) {
	var t domain.NotificationTemplate
	err := r.pool.QueryRow(ctx, `
		SELECT kind, body, active, updated_at
		FROM notification_templates
		WHERE kind = $1
	`, kind).Scan(&t.Kind, &t.Body, &t.Active, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select template: %w", err)
	}
	return &t, nil
}

// SaveTemplate — upsert шаблона по kind; updated_at ставит база.
func (r *SettingsRepository) SaveTemplate(ctx context.Context, template *domain.NotificationTemplate) error {
	if err := r.pool.QueryRow(ctx, `
		INSERT INTO notification_templates (kind, body, active, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (kind) DO UPDATE SET
			body = EXCLUDED.body,
			active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at
		RETURNING updated_at
	`, template.Kind, template.Body, template.Active).Scan(&template.UpdatedAt); err != nil {
		return fmt.Errorf("upsert template: %w", err)
	}
	return nil
}
