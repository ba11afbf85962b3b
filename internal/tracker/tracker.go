// Package tracker — локальный журнал резерваций посетителя.
// Хранит снимки резерваций, сделанных в рамках одного посетителя, и целиком
// сохраняет их в key-value хранилище после каждой мутации. Это вспомогательное
// зеркало для интерфейса гостя, а не источник истины: статус резервации живёт в БД.
package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/Gunvolt24/giftlist/internal/domain"
	"github.com/Gunvolt24/giftlist/internal/ports"
	"github.com/Gunvolt24/giftlist/pkg/metrics"
)

// StorageKey — фиксированный ключ, под которым хранится список.
const StorageKey = "lista-presentes-reservations"

var (
	// ErrPersist — список не удалось сохранить; состояние в памяти при этом актуально.
	ErrPersist = errors.New("persist local reservations")
	// ErrLoad — хранилище не ответило при загрузке; сохранённые данные неизвестны.
	ErrLoad = errors.New("load local reservations")
)

// Tracker — список локальных резерваций посетителя.
type Tracker struct {
	storage ports.KeyValueStorage
	log     ports.Logger
	key     string
	now     func() time.Time
	newID   func(now time.Time) string

	mu    sync.Mutex
	items []domain.LocalReservation
}

// New — создаёт трекер и загружает ранее сохранённый список.
// Отсутствующие, повреждённые или недоступные данные дают пустой список (с предупреждением в лог).
func New(ctx context.Context, storage ports.KeyValueStorage, log ports.Logger, opts ...Option) *Tracker {
	t, err := Load(ctx, storage, log, opts...)
	if err != nil {
		log.Warnf(ctx, "local reservations unavailable, starting empty: %v", err)
	}
	return t
}

// Load — как New, но ошибка чтения хранилища возвращается (оборачивает ErrLoad).
// Повреждённые данные ошибкой не считаются: список пуст.
// При ошибке трекер пуст и не должен сохраняться поверх хранилища.
func Load(ctx context.Context, storage ports.KeyValueStorage, log ports.Logger, opts ...Option) (*Tracker, error) {
	t := &Tracker{
		storage: storage,
		log:     log,
		key:     StorageKey,
		now:     time.Now,
		newID:   defaultID,
	}
	for _, opt := range opts {
		opt(t)
	}
	items, err := t.load(ctx)
	if err != nil {
		return t, err
	}
	t.items = items
	return t, nil
}

// Add — добавляет запись, генерируя id и время резервации, и сохраняет весь список.
// Запись добавляется в память всегда; ошибка сохранения возвращается вместе с записью
// и оборачивает ErrPersist.
func (t *Tracker) Add(ctx context.Context, in domain.NewLocalReservation) (domain.LocalReservation, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now().UTC().Round(0)
	rec := domain.LocalReservation{
		ID:              t.uniqueID(now),
		ProductID:       in.ProductID,
		ProductName:     in.ProductName,
		CategoryName:    in.CategoryName,
		ReservedBy:      in.ReservedBy,
		ReservedContact: in.ReservedContact,
		IsAnonymous:     in.IsAnonymous,
		Message:         in.Message,
		ImagePreview:    in.ImagePreview,
		ReservedAt:      now,
	}
	if rec.IsAnonymous {
		rec.ReservedBy, rec.ReservedContact = "", ""
	}

	t.items = append(t.items, rec)
	return rec, t.persist(ctx)
}

// Remove — удаляет запись по id; (false, nil), если записи нет.
func (t *Tracker) Remove(ctx context.Context, id string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := slices.IndexFunc(t.items, func(r domain.LocalReservation) bool { return r.ID == id })
	if idx < 0 {
		return false, nil
	}
	t.items = slices.Delete(t.items, idx, idx+1)
	return true, t.persist(ctx)
}

// Clear — очищает список и сохраняет пустой массив.
func (t *Tracker) Clear(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.items = nil
	return t.persist(ctx)
}

// List — копия списка в порядке добавления; пустой список не nil.
func (t *Tracker) List() []domain.LocalReservation {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.LocalReservation, len(t.items))
	copy(out, t.items)
	return out
}

// Count — количество записей.
func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.items)
}

// HasReservations — есть ли хотя бы одна запись.
func (t *Tracker) HasReservations() bool { return t.Count() > 0 }

// persist — сериализует весь список; вызывать под t.mu.
func (t *Tracker) persist(ctx context.Context) error {
	items := t.items
	if items == nil {
		items = []domain.LocalReservation{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return t.persistFailed(ctx, err)
	}
	if err := t.storage.SetItem(ctx, t.key, raw); err != nil {
		return t.persistFailed(ctx, err)
	}
	return nil
}

func (t *Tracker) persistFailed(ctx context.Context, cause error) error {
	metrics.TrackerPersistFailures.Inc()
	t.log.Warnf(ctx, "local reservations not persisted key=%s count=%d err=%v", t.key, len(t.items), cause)
	return fmt.Errorf("%w: %w", ErrPersist, cause)
}

func (t *Tracker) load(ctx context.Context) ([]domain.LocalReservation, error) {
	raw, found, err := t.storage.GetItem(ctx, t.key)
	if err != nil {
		return nil, fmt.Errorf("%w: key=%s: %w", ErrLoad, t.key, err)
	}
	if !found || len(raw) == 0 {
		return nil, nil
	}

	var items []domain.LocalReservation
	if err := json.Unmarshal(raw, &items); err != nil {
		t.log.Warnf(ctx, "local reservations corrupt key=%s err=%v (starting empty)", t.key, err)
		return nil, nil
	}

	// записи без id не удалить и не отличить друг от друга — отбрасываем
	return slices.DeleteFunc(items, func(r domain.LocalReservation) bool { return r.ID == "" }), nil
}

// uniqueID — id, которого ещё нет в списке; вызывать под t.mu.
func (t *Tracker) uniqueID(now time.Time) string {
	base := t.newID(now)
	id := base
	for i := 1; t.contains(id); i++ {
		id = fmt.Sprintf("%s-%d", base, i)
	}
	return id
}

func (t *Tracker) contains(id string) bool {
	return slices.ContainsFunc(t.items, func(r domain.LocalReservation) bool { return r.ID == id })
}
