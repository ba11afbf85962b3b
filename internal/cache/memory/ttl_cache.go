package memory

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Gunvolt24/giftlist/pkg/metrics"
)

const (
	// DefaultTTL — TTL записи, если при Set он не указан.
	DefaultTTL = 5 * time.Minute
	// DefaultCleanupInterval — период фоновой очистки истёкших записей.
	DefaultCleanupInterval = 10 * time.Minute
)

type entry[V any] struct {
	value      V
	insertedAt time.Time
	ttl        time.Duration
}

// TTLCache — потокобезопасный in-memory кэш с временем жизни записей.
// Запись считается отсутствующей, как только now - insertedAt > ttl;
// истёкшие записи удаляются лениво (Get/Has) и периодически (Cleanup).
type TTLCache[V any] struct {
	defaultTTL time.Duration
	now        func() time.Time

	entries map[string]*entry[V]
	mu      sync.Mutex

	ops  *prometheus.CounterVec
	size prometheus.Gauge
	name string
}

// NewTTLCache — конструктор; defaultTTL <= 0 → DefaultTTL.
func NewTTLCache[V any](defaultTTL time.Duration, opts ...Option) *TTLCache[V] {
	o := newOptions(opts)
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	return &TTLCache[V]{
		defaultTTL: defaultTTL,
		now:        o.now,
		entries:    make(map[string]*entry[V]),
		ops:        metrics.CacheOps,
		size:       metrics.CacheSize.WithLabelValues(o.name),
		name:       o.name,
	}
}

// Set — вставляет или перезаписывает запись с TTL по умолчанию.
func (c *TTLCache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, 0)
}

// SetWithTTL — вставляет или перезаписывает запись; ttl <= 0 → TTL по умолчанию.
func (c *TTLCache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &entry[V]{value: value, insertedAt: now, ttl: ttl}
	c.observe("set")
}

// Get — возвращает (value, true) для свежей записи, (zero, false) при промахе или истечении.
// Истёкшая запись удаляется в рамках этого вызова.
func (c *TTLCache[V]) Get(key string) (V, bool) {
	var zero V
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.entries[key]
	if !ok {
		c.observe("miss")
		return zero, false
	}
	if ent.expired(now) {
		delete(c.entries, key)
		c.observe("expired")
		return zero, false
	}
	c.observe("hit")
	return ent.value, true
}

// Has — та же семантика свежести, что и у Get, без возврата значения.
func (c *TTLCache[V]) Has(key string) bool {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.entries[key]
	if !ok {
		return false
	}
	if ent.expired(now) {
		delete(c.entries, key)
		c.observe("expired")
		return false
	}
	return true
}

// Delete — безусловно удаляет запись; no-op, если её нет.
func (c *TTLCache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		delete(c.entries, key)
		c.observe("delete")
	}
}

// Clear — удаляет все записи.
func (c *TTLCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
	c.observe("clear")
}

// Cleanup — удаляет все истёкшие записи и возвращает их количество.
// Свежие записи не затрагиваются.
func (c *TTLCache[V]) Cleanup() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, ent := range c.entries {
		if ent.expired(now) {
			delete(c.entries, key)
			removed++
		}
	}
	if removed > 0 {
		c.ops.WithLabelValues(c.name, "swept").Add(float64(removed))
	}
	c.size.Set(float64(len(c.entries)))
	return removed
}

// Len — количество хранимых записей (включая ещё не вычищенные истёкшие).
func (c *TTLCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Name — имя кэша (метка метрик).
func (c *TTLCache[V]) Name() string { return c.name }
