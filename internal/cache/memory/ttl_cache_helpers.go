package memory

import "time"

// Option — настройка TTLCache.
type Option func(*options)

type options struct {
	now  func() time.Time
	name string
}

// WithClock — подменяет источник времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithName — имя кэша для метрик.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

func newOptions(opts []Option) options {
	o := options{now: time.Now, name: "default"}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// expired — now - insertedAt > ttl.
func (e *entry[V]) expired(now time.Time) bool {
	return now.Sub(e.insertedAt) > e.ttl
}

// observe — метрики операции и текущего размера; вызывать под c.mu.
func (c *TTLCache[V]) observe(op string) {
	c.ops.WithLabelValues(c.name, op).Inc()
	c.size.Set(float64(len(c.entries)))
}
