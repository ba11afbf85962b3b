package tracker

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Option — настройка Tracker.
type Option func(*Tracker)

// WithStorageKey — ключ хранилища вместо StorageKey.
func WithStorageKey(key string) Option {
	return func(t *Tracker) {
		if key != "" {
			t.key = key
		}
	}
}

// WithClock — источник времени.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// WithIDGenerator — генератор id записей.
func WithIDGenerator(gen func(now time.Time) string) Option {
	return func(t *Tracker) {
		if gen != nil {
			t.newID = gen
		}
	}
}

// defaultID — "<unix-millis>-<случайный суффикс>".
func defaultID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + suffix
}
