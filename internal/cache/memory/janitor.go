package memory

import (
	"context"
	"time"
)

// Sweeper — кэш, умеющий вычищать истёкшие записи.
type Sweeper interface {
	Cleanup() int
}

// RunJanitor — раз в interval вызывает Cleanup у всех кэшей, пока не отменён ctx.
// interval <= 0 → DefaultCleanupInterval. Возвращает ctx.Err().
func RunJanitor(ctx context.Context, interval time.Duration, caches ...Sweeper) error {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			for _, c := range caches {
				c.Cleanup()
			}
		}
	}
}
