package usecase_test

import (
	"context"
	"time"

	cachemem "github.com/Gunvolt24/giftlist/internal/cache/memory"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newQueryCache() *cachemem.TTLCache[any] {
	return cachemem.NewTTLCache[any](time.Minute, cachemem.WithName("usecase_test"))
}
