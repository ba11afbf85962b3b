package ports

import "context"

// Logger — логгер слоёв сервиса; request_id, visitor_id и trace_id берутся из ctx.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
