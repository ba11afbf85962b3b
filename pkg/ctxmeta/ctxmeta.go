// Пакет ctxmeta — метаданные запроса, которые прокидываются через context.Context
// (request_id, visitor_id, trace_id). HTTP-слой, логгер и сервисы зависят
// от этого пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	// KeyRequestID — id HTTP-запроса.
	KeyRequestID ctxKey = "request_id"
	// KeyVisitorID — id посетителя (cookie visitor_id / заголовок X-Visitor-ID).
	KeyVisitorID ctxKey = "visitor_id"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withString(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyRequestID)
}

// WithVisitorID кладёт visitor_id в контекст (если пусто — ничего не делает).
func WithVisitorID(ctx context.Context, visitorID string) context.Context {
	return withString(ctx, KeyVisitorID, visitorID)
}

// VisitorIDFromContext достаёт visitor_id из контекста.
func VisitorIDFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyVisitorID)
}

func withString(ctx context.Context, key ctxKey, v string) context.Context {
	if ctx == nil || v == "" {
		return ctx
	}
	return context.WithValue(ctx, key, v)
}

// stringFrom — пустое значение считается отсутствующим.
func stringFrom(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
