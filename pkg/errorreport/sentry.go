// Package errorreport — отправка ошибок в Sentry.
// Без DSN репортёр выключен и все методы ничего не делают.
package errorreport

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/Gunvolt24/giftlist/pkg/ctxmeta"
)

// Персональные данные гостей, которые не должны уходить в Sentry.
var piiPatterns = []*regexp.Regexp{
	// email
	regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
	// фото гостя
	regexp.MustCompile(`data:image/[a-zA-Z0-9.+-]+;base64,[A-Za-z0-9+/=]+`),
	// телефон
	regexp.MustCompile(`\+?\d{2,3}[\s-]?\(?\d{2}\)?[\s-]?\d{4,5}[\s-]?\d{4}`),
	// IPv4
	regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`),
}

// Reporter — обёртка над глобальным клиентом Sentry.
type Reporter struct {
	enabled bool
}

// Options — параметры инициализации.
type Options struct {
	DSN         string
	Environment string
	Release     string
	SampleRate  float64 // доля отправляемых ошибок; 0 → 1
}

// Init — инициализирует Sentry; пустой DSN даёт выключенный репортёр без ошибки.
func Init(opts Options) (*Reporter, error) {
	if opts.DSN == "" {
		return &Reporter{}, nil
	}
	if opts.SampleRate <= 0 {
		opts.SampleRate = 1
	}
	if opts.Release == "" {
		opts.Release = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              opts.DSN,
		Environment:      opts.Environment,
		Release:          opts.Release,
		SampleRate:       opts.SampleRate,
		AttachStacktrace: true,
		BeforeSend:       beforeSend,
	})
	if err != nil {
		return nil, fmt.Errorf("init sentry: %w", err)
	}
	return &Reporter{enabled: true}, nil
}

// Enabled — настроен ли Sentry.
func (r *Reporter) Enabled() bool { return r != nil && r.enabled }

// CaptureError — отправляет ошибку с тегами и метаданными запроса из контекста.
func (r *Reporter) CaptureError(ctx context.Context, err error, tags map[string]string) {
	if !r.Enabled() || err == nil {
		return
	}
	hub := sentry.CurrentHub().Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		if id, ok := ctxmeta.RequestIDFromContext(ctx); ok {
			scope.SetTag("request_id", id)
		}
		if id, ok := ctxmeta.TraceIDFromContext(ctx); ok {
			scope.SetTag("trace_id", id)
		}
		hub.CaptureException(err)
	})
}

// CapturePanic — отправляет восстановленную панику.
func (r *Reporter) CapturePanic(ctx context.Context, recovered any, tags map[string]string) {
	if !r.Enabled() {
		return
	}
	err, ok := recovered.(error)
	if !ok {
		err = fmt.Errorf("panic: %v", recovered)
	}
	r.CaptureError(ctx, err, tags)
}

// Flush — дожидается отправки накопленных событий.
func (r *Reporter) Flush(timeout time.Duration) bool {
	if !r.Enabled() {
		return true
	}
	return sentry.Flush(timeout)
}

// ScrubPII — заменяет персональные данные на [REDACTED].
func ScrubPII(text string) string {
	for _, p := range piiPatterns {
		text = p.ReplaceAllString(text, "[REDACTED]")
	}
	return text
}

func beforeSend(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	for i := range event.Exception {
		event.Exception[i].Value = ScrubPII(event.Exception[i].Value)
	}
	event.Message = ScrubPII(event.Message)
	for k, v := range event.Extra {
		if s, ok := v.(string); ok {
			event.Extra[k] = ScrubPII(s)
		}
	}
	if event.Request != nil {
		delete(event.Request.Headers, "Cookie")
		delete(event.Request.Headers, "X-Visitor-Id")
		event.Request.Cookies = ""
		event.Request.Data = ""
	}
	return event
}
