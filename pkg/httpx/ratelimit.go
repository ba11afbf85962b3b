package httpx

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Gunvolt24/giftlist/pkg/metrics"
)

const (
	rateLimitSweepEvery = time.Minute
	rateLimitStaleAfter = 3 * time.Minute
)

// RateLimiter — ограничение частоты запросов по IP клиента (token bucket).
type RateLimiter struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu    sync.Mutex
	perIP map[string]*ipLimiter
}

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter — rps запросов в секунду на IP с всплеском burst.
// rps <= 0 отключает ограничение.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &RateLimiter{
		limit: limit,
		burst: max(burst, 1),
		now:   time.Now,
		perIP: make(map[string]*ipLimiter),
	}
}

// Allow — можно ли пропустить ещё один запрос с ip.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	l, ok := rl.perIP[ip]
	if !ok {
		l = &ipLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.perIP[ip] = l
	}
	now := rl.now()
	l.lastSeen = now
	rl.mu.Unlock()

	return l.limiter.AllowN(now, 1)
}

// Sweep — удаляет лимитеры IP, не встречавшихся дольше rateLimitStaleAfter; возвращает число удалённых.
func (rl *RateLimiter) Sweep() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	now := rl.now()
	for ip, l := range rl.perIP {
		if now.Sub(l.lastSeen) > rateLimitStaleAfter {
			delete(rl.perIP, ip)
			removed++
		}
	}
	return removed
}

// Run — периодически чистит устаревшие записи до отмены ctx.
func (rl *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(rateLimitSweepEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Sweep()
		}
	}
}

// Middleware — 429 с {"error": ...} при превышении лимита.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			path := c.FullPath()
			if path == "" {
				path = c.Request.URL.Path
			}
			metrics.RateLimited.WithLabelValues(path).Inc()
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
