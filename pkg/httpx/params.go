package httpx

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Границы пагинации по умолчанию.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ClampInt — ограничение значения v в диапазоне [lo, hi].
func ClampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// ParseLimitOffset — читает limit/offset из query с дефолтами и границами.
// Нечисловой limit → defaultLimit, отрицательный или нечисловой offset → 0.
func ParseLimitOffset(c *gin.Context, defaultLimit, maxLimit int) (limit, offset int) {
	limit = ParseLimit(c, defaultLimit, maxLimit)
	if v, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}

// ParseLimit — только limit, в диапазоне [1, maxLimit].
func ParseLimit(c *gin.Context, defaultLimit, maxLimit int) int {
	limit := ClampInt(defaultLimit, 1, maxLimit)
	if v, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit))); err == nil {
		limit = ClampInt(v, 1, maxLimit)
	}
	return limit
}
