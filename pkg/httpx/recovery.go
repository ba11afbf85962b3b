package httpx

import (
	"context"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/giftlist/internal/ports"
)

// PanicReporter — приёмник восстановленных паник (errorreport.Reporter).
type PanicReporter interface {
	CapturePanic(ctx context.Context, recovered any, tags map[string]string)
}

// Recovery — перехватывает панику обработчика, логирует стек и отвечает 500.
// reporter может быть nil.
func Recovery(log ports.Logger, reporter PanicReporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			ctx := c.Request.Context()
			log.Errorf(ctx, "panic recovered method=%s path=%s err=%v stack=%s",
				c.Request.Method, c.Request.URL.Path, rec, debug.Stack())
			if reporter != nil {
				reporter.CapturePanic(ctx, rec, map[string]string{
					"method": c.Request.Method,
					"path":   c.FullPath(),
				})
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}()
		c.Next()
	}
}
