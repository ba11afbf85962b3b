package httpx

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Gunvolt24/giftlist/pkg/ctxmeta"
)

const (
	// HeaderVisitorID — явный id посетителя (для клиентов без cookie).
	HeaderVisitorID = "X-Visitor-ID"
	// CookieVisitorID — cookie с id посетителя.
	CookieVisitorID = "visitor_id"

	maxVisitorIDLength = 64
	visitorCookieTTL   = 365 * 24 * time.Hour
)

// VisitorOptions — параметры cookie посетителя.
type VisitorOptions struct {
	Secure bool
}

// VisitorIDMiddleware — определяет посетителя по X-Visitor-ID или cookie visitor_id.
// Если id нет (или он некорректен), генерирует UUID и выставляет cookie.
// id кладётся в контекст запроса (ctxmeta.VisitorIDFromContext).
func VisitorIDMiddleware(opts VisitorOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		visitorID := c.GetHeader(HeaderVisitorID)
		if !validToken(visitorID, maxVisitorIDLength) {
			visitorID, _ = c.Cookie(CookieVisitorID)
		}
		if !validToken(visitorID, maxVisitorIDLength) {
			visitorID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CookieVisitorID, visitorID, int(visitorCookieTTL.Seconds()), "/", "", opts.Secure, true)
		}

		ctx := ctxmeta.WithVisitorID(c.Request.Context(), visitorID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// VisitorID — id посетителя текущего запроса (пустая строка без VisitorIDMiddleware).
func VisitorID(c *gin.Context) string {
	id, _ := ctxmeta.VisitorIDFromContext(c.Request.Context())
	return id
}
