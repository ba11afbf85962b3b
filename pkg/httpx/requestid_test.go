package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Gunvolt24/giftlist/pkg/ctxmeta"
	"github.com/Gunvolt24/giftlist/pkg/httpx"
)

func serveRequestID(t *testing.T, header string) (ctxID, respID string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(httpx.RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		ctxID, _ = ctxmeta.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	if header != "" {
		req.Header.Set(httpx.HeaderRequestID, header)
	}
	r.ServeHTTP(w, req)
	return ctxID, w.Header().Get(httpx.HeaderRequestID)
}

func TestRequestIDMiddleware_GeneratesWhenMissing(t *testing.T) {
	ctxID, rid := serveRequestID(t, "")
	if _, err := uuid.Parse(rid); err != nil {
		t.Fatalf("сгенерированный X-Request-ID должен быть UUID, got=%q err=%v", rid, err)
	}
	if ctxID != rid {
		t.Fatalf("request id в контексте должен совпадать с заголовком: ctx=%q header=%q", ctxID, rid)
	}
}

func TestRequestIDMiddleware_UsesProvidedHeader(t *testing.T) {
	const provided = "custom-id-42"
	ctxID, rid := serveRequestID(t, provided)
	if rid != provided || ctxID != provided {
		t.Fatalf("middleware должен сохранять переданный X-Request-ID: ctx=%q header=%q want=%q", ctxID, rid, provided)
	}
}

func TestRequestIDMiddleware_RejectsOversizedHeader(t *testing.T) {
	_, rid := serveRequestID(t, strings.Repeat("a", 65))
	if _, err := uuid.Parse(rid); err != nil {
		t.Fatalf("слишком длинный X-Request-ID должен заменяться UUID, got=%q", rid)
	}
}
