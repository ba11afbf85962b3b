//go:build !integration

package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/giftlist/internal/domain"
	"github.com/Gunvolt24/giftlist/internal/ports"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// catalogN — CatalogReader с фиксированным каталогом из n продуктов.
type catalogN struct {
	ports.CatalogReader
	products []domain.Product
}

func newCatalogN(n int) catalogN {
	products := make([]domain.Product, n)
	for i := range products {
		products[i] = domain.Product{
			ID:         "p-" + strconv.Itoa(i),
			CategoryID: "c-1",
			Name:       fmt.Sprintf("Produto %d", i),
			PriceCents: int64(1000 + i),
			CreatedAt:  time.Unix(1_700_000_000, 0).UTC(),
		}
	}
	return catalogN{products: products}
}

func (c catalogN) ListProducts(context.Context, string) ([]domain.Product, error) {
	return c.products, nil
}

// --- Бенчмарки ---

// Список продуктов: 10/50/200 — рост аллокаций и времени; LEAN vs FULL пайплайн
func BenchmarkHTTP_ListProducts(b *testing.B) {
	for _, n := range []int{10, 50, 200} {
		h := NewHandler(Services{Catalog: newCatalogN(n)}, nopLogger{}, nil)
		lean := makeLeanRouter(h)
		full := NewRouter(h, RouterOptions{HandlerTimeout: 2 * time.Second})

		b.Run("lean/n="+strconv.Itoa(n), func(b *testing.B) {
			benchServeGET(b, lean, "/api/products")
		})
		b.Run("full/n="+strconv.Itoa(n), func(b *testing.B) {
			benchServeGET(b, full, "/api/products")
		})
	}
}

// makeLeanRouter — только хендлер, без middleware.
func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/api/products", h.listProducts)
	return r
}

func benchServeGET(b *testing.B, r http.Handler, path string) {
	b.Helper()
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			b.Fatalf("status %d", w.Code)
		}
		_, _ = io.Copy(io.Discard, w.Body)
	}
}
