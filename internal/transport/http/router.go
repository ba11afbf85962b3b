package rest

import (
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/giftlist/pkg/httpx"
)

// RouterOptions — параметры сборки роутера; нулевые значения отключают соответствующие части.
type RouterOptions struct {
	StaticDir       string
	OtelServiceName string
	HandlerTimeout  time.Duration
	SecureCookie    bool
	RateLimiter     *httpx.RateLimiter
	PanicReporter   httpx.PanicReporter
}

// NewRouter — gin-роутер публичного и административного API.
func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(httpx.Recovery(h.log, opts.PanicReporter))
	r.Use(httpx.RequestIDMiddleware())
	if opts.OtelServiceName != "" {
		r.Use(otelgin.Middleware(opts.OtelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	limited := func(c *gin.Context) { c.Next() }
	if opts.RateLimiter != nil {
		limited = opts.RateLimiter.Middleware()
	}

	api := r.Group("/api", httpx.Timeout(opts.HandlerTimeout), httpx.VisitorIDMiddleware(httpx.VisitorOptions{Secure: opts.SecureCookie}))
	{
		api.GET("/overview", h.overview)
		api.GET("/categories", h.listCategories)
		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)
		api.GET("/progress", h.progress)
		api.GET("/delivery-address", h.deliveryAddress)

		api.POST("/reservations", limited, h.reserve)
		api.POST("/surprises", limited, h.submitSurprise)

		api.GET("/me/reservations", h.myReservations)
		api.DELETE("/me/reservations/:id", h.removeMyReservation)
		api.DELETE("/me/reservations", h.clearMyReservations)
	}

	admin := api.Group("/admin")
	{
		admin.POST("/categories", h.createCategory)
		admin.PUT("/categories/:id", h.updateCategory)
		admin.DELETE("/categories/:id", h.deleteCategory)

		admin.POST("/products", h.createProduct)
		admin.PUT("/products/:id", h.updateProduct)
		admin.DELETE("/products/:id", h.deleteProduct)

		admin.GET("/reservations", h.listReservations)
		admin.DELETE("/reservations/:id", h.cancelReservation)
		admin.GET("/surprises", h.listSurprises)
		admin.DELETE("/surprises/:id", h.deleteSurprise)

		admin.GET("/hosts", h.listHosts)
		admin.POST("/hosts", h.createHost)
		admin.DELETE("/hosts/:id", h.deleteHost)

		admin.GET("/templates", h.listTemplates)
		admin.PUT("/templates/:kind", h.saveTemplate)
		admin.POST("/templates/preview", h.previewTemplate)

		admin.PUT("/delivery-address", h.setDeliveryAddress)
		admin.GET("/notifications", h.listNotifications)
		admin.POST("/cache/clear", h.clearCache)
	}

	if opts.StaticDir != "" {
		r.Static("/static", opts.StaticDir)
		r.StaticFile("/", filepath.Join(opts.StaticDir, "index.html"))
	}

	return r
}
