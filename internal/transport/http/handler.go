package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/giftlist/internal/domain"
	"github.com/Gunvolt24/giftlist/internal/ports"
	"github.com/Gunvolt24/giftlist/pkg/validate"
)

// Services — прикладные сервисы, которые обслуживает HTTP-слой.
type Services struct {
	Catalog       ports.CatalogReader
	CatalogAdmin  ports.CatalogAdmin
	Guests        ports.GuestService
	Reservations  ports.ReservationAdmin
	Visitors      ports.VisitorReservations
	Notifications ports.NotificationAdmin
}

// ErrorReporter — приёмник 5xx-ошибок обработчиков (errorreport.Reporter).
type ErrorReporter interface {
	CaptureError(ctx context.Context, err error, tags map[string]string)
}

// Handler — HTTP-обработчики публичного и административного API.
type Handler struct {
	svc      Services
	log      ports.Logger
	reporter ErrorReporter
}

// NewHandler — конструктор; reporter может быть nil.
func NewHandler(svc Services, log ports.Logger, reporter ErrorReporter) *Handler {
	return &Handler{svc: svc, log: log, reporter: reporter}
}

// respondError — единое отображение ошибок сервисов в HTTP-статусы.
func (h *Handler) respondError(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	switch {
	case errors.Is(err, validate.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrAlreadyReserved):
		c.JSON(http.StatusConflict, gin.H{"error": "product already reserved"})
	default:
		h.log.Errorf(ctx, "%s failed err=%v", op, err)
		if h.reporter != nil {
			h.reporter.CaptureError(ctx, err, map[string]string{"op": op, "path": c.FullPath()})
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindJSON — разбор тела запроса; при ошибке отвечает 400 и возвращает false.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return false
	}
	return true
}
