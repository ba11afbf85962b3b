package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/giftlist/internal/domain"
	"github.com/Gunvolt24/giftlist/internal/tracker"
	"github.com/Gunvolt24/giftlist/pkg/httpx"
)

func (h *Handler) overview(c *gin.Context) {
	overview, err := h.svc.Catalog.Overview(c.Request.Context())
	if err != nil {
		h.respondError(c, "Overview", err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.svc.Catalog.ListCategories(c.Request.Context())
	if err != nil {
		h.respondError(c, "ListCategories", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.svc.Catalog.ListProducts(c.Request.Context(), c.Query("category_id"))
	if err != nil {
		h.respondError(c, "ListProducts", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) getProduct(c *gin.Context) {
	product, err := h.svc.Catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "GetProduct", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) progress(c *gin.Context) {
	stats, err := h.svc.Catalog.Progress(c.Request.Context())
	if err != nil {
		h.respondError(c, "Progress", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) deliveryAddress(c *gin.Context) {
	address, err := h.svc.Catalog.DeliveryAddress(c.Request.Context())
	if err != nil {
		h.respondError(c, "DeliveryAddress", err)
		return
	}
	c.JSON(http.StatusOK, address)
}

func (h *Handler) reserve(c *gin.Context) {
	var req domain.ReserveRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.svc.Guests.Reserve(c.Request.Context(), httpx.VisitorID(c), &req)
	if err != nil {
		h.respondError(c, "Reserve", err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *Handler) submitSurprise(c *gin.Context) {
	var req domain.SurpriseRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.svc.Guests.SubmitSurprise(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, "SubmitSurprise", err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) myReservations(c *gin.Context) {
	list, err := h.svc.Visitors.Reservations(c.Request.Context(), httpx.VisitorID(c))
	if err != nil {
		h.respondError(c, "VisitorReservations", err)
		return
	}
	if list == nil {
		list = []domain.LocalReservation{}
	}
	c.JSON(http.StatusOK, gin.H{
		"reservations":     list,
		"count":            len(list),
		"has_reservations": len(list) > 0,
	})
}

func (h *Handler) removeMyReservation(c *gin.Context) {
	removed, err := h.svc.Visitors.Remove(c.Request.Context(), httpx.VisitorID(c), c.Param("id"))
	if h.notPersisted(c, err) {
		return
	}
	if err != nil {
		h.respondError(c, "VisitorRemove", err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) clearMyReservations(c *gin.Context) {
	err := h.svc.Visitors.Clear(c.Request.Context(), httpx.VisitorID(c))
	if h.notPersisted(c, err) {
		return
	}
	if err != nil {
		h.respondError(c, "VisitorClear", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// notPersisted — изменение применено в памяти, но не сохранено: 200 {"persisted": false}.
func (h *Handler) notPersisted(c *gin.Context, err error) bool {
	if !errors.Is(err, tracker.ErrPersist) {
		return false
	}
	h.log.Warnf(c.Request.Context(), "local reservations changed but not persisted: %v", err)
	c.JSON(http.StatusOK, gin.H{"persisted": false})
	return true
}
