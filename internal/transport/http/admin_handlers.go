package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/giftlist/internal/domain"
	"github.com/Gunvolt24/giftlist/pkg/httpx"
)

// notificationsLimit — лимиты журнала уведомлений в админке.
const (
	notificationsDefaultLimit = 50
	notificationsMaxLimit     = 500
)

func (h *Handler) createCategory(c *gin.Context) {
	var category domain.Category
	if !bindJSON(c, &category) {
		return
	}
	category.ID = ""
	if err := h.svc.CatalogAdmin.CreateCategory(c.Request.Context(), &category); err != nil {
		h.respondError(c, "CreateCategory", err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *Handler) updateCategory(c *gin.Context) {
	var category domain.Category
	if !bindJSON(c, &category) {
		return
	}
	category.ID = c.Param("id")
	if err := h.svc.CatalogAdmin.UpdateCategory(c.Request.Context(), &category); err != nil {
		h.respondError(c, "UpdateCategory", err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *Handler) deleteCategory(c *gin.Context) {
	if err := h.svc.CatalogAdmin.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, "DeleteCategory", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) createProduct(c *gin.Context) {
	var product domain.Product
	if !bindJSON(c, &product) {
		return
	}
	product.ID = ""
	product.IsReserved = false
	if err := h.svc.CatalogAdmin.CreateProduct(c.Request.Context(), &product); err != nil {
		h.respondError(c, "CreateProduct", err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *Handler) updateProduct(c *gin.Context) {
	var product domain.Product
	if !bindJSON(c, &product) {
		return
	}
	product.ID = c.Param("id")
	if err := h.svc.CatalogAdmin.UpdateProduct(c.Request.Context(), &product); err != nil {
		h.respondError(c, "UpdateProduct", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) deleteProduct(c *gin.Context) {
	if err := h.svc.CatalogAdmin.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, "DeleteProduct", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) setDeliveryAddress(c *gin.Context) {
	var address domain.DeliveryAddress
	if !bindJSON(c, &address) {
		return
	}
	if err := h.svc.CatalogAdmin.SetDeliveryAddress(c.Request.Context(), &address); err != nil {
		h.respondError(c, "SetDeliveryAddress", err)
		return
	}
	c.JSON(http.StatusOK, address)
}

func (h *Handler) clearCache(c *gin.Context) {
	h.svc.CatalogAdmin.InvalidateAll(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func (h *Handler) listReservations(c *gin.Context) {
	limit, offset := httpx.ParseLimitOffset(c, httpx.DefaultLimit, httpx.MaxLimit)
	list, err := h.svc.Reservations.ListReservations(c.Request.Context(), limit, offset)
	if err != nil {
		h.respondError(c, "ListReservations", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) cancelReservation(c *gin.Context) {
	if err := h.svc.Reservations.CancelReservation(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, "CancelReservation", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listSurprises(c *gin.Context) {
	limit, offset := httpx.ParseLimitOffset(c, httpx.DefaultLimit, httpx.MaxLimit)
	list, err := h.svc.Reservations.ListSurprises(c.Request.Context(), limit, offset)
	if err != nil {
		h.respondError(c, "ListSurprises", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) deleteSurprise(c *gin.Context) {
	if err := h.svc.Reservations.DeleteSurprise(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, "DeleteSurprise", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listHosts(c *gin.Context) {
	hosts, err := h.svc.Notifications.ListHosts(c.Request.Context())
	if err != nil {
		h.respondError(c, "ListHosts", err)
		return
	}
	c.JSON(http.StatusOK, hosts)
}

func (h *Handler) createHost(c *gin.Context) {
	var host domain.Host
	if !bindJSON(c, &host) {
		return
	}
	host.ID = ""
	if err := h.svc.Notifications.CreateHost(c.Request.Context(), &host); err != nil {
		h.respondError(c, "CreateHost", err)
		return
	}
	c.JSON(http.StatusCreated, host)
}

func (h *Handler) deleteHost(c *gin.Context) {
	if err := h.svc.Notifications.DeleteHost(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, "DeleteHost", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listTemplates(c *gin.Context) {
	templates, err := h.svc.Notifications.ListTemplates(c.Request.Context())
	if err != nil {
		h.respondError(c, "ListTemplates", err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (h *Handler) saveTemplate(c *gin.Context) {
	var template domain.NotificationTemplate
	if !bindJSON(c, &template) {
		return
	}
	template.Kind = c.Param("kind")
	if err := h.svc.Notifications.SaveTemplate(c.Request.Context(), &template); err != nil {
		h.respondError(c, "SaveTemplate", err)
		return
	}
	c.JSON(http.StatusOK, template)
}

// previewRequest — шаблон и (необязательное) событие для предпросмотра.
type previewRequest struct {
	Template domain.NotificationTemplate `json:"template"`
	Event    *domain.RegistryEvent       `json:"event"`
}

func (h *Handler) previewTemplate(c *gin.Context) {
	var req previewRequest
	if !bindJSON(c, &req) {
		return
	}
	event := req.Event
	if event == nil {
		event = sampleEvent(req.Template.Kind)
	}
	c.JSON(http.StatusOK, gin.H{"text": h.svc.Notifications.Preview(&req.Template, event)})
}

// sampleEvent — демонстрационное событие для предпросмотра без данных.
func sampleEvent(kind string) *domain.RegistryEvent {
	return &domain.RegistryEvent{
		Kind:         kind,
		ProductName:  "Jogo de panelas",
		CategoryName: "Cozinha",
		GuestName:    "Maria",
		Message:      "Com carinho!",
		OccurredAt:   time.Now().UTC(),
	}
}

func (h *Handler) listNotifications(c *gin.Context) {
	limit := httpx.ParseLimit(c, notificationsDefaultLimit, notificationsMaxLimit)
	list, err := h.svc.Notifications.ListNotifications(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, "ListNotifications", err)
		return
	}
	c.JSON(http.StatusOK, list)
}
