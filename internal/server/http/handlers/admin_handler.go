package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devansh6012/online-store-test/internal/domain/model"
	"github.com/devansh6012/online-store-test/internal/server/http/dto"
)

// AdminHandler manages the administrative endpoints.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.facade.Stats(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

// Users handles GET /api/admin/users.
func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserSummaryResponses(users))
}

// UpdateUserRole handles PATCH /api/admin/users/:id/role.
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.RoleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.facade.UpdateUserRole(c.Request.Context(), id, model.Role(req.Role)); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteUser handles DELETE /api/admin/users/:id.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteUser(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Orders handles GET /api/admin/orders.
func (h *AdminHandler) Orders(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponses(orders))
}

// Order handles GET /api/admin/orders/:id.
func (h *AdminHandler) Order(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := h.facade.OrderByID(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}

// UpdateOrderStatus handles PATCH /api/admin/orders/:id/status.
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request")
		return
	}
	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}
