package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devansh6012/online-store-test/internal/server/http/dto"
)

// OrderHandler manages customer order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request")
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), CurrentUserID(c), req.Lines(), req.TotalAmount, req.ShippingDetails())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OrderCreatedResponse{
		Message: "Order created successfully",
		OrderID: order.ID,
	})
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponses(orders))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := h.facade.Order(c.Request.Context(), id, CurrentUserID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}

// Cancel handles POST /api/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := h.facade.CancelOrder(c.Request.Context(), id, CurrentUserID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}
