package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"omsbridge/internal/domain"
	"omsbridge/internal/service"
)

// OrderHandler handles order forwarding endpoints.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Forward handles POST /api/v1/orders/forward, fired when an order
// completes on the commerce side.
func (h *OrderHandler) Forward(c *gin.Context) {
	var order domain.CompletedOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	if err := h.orderService.Forward(c.Request.Context(), &order); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"order_id": order.OrderID, "forwarded": true})
}
