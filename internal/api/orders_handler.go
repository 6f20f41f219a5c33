package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KodingMaster1/Molant/internal/models"
	"github.com/KodingMaster1/Molant/internal/service"
)

// OrderHandler serves the order resource
type OrderHandler struct {
	svc *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// List returns the filtered order list with statistics
func (h *OrderHandler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), service.OrderListOptions{
		Status: c.Query("status"),
		Type:   c.Query("type"),
		Search: c.Query("search"),
	})
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get returns one order with its line details
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	order, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Create stores a new order with its line details
func (h *OrderHandler) Create(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		WriteError(c, ErrInvalidRequest)
		return
	}

	if err := h.svc.Create(c.Request.Context(), &order); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ackResponse{ID: order.ID.String(), Message: "order created"})
}

// UpdateStatus sets the order workflow status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		WriteError(c, ErrInvalidRequest)
		return
	}

	if err := h.svc.UpdateStatus(c.Request.Context(), id, models.OrderStatus(req.Status)); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, ackResponse{ID: id.String(), Message: "order status updated"})
}

// Delete removes an order
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, ackResponse{ID: id.String(), Message: "order deleted"})
}
