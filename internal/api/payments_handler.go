package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KodingMaster1/Molant/internal/listing"
	"github.com/KodingMaster1/Molant/internal/models"
	"github.com/KodingMaster1/Molant/internal/service"
)

// PaymentHandler serves the payment resource
type PaymentHandler struct {
	svc *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(svc *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// List returns the filtered payment list with statistics
func (h *PaymentHandler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), service.PaymentListOptions{
		Window: listing.DateWindow(c.Query("window")),
		Search: c.Query("search"),
	})
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get returns one payment
func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	payment, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// Create stores a new payment; the balance is computed server-side
func (h *PaymentHandler) Create(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		WriteError(c, ErrInvalidRequest)
		return
	}

	if err := h.svc.Create(c.Request.Context(), &payment); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":      payment.ID.String(),
		"balance": payment.Balance,
		"message": "payment recorded",
	})
}

// Delete removes a payment
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, ackResponse{ID: id.String(), Message: "payment deleted"})
}
