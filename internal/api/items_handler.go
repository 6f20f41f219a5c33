package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KodingMaster1/Molant/internal/models"
	"github.com/KodingMaster1/Molant/internal/service"
)

// ItemHandler serves the inventory item resource
type ItemHandler struct {
	svc *service.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(svc *service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

// List returns the filtered item list with statistics
func (h *ItemHandler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), service.ItemListOptions{
		Stock:  c.Query("stock"),
		Search: c.Query("search"),
	})
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get returns one item
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create stores a new item
func (h *ItemHandler) Create(c *gin.Context) {
	var item models.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		WriteError(c, ErrInvalidRequest)
		return
	}

	if err := h.svc.Create(c.Request.Context(), &item); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ackResponse{ID: item.ID.String(), Message: "item created"})
}

// Update saves an existing item
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var item models.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		WriteError(c, ErrInvalidRequest)
		return
	}
	item.ID = id

	if err := h.svc.Update(c.Request.Context(), &item); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, ackResponse{ID: id.String(), Message: "item updated"})
}

// Delete removes an item
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, ackResponse{ID: id.String(), Message: "item deleted"})
}
