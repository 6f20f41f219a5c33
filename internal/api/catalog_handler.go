package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KodingMaster1/Molant/internal/models"
	"github.com/KodingMaster1/Molant/internal/service"
)

// CatalogHandler serves the service catalog resource
type CatalogHandler struct {
	svc *service.ServiceCatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(svc *service.ServiceCatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// List returns the filtered service catalog with statistics
func (h *CatalogHandler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), service.ServiceListOptions{
		CostBand: c.Query("cost_band"),
		Search:   c.Query("search"),
	})
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get returns one service
func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	svc, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// Create stores a new service
func (h *CatalogHandler) Create(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		WriteError(c, ErrInvalidRequest)
		return
	}

	if err := h.svc.Create(c.Request.Context(), &svc); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ackResponse{ID: svc.ID.String(), Message: "service created"})
}

// Update saves an existing service
func (h *CatalogHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		WriteError(c, ErrInvalidRequest)
		return
	}
	svc.ID = id

	if err := h.svc.Update(c.Request.Context(), &svc); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, ackResponse{ID: id.String(), Message: "service updated"})
}

// Delete removes a service
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, ackResponse{ID: id.String(), Message: "service deleted"})
}
