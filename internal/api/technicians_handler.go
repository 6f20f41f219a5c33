package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KodingMaster1/Molant/internal/models"
	"github.com/KodingMaster1/Molant/internal/service"
)

// TechnicianHandler serves the technician resource
type TechnicianHandler struct {
	svc *service.TechnicianService
}

// NewTechnicianHandler creates a new technician handler
func NewTechnicianHandler(svc *service.TechnicianService) *TechnicianHandler {
	return &TechnicianHandler{svc: svc}
}

// List returns the filtered technician list with statistics
func (h *TechnicianHandler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), service.TechnicianListOptions{
		Availability: c.Query("availability"),
		Search:       c.Query("search"),
	})
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get returns one technician
func (h *TechnicianHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	tech, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, tech)
}

// Create stores a new technician
func (h *TechnicianHandler) Create(c *gin.Context) {
	var tech models.Technician
	if err := c.ShouldBindJSON(&tech); err != nil {
		WriteError(c, ErrInvalidRequest)
		return
	}

	if err := h.svc.Create(c.Request.Context(), &tech); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ackResponse{ID: tech.ID.String(), Message: "technician created"})
}

// Update saves an existing technician
func (h *TechnicianHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var tech models.Technician
	if err := c.ShouldBindJSON(&tech); err != nil {
		WriteError(c, ErrInvalidRequest)
		return
	}
	tech.ID = id

	if err := h.svc.Update(c.Request.Context(), &tech); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, ackResponse{ID: id.String(), Message: "technician updated"})
}

// SetAvailability flips the technician availability flag
func (h *TechnicianHandler) SetAvailability(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req struct {
		IsAvailable *bool `json:"is_available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		WriteError(c, ErrInvalidRequest)
		return
	}

	if err := h.svc.SetAvailability(c.Request.Context(), id, *req.IsAvailable); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, ackResponse{ID: id.String(), Message: "technician availability updated"})
}

// Delete removes a technician
func (h *TechnicianHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, ackResponse{ID: id.String(), Message: "technician deleted"})
}
