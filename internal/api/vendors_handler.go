package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KodingMaster1/Molant/internal/models"
	"github.com/KodingMaster1/Molant/internal/service"
)

// VendorHandler serves the vendor resource
type VendorHandler struct {
	svc *service.VendorService
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(svc *service.VendorService) *VendorHandler {
	return &VendorHandler{svc: svc}
}

// List returns the filtered vendor list with statistics
func (h *VendorHandler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), service.VendorListOptions{
		Type:   c.Query("type"),
		Search: c.Query("search"),
	})
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get returns one vendor
func (h *VendorHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	vendor, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// Create stores a new vendor
func (h *VendorHandler) Create(c *gin.Context) {
	var vendor models.Vendor
	if err := c.ShouldBindJSON(&vendor); err != nil {
		WriteError(c, ErrInvalidRequest)
		return
	}

	if err := h.svc.Create(c.Request.Context(), &vendor); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ackResponse{ID: vendor.ID.String(), Message: "vendor created"})
}

// Update saves an existing vendor
func (h *VendorHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var vendor models.Vendor
	if err := c.ShouldBindJSON(&vendor); err != nil {
		WriteError(c, ErrInvalidRequest)
		return
	}
	vendor.ID = id

	if err := h.svc.Update(c.Request.Context(), &vendor); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, ackResponse{ID: id.String(), Message: "vendor updated"})
}

// Delete removes a vendor
func (h *VendorHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, ackResponse{ID: id.String(), Message: "vendor deleted"})
}
