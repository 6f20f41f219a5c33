package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KodingMaster1/Molant/internal/models"
	"github.com/KodingMaster1/Molant/internal/service"
)

// DocumentHandler serves the workflow document resource
type DocumentHandler struct {
	svc *service.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(svc *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// List returns the filtered document list with statistics
func (h *DocumentHandler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), service.DocumentListOptions{
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get returns one document
func (h *DocumentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	doc, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Create stores a new document; the document number is assigned server-side
func (h *DocumentHandler) Create(c *gin.Context) {
	var doc models.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		WriteError(c, ErrInvalidRequest)
		return
	}

	if err := h.svc.Create(c.Request.Context(), &doc); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":              doc.ID.String(),
		"document_number": doc.DocumentNumber,
		"message":         "document created",
	})
}

// UpdateStatus sets the document workflow status
func (h *DocumentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		WriteError(c, ErrInvalidRequest)
		return
	}

	if err := h.svc.UpdateStatus(c.Request.Context(), id, models.DocumentStatus(req.Status)); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, ackResponse{ID: id.String(), Message: "document status updated"})
}

// Search queries the document search index
func (h *DocumentHandler) Search(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		WriteError(c, NewError("query parameter q is required", http.StatusBadRequest, "INVALID_REQUEST"))
		return
	}

	results, err := h.svc.Search(c.Request.Context(), term)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// Delete removes a document
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, ackResponse{ID: id.String(), Message: "document deleted"})
}
