package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KodingMaster1/Molant/internal/models"
	"github.com/KodingMaster1/Molant/internal/service"
)

// ClientHandler serves the client resource
type ClientHandler struct {
	svc *service.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(svc *service.ClientService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

// List returns the filtered client list with statistics
func (h *ClientHandler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), service.ClientListOptions{
		Search: c.Query("search"),
	})
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get returns one client
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	client, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// Create stores a new client
func (h *ClientHandler) Create(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		WriteError(c, ErrInvalidRequest)
		return
	}

	if err := h.svc.Create(c.Request.Context(), &client); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ackResponse{ID: client.ID.String(), Message: "client created"})
}

// Update saves an existing client
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		WriteError(c, ErrInvalidRequest)
		return
	}
	client.ID = id

	if err := h.svc.Update(c.Request.Context(), &client); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, ackResponse{ID: id.String(), Message: "client updated"})
}

// Delete removes a client
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, ackResponse{ID: id.String(), Message: "client deleted"})
}
