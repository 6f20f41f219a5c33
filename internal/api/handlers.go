package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KodingMaster1/Molant/internal/metrics"
)

// statusRequest is the body of every PATCH :id/status endpoint
type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ackResponse is the body returned by mutations; callers re-fetch the
// list instead of patching it from the response
type ackResponse struct {
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
}

// parseIDParam reads the :id path parameter as a UUID. On failure it
// writes the error response and reports false.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		WriteError(c, NewError("invalid id parameter", http.StatusBadRequest, "INVALID_REQUEST"))
		return uuid.Nil, false
	}
	return id, true
}

// SystemHandler serves the health and metrics endpoints
type SystemHandler struct {
	metrics *metrics.Metrics
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(m *metrics.Metrics) *SystemHandler {
	return &SystemHandler{metrics: m}
}

// Health reports service liveness
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Metrics serves the in-process metrics snapshot
func (h *SystemHandler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.Snapshot())
}
