package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KodingMaster1/Molant/internal/listing"
	"github.com/KodingMaster1/Molant/internal/service"
)

// DashboardHandler serves the dashboard and reports aggregates
type DashboardHandler struct {
	dashboard *service.DashboardService
	reports   *service.ReportsService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard *service.DashboardService, reports *service.ReportsService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, reports: reports}
}

// Overview returns the dashboard aggregate
func (h *DashboardHandler) Overview(c *gin.Context) {
	overview, err := h.dashboard.Overview(c.Request.Context())
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// Report returns the period report; the period defaults to month
func (h *DashboardHandler) Report(c *gin.Context) {
	period := listing.Period(c.DefaultQuery("period", string(listing.PeriodMonth)))

	report, err := h.reports.Report(c.Request.Context(), period)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// VendorPerformance returns the precomputed vendor performance rows
func (h *DashboardHandler) VendorPerformance(c *gin.Context) {
	rows, err := h.reports.VendorPerformance(c.Request.Context())
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": rows})
}

// InventoryStatus returns the precomputed inventory status rows
func (h *DashboardHandler) InventoryStatus(c *gin.Context) {
	rows, err := h.reports.InventoryStatus(c.Request.Context())
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": rows})
}

// Generate acknowledges a report generation request
func (h *DashboardHandler) Generate(c *gin.Context) {
	var req struct {
		Period string `json:"period"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		WriteError(c, ErrInvalidRequest)
		return
	}
	if req.Period == "" {
		req.Period = string(listing.PeriodMonth)
	}

	ack, err := h.reports.Generate(c.Request.Context(), listing.Period(req.Period))
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, ack)
}
