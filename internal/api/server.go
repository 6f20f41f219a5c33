// Package api exposes the HTTP surface of the service: one resource per
// entity plus the dashboard, reports and document search aggregates.
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	nrgin "github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/rs/zerolog/log"

	"github.com/KodingMaster1/Molant/config"
	"github.com/KodingMaster1/Molant/internal/metrics"
	"github.com/KodingMaster1/Molant/internal/service"
	"github.com/KodingMaster1/Molant/internal/tracing"
)

// Server represents the HTTP server
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
}

// NewServer creates a new HTTP server with all routes registered
func NewServer(cfg config.Config, services *service.Services, m *metrics.Metrics, tracer tracing.Tracer) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger())
	router.Use(RequestMetrics(m))

	if tracer != nil && tracer.App() != nil {
		router.Use(nrgin.Middleware(tracer.App()))
	}

	registerRoutes(router, services, m)

	return &Server{
		router: router,
		httpServer: &http.Server{
			Addr:         cfg.ServerAddress,
			Handler:      router,
			ReadTimeout:  cfg.ServerTimeout,
			WriteTimeout: cfg.ServerTimeout,
		},
	}
}

func registerRoutes(router *gin.Engine, services *service.Services, m *metrics.Metrics) {
	system := NewSystemHandler(m)
	router.GET("/health", system.Health)
	router.GET("/metrics", system.Metrics)

	v1 := router.Group("/api/v1")

	clients := NewClientHandler(services.Clients)
	v1.GET("/clients", clients.List)
	v1.POST("/clients", clients.Create)
	v1.GET("/clients/:id", clients.Get)
	v1.PUT("/clients/:id", clients.Update)
	v1.DELETE("/clients/:id", clients.Delete)

	vendors := NewVendorHandler(services.Vendors)
	v1.GET("/vendors", vendors.List)
	v1.POST("/vendors", vendors.Create)
	v1.GET("/vendors/:id", vendors.Get)
	v1.PUT("/vendors/:id", vendors.Update)
	v1.DELETE("/vendors/:id", vendors.Delete)

	items := NewItemHandler(services.Items)
	v1.GET("/items", items.List)
	v1.POST("/items", items.Create)
	v1.GET("/items/:id", items.Get)
	v1.PUT("/items/:id", items.Update)
	v1.DELETE("/items/:id", items.Delete)

	catalog := NewCatalogHandler(services.Catalog)
	v1.GET("/services", catalog.List)
	v1.POST("/services", catalog.Create)
	v1.GET("/services/:id", catalog.Get)
	v1.PUT("/services/:id", catalog.Update)
	v1.DELETE("/services/:id", catalog.Delete)

	technicians := NewTechnicianHandler(services.Technicians)
	v1.GET("/technicians", technicians.List)
	v1.POST("/technicians", technicians.Create)
	v1.GET("/technicians/:id", technicians.Get)
	v1.PUT("/technicians/:id", technicians.Update)
	v1.PATCH("/technicians/:id/availability", technicians.SetAvailability)
	v1.DELETE("/technicians/:id", technicians.Delete)

	orders := NewOrderHandler(services.Orders)
	v1.GET("/orders", orders.List)
	v1.POST("/orders", orders.Create)
	v1.GET("/orders/:id", orders.Get)
	v1.PATCH("/orders/:id/status", orders.UpdateStatus)
	v1.DELETE("/orders/:id", orders.Delete)

	documents := NewDocumentHandler(services.Documents)
	v1.GET("/documents", documents.List)
	v1.POST("/documents", documents.Create)
	v1.GET("/documents/search", documents.Search)
	v1.GET("/documents/:id", documents.Get)
	v1.PATCH("/documents/:id/status", documents.UpdateStatus)
	v1.DELETE("/documents/:id", documents.Delete)

	payments := NewPaymentHandler(services.Payments)
	v1.GET("/payments", payments.List)
	v1.POST("/payments", payments.Create)
	v1.GET("/payments/:id", payments.Get)
	v1.DELETE("/payments/:id", payments.Delete)

	dashboard := NewDashboardHandler(services.Dashboard, services.Reports)
	v1.GET("/dashboard", dashboard.Overview)
	v1.GET("/reports", dashboard.Report)
	v1.GET("/reports/vendors", dashboard.VendorPerformance)
	v1.GET("/reports/inventory", dashboard.InventoryStatus)
	v1.POST("/reports/generate", dashboard.Generate)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	log.Info().Str("address", s.httpServer.Addr).Msg("starting HTTP server")
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Router exposes the underlying gin engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}
