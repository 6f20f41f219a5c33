// Package service implements the business logic between the HTTP handlers
// and the repositories. List operations share one shape: fetch the full set,
// compute header statistics over it, then narrow the rows by category
// filters and free-text search.
package service

import (
	"context"
	"time"

	"github.com/KodingMaster1/Molant/internal/metrics"
	"github.com/KodingMaster1/Molant/internal/models"
	"github.com/KodingMaster1/Molant/internal/repositories"
)

// Cache is the subset of the Redis cache used by the services
type Cache interface {
	Get(ctx context.Context, key string, value interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

// DocumentIndex is the subset of the Elasticsearch client used by the
// document service
type DocumentIndex interface {
	IndexDocument(ctx context.Context, doc *models.Document, clientName string) error
	SearchDocuments(ctx context.Context, term string) ([]map[string]interface{}, error)
}

// Deps bundles everything the services are built from
type Deps struct {
	Clients     repositories.ClientRepository
	Vendors     repositories.VendorRepository
	Items       repositories.ItemRepository
	Services    repositories.ServiceRepository
	Technicians repositories.TechnicianRepository
	Orders      repositories.OrderRepository
	Documents   repositories.DocumentRepository
	Payments    repositories.PaymentRepository
	Summaries   repositories.SummaryRepository

	Cache   Cache
	Index   DocumentIndex
	Metrics *metrics.Metrics
}

// Services is the full set of business services
type Services struct {
	Clients     *ClientService
	Vendors     *VendorService
	Items       *ItemService
	Catalog     *ServiceCatalogService
	Technicians *TechnicianService
	Orders      *OrderService
	Documents   *DocumentService
	Payments    *PaymentService
	Dashboard   *DashboardService
	Reports     *ReportsService
}

// NewServices wires every service from the shared dependencies
func NewServices(deps Deps) *Services {
	orders := NewOrderService(deps.Orders, deps.Summaries, deps.Cache)

	return &Services{
		Clients:     NewClientService(deps.Clients),
		Vendors:     NewVendorService(deps.Vendors),
		Items:       NewItemService(deps.Items),
		Catalog:     NewServiceCatalogService(deps.Services),
		Technicians: NewTechnicianService(deps.Technicians),
		Orders:      orders,
		Documents:   NewDocumentService(deps.Documents, deps.Orders, deps.Clients, deps.Index),
		Payments:    NewPaymentService(deps.Payments, deps.Orders, deps.Cache),
		Dashboard:   NewDashboardService(deps.Clients, deps.Items, deps.Services, deps.Orders, deps.Summaries, deps.Cache, deps.Metrics),
		Reports:     NewReportsService(deps.Clients, deps.Items, deps.Services, deps.Orders, deps.Documents, deps.Payments, deps.Summaries, deps.Cache),
	}
}
