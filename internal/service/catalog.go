package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/KodingMaster1/Molant/internal/listing"
	"github.com/KodingMaster1/Molant/internal/models"
	"github.com/KodingMaster1/Molant/internal/repositories"
)

// ServiceListOptions narrows the service catalog list
type ServiceListOptions struct {
	CostBand string // "all", "low", "medium" or "high"
	Search   string
}

// ServiceCatalogStats are the header statistics for the service catalog
type ServiceCatalogStats struct {
	Total      int     `json:"total"`
	LowCost    int     `json:"low_cost"`
	MediumCost int     `json:"medium_cost"`
	HighCost   int     `json:"high_cost"`
	AvgCost    float64 `json:"avg_cost"`
}

// ServiceRow is one catalog row with its display vendor name resolved
type ServiceRow struct {
	models.Service
	VendorName string `json:"vendor_name"`
	CostBand   string `json:"cost_band"`
}

// ServiceList is the service catalog list response
type ServiceList struct {
	Services []ServiceRow        `json:"services"`
	Stats    ServiceCatalogStats `json:"stats"`
}

// ServiceCatalogService implements service catalog business logic
type ServiceCatalogService struct {
	repo repositories.ServiceRepository
}

// NewServiceCatalogService creates a new service catalog service
func NewServiceCatalogService(repo repositories.ServiceRepository) *ServiceCatalogService {
	return &ServiceCatalogService{repo: repo}
}

// List returns the filtered services together with full-set statistics
func (s *ServiceCatalogService) List(ctx context.Context, opts ServiceListOptions) (*ServiceList, error) {
	services, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := ServiceCatalogStats{Total: len(services)}
	var totalCost float64
	for _, svc := range services {
		switch listing.CostBand(svc.Cost) {
		case listing.CostBandLow:
			stats.LowCost++
		case listing.CostBandMedium:
			stats.MediumCost++
		case listing.CostBandHigh:
			stats.HighCost++
		}
		totalCost += svc.Cost
	}
	if len(services) > 0 {
		stats.AvgCost = totalCost / float64(len(services))
	}

	rows := make([]ServiceRow, 0, len(services))
	for _, svc := range services {
		rows = append(rows, ServiceRow{
			Service:    svc,
			VendorName: serviceVendorName(svc),
			CostBand:   listing.CostBand(svc.Cost),
		})
	}

	filtered := listing.Apply(rows, func(r ServiceRow) bool {
		return listing.MatchesCostBand(r.Cost, opts.CostBand)
	})
	filtered = listing.Search(filtered, opts.Search, func(r ServiceRow) []string {
		return []string{r.Name, r.VendorName}
	})

	return &ServiceList{Services: filtered, Stats: stats}, nil
}

// Get returns one service by ID
func (s *ServiceCatalogService) Get(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates and stores a new service
func (s *ServiceCatalogService) Create(ctx context.Context, svc *models.Service) error {
	if strings.TrimSpace(svc.Name) == "" {
		return NewValidationError("service name is required")
	}
	if svc.Cost < 0 {
		return NewValidationError("service cost cannot be negative")
	}
	if svc.ID == uuid.Nil {
		svc.ID = uuid.New()
	}
	return s.repo.Create(ctx, svc)
}

// Update validates and saves an existing service
func (s *ServiceCatalogService) Update(ctx context.Context, svc *models.Service) error {
	if strings.TrimSpace(svc.Name) == "" {
		return NewValidationError("service name is required")
	}
	if svc.Cost < 0 {
		return NewValidationError("service cost cannot be negative")
	}
	if _, err := s.repo.GetByID(ctx, svc.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, svc)
}

// Delete removes a service by ID
func (s *ServiceCatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func serviceVendorName(svc models.Service) string {
	if svc.Vendor != nil && svc.Vendor.Name != "" {
		return svc.Vendor.Name
	}
	return UnknownVendor
}
