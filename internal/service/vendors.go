package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/KodingMaster1/Molant/internal/listing"
	"github.com/KodingMaster1/Molant/internal/models"
	"github.com/KodingMaster1/Molant/internal/repositories"
)

// VendorListOptions narrows the vendor list
type VendorListOptions struct {
	Type   string // "all", "item", "service" or "both"
	Search string
}

// VendorStats are the header statistics for the vendor list. A vendor of
// type "both" counts toward both capability buckets.
type VendorStats struct {
	Total          int `json:"total"`
	ItemVendors    int `json:"item_vendors"`
	ServiceVendors int `json:"service_vendors"`
	BothVendors    int `json:"both_vendors"`
}

// VendorList is the vendor list response
type VendorList struct {
	Vendors []models.Vendor `json:"vendors"`
	Stats   VendorStats     `json:"stats"`
}

// VendorService implements vendor business logic
type VendorService struct {
	repo repositories.VendorRepository
}

// NewVendorService creates a new vendor service
func NewVendorService(repo repositories.VendorRepository) *VendorService {
	return &VendorService{repo: repo}
}

// List returns the filtered vendors together with full-set statistics
func (s *VendorService) List(ctx context.Context, opts VendorListOptions) (*VendorList, error) {
	vendors, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := VendorStats{Total: len(vendors)}
	for _, v := range vendors {
		switch v.Type {
		case models.VendorTypeItem:
			stats.ItemVendors++
		case models.VendorTypeService:
			stats.ServiceVendors++
		case models.VendorTypeBoth:
			stats.ItemVendors++
			stats.ServiceVendors++
			stats.BothVendors++
		}
	}

	filtered := listing.Apply(vendors, func(v models.Vendor) bool {
		if opts.Type == "" || opts.Type == listing.FilterAll {
			return true
		}
		return string(v.Type) == opts.Type
	})
	filtered = listing.Search(filtered, opts.Search, func(v models.Vendor) []string {
		return []string{v.Name, v.Contact}
	})

	return &VendorList{Vendors: filtered, Stats: stats}, nil
}

// Get returns one vendor by ID
func (s *VendorService) Get(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates and stores a new vendor
func (s *VendorService) Create(ctx context.Context, vendor *models.Vendor) error {
	if strings.TrimSpace(vendor.Name) == "" {
		return NewValidationError("vendor name is required")
	}
	if vendor.Type == "" {
		vendor.Type = models.VendorTypeItem
	}
	if !validVendorType(vendor.Type) {
		return NewValidationError("unknown vendor type %q", vendor.Type)
	}
	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}
	return s.repo.Create(ctx, vendor)
}

// Update validates and saves an existing vendor
func (s *VendorService) Update(ctx context.Context, vendor *models.Vendor) error {
	if strings.TrimSpace(vendor.Name) == "" {
		return NewValidationError("vendor name is required")
	}
	if !validVendorType(vendor.Type) {
		return NewValidationError("unknown vendor type %q", vendor.Type)
	}
	if _, err := s.repo.GetByID(ctx, vendor.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, vendor)
}

// Delete removes a vendor by ID
func (s *VendorService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func validVendorType(t models.VendorType) bool {
	switch t {
	case models.VendorTypeItem, models.VendorTypeService, models.VendorTypeBoth:
		return true
	}
	return false
}
