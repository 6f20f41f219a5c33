package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/KodingMaster1/Molant/internal/listing"
	"github.com/KodingMaster1/Molant/internal/models"
	"github.com/KodingMaster1/Molant/internal/repositories"
)

// UnknownVendor is the display fallback when an item or service has no
// vendor joined
const UnknownVendor = "Unknown Vendor"

// ItemListOptions narrows the item list
type ItemListOptions struct {
	Stock  string // "all", "in_stock", "low_stock" or "out_of_stock"
	Search string
}

// ItemStats are the header statistics for the item list
type ItemStats struct {
	Total      int     `json:"total"`
	InStock    int     `json:"in_stock"`
	LowStock   int     `json:"low_stock"`
	OutOfStock int     `json:"out_of_stock"`
	StockValue float64 `json:"stock_value"`
}

// ItemRow is one item list row with its display vendor name resolved
type ItemRow struct {
	models.Item
	VendorName   string  `json:"vendor_name"`
	StockStatus  string  `json:"stock_status"`
	ProfitMargin float64 `json:"profit_margin"`
}

// ItemList is the item list response
type ItemList struct {
	Items []ItemRow `json:"items"`
	Stats ItemStats `json:"stats"`
}

// ItemService implements inventory item business logic
type ItemService struct {
	repo repositories.ItemRepository
}

// NewItemService creates a new item service
func NewItemService(repo repositories.ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

// List returns the filtered items together with full-set statistics
func (s *ItemService) List(ctx context.Context, opts ItemListOptions) (*ItemList, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := ItemStats{Total: len(items)}
	for _, item := range items {
		switch listing.StockStatus(item.StockQty) {
		case listing.StockInStock:
			stats.InStock++
		case listing.StockLowStock:
			stats.LowStock++
		case listing.StockOutOfStock:
			stats.OutOfStock++
		}
		stats.StockValue += item.BuyPrice * float64(item.StockQty)
	}

	rows := make([]ItemRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, ItemRow{
			Item:         item,
			VendorName:   itemVendorName(item),
			StockStatus:  listing.StockStatus(item.StockQty),
			ProfitMargin: listing.ProfitMargin(item.BuyPrice, item.SellPrice),
		})
	}

	filtered := listing.Apply(rows, func(r ItemRow) bool {
		return listing.MatchesStock(r.StockQty, opts.Stock)
	})
	filtered = listing.Search(filtered, opts.Search, func(r ItemRow) []string {
		return []string{r.Name, r.VendorName}
	})

	return &ItemList{Items: filtered, Stats: stats}, nil
}

// Get returns one item by ID
func (s *ItemService) Get(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates and stores a new item
func (s *ItemService) Create(ctx context.Context, item *models.Item) error {
	if err := validateItem(item); err != nil {
		return err
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return s.repo.Create(ctx, item)
}

// Update validates and saves an existing item
func (s *ItemService) Update(ctx context.Context, item *models.Item) error {
	if err := validateItem(item); err != nil {
		return err
	}
	if _, err := s.repo.GetByID(ctx, item.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, item)
}

// Delete removes an item by ID
func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func validateItem(item *models.Item) error {
	if strings.TrimSpace(item.Name) == "" {
		return NewValidationError("item name is required")
	}
	if item.BuyPrice < 0 || item.SellPrice < 0 {
		return NewValidationError("prices cannot be negative")
	}
	if item.StockQty < 0 {
		return NewValidationError("stock quantity cannot be negative")
	}
	return nil
}

func itemVendorName(item models.Item) string {
	if item.Vendor != nil && item.Vendor.Name != "" {
		return item.Vendor.Name
	}
	return UnknownVendor
}
