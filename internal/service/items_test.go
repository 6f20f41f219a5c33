package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KodingMaster1/Molant/internal/listing"
	"github.com/KodingMaster1/Molant/internal/models"
)

func TestItemListBucketsAndFilters(t *testing.T) {
	vendor := &models.Vendor{ID: uuid.New(), Name: "Bolt Supplies"}

	repo := new(MockItemRepository)
	repo.On("ListAll", mock.Anything).Return([]models.Item{
		{ID: uuid.New(), Name: "Widget", StockQty: 0, BuyPrice: 100, SellPrice: 150, Vendor: vendor},
		{ID: uuid.New(), Name: "Gadget", StockQty: 10, BuyPrice: 0, SellPrice: 80},
		{ID: uuid.New(), Name: "Sprocket", StockQty: 25, BuyPrice: 200, SellPrice: 300, Vendor: vendor},
	}, nil)

	svc := NewItemService(repo)
	result, err := svc.List(context.Background(), ItemListOptions{Stock: listing.StockLowStock})

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	require.Equal(t, "Gadget", result.Items[0].Name)
	require.Equal(t, UnknownVendor, result.Items[0].VendorName)

	// Zero buy price yields zero margin
	require.Equal(t, float64(0), result.Items[0].ProfitMargin)

	// Stats cover the full set, not the filtered rows
	require.Equal(t, 3, result.Stats.Total)
	require.Equal(t, 1, result.Stats.InStock)
	require.Equal(t, 1, result.Stats.LowStock)
	require.Equal(t, 1, result.Stats.OutOfStock)
	require.Equal(t, float64(5000), result.Stats.StockValue)
}

func TestItemSearchMatchesVendorName(t *testing.T) {
	vendor := &models.Vendor{ID: uuid.New(), Name: "Bolt Supplies"}

	repo := new(MockItemRepository)
	repo.On("ListAll", mock.Anything).Return([]models.Item{
		{ID: uuid.New(), Name: "Widget", Vendor: vendor},
		{ID: uuid.New(), Name: "Gadget"},
	}, nil)

	svc := NewItemService(repo)
	result, err := svc.List(context.Background(), ItemListOptions{Search: "bolt"})

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	require.Equal(t, "Widget", result.Items[0].Name)
}

func TestItemCreateValidation(t *testing.T) {
	svc := NewItemService(new(MockItemRepository))

	require.True(t, IsValidationError(svc.Create(context.Background(), &models.Item{})))
	require.True(t, IsValidationError(svc.Create(context.Background(), &models.Item{Name: "Widget", BuyPrice: -1})))
	require.True(t, IsValidationError(svc.Create(context.Background(), &models.Item{Name: "Widget", StockQty: -1})))
}
