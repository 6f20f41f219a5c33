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

func TestServiceCatalogListCostBands(t *testing.T) {
	repo := new(MockServiceRepository)
	repo.On("ListAll", mock.Anything).Return([]models.Service{
		{ID: uuid.New(), Name: "Diagnosis", Cost: 50},
		{ID: uuid.New(), Name: "Installation", Cost: 100},
		{ID: uuid.New(), Name: "Overhaul", Cost: 500},
	}, nil)

	svc := NewServiceCatalogService(repo)
	result, err := svc.List(context.Background(), ServiceListOptions{CostBand: listing.CostBandMedium})

	require.NoError(t, err)
	require.Len(t, result.Services, 1)
	require.Equal(t, "Installation", result.Services[0].Name)
	require.Equal(t, listing.CostBandMedium, result.Services[0].CostBand)

	require.Equal(t, 3, result.Stats.Total)
	require.Equal(t, 1, result.Stats.LowCost)
	require.Equal(t, 1, result.Stats.MediumCost)
	require.Equal(t, 1, result.Stats.HighCost)
	require.InDelta(t, 216.67, result.Stats.AvgCost, 0.01)
}

func TestTechnicianListAvailabilityFilter(t *testing.T) {
	repo := new(MockTechnicianRepository)
	repo.On("ListAll", mock.Anything).Return([]models.Technician{
		{ID: uuid.New(), Name: "Amina", IsAvailable: true, ServiceIDs: []uuid.UUID{uuid.New(), uuid.New()}},
		{ID: uuid.New(), Name: "Brian", IsAvailable: false},
	}, nil)

	svc := NewTechnicianService(repo)
	result, err := svc.List(context.Background(), TechnicianListOptions{Availability: AvailabilityAvailable})

	require.NoError(t, err)
	require.Len(t, result.Technicians, 1)
	require.Equal(t, "Amina", result.Technicians[0].Name)

	require.Equal(t, 2, result.Stats.Total)
	require.Equal(t, 1, result.Stats.Available)
	require.Equal(t, 1, result.Stats.Unavailable)
	require.Equal(t, float64(1), result.Stats.AvgServices)
}

func TestVendorListTypeCounts(t *testing.T) {
	repo := new(MockVendorRepository)
	repo.On("ListAll", mock.Anything).Return([]models.Vendor{
		{ID: uuid.New(), Name: "Bolt Supplies", Type: models.VendorTypeItem},
		{ID: uuid.New(), Name: "FixIt Crew", Type: models.VendorTypeService},
		{ID: uuid.New(), Name: "Omni Partners", Type: models.VendorTypeBoth},
	}, nil)

	svc := NewVendorService(repo)
	result, err := svc.List(context.Background(), VendorListOptions{Type: "service"})

	require.NoError(t, err)
	require.Len(t, result.Vendors, 1)

	// "both" vendors count toward both capability buckets
	require.Equal(t, 3, result.Stats.Total)
	require.Equal(t, 2, result.Stats.ItemVendors)
	require.Equal(t, 2, result.Stats.ServiceVendors)
	require.Equal(t, 1, result.Stats.BothVendors)
}
