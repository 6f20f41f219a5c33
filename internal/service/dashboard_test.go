package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KodingMaster1/Molant/internal/models"
)

func newDashboardFixture() (*DashboardService, *MockClientRepository, *MockItemRepository, *MockServiceRepository, *MockOrderRepository, *MockSummaryRepository) {
	clients := new(MockClientRepository)
	items := new(MockItemRepository)
	services := new(MockServiceRepository)
	orders := new(MockOrderRepository)
	summaries := new(MockSummaryRepository)

	svc := NewDashboardService(clients, items, services, orders, summaries, nil, nil)
	return svc, clients, items, services, orders, summaries
}

func TestDashboardOverviewAggregates(t *testing.T) {
	svc, clients, items, services, orders, summaries := newDashboardFixture()

	clients.On("Count", mock.Anything).Return(int64(12), nil)
	items.On("Count", mock.Anything).Return(int64(40), nil)
	services.On("Count", mock.Anything).Return(int64(8), nil)
	orders.On("Count", mock.Anything).Return(int64(25), nil)
	summaries.On("ClientSummaries", mock.Anything).Return([]models.ClientSummary{
		{ID: uuid.New(), TotalRevenue: 10000, OutstandingBalance: 1500},
		{ID: uuid.New(), TotalRevenue: 5000, OutstandingBalance: 250},
	}, nil)
	orders.On("Recent", mock.Anything, recentOrderCount).Return([]models.Order{
		{ID: uuid.New(), Client: &models.Client{Name: "Acme Traders"}},
		{ID: uuid.New()},
	}, nil)

	overview, err := svc.Overview(context.Background())

	require.NoError(t, err)
	require.Equal(t, int64(12), overview.TotalClients)
	require.Equal(t, int64(40), overview.TotalItems)
	require.Equal(t, int64(8), overview.TotalServices)
	require.Equal(t, int64(25), overview.TotalOrders)

	// Revenue and outstanding are sums over the summary view rows
	require.Equal(t, float64(15000), overview.TotalRevenue)
	require.Equal(t, float64(1750), overview.OutstandingBalance)

	require.Len(t, overview.RecentOrders, 2)
	require.Equal(t, "Acme Traders", overview.RecentOrders[0].ClientName)
	require.Equal(t, UnknownClient, overview.RecentOrders[1].ClientName)
}

func TestDashboardSubFetchFailureIsIsolated(t *testing.T) {
	svc, clients, items, services, orders, summaries := newDashboardFixture()

	clients.On("Count", mock.Anything).Return(int64(0), errors.New("connection refused"))
	items.On("Count", mock.Anything).Return(int64(40), nil)
	services.On("Count", mock.Anything).Return(int64(8), nil)
	orders.On("Count", mock.Anything).Return(int64(25), nil)
	summaries.On("ClientSummaries", mock.Anything).Return(nil, errors.New("connection refused"))
	orders.On("Recent", mock.Anything, recentOrderCount).Return([]models.Order{}, nil)

	overview, err := svc.Overview(context.Background())

	// Failed fetches contribute zero values instead of failing the screen
	require.NoError(t, err)
	require.Equal(t, int64(0), overview.TotalClients)
	require.Equal(t, float64(0), overview.TotalRevenue)
	require.Equal(t, int64(40), overview.TotalItems)
	require.Equal(t, int64(25), overview.TotalOrders)
}
