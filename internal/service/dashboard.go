package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/KodingMaster1/Molant/internal/cache"
	"github.com/KodingMaster1/Molant/internal/metrics"
	"github.com/KodingMaster1/Molant/internal/repositories"
)

// dashboardCacheTTL bounds how stale a served overview can be
const dashboardCacheTTL = time.Minute

// recentOrderCount is the number of orders shown on the overview
const recentOrderCount = 5

// DashboardOverview is the aggregated dashboard response. Outstanding
// balance and revenue come from the client summary view, never from raw
// payment rows.
type DashboardOverview struct {
	TotalClients       int64      `json:"total_clients"`
	TotalItems         int64      `json:"total_items"`
	TotalServices      int64      `json:"total_services"`
	TotalOrders        int64      `json:"total_orders"`
	TotalRevenue       float64    `json:"total_revenue"`
	OutstandingBalance float64    `json:"outstanding_balance"`
	RecentOrders       []OrderRow `json:"recent_orders"`
	GeneratedAt        time.Time  `json:"generated_at"`
}

// DashboardService aggregates the overview screen
type DashboardService struct {
	clients   repositories.ClientRepository
	items     repositories.ItemRepository
	services  repositories.ServiceRepository
	orders    repositories.OrderRepository
	summaries repositories.SummaryRepository
	cache     Cache
	metrics   *metrics.Metrics
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	clients repositories.ClientRepository,
	items repositories.ItemRepository,
	services repositories.ServiceRepository,
	orders repositories.OrderRepository,
	summaries repositories.SummaryRepository,
	c Cache,
	m *metrics.Metrics,
) *DashboardService {
	return &DashboardService{
		clients:   clients,
		items:     items,
		services:  services,
		orders:    orders,
		summaries: summaries,
		cache:     c,
		metrics:   m,
	}
}

// Overview returns the dashboard aggregate, served from cache when fresh
func (s *DashboardService) Overview(ctx context.Context) (*DashboardOverview, error) {
	if s.cache != nil {
		var cached DashboardOverview
		if err := s.cache.Get(ctx, cache.DashboardCacheKey(), &cached); err == nil {
			if s.metrics != nil {
				s.metrics.IncrementCounter("dashboard.cache_hit")
			}
			return &cached, nil
		}
	}

	overview, err := s.build(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.DashboardCacheKey(), overview, dashboardCacheTTL); err != nil {
			log.Warn().Err(err).Msg("failed to cache dashboard overview")
		}
	}

	return overview, nil
}

// Refresh recomputes the overview and replaces the cached copy. Run by
// the worker so interactive requests mostly hit the cache.
func (s *DashboardService) Refresh(ctx context.Context) error {
	overview, err := s.build(ctx)
	if err != nil {
		return err
	}

	if s.cache == nil {
		return nil
	}
	return s.cache.Set(ctx, cache.DashboardCacheKey(), overview, dashboardCacheTTL)
}

// build fans the sub-fetches out concurrently. Each fetch is isolated: a
// failure logs a warning and contributes its zero value so the rest of
// the overview still renders.
func (s *DashboardService) build(ctx context.Context) (*DashboardOverview, error) {
	start := time.Now()
	overview := &DashboardOverview{GeneratedAt: start}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.clients.Count(gctx)
		if err != nil {
			log.Warn().Err(err).Msg("dashboard: client count failed")
			return nil
		}
		overview.TotalClients = count
		return nil
	})

	g.Go(func() error {
		count, err := s.items.Count(gctx)
		if err != nil {
			log.Warn().Err(err).Msg("dashboard: item count failed")
			return nil
		}
		overview.TotalItems = count
		return nil
	})

	g.Go(func() error {
		count, err := s.services.Count(gctx)
		if err != nil {
			log.Warn().Err(err).Msg("dashboard: service count failed")
			return nil
		}
		overview.TotalServices = count
		return nil
	})

	g.Go(func() error {
		count, err := s.orders.Count(gctx)
		if err != nil {
			log.Warn().Err(err).Msg("dashboard: order count failed")
			return nil
		}
		overview.TotalOrders = count
		return nil
	})

	g.Go(func() error {
		summaries, err := s.summaries.ClientSummaries(gctx)
		if err != nil {
			log.Warn().Err(err).Msg("dashboard: client summaries failed")
			return nil
		}
		for _, row := range summaries {
			overview.TotalRevenue += row.TotalRevenue
			overview.OutstandingBalance += row.OutstandingBalance
		}
		return nil
	})

	g.Go(func() error {
		orders, err := s.orders.Recent(gctx, recentOrderCount)
		if err != nil {
			log.Warn().Err(err).Msg("dashboard: recent orders failed")
			return nil
		}
		rows := make([]OrderRow, 0, len(orders))
		for _, o := range orders {
			rows = append(rows, OrderRow{Order: o, ClientName: orderClientName(o)})
		}
		overview.RecentOrders = rows
		return nil
	})

	// Sub-fetches swallow their own errors, so Wait only observes
	// context cancellation
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordTimer("dashboard.build", time.Since(start))
	}
	return overview, nil
}
