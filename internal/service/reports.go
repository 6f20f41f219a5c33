package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/KodingMaster1/Molant/internal/cache"
	"github.com/KodingMaster1/Molant/internal/listing"
	"github.com/KodingMaster1/Molant/internal/models"
	"github.com/KodingMaster1/Molant/internal/repositories"
)

// reportCacheTTL bounds how stale a served period report can be
const reportCacheTTL = time.Minute

// RevenueMetrics summarizes money movement within the report period.
// Outstanding is revenue minus received over the windowed sets, not a
// stored balance.
type RevenueMetrics struct {
	OrderRevenue   float64 `json:"order_revenue"`
	TotalCollected float64 `json:"total_collected"`
	Outstanding    float64 `json:"outstanding"`
}

// OrderMetrics summarizes orders within the report period, including the
// item/service order mix
type OrderMetrics struct {
	Total         int     `json:"total"`
	Pending       int     `json:"pending"`
	Completed     int     `json:"completed"`
	ItemOrders    int     `json:"item_orders"`
	ServiceOrders int     `json:"service_orders"`
	AvgOrderValue float64 `json:"avg_order_value"`
}

// ClientMetrics summarizes client activity within the report period
type ClientMetrics struct {
	Total  int `json:"total"`
	New    int `json:"new"`
	Active int `json:"active"`
}

// InventoryMetrics is a point-in-time snapshot, not period-windowed
type InventoryMetrics struct {
	TotalItems    int     `json:"total_items"`
	LowStock      int     `json:"low_stock"`
	OutOfStock    int     `json:"out_of_stock"`
	StockValue    float64 `json:"stock_value"`
	TotalServices int     `json:"total_services"`
	AvgServiceFee float64 `json:"avg_service_fee"`
}

// DocumentMetrics summarizes documents within the report period
type DocumentMetrics struct {
	Total   int `json:"total"`
	Overdue int `json:"overdue"`
}

// Report is the aggregated report response for one period
type Report struct {
	Period      listing.Period   `json:"period"`
	PeriodStart time.Time        `json:"period_start"`
	GeneratedAt time.Time        `json:"generated_at"`
	Revenue     RevenueMetrics   `json:"revenue"`
	Orders      OrderMetrics     `json:"orders"`
	Clients     ClientMetrics    `json:"clients"`
	Inventory   InventoryMetrics `json:"inventory"`
	Documents   DocumentMetrics  `json:"documents"`
}

// ReportAck acknowledges a report generation request. Rendering the
// printable artifact happens elsewhere; this endpoint only confirms.
type ReportAck struct {
	Period      listing.Period `json:"period"`
	Message     string         `json:"message"`
	RequestedAt time.Time      `json:"requested_at"`
}

// ReportsService aggregates the reports screen
type ReportsService struct {
	clients   repositories.ClientRepository
	items     repositories.ItemRepository
	services  repositories.ServiceRepository
	orders    repositories.OrderRepository
	documents repositories.DocumentRepository
	payments  repositories.PaymentRepository
	summaries repositories.SummaryRepository
	cache     Cache
}

// NewReportsService creates a new reports service
func NewReportsService(
	clients repositories.ClientRepository,
	items repositories.ItemRepository,
	services repositories.ServiceRepository,
	orders repositories.OrderRepository,
	documents repositories.DocumentRepository,
	payments repositories.PaymentRepository,
	summaries repositories.SummaryRepository,
	c Cache,
) *ReportsService {
	return &ReportsService{
		clients:   clients,
		items:     items,
		services:  services,
		orders:    orders,
		documents: documents,
		payments:  payments,
		summaries: summaries,
		cache:     c,
	}
}

// Report builds the aggregate for one period, served from cache when
// fresh. The six entity sets are fetched concurrently with per-fetch
// isolation: a failed fetch logs a warning and its section reports zeros.
func (s *ReportsService) Report(ctx context.Context, period listing.Period) (*Report, error) {
	if !listing.ValidPeriod(period) {
		return nil, ErrInvalidPeriod
	}

	if s.cache != nil {
		var cached Report
		if err := s.cache.Get(ctx, cache.ReportCacheKey(string(period)), &cached); err == nil {
			return &cached, nil
		}
	}

	now := time.Now()
	report := &Report{
		Period:      period,
		PeriodStart: listing.PeriodStart(period, now),
		GeneratedAt: now,
	}

	var (
		clients   []models.Client
		items     []models.Item
		services  []models.Service
		orders    []models.Order
		documents []models.Document
		payments  []models.Payment
	)

	g, gctx := errgroup.WithContext(ctx)
	fetch := func(name string, load func(context.Context) error) {
		g.Go(func() error {
			if err := load(gctx); err != nil {
				log.Warn().Err(err).Str("fetch", name).Msg("report fetch failed")
			}
			return nil
		})
	}

	fetch("clients", func(ctx context.Context) (err error) {
		clients, err = s.clients.ListAll(ctx)
		return
	})
	fetch("items", func(ctx context.Context) (err error) {
		items, err = s.items.ListAll(ctx)
		return
	})
	fetch("services", func(ctx context.Context) (err error) {
		services, err = s.services.ListAll(ctx)
		return
	})
	fetch("orders", func(ctx context.Context) (err error) {
		orders, err = s.orders.ListAll(ctx)
		return
	})
	fetch("documents", func(ctx context.Context) (err error) {
		documents, err = s.documents.ListAll(ctx)
		return
	})
	fetch("payments", func(ctx context.Context) (err error) {
		payments, err = s.payments.ListAll(ctx)
		return
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	inPeriodOrders := listing.InWindow(orders, period, now, func(o models.Order) time.Time {
		return o.CreatedAt
	})
	inPeriodPayments := listing.InWindow(payments, period, now, func(p models.Payment) time.Time {
		return p.PaymentDate
	})
	inPeriodDocuments := listing.InWindow(documents, period, now, func(d models.Document) time.Time {
		return d.CreatedAt
	})

	report.Revenue = revenueMetrics(inPeriodOrders, inPeriodPayments)
	report.Orders = orderMetrics(inPeriodOrders)
	report.Clients = clientMetrics(clients, inPeriodOrders, period, now)
	report.Inventory = inventoryMetrics(items, services)
	report.Documents = documentMetrics(inPeriodDocuments, now)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.ReportCacheKey(string(period)), report, reportCacheTTL); err != nil {
			log.Warn().Err(err).Str("period", string(period)).Msg("failed to cache report")
		}
	}

	return report, nil
}

// VendorPerformance serves the vendor_performance view rows
func (s *ReportsService) VendorPerformance(ctx context.Context) ([]models.VendorPerformance, error) {
	return s.summaries.VendorPerformance(ctx)
}

// InventoryStatus serves the inventory_status view rows
func (s *ReportsService) InventoryStatus(ctx context.Context) ([]models.InventoryStatus, error) {
	return s.summaries.InventoryStatus(ctx)
}

// Generate acknowledges a report generation request for a valid period
func (s *ReportsService) Generate(ctx context.Context, period listing.Period) (*ReportAck, error) {
	if !listing.ValidPeriod(period) {
		return nil, ErrInvalidPeriod
	}
	return &ReportAck{
		Period:      period,
		Message:     "report generation requested",
		RequestedAt: time.Now(),
	}, nil
}

func revenueMetrics(orders []models.Order, payments []models.Payment) RevenueMetrics {
	var m RevenueMetrics
	for _, o := range orders {
		m.OrderRevenue += o.TotalAmount
	}
	for _, p := range payments {
		m.TotalCollected += p.AmountPaid
	}
	m.Outstanding = m.OrderRevenue - m.TotalCollected
	return m
}

func orderMetrics(orders []models.Order) OrderMetrics {
	m := OrderMetrics{Total: len(orders)}
	var total float64
	for _, o := range orders {
		switch o.Status {
		case models.OrderStatusPending:
			m.Pending++
		case models.OrderStatusCompleted:
			m.Completed++
		}
		switch o.Type {
		case models.OrderTypeItem:
			m.ItemOrders++
		case models.OrderTypeService:
			m.ServiceOrders++
		}
		total += o.TotalAmount
	}
	if m.Total > 0 {
		m.AvgOrderValue = total / float64(m.Total)
	}
	return m
}

func clientMetrics(clients []models.Client, inPeriodOrders []models.Order, period listing.Period, now time.Time) ClientMetrics {
	m := ClientMetrics{Total: len(clients)}

	start := listing.PeriodStart(period, now)
	for _, c := range clients {
		if listing.InPeriod(c.CreatedAt, start, now) {
			m.New++
		}
	}

	active := make(map[uuid.UUID]struct{})
	for _, o := range inPeriodOrders {
		active[o.ClientID] = struct{}{}
	}
	m.Active = len(active)

	return m
}

func inventoryMetrics(items []models.Item, services []models.Service) InventoryMetrics {
	m := InventoryMetrics{TotalItems: len(items), TotalServices: len(services)}
	for _, item := range items {
		switch listing.StockStatus(item.StockQty) {
		case listing.StockLowStock:
			m.LowStock++
		case listing.StockOutOfStock:
			m.OutOfStock++
		}
		m.StockValue += item.BuyPrice * float64(item.StockQty)
	}

	var totalCost float64
	for _, svc := range services {
		totalCost += svc.Cost
	}
	if len(services) > 0 {
		m.AvgServiceFee = totalCost / float64(len(services))
	}
	return m
}

func documentMetrics(documents []models.Document, now time.Time) DocumentMetrics {
	m := DocumentMetrics{Total: len(documents)}
	for _, d := range documents {
		if documentOverdue(d, now) {
			m.Overdue++
		}
	}
	return m
}
