package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/KodingMaster1/Molant/internal/cache"
	"github.com/KodingMaster1/Molant/internal/listing"
	"github.com/KodingMaster1/Molant/internal/models"
	"github.com/KodingMaster1/Molant/internal/repositories"
)

// UnknownClient is the display fallback when an order, document or payment
// has no client joined
const UnknownClient = "Unknown Client"

// OrderListOptions narrows the order list
type OrderListOptions struct {
	Status string // "all" or one of the order statuses
	Type   string // "all", "item" or "service"
	Search string
}

// OrderStats are the header statistics for the order list
type OrderStats struct {
	Total      int     `json:"total"`
	Pending    int     `json:"pending"`
	Approved   int     `json:"approved"`
	Delivered  int     `json:"delivered"`
	Completed  int     `json:"completed"`
	TotalValue float64 `json:"total_value"`
}

// OrderRow is one order list row with its display client name resolved
type OrderRow struct {
	models.Order
	ClientName string `json:"client_name"`
}

// OrderList is the order list response
type OrderList struct {
	Orders []OrderRow `json:"orders"`
	Stats  OrderStats `json:"stats"`
}

// OrderService implements order business logic
type OrderService struct {
	repo      repositories.OrderRepository
	summaries repositories.SummaryRepository
	cache     Cache
}

// NewOrderService creates a new order service
func NewOrderService(repo repositories.OrderRepository, summaries repositories.SummaryRepository, c Cache) *OrderService {
	return &OrderService{repo: repo, summaries: summaries, cache: c}
}

// List returns the filtered orders together with full-set statistics
func (s *OrderService) List(ctx context.Context, opts OrderListOptions) (*OrderList, error) {
	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := OrderStats{Total: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case models.OrderStatusPending:
			stats.Pending++
		case models.OrderStatusApproved:
			stats.Approved++
		case models.OrderStatusDelivered:
			stats.Delivered++
		case models.OrderStatusCompleted:
			stats.Completed++
		}
		stats.TotalValue += o.TotalAmount
	}

	rows := make([]OrderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, OrderRow{Order: o, ClientName: orderClientName(o)})
	}

	filtered := listing.Apply(rows,
		func(r OrderRow) bool {
			if opts.Status == "" || opts.Status == listing.FilterAll {
				return true
			}
			return string(r.Status) == opts.Status
		},
		func(r OrderRow) bool {
			if opts.Type == "" || opts.Type == listing.FilterAll {
				return true
			}
			return string(r.Type) == opts.Type
		},
	)
	filtered = listing.Search(filtered, opts.Search, func(r OrderRow) []string {
		return []string{r.ClientName, r.ID.String()}
	})

	return &OrderList{Orders: filtered, Stats: stats}, nil
}

// Recent returns the most recent orders with their client names resolved
func (s *OrderService) Recent(ctx context.Context, limit int) ([]OrderRow, error) {
	orders, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}

	rows := make([]OrderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, OrderRow{Order: o, ClientName: orderClientName(o)})
	}
	return rows, nil
}

// Get returns one order with its line details
func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates and stores a new order with its line details. Line
// subtotals and the order total are recomputed server-side.
func (s *OrderService) Create(ctx context.Context, order *models.Order) error {
	if order.ClientID == uuid.Nil {
		return NewValidationError("order client is required")
	}
	if order.Type != models.OrderTypeItem && order.Type != models.OrderTypeService {
		return NewValidationError("unknown order type %q", order.Type)
	}
	if len(order.Details) == 0 {
		return NewValidationError("order requires at least one line")
	}

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}

	var total float64
	for i := range order.Details {
		d := &order.Details[i]
		if d.Quantity <= 0 {
			return NewValidationError("line quantity must be positive")
		}
		if d.UnitPrice < 0 {
			return NewValidationError("line unit price cannot be negative")
		}
		if d.ID == uuid.Nil {
			d.ID = uuid.New()
		}
		d.OrderID = order.ID
		d.Subtotal = float64(d.Quantity) * d.UnitPrice
		total += d.Subtotal
	}
	order.TotalAmount = total

	if err := s.repo.Create(ctx, order); err != nil {
		return err
	}

	s.invalidateDashboard(ctx)
	return nil
}

// UpdateStatus validates the target status and applies it. Approving an
// order checks the client's credit headroom against the client summary;
// the remaining transitions are advisory.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	if !models.ValidOrderStatus(status) {
		return ErrInvalidStatus
	}

	if status == models.OrderStatusApproved {
		order, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		summary, err := s.summaries.ClientSummaryByID(ctx, order.ClientID)
		if err != nil && err != repositories.ErrNotFound {
			return err
		}
		if summary != nil && summary.CreditLimit > 0 {
			if summary.OutstandingBalance+order.TotalAmount > summary.CreditLimit {
				return ErrCreditLimitExceeded
			}
		}
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.invalidateDashboard(ctx)
	return nil
}

// Delete removes an order by ID
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateDashboard(ctx)
	return nil
}

func (s *OrderService) invalidateDashboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.DashboardCacheKey()); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate dashboard cache")
	}
}

func orderClientName(o models.Order) string {
	if o.Client != nil && o.Client.Name != "" {
		return o.Client.Name
	}
	return UnknownClient
}
