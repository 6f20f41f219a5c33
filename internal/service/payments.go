package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/KodingMaster1/Molant/internal/cache"
	"github.com/KodingMaster1/Molant/internal/listing"
	"github.com/KodingMaster1/Molant/internal/models"
	"github.com/KodingMaster1/Molant/internal/repositories"
)

// PaymentListOptions narrows the payment list
type PaymentListOptions struct {
	Window listing.DateWindow // "all", "today", "week" or "month"
	Search string
}

// PaymentStats are the header statistics for the payment list
type PaymentStats struct {
	Total            int     `json:"total"`
	TotalCollected   float64 `json:"total_collected"`
	TotalOutstanding float64 `json:"total_outstanding"`
}

// PaymentRow is one payment list row with its display client name resolved
type PaymentRow struct {
	models.Payment
	ClientName string `json:"client_name"`
}

// PaymentList is the payment list response
type PaymentList struct {
	Payments []PaymentRow `json:"payments"`
	Stats    PaymentStats `json:"stats"`
}

// PaymentService implements payment business logic
type PaymentService struct {
	repo   repositories.PaymentRepository
	orders repositories.OrderRepository
	cache  Cache
}

// NewPaymentService creates a new payment service
func NewPaymentService(repo repositories.PaymentRepository, orders repositories.OrderRepository, c Cache) *PaymentService {
	return &PaymentService{repo: repo, orders: orders, cache: c}
}

// List returns the filtered payments together with full-set statistics
func (s *PaymentService) List(ctx context.Context, opts PaymentListOptions) (*PaymentList, error) {
	payments, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := PaymentStats{Total: len(payments)}
	for _, p := range payments {
		stats.TotalCollected += p.AmountPaid
		stats.TotalOutstanding += p.Balance
	}

	rows := make([]PaymentRow, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, PaymentRow{Payment: p, ClientName: paymentClientName(p)})
	}

	now := time.Now()
	filtered := listing.Apply(rows, func(r PaymentRow) bool {
		return listing.MatchesWindow(r.PaymentDate, opts.Window, now)
	})
	filtered = listing.Search(filtered, opts.Search, func(r PaymentRow) []string {
		return []string{r.ClientName}
	})

	return &PaymentList{Payments: filtered, Stats: stats}, nil
}

// Get returns one payment by ID
func (s *PaymentService) Get(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates and stores a new payment. The stored balance is the
// order total minus all payments against the order, this one included.
func (s *PaymentService) Create(ctx context.Context, payment *models.Payment) error {
	if payment.OrderID == uuid.Nil {
		return NewValidationError("payment order is required")
	}
	if payment.AmountPaid <= 0 {
		return NewValidationError("payment amount must be positive")
	}

	order, err := s.orders.GetByID(ctx, payment.OrderID)
	if err != nil {
		return err
	}
	if payment.ClientID == uuid.Nil {
		payment.ClientID = order.ClientID
	}
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = time.Now()
	}
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}

	existing, err := s.repo.ListByOrder(ctx, payment.OrderID)
	if err != nil {
		return err
	}

	var paid float64
	for _, p := range existing {
		paid += p.AmountPaid
	}
	payment.Balance = order.TotalAmount - paid - payment.AmountPaid

	if err := s.repo.Create(ctx, payment); err != nil {
		return err
	}

	s.invalidateDashboard(ctx)
	return nil
}

// Delete removes a payment by ID
func (s *PaymentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateDashboard(ctx)
	return nil
}

// ReconcileBalances recomputes the stored balance of every payment from
// the order total and the cumulative amounts paid, in payment date order.
// Run periodically by the worker; balances drift when payments are
// deleted or order totals change.
func (s *PaymentService) ReconcileBalances(ctx context.Context) (int, error) {
	payments, err := s.repo.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	byOrder := make(map[uuid.UUID][]models.Payment)
	for _, p := range payments {
		byOrder[p.OrderID] = append(byOrder[p.OrderID], p)
	}

	corrected := 0
	for orderID := range byOrder {
		order, err := s.orders.GetByID(ctx, orderID)
		if err != nil {
			log.Warn().Err(err).Str("order_id", orderID.String()).Msg("skipping balance reconciliation for order")
			continue
		}

		sequence, err := s.repo.ListByOrder(ctx, orderID)
		if err != nil {
			log.Warn().Err(err).Str("order_id", orderID.String()).Msg("failed to load payment sequence")
			continue
		}

		running := order.TotalAmount
		for _, p := range sequence {
			running -= p.AmountPaid
			if p.Balance == running {
				continue
			}
			if err := s.repo.UpdateBalance(ctx, p.ID, running); err != nil {
				log.Warn().Err(err).Str("payment_id", p.ID.String()).Msg("failed to correct payment balance")
				continue
			}
			corrected++
		}
	}

	if corrected > 0 {
		log.Info().Int("corrected", corrected).Msg("payment balances reconciled")
		s.invalidateDashboard(ctx)
	}
	return corrected, nil
}

func (s *PaymentService) invalidateDashboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.DashboardCacheKey()); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate dashboard cache")
	}
}

func paymentClientName(p models.Payment) string {
	if p.Client != nil && p.Client.Name != "" {
		return p.Client.Name
	}
	return UnknownClient
}
