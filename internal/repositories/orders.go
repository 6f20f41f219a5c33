package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/KodingMaster1/Molant/internal/models"
)

// OrderRepository provides access to order data
type OrderRepository interface {
	ListAll(ctx context.Context) ([]models.Order, error)
	Recent(ctx context.Context, limit int) ([]models.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
	Count(ctx context.Context) (int64, error)
}

// orderRepository implements OrderRepository
type orderRepository struct {
	db         *gorm.DB
	readOnlyDB *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB, readOnlyDB *gorm.DB) OrderRepository {
	return &orderRepository{db: db, readOnlyDB: readOnlyDB}
}

// ListAll lists every order with its client joined, newest first
func (r *orderRepository) ListAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.readOnlyDB.WithContext(ctx).
		Preload("Client").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}
	return orders, nil
}

// Recent returns the most recently created orders with their client joined
func (r *orderRepository) Recent(ctx context.Context, limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.readOnlyDB.WithContext(ctx).
		Preload("Client").
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent orders")
	}
	return orders, nil
}

// GetByID gets an order with its client and line details joined
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.readOnlyDB.WithContext(ctx).
		Preload("Client").
		Preload("Details").
		First(&order, "id = ?", id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get order by ID")
	}
	return &order, nil
}

// Create creates a new order together with its line details
func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Omit("Client").Create(order).Error
}

// Delete removes an order by ID
func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Order{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStatus sets only the order status
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count counts all orders
func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.readOnlyDB.WithContext(ctx).Model(&models.Order{}).Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}
	return count, nil
}
