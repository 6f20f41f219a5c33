package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/KodingMaster1/Molant/internal/models"
)

// PaymentRepository provides access to payment data
type PaymentRepository interface {
	ListAll(ctx context.Context) ([]models.Payment, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]models.Payment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	Create(ctx context.Context, payment *models.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateBalance(ctx context.Context, id uuid.UUID, balance float64) error
}

// paymentRepository implements PaymentRepository
type paymentRepository struct {
	db         *gorm.DB
	readOnlyDB *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB, readOnlyDB *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db, readOnlyDB: readOnlyDB}
}

// ListAll lists every payment with its client and order joined, newest first
func (r *paymentRepository) ListAll(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.readOnlyDB.WithContext(ctx).
		Preload("Client").
		Preload("Order").
		Order("payment_date DESC").
		Find(&payments).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}
	return payments, nil
}

// ListByOrder lists the payments recorded against one order, oldest first
func (r *paymentRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.readOnlyDB.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("payment_date").
		Find(&payments).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments by order")
	}
	return payments, nil
}

// GetByID gets a payment by ID
func (r *paymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	err := r.readOnlyDB.WithContext(ctx).
		Preload("Client").
		Preload("Order").
		First(&payment, "id = ?", id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get payment by ID")
	}
	return &payment, nil
}

// Create creates a new payment
func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Omit("Client", "Order").Create(payment).Error
}

// Delete removes a payment by ID
func (r *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Payment{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete payment")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateBalance sets only the stored balance of a payment
func (r *paymentRepository) UpdateBalance(ctx context.Context, id uuid.UUID, balance float64) error {
	result := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("id = ?", id).
		Update("balance", balance)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update payment balance")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
