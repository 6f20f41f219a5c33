package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/KodingMaster1/Molant/internal/models"
)

// TechnicianRepository provides access to technician data
type TechnicianRepository interface {
	ListAll(ctx context.Context) ([]models.Technician, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Technician, error)
	Create(ctx context.Context, tech *models.Technician) error
	Update(ctx context.Context, tech *models.Technician) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
}

// technicianRepository implements TechnicianRepository
type technicianRepository struct {
	db         *gorm.DB
	readOnlyDB *gorm.DB
}

// NewTechnicianRepository creates a new technician repository
func NewTechnicianRepository(db *gorm.DB, readOnlyDB *gorm.DB) TechnicianRepository {
	return &technicianRepository{db: db, readOnlyDB: readOnlyDB}
}

// ListAll lists every technician ordered by name
func (r *technicianRepository) ListAll(ctx context.Context) ([]models.Technician, error) {
	var techs []models.Technician
	err := r.readOnlyDB.WithContext(ctx).Order("name").Find(&techs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list technicians")
	}
	return techs, nil
}

// GetByID gets a technician by ID
func (r *technicianRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Technician, error) {
	var tech models.Technician
	err := r.readOnlyDB.WithContext(ctx).First(&tech, "id = ?", id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get technician by ID")
	}
	return &tech, nil
}

// Create creates a new technician
func (r *technicianRepository) Create(ctx context.Context, tech *models.Technician) error {
	return r.db.WithContext(ctx).Create(tech).Error
}

// Update saves all fields of an existing technician
func (r *technicianRepository) Update(ctx context.Context, tech *models.Technician) error {
	return r.db.WithContext(ctx).Save(tech).Error
}

// Delete removes a technician by ID
func (r *technicianRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Technician{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete technician")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetAvailability updates only the availability flag
func (r *technicianRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.Technician{}).
		Where("id = ?", id).
		Update("is_available", available)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update technician availability")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
