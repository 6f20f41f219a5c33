package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/KodingMaster1/Molant/internal/models"
)

// VendorRepository provides access to vendor data
type VendorRepository interface {
	ListAll(ctx context.Context) ([]models.Vendor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error)
	Create(ctx context.Context, vendor *models.Vendor) error
	Update(ctx context.Context, vendor *models.Vendor) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// vendorRepository implements VendorRepository
type vendorRepository struct {
	db         *gorm.DB
	readOnlyDB *gorm.DB
}

// NewVendorRepository creates a new vendor repository
func NewVendorRepository(db *gorm.DB, readOnlyDB *gorm.DB) VendorRepository {
	return &vendorRepository{db: db, readOnlyDB: readOnlyDB}
}

// ListAll lists every vendor ordered by name
func (r *vendorRepository) ListAll(ctx context.Context) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.readOnlyDB.WithContext(ctx).Order("name").Find(&vendors).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}
	return vendors, nil
}

// GetByID gets a vendor by ID
func (r *vendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.readOnlyDB.WithContext(ctx).First(&vendor, "id = ?", id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get vendor by ID")
	}
	return &vendor, nil
}

// Create creates a new vendor
func (r *vendorRepository) Create(ctx context.Context, vendor *models.Vendor) error {
	return r.db.WithContext(ctx).Create(vendor).Error
}

// Update saves all fields of an existing vendor
func (r *vendorRepository) Update(ctx context.Context, vendor *models.Vendor) error {
	return r.db.WithContext(ctx).Save(vendor).Error
}

// Delete removes a vendor by ID
func (r *vendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Vendor{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete vendor")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
