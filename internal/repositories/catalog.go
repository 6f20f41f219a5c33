package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/KodingMaster1/Molant/internal/models"
)

// ItemRepository provides access to inventory item data
type ItemRepository interface {
	ListAll(ctx context.Context) ([]models.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	Create(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// itemRepository implements ItemRepository
type itemRepository struct {
	db         *gorm.DB
	readOnlyDB *gorm.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *gorm.DB, readOnlyDB *gorm.DB) ItemRepository {
	return &itemRepository{db: db, readOnlyDB: readOnlyDB}
}

// ListAll lists every item with its vendor joined, ordered by name
func (r *itemRepository) ListAll(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := r.readOnlyDB.WithContext(ctx).Preload("Vendor").Order("name").Find(&items).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}
	return items, nil
}

// GetByID gets an item by ID
func (r *itemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	var item models.Item
	err := r.readOnlyDB.WithContext(ctx).Preload("Vendor").First(&item, "id = ?", id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get item by ID")
	}
	return &item, nil
}

// Create creates a new item
func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Omit("Vendor").Create(item).Error
}

// Update saves all fields of an existing item
func (r *itemRepository) Update(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Omit("Vendor").Save(item).Error
}

// Delete removes an item by ID
func (r *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Item{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete item")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count counts all items
func (r *itemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.readOnlyDB.WithContext(ctx).Model(&models.Item{}).Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count items")
	}
	return count, nil
}

// ServiceRepository provides access to the service catalog
type ServiceRepository interface {
	ListAll(ctx context.Context) ([]models.Service, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Service, error)
	Create(ctx context.Context, service *models.Service) error
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// serviceRepository implements ServiceRepository
type serviceRepository struct {
	db         *gorm.DB
	readOnlyDB *gorm.DB
}

// NewServiceRepository creates a new service catalog repository
func NewServiceRepository(db *gorm.DB, readOnlyDB *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db, readOnlyDB: readOnlyDB}
}

// ListAll lists every service with its vendor joined, ordered by name
func (r *serviceRepository) ListAll(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := r.readOnlyDB.WithContext(ctx).Preload("Vendor").Order("name").Find(&services).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}
	return services, nil
}

// GetByID gets a service by ID
func (r *serviceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	var service models.Service
	err := r.readOnlyDB.WithContext(ctx).Preload("Vendor").First(&service, "id = ?", id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get service by ID")
	}
	return &service, nil
}

// Create creates a new service
func (r *serviceRepository) Create(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Omit("Vendor").Create(service).Error
}

// Update saves all fields of an existing service
func (r *serviceRepository) Update(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Omit("Vendor").Save(service).Error
}

// Delete removes a service by ID
func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Service{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete service")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count counts all services
func (r *serviceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.readOnlyDB.WithContext(ctx).Model(&models.Service{}).Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count services")
	}
	return count, nil
}
