package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/KodingMaster1/Molant/internal/models"
)

// ClientRepository provides access to client data
type ClientRepository interface {
	ListAll(ctx context.Context) ([]models.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error)
	Create(ctx context.Context, client *models.Client) error
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// clientRepository implements ClientRepository
type clientRepository struct {
	db         *gorm.DB // Write database
	readOnlyDB *gorm.DB // Read-only database
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB, readOnlyDB *gorm.DB) ClientRepository {
	return &clientRepository{db: db, readOnlyDB: readOnlyDB}
}

// ListAll lists every client ordered by name
func (r *clientRepository) ListAll(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	err := r.readOnlyDB.WithContext(ctx).Order("name").Find(&clients).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}
	return clients, nil
}

// GetByID gets a client by ID
func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	var client models.Client
	err := r.readOnlyDB.WithContext(ctx).First(&client, "id = ?", id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get client by ID")
	}
	return &client, nil
}

// Create creates a new client
func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

// Update saves all fields of an existing client
func (r *clientRepository) Update(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

// Delete removes a client by ID
func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Client{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete client")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count counts all clients
func (r *clientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.readOnlyDB.WithContext(ctx).Model(&models.Client{}).Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count clients")
	}
	return count, nil
}
