package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/KodingMaster1/Molant/internal/models"
)

// DocumentRepository provides access to workflow document data
type DocumentRepository interface {
	ListAll(ctx context.Context) ([]models.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error)
	Create(ctx context.Context, doc *models.Document) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.DocumentStatus) error
	CountByType(ctx context.Context, docType models.DocumentType) (int64, error)
}

// documentRepository implements DocumentRepository
type documentRepository struct {
	db         *gorm.DB
	readOnlyDB *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB, readOnlyDB *gorm.DB) DocumentRepository {
	return &documentRepository{db: db, readOnlyDB: readOnlyDB}
}

// ListAll lists every document with its client and order joined, newest first
func (r *documentRepository) ListAll(ctx context.Context) ([]models.Document, error) {
	var docs []models.Document
	err := r.readOnlyDB.WithContext(ctx).
		Preload("Client").
		Preload("Order").
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list documents")
	}
	return docs, nil
}

// GetByID gets a document with its client and order joined
func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	err := r.readOnlyDB.WithContext(ctx).
		Preload("Client").
		Preload("Order").
		First(&doc, "id = ?", id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get document by ID")
	}
	return &doc, nil
}

// Create creates a new document
func (r *documentRepository) Create(ctx context.Context, doc *models.Document) error {
	return r.db.WithContext(ctx).Omit("Client", "Order").Create(doc).Error
}

// Delete removes a document by ID
func (r *documentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Document{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete document")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStatus sets only the document status
func (r *documentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.DocumentStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Document{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update document status")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByType counts documents of one type, used for number sequencing
func (r *documentRepository) CountByType(ctx context.Context, docType models.DocumentType) (int64, error) {
	var count int64
	err := r.readOnlyDB.WithContext(ctx).
		Model(&models.Document{}).
		Where("type = ?", docType).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count documents by type")
	}
	return count, nil
}
