package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/KodingMaster1/Molant/internal/models"
)

// SummaryRepository reads the precomputed database views
type SummaryRepository interface {
	ClientSummaries(ctx context.Context) ([]models.ClientSummary, error)
	ClientSummaryByID(ctx context.Context, clientID uuid.UUID) (*models.ClientSummary, error)
	VendorPerformance(ctx context.Context) ([]models.VendorPerformance, error)
	InventoryStatus(ctx context.Context) ([]models.InventoryStatus, error)
}

// summaryRepository implements SummaryRepository
type summaryRepository struct {
	readOnlyDB *gorm.DB
}

// NewSummaryRepository creates a new summary view repository
func NewSummaryRepository(readOnlyDB *gorm.DB) SummaryRepository {
	return &summaryRepository{readOnlyDB: readOnlyDB}
}

// ClientSummaries reads every row of the client_summary view
func (r *summaryRepository) ClientSummaries(ctx context.Context) ([]models.ClientSummary, error) {
	var rows []models.ClientSummary
	err := r.readOnlyDB.WithContext(ctx).Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to read client summary view")
	}
	return rows, nil
}

// ClientSummaryByID reads the client_summary row for one client
func (r *summaryRepository) ClientSummaryByID(ctx context.Context, clientID uuid.UUID) (*models.ClientSummary, error) {
	var row models.ClientSummary
	err := r.readOnlyDB.WithContext(ctx).First(&row, "id = ?", clientID).Error
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to read client summary by ID")
	}
	return &row, nil
}

// VendorPerformance reads every row of the vendor_performance view
func (r *summaryRepository) VendorPerformance(ctx context.Context) ([]models.VendorPerformance, error) {
	var rows []models.VendorPerformance
	err := r.readOnlyDB.WithContext(ctx).Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to read vendor performance view")
	}
	return rows, nil
}

// InventoryStatus reads every row of the inventory_status view
func (r *summaryRepository) InventoryStatus(ctx context.Context) ([]models.InventoryStatus, error) {
	var rows []models.InventoryStatus
	err := r.readOnlyDB.WithContext(ctx).Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to read inventory status view")
	}
	return rows, nil
}
