package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/KodingMaster1/Molant/internal/listing"
	"github.com/KodingMaster1/Molant/internal/models"
	"github.com/KodingMaster1/Molant/internal/repositories"
)

// DocumentListOptions narrows the document list
type DocumentListOptions struct {
	Type   string // "all" or one of the document types
	Status string // "all" or one of the document statuses
	Search string
}

// DocumentStats are the header statistics for the document list. Overdue
// means the due date has passed and the document is not paid.
type DocumentStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Delivered int `json:"delivered"`
	Paid      int `json:"paid"`
	Overdue   int `json:"overdue"`
}

// DocumentRow is one document list row with its display client name resolved
type DocumentRow struct {
	models.Document
	ClientName string `json:"client_name"`
	Overdue    bool   `json:"overdue"`
}

// DocumentList is the document list response
type DocumentList struct {
	Documents []DocumentRow `json:"documents"`
	Stats     DocumentStats `json:"stats"`
}

// DocumentService implements workflow document business logic
type DocumentService struct {
	repo    repositories.DocumentRepository
	orders  repositories.OrderRepository
	clients repositories.ClientRepository
	index   DocumentIndex
}

// NewDocumentService creates a new document service
func NewDocumentService(repo repositories.DocumentRepository, orders repositories.OrderRepository, clients repositories.ClientRepository, index DocumentIndex) *DocumentService {
	return &DocumentService{repo: repo, orders: orders, clients: clients, index: index}
}

// documentPrefixes maps a document type to its number prefix
var documentPrefixes = map[models.DocumentType]string{
	models.DocumentTypeProforma:         "PRO",
	models.DocumentTypeDeliveryNote:     "DN",
	models.DocumentTypePaymentStatement: "PS",
	models.DocumentTypeReceipt:          "RCT",
	models.DocumentTypeJobCard:          "JC",
	models.DocumentTypeDiagnosis:        "DIA",
}

// List returns the filtered documents together with full-set statistics
func (s *DocumentService) List(ctx context.Context, opts DocumentListOptions) (*DocumentList, error) {
	docs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	stats := DocumentStats{Total: len(docs)}
	rows := make([]DocumentRow, 0, len(docs))
	for _, d := range docs {
		switch d.Status {
		case models.DocumentStatusPending:
			stats.Pending++
		case models.DocumentStatusApproved:
			stats.Approved++
		case models.DocumentStatusDelivered:
			stats.Delivered++
		case models.DocumentStatusPaid:
			stats.Paid++
		}

		overdue := documentOverdue(d, now)
		if overdue {
			stats.Overdue++
		}

		rows = append(rows, DocumentRow{
			Document:   d,
			ClientName: documentClientName(d),
			Overdue:    overdue,
		})
	}

	filtered := listing.Apply(rows,
		func(r DocumentRow) bool {
			if opts.Type == "" || opts.Type == listing.FilterAll {
				return true
			}
			return string(r.Type) == opts.Type
		},
		func(r DocumentRow) bool {
			if opts.Status == "" || opts.Status == listing.FilterAll {
				return true
			}
			return string(r.Status) == opts.Status
		},
	)
	filtered = listing.Search(filtered, opts.Search, func(r DocumentRow) []string {
		return []string{r.DocumentNumber, r.ClientName}
	})

	return &DocumentList{Documents: filtered, Stats: stats}, nil
}

// Get returns one document by ID
func (s *DocumentService) Get(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates and stores a new document. The document number is
// assigned server-side as PREFIX/YEAR/NNNN where NNNN continues the
// per-type sequence. The document is indexed for search after storing.
func (s *DocumentService) Create(ctx context.Context, doc *models.Document) error {
	if !models.ValidDocumentType(doc.Type) {
		return NewValidationError("unknown document type %q", doc.Type)
	}
	if doc.OrderID == uuid.Nil {
		return NewValidationError("document order is required")
	}

	order, err := s.orders.GetByID(ctx, doc.OrderID)
	if err != nil {
		return err
	}
	if doc.ClientID == uuid.Nil {
		doc.ClientID = order.ClientID
	}

	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if doc.Status == "" {
		doc.Status = models.DocumentStatusPending
	}

	number, err := s.nextDocumentNumber(ctx, doc.Type)
	if err != nil {
		return err
	}
	doc.DocumentNumber = number

	if err := s.repo.Create(ctx, doc); err != nil {
		return err
	}

	s.reindex(ctx, doc)
	return nil
}

// UpdateStatus validates the target status, applies it and refreshes the
// search index entry
func (s *DocumentService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.DocumentStatus) error {
	if !models.ValidDocumentStatus(status) {
		return ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn().Err(err).Str("document_id", id.String()).Msg("failed to reload document for reindexing")
		return nil
	}

	s.reindex(ctx, doc)
	return nil
}

// Delete removes a document by ID
func (s *DocumentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Search queries the document search index
func (s *DocumentService) Search(ctx context.Context, term string) ([]map[string]interface{}, error) {
	if s.index == nil {
		return nil, NewValidationError("document search is not available")
	}
	return s.index.SearchDocuments(ctx, term)
}

// nextDocumentNumber continues the per-type sequence for the current year
func (s *DocumentService) nextDocumentNumber(ctx context.Context, docType models.DocumentType) (string, error) {
	count, err := s.repo.CountByType(ctx, docType)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%d/%04d", documentPrefixes[docType], time.Now().Year(), count+1), nil
}

// reindex pushes the document into the search index. Index failures are
// logged, never surfaced; the database row is the source of truth.
func (s *DocumentService) reindex(ctx context.Context, doc *models.Document) {
	if s.index == nil {
		return
	}

	clientName := documentClientName(*doc)
	if doc.Client == nil {
		if client, err := s.clients.GetByID(ctx, doc.ClientID); err == nil {
			clientName = client.Name
		}
	}

	if err := s.index.IndexDocument(ctx, doc, clientName); err != nil {
		log.Warn().Err(err).Str("document_id", doc.ID.String()).Msg("failed to index document")
	}
}

func documentOverdue(d models.Document, now time.Time) bool {
	return d.DueDate != nil && d.DueDate.Before(now) && d.Status != models.DocumentStatusPaid
}

func documentClientName(d models.Document) string {
	if d.Client != nil && d.Client.Name != "" {
		return d.Client.Name
	}
	return UnknownClient
}
