package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KodingMaster1/Molant/internal/models"
)

type MockDocumentIndex struct {
	mock.Mock
}

func (m *MockDocumentIndex) IndexDocument(ctx context.Context, doc *models.Document, clientName string) error {
	args := m.Called(ctx, doc, clientName)
	return args.Error(0)
}

func (m *MockDocumentIndex) SearchDocuments(ctx context.Context, term string) ([]map[string]interface{}, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]interface{}), args.Error(1)
}

func TestDocumentCreateAssignsSequencedNumber(t *testing.T) {
	orderID := uuid.New()
	clientID := uuid.New()

	orders := new(MockOrderRepository)
	orders.On("GetByID", mock.Anything, orderID).Return(&models.Order{
		ID:       orderID,
		ClientID: clientID,
		Client:   &models.Client{ID: clientID, Name: "Acme Traders"},
	}, nil)

	repo := new(MockDocumentRepository)
	repo.On("CountByType", mock.Anything, models.DocumentTypeProforma).Return(int64(7), nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Document")).Return(nil)

	index := new(MockDocumentIndex)
	index.On("IndexDocument", mock.Anything, mock.AnythingOfType("*models.Document"), "Acme Traders").Return(nil)

	clients := new(MockClientRepository)
	clients.On("GetByID", mock.Anything, clientID).Return(&models.Client{ID: clientID, Name: "Acme Traders"}, nil)

	svc := NewDocumentService(repo, orders, clients, index)
	doc := &models.Document{
		OrderID: orderID,
		Type:    models.DocumentTypeProforma,
	}

	require.NoError(t, svc.Create(context.Background(), doc))
	require.Equal(t, fmt.Sprintf("PRO/%d/0008", time.Now().Year()), doc.DocumentNumber)
	require.Equal(t, clientID, doc.ClientID)
	require.Equal(t, models.DocumentStatusPending, doc.Status)
	repo.AssertExpectations(t)
	index.AssertExpectations(t)
}

func TestDocumentCreateSurvivesIndexFailure(t *testing.T) {
	orderID := uuid.New()

	orders := new(MockOrderRepository)
	orders.On("GetByID", mock.Anything, orderID).Return(&models.Order{
		ID:       orderID,
		ClientID: uuid.New(),
	}, nil)

	repo := new(MockDocumentRepository)
	repo.On("CountByType", mock.Anything, models.DocumentTypeReceipt).Return(int64(0), nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Document")).Return(nil)

	index := new(MockDocumentIndex)
	index.On("IndexDocument", mock.Anything, mock.Anything, mock.Anything).
		Return(fmt.Errorf("index unavailable"))

	clients := new(MockClientRepository)
	clients.On("GetByID", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("unreachable"))

	svc := NewDocumentService(repo, orders, clients, index)
	doc := &models.Document{OrderID: orderID, Type: models.DocumentTypeReceipt}

	// The database row is the source of truth; index failures only log
	require.NoError(t, svc.Create(context.Background(), doc))
}

func TestDocumentListCountsOverdue(t *testing.T) {
	pastDue := time.Now().Add(-48 * time.Hour)
	futureDue := time.Now().Add(48 * time.Hour)

	repo := new(MockDocumentRepository)
	repo.On("ListAll", mock.Anything).Return([]models.Document{
		{ID: uuid.New(), Type: models.DocumentTypeProforma, Status: models.DocumentStatusPending, DueDate: &pastDue},
		{ID: uuid.New(), Type: models.DocumentTypeReceipt, Status: models.DocumentStatusPaid, DueDate: &pastDue},
		{ID: uuid.New(), Type: models.DocumentTypeProforma, Status: models.DocumentStatusApproved, DueDate: &futureDue},
		{ID: uuid.New(), Type: models.DocumentTypeJobCard, Status: models.DocumentStatusPending},
	}, nil)

	svc := NewDocumentService(repo, new(MockOrderRepository), new(MockClientRepository), nil)
	result, err := svc.List(context.Background(), DocumentListOptions{})

	require.NoError(t, err)
	require.Equal(t, 4, result.Stats.Total)

	// Past due and not paid; a paid document is never overdue and a
	// missing due date never triggers
	require.Equal(t, 1, result.Stats.Overdue)
}

func TestDocumentUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc := NewDocumentService(new(MockDocumentRepository), new(MockOrderRepository), new(MockClientRepository), nil)

	err := svc.UpdateStatus(context.Background(), uuid.New(), "archived")
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDocumentCreateRejectsUnknownType(t *testing.T) {
	svc := NewDocumentService(new(MockDocumentRepository), new(MockOrderRepository), new(MockClientRepository), nil)

	err := svc.Create(context.Background(), &models.Document{
		OrderID: uuid.New(),
		Type:    "invoice",
	})
	require.True(t, IsValidationError(err))
}
