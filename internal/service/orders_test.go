package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KodingMaster1/Molant/internal/models"
	"github.com/KodingMaster1/Molant/internal/repositories"
)

func TestOrderListResolvesClientNameWithFallback(t *testing.T) {
	repo := new(MockOrderRepository)
	repo.On("ListAll", mock.Anything).Return([]models.Order{
		{
			ID:     uuid.New(),
			Type:   models.OrderTypeItem,
			Status: models.OrderStatusPending,
			Client: &models.Client{Name: "Acme Traders"},
		},
		{
			ID:     uuid.New(),
			Type:   models.OrderTypeService,
			Status: models.OrderStatusCompleted,
		},
	}, nil)

	svc := NewOrderService(repo, new(MockSummaryRepository), nil)
	result, err := svc.List(context.Background(), OrderListOptions{})

	require.NoError(t, err)
	require.Len(t, result.Orders, 2)
	require.Equal(t, "Acme Traders", result.Orders[0].ClientName)
	require.Equal(t, UnknownClient, result.Orders[1].ClientName)
	require.Equal(t, 1, result.Stats.Pending)
	require.Equal(t, 1, result.Stats.Completed)
}

func TestOrderSearchMatchesOrderID(t *testing.T) {
	target := uuid.New()

	repo := new(MockOrderRepository)
	repo.On("ListAll", mock.Anything).Return([]models.Order{
		{ID: target, Type: models.OrderTypeItem, Client: &models.Client{Name: "Acme Traders"}},
		{ID: uuid.New(), Type: models.OrderTypeItem, Client: &models.Client{Name: "Bolt Supplies"}},
	}, nil)

	svc := NewOrderService(repo, new(MockSummaryRepository), nil)
	result, err := svc.List(context.Background(), OrderListOptions{Search: target.String()})

	require.NoError(t, err)
	require.Len(t, result.Orders, 1)
	require.Equal(t, target, result.Orders[0].ID)
}

func TestOrderCreateComputesTotals(t *testing.T) {
	repo := new(MockOrderRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil)

	itemID := uuid.New()
	order := &models.Order{
		ClientID: uuid.New(),
		Type:     models.OrderTypeItem,
		Details: []models.OrderDetail{
			{ItemID: &itemID, Quantity: 3, UnitPrice: 250},
			{ItemID: &itemID, Quantity: 1, UnitPrice: 100},
		},
	}

	svc := NewOrderService(repo, new(MockSummaryRepository), nil)
	require.NoError(t, svc.Create(context.Background(), order))

	require.Equal(t, float64(750), order.Details[0].Subtotal)
	require.Equal(t, float64(100), order.Details[1].Subtotal)
	require.Equal(t, float64(850), order.TotalAmount)
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.Equal(t, order.ID, order.Details[0].OrderID)
	repo.AssertExpectations(t)
}

func TestOrderUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc := NewOrderService(new(MockOrderRepository), new(MockSummaryRepository), nil)

	err := svc.UpdateStatus(context.Background(), uuid.New(), "shipped")
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestOrderApprovalRejectedOverCreditLimit(t *testing.T) {
	orderID := uuid.New()
	clientID := uuid.New()

	repo := new(MockOrderRepository)
	repo.On("GetByID", mock.Anything, orderID).Return(&models.Order{
		ID:          orderID,
		ClientID:    clientID,
		TotalAmount: 600,
		Status:      models.OrderStatusPending,
	}, nil)

	summaries := new(MockSummaryRepository)
	summaries.On("ClientSummaryByID", mock.Anything, clientID).Return(&models.ClientSummary{
		ID:                 clientID,
		CreditLimit:        1000,
		OutstandingBalance: 500,
	}, nil)

	svc := NewOrderService(repo, summaries, nil)
	err := svc.UpdateStatus(context.Background(), orderID, models.OrderStatusApproved)

	require.ErrorIs(t, err, ErrCreditLimitExceeded)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderApprovalAllowedWithinCreditLimit(t *testing.T) {
	orderID := uuid.New()
	clientID := uuid.New()

	repo := new(MockOrderRepository)
	repo.On("GetByID", mock.Anything, orderID).Return(&models.Order{
		ID:          orderID,
		ClientID:    clientID,
		TotalAmount: 400,
		Status:      models.OrderStatusPending,
	}, nil)
	repo.On("UpdateStatus", mock.Anything, orderID, models.OrderStatusApproved).Return(nil)

	summaries := new(MockSummaryRepository)
	summaries.On("ClientSummaryByID", mock.Anything, clientID).Return(&models.ClientSummary{
		ID:                 clientID,
		CreditLimit:        1000,
		OutstandingBalance: 500,
	}, nil)

	svc := NewOrderService(repo, summaries, nil)
	require.NoError(t, svc.UpdateStatus(context.Background(), orderID, models.OrderStatusApproved))
	repo.AssertExpectations(t)
}

func TestOrderApprovalWithoutSummaryRowStillApplies(t *testing.T) {
	orderID := uuid.New()
	clientID := uuid.New()

	repo := new(MockOrderRepository)
	repo.On("GetByID", mock.Anything, orderID).Return(&models.Order{
		ID:       orderID,
		ClientID: clientID,
	}, nil)
	repo.On("UpdateStatus", mock.Anything, orderID, models.OrderStatusApproved).Return(nil)

	summaries := new(MockSummaryRepository)
	summaries.On("ClientSummaryByID", mock.Anything, clientID).Return(nil, repositories.ErrNotFound)

	svc := NewOrderService(repo, summaries, nil)
	require.NoError(t, svc.UpdateStatus(context.Background(), orderID, models.OrderStatusApproved))
	repo.AssertExpectations(t)
}

func TestOrderCreateValidation(t *testing.T) {
	svc := NewOrderService(new(MockOrderRepository), new(MockSummaryRepository), nil)

	err := svc.Create(context.Background(), &models.Order{Type: models.OrderTypeItem})
	require.True(t, IsValidationError(err))

	err = svc.Create(context.Background(), &models.Order{
		ClientID: uuid.New(),
		Type:     "subscription",
	})
	require.True(t, IsValidationError(err))

	err = svc.Create(context.Background(), &models.Order{
		ClientID: uuid.New(),
		Type:     models.OrderTypeItem,
	})
	require.True(t, IsValidationError(err))
}
