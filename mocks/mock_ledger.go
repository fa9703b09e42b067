package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"omsbridge/internal/domain"
)

// MockLedgerSink is a mock implementation of port.LedgerSink.
type MockLedgerSink struct {
	mock.Mock
}

func (m *MockLedgerSink) Submit(ctx context.Context, sub *domain.InvoiceSubmission) (string, error) {
	args := m.Called(ctx, sub)
	return args.String(0), args.Error(1)
}

// MockOrderForwarder is a mock implementation of port.OrderForwarder.
type MockOrderForwarder struct {
	mock.Mock
}

func (m *MockOrderForwarder) ForwardOrder(ctx context.Context, order *domain.CompletedOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// MockInventorySource is a mock implementation of port.InventorySource.
type MockInventorySource struct {
	mock.Mock
}

func (m *MockInventorySource) FetchStockLevels(ctx context.Context) ([]domain.StockLevel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockLevel), args.Error(1)
}
