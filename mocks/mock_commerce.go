package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockStockUpdater is a mock implementation of port.StockUpdater.
type MockStockUpdater struct {
	mock.Mock
}

func (m *MockStockUpdater) UpdateStock(ctx context.Context, productID string, quantity float64) error {
	args := m.Called(ctx, productID, quantity)
	return args.Error(0)
}
