package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"omsbridge/internal/domain"
	"omsbridge/internal/validator"
)

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Ingest(ctx context.Context, sub *domain.InvoiceSubmission) (*validator.Result, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*validator.Result), args.Error(1)
}

// MockOrderService is a mock implementation of service.OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Forward(ctx context.Context, order *domain.CompletedOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
