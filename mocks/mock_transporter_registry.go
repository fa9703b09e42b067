package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTransporterRegistry is a mock implementation of port.TransporterRegistry.
type MockTransporterRegistry struct {
	mock.Mock
}

func (m *MockTransporterRegistry) Resolve(ctx context.Context, transporterID string) (bool, error) {
	args := m.Called(ctx, transporterID)
	return args.Bool(0), args.Error(1)
}
