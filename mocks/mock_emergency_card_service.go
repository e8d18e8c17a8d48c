package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"petvault/internal/domain"
)

// MockEmergencyCardService is a mock implementation of service.EmergencyCardService.
type MockEmergencyCardService struct {
	mock.Mock
}

func (m *MockEmergencyCardService) Get(ctx context.Context, token string) (*domain.EmergencyCard, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmergencyCard), args.Error(1)
}
