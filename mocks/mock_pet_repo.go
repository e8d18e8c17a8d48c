package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"petvault/internal/domain"
)

// MockPetRepo is a mock implementation of port.PetRepository.
type MockPetRepo struct {
	mock.Mock
}

func (m *MockPetRepo) Create(ctx context.Context, pet *domain.Pet) error {
	args := m.Called(ctx, pet)
	return args.Error(0)
}

func (m *MockPetRepo) GetByID(ctx context.Context, petID uuid.UUID) (*domain.Pet, error) {
	args := m.Called(ctx, petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pet), args.Error(1)
}

func (m *MockPetRepo) ListForUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.PetWithRole, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.PetWithRole), args.Int(1), args.Error(2)
}

func (m *MockPetRepo) SetEmergencyToken(ctx context.Context, petID uuid.UUID, token *string) error {
	args := m.Called(ctx, petID, token)
	return args.Error(0)
}

func (m *MockPetRepo) GetByEmergencyToken(ctx context.Context, token string) (*domain.Pet, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pet), args.Error(1)
}
