package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"petvault/internal/domain"
	"petvault/internal/service"
)

// MockPetService is a mock implementation of service.PetService.
type MockPetService struct {
	mock.Mock
}

func (m *MockPetService) Create(ctx context.Context, input service.CreatePetInput) (*domain.Pet, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pet), args.Error(1)
}

func (m *MockPetService) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.PetWithRole, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.PetWithRole), args.Int(1), args.Error(2)
}

func (m *MockPetService) Get(ctx context.Context, petID, userID uuid.UUID) (*domain.PetWithRole, error) {
	args := m.Called(ctx, petID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PetWithRole), args.Error(1)
}

func (m *MockPetService) ListMembers(ctx context.Context, petID, userID uuid.UUID) ([]domain.PetMember, error) {
	args := m.Called(ctx, petID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PetMember), args.Error(1)
}

func (m *MockPetService) Share(ctx context.Context, input service.SharePetInput) (*domain.PetMember, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PetMember), args.Error(1)
}

func (m *MockPetService) RemoveMember(ctx context.Context, petID, callerID, memberID uuid.UUID) error {
	args := m.Called(ctx, petID, callerID, memberID)
	return args.Error(0)
}

func (m *MockPetService) EnableEmergencyCard(ctx context.Context, petID, callerID uuid.UUID) (string, error) {
	args := m.Called(ctx, petID, callerID)
	return args.String(0), args.Error(1)
}

func (m *MockPetService) DisableEmergencyCard(ctx context.Context, petID, callerID uuid.UUID) error {
	args := m.Called(ctx, petID, callerID)
	return args.Error(0)
}
