package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"petvault/internal/domain"
)

// MockPetMemberRepo is a mock implementation of port.PetMemberRepository.
type MockPetMemberRepo struct {
	mock.Mock
}

func (m *MockPetMemberRepo) Upsert(ctx context.Context, member *domain.PetMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockPetMemberRepo) Get(ctx context.Context, petID, userID uuid.UUID) (*domain.PetMember, error) {
	args := m.Called(ctx, petID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PetMember), args.Error(1)
}

func (m *MockPetMemberRepo) ListByPet(ctx context.Context, petID uuid.UUID) ([]domain.PetMember, error) {
	args := m.Called(ctx, petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PetMember), args.Error(1)
}

func (m *MockPetMemberRepo) Delete(ctx context.Context, petID, userID uuid.UUID) error {
	args := m.Called(ctx, petID, userID)
	return args.Error(0)
}
