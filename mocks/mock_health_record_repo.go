package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"petvault/internal/domain"
)

// MockHealthRecordRepo is a mock implementation of port.HealthRecordRepository.
type MockHealthRecordRepo struct {
	mock.Mock
}

func (m *MockHealthRecordRepo) Create(ctx context.Context, record *domain.HealthRecord, audit *domain.AuditLogEntry) error {
	args := m.Called(ctx, record, audit)
	return args.Error(0)
}

func (m *MockHealthRecordRepo) GetByID(ctx context.Context, petID uuid.UUID, recordType domain.RecordType, recordID uuid.UUID) (*domain.HealthRecord, error) {
	args := m.Called(ctx, petID, recordType, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HealthRecord), args.Error(1)
}

func (m *MockHealthRecordRepo) ListByPet(ctx context.Context, petID uuid.UUID, recordType domain.RecordType) ([]domain.HealthRecord, error) {
	args := m.Called(ctx, petID, recordType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HealthRecord), args.Error(1)
}

func (m *MockHealthRecordRepo) Delete(ctx context.Context, petID uuid.UUID, recordType domain.RecordType, recordID uuid.UUID, audit *domain.AuditLogEntry) error {
	args := m.Called(ctx, petID, recordType, recordID, audit)
	return args.Error(0)
}
