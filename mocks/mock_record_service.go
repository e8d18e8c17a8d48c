package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"petvault/internal/domain"
	"petvault/internal/service"
)

// MockRecordService is a mock implementation of service.RecordService.
type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) List(ctx context.Context, petID, userID uuid.UUID, recordType domain.RecordType) ([]domain.HealthRecord, error) {
	args := m.Called(ctx, petID, userID, recordType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HealthRecord), args.Error(1)
}

func (m *MockRecordService) Create(ctx context.Context, input service.CreateRecordInput) (*domain.HealthRecord, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HealthRecord), args.Error(1)
}

func (m *MockRecordService) Delete(ctx context.Context, input service.DeleteRecordInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockRecordService) ExportWorkbook(ctx context.Context, petID, userID uuid.UUID) (*service.ExportFile, error) {
	args := m.Called(ctx, petID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportFile), args.Error(1)
}
