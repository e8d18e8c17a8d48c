package mocks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"petvault/internal/domain"
	"petvault/internal/port"
)

// MockExtractionRepo is a mock implementation of port.ExtractionRepository.
type MockExtractionRepo struct {
	mock.Mock
}

func (m *MockExtractionRepo) CreateWithItems(ctx context.Context, extraction *domain.Extraction, items []domain.ExtractionItem) error {
	args := m.Called(ctx, extraction, items)
	return args.Error(0)
}

func (m *MockExtractionRepo) GetByID(ctx context.Context, extractionID uuid.UUID) (*domain.Extraction, error) {
	args := m.Called(ctx, extractionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Extraction), args.Error(1)
}

func (m *MockExtractionRepo) GetByUploadID(ctx context.Context, uploadID uuid.UUID) (*domain.Extraction, error) {
	args := m.Called(ctx, uploadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Extraction), args.Error(1)
}

func (m *MockExtractionRepo) ListItems(ctx context.Context, extractionID uuid.UUID) ([]domain.ExtractionItem, error) {
	args := m.Called(ctx, extractionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExtractionItem), args.Error(1)
}

func (m *MockExtractionRepo) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.ExtractionItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionItem), args.Error(1)
}

func (m *MockExtractionRepo) ModifyItem(ctx context.Context, itemID uuid.UUID, data json.RawMessage) error {
	args := m.Called(ctx, itemID, data)
	return args.Error(0)
}

func (m *MockExtractionRepo) RejectItem(ctx context.Context, itemID uuid.UUID) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockExtractionRepo) ApproveItem(ctx context.Context, input port.ApproveItemInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockExtractionRepo) UpdateStatus(ctx context.Context, extractionID uuid.UUID, status domain.ExtractionStatus, reviewedBy *uuid.UUID, reviewedAt *time.Time) error {
	args := m.Called(ctx, extractionID, status, reviewedBy, reviewedAt)
	return args.Error(0)
}
