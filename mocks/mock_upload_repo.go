package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"petvault/internal/domain"
)

// MockUploadRepo is a mock implementation of port.UploadRepository.
type MockUploadRepo struct {
	mock.Mock
}

func (m *MockUploadRepo) Create(ctx context.Context, upload *domain.Upload) error {
	args := m.Called(ctx, upload)
	return args.Error(0)
}

func (m *MockUploadRepo) GetByID(ctx context.Context, petID uuid.UUID, variant domain.ImportVariant, uploadID uuid.UUID) (*domain.Upload, error) {
	args := m.Called(ctx, petID, variant, uploadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Upload), args.Error(1)
}

func (m *MockUploadRepo) ListByPet(ctx context.Context, petID uuid.UUID, variant domain.ImportVariant, offset, limit int) ([]domain.Upload, int, error) {
	args := m.Called(ctx, petID, variant, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Upload), args.Int(1), args.Error(2)
}

func (m *MockUploadRepo) Delete(ctx context.Context, petID uuid.UUID, variant domain.ImportVariant, uploadID uuid.UUID) error {
	args := m.Called(ctx, petID, variant, uploadID)
	return args.Error(0)
}

func (m *MockUploadRepo) Claim(ctx context.Context, uploadID uuid.UUID, status domain.UploadStatus) (bool, error) {
	args := m.Called(ctx, uploadID, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockUploadRepo) SetStatus(ctx context.Context, uploadID uuid.UUID, status domain.UploadStatus) error {
	args := m.Called(ctx, uploadID, status)
	return args.Error(0)
}

func (m *MockUploadRepo) RecordClassification(ctx context.Context, uploadID uuid.UUID, detectedType string, confidence int, explanation string) error {
	args := m.Called(ctx, uploadID, detectedType, confidence, explanation)
	return args.Error(0)
}

func (m *MockUploadRepo) MarkFailed(ctx context.Context, uploadID uuid.UUID, errMsg string) error {
	args := m.Called(ctx, uploadID, errMsg)
	return args.Error(0)
}
