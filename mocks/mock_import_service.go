package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"petvault/internal/domain"
	"petvault/internal/service"
)

// MockImportService is a mock implementation of service.ImportService.
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) Upload(ctx context.Context, input service.UploadInput) (*service.ProcessResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProcessResult), args.Error(1)
}

func (m *MockImportService) List(ctx context.Context, petID, userID uuid.UUID, variant domain.ImportVariant, offset, limit int) ([]domain.Upload, int, error) {
	args := m.Called(ctx, petID, userID, variant, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Upload), args.Int(1), args.Error(2)
}

func (m *MockImportService) Get(ctx context.Context, petID, userID uuid.UUID, variant domain.ImportVariant, uploadID uuid.UUID) (*domain.Upload, error) {
	args := m.Called(ctx, petID, userID, variant, uploadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Upload), args.Error(1)
}

func (m *MockImportService) Delete(ctx context.Context, petID, userID uuid.UUID, variant domain.ImportVariant, uploadID uuid.UUID) error {
	args := m.Called(ctx, petID, userID, variant, uploadID)
	return args.Error(0)
}

func (m *MockImportService) DownloadURL(ctx context.Context, petID, userID uuid.UUID, variant domain.ImportVariant, uploadID uuid.UUID) (string, error) {
	args := m.Called(ctx, petID, userID, variant, uploadID)
	return args.String(0), args.Error(1)
}

func (m *MockImportService) Process(ctx context.Context, petID, userID uuid.UUID, variant domain.ImportVariant, uploadID uuid.UUID) (*service.ProcessResult, error) {
	args := m.Called(ctx, petID, userID, variant, uploadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProcessResult), args.Error(1)
}
