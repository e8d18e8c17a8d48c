package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"petvault/internal/domain"
)

// MockAuditService is a mock implementation of service.AuditService.
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) List(ctx context.Context, petID, userID uuid.UUID, filter domain.AuditFilter, offset, limit int) ([]domain.AuditLogEntry, int, error) {
	args := m.Called(ctx, petID, userID, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.AuditLogEntry), args.Int(1), args.Error(2)
}

func (m *MockAuditService) ExportCSV(ctx context.Context, petID, userID uuid.UUID, filter domain.AuditFilter, w io.Writer) error {
	args := m.Called(ctx, petID, userID, filter, w)
	return args.Error(0)
}
