package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"petvault/internal/domain"
	"petvault/internal/service"
)

// MockReviewService is a mock implementation of service.ReviewService.
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) GetExtraction(ctx context.Context, petID, userID uuid.UUID, variant domain.ImportVariant, uploadID uuid.UUID) (*domain.Extraction, error) {
	args := m.Called(ctx, petID, userID, variant, uploadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Extraction), args.Error(1)
}

func (m *MockReviewService) UpdateItem(ctx context.Context, input service.UpdateItemInput) (*domain.ExtractionItem, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionItem), args.Error(1)
}

func (m *MockReviewService) Approve(ctx context.Context, input service.ReviewInput) (*service.ApproveResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ApproveResult), args.Error(1)
}

func (m *MockReviewService) Reject(ctx context.Context, input service.ReviewInput) (*service.RejectResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RejectResult), args.Error(1)
}
