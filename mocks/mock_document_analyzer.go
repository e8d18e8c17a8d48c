package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"petvault/internal/port"
)

// MockDocumentAnalyzer is a mock implementation of port.DocumentAnalyzer.
type MockDocumentAnalyzer struct {
	mock.Mock
}

func (m *MockDocumentAnalyzer) Classify(ctx context.Context, input port.AnalyzeInput) (*port.Classification, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.Classification), args.Error(1)
}

func (m *MockDocumentAnalyzer) Extract(ctx context.Context, input port.AnalyzeInput) (*port.ExtractionResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.ExtractionResult), args.Error(1)
}
