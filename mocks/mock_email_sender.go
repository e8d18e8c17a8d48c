package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"petvault/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendPetSharedEmail(ctx context.Context, msg port.PetSharedEmail) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
