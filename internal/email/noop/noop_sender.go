package noop

import (
	"context"

	"go.uber.org/zap"

	"petvault/internal/email"
	"petvault/internal/port"
)

type noopSender struct {
	frontendURL string
}

// NewNoopSender creates an EmailSender that only logs what it would have sent.
func NewNoopSender(frontendURL string) port.EmailSender {
	return &noopSender{frontendURL: frontendURL}
}

func (s *noopSender) SendPetSharedEmail(_ context.Context, msg port.PetSharedEmail) error {
	rendered := email.RenderPetShared(s.frontendURL, msg)
	zap.L().Info("noop email",
		zap.String("to", msg.ToEmail),
		zap.String("subject", rendered.Subject),
		zap.String("link", email.PetURL(s.frontendURL, msg.PetID)))
	return nil
}
