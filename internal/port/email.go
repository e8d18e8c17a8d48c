package port

import "context"

// PetSharedEmail is the content of a sharing notification.
type PetSharedEmail struct {
	ToEmail      string
	ToName       string
	PetName      string
	Role         string
	SharedByName string
	PetID        string
}

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendPetSharedEmail(ctx context.Context, msg PetSharedEmail) error
}
