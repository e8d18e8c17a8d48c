package port

import (
	"context"

	"github.com/google/uuid"

	"petvault/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// PetRepository defines the contract for pet persistence.
type PetRepository interface {
	// Create inserts the pet and its owner membership atomically.
	Create(ctx context.Context, pet *domain.Pet) error
	GetByID(ctx context.Context, petID uuid.UUID) (*domain.Pet, error)
	ListForUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.PetWithRole, int, error)
	SetEmergencyToken(ctx context.Context, petID uuid.UUID, token *string) error
	GetByEmergencyToken(ctx context.Context, token string) (*domain.Pet, error)
}

// PetMemberRepository defines the contract for pet membership persistence.
type PetMemberRepository interface {
	Upsert(ctx context.Context, member *domain.PetMember) error
	Get(ctx context.Context, petID, userID uuid.UUID) (*domain.PetMember, error)
	ListByPet(ctx context.Context, petID uuid.UUID) ([]domain.PetMember, error)
	Delete(ctx context.Context, petID, userID uuid.UUID) error
}
