package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"petvault/internal/domain"
	"petvault/internal/port"
)

// CreatePetInput is the DTO for creating a pet.
type CreatePetInput struct {
	OwnerID     uuid.UUID `json:"-"`
	Name        string    `json:"name" binding:"required"`
	Species     string    `json:"species" binding:"required"`
	Breed       *string   `json:"breed"`
	DateOfBirth *string   `json:"date_of_birth"`
}

// SharePetInput is the DTO for granting another user access to a pet.
type SharePetInput struct {
	PetID    uuid.UUID      `json:"-"`
	CallerID uuid.UUID      `json:"-"`
	Email    string         `json:"email" binding:"required,email"`
	Role     domain.PetRole `json:"role" binding:"required"`
}

// PetService defines pet and membership management.
type PetService interface {
	Create(ctx context.Context, input CreatePetInput) (*domain.Pet, error)
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.PetWithRole, int, error)
	Get(ctx context.Context, petID, userID uuid.UUID) (*domain.PetWithRole, error)
	ListMembers(ctx context.Context, petID, userID uuid.UUID) ([]domain.PetMember, error)
	Share(ctx context.Context, input SharePetInput) (*domain.PetMember, error)
	RemoveMember(ctx context.Context, petID, callerID, memberID uuid.UUID) error
	EnableEmergencyCard(ctx context.Context, petID, callerID uuid.UUID) (string, error)
	DisableEmergencyCard(ctx context.Context, petID, callerID uuid.UUID) error
}

type petService struct {
	petRepo  port.PetRepository
	userRepo port.UserRepository
	guard    petGuard
	mailer   port.EmailSender
}

// NewPetService creates a new PetService implementation.
func NewPetService(
	petRepo port.PetRepository,
	memberRepo port.PetMemberRepository,
	userRepo port.UserRepository,
	mailer port.EmailSender,
) PetService {
	return &petService{
		petRepo:  petRepo,
		userRepo: userRepo,
		guard:    petGuard{members: memberRepo},
		mailer:   mailer,
	}
}

func (s *petService) Create(ctx context.Context, input CreatePetInput) (*domain.Pet, error) {
	pet := &domain.Pet{
		OwnerID: input.OwnerID,
		Name:    strings.TrimSpace(input.Name),
		Species: strings.TrimSpace(input.Species),
		Breed:   input.Breed,
	}
	if pet.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.DateOfBirth != nil && *input.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", *input.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("%w: date_of_birth must be YYYY-MM-DD", domain.ErrValidation)
		}
		pet.DateOfBirth = &dob
	}

	if err := s.petRepo.Create(ctx, pet); err != nil {
		return nil, fmt.Errorf("creating pet: %w", err)
	}
	return pet, nil
}

func (s *petService) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.PetWithRole, int, error) {
	return s.petRepo.ListForUser(ctx, userID, offset, limit)
}

func (s *petService) Get(ctx context.Context, petID, userID uuid.UUID) (*domain.PetWithRole, error) {
	member, err := s.guard.require(ctx, petID, userID, domain.PetRoleViewer)
	if err != nil {
		return nil, err
	}
	pet, err := s.petRepo.GetByID(ctx, petID)
	if err != nil {
		return nil, err
	}
	if member.Role != domain.PetRoleOwner {
		pet.EmergencyToken = nil
	}
	return &domain.PetWithRole{Pet: *pet, Role: member.Role}, nil
}

func (s *petService) ListMembers(ctx context.Context, petID, userID uuid.UUID) ([]domain.PetMember, error) {
	if _, err := s.guard.require(ctx, petID, userID, domain.PetRoleViewer); err != nil {
		return nil, err
	}
	return s.guard.members.ListByPet(ctx, petID)
}

func (s *petService) Share(ctx context.Context, input SharePetInput) (*domain.PetMember, error) {
	if _, err := s.guard.require(ctx, input.PetID, input.CallerID, domain.PetRoleOwner); err != nil {
		return nil, err
	}
	if input.Role != domain.PetRoleEditor && input.Role != domain.PetRoleViewer {
		return nil, domain.ErrInvalidPetRole
	}

	target, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if target.ID == input.CallerID {
		return nil, domain.ErrSelfMemberRemove
	}

	callerID := input.CallerID
	member := &domain.PetMember{
		PetID:     input.PetID,
		UserID:    target.ID,
		Role:      input.Role,
		GrantedBy: &callerID,
	}
	if err := s.guard.members.Upsert(ctx, member); err != nil {
		return nil, err
	}

	s.notifyShared(ctx, input, target)
	return member, nil
}

// notifyShared sends the sharing email. Delivery failures are logged only.
func (s *petService) notifyShared(ctx context.Context, input SharePetInput, target *domain.User) {
	if s.mailer == nil {
		return
	}
	pet, err := s.petRepo.GetByID(ctx, input.PetID)
	if err != nil {
		zap.L().Warn("petService.Share: loading pet for email", zap.Error(err))
		return
	}
	sharedBy := "A PetVault user"
	if caller, err := s.userRepo.GetByID(ctx, input.CallerID); err == nil {
		sharedBy = caller.FullName
	}

	err = s.mailer.SendPetSharedEmail(ctx, port.PetSharedEmail{
		ToEmail:      target.Email,
		ToName:       target.FullName,
		PetName:      pet.Name,
		Role:         string(input.Role),
		SharedByName: sharedBy,
		PetID:        pet.ID.String(),
	})
	if err != nil {
		zap.L().Error("petService.Share: sending email",
			zap.String("pet_id", pet.ID.String()), zap.String("to", target.Email), zap.Error(err))
	}
}

func (s *petService) RemoveMember(ctx context.Context, petID, callerID, memberID uuid.UUID) error {
	if _, err := s.guard.require(ctx, petID, callerID, domain.PetRoleOwner); err != nil {
		return err
	}
	if memberID == callerID {
		return domain.ErrSelfMemberRemove
	}
	return s.guard.members.Delete(ctx, petID, memberID)
}

func (s *petService) EnableEmergencyCard(ctx context.Context, petID, callerID uuid.UUID) (string, error) {
	if _, err := s.guard.require(ctx, petID, callerID, domain.PetRoleOwner); err != nil {
		return "", err
	}
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	if err := s.petRepo.SetEmergencyToken(ctx, petID, &token); err != nil {
		return "", err
	}
	return token, nil
}

func (s *petService) DisableEmergencyCard(ctx context.Context, petID, callerID uuid.UUID) error {
	if _, err := s.guard.require(ctx, petID, callerID, domain.PetRoleOwner); err != nil {
		return err
	}
	if err := s.petRepo.SetEmergencyToken(ctx, petID, nil); err != nil {
		if errors.Is(err, domain.ErrPetNotFound) {
			return err
		}
		return fmt.Errorf("disabling emergency card: %w", err)
	}
	return nil
}
