package service

import (
	"context"
	"errors"
	"strings"

	"petvault/internal/domain"
	"petvault/internal/port"
)

// EmergencyCardService serves the public, unauthenticated emergency summary.
type EmergencyCardService interface {
	Get(ctx context.Context, token string) (*domain.EmergencyCard, error)
}

type emergencyCardService struct {
	pets    port.PetRepository
	records port.HealthRecordRepository
}

// NewEmergencyCardService creates a new EmergencyCardService implementation.
func NewEmergencyCardService(pets port.PetRepository, records port.HealthRecordRepository) EmergencyCardService {
	return &emergencyCardService{pets: pets, records: records}
}

func (s *emergencyCardService) Get(ctx context.Context, token string) (*domain.EmergencyCard, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrEmergencyCardDisabled
	}
	pet, err := s.pets.GetByEmergencyToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrPetNotFound) {
			return nil, domain.ErrEmergencyCardDisabled
		}
		return nil, err
	}

	records, err := loadAllRecords(ctx, s.records, pet.ID)
	if err != nil {
		return nil, err
	}
	return &domain.EmergencyCard{
		PetName:     pet.Name,
		Species:     pet.Species,
		Breed:       pet.Breed,
		DateOfBirth: pet.DateOfBirth,
		Records:     records,
	}, nil
}
