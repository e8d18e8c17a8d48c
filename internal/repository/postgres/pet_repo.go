package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"petvault/internal/domain"
	"petvault/internal/port"
)

type petRepo struct {
	db *sqlx.DB
}

// NewPetRepo creates a new PostgreSQL-backed PetRepository.
func NewPetRepo(db *sqlx.DB) port.PetRepository {
	return &petRepo{db: db}
}

func (r *petRepo) Create(ctx context.Context, pet *domain.Pet) error {
	pet.ID = uuid.New()
	now := time.Now().UTC()
	pet.CreatedAt = now
	pet.UpdatedAt = now

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO pets (id, owner_id, name, species, breed, date_of_birth, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			pet.ID, pet.OwnerID, pet.Name, pet.Species, pet.Breed, pet.DateOfBirth, pet.CreatedAt, pet.UpdatedAt)
		if err != nil {
			return fmt.Errorf("petRepo.Create: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO pet_members (pet_id, user_id, role, granted_by, created_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			pet.ID, pet.OwnerID, domain.PetRoleOwner, pet.OwnerID, now)
		if err != nil {
			return fmt.Errorf("petRepo.Create owner member: %w", err)
		}
		return nil
	})
}

func (r *petRepo) GetByID(ctx context.Context, petID uuid.UUID) (*domain.Pet, error) {
	var pet domain.Pet
	err := r.db.GetContext(ctx, &pet, "SELECT * FROM pets WHERE id = $1", petID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPetNotFound
		}
		return nil, fmt.Errorf("petRepo.GetByID: %w", err)
	}
	return &pet, nil
}

func (r *petRepo) ListForUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.PetWithRole, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM pet_members WHERE user_id = $1", userID)
	if err != nil {
		return nil, 0, fmt.Errorf("petRepo.ListForUser count: %w", err)
	}

	var pets []domain.PetWithRole
	err = r.db.SelectContext(ctx, &pets,
		`SELECT p.*, m.role FROM pets p
		 JOIN pet_members m ON m.pet_id = p.id
		 WHERE m.user_id = $1
		 ORDER BY p.created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("petRepo.ListForUser: %w", err)
	}
	return pets, total, nil
}

func (r *petRepo) SetEmergencyToken(ctx context.Context, petID uuid.UUID, token *string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE pets SET emergency_token = $1, updated_at = NOW() WHERE id = $2", token, petID)
	if err != nil {
		return fmt.Errorf("petRepo.SetEmergencyToken: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrPetNotFound
	}
	return nil
}

func (r *petRepo) GetByEmergencyToken(ctx context.Context, token string) (*domain.Pet, error) {
	var pet domain.Pet
	err := r.db.GetContext(ctx, &pet, "SELECT * FROM pets WHERE emergency_token = $1", token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPetNotFound
		}
		return nil, fmt.Errorf("petRepo.GetByEmergencyToken: %w", err)
	}
	return &pet, nil
}
