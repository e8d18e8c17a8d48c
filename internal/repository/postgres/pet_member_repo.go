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

type petMemberRepo struct {
	db *sqlx.DB
}

// NewPetMemberRepo creates a new PostgreSQL-backed PetMemberRepository.
func NewPetMemberRepo(db *sqlx.DB) port.PetMemberRepository {
	return &petMemberRepo{db: db}
}

func (r *petMemberRepo) Upsert(ctx context.Context, member *domain.PetMember) error {
	if member.CreatedAt.IsZero() {
		member.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO pet_members (pet_id, user_id, role, granted_by, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (pet_id, user_id) DO UPDATE SET role = EXCLUDED.role, granted_by = EXCLUDED.granted_by`,
		member.PetID, member.UserID, member.Role, member.GrantedBy, member.CreatedAt)
	if err != nil {
		return fmt.Errorf("petMemberRepo.Upsert: %w", err)
	}
	return nil
}

func (r *petMemberRepo) Get(ctx context.Context, petID, userID uuid.UUID) (*domain.PetMember, error) {
	var m domain.PetMember
	err := r.db.GetContext(ctx, &m,
		"SELECT * FROM pet_members WHERE pet_id = $1 AND user_id = $2", petID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("petMemberRepo.Get: %w", err)
	}
	return &m, nil
}

func (r *petMemberRepo) ListByPet(ctx context.Context, petID uuid.UUID) ([]domain.PetMember, error) {
	var members []domain.PetMember
	err := r.db.SelectContext(ctx, &members,
		"SELECT * FROM pet_members WHERE pet_id = $1 ORDER BY created_at", petID)
	if err != nil {
		return nil, fmt.Errorf("petMemberRepo.ListByPet: %w", err)
	}
	return members, nil
}

func (r *petMemberRepo) Delete(ctx context.Context, petID, userID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM pet_members WHERE pet_id = $1 AND user_id = $2", petID, userID)
	if err != nil {
		return fmt.Errorf("petMemberRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}
