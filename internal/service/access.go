package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"petvault/internal/domain"
	"petvault/internal/port"
)

// petGuard enforces per-pet role checks. A caller without membership gets
// ErrPetNotFound so pet ids cannot be probed.
type petGuard struct {
	members port.PetMemberRepository
}

func (g petGuard) require(ctx context.Context, petID, userID uuid.UUID, minRole domain.PetRole) (*domain.PetMember, error) {
	member, err := g.members.Get(ctx, petID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return nil, domain.ErrPetNotFound
		}
		return nil, fmt.Errorf("checking pet access: %w", err)
	}
	if domain.PetRoleLevel(member.Role) < domain.PetRoleLevel(minRole) {
		return nil, domain.ErrForbidden
	}
	return member, nil
}
