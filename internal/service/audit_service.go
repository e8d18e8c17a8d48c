package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"petvault/internal/csvexport"
	"petvault/internal/domain"
	"petvault/internal/healthrecord"
	"petvault/internal/port"
)

const exportBatchSize = 500

// AuditService reads a pet's audit trail.
type AuditService interface {
	List(ctx context.Context, petID, userID uuid.UUID, filter domain.AuditFilter, offset, limit int) ([]domain.AuditLogEntry, int, error)
	// ExportCSV writes the filtered log to w, newest first. Access is checked
	// before anything is written.
	ExportCSV(ctx context.Context, petID, userID uuid.UUID, filter domain.AuditFilter, w io.Writer) error
}

type auditService struct {
	auditRepo port.AuditLogRepository
	guard     petGuard
}

// NewAuditService creates a new AuditService implementation.
func NewAuditService(auditRepo port.AuditLogRepository, members port.PetMemberRepository) AuditService {
	return &auditService{auditRepo: auditRepo, guard: petGuard{members: members}}
}

func (s *auditService) List(ctx context.Context, petID, userID uuid.UUID, filter domain.AuditFilter, offset, limit int) ([]domain.AuditLogEntry, int, error) {
	if _, err := s.guard.require(ctx, petID, userID, domain.PetRoleViewer); err != nil {
		return nil, 0, err
	}
	if filter.Action != "" && !domain.ValidAuditActions[filter.Action] {
		return nil, 0, fmt.Errorf("%w: unknown action %q", domain.ErrValidation, filter.Action)
	}
	return s.auditRepo.ListByPet(ctx, petID, filter, offset, limit)
}

func (s *auditService) ExportCSV(ctx context.Context, petID, userID uuid.UUID, filter domain.AuditFilter, w io.Writer) error {
	entries, total, err := s.List(ctx, petID, userID, filter, 0, exportBatchSize)
	if err != nil {
		return err
	}

	if _, err := w.Write(csvexport.BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}
	cw := csvexport.NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for offset := 0; ; {
		if err := cw.WriteEntries(entries); err != nil {
			return fmt.Errorf("writing entries: %w", err)
		}
		offset += len(entries)
		if len(entries) < exportBatchSize || offset >= total {
			break
		}
		entries, _, err = s.auditRepo.ListByPet(ctx, petID, filter, offset, exportBatchSize)
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// auditParams describes one change to a health record.
type auditParams struct {
	PetID     uuid.UUID
	Record    *domain.HealthRecord
	Action    domain.AuditAction
	UserID    uuid.UUID
	Source    domain.AuditSource
	UploadID  *uuid.UUID
	Before    map[string]any
	After     map[string]any
	IPAddress string
	UserAgent string
}

func newAuditEntry(p auditParams) (*domain.AuditLogEntry, error) {
	petID, userID := p.PetID, p.UserID
	entry := &domain.AuditLogEntry{
		PetID:          &petID,
		EntityType:     string(p.Record.RecordType),
		EntityID:       p.Record.ID,
		Action:         p.Action,
		ChangedBy:      &userID,
		Source:         p.Source,
		SourceUploadID: p.UploadID,
	}

	var err error
	if entry.OldValues, err = optionalJSON(p.Before); err != nil {
		return nil, err
	}
	if entry.NewValues, err = optionalJSON(p.After); err != nil {
		return nil, err
	}

	changed := healthrecord.ChangedFields(p.Before, p.After)
	if changed == nil {
		changed = []string{}
	}
	if entry.ChangedFields, err = marshalJSON(changed); err != nil {
		return nil, err
	}

	if p.IPAddress != "" {
		entry.IPAddress = &p.IPAddress
	}
	if p.UserAgent != "" {
		entry.UserAgent = &p.UserAgent
	}
	return entry, nil
}

func optionalJSON(v map[string]any) (*json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	b, err := marshalJSON(v)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func marshalJSON(v any) (json.RawMessage, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling json: %w", err)
	}
	return b, nil
}
