package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"petvault/internal/domain"
	"petvault/internal/port"
)

type auditLogRepo struct {
	db *sqlx.DB
}

// NewAuditLogRepo creates a new PostgreSQL-backed AuditLogRepository.
func NewAuditLogRepo(db *sqlx.DB) port.AuditLogRepository {
	return &auditLogRepo{db: db}
}

func (r *auditLogRepo) Create(ctx context.Context, entry *domain.AuditLogEntry) error {
	if err := insertAuditEntry(ctx, r.db, entry); err != nil {
		return fmt.Errorf("auditLogRepo.Create: %w", err)
	}
	return nil
}

func (r *auditLogRepo) ListByPet(ctx context.Context, petID uuid.UUID, filter domain.AuditFilter, offset, limit int) ([]domain.AuditLogEntry, int, error) {
	where, args := buildAuditWhere(petID, filter)

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM audit_log a "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("auditLogRepo.ListByPet count: %w", err)
	}

	n := len(args)
	args = append(args, limit, offset)
	var entries []domain.AuditLogEntry
	err = r.db.SelectContext(ctx, &entries,
		fmt.Sprintf("SELECT a.* FROM audit_log a %s ORDER BY a.created_at DESC, a.id DESC LIMIT $%d OFFSET $%d",
			where, n+1, n+2),
		args...)
	if err != nil {
		return nil, 0, fmt.Errorf("auditLogRepo.ListByPet: %w", err)
	}
	return entries, total, nil
}

// buildAuditWhere scopes the log to a pet. Entries without a pet id are
// matched through the entity id against the pet and its record tables.
func buildAuditWhere(petID uuid.UUID, filter domain.AuditFilter) (clause string, args []interface{}) {
	owned := make([]string, 0, len(domain.RecordTypes))
	for _, rt := range domain.RecordTypes {
		owned = append(owned, fmt.Sprintf("SELECT id FROM %s WHERE pet_id = $1", domain.RecordSchemas[rt].Table))
	}

	args = []interface{}{petID}
	clause = fmt.Sprintf("WHERE (a.pet_id = $1 OR a.entity_id = $1 OR a.entity_id IN (%s))",
		strings.Join(owned, " UNION ALL "))
	argN := 2

	if filter.EntityType != "" {
		clause += fmt.Sprintf(" AND a.entity_type = $%d", argN)
		args = append(args, filter.EntityType)
		argN++
	}
	if filter.EntityID != nil {
		clause += fmt.Sprintf(" AND a.entity_id = $%d", argN)
		args = append(args, *filter.EntityID)
		argN++
	}
	if filter.Action != "" {
		clause += fmt.Sprintf(" AND a.action = $%d", argN)
		args = append(args, filter.Action)
		argN++
	}
	if filter.SourceUploadID != nil {
		clause += fmt.Sprintf(" AND a.source_upload_id = $%d", argN)
		args = append(args, *filter.SourceUploadID)
	}
	return clause, args
}

func insertAuditEntry(ctx context.Context, ext sqlx.ExtContext, e *domain.AuditLogEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if len(e.ChangedFields) == 0 {
		e.ChangedFields = json.RawMessage("[]")
	}

	_, err := ext.ExecContext(ctx,
		`INSERT INTO audit_log (id, pet_id, entity_type, entity_id, action, changed_by, source,
			source_upload_id, old_values, new_values, changed_fields, ip_address, user_agent, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		e.ID, e.PetID, e.EntityType, e.EntityID, e.Action, e.ChangedBy, e.Source,
		e.SourceUploadID, e.OldValues, e.NewValues, e.ChangedFields, e.IPAddress, e.UserAgent, e.CreatedAt)
	return err
}
