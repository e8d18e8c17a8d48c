package port

import (
	"context"

	"github.com/google/uuid"

	"petvault/internal/domain"
)

// HealthRecordRepository defines the contract for the per-pet record tables.
type HealthRecordRepository interface {
	// Create inserts the record and its audit entry in one transaction.
	Create(ctx context.Context, record *domain.HealthRecord, audit *domain.AuditLogEntry) error
	GetByID(ctx context.Context, petID uuid.UUID, recordType domain.RecordType, recordID uuid.UUID) (*domain.HealthRecord, error)
	ListByPet(ctx context.Context, petID uuid.UUID, recordType domain.RecordType) ([]domain.HealthRecord, error)
	// Delete removes the record and appends its audit entry in one transaction.
	Delete(ctx context.Context, petID uuid.UUID, recordType domain.RecordType, recordID uuid.UUID, audit *domain.AuditLogEntry) error
}

// AuditLogRepository is the append-only audit trail.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *domain.AuditLogEntry) error
	ListByPet(ctx context.Context, petID uuid.UUID, filter domain.AuditFilter, offset, limit int) ([]domain.AuditLogEntry, int, error)
}
