package port

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"petvault/internal/domain"
)

// ApproveItemInput carries everything written when an item is approved.
type ApproveItemInput struct {
	ItemID uuid.UUID
	Record *domain.HealthRecord
	Audit  *domain.AuditLogEntry
}

// ExtractionRepository defines the contract for extraction and item persistence.
type ExtractionRepository interface {
	// CreateWithItems inserts the extraction and all of its items and marks the
	// upload completed, all in one transaction.
	CreateWithItems(ctx context.Context, extraction *domain.Extraction, items []domain.ExtractionItem) error
	GetByID(ctx context.Context, extractionID uuid.UUID) (*domain.Extraction, error)
	// GetByUploadID returns the extraction with its items populated.
	GetByUploadID(ctx context.Context, uploadID uuid.UUID) (*domain.Extraction, error)
	ListItems(ctx context.Context, extractionID uuid.UUID) ([]domain.ExtractionItem, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (*domain.ExtractionItem, error)

	// ModifyItem stores user edits on an item that is still pending or modified.
	ModifyItem(ctx context.Context, itemID uuid.UUID, data json.RawMessage) error
	RejectItem(ctx context.Context, itemID uuid.UUID) error
	// ApproveItem creates the health record, appends the audit entry and marks the
	// item approved in one transaction.
	ApproveItem(ctx context.Context, input ApproveItemInput) error

	UpdateStatus(ctx context.Context, extractionID uuid.UUID, status domain.ExtractionStatus, reviewedBy *uuid.UUID, reviewedAt *time.Time) error
}
