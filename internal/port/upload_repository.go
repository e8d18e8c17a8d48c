package port

import (
	"context"

	"github.com/google/uuid"

	"petvault/internal/domain"
)

// UploadRepository defines the contract for upload persistence.
// Lookups are scoped by pet and import variant so one pet's uploads are never
// reachable through another pet's routes.
type UploadRepository interface {
	Create(ctx context.Context, upload *domain.Upload) error
	GetByID(ctx context.Context, petID uuid.UUID, variant domain.ImportVariant, uploadID uuid.UUID) (*domain.Upload, error)
	ListByPet(ctx context.Context, petID uuid.UUID, variant domain.ImportVariant, offset, limit int) ([]domain.Upload, int, error)
	Delete(ctx context.Context, petID uuid.UUID, variant domain.ImportVariant, uploadID uuid.UUID) error

	// Claim moves an upload that is pending or failed into the given in-flight
	// status in a single conditional update. It returns false when another
	// attempt already owns the upload or it has completed.
	Claim(ctx context.Context, uploadID uuid.UUID, status domain.UploadStatus) (bool, error)
	SetStatus(ctx context.Context, uploadID uuid.UUID, status domain.UploadStatus) error
	RecordClassification(ctx context.Context, uploadID uuid.UUID, detectedType string, confidence int, explanation string) error
	MarkFailed(ctx context.Context, uploadID uuid.UUID, errMsg string) error
}
