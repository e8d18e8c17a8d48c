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

type uploadRepo struct {
	db *sqlx.DB
}

// NewUploadRepo creates a new PostgreSQL-backed UploadRepository.
func NewUploadRepo(db *sqlx.DB) port.UploadRepository {
	return &uploadRepo{db: db}
}

func (r *uploadRepo) Create(ctx context.Context, u *domain.Upload) error {
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO uploads (id, pet_id, uploaded_by, import_variant, original_name, storage_bucket,
			file_path, mime_type, file_size, media_type, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		u.ID, u.PetID, u.UploadedBy, u.Variant, u.OriginalName, u.StorageBucket,
		u.FilePath, u.MimeType, u.FileSize, u.MediaType, u.Status, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("uploadRepo.Create: %w", err)
	}
	return nil
}

func (r *uploadRepo) GetByID(ctx context.Context, petID uuid.UUID, variant domain.ImportVariant, uploadID uuid.UUID) (*domain.Upload, error) {
	var u domain.Upload
	err := r.db.GetContext(ctx, &u,
		"SELECT * FROM uploads WHERE id = $1 AND pet_id = $2 AND import_variant = $3",
		uploadID, petID, variant)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUploadNotFound
		}
		return nil, fmt.Errorf("uploadRepo.GetByID: %w", err)
	}
	return &u, nil
}

func (r *uploadRepo) ListByPet(ctx context.Context, petID uuid.UUID, variant domain.ImportVariant, offset, limit int) ([]domain.Upload, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM uploads WHERE pet_id = $1 AND import_variant = $2", petID, variant)
	if err != nil {
		return nil, 0, fmt.Errorf("uploadRepo.ListByPet count: %w", err)
	}

	var uploads []domain.Upload
	err = r.db.SelectContext(ctx, &uploads,
		`SELECT * FROM uploads WHERE pet_id = $1 AND import_variant = $2
		 ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		petID, variant, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("uploadRepo.ListByPet: %w", err)
	}
	return uploads, total, nil
}

func (r *uploadRepo) Delete(ctx context.Context, petID uuid.UUID, variant domain.ImportVariant, uploadID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM uploads WHERE id = $1 AND pet_id = $2 AND import_variant = $3",
		uploadID, petID, variant)
	if err != nil {
		return fmt.Errorf("uploadRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrUploadNotFound
	}
	return nil
}

func (r *uploadRepo) Claim(ctx context.Context, uploadID uuid.UUID, status domain.UploadStatus) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE uploads SET status = $1, error_message = NULL,
			processing_started_at = NOW(), processing_completed_at = NULL, updated_at = NOW()
		 WHERE id = $2 AND status IN ('pending', 'failed')`,
		status, uploadID)
	if err != nil {
		return false, fmt.Errorf("uploadRepo.Claim: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows == 1, nil
}

func (r *uploadRepo) SetStatus(ctx context.Context, uploadID uuid.UUID, status domain.UploadStatus) error {
	return r.exec(ctx, "uploadRepo.SetStatus",
		"UPDATE uploads SET status = $1, updated_at = NOW() WHERE id = $2",
		status, uploadID)
}

func (r *uploadRepo) RecordClassification(ctx context.Context, uploadID uuid.UUID, detectedType string, confidence int, explanation string) error {
	return r.exec(ctx, "uploadRepo.RecordClassification",
		`UPDATE uploads SET detected_type = $1, classification_confidence = $2,
			classification_explanation = NULLIF($3, ''), updated_at = NOW()
		 WHERE id = $4`,
		detectedType, confidence, explanation, uploadID)
}

func (r *uploadRepo) MarkFailed(ctx context.Context, uploadID uuid.UUID, errMsg string) error {
	return r.exec(ctx, "uploadRepo.MarkFailed",
		`UPDATE uploads SET status = $1, error_message = $2,
			processing_completed_at = NOW(), updated_at = NOW()
		 WHERE id = $3`,
		domain.UploadStatusFailed, errMsg, uploadID)
}

func (r *uploadRepo) exec(ctx context.Context, op, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrUploadNotFound
	}
	return nil
}
