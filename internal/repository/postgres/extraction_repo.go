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

type extractionRepo struct {
	db *sqlx.DB
}

// NewExtractionRepo creates a new PostgreSQL-backed ExtractionRepository.
func NewExtractionRepo(db *sqlx.DB) port.ExtractionRepository {
	return &extractionRepo{db: db}
}

func (r *extractionRepo) CreateWithItems(ctx context.Context, ex *domain.Extraction, items []domain.ExtractionItem) error {
	now := time.Now().UTC()
	if ex.ID == uuid.Nil {
		ex.ID = uuid.New()
	}
	ex.CreatedAt = now
	ex.UpdatedAt = now

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO extractions (id, upload_id, raw_response, mapped_data, model, tokens_used,
				status, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			ex.ID, ex.UploadID, ex.RawResponse, ex.MappedData, ex.Model, ex.TokensUsed,
			ex.Status, ex.CreatedAt, ex.UpdatedAt)
		if err != nil {
			if strings.Contains(err.Error(), "duplicate key") {
				return domain.ErrExtractionExists
			}
			return fmt.Errorf("extractionRepo.CreateWithItems: %w", err)
		}

		for i := range items {
			it := &items[i]
			if it.ID == uuid.Nil {
				it.ID = uuid.New()
			}
			it.ExtractionID = ex.ID
			it.CreatedAt = now
			it.UpdatedAt = now
			if it.Status == "" {
				it.Status = domain.ItemStatusPending
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO extraction_items (id, extraction_id, record_type, extracted_data,
					confidence_score, status, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				it.ID, it.ExtractionID, it.RecordType, it.ExtractedData,
				it.ConfidenceScore, it.Status, it.CreatedAt, it.UpdatedAt)
			if err != nil {
				return fmt.Errorf("extractionRepo.CreateWithItems item %d: %w", i, err)
			}
		}
		return completeUpload(ctx, tx, ex.UploadID, now)
	})
	if err != nil {
		return err
	}
	ex.Items = items
	return nil
}

func (r *extractionRepo) GetByID(ctx context.Context, extractionID uuid.UUID) (*domain.Extraction, error) {
	var ex domain.Extraction
	err := r.db.GetContext(ctx, &ex, "SELECT * FROM extractions WHERE id = $1", extractionID)
	if err != nil {
		if errNoRows(err) {
			return nil, domain.ErrExtractionNotFound
		}
		return nil, fmt.Errorf("extractionRepo.GetByID: %w", err)
	}
	return &ex, nil
}

func (r *extractionRepo) GetByUploadID(ctx context.Context, uploadID uuid.UUID) (*domain.Extraction, error) {
	var ex domain.Extraction
	err := r.db.GetContext(ctx, &ex, "SELECT * FROM extractions WHERE upload_id = $1", uploadID)
	if err != nil {
		if errNoRows(err) {
			return nil, domain.ErrExtractionNotFound
		}
		return nil, fmt.Errorf("extractionRepo.GetByUploadID: %w", err)
	}

	items, err := r.ListItems(ctx, ex.ID)
	if err != nil {
		return nil, err
	}
	ex.Items = items
	return &ex, nil
}

func (r *extractionRepo) ListItems(ctx context.Context, extractionID uuid.UUID) ([]domain.ExtractionItem, error) {
	items := []domain.ExtractionItem{}
	err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM extraction_items WHERE extraction_id = $1 ORDER BY created_at, id", extractionID)
	if err != nil {
		return nil, fmt.Errorf("extractionRepo.ListItems: %w", err)
	}
	return items, nil
}

func (r *extractionRepo) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.ExtractionItem, error) {
	var it domain.ExtractionItem
	err := r.db.GetContext(ctx, &it, "SELECT * FROM extraction_items WHERE id = $1", itemID)
	if err != nil {
		if errNoRows(err) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("extractionRepo.GetItem: %w", err)
	}
	return &it, nil
}

func (r *extractionRepo) ModifyItem(ctx context.Context, itemID uuid.UUID, data json.RawMessage) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE extraction_items SET user_modified_data = $1, status = $2, updated_at = NOW()
		 WHERE id = $3 AND status IN ('pending', 'modified')`,
		data, domain.ItemStatusModified, itemID)
	if err != nil {
		return fmt.Errorf("extractionRepo.ModifyItem: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return r.unresolvedMiss(ctx, itemID)
	}
	return nil
}

func (r *extractionRepo) RejectItem(ctx context.Context, itemID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE extraction_items SET status = $1, updated_at = NOW()
		 WHERE id = $2 AND status IN ('pending', 'modified')`,
		domain.ItemStatusRejected, itemID)
	if err != nil {
		return fmt.Errorf("extractionRepo.RejectItem: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return r.unresolvedMiss(ctx, itemID)
	}
	return nil
}

func (r *extractionRepo) ApproveItem(ctx context.Context, input port.ApproveItemInput) error {
	rec := input.Record
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE extraction_items SET status = $1, created_record_id = $2, created_record_type = $3,
				updated_at = NOW()
			 WHERE id = $4 AND status IN ('pending', 'modified')`,
			domain.ItemStatusApproved, rec.ID, rec.RecordType, input.ItemID)
		if err != nil {
			return fmt.Errorf("extractionRepo.ApproveItem: %w", err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return domain.ErrItemResolved
		}

		if err := insertHealthRecord(ctx, tx, rec); err != nil {
			return fmt.Errorf("extractionRepo.ApproveItem record: %w", err)
		}
		input.Audit.EntityID = rec.ID
		if err := insertAuditEntry(ctx, tx, input.Audit); err != nil {
			return fmt.Errorf("extractionRepo.ApproveItem audit: %w", err)
		}
		return nil
	})
}

func (r *extractionRepo) UpdateStatus(ctx context.Context, extractionID uuid.UUID, status domain.ExtractionStatus, reviewedBy *uuid.UUID, reviewedAt *time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE extractions SET status = $1, reviewed_by = $2, reviewed_at = $3, updated_at = NOW()
		 WHERE id = $4`,
		status, reviewedBy, reviewedAt, extractionID)
	if err != nil {
		return fmt.Errorf("extractionRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrExtractionNotFound
	}
	return nil
}

// unresolvedMiss explains why a conditional item update touched no rows.
func (r *extractionRepo) unresolvedMiss(ctx context.Context, itemID uuid.UUID) error {
	var status domain.ItemStatus
	err := r.db.GetContext(ctx, &status, "SELECT status FROM extraction_items WHERE id = $1", itemID)
	if err != nil {
		if errNoRows(err) {
			return domain.ErrItemNotFound
		}
		return fmt.Errorf("extractionRepo item lookup: %w", err)
	}
	return domain.ErrItemResolved
}

// completeUpload moves the in-flight upload to completed in the transaction that
// stores its extraction, so an extraction never exists for an unfinished upload.
func completeUpload(ctx context.Context, tx *sqlx.Tx, uploadID uuid.UUID, at time.Time) error {
	result, err := tx.ExecContext(ctx,
		`UPDATE uploads SET status = $1, error_message = NULL,
			processing_completed_at = $2, updated_at = $2
		 WHERE id = $3 AND status IN ('classifying', 'processing')`,
		domain.UploadStatusCompleted, at, uploadID)
	if err != nil {
		return fmt.Errorf("extractionRepo.CreateWithItems complete upload: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows != 1 {
		return domain.ErrUploadInProgress
	}
	return nil
}
