package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"petvault/internal/domain"
	"petvault/internal/healthrecord"
	"petvault/internal/port"
)

// UpdateItemInput is the DTO for editing an extraction item before approval.
type UpdateItemInput struct {
	PetID        uuid.UUID
	UserID       uuid.UUID
	Variant      domain.ImportVariant
	ItemID       uuid.UUID
	ModifiedData map[string]any `json:"modified_data" binding:"required"`
}

// ReviewInput is the DTO for a batch approve or reject call.
type ReviewInput struct {
	PetID     uuid.UUID
	UserID    uuid.UUID
	Variant   domain.ImportVariant
	UploadID  uuid.UUID
	ItemIDs   []uuid.UUID `json:"item_ids" binding:"required,min=1"`
	IPAddress string
	UserAgent string
}

// ItemError reports why one item of a batch could not be resolved.
type ItemError struct {
	ItemID uuid.UUID `json:"item_id"`
	Error  string    `json:"error"`
}

// ApproveResult is the outcome of a batch approval.
type ApproveResult struct {
	Approved []uuid.UUID            `json:"approved"`
	Rejected []uuid.UUID            `json:"rejected"`
	Errors   []ItemError            `json:"errors"`
	Status   domain.ExtractionStatus `json:"status"`
}

// RejectResult is the outcome of a batch rejection.
type RejectResult struct {
	Rejected []uuid.UUID            `json:"rejected"`
	Errors   []ItemError            `json:"errors"`
	Status   domain.ExtractionStatus `json:"status"`
}

// ReviewService drives the human review of extracted items.
type ReviewService interface {
	GetExtraction(ctx context.Context, petID, userID uuid.UUID, variant domain.ImportVariant, uploadID uuid.UUID) (*domain.Extraction, error)
	UpdateItem(ctx context.Context, input UpdateItemInput) (*domain.ExtractionItem, error)
	Approve(ctx context.Context, input ReviewInput) (*ApproveResult, error)
	Reject(ctx context.Context, input ReviewInput) (*RejectResult, error)
}

type reviewService struct {
	uploads     port.UploadRepository
	extractions port.ExtractionRepository
	guard       petGuard
	now         func() time.Time
}

// NewReviewService creates a new ReviewService implementation.
func NewReviewService(
	uploads port.UploadRepository,
	extractions port.ExtractionRepository,
	members port.PetMemberRepository,
) ReviewService {
	return &reviewService{
		uploads:     uploads,
		extractions: extractions,
		guard:       petGuard{members: members},
		now:         time.Now,
	}
}

func (s *reviewService) GetExtraction(ctx context.Context, petID, userID uuid.UUID, variant domain.ImportVariant, uploadID uuid.UUID) (*domain.Extraction, error) {
	if _, err := s.guard.require(ctx, petID, userID, domain.PetRoleViewer); err != nil {
		return nil, err
	}
	return s.loadExtraction(ctx, petID, variant, uploadID)
}

func (s *reviewService) UpdateItem(ctx context.Context, input UpdateItemInput) (*domain.ExtractionItem, error) {
	if _, err := s.guard.require(ctx, input.PetID, input.UserID, domain.PetRoleEditor); err != nil {
		return nil, err
	}

	item, err := s.extractions.GetItem(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}
	// The item must hang off an upload of this pet and variant.
	ex, err := s.extractions.GetByID(ctx, item.ExtractionID)
	if err != nil {
		return nil, err
	}
	if _, err := s.uploads.GetByID(ctx, input.PetID, input.Variant, ex.UploadID); err != nil {
		if errors.Is(err, domain.ErrUploadNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	if !item.Status.Reviewable() {
		return nil, domain.ErrItemResolved
	}

	mapped, err := healthrecord.Map(item.RecordType, input.ModifiedData)
	if err != nil {
		return nil, err
	}
	data, err := marshalJSON(mapped)
	if err != nil {
		return nil, err
	}
	if err := s.extractions.ModifyItem(ctx, item.ID, data); err != nil {
		return nil, err
	}

	item.UserModifiedData = &data
	item.Status = domain.ItemStatusModified
	item.UpdatedAt = s.now().UTC()
	return item, nil
}

func (s *reviewService) Approve(ctx context.Context, input ReviewInput) (*ApproveResult, error) {
	if _, err := s.guard.require(ctx, input.PetID, input.UserID, domain.PetRoleEditor); err != nil {
		return nil, err
	}
	ex, err := s.loadExtraction(ctx, input.PetID, input.Variant, input.UploadID)
	if err != nil {
		return nil, err
	}

	result := &ApproveResult{Approved: []uuid.UUID{}, Rejected: []uuid.UUID{}, Errors: []ItemError{}}
	items := indexItems(ex.Items)
	for _, id := range input.ItemIDs {
		if err := s.approveItem(ctx, input, items[id]); err != nil {
			zap.L().Info("reviewService.Approve: item not approved",
				zap.String("item_id", id.String()), zap.Error(err))
			result.Errors = append(result.Errors, ItemError{ItemID: id, Error: itemErrorMessage(err)})
			continue
		}
		result.Approved = append(result.Approved, id)
	}

	status, err := s.refreshStatus(ctx, ex.ID, input.UserID)
	if err != nil {
		return nil, err
	}
	result.Status = status
	return result, nil
}

func (s *reviewService) approveItem(ctx context.Context, input ReviewInput, item *domain.ExtractionItem) error {
	if item == nil {
		return domain.ErrItemNotFound
	}
	if !item.Status.Reviewable() {
		return domain.ErrItemResolved
	}

	data, err := healthrecord.Decode(item.EffectiveData())
	if err != nil {
		return err
	}
	fields, err := healthrecord.Map(item.RecordType, data)
	if err != nil {
		return err
	}
	if err := healthrecord.Validate(item.RecordType, fields); err != nil {
		return err
	}

	userID := input.UserID
	record := &domain.HealthRecord{
		ID:         uuid.New(),
		PetID:      input.PetID,
		RecordType: item.RecordType,
		Fields:     fields,
		CreatedBy:  &userID,
	}
	audit, err := newAuditEntry(auditParams{
		PetID:     input.PetID,
		Record:    record,
		Action:    domain.AuditActionCreate,
		UserID:    userID,
		Source:    input.Variant.Source(),
		UploadID:  &input.UploadID,
		After:     fields,
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
	})
	if err != nil {
		return err
	}

	return s.extractions.ApproveItem(ctx, port.ApproveItemInput{ItemID: item.ID, Record: record, Audit: audit})
}

func (s *reviewService) Reject(ctx context.Context, input ReviewInput) (*RejectResult, error) {
	if _, err := s.guard.require(ctx, input.PetID, input.UserID, domain.PetRoleEditor); err != nil {
		return nil, err
	}
	ex, err := s.loadExtraction(ctx, input.PetID, input.Variant, input.UploadID)
	if err != nil {
		return nil, err
	}

	result := &RejectResult{Rejected: []uuid.UUID{}, Errors: []ItemError{}}
	items := indexItems(ex.Items)
	for _, id := range input.ItemIDs {
		item := items[id]
		switch {
		case item == nil:
			err = domain.ErrItemNotFound
		case !item.Status.Reviewable():
			err = domain.ErrItemResolved
		default:
			err = s.extractions.RejectItem(ctx, id)
		}
		if err != nil {
			result.Errors = append(result.Errors, ItemError{ItemID: id, Error: itemErrorMessage(err)})
			continue
		}
		result.Rejected = append(result.Rejected, id)
	}

	status, err := s.refreshStatus(ctx, ex.ID, input.UserID)
	if err != nil {
		return nil, err
	}
	result.Status = status
	return result, nil
}

func (s *reviewService) loadExtraction(ctx context.Context, petID uuid.UUID, variant domain.ImportVariant, uploadID uuid.UUID) (*domain.Extraction, error) {
	upload, err := s.uploads.GetByID(ctx, petID, variant, uploadID)
	if err != nil {
		return nil, err
	}
	return s.extractions.GetByUploadID(ctx, upload.ID)
}

// refreshStatus recomputes the extraction status from every item, not just the
// ones touched by the current batch.
func (s *reviewService) refreshStatus(ctx context.Context, extractionID, userID uuid.UUID) (domain.ExtractionStatus, error) {
	items, err := s.extractions.ListItems(ctx, extractionID)
	if err != nil {
		return "", err
	}
	status := domain.ReviewStatus(items)

	var reviewedBy *uuid.UUID
	var reviewedAt *time.Time
	if status != domain.ExtractionStatusPendingReview {
		now := s.now().UTC()
		reviewedBy, reviewedAt = &userID, &now
	}
	if err := s.extractions.UpdateStatus(ctx, extractionID, status, reviewedBy, reviewedAt); err != nil {
		return "", fmt.Errorf("updating extraction status: %w", err)
	}
	return status, nil
}

func indexItems(items []domain.ExtractionItem) map[uuid.UUID]*domain.ExtractionItem {
	m := make(map[uuid.UUID]*domain.ExtractionItem, len(items))
	for i := range items {
		m[items[i].ID] = &items[i]
	}
	return m
}

// itemErrorMessage keeps infrastructure details out of batch results.
func itemErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrItemResolved),
		errors.Is(err, domain.ErrInvalidRecordType):
		return err.Error()
	default:
		return "failed to save record"
	}
}
