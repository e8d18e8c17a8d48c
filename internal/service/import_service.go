package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"petvault/internal/analyzer"
	"petvault/internal/domain"
	"petvault/internal/healthrecord"
	"petvault/internal/port"
)

const maxErrorMessageLen = 1000

// UploadInput is the DTO for a file arriving through one of the import routes.
type UploadInput struct {
	Variant      domain.ImportVariant
	PetID        uuid.UUID
	UploaderID   uuid.UUID
	OriginalName string
	DeclaredType string
	Size         int64
	Body         io.Reader
}

// ProcessResult is what an upload or processing call hands back. Extraction
// fields are nil until processing has completed.
type ProcessResult struct {
	Upload         *domain.Upload          `json:"upload"`
	Classification *port.Classification    `json:"classification,omitempty"`
	Extraction     *domain.Extraction      `json:"extraction,omitempty"`
	Items          []domain.ExtractionItem `json:"items,omitempty"`
}

// ImportConfig holds the storage and size settings of the import pipeline.
type ImportConfig struct {
	Bucket        string
	MaxBytes      int64
	PresignExpiry int64
}

// ImportService runs upload intake and the classify/extract pipeline for all
// import variants.
type ImportService interface {
	Upload(ctx context.Context, input UploadInput) (*ProcessResult, error)
	List(ctx context.Context, petID, userID uuid.UUID, variant domain.ImportVariant, offset, limit int) ([]domain.Upload, int, error)
	Get(ctx context.Context, petID, userID uuid.UUID, variant domain.ImportVariant, uploadID uuid.UUID) (*domain.Upload, error)
	Delete(ctx context.Context, petID, userID uuid.UUID, variant domain.ImportVariant, uploadID uuid.UUID) error
	DownloadURL(ctx context.Context, petID, userID uuid.UUID, variant domain.ImportVariant, uploadID uuid.UUID) (string, error)
	Process(ctx context.Context, petID, userID uuid.UUID, variant domain.ImportVariant, uploadID uuid.UUID) (*ProcessResult, error)
}

type importService struct {
	uploads     port.UploadRepository
	extractions port.ExtractionRepository
	storage     port.ObjectStorage
	analyzer    port.DocumentAnalyzer
	guard       petGuard
	cfg         ImportConfig
	now         func() time.Time
}

// NewImportService creates a new ImportService implementation.
func NewImportService(
	uploads port.UploadRepository,
	extractions port.ExtractionRepository,
	members port.PetMemberRepository,
	storage port.ObjectStorage,
	docAnalyzer port.DocumentAnalyzer,
	cfg ImportConfig,
) ImportService {
	return &importService{
		uploads:     uploads,
		extractions: extractions,
		storage:     storage,
		analyzer:    docAnalyzer,
		guard:       petGuard{members: members},
		cfg:         cfg,
		now:         time.Now,
	}
}

func (s *importService) Upload(ctx context.Context, input UploadInput) (*ProcessResult, error) {
	if _, err := s.guard.require(ctx, input.PetID, input.UploaderID, domain.PetRoleEditor); err != nil {
		return nil, err
	}
	if input.Size > s.cfg.MaxBytes {
		return nil, domain.ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(input.Body, s.cfg.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > s.cfg.MaxBytes {
		return nil, domain.ErrFileTooLarge
	}

	contentType := detectContentType(data)
	if !input.Variant.Accepts(contentType) {
		zap.L().Info("importService.Upload: rejected file type",
			zap.String("declared", input.DeclaredType), zap.String("detected", contentType))
		return nil, domain.ErrInvalidFileType
	}

	uploadID := uuid.New()
	key := fmt.Sprintf("%s/pets/%s/%s%s", input.Variant, input.PetID, uploadID, domain.ContentTypeExtensions[contentType])

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(data),
		ContentType: contentType,
		Size:        int64(len(data)),
	})
	if err != nil {
		zap.L().Error("importService.Upload: storage write failed", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	upload := &domain.Upload{
		ID:            uploadID,
		PetID:         input.PetID,
		UploadedBy:    input.UploaderID,
		Variant:       input.Variant,
		OriginalName:  input.OriginalName,
		StorageBucket: s.cfg.Bucket,
		FilePath:      key,
		MimeType:      contentType,
		FileSize:      int64(len(data)),
		MediaType:     domain.AllowedContentTypes[contentType],
		Status:        domain.UploadStatusPending,
	}
	if err := s.uploads.Create(ctx, upload); err != nil {
		if delErr := s.storage.Delete(context.WithoutCancel(ctx), s.cfg.Bucket, key); delErr != nil {
			zap.L().Warn("importService.Upload: orphaned object", zap.String("key", key), zap.Error(delErr))
		}
		return nil, fmt.Errorf("creating upload: %w", err)
	}

	zap.L().Info("importService.Upload: stored upload",
		zap.String("upload_id", upload.ID.String()),
		zap.String("variant", string(input.Variant)),
		zap.String("content_type", contentType),
		zap.Int64("size", upload.FileSize))

	if !input.Variant.AutoProcess() {
		return &ProcessResult{Upload: upload}, nil
	}
	return s.run(ctx, upload, data)
}

func (s *importService) List(ctx context.Context, petID, userID uuid.UUID, variant domain.ImportVariant, offset, limit int) ([]domain.Upload, int, error) {
	if _, err := s.guard.require(ctx, petID, userID, domain.PetRoleViewer); err != nil {
		return nil, 0, err
	}
	return s.uploads.ListByPet(ctx, petID, variant, offset, limit)
}

func (s *importService) Get(ctx context.Context, petID, userID uuid.UUID, variant domain.ImportVariant, uploadID uuid.UUID) (*domain.Upload, error) {
	if _, err := s.guard.require(ctx, petID, userID, domain.PetRoleViewer); err != nil {
		return nil, err
	}
	return s.uploads.GetByID(ctx, petID, variant, uploadID)
}

func (s *importService) Delete(ctx context.Context, petID, userID uuid.UUID, variant domain.ImportVariant, uploadID uuid.UUID) error {
	if _, err := s.guard.require(ctx, petID, userID, domain.PetRoleEditor); err != nil {
		return err
	}
	upload, err := s.uploads.GetByID(ctx, petID, variant, uploadID)
	if err != nil {
		return err
	}
	if upload.Status.InFlight() {
		return domain.ErrUploadInProgress
	}

	if err := s.storage.Delete(ctx, upload.StorageBucket, upload.FilePath); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return s.uploads.Delete(ctx, petID, variant, uploadID)
}

func (s *importService) DownloadURL(ctx context.Context, petID, userID uuid.UUID, variant domain.ImportVariant, uploadID uuid.UUID) (string, error) {
	if _, err := s.guard.require(ctx, petID, userID, domain.PetRoleViewer); err != nil {
		return "", err
	}
	upload, err := s.uploads.GetByID(ctx, petID, variant, uploadID)
	if err != nil {
		return "", err
	}
	url, err := s.storage.GetPresignedURL(ctx, upload.StorageBucket, upload.FilePath, s.cfg.PresignExpiry)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return url, nil
}

func (s *importService) Process(ctx context.Context, petID, userID uuid.UUID, variant domain.ImportVariant, uploadID uuid.UUID) (*ProcessResult, error) {
	if _, err := s.guard.require(ctx, petID, userID, domain.PetRoleEditor); err != nil {
		return nil, err
	}
	upload, err := s.uploads.GetByID(ctx, petID, variant, uploadID)
	if err != nil {
		return nil, err
	}

	switch {
	case upload.Status == domain.UploadStatusCompleted:
		ex, err := s.extractions.GetByUploadID(ctx, upload.ID)
		if err != nil {
			return nil, err
		}
		return &ProcessResult{Upload: upload, Extraction: ex, Items: ex.Items}, nil
	case upload.Status.InFlight():
		return nil, domain.ErrUploadInProgress
	case variant.AutoProcess() && upload.Status != domain.UploadStatusFailed:
		// auto-processed variants only come back through here to retry a failure
		return nil, domain.ErrProcessNotSupported
	}

	return s.run(ctx, upload, nil)
}

// run claims the upload and takes it through classification, extraction and
// persistence. On failure the upload is left failed and returned with the error.
func (s *importService) run(ctx context.Context, upload *domain.Upload, data []byte) (*ProcessResult, error) {
	claimStatus := domain.UploadStatusProcessing
	if upload.Variant.Classifies() {
		claimStatus = domain.UploadStatusClassifying
	}
	claimed, err := s.uploads.Claim(ctx, upload.ID, claimStatus)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, domain.ErrUploadInProgress
	}
	started := s.now().UTC()
	upload.Status = claimStatus
	upload.ProcessingStartedAt = &started
	upload.ErrorMessage = nil

	result := &ProcessResult{Upload: upload}
	if err := s.analyze(ctx, result, data); err != nil {
		s.fail(ctx, upload, err)
		return result, err
	}
	return result, nil
}

func (s *importService) analyze(ctx context.Context, result *ProcessResult, data []byte) error {
	upload := result.Upload
	if data == nil {
		var err error
		data, err = s.storage.Download(ctx, upload.StorageBucket, upload.FilePath)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrStorage, err)
		}
	}

	input := port.AnalyzeInput{
		FileBytes:   data,
		ContentType: upload.MimeType,
		MediaType:   upload.MediaType,
	}
	tokens := 0

	if upload.Variant.Classifies() {
		c, err := s.analyzer.Classify(ctx, input)
		if err != nil {
			return err
		}
		result.Classification = c
		tokens += c.TokensUsed
		if err := s.uploads.RecordClassification(ctx, upload.ID, c.DocumentType, c.Confidence, c.Explanation); err != nil {
			return err
		}
		upload.DetectedType = &c.DocumentType
		upload.ClassificationConfidence = &c.Confidence
		if c.Explanation != "" {
			upload.ClassificationExplanation = &c.Explanation
		}
		if err := s.uploads.SetStatus(ctx, upload.ID, domain.UploadStatusProcessing); err != nil {
			return err
		}
		upload.Status = domain.UploadStatusProcessing
		input.DocumentTypeHint = analyzer.ExtractionHint(c)
	}

	extracted, err := s.analyzer.Extract(ctx, input)
	if err != nil {
		return err
	}
	tokens += extracted.TokensUsed

	items, mapped, err := buildItems(extracted.Items)
	if err != nil {
		return err
	}
	extraction := &domain.Extraction{
		UploadID:    upload.ID,
		RawResponse: extracted.Raw,
		MappedData:  mapped,
		Model:       extracted.Model,
		TokensUsed:  tokens,
		Status:      domain.ExtractionStatusPendingReview,
	}
	// the upload is marked completed in the same transaction
	if err := s.extractions.CreateWithItems(ctx, extraction, items); err != nil {
		return fmt.Errorf("saving extraction: %w", err)
	}
	completed := s.now().UTC()
	upload.Status = domain.UploadStatusCompleted
	upload.ProcessingCompletedAt = &completed

	result.Extraction = extraction
	result.Items = extraction.Items

	zap.L().Info("importService: extraction completed",
		zap.String("upload_id", upload.ID.String()),
		zap.Int("items", len(items)),
		zap.String("model", extracted.Model),
		zap.Int("tokens", tokens))
	return nil
}

// fail records a processing failure on the upload. The write is detached from
// the request context so a cancelled request still leaves the upload failed.
func (s *importService) fail(ctx context.Context, upload *domain.Upload, cause error) {
	msg := analyzer.Truncate(cause.Error(), maxErrorMessageLen)
	zap.L().Warn("importService: processing failed",
		zap.String("upload_id", upload.ID.String()), zap.Error(cause))

	if err := s.uploads.MarkFailed(context.WithoutCancel(ctx), upload.ID, msg); err != nil {
		zap.L().Error("importService: marking upload failed", zap.String("upload_id", upload.ID.String()), zap.Error(err))
	}
	completed := s.now().UTC()
	upload.Status = domain.UploadStatusFailed
	upload.ErrorMessage = &msg
	upload.ProcessingCompletedAt = &completed
}

type mappedItem struct {
	RecordType domain.RecordType `json:"record_type"`
	Data       map[string]any    `json:"data"`
	Confidence float64           `json:"confidence"`
}

// buildItems runs each extracted item through the field mapper.
func buildItems(extracted []port.ExtractedItem) ([]domain.ExtractionItem, json.RawMessage, error) {
	items := make([]domain.ExtractionItem, 0, len(extracted))
	summary := make([]mappedItem, 0, len(extracted))
	for _, e := range extracted {
		fields, err := healthrecord.Map(e.RecordType, e.Data)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", domain.ErrExtractionParse, err)
		}
		data, err := json.Marshal(fields)
		if err != nil {
			return nil, nil, fmt.Errorf("marshaling item: %w", err)
		}
		items = append(items, domain.ExtractionItem{
			RecordType:      e.RecordType,
			ExtractedData:   data,
			ConfidenceScore: e.Confidence,
			Status:          domain.ItemStatusPending,
		})
		summary = append(summary, mappedItem{RecordType: e.RecordType, Data: fields, Confidence: e.Confidence})
	}
	mapped, err := json.Marshal(summary)
	if err != nil {
		return nil, nil, fmt.Errorf("marshaling mapped data: %w", err)
	}
	return items, mapped, nil
}

// detectContentType sniffs the leading bytes, ignoring any declared type.
func detectContentType(data []byte) string {
	ct, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	return ct
}
