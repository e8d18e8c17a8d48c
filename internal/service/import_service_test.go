package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"petvault/internal/domain"
	"petvault/internal/port"
	"petvault/internal/service"
	"petvault/mocks"
)

var (
	pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n%%EOF\n")
	pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)
)

type importFixture struct {
	uploads     *mocks.MockUploadRepo
	extractions *mocks.MockExtractionRepo
	members     *mocks.MockPetMemberRepo
	storage     *mocks.MockObjectStorage
	analyzer    *mocks.MockDocumentAnalyzer
	svc         service.ImportService
	petID       uuid.UUID
	userID      uuid.UUID
}

func newImportFixture(role domain.PetRole) *importFixture {
	f := &importFixture{
		uploads:     new(mocks.MockUploadRepo),
		extractions: new(mocks.MockExtractionRepo),
		members:     new(mocks.MockPetMemberRepo),
		storage:     new(mocks.MockObjectStorage),
		analyzer:    new(mocks.MockDocumentAnalyzer),
		petID:       uuid.New(),
		userID:      uuid.New(),
	}
	grantRole(f.members, f.petID, f.userID, role)
	f.svc = service.NewImportService(f.uploads, f.extractions, f.members, f.storage, f.analyzer, service.ImportConfig{
		Bucket:        "petvault-test",
		MaxBytes:      1024,
		PresignExpiry: 600,
	})
	return f
}

func (f *importFixture) uploadInput(variant domain.ImportVariant, data []byte) service.UploadInput {
	return service.UploadInput{
		Variant:      variant,
		PetID:        f.petID,
		UploaderID:   f.userID,
		OriginalName: "card",
		DeclaredType: "application/octet-stream",
		Size:         int64(len(data)),
		Body:         bytes.NewReader(data),
	}
}

// expectSavedExtraction assigns ids the way the repository would.
func (f *importFixture) expectSavedExtraction() {
	f.extractions.On("CreateWithItems", mock.Anything, mock.AnythingOfType("*domain.Extraction"), mock.Anything).
		Run(func(args mock.Arguments) {
			ex := args.Get(1).(*domain.Extraction)
			items := args.Get(2).([]domain.ExtractionItem)
			ex.ID = uuid.New()
			for i := range items {
				items[i].ID = uuid.New()
				items[i].ExtractionID = ex.ID
			}
			ex.Items = items
		}).Return(nil)
}

func TestImportService_Upload_PDFStoredPending(t *testing.T) {
	f := newImportFixture(domain.PetRoleEditor)

	f.storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "petvault-test" &&
			strings.HasPrefix(in.Key, "pdf-import/pets/"+f.petID.String()+"/") &&
			strings.HasSuffix(in.Key, ".pdf") &&
			in.ContentType == "application/pdf"
	})).Return(&port.UploadOutput{Location: "s3://x"}, nil)
	f.uploads.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.Upload) bool {
		return u.Status == domain.UploadStatusPending && u.MediaType == domain.MediaTypePDF
	})).Return(nil)

	result, err := f.svc.Upload(context.Background(), f.uploadInput(domain.VariantPDFImport, pdfBytes))

	require.NoError(t, err)
	assert.Equal(t, domain.UploadStatusPending, result.Upload.Status)
	assert.Nil(t, result.Extraction)
	f.analyzer.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
	f.storage.AssertExpectations(t)
	f.uploads.AssertExpectations(t)
}

func TestImportService_Upload_SniffsContentNotDeclaredType(t *testing.T) {
	f := newImportFixture(domain.PetRoleEditor)

	input := f.uploadInput(domain.VariantPDFImport, pngBytes)
	input.DeclaredType = "application/pdf"

	_, err := f.svc.Upload(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrInvalidFileType)
	f.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestImportService_Upload_TooLarge(t *testing.T) {
	f := newImportFixture(domain.PetRoleEditor)

	big := append(append([]byte{}, pdfBytes...), make([]byte, 2048)...)
	input := f.uploadInput(domain.VariantPDFImport, big)
	input.Size = 10 // a lying header must not get past the read limit

	_, err := f.svc.Upload(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestImportService_Upload_ViewerForbidden(t *testing.T) {
	f := newImportFixture(domain.PetRoleViewer)

	_, err := f.svc.Upload(context.Background(), f.uploadInput(domain.VariantPDFImport, pdfBytes))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestImportService_Upload_StorageFailureLeavesNoRow(t *testing.T) {
	f := newImportFixture(domain.PetRoleEditor)
	f.storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("bucket gone"))

	_, err := f.svc.Upload(context.Background(), f.uploadInput(domain.VariantPDFImport, pdfBytes))

	assert.ErrorIs(t, err, domain.ErrStorage)
	f.uploads.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestImportService_Upload_RowFailureRemovesObject(t *testing.T) {
	f := newImportFixture(domain.PetRoleEditor)
	f.storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{}, nil)
	f.uploads.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))
	f.storage.On("Delete", mock.Anything, "petvault-test", mock.AnythingOfType("string")).Return(nil)

	_, err := f.svc.Upload(context.Background(), f.uploadInput(domain.VariantPDFImport, pdfBytes))

	assert.Error(t, err)
	f.storage.AssertCalled(t, "Delete", mock.Anything, "petvault-test", mock.AnythingOfType("string"))
}

func TestImportService_Upload_DocumentsClassifiesAndExtracts(t *testing.T) {
	f := newImportFixture(domain.PetRoleEditor)

	f.storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{}, nil)
	f.uploads.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.uploads.On("Claim", mock.Anything, mock.Anything, domain.UploadStatusClassifying).Return(true, nil)
	f.analyzer.On("Classify", mock.Anything, mock.MatchedBy(func(in port.AnalyzeInput) bool {
		return in.MediaType == domain.MediaTypeImage && in.ContentType == "image/png"
	})).Return(&port.Classification{DocumentType: "vaccination_record", Confidence: 92, TokensUsed: 10}, nil)
	f.uploads.On("RecordClassification", mock.Anything, mock.Anything, "vaccination_record", 92, "").Return(nil)
	f.uploads.On("SetStatus", mock.Anything, mock.Anything, domain.UploadStatusProcessing).Return(nil)
	f.analyzer.On("Extract", mock.Anything, mock.MatchedBy(func(in port.AnalyzeInput) bool {
		return in.DocumentTypeHint == "vaccination_record"
	})).Return(&port.ExtractionResult{
		Items: []port.ExtractedItem{{
			RecordType: domain.RecordTypeVaccination,
			Data:       map[string]any{"name": "Rabies", "administered_date": "2024-01-15"},
			Confidence: 0.95,
		}},
		Model:      "claude-test",
		TokensUsed: 40,
		Raw:        `{"items":[]}`,
	}, nil)
	f.expectSavedExtraction()

	result, err := f.svc.Upload(context.Background(), f.uploadInput(domain.VariantDocuments, pngBytes))

	require.NoError(t, err)
	assert.Equal(t, domain.UploadStatusCompleted, result.Upload.Status)
	assert.NotNil(t, result.Upload.ProcessingCompletedAt)
	assert.Equal(t, "vaccination_record", *result.Upload.DetectedType)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 50, result.Extraction.TokensUsed)
	assert.Equal(t, domain.ExtractionStatusPendingReview, result.Extraction.Status)

	var data map[string]any
	require.NoError(t, json.Unmarshal(result.Items[0].ExtractedData, &data))
	assert.Equal(t, "Rabies", data["name"])
	assert.Equal(t, "2024-01-15", data["administered_date"])
	assert.Contains(t, data, "lot_number")

	f.storage.AssertNotCalled(t, "Download", mock.Anything, mock.Anything, mock.Anything)
	f.uploads.AssertExpectations(t)
	f.analyzer.AssertExpectations(t)
}

func TestImportService_Upload_LowConfidenceClassificationGivesNoHint(t *testing.T) {
	f := newImportFixture(domain.PetRoleEditor)

	f.storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{}, nil)
	f.uploads.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.uploads.On("Claim", mock.Anything, mock.Anything, domain.UploadStatusClassifying).Return(true, nil)
	f.analyzer.On("Classify", mock.Anything, mock.Anything).
		Return(&port.Classification{DocumentType: "lab_result", Confidence: 20, Explanation: "blurry"}, nil)
	f.uploads.On("RecordClassification", mock.Anything, mock.Anything, "lab_result", 20, "blurry").Return(nil)
	f.uploads.On("SetStatus", mock.Anything, mock.Anything, domain.UploadStatusProcessing).Return(nil)
	f.analyzer.On("Extract", mock.Anything, mock.MatchedBy(func(in port.AnalyzeInput) bool {
		return in.DocumentTypeHint == ""
	})).Return(&port.ExtractionResult{Items: []port.ExtractedItem{}}, nil)
	f.expectSavedExtraction()

	result, err := f.svc.Upload(context.Background(), f.uploadInput(domain.VariantDocuments, pdfBytes))

	require.NoError(t, err)
	assert.Empty(t, result.Items)
	f.analyzer.AssertExpectations(t)
}

func (f *importFixture) storedUpload(variant domain.ImportVariant, status domain.UploadStatus) *domain.Upload {
	return &domain.Upload{
		ID:            uuid.New(),
		PetID:         f.petID,
		Variant:       variant,
		StorageBucket: "petvault-test",
		FilePath:      "key",
		MimeType:      "image/png",
		MediaType:     domain.MediaTypeImage,
		Status:        status,
	}
}

func TestImportService_Process_LLMTimeoutThenRetry(t *testing.T) {
	f := newImportFixture(domain.PetRoleEditor)
	upload := f.storedUpload(domain.VariantPhotoImport, domain.UploadStatusPending)

	f.uploads.On("GetByID", mock.Anything, f.petID, domain.VariantPhotoImport, upload.ID).Return(upload, nil)
	f.uploads.On("Claim", mock.Anything, upload.ID, domain.UploadStatusProcessing).Return(true, nil)
	f.storage.On("Download", mock.Anything, "petvault-test", "key").Return(pngBytes, nil)
	f.analyzer.On("Extract", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: context deadline exceeded", domain.ErrExternalService)).Once()
	f.uploads.On("MarkFailed", mock.Anything, upload.ID, mock.MatchedBy(func(msg string) bool {
		return strings.Contains(msg, "deadline exceeded")
	})).Return(nil)

	result, err := f.svc.Process(context.Background(), f.petID, f.userID, domain.VariantPhotoImport, upload.ID)

	assert.ErrorIs(t, err, domain.ErrExternalService)
	require.NotNil(t, result)
	assert.Equal(t, domain.UploadStatusFailed, result.Upload.Status)
	assert.NotNil(t, result.Upload.ErrorMessage)
	assert.NotNil(t, result.Upload.ProcessingCompletedAt)
	assert.Nil(t, result.Extraction)
	f.extractions.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything, mock.Anything)

	// the failed upload can be processed again
	f.analyzer.On("Extract", mock.Anything, mock.Anything).Return(&port.ExtractionResult{
		Items: []port.ExtractedItem{{RecordType: domain.RecordTypeAllergy, Data: map[string]any{"allergen": "chicken"}, Confidence: 0.8}},
	}, nil).Once()
	f.expectSavedExtraction()

	result, err = f.svc.Process(context.Background(), f.petID, f.userID, domain.VariantPhotoImport, upload.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.UploadStatusCompleted, result.Upload.Status)
	assert.Nil(t, result.Upload.ErrorMessage)
	assert.Len(t, result.Items, 1)
	f.uploads.AssertNumberOfCalls(t, "Claim", 2)
}

func TestImportService_Process_CompletedIsIdempotent(t *testing.T) {
	f := newImportFixture(domain.PetRoleEditor)
	upload := f.storedUpload(domain.VariantPDFImport, domain.UploadStatusCompleted)
	existing := &domain.Extraction{ID: uuid.New(), UploadID: upload.ID, Items: []domain.ExtractionItem{{ID: uuid.New()}}}

	f.uploads.On("GetByID", mock.Anything, f.petID, domain.VariantPDFImport, upload.ID).Return(upload, nil)
	f.extractions.On("GetByUploadID", mock.Anything, upload.ID).Return(existing, nil)

	result, err := f.svc.Process(context.Background(), f.petID, f.userID, domain.VariantPDFImport, upload.ID)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, result.Extraction.ID)
	f.uploads.AssertNotCalled(t, "Claim", mock.Anything, mock.Anything, mock.Anything)
	f.extractions.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestImportService_Process_InFlightRejected(t *testing.T) {
	f := newImportFixture(domain.PetRoleEditor)
	upload := f.storedUpload(domain.VariantPDFImport, domain.UploadStatusProcessing)
	f.uploads.On("GetByID", mock.Anything, f.petID, domain.VariantPDFImport, upload.ID).Return(upload, nil)

	_, err := f.svc.Process(context.Background(), f.petID, f.userID, domain.VariantPDFImport, upload.ID)
	assert.ErrorIs(t, err, domain.ErrUploadInProgress)
}

func TestImportService_Process_LostClaimRace(t *testing.T) {
	f := newImportFixture(domain.PetRoleEditor)
	upload := f.storedUpload(domain.VariantPDFImport, domain.UploadStatusPending)
	f.uploads.On("GetByID", mock.Anything, f.petID, domain.VariantPDFImport, upload.ID).Return(upload, nil)
	f.uploads.On("Claim", mock.Anything, upload.ID, domain.UploadStatusProcessing).Return(false, nil)

	_, err := f.svc.Process(context.Background(), f.petID, f.userID, domain.VariantPDFImport, upload.ID)

	assert.ErrorIs(t, err, domain.ErrUploadInProgress)
	f.storage.AssertNotCalled(t, "Download", mock.Anything, mock.Anything, mock.Anything)
}

func TestImportService_Process_DocumentsOnlyRetriesFailures(t *testing.T) {
	f := newImportFixture(domain.PetRoleEditor)
	upload := f.storedUpload(domain.VariantDocuments, domain.UploadStatusPending)
	f.uploads.On("GetByID", mock.Anything, f.petID, domain.VariantDocuments, upload.ID).Return(upload, nil)

	_, err := f.svc.Process(context.Background(), f.petID, f.userID, domain.VariantDocuments, upload.ID)
	assert.ErrorIs(t, err, domain.ErrProcessNotSupported)
}

func TestImportService_Process_UnknownItemTypeFails(t *testing.T) {
	f := newImportFixture(domain.PetRoleEditor)
	upload := f.storedUpload(domain.VariantPhotoImport, domain.UploadStatusPending)

	f.uploads.On("GetByID", mock.Anything, f.petID, domain.VariantPhotoImport, upload.ID).Return(upload, nil)
	f.uploads.On("Claim", mock.Anything, upload.ID, domain.UploadStatusProcessing).Return(true, nil)
	f.storage.On("Download", mock.Anything, "petvault-test", "key").Return(pngBytes, nil)
	f.analyzer.On("Extract", mock.Anything, mock.Anything).Return(&port.ExtractionResult{
		Items: []port.ExtractedItem{{RecordType: "surgery", Data: map[string]any{}}},
	}, nil)
	f.uploads.On("MarkFailed", mock.Anything, upload.ID, mock.Anything).Return(nil)

	result, err := f.svc.Process(context.Background(), f.petID, f.userID, domain.VariantPhotoImport, upload.ID)

	assert.ErrorIs(t, err, domain.ErrExtractionParse)
	assert.Equal(t, domain.UploadStatusFailed, result.Upload.Status)
}

func TestImportService_Process_SaveFailureLeavesNoExtraction(t *testing.T) {
	f := newImportFixture(domain.PetRoleEditor)
	upload := f.storedUpload(domain.VariantPhotoImport, domain.UploadStatusPending)
	extracted := &port.ExtractionResult{
		Items: []port.ExtractedItem{{RecordType: domain.RecordTypeAllergy, Data: map[string]any{"allergen": "beef"}, Confidence: 0.7}},
	}

	f.uploads.On("GetByID", mock.Anything, f.petID, domain.VariantPhotoImport, upload.ID).Return(upload, nil)
	f.uploads.On("Claim", mock.Anything, upload.ID, domain.UploadStatusProcessing).Return(true, nil)
	f.storage.On("Download", mock.Anything, "petvault-test", "key").Return(pngBytes, nil)
	f.analyzer.On("Extract", mock.Anything, mock.Anything).Return(extracted, nil)
	f.extractions.On("CreateWithItems", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("conn reset")).Once()
	f.uploads.On("MarkFailed", mock.Anything, upload.ID, mock.Anything).Return(nil)

	result, err := f.svc.Process(context.Background(), f.petID, f.userID, domain.VariantPhotoImport, upload.ID)

	require.Error(t, err)
	assert.Equal(t, domain.UploadStatusFailed, result.Upload.Status)
	assert.Nil(t, result.Extraction)

	// the rolled back save leaves nothing behind, so a retry stores the extraction
	f.expectSavedExtraction()

	result, err = f.svc.Process(context.Background(), f.petID, f.userID, domain.VariantPhotoImport, upload.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.UploadStatusCompleted, result.Upload.Status)
	require.NotNil(t, result.Extraction)
	f.extractions.AssertNumberOfCalls(t, "CreateWithItems", 2)
}

func TestImportService_Delete(t *testing.T) {
	f := newImportFixture(domain.PetRoleEditor)
	upload := f.storedUpload(domain.VariantPDFImport, domain.UploadStatusFailed)
	f.uploads.On("GetByID", mock.Anything, f.petID, domain.VariantPDFImport, upload.ID).Return(upload, nil)
	f.storage.On("Delete", mock.Anything, "petvault-test", "key").Return(nil)
	f.uploads.On("Delete", mock.Anything, f.petID, domain.VariantPDFImport, upload.ID).Return(nil)

	require.NoError(t, f.svc.Delete(context.Background(), f.petID, f.userID, domain.VariantPDFImport, upload.ID))
	f.uploads.AssertExpectations(t)
}

func TestImportService_Delete_InFlight(t *testing.T) {
	f := newImportFixture(domain.PetRoleEditor)
	upload := f.storedUpload(domain.VariantDocuments, domain.UploadStatusClassifying)
	f.uploads.On("GetByID", mock.Anything, f.petID, domain.VariantDocuments, upload.ID).Return(upload, nil)

	err := f.svc.Delete(context.Background(), f.petID, f.userID, domain.VariantDocuments, upload.ID)
	assert.ErrorIs(t, err, domain.ErrUploadInProgress)
	f.storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestImportService_DownloadURL(t *testing.T) {
	f := newImportFixture(domain.PetRoleViewer)
	upload := f.storedUpload(domain.VariantPDFImport, domain.UploadStatusCompleted)
	f.uploads.On("GetByID", mock.Anything, f.petID, domain.VariantPDFImport, upload.ID).Return(upload, nil)
	f.storage.On("GetPresignedURL", mock.Anything, "petvault-test", "key", int64(600)).Return("https://signed", nil)

	url, err := f.svc.DownloadURL(context.Background(), f.petID, f.userID, domain.VariantPDFImport, upload.ID)

	require.NoError(t, err)
	assert.Equal(t, "https://signed", url)
}

func TestImportService_List_NonMember(t *testing.T) {
	f := newImportFixture(domain.PetRoleViewer)
	stranger := uuid.New()
	denyAccess(f.members, f.petID, stranger)

	_, _, err := f.svc.List(context.Background(), f.petID, stranger, domain.VariantPDFImport, 0, 20)
	assert.ErrorIs(t, err, domain.ErrPetNotFound)
}
