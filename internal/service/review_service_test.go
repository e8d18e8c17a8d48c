package service_test

import (
	"context"
	"encoding/json"
	"errors"
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

type reviewFixture struct {
	uploads     *mocks.MockUploadRepo
	extractions *mocks.MockExtractionRepo
	members     *mocks.MockPetMemberRepo
	svc         service.ReviewService
	petID       uuid.UUID
	userID      uuid.UUID
	upload      *domain.Upload
	extraction  *domain.Extraction
}

func newReviewFixture(variant domain.ImportVariant, items ...domain.ExtractionItem) *reviewFixture {
	f := &reviewFixture{
		uploads:     new(mocks.MockUploadRepo),
		extractions: new(mocks.MockExtractionRepo),
		members:     new(mocks.MockPetMemberRepo),
		petID:       uuid.New(),
		userID:      uuid.New(),
	}
	f.upload = &domain.Upload{ID: uuid.New(), PetID: f.petID, Variant: variant, Status: domain.UploadStatusCompleted}
	f.extraction = &domain.Extraction{ID: uuid.New(), UploadID: f.upload.ID, Status: domain.ExtractionStatusPendingReview}
	for i := range items {
		items[i].ExtractionID = f.extraction.ID
	}
	f.extraction.Items = items

	grantRole(f.members, f.petID, f.userID, domain.PetRoleEditor)
	f.uploads.On("GetByID", mock.Anything, f.petID, variant, f.upload.ID).Return(f.upload, nil)
	f.extractions.On("GetByUploadID", mock.Anything, f.upload.ID).Return(f.extraction, nil)
	f.svc = service.NewReviewService(f.uploads, f.extractions, f.members)
	return f
}

func (f *reviewFixture) input(variant domain.ImportVariant, ids ...uuid.UUID) service.ReviewInput {
	return service.ReviewInput{
		PetID:     f.petID,
		UserID:    f.userID,
		Variant:   variant,
		UploadID:  f.upload.ID,
		ItemIDs:   ids,
		IPAddress: "203.0.113.7",
		UserAgent: "test-agent",
	}
}

// expectStatus stubs the post-batch recompute with the item statuses after the batch.
func (f *reviewFixture) expectStatus(want domain.ExtractionStatus, after ...domain.ItemStatus) {
	items := make([]domain.ExtractionItem, len(after))
	for i, s := range after {
		items[i].Status = s
	}
	f.extractions.On("ListItems", mock.Anything, f.extraction.ID).Return(items, nil)
	if want == domain.ExtractionStatusPendingReview {
		f.extractions.On("UpdateStatus", mock.Anything, f.extraction.ID, want, (*uuid.UUID)(nil), mock.Anything).Return(nil)
		return
	}
	f.extractions.On("UpdateStatus", mock.Anything, f.extraction.ID, want, &f.userID, mock.AnythingOfType("*time.Time")).Return(nil)
}

// stored returns a copy of the i-th item as the repository would load it.
func (f *reviewFixture) stored(i int) *domain.ExtractionItem {
	it := f.extraction.Items[i]
	return &it
}

func item(rt domain.RecordType, data string) domain.ExtractionItem {
	return domain.ExtractionItem{
		ID:            uuid.New(),
		RecordType:    rt,
		ExtractedData: json.RawMessage(data),
		Status:        domain.ItemStatusPending,
	}
}

func TestReviewService_Approve_CreatesRecordWithImportAudit(t *testing.T) {
	rabies := item(domain.RecordTypeVaccination, `{"name":"Rabies","administered_date":"2024-01-15"}`)
	f := newReviewFixture(domain.VariantPhotoImport, rabies)

	var saved port.ApproveItemInput
	f.extractions.On("ApproveItem", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(port.ApproveItemInput) }).
		Return(nil)
	f.expectStatus(domain.ExtractionStatusApproved, domain.ItemStatusApproved)

	result, err := f.svc.Approve(context.Background(), f.input(domain.VariantPhotoImport, rabies.ID))

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{rabies.ID}, result.Approved)
	assert.Empty(t, result.Errors)
	assert.NotNil(t, result.Rejected)
	assert.Equal(t, domain.ExtractionStatusApproved, result.Status)

	assert.Equal(t, rabies.ID, saved.ItemID)
	assert.Equal(t, f.petID, saved.Record.PetID)
	assert.Equal(t, domain.RecordTypeVaccination, saved.Record.RecordType)
	assert.Equal(t, "Rabies", saved.Record.Fields["name"])
	assert.Equal(t, "2024-01-15", saved.Record.Fields["administered_date"])

	audit := saved.Audit
	assert.Equal(t, domain.AuditActionCreate, audit.Action)
	assert.Equal(t, domain.AuditSourceImageImport, audit.Source)
	assert.Equal(t, f.upload.ID, *audit.SourceUploadID)
	assert.Equal(t, "vaccination", audit.EntityType)
	assert.Equal(t, "203.0.113.7", *audit.IPAddress)
	assert.Nil(t, audit.OldValues)
	assert.JSONEq(t, `["administered_date","name"]`, string(audit.ChangedFields))
	f.extractions.AssertExpectations(t)
}

func TestReviewService_Approve_MissingRequiredFieldLandsInErrors(t *testing.T) {
	noDate := item(domain.RecordTypeVaccination, `{"name":"Rabies"}`)
	f := newReviewFixture(domain.VariantPDFImport, noDate)
	f.expectStatus(domain.ExtractionStatusPendingReview, domain.ItemStatusPending)

	result, err := f.svc.Approve(context.Background(), f.input(domain.VariantPDFImport, noDate.ID))

	require.NoError(t, err)
	assert.Empty(t, result.Approved)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, noDate.ID, result.Errors[0].ItemID)
	assert.Contains(t, result.Errors[0].Error, "administered_date")
	assert.Equal(t, domain.ExtractionStatusPendingReview, result.Status)
	f.extractions.AssertNotCalled(t, "ApproveItem", mock.Anything, mock.Anything)
}

func TestReviewService_Approve_UsesModifiedData(t *testing.T) {
	med := item(domain.RecordTypeMedication, `{"name":"Apoquel"}`)
	modified := json.RawMessage(`{"name":"Apoquel","dosage":"16mg"}`)
	med.UserModifiedData = &modified
	med.Status = domain.ItemStatusModified
	f := newReviewFixture(domain.VariantPDFImport, med)

	f.extractions.On("ApproveItem", mock.Anything, mock.MatchedBy(func(in port.ApproveItemInput) bool {
		return in.Record.Fields["dosage"] == "16mg" && in.Audit.Source == domain.AuditSourcePDFImport
	})).Return(nil)
	f.expectStatus(domain.ExtractionStatusApproved, domain.ItemStatusApproved)

	result, err := f.svc.Approve(context.Background(), f.input(domain.VariantPDFImport, med.ID))

	require.NoError(t, err)
	assert.Len(t, result.Approved, 1)
	f.extractions.AssertExpectations(t)
}

func TestReviewService_Approve_PerItemIsolation(t *testing.T) {
	good := item(domain.RecordTypeAllergy, `{"allergen":"chicken"}`)
	done := item(domain.RecordTypeAllergy, `{"allergen":"beef"}`)
	done.Status = domain.ItemStatusApproved
	failing := item(domain.RecordTypeAllergy, `{"allergen":"pollen"}`)
	stranger := uuid.New()
	f := newReviewFixture(domain.VariantPDFImport, good, done, failing)

	f.extractions.On("ApproveItem", mock.Anything, mock.MatchedBy(func(in port.ApproveItemInput) bool {
		return in.ItemID == good.ID
	})).Return(nil)
	f.extractions.On("ApproveItem", mock.Anything, mock.MatchedBy(func(in port.ApproveItemInput) bool {
		return in.ItemID == failing.ID
	})).Return(errors.New("connection reset"))
	f.expectStatus(domain.ExtractionStatusPartiallyApproved,
		domain.ItemStatusApproved, domain.ItemStatusApproved, domain.ItemStatusPending)

	result, err := f.svc.Approve(context.Background(),
		f.input(domain.VariantPDFImport, good.ID, done.ID, failing.ID, stranger))

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{good.ID}, result.Approved)
	require.Len(t, result.Errors, 3)

	byID := map[uuid.UUID]string{}
	for _, e := range result.Errors {
		byID[e.ItemID] = e.Error
	}
	assert.Equal(t, domain.ErrItemResolved.Error(), byID[done.ID])
	assert.Equal(t, "failed to save record", byID[failing.ID])
	assert.Equal(t, domain.ErrItemNotFound.Error(), byID[stranger])
}

func TestReviewService_ApproveOneRejectOther_PartiallyApproved(t *testing.T) {
	first := item(domain.RecordTypeCondition, `{"name":"Arthritis"}`)
	second := item(domain.RecordTypeCondition, `{"name":"Otitis"}`)
	f := newReviewFixture(domain.VariantDocuments, first, second)

	f.extractions.On("ApproveItem", mock.Anything, mock.Anything).Return(nil)
	f.extractions.On("RejectItem", mock.Anything, second.ID).Return(nil)
	f.extractions.On("ListItems", mock.Anything, f.extraction.ID).
		Return([]domain.ExtractionItem{{Status: domain.ItemStatusApproved}, {Status: domain.ItemStatusPending}}, nil).Once()
	f.extractions.On("ListItems", mock.Anything, f.extraction.ID).
		Return([]domain.ExtractionItem{{Status: domain.ItemStatusApproved}, {Status: domain.ItemStatusRejected}}, nil).Once()
	f.extractions.On("UpdateStatus", mock.Anything, f.extraction.ID, domain.ExtractionStatusPartiallyApproved, &f.userID, mock.Anything).Return(nil)

	approved, err := f.svc.Approve(context.Background(), f.input(domain.VariantDocuments, first.ID))
	require.NoError(t, err)
	assert.Equal(t, domain.ExtractionStatusPartiallyApproved, approved.Status)

	rejected, err := f.svc.Reject(context.Background(), f.input(domain.VariantDocuments, second.ID))
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{second.ID}, rejected.Rejected)
	assert.Equal(t, domain.ExtractionStatusPartiallyApproved, rejected.Status)
	f.extractions.AssertNumberOfCalls(t, "UpdateStatus", 2)
}

func TestReviewService_Reject_NeverCreatesRecords(t *testing.T) {
	a := item(domain.RecordTypeVet, `{"clinic_name":"Happy Paws"}`)
	resolved := item(domain.RecordTypeVet, `{"vet_name":"Dr. Lee"}`)
	resolved.Status = domain.ItemStatusRejected
	f := newReviewFixture(domain.VariantPDFImport, a, resolved)

	f.extractions.On("RejectItem", mock.Anything, a.ID).Return(nil)
	f.expectStatus(domain.ExtractionStatusRejected, domain.ItemStatusRejected, domain.ItemStatusRejected)

	result, err := f.svc.Reject(context.Background(), f.input(domain.VariantPDFImport, a.ID, resolved.ID))

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a.ID}, result.Rejected)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, resolved.ID, result.Errors[0].ItemID)
	assert.Equal(t, domain.ExtractionStatusRejected, result.Status)
	f.extractions.AssertNotCalled(t, "ApproveItem", mock.Anything, mock.Anything)
}

func TestReviewService_Approve_ViewerForbidden(t *testing.T) {
	f := newReviewFixture(domain.VariantPDFImport)
	viewer := uuid.New()
	grantRole(f.members, f.petID, viewer, domain.PetRoleViewer)

	in := f.input(domain.VariantPDFImport, uuid.New())
	in.UserID = viewer
	_, err := f.svc.Approve(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReviewService_UpdateItem(t *testing.T) {
	vax := item(domain.RecordTypeVaccination, `{"name":"Rabies"}`)
	f := newReviewFixture(domain.VariantPDFImport, vax)

	f.extractions.On("GetItem", mock.Anything, vax.ID).Return(f.stored(0), nil)
	f.extractions.On("GetByID", mock.Anything, f.extraction.ID).Return(f.extraction, nil)
	f.extractions.On("ModifyItem", mock.Anything, vax.ID, mock.MatchedBy(func(data json.RawMessage) bool {
		var m map[string]any
		return json.Unmarshal(data, &m) == nil && m["administered_date"] == "2024-01-15" && m["vaccine"] == nil
	})).Return(nil)

	updated, err := f.svc.UpdateItem(context.Background(), service.UpdateItemInput{
		PetID:   f.petID,
		UserID:  f.userID,
		Variant: domain.VariantPDFImport,
		ItemID:  vax.ID,
		ModifiedData: map[string]any{
			"name":              "Rabies",
			"date_administered": "2024-01-15T00:00:00Z",
			"vaccine":           "ignored alias",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, vax.ID, updated.ID)
	assert.Equal(t, f.extraction.ID, updated.ExtractionID)
	assert.Equal(t, domain.ItemStatusModified, updated.Status)
	require.NotNil(t, updated.UserModifiedData)

	var saved map[string]any
	require.NoError(t, json.Unmarshal(*updated.UserModifiedData, &saved))
	assert.Equal(t, "Rabies", saved["name"])
	assert.Equal(t, "2024-01-15", saved["administered_date"])
	assert.NotContains(t, saved, "vaccine")
	f.extractions.AssertExpectations(t)
	f.uploads.AssertCalled(t, "GetByID", mock.Anything, f.petID, domain.VariantPDFImport, f.upload.ID)
}

func TestReviewService_UpdateItem_Resolved(t *testing.T) {
	vax := item(domain.RecordTypeVaccination, `{"name":"Rabies"}`)
	vax.Status = domain.ItemStatusApproved
	f := newReviewFixture(domain.VariantPDFImport, vax)

	f.extractions.On("GetItem", mock.Anything, vax.ID).Return(f.stored(0), nil)
	f.extractions.On("GetByID", mock.Anything, f.extraction.ID).Return(f.extraction, nil)

	_, err := f.svc.UpdateItem(context.Background(), service.UpdateItemInput{
		PetID: f.petID, UserID: f.userID, Variant: domain.VariantPDFImport, ItemID: vax.ID,
		ModifiedData: map[string]any{"name": "DHPP"},
	})
	assert.ErrorIs(t, err, domain.ErrItemResolved)
}

func TestReviewService_UpdateItem_OtherPetsItem(t *testing.T) {
	f := newReviewFixture(domain.VariantPDFImport)
	foreignExtraction := &domain.Extraction{ID: uuid.New(), UploadID: uuid.New()}
	foreign := item(domain.RecordTypeAllergy, `{"allergen":"wheat"}`)
	foreign.ExtractionID = foreignExtraction.ID

	f.extractions.On("GetItem", mock.Anything, foreign.ID).Return(&foreign, nil)
	f.extractions.On("GetByID", mock.Anything, foreignExtraction.ID).Return(foreignExtraction, nil)
	f.uploads.On("GetByID", mock.Anything, f.petID, domain.VariantPDFImport, foreignExtraction.UploadID).
		Return(nil, domain.ErrUploadNotFound)

	_, err := f.svc.UpdateItem(context.Background(), service.UpdateItemInput{
		PetID: f.petID, UserID: f.userID, Variant: domain.VariantPDFImport, ItemID: foreign.ID,
		ModifiedData: map[string]any{"allergen": "rye"},
	})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
