package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petvault/internal/domain"
)

func TestParseImportVariant(t *testing.T) {
	v, err := domain.ParseImportVariant("PDF-Import")
	require.NoError(t, err)
	assert.Equal(t, domain.VariantPDFImport, v)

	_, err = domain.ParseImportVariant("scans")
	assert.ErrorIs(t, err, domain.ErrUnknownImportVariant)
}

func TestImportVariant_Accepts(t *testing.T) {
	tests := []struct {
		variant     domain.ImportVariant
		contentType string
		want        bool
	}{
		{domain.VariantPDFImport, "application/pdf", true},
		{domain.VariantPDFImport, "image/png", false},
		{domain.VariantPhotoImport, "image/webp", true},
		{domain.VariantPhotoImport, "application/pdf", false},
		{domain.VariantDocuments, "application/pdf", true},
		{domain.VariantDocuments, "image/gif", true},
		{domain.VariantDocuments, "text/plain", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.variant)+"_"+tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.variant.Accepts(tt.contentType))
		})
	}
}

func TestImportVariant_Source(t *testing.T) {
	assert.Equal(t, domain.AuditSourcePDFImport, domain.VariantPDFImport.Source())
	assert.Equal(t, domain.AuditSourceImageImport, domain.VariantPhotoImport.Source())
	assert.Equal(t, domain.AuditSourceDocumentImport, domain.VariantDocuments.Source())
	assert.True(t, domain.VariantDocuments.Classifies())
	assert.False(t, domain.VariantPhotoImport.AutoProcess())
}

func TestParseRecordType(t *testing.T) {
	rt, err := domain.ParseRecordType("emergency-contact")
	require.NoError(t, err)
	assert.Equal(t, domain.RecordTypeEmergencyContact, rt)

	_, err = domain.ParseRecordType("surgery")
	assert.ErrorIs(t, err, domain.ErrInvalidRecordType)
}

func TestPetRoleLevel(t *testing.T) {
	assert.Greater(t, domain.PetRoleLevel(domain.PetRoleOwner), domain.PetRoleLevel(domain.PetRoleEditor))
	assert.Greater(t, domain.PetRoleLevel(domain.PetRoleEditor), domain.PetRoleLevel(domain.PetRoleViewer))
	assert.Equal(t, 0, domain.PetRoleLevel("admin"))
}

func TestExtractionItem_EffectiveData(t *testing.T) {
	item := domain.ExtractionItem{ExtractedData: json.RawMessage(`{"name":"Rabies"}`)}
	assert.JSONEq(t, `{"name":"Rabies"}`, string(item.EffectiveData()))

	modified := json.RawMessage(`{"name":"DHPP"}`)
	item.UserModifiedData = &modified
	assert.JSONEq(t, `{"name":"DHPP"}`, string(item.EffectiveData()))
}

func TestItemStatus_Reviewable(t *testing.T) {
	assert.True(t, domain.ItemStatusPending.Reviewable())
	assert.True(t, domain.ItemStatusModified.Reviewable())
	assert.False(t, domain.ItemStatusApproved.Reviewable())
	assert.False(t, domain.ItemStatusRejected.Reviewable())
	assert.True(t, domain.UploadStatusProcessing.InFlight())
	assert.False(t, domain.UploadStatusFailed.InFlight())
}

func TestReviewStatus(t *testing.T) {
	items := func(statuses ...domain.ItemStatus) []domain.ExtractionItem {
		out := make([]domain.ExtractionItem, len(statuses))
		for i, s := range statuses {
			out[i].Status = s
		}
		return out
	}

	tests := []struct {
		name  string
		items []domain.ExtractionItem
		want  domain.ExtractionStatus
	}{
		{"empty", nil, domain.ExtractionStatusPendingReview},
		{"none resolved", items(domain.ItemStatusPending, domain.ItemStatusModified), domain.ExtractionStatusPendingReview},
		{"all approved", items(domain.ItemStatusApproved, domain.ItemStatusApproved), domain.ExtractionStatusApproved},
		{"all rejected", items(domain.ItemStatusRejected), domain.ExtractionStatusRejected},
		{"approved and rejected", items(domain.ItemStatusApproved, domain.ItemStatusRejected), domain.ExtractionStatusPartiallyApproved},
		{"some approved", items(domain.ItemStatusApproved, domain.ItemStatusPending), domain.ExtractionStatusPartiallyApproved},
		{"some rejected", items(domain.ItemStatusModified, domain.ItemStatusRejected), domain.ExtractionStatusPartiallyApproved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ReviewStatus(tt.items))
		})
	}
}
