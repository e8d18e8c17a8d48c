package domain

import "strings"

// ImportVariant identifies one of the upload routes that feed the import pipeline.
type ImportVariant string

const (
	VariantPDFImport   ImportVariant = "pdf-import"
	VariantPhotoImport ImportVariant = "photo-import"
	VariantDocuments   ImportVariant = "documents"
)

// ParseImportVariant maps a route segment to an ImportVariant.
func ParseImportVariant(s string) (ImportVariant, error) {
	switch v := ImportVariant(strings.ToLower(s)); v {
	case VariantPDFImport, VariantPhotoImport, VariantDocuments:
		return v, nil
	default:
		return "", ErrUnknownImportVariant
	}
}

// Source returns the audit source tag for records created through this variant.
func (v ImportVariant) Source() AuditSource {
	switch v {
	case VariantPDFImport:
		return AuditSourcePDFImport
	case VariantPhotoImport:
		return AuditSourceImageImport
	default:
		return AuditSourceDocumentImport
	}
}

// Classifies reports whether the variant runs a classification call before extraction.
func (v ImportVariant) Classifies() bool {
	return v == VariantDocuments
}

// AutoProcess reports whether uploads are processed inline on intake.
func (v ImportVariant) AutoProcess() bool {
	return v == VariantDocuments
}

// Accepts reports whether a detected content type may be uploaded through the variant.
func (v ImportVariant) Accepts(contentType string) bool {
	mt, ok := AllowedContentTypes[contentType]
	if !ok {
		return false
	}
	switch v {
	case VariantPDFImport:
		return mt == MediaTypePDF
	case VariantPhotoImport:
		return mt == MediaTypeImage
	case VariantDocuments:
		return true
	default:
		return false
	}
}

// MediaType is the coarse kind of an uploaded file.
type MediaType string

const (
	MediaTypePDF   MediaType = "pdf"
	MediaTypeImage MediaType = "image"
)

// AllowedContentTypes maps accepted MIME content types to their media type.
var AllowedContentTypes = map[string]MediaType{
	"application/pdf": MediaTypePDF,
	"image/jpeg":      MediaTypeImage,
	"image/png":       MediaTypeImage,
	"image/webp":      MediaTypeImage,
	"image/gif":       MediaTypeImage,
}

// ContentTypeExtensions maps accepted MIME content types to the stored file extension.
var ContentTypeExtensions = map[string]string{
	"application/pdf": ".pdf",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"image/gif":       ".gif",
}

// UploadStatus represents the processing lifecycle of an upload.
type UploadStatus string

const (
	UploadStatusPending     UploadStatus = "pending"
	UploadStatusClassifying UploadStatus = "classifying"
	UploadStatusProcessing  UploadStatus = "processing"
	UploadStatusCompleted   UploadStatus = "completed"
	UploadStatusFailed      UploadStatus = "failed"
)

// InFlight reports whether a processing attempt currently owns the upload.
func (s UploadStatus) InFlight() bool {
	return s == UploadStatusClassifying || s == UploadStatusProcessing
}

// ExtractionStatus is the review aggregate over an extraction's items.
type ExtractionStatus string

const (
	ExtractionStatusPendingReview     ExtractionStatus = "pending_review"
	ExtractionStatusApproved          ExtractionStatus = "approved"
	ExtractionStatusRejected          ExtractionStatus = "rejected"
	ExtractionStatusPartiallyApproved ExtractionStatus = "partially_approved"
)

// ItemStatus is the review state of a single extraction item.
type ItemStatus string

const (
	ItemStatusPending  ItemStatus = "pending"
	ItemStatusModified ItemStatus = "modified"
	ItemStatusApproved ItemStatus = "approved"
	ItemStatusRejected ItemStatus = "rejected"
)

// Reviewable reports whether the item can still be edited, approved or rejected.
func (s ItemStatus) Reviewable() bool {
	return s == ItemStatusPending || s == ItemStatusModified
}

// RecordType names a per-pet health record category.
type RecordType string

const (
	RecordTypeVaccination      RecordType = "vaccination"
	RecordTypeMedication       RecordType = "medication"
	RecordTypeCondition        RecordType = "condition"
	RecordTypeAllergy          RecordType = "allergy"
	RecordTypeVet              RecordType = "vet"
	RecordTypeEmergencyContact RecordType = "emergency_contact"
)

// RecordTypes lists every health record category in display order.
var RecordTypes = []RecordType{
	RecordTypeVaccination,
	RecordTypeMedication,
	RecordTypeCondition,
	RecordTypeAllergy,
	RecordTypeVet,
	RecordTypeEmergencyContact,
}

// ValidRecordTypes is the set form of RecordTypes.
var ValidRecordTypes = map[RecordType]bool{
	RecordTypeVaccination:      true,
	RecordTypeMedication:       true,
	RecordTypeCondition:        true,
	RecordTypeAllergy:          true,
	RecordTypeVet:              true,
	RecordTypeEmergencyContact: true,
}

// ParseRecordType accepts both the singular type name and the hyphenated route form.
func ParseRecordType(s string) (RecordType, error) {
	rt := RecordType(strings.ReplaceAll(strings.ToLower(s), "-", "_"))
	if !ValidRecordTypes[rt] {
		return "", ErrInvalidRecordType
	}
	return rt, nil
}

// AuditAction is the kind of change an audit entry records.
type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

// ValidAuditActions is the set of accepted audit action filters.
var ValidAuditActions = map[AuditAction]bool{
	AuditActionCreate: true,
	AuditActionUpdate: true,
	AuditActionDelete: true,
}

// AuditSource tells where a change originated.
type AuditSource string

const (
	AuditSourceManual         AuditSource = "manual"
	AuditSourcePDFImport      AuditSource = "pdf_import"
	AuditSourceImageImport    AuditSource = "image_import"
	AuditSourceDocumentImport AuditSource = "document_import"
)

// PetRole is a user's membership level on a pet.
type PetRole string

const (
	PetRoleOwner  PetRole = "owner"
	PetRoleEditor PetRole = "editor"
	PetRoleViewer PetRole = "viewer"
)

// ValidPetRoles is the set of assignable membership roles.
var ValidPetRoles = map[PetRole]bool{
	PetRoleOwner:  true,
	PetRoleEditor: true,
	PetRoleViewer: true,
}

// PetRoleLevel returns the numeric level of a pet role for comparison.
// owner=3, editor=2, viewer=1, unknown=0.
func PetRoleLevel(r PetRole) int {
	switch r {
	case PetRoleOwner:
		return 3
	case PetRoleEditor:
		return 2
	case PetRoleViewer:
		return 1
	default:
		return 0
	}
}
