package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Pet is the root entity every health record and upload hangs off.
type Pet struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	OwnerID        uuid.UUID  `db:"owner_id" json:"owner_id"`
	Name           string     `db:"name" json:"name"`
	Species        string     `db:"species" json:"species"`
	Breed          *string    `db:"breed" json:"breed"`
	DateOfBirth    *time.Time `db:"date_of_birth" json:"date_of_birth"`
	EmergencyToken *string    `db:"emergency_token" json:"emergency_token,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// PetWithRole is a pet together with the caller's membership role on it.
type PetWithRole struct {
	Pet
	Role PetRole `db:"role" json:"role"`
}

// PetMember grants a user a role on a pet.
type PetMember struct {
	PetID     uuid.UUID  `db:"pet_id" json:"pet_id"`
	UserID    uuid.UUID  `db:"user_id" json:"user_id"`
	Role      PetRole    `db:"role" json:"role"`
	GrantedBy *uuid.UUID `db:"granted_by" json:"granted_by"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

// Upload is a stored source file awaiting or having undergone extraction.
type Upload struct {
	ID                        uuid.UUID     `db:"id" json:"id"`
	PetID                     uuid.UUID     `db:"pet_id" json:"pet_id"`
	UploadedBy                uuid.UUID     `db:"uploaded_by" json:"uploaded_by"`
	Variant                   ImportVariant `db:"import_variant" json:"import_variant"`
	OriginalName              string        `db:"original_name" json:"original_name"`
	StorageBucket             string        `db:"storage_bucket" json:"-"`
	FilePath                  string        `db:"file_path" json:"file_path"`
	MimeType                  string        `db:"mime_type" json:"mime_type"`
	FileSize                  int64         `db:"file_size" json:"file_size"`
	MediaType                 MediaType     `db:"media_type" json:"media_type"`
	Status                    UploadStatus  `db:"status" json:"status"`
	DetectedType              *string       `db:"detected_type" json:"detected_type"`
	ClassificationConfidence  *int          `db:"classification_confidence" json:"classification_confidence"`
	ClassificationExplanation *string       `db:"classification_explanation" json:"classification_explanation"`
	ErrorMessage              *string       `db:"error_message" json:"error_message"`
	ProcessingStartedAt       *time.Time    `db:"processing_started_at" json:"processing_started_at"`
	ProcessingCompletedAt     *time.Time    `db:"processing_completed_at" json:"processing_completed_at"`
	CreatedAt                 time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt                 time.Time     `db:"updated_at" json:"updated_at"`
}

// Extraction is the result set of one classify+extract pass over an upload.
type Extraction struct {
	ID          uuid.UUID        `db:"id" json:"id"`
	UploadID    uuid.UUID        `db:"upload_id" json:"upload_id"`
	RawResponse string           `db:"raw_response" json:"raw_response"`
	MappedData  json.RawMessage  `db:"mapped_data" json:"mapped_data"`
	Model       string           `db:"model" json:"model"`
	TokensUsed  int              `db:"tokens_used" json:"tokens_used"`
	Status      ExtractionStatus `db:"status" json:"status"`
	ReviewedBy  *uuid.UUID       `db:"reviewed_by" json:"reviewed_by"`
	ReviewedAt  *time.Time       `db:"reviewed_at" json:"reviewed_at"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time        `db:"updated_at" json:"updated_at"`
	Items       []ExtractionItem `db:"-" json:"items"`
}

// ExtractionItem is one candidate health record awaiting review.
type ExtractionItem struct {
	ID                uuid.UUID        `db:"id" json:"id"`
	ExtractionID      uuid.UUID        `db:"extraction_id" json:"extraction_id"`
	RecordType        RecordType       `db:"record_type" json:"record_type"`
	ExtractedData     json.RawMessage  `db:"extracted_data" json:"extracted_data"`
	ConfidenceScore   float64          `db:"confidence_score" json:"confidence_score"`
	UserModifiedData  *json.RawMessage `db:"user_modified_data" json:"user_modified_data"`
	Status            ItemStatus       `db:"status" json:"status"`
	CreatedRecordID   *uuid.UUID       `db:"created_record_id" json:"created_record_id"`
	CreatedRecordType *RecordType      `db:"created_record_type" json:"created_record_type"`
	CreatedAt         time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time        `db:"updated_at" json:"updated_at"`
}

// EffectiveData returns the user's edit when present, the extracted data otherwise.
func (i *ExtractionItem) EffectiveData() json.RawMessage {
	if i.UserModifiedData != nil && len(*i.UserModifiedData) > 0 {
		return *i.UserModifiedData
	}
	return i.ExtractedData
}

// HealthRecord is a row from one of the per-pet record tables.
type HealthRecord struct {
	ID         uuid.UUID      `json:"id"`
	PetID      uuid.UUID      `json:"pet_id"`
	RecordType RecordType     `json:"record_type"`
	Fields     map[string]any `json:"fields"`
	CreatedBy  *uuid.UUID     `json:"created_by"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// AuditLogEntry is an append-only record of a change to a pet's data.
type AuditLogEntry struct {
	ID             uuid.UUID        `db:"id" json:"id"`
	PetID          *uuid.UUID       `db:"pet_id" json:"pet_id"`
	EntityType     string           `db:"entity_type" json:"entity_type"`
	EntityID       uuid.UUID        `db:"entity_id" json:"entity_id"`
	Action         AuditAction      `db:"action" json:"action"`
	ChangedBy      *uuid.UUID       `db:"changed_by" json:"changed_by"`
	Source         AuditSource      `db:"source" json:"source"`
	SourceUploadID *uuid.UUID       `db:"source_upload_id" json:"source_upload_id"`
	OldValues      *json.RawMessage `db:"old_values" json:"old_values"`
	NewValues      *json.RawMessage `db:"new_values" json:"new_values"`
	ChangedFields  json.RawMessage  `db:"changed_fields" json:"changed_fields"`
	IPAddress      *string          `db:"ip_address" json:"ip_address"`
	UserAgent      *string          `db:"user_agent" json:"user_agent"`
	CreatedAt      time.Time        `db:"created_at" json:"created_at"`
}

// AuditFilter narrows an audit log query. Zero values mean no filter.
type AuditFilter struct {
	EntityType     string
	EntityID       *uuid.UUID
	Action         AuditAction
	SourceUploadID *uuid.UUID
}

// EmergencyCard is the public read-only summary behind an emergency link.
type EmergencyCard struct {
	PetName     string                        `json:"pet_name"`
	Species     string                        `json:"species"`
	Breed       *string                       `json:"breed"`
	DateOfBirth *time.Time                    `json:"date_of_birth"`
	Records     map[RecordType][]HealthRecord `json:"records"`
}

// ReviewStatus derives an extraction's status from all of its items.
func ReviewStatus(items []ExtractionItem) ExtractionStatus {
	var approved, rejected int
	for _, it := range items {
		switch it.Status {
		case ItemStatusApproved:
			approved++
		case ItemStatusRejected:
			rejected++
		}
	}
	switch {
	case len(items) > 0 && approved == len(items):
		return ExtractionStatusApproved
	case len(items) > 0 && rejected == len(items):
		return ExtractionStatusRejected
	case approved+rejected > 0:
		return ExtractionStatusPartiallyApproved
	default:
		return ExtractionStatusPendingReview
	}
}
