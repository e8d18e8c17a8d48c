package csvexport

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petvault/internal/domain"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	row, err := csv.NewReader(&buf).Read()
	require.NoError(t, err)

	assert.Len(t, row, len(columns))
	assert.Equal(t, "Timestamp", row[0])
	assert.Equal(t, "User Agent", row[len(row)-1])
}

func TestWriteEntries(t *testing.T) {
	uploadID := uuid.New()
	userID := uuid.New()
	newValues := json.RawMessage(`{"name":"Rabies","administered_date":"2024-01-15"}`)
	ip := "10.0.0.1"
	entry := domain.AuditLogEntry{
		ID:             uuid.New(),
		EntityType:     "vaccination",
		EntityID:       uuid.New(),
		Action:         domain.AuditActionCreate,
		ChangedBy:      &userID,
		Source:         domain.AuditSourceImageImport,
		SourceUploadID: &uploadID,
		NewValues:      &newValues,
		ChangedFields:  json.RawMessage(`["administered_date","name"]`),
		IPAddress:      &ip,
		CreatedAt:      time.Date(2024, 1, 16, 9, 30, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteEntries([]domain.AuditLogEntry{entry}))
	w.Flush()
	require.NoError(t, w.Error())

	row, err := csv.NewReader(&buf).Read()
	require.NoError(t, err)

	assert.Equal(t, "2024-01-16T09:30:00Z", row[0])
	assert.Equal(t, "create", row[1])
	assert.Equal(t, "vaccination", row[2])
	assert.Equal(t, "image_import", row[4])
	assert.Equal(t, uploadID.String(), row[5])
	assert.Equal(t, userID.String(), row[6])
	assert.Equal(t, "administered_date; name", row[7])
	assert.Equal(t, "", row[8])
	assert.JSONEq(t, string(newValues), row[9])
	assert.Equal(t, "10.0.0.1", row[10])
	assert.Equal(t, "", row[11])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Biscuit", "Biscuit"},
		{"Mr. Whiskers (cat)", "Mr_Whiskers_cat"},
		{"  ", ""},
		{"a//b", "a_b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in))
	}
}

func TestBuildFilename(t *testing.T) {
	name := BuildFilename("Mr. Whiskers", "audit", "csv")
	assert.Regexp(t, `^Mr_Whiskers_audit_\d{4}-\d{2}-\d{2}\.csv$`, name)

	assert.Regexp(t, `^pet_records_`, BuildFilename("???", "records", "xlsx"))
}
