package csvexport

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"petvault/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

var columns = []string{
	"Timestamp",
	"Action",
	"Entity Type",
	"Entity ID",
	"Source",
	"Source Upload ID",
	"Changed By",
	"Changed Fields",
	"Old Values",
	"New Values",
	"IP Address",
	"User Agent",
}

// Writer wraps csv.Writer for exporting audit log entries.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteEntries converts a batch of audit entries to CSV rows and writes them.
func (w *Writer) WriteEntries(entries []domain.AuditLogEntry) error {
	for i := range entries {
		if err := w.csv.Write(entryToRow(&entries[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func entryToRow(e *domain.AuditLogEntry) []string {
	return []string{
		e.CreatedAt.UTC().Format(time.RFC3339),
		string(e.Action),
		e.EntityType,
		e.EntityID.String(),
		string(e.Source),
		formatID(e.SourceUploadID),
		formatID(e.ChangedBy),
		formatChangedFields(e.ChangedFields),
		formatRaw(e.OldValues),
		formatRaw(e.NewValues),
		deref(e.IPAddress),
		deref(e.UserAgent),
	}
}

func formatID[T fmt.Stringer](id *T) string {
	if id == nil {
		return ""
	}
	return (*id).String()
}

// formatChangedFields renders the JSON array as a semicolon separated list.
func formatChangedFields(raw json.RawMessage) string {
	var fields []string
	if len(raw) == 0 || json.Unmarshal(raw, &fields) != nil {
		return ""
	}
	return strings.Join(fields, "; ")
}

func formatRaw(raw *json.RawMessage) string {
	if raw == nil {
		return ""
	}
	return string(*raw)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_name}_{suffix}_{YYYY-MM-DD}.{ext}
func BuildFilename(name, suffix, ext string) string {
	sanitized := SanitizeFilename(name)
	if sanitized == "" {
		sanitized = "pet"
	}
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s_%s.%s", sanitized, suffix, date, ext)
}
