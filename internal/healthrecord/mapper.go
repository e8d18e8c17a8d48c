// Package healthrecord normalizes free-form record data into the column layout
// of the per-pet health record tables.
package healthrecord

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"petvault/internal/domain"
)

type alias struct {
	key   string
	field string
}

// aliases lists alternative key spellings seen in model output, in priority
// order: when several aliases of one field are present the earliest wins.
var aliases = map[domain.RecordType][]alias{
	domain.RecordTypeVaccination: {
		{"vaccine_name", "name"},
		{"vaccine", "name"},
		{"date_administered", "administered_date"},
		{"date", "administered_date"},
		{"expiry_date", "expiration_date"},
		{"expiration", "expiration_date"},
		{"due_date", "expiration_date"},
		{"veterinarian", "administered_by"},
		{"lot", "lot_number"},
	},
	domain.RecordTypeMedication: {
		{"medication_name", "name"},
		{"medication", "name"},
		{"drug", "name"},
		{"prescribing_vet", "prescribed_by"},
		{"veterinarian", "prescribed_by"},
	},
	domain.RecordTypeCondition: {
		{"condition_name", "name"},
		{"condition", "name"},
		{"diagnosis", "name"},
		{"diagnosis_date", "diagnosed_date"},
	},
	domain.RecordTypeAllergy: {
		{"allergy", "allergen"},
		{"substance", "allergen"},
	},
	domain.RecordTypeVet: {
		{"clinic", "clinic_name"},
		{"veterinarian", "vet_name"},
		{"vet", "vet_name"},
		{"phone_number", "phone"},
	},
	domain.RecordTypeEmergencyContact: {
		{"contact_name", "name"},
		{"phone_number", "phone"},
	},
}

// Schema returns the column layout for a record type.
func Schema(rt domain.RecordType) (domain.RecordSchema, error) {
	s, ok := domain.RecordSchemas[rt]
	if !ok {
		return domain.RecordSchema{}, domain.ErrInvalidRecordType
	}
	return s, nil
}

// Map whitelists data to the record type's fields. Every field of the schema is
// present in the result; missing or blank values are nil and unknown keys are dropped.
func Map(rt domain.RecordType, data map[string]any) (map[string]any, error) {
	schema, err := Schema(rt)
	if err != nil {
		return nil, err
	}

	norm := normalizeKeys(data)
	out := make(map[string]any, len(schema.Fields))
	for _, f := range schema.Fields {
		out[f] = normalizeValue(f, norm[f])
	}

	// Canonical keys win over aliases.
	for _, a := range aliases[rt] {
		if out[a.field] != nil {
			continue
		}
		if v, ok := norm[a.key]; ok {
			out[a.field] = normalizeValue(a.field, v)
		}
	}
	return out, nil
}

// MapJSON is Map over a JSON object.
func MapJSON(rt domain.RecordType, raw json.RawMessage) (json.RawMessage, error) {
	data, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	mapped, err := Map(rt, data)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(mapped)
	if err != nil {
		return nil, fmt.Errorf("healthrecord.MapJSON: %w", err)
	}
	return b, nil
}

// Decode parses a JSON object into a field map.
func Decode(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: data must be a JSON object", domain.ErrValidation)
	}
	if data == nil {
		data = map[string]any{}
	}
	return data, nil
}

// Validate checks mapped fields against the minimal rules for the record type.
func Validate(rt domain.RecordType, fields map[string]any) error {
	schema, err := Schema(rt)
	if err != nil {
		return err
	}

	var problems []string
	for _, f := range schema.Required {
		if isBlank(fields[f]) {
			problems = append(problems, f+" is required")
		}
	}
	if len(schema.AnyOf) > 0 {
		found := false
		for _, f := range schema.AnyOf {
			if !isBlank(fields[f]) {
				found = true
				break
			}
		}
		if !found {
			problems = append(problems, "one of "+strings.Join(schema.AnyOf, ", ")+" is required")
		}
	}
	for _, f := range schema.Fields {
		if !IsDateField(f) || isBlank(fields[f]) {
			continue
		}
		s, ok := fields[f].(string)
		if !ok {
			problems = append(problems, f+" must be a date")
			continue
		}
		if _, err := time.Parse(time.DateOnly, s); err != nil {
			problems = append(problems, f+" must be YYYY-MM-DD")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}

// ChangedFields lists the keys whose values differ between before and after, sorted.
func ChangedFields(before, after map[string]any) []string {
	keys := make(map[string]bool)
	for k := range before {
		keys[k] = true
	}
	for k := range after {
		keys[k] = true
	}
	var changed []string
	for k := range keys {
		if fmt.Sprint(before[k]) != fmt.Sprint(after[k]) {
			changed = append(changed, k)
		}
	}
	sort.Strings(changed)
	return changed
}

// IsDateField reports whether a column holds a calendar date.
func IsDateField(name string) bool {
	return strings.HasSuffix(name, "_date")
}

// normalizeKeys rewrites data under normalized keys. When two keys normalize
// to the same name the one that sorts first wins.
func normalizeKeys(data map[string]any) map[string]any {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]any, len(data))
	for _, k := range keys {
		nk := normalizeKey(k)
		if _, seen := out[nk]; !seen {
			out[nk] = data[k]
		}
	}
	return out
}

func normalizeKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(k)
}

func normalizeValue(field string, v any) any {
	var s string
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		s = t
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(t)
	case json.Number:
		s = t.String()
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return nil
		}
		s = string(b)
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") {
		return nil
	}
	if IsDateField(field) {
		return normalizeDate(s)
	}
	return s
}

// normalizeDate converts common timestamp layouts to YYYY-MM-DD and leaves
// anything else untouched for Validate to reject.
func normalizeDate(s string) string {
	if _, err := time.Parse(time.DateOnly, s); err == nil {
		return s
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006/01/02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(time.DateOnly)
		}
	}
	return s
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}
