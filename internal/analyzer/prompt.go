package analyzer

import (
	"fmt"

	"petvault/internal/domain"
)

// PromptSet supplies the fixed instructions sent with each file.
type PromptSet interface {
	Classification(mediaType domain.MediaType) string
	Extraction(mediaType domain.MediaType, documentTypeHint string) string
}

// DefaultPrompts is the built-in prompt set for veterinary documents.
type DefaultPrompts struct{}

func (DefaultPrompts) Classification(mediaType domain.MediaType) string {
	return `You are classifying a veterinary document provided as ` + mediaNoun(mediaType) + `.

Decide which kind of document it is. Use exactly one of:
vaccination_record, prescription, medical_history, lab_results, invoice, insurance_claim, vet_contact_card, other

Return ONLY a JSON object, with no markdown and no code fences:
{
  "document_type": "<one of the values above>",
  "confidence": <integer 0-100>,
  "explanation": "<one sentence>",
  "alternative_types": ["<other plausible values>"]
}`
}

func (DefaultPrompts) Extraction(mediaType domain.MediaType, documentTypeHint string) string {
	hint := ""
	if documentTypeHint != "" {
		hint = fmt.Sprintf("\nThe document has been classified as %q. Use that to focus your extraction.\n", documentTypeHint)
	}
	return `You are extracting pet health records from a veterinary document provided as ` + mediaNoun(mediaType) + `.
` + hint + `
Extract every record you can find. Each record has a "record_type" and a "data" object with these keys:

- vaccination: name, administered_date, expiration_date, administered_by, lot_number
- medication: name, dosage, frequency, start_date, end_date, prescribed_by, notes
- condition: name, diagnosed_date, severity, status, notes
- allergy: allergen, reaction, severity, notes
- vet: clinic_name, vet_name, phone, email, address
- emergency_contact: name, relationship, phone, email

Rules:
- Dates must be YYYY-MM-DD. Use null when a value is not in the document.
- Do not invent values. Only report what is written or printed.
- "confidence" is a number between 0.0 and 1.0 for the record as a whole.

Return ONLY a JSON object, with no markdown and no code fences:
{
  "pet_name": "<name if shown, else null>",
  "items": [
    {"record_type": "vaccination", "data": {"name": "Rabies", "administered_date": "2024-01-15"}, "confidence": 0.95}
  ]
}`
}

func mediaNoun(mt domain.MediaType) string {
	if mt == domain.MediaTypePDF {
		return "a PDF"
	}
	return "a photo or scanned image"
}
