package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const classificationSchema = `{
  "type": "object",
  "required": ["document_type", "confidence"],
  "properties": {
    "document_type": {"type": "string", "minLength": 1},
    "confidence": {"type": "number"},
    "explanation": {"type": ["string", "null"]},
    "alternative_types": {"type": ["array", "null"], "items": {"type": "string"}}
  }
}`

const extractionSchema = `{
  "type": "object",
  "required": ["items"],
  "properties": {
    "pet_name": {"type": ["string", "null"]},
    "items": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["record_type", "data"],
        "properties": {
          "record_type": {"type": "string"},
          "data": {"type": "object"},
          "confidence": {"type": ["number", "null"]}
        }
      }
    }
  }
}`

var (
	classificationValidator = mustCompile("classification.json", classificationSchema)
	extractionValidator     = mustCompile("extraction.json", extractionSchema)
)

func mustCompile(name, schema string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, strings.NewReader(schema)); err != nil {
		panic(fmt.Sprintf("add schema %s: %v", name, err))
	}
	return compiler.MustCompile(name)
}

type validator interface {
	Validate(v any) error
}

// validateAgainst checks a JSON document against a compiled schema.
func validateAgainst(schema validator, doc string) error {
	var v any
	if err := json.Unmarshal([]byte(doc), &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
