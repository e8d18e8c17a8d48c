// Package analyzer turns a multimodal LLM completion endpoint into a document
// classifier and health-record extractor.
package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"petvault/internal/domain"
	"petvault/internal/port"
)

// HintConfidenceThreshold is the minimum classification confidence at which the
// detected document type is passed on to extraction.
const HintConfidenceThreshold = 50

const defaultMaxTokens = 4096

type analyzer struct {
	client    port.CompletionClient
	prompts   PromptSet
	maxTokens int
}

// New creates a DocumentAnalyzer over a completion client.
func New(client port.CompletionClient, prompts PromptSet, maxTokens int) port.DocumentAnalyzer {
	if prompts == nil {
		prompts = DefaultPrompts{}
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &analyzer{client: client, prompts: prompts, maxTokens: maxTokens}
}

// ExtractionHint returns the document type to hand to extraction, or "" when
// the classification is missing or not confident enough.
func ExtractionHint(c *port.Classification) string {
	if c == nil || c.Confidence < HintConfidenceThreshold {
		return ""
	}
	return c.DocumentType
}

func (a *analyzer) Classify(ctx context.Context, input port.AnalyzeInput) (*port.Classification, error) {
	out, err := a.complete(ctx, input, a.prompts.Classification(input.MediaType))
	if err != nil {
		return nil, err
	}

	doc, err := parseModelJSON(out.Text, classificationValidator)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		DocumentType     string   `json:"document_type"`
		Confidence       float64  `json:"confidence"`
		Explanation      *string  `json:"explanation"`
		AlternativeTypes []string `json:"alternative_types"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionParse, err)
	}

	result := &port.Classification{
		DocumentType:     strings.TrimSpace(parsed.DocumentType),
		Confidence:       percentConfidence(parsed.Confidence),
		AlternativeTypes: parsed.AlternativeTypes,
		Model:            out.Model,
		TokensUsed:       out.TokensUsed,
		Raw:              out.Text,
	}
	if parsed.Explanation != nil {
		result.Explanation = *parsed.Explanation
	}
	return result, nil
}

func (a *analyzer) Extract(ctx context.Context, input port.AnalyzeInput) (*port.ExtractionResult, error) {
	out, err := a.complete(ctx, input, a.prompts.Extraction(input.MediaType, input.DocumentTypeHint))
	if err != nil {
		return nil, err
	}

	doc, err := parseModelJSON(out.Text, extractionValidator)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		PetName *string `json:"pet_name"`
		Items   []struct {
			RecordType string         `json:"record_type"`
			Data       map[string]any `json:"data"`
			Confidence *float64       `json:"confidence"`
		} `json:"items"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionParse, err)
	}

	result := &port.ExtractionResult{
		Items:      make([]port.ExtractedItem, 0, len(parsed.Items)),
		Model:      out.Model,
		TokensUsed: out.TokensUsed,
		Raw:        out.Text,
	}
	if parsed.PetName != nil {
		result.PetName = strings.TrimSpace(*parsed.PetName)
	}
	for _, it := range parsed.Items {
		rt, err := domain.ParseRecordType(it.RecordType)
		if err != nil {
			zap.L().Warn("analyzer.Extract: dropping item with unknown record type",
				zap.String("record_type", it.RecordType))
			continue
		}
		conf := 0.0
		if it.Confidence != nil {
			conf = normalizeConfidence(*it.Confidence)
		}
		result.Items = append(result.Items, port.ExtractedItem{
			RecordType: rt,
			Data:       it.Data,
			Confidence: conf,
		})
	}
	return result, nil
}

func (a *analyzer) complete(ctx context.Context, input port.AnalyzeInput, prompt string) (*port.CompletionOutput, error) {
	out, err := a.client.Complete(ctx, port.CompletionInput{
		FileBytes:   input.FileBytes,
		ContentType: input.ContentType,
		Prompt:      prompt,
		MaxTokens:   a.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrExternalService, err)
	}
	return out, nil
}

// parseModelJSON locates the JSON object in the model's text and checks its shape.
func parseModelJSON(text string, schema validator) (string, error) {
	doc, err := ExtractJSONObject(text)
	if err != nil {
		return "", fmt.Errorf("%w: %v (raw: %s)", domain.ErrExtractionParse, err, Truncate(text, 500))
	}
	if err := validateAgainst(schema, doc); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExtractionParse, err)
	}
	return doc, nil
}

// normalizeConfidence maps a model-reported confidence into [0, 1]. Values on a
// percentage scale are divided down.
func normalizeConfidence(c float64) float64 {
	if c > 1 && c <= 100 {
		c /= 100
	}
	return math.Max(0, math.Min(1, c))
}

// percentConfidence maps a classification confidence into [0, 100]. Values on
// a fractional scale are multiplied up, mirroring normalizeConfidence.
func percentConfidence(c float64) int {
	if c > 0 && c <= 1 {
		c *= 100
	}
	return clampInt(int(math.Round(c)), 0, 100)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
