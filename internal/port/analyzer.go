package port

import (
	"context"

	"petvault/internal/domain"
)

// CompletionInput is a single multimodal prompt: one file plus instructions.
type CompletionInput struct {
	FileBytes   []byte
	ContentType string
	Prompt      string
	MaxTokens   int
}

// CompletionOutput is the model's text answer and usage.
type CompletionOutput struct {
	Text       string
	Model      string
	TokensUsed int
}

// CompletionClient abstracts one call to a multimodal LLM provider.
type CompletionClient interface {
	Complete(ctx context.Context, input CompletionInput) (*CompletionOutput, error)
}

// AnalyzeInput describes the file handed to the document analyzer.
type AnalyzeInput struct {
	FileBytes   []byte
	ContentType string
	MediaType   domain.MediaType
	// DocumentTypeHint is passed to extraction when classification was confident.
	DocumentTypeHint string
}

// Classification is the analyzer's guess at what kind of document it saw.
type Classification struct {
	DocumentType     string   `json:"document_type"`
	Confidence       int      `json:"confidence"`
	Explanation      string   `json:"explanation"`
	AlternativeTypes []string `json:"alternative_types,omitempty"`
	Model            string   `json:"model"`
	TokensUsed       int      `json:"tokens_used"`
	Raw              string   `json:"-"`
}

// ExtractedItem is one candidate health record proposed by the model.
type ExtractedItem struct {
	RecordType domain.RecordType `json:"record_type"`
	Data       map[string]any    `json:"data"`
	Confidence float64           `json:"confidence"`
}

// ExtractionResult is the analyzer's list of candidate records.
type ExtractionResult struct {
	Items      []ExtractedItem `json:"items"`
	PetName    string          `json:"pet_name,omitempty"`
	Model      string          `json:"model"`
	TokensUsed int             `json:"tokens_used"`
	Raw        string          `json:"-"`
}

// DocumentAnalyzer classifies uploaded documents and extracts health records from them.
type DocumentAnalyzer interface {
	Classify(ctx context.Context, input AnalyzeInput) (*Classification, error)
	Extract(ctx context.Context, input AnalyzeInput) (*ExtractionResult, error)
}
