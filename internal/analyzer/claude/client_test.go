package claude_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petvault/internal/analyzer"
	"petvault/internal/analyzer/claude"
	"petvault/internal/config"
	"petvault/internal/port"
)

func newTestClient(serverURL string) *claude.Client {
	cfg := &config.LLMConfig{
		Provider:     "claude",
		APIKey:       "test-api-key",
		DefaultModel: "claude-sonnet-4-20250514",
		TimeoutSecs:  30,
	}
	return claude.NewClientWithEndpoint(cfg, serverURL)
}

func TestClaudeClient_Complete_PDF(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-api-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, "claude-sonnet-4-20250514", reqBody["model"])
		assert.Equal(t, float64(2048), reqBody["max_tokens"])

		msg := reqBody["messages"].([]interface{})[0].(map[string]interface{})
		content := msg["content"].([]interface{})
		require.Len(t, content, 2)
		assert.Equal(t, "document", content[0].(map[string]interface{})["type"])
		assert.Equal(t, "classify this", content[1].(map[string]interface{})["text"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"model":       "claude-sonnet-4-20250514",
			"content":     []map[string]interface{}{{"type": "text", "text": `{"document_type":"invoice","confidence":90}`}},
			"stop_reason": "end_turn",
			"usage":       map[string]interface{}{"input_tokens": 1200, "output_tokens": 30},
		})
	}))
	defer server.Close()

	out, err := newTestClient(server.URL).Complete(context.Background(), port.CompletionInput{
		FileBytes:   []byte("%PDF-1.4"),
		ContentType: "application/pdf",
		Prompt:      "classify this",
		MaxTokens:   2048,
	})

	require.NoError(t, err)
	assert.Equal(t, `{"document_type":"invoice","confidence":90}`, out.Text)
	assert.Equal(t, 1230, out.TokensUsed)
	assert.Equal(t, "claude-sonnet-4-20250514", out.Model)
}

func TestClaudeClient_Complete_WebPImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		msg := reqBody["messages"].([]interface{})[0].(map[string]interface{})
		block := msg["content"].([]interface{})[0].(map[string]interface{})
		assert.Equal(t, "image", block["type"])
		assert.Equal(t, "image/webp", block["source"].(map[string]interface{})["media_type"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]interface{}{{"type": "text", "text": "{}"}},
		})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Complete(context.Background(), port.CompletionInput{
		FileBytes:   []byte("RIFF"),
		ContentType: "image/webp",
		Prompt:      "p",
		MaxTokens:   100,
	})
	assert.NoError(t, err)
}

func TestClaudeClient_Complete_UnsupportedType(t *testing.T) {
	_, err := newTestClient("http://127.0.0.1:0").Complete(context.Background(), port.CompletionInput{
		ContentType: "text/plain",
	})
	assert.ErrorContains(t, err, "unsupported content type")
}

func TestClaudeClient_Complete_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"slow down"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Complete(context.Background(), port.CompletionInput{
		FileBytes: []byte("x"), ContentType: "image/png", Prompt: "p", MaxTokens: 10,
	})

	var rle *analyzer.RateLimitError
	require.True(t, errors.As(err, &rle))
	assert.Equal(t, "claude", rle.Provider)
	assert.Equal(t, 7*time.Second, rle.RetryAfter)
}

func TestClaudeClient_Complete_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`boom`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Complete(context.Background(), port.CompletionInput{
		FileBytes: []byte("x"), ContentType: "application/pdf", Prompt: "p", MaxTokens: 10,
	})
	assert.ErrorContains(t, err, "status 500")
}

func TestClaudeClient_Complete_Truncated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"content":     []map[string]interface{}{{"type": "text", "text": `{"items":[`}},
			"stop_reason": "max_tokens",
		})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Complete(context.Background(), port.CompletionInput{
		FileBytes: []byte("x"), ContentType: "application/pdf", Prompt: "p", MaxTokens: 10,
	})
	assert.ErrorContains(t, err, "max_tokens")
}
