package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petvault/internal/analyzer/openai"
	"petvault/internal/config"
	"petvault/internal/port"
)

func newTestClient(serverURL string) *openai.Client {
	cfg := &config.LLMConfig{
		Provider:    "openai",
		APIKey:      "sk-test",
		TimeoutSecs: 30,
	}
	return openai.NewClientWithEndpoint(cfg, serverURL)
}

func TestOpenAIClient_Complete_PDF(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, "gpt-4o", reqBody["model"])
		assert.Equal(t, float64(1000), reqBody["max_completion_tokens"])
		assert.Equal(t, "json_object", reqBody["response_format"].(map[string]interface{})["type"])

		msg := reqBody["messages"].([]interface{})[0].(map[string]interface{})
		block := msg["content"].([]interface{})[0].(map[string]interface{})
		assert.Equal(t, "file", block["type"])
		fileData := block["file"].(map[string]interface{})["file_data"].(string)
		assert.True(t, strings.HasPrefix(fileData, "data:application/pdf;base64,"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"model":   "gpt-4o-2024-08-06",
			"choices": []map[string]interface{}{{"message": map[string]interface{}{"content": `{"ok":true}`}, "finish_reason": "stop"}},
			"usage":   map[string]interface{}{"total_tokens": 99},
		})
	}))
	defer server.Close()

	out, err := newTestClient(server.URL).Complete(context.Background(), port.CompletionInput{
		FileBytes: []byte("%PDF"), ContentType: "application/pdf", Prompt: "p", MaxTokens: 1000,
	})

	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, out.Text)
	assert.Equal(t, "gpt-4o-2024-08-06", out.Model)
	assert.Equal(t, 99, out.TokensUsed)
}

func TestOpenAIClient_Complete_GIFUsesImageURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		msg := reqBody["messages"].([]interface{})[0].(map[string]interface{})
		block := msg["content"].([]interface{})[0].(map[string]interface{})
		assert.Equal(t, "image_url", block["type"])
		url := block["image_url"].(map[string]interface{})["url"].(string)
		assert.True(t, strings.HasPrefix(url, "data:image/gif;base64,"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{{"message": map[string]interface{}{"content": "{}"}}},
		})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Complete(context.Background(), port.CompletionInput{
		FileBytes: []byte("GIF89a"), ContentType: "image/gif", Prompt: "p", MaxTokens: 10,
	})
	assert.NoError(t, err)
}

func TestOpenAIClient_Complete_LengthFinish(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{{"message": map[string]interface{}{"content": `{"items":[`}, "finish_reason": "length"}},
		})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Complete(context.Background(), port.CompletionInput{
		FileBytes: []byte("x"), ContentType: "image/png", Prompt: "p", MaxTokens: 10,
	})
	assert.ErrorContains(t, err, "finish_reason: length")
}
