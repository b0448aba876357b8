package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inbot/internal/config"
)

type capturedRequest struct {
	Model    string          `json:"model"`
	Input    json.RawMessage `json:"input"`
	Messages []struct {
		Role    string          `json:"role"`
		Content json.RawMessage `json:"content"`
	} `json:"messages"`
	Temperature float64 `json:"temperature"`
}

// messageText accepts both the plain string and the content-parts encoding.
func messageText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var parts []struct {
		Text string `json:"text"`
	}
	_ = json.Unmarshal(raw, &parts)
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

func inputTexts(raw json.RawMessage) []string {
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return many
	}
	var one string
	_ = json.Unmarshal(raw, &one)
	return []string{one}
}

func newTestClient(t *testing.T, handler http.HandlerFunc, maxChars int) *OpenAI {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewOpenAI(config.OpenAIConfig{
		BaseURL:           server.URL,
		APIKey:            "sk-test",
		ChatModel:         "gpt-3.5-turbo",
		EmbeddingModel:    "text-embedding-ada-002",
		EmbeddingMaxChars: maxChars,
		TimeoutSec:        5,
	}, server.Client())
	require.NoError(t, err)
	return client
}

func TestNewOpenAI_RequiresKey(t *testing.T) {
	_, err := NewOpenAI(config.OpenAIConfig{BaseURL: "http://localhost"}, nil)
	assert.Error(t, err)
}

func TestOpenAI_Complete(t *testing.T) {
	var got capturedRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-3.5-turbo",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "It is a greeting."}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`))
	}, 8000)

	answer, err := client.Complete(context.Background(), QAPrompt("hello world", "What is this?"), QAOptions)
	require.NoError(t, err)
	assert.Equal(t, "It is a greeting.", answer)

	assert.Equal(t, "gpt-3.5-turbo", got.Model)
	assert.InDelta(t, 0.7, got.Temperature, 1e-9)
	require.Len(t, got.Messages, 3)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "You are a helpful assistant.", messageText(got.Messages[0].Content))
	assert.Equal(t, "Document Content: hello world", messageText(got.Messages[1].Content))
	assert.Equal(t, "user", got.Messages[2].Role)
	assert.Equal(t, "What is this?", messageText(got.Messages[2].Content))
}

func TestOpenAI_Complete_ProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`))
	}, 8000)

	_, err := client.Complete(context.Background(), QAPrompt("doc", "q"), QAOptions)
	require.Error(t, err)

	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "chat completion", perr.Op)
	assert.True(t, strings.HasPrefix(err.Error(), "chat completion: "))
}

func TestOpenAI_Embed_TruncatesInput(t *testing.T) {
	var got capturedRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/embeddings"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"object": "list",
			"data": [{"object": "embedding", "index": 0, "embedding": [0.1, 0.2, 0.3]}],
			"model": "text-embedding-ada-002",
			"usage": {"prompt_tokens": 8, "total_tokens": 8}
		}`))
	}, 8000)

	vec, err := client.Embed(context.Background(), strings.Repeat("a", 10000))
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vec)

	assert.Equal(t, "text-embedding-ada-002", got.Model)
	inputs := inputTexts(got.Input)
	require.Len(t, inputs, 1)
	assert.Len(t, inputs[0], 8000)
}

func TestOpenAI_Embed_ProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, 8000)

	_, err := client.Embed(context.Background(), "short")
	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "embedding", perr.Op)
}
