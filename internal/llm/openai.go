package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"inbot/internal/config"
)

var errEmptyResponse = errors.New("provider returned no choices")

// OpenAI implements Client on an OpenAI-compatible API.
type OpenAI struct {
	model    *openai.LLM
	maxChars int
}

var _ Client = (*OpenAI)(nil)

// NewHTTPClient returns the traced client used for provider calls.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// NewOpenAI builds the client. A nil httpClient gets a traced client with the configured timeout.
func NewOpenAI(cfg config.OpenAIConfig, httpClient *http.Client) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key is required")
	}
	if httpClient == nil {
		httpClient = NewHTTPClient(time.Duration(cfg.TimeoutSec) * time.Second)
	}

	model, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithModel(cfg.ChatModel),
		openai.WithEmbeddingModel(cfg.EmbeddingModel),
		openai.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}
	return &OpenAI{model: model, maxChars: cfg.EmbeddingMaxChars}, nil
}

func (c *OpenAI) Complete(ctx context.Context, messages []Message, opts CompletionOptions) (string, error) {
	content := make([]llms.MessageContent, 0, len(messages))
	for _, m := range messages {
		content = append(content, llms.TextParts(messageType(m.Role), m.Content))
	}

	resp, err := c.model.GenerateContent(ctx, content,
		llms.WithTemperature(opts.Temperature),
		llms.WithMaxTokens(opts.MaxTokens),
	)
	if err != nil {
		return "", &ProviderError{Op: "chat completion", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &ProviderError{Op: "chat completion", Err: errEmptyResponse}
	}
	return resp.Choices[0].Content, nil
}

func (c *OpenAI) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.model.CreateEmbedding(ctx, []string{Truncate(text, c.maxChars)})
	if err != nil {
		return nil, &ProviderError{Op: "embedding", Err: err}
	}
	if len(vectors) == 0 {
		return nil, &ProviderError{Op: "embedding", Err: errEmptyResponse}
	}
	return vectors[0], nil
}

func messageType(role string) llms.ChatMessageType {
	switch role {
	case RoleSystem:
		return llms.ChatMessageTypeSystem
	case RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}
