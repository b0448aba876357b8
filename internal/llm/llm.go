// Package llm talks to the OpenAI-compatible chat completion and embedding endpoints
// and owns the fixed prompt shapes used for document Q&A and translation.
package llm

import (
	"context"
	"fmt"
)

// Message roles understood by the chat completion endpoint.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry of a chat completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionOptions are the sampling settings sent with a request.
type CompletionOptions struct {
	Temperature float64
	MaxTokens   int
}

var (
	// QAOptions are used for questions about a document.
	QAOptions = CompletionOptions{Temperature: 0.7, MaxTokens: 512}
	// TranslationOptions are used for each translation window.
	TranslationOptions = CompletionOptions{Temperature: 0.3, MaxTokens: 2048}
)

// Client is the subset of the provider API the services use.
type Client interface {
	// Complete returns the text of the first choice.
	Complete(ctx context.Context, messages []Message, opts CompletionOptions) (string, error)
	// Embed returns the embedding of text, truncated to the configured character cap first.
	Embed(ctx context.Context, text string) ([]float32, error)
}

// ProviderError wraps a failed provider call. Its message is safe to show to the user.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
