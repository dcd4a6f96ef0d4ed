package llm

import (
	"context"
)

// Provider is the interface the completion capability must implement
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends a single text prompt and returns the completion text
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// Ping checks the credential with a trivial liveness probe
	Ping(ctx context.Context) error
}

// CompletionRequest represents a request to the model
type CompletionRequest struct {
	Model       string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// CompletionResponse represents the full response
type CompletionResponse struct {
	Content string
	Model   string
}

// NewRequest creates a completion request with the defaults used across the
// pipeline
func NewRequest(model, prompt string) *CompletionRequest {
	return &CompletionRequest{
		Model:       model,
		Prompt:      prompt,
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}
