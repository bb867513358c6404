package openrouter

import "context"

// IOpenRouter defines the interface for the OpenRouter API client.
// Implementations are safe for concurrent use.
type IOpenRouter interface {
	// ChatCompletion sends a chat completion request to the OpenRouter API
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)
}

// New creates a new OpenRouter client with the given configuration
func New(cfg Config) (IOpenRouter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenRouterImpl(cfg), nil
}
