package kimi

import "context"

// IKimi defines the interface for the Moonshot (Kimi) API client.
// Implementations are safe for concurrent use.
type IKimi interface {
	// ChatCompletion sends a chat completion request to the Moonshot API
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)
}

// New creates a new Kimi client with the given configuration
func New(cfg Config) (IKimi, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newKimiImpl(cfg), nil
}
