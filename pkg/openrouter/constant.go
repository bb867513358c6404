package openrouter

import "time"

const (
	// DefaultBaseURL is the default OpenRouter API endpoint
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// DefaultTimeout is the default HTTP client timeout.
	// OpenRouter fronts slow frontier models, so the bound is generous.
	DefaultTimeout = 60 * time.Second
)
