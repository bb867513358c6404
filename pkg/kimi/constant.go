package kimi

import "time"

const (
	// DefaultBaseURL is the default Moonshot API endpoint
	DefaultBaseURL = "https://api.moonshot.cn/v1"

	// DefaultModel is the default model to use
	DefaultModel = "kimi-latest"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)
