package modelrouter

import (
	"context"
	"time"
)

// Provider defines the interface one backend family implements.
// A single provider may serve several public model identifiers with
// per-model parameter tuning.
type Provider interface {
	// Complete sends a chat completion request and returns a normalized result
	Complete(ctx context.Context, req *Request) (*Result, error)

	// Name returns the provider family name (e.g. "kimi", "openrouter")
	Name() string

	// Timeout returns the per-call bound the gateway enforces for this provider
	Timeout() time.Duration
}

// Message is a single conversation turn.
type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
}

// Request is a normalized chat completion request. Build it once and do not
// mutate it after handing it to the gateway.
type Request struct {
	Model            string
	Messages         []Message
	Temperature      float64
	MaxTokens        int
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
}

// FinishReason classifies why the model stopped generating.
type FinishReason string

const (
	FinishStop   FinishReason = "stop"
	FinishLength FinishReason = "length"
	FinishOther  FinishReason = "other"
)

// NormalizeFinishReason maps a provider wire value onto the closed enum.
func NormalizeFinishReason(raw string) FinishReason {
	switch raw {
	case "stop", "":
		return FinishStop
	case "length":
		return FinishLength
	default:
		return FinishOther
	}
}

// Usage tracks token consumption. The counters are opaque to callers.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Result is a normalized chat completion result. Exactly one is produced per
// successful call.
type Result struct {
	Content      string
	Model        string // public model identifier, not the provider wire name
	Usage        Usage
	FinishReason FinishReason
}
