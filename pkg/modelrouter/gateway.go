package modelrouter

import (
	"context"
	"errors"
	"fmt"

	"cortex-workspace/pkg/log"
)

// Defaults holds the two configured default model identifiers.
type Defaults struct {
	TaskModel string
	ChatModel string
}

// Gateway routes completion requests to provider adapters by model identifier.
// It enforces a per-call timeout and normalizes failures into the package's
// error taxonomy. The gateway performs no retries: retry policy belongs to the
// caller, and the engine's rule-based fallback is itself a form of retry.
type Gateway struct {
	models    map[string]ModelInfo
	providers map[Family]Provider
	defaults  Defaults
	logger    log.Logger
}

// NewGateway creates a gateway over the given provider adapters.
func NewGateway(providers map[Family]Provider, defaults Defaults, logger log.Logger) (*Gateway, error) {
	table := modelTable()
	if _, ok := table[defaults.TaskModel]; !ok {
		return nil, fmt.Errorf("default task model %q: %w", defaults.TaskModel, ErrUnsupportedModel)
	}
	if _, ok := table[defaults.ChatModel]; !ok {
		return nil, fmt.Errorf("default chat model %q: %w", defaults.ChatModel, ErrUnsupportedModel)
	}

	return &Gateway{
		models:    table,
		providers: providers,
		defaults:  defaults,
		logger:    logger,
	}, nil
}

// Complete resolves the request's model to an adapter, bounds the call with
// the provider's timeout, and returns a normalized result or a typed failure.
func (g *Gateway) Complete(ctx context.Context, req *Request) (*Result, error) {
	info, ok := g.models[req.Model]
	if !ok {
		return nil, fmt.Errorf("model %q: %w", req.Model, ErrUnsupportedModel)
	}

	provider, ok := g.providers[info.Family]
	if !ok {
		return nil, &ProviderError{
			Provider: string(info.Family),
			Err:      fmt.Errorf("model %q: %w", req.Model, ErrProviderNotConfigured),
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, provider.Timeout())
	defer cancel()

	result, err := provider.Complete(callCtx, req)
	if err != nil {
		wrapped := g.classify(callCtx, err)
		g.logFailure(ctx, provider, req.Model, wrapped)
		return nil, &ProviderError{Provider: provider.Name(), Err: wrapped}
	}

	g.logSuccess(ctx, provider, result)
	return result, nil
}

// classify maps a raw adapter error onto the gateway taxonomy.
func (g *Gateway) classify(callCtx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		// Caller cancellation surfaces as a timeout-class failure.
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrProtocol, err)
}

// Supported returns the registered models in display order.
func (g *Gateway) Supported() []ModelInfo {
	out := make([]ModelInfo, len(supportedModels))
	copy(out, supportedModels)
	return out
}

// IsSupported reports whether the identifier is in the registry.
func (g *Gateway) IsSupported(model string) bool {
	_, ok := g.models[model]
	return ok
}

// DefaultTaskModel returns the configured task-parsing default.
func (g *Gateway) DefaultTaskModel() string {
	return g.defaults.TaskModel
}

// DefaultChatModel returns the configured chat default.
func (g *Gateway) DefaultChatModel() string {
	return g.defaults.ChatModel
}

// logSuccess logs a successful completion with usage metrics
func (g *Gateway) logSuccess(ctx context.Context, provider Provider, result *Result) {
	g.logger.Infof(ctx, "completion successful: provider=%s model=%s prompt_tokens=%d completion_tokens=%d finish=%s",
		provider.Name(), result.Model, result.Usage.PromptTokens, result.Usage.CompletionTokens, result.FinishReason)
}

// logFailure logs a failed completion attempt
func (g *Gateway) logFailure(ctx context.Context, provider Provider, model string, err error) {
	g.logger.Warnf(ctx, "completion failed: provider=%s model=%s error=%v", provider.Name(), model, err)
}
