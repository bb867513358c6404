package modelrouter

import (
	"context"
	"fmt"
	"time"

	"cortex-workspace/pkg/kimi"
	"cortex-workspace/pkg/openrouter"
)

// KimiAdapter adapts pkg/kimi to the modelrouter.Provider interface.
type KimiAdapter struct {
	client  kimi.IKimi
	timeout time.Duration
}

// NewKimiAdapter creates a new Kimi adapter
func NewKimiAdapter(client kimi.IKimi, timeout time.Duration) *KimiAdapter {
	if timeout == 0 {
		timeout = kimi.DefaultTimeout
	}
	return &KimiAdapter{client: client, timeout: timeout}
}

// Complete implements Provider interface
func (a *KimiAdapter) Complete(ctx context.Context, req *Request) (*Result, error) {
	kimiReq := &kimi.Request{
		Model:    req.Model,
		Messages: convertToKimiMessages(req.Messages),
	}
	applyKimiTier(kimiReq, req)

	resp, err := a.client.ChatCompletion(ctx, kimiReq)
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("kimi: response has no choices")
	}

	choice := resp.Choices[0]
	return &Result{
		Content: choice.Message.Content,
		Model:   req.Model,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
		FinishReason: NormalizeFinishReason(choice.FinishReason),
	}, nil
}

// Name returns the provider family name
func (a *KimiAdapter) Name() string {
	return string(FamilyKimi)
}

// Timeout returns the per-call bound for this provider
func (a *KimiAdapter) Timeout() time.Duration {
	return a.timeout
}

// applyKimiTier applies per-model parameter tuning. The K2 flagship tier runs
// hotter and allows much longer output; explicit request values always win.
func applyKimiTier(kimiReq *kimi.Request, req *Request) {
	if req.Model == ModelKimiK2Latest {
		// The public identifier maps to Moonshot's rolling "kimi-latest" wire name.
		kimiReq.Model = "kimi-latest"
		kimiReq.Temperature = 0.8
		kimiReq.MaxTokens = 8000
		kimiReq.TopP = 0.95
		kimiReq.FrequencyPenalty = 0.1
		kimiReq.PresencePenalty = 0.1
	} else {
		kimiReq.Temperature = 0.7
		kimiReq.MaxTokens = 2000
	}

	if req.Temperature > 0 {
		kimiReq.Temperature = req.Temperature
	}
	if req.MaxTokens > 0 {
		kimiReq.MaxTokens = req.MaxTokens
	}
	if req.TopP > 0 {
		kimiReq.TopP = req.TopP
	}
	if req.FrequencyPenalty > 0 {
		kimiReq.FrequencyPenalty = req.FrequencyPenalty
	}
	if req.PresencePenalty > 0 {
		kimiReq.PresencePenalty = req.PresencePenalty
	}
}

// convertToKimiMessages converts normalized messages to the Kimi wire format
func convertToKimiMessages(msgs []Message) []kimi.Message {
	messages := make([]kimi.Message, len(msgs))
	for i, msg := range msgs {
		messages[i] = kimi.Message{Role: msg.Role, Content: msg.Content}
	}
	return messages
}

// OpenRouterAdapter adapts pkg/openrouter to the modelrouter.Provider interface.
type OpenRouterAdapter struct {
	client  openrouter.IOpenRouter
	timeout time.Duration
}

// NewOpenRouterAdapter creates a new OpenRouter adapter
func NewOpenRouterAdapter(client openrouter.IOpenRouter, timeout time.Duration) *OpenRouterAdapter {
	if timeout == 0 {
		timeout = openrouter.DefaultTimeout
	}
	return &OpenRouterAdapter{client: client, timeout: timeout}
}

// Complete implements Provider interface
func (a *OpenRouterAdapter) Complete(ctx context.Context, req *Request) (*Result, error) {
	orReq := &openrouter.Request{
		Model:    req.Model,
		Messages: convertToOpenRouterMessages(req.Messages),
	}
	applyOpenRouterTier(orReq, req)

	resp, err := a.client.ChatCompletion(ctx, orReq)
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openrouter: response has no choices")
	}

	choice := resp.Choices[0]
	return &Result{
		Content: choice.Message.Content,
		Model:   req.Model,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
		FinishReason: NormalizeFinishReason(choice.FinishReason),
	}, nil
}

// Name returns the provider family name
func (a *OpenRouterAdapter) Name() string {
	return string(FamilyOpenRouter)
}

// Timeout returns the per-call bound for this provider
func (a *OpenRouterAdapter) Timeout() time.Duration {
	return a.timeout
}

// applyOpenRouterTier applies per-model parameter tuning. GPT-5 gets the
// long-output tier; explicit request values always win.
func applyOpenRouterTier(orReq *openrouter.Request, req *Request) {
	orReq.Temperature = 0.7
	orReq.MaxTokens = 2000

	if req.Model == ModelGPT5 {
		orReq.MaxTokens = 4000
		orReq.TopP = 0.9
		orReq.FrequencyPenalty = 0.1
		orReq.PresencePenalty = 0.1
	}

	if req.Temperature > 0 {
		orReq.Temperature = req.Temperature
	}
	if req.MaxTokens > 0 {
		orReq.MaxTokens = req.MaxTokens
	}
	if req.TopP > 0 {
		orReq.TopP = req.TopP
	}
	if req.FrequencyPenalty > 0 {
		orReq.FrequencyPenalty = req.FrequencyPenalty
	}
	if req.PresencePenalty > 0 {
		orReq.PresencePenalty = req.PresencePenalty
	}
}

// convertToOpenRouterMessages converts normalized messages to the OpenRouter wire format
func convertToOpenRouterMessages(msgs []Message) []openrouter.Message {
	messages := make([]openrouter.Message, len(msgs))
	for i, msg := range msgs {
		messages[i] = openrouter.Message{Role: msg.Role, Content: msg.Content}
	}
	return messages
}
