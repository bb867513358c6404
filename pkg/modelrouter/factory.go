package modelrouter

import (
	"fmt"

	"cortex-workspace/config"
	"cortex-workspace/pkg/kimi"
	"cortex-workspace/pkg/log"
	"cortex-workspace/pkg/openrouter"
)

// InitializeGateway builds the gateway from service configuration.
// Provider families without credentials are skipped rather than failing the
// service: calls routed to them return ErrProviderNotConfigured and callers
// degrade per their own policy.
func InitializeGateway(cfg *config.Config, logger log.Logger) (*Gateway, error) {
	providers := make(map[Family]Provider)

	if cfg.Kimi.APIKey != "" {
		client, err := kimi.New(kimi.Config{
			APIKey:  cfg.Kimi.APIKey,
			BaseURL: cfg.Kimi.BaseURL,
			Timeout: cfg.Kimi.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create kimi client: %w", err)
		}
		providers[FamilyKimi] = NewKimiAdapter(client, cfg.Kimi.Timeout)
	}

	if cfg.OpenRouter.APIKey != "" {
		client, err := openrouter.New(openrouter.Config{
			APIKey:  cfg.OpenRouter.APIKey,
			BaseURL: cfg.OpenRouter.BaseURL,
			Timeout: cfg.OpenRouter.Timeout,
			Referer: cfg.OpenRouter.Referer,
			Title:   cfg.OpenRouter.Title,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create openrouter client: %w", err)
		}
		providers[FamilyOpenRouter] = NewOpenRouterAdapter(client, cfg.OpenRouter.Timeout)
	}

	return NewGateway(providers, Defaults{
		TaskModel: cfg.AI.DefaultTaskModel,
		ChatModel: cfg.AI.DefaultChatModel,
	}, logger)
}
