package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// AI pipeline
	AI         AIConfig
	Kimi       KimiConfig
	OpenRouter OpenRouterConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

// AIConfig holds the model defaults and timezone used for relative-date resolution.
type AIConfig struct {
	DefaultTaskModel string
	DefaultChatModel string
	Timezone         string
}

// KimiConfig holds configuration for the Moonshot (Kimi) provider.
type KimiConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// OpenRouterConfig holds configuration for the OpenRouter provider.
type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Referer string
	Title   string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// AI defaults
	cfg.AI.DefaultTaskModel = viper.GetString("ai.default_task_model")
	cfg.AI.DefaultChatModel = viper.GetString("ai.default_chat_model")
	cfg.AI.Timezone = viper.GetString("ai.timezone")

	// Kimi (Moonshot)
	cfg.Kimi.APIKey = expandEnvVar(viper.GetString("kimi.api_key"))
	cfg.Kimi.BaseURL = viper.GetString("kimi.base_url")
	cfg.Kimi.Timeout = viper.GetDuration("kimi.timeout")
	if kimiKey := viper.GetString("kimi_api_key"); kimiKey != "" {
		cfg.Kimi.APIKey = kimiKey
	}

	// OpenRouter
	cfg.OpenRouter.APIKey = expandEnvVar(viper.GetString("openrouter.api_key"))
	cfg.OpenRouter.BaseURL = viper.GetString("openrouter.base_url")
	cfg.OpenRouter.Timeout = viper.GetDuration("openrouter.timeout")
	cfg.OpenRouter.Referer = viper.GetString("openrouter.referer")
	cfg.OpenRouter.Title = viper.GetString("openrouter.title")
	if orKey := viper.GetString("openrouter_api_key"); orKey != "" {
		cfg.OpenRouter.APIKey = orKey
	}

	if cfg.Kimi.APIKey == "" && cfg.OpenRouter.APIKey == "" {
		// Not fatal: the engine degrades to the rule-based parser, and the
		// dispatcher reports failures as plain messages.
		fmt.Println("Warning: no provider API key configured, AI-assisted parsing will be unavailable")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)

	// AI defaults
	viper.SetDefault("ai.default_task_model", "kimi-k2-latest")
	viper.SetDefault("ai.default_chat_model", "kimi-k2-latest")
	viper.SetDefault("ai.timezone", "Asia/Shanghai")

	// Provider defaults
	viper.SetDefault("kimi.base_url", "https://api.moonshot.cn/v1")
	viper.SetDefault("kimi.timeout", "30s")
	viper.SetDefault("openrouter.base_url", "https://openrouter.ai/api/v1")
	viper.SetDefault("openrouter.timeout", "60s")
	viper.SetDefault("openrouter.referer", "https://cortex-ai-workspace.com")
	viper.SetDefault("openrouter.title", "Cortex AI Workspace")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
