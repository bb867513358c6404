package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cortex-workspace/config"
	aitaskDelivery "cortex-workspace/internal/aitask/delivery/http"
	aitaskUC "cortex-workspace/internal/aitask/usecase"
	assistDelivery "cortex-workspace/internal/assist/delivery/http"
	assistUC "cortex-workspace/internal/assist/usecase"
	chatDelivery "cortex-workspace/internal/chat/delivery/http"
	chatUC "cortex-workspace/internal/chat/usecase"
	"cortex-workspace/internal/httpserver"
	"cortex-workspace/internal/middleware"
	"cortex-workspace/pkg/log"
	"cortex-workspace/pkg/modelrouter"
	"cortex-workspace/pkg/ruleparse"
)

// @title       Cortex AI Workspace API
// @description Natural-language task parsing, conversational commands, and writing assistance over heterogeneous LLM providers.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Cortex AI Workspace...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Model gateway over the configured providers
	gateway, err := modelrouter.InitializeGateway(cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize model gateway: %v", err)
		return
	}
	logger.Infof(ctx, "Model gateway ready: task_default=%s chat_default=%s", gateway.DefaultTaskModel(), gateway.DefaultChatModel())

	// 4. Rule-based fallback parser and timezone
	timezone := cfg.AI.Timezone
	rules, err := ruleparse.NewParser(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		timezone = "UTC"
		rules, _ = ruleparse.NewParser(timezone)
	}
	location, err := time.LoadLocation(timezone)
	if err != nil {
		location = time.UTC
	}

	// 5. Domain use cases
	taskUC := aitaskUC.New(logger, gateway, rules, location)
	dispatcherUC := chatUC.New(logger, gateway)
	writerUC := assistUC.New(logger, gateway)

	// 6. Delivery handlers and middleware
	mw := middleware.New(logger, cfg)
	taskHandler := aitaskDelivery.New(logger, taskUC, gateway)
	commandHandler := chatDelivery.New(logger, dispatcherUC)
	writerHandler := assistDelivery.New(logger, writerUC)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		Middleware:    mw,
		AITaskHandler: taskHandler,
		ChatHandler:   commandHandler,
		AssistHandler: writerHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
