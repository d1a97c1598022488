package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"physics-writing-assistant/config"
	_ "physics-writing-assistant/docs" // Swagger docs
	discussionUC "physics-writing-assistant/internal/discussion/usecase"
	"physics-writing-assistant/internal/httpserver"
	"physics-writing-assistant/internal/memory/inmem"
	"physics-writing-assistant/internal/metrics"
	"physics-writing-assistant/internal/persona"
	reviewUC "physics-writing-assistant/internal/review/usecase"
	"physics-writing-assistant/pkg/llmprovider"
	"physics-writing-assistant/pkg/log"
)

// @title       Physics Writing Assistant API
// @description Round-table discussion and section review for physics manuscripts.
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

	logger.Info(ctx, "Starting Physics Writing Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	recorder := metrics.NewRecorder()

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize LLM providers: %v", err)
	}

	maxTotal, err := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	if err != nil {
		logger.Warnf(ctx, "Invalid llm.max_total_timeout %q, running without a global limit: %v", cfg.LLM.MaxTotalTimeout, err)
		maxTotal = 0
	}

	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		MaxTotalTimeout: maxTotal,
		Recorder:        recorder,
	}, logger)
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}

	// 4. Memory store
	storeFactory, err := inmem.NewFactory(inmem.Config{
		AccessKey: cfg.Memory.AccessKey,
		Logger:    logger,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize memory store: %v", err)
	}

	// 5. Domains
	discussionUseCase := discussionUC.New(logger, llmManager, storeFactory, persona.Default(), recorder, discussionUC.Config{
		MaxIterations:   cfg.Discussion.MaxIterations,
		RunTimeout:      cfg.Discussion.RunTimeout,
		ResultCacheSize: cfg.Discussion.ResultCacheSize,
		ResultTTL:       cfg.Discussion.ResultTTL,
	})
	reviewUseCase := reviewUC.New(logger, llmManager, cfg.Review.DefaultFormat)

	// 6. HTTP Server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		DiscussionUseCase: discussionUseCase,
		ReviewUseCase:     reviewUseCase,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := srv.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped")
}
