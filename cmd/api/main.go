package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"intent-chat-service/config"
	_ "intent-chat-service/docs" // Swagger docs
	"intent-chat-service/internal/chat/session"
	chatUsecase "intent-chat-service/internal/chat/usecase"
	"intent-chat-service/internal/httpserver"
	"intent-chat-service/internal/intent"
	catalogRepo "intent-chat-service/internal/intent/repository/file"
	intentUsecase "intent-chat-service/internal/intent/usecase"
	"intent-chat-service/pkg/embedding"
	"intent-chat-service/pkg/log"
)

// @title       Intent Chat Service API
// @description Intent-matching chatbot over precomputed embeddings, with per-session conversation state.
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

	logger.Info(ctx, "Starting Intent Chat Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Catalog path: %s", cfg.Catalog.Path)

	// 3. Intent catalog (precomputed embeddings)
	repo := catalogRepo.New(cfg.Catalog.Path, logger)
	catalog, err := repo.LoadCatalog(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load intent catalog: %v", err)
	}
	logger.Infof(ctx, "Catalog loaded: %d intents, dimension %d, model %s",
		len(catalog.Records), catalog.Dimension, catalog.Model)

	// 4. Embedding provider. The catalog records which model produced its
	// vectors; config only overrides it deliberately.
	model := cfg.Embedding.Model
	if model == "" {
		model = catalog.Model
	}
	embedder, err := embedding.New(embedding.Config{
		Provider: cfg.Embedding.Provider,
		APIKey:   cfg.Embedding.APIKey,
		Model:    model,
		BaseURL:  cfg.Embedding.BaseURL,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize embedding provider: %v", err)
	}

	// 5. Intent matcher
	matcher, err := intentUsecase.New(logger, catalog, embedder, nil)
	if err != nil {
		if errors.Is(err, intent.ErrEmptyCatalog) {
			logger.Fatal(ctx, "Catalog has no intents, nothing to match against")
		}
		logger.Fatalf(ctx, "Failed to initialize intent matcher: %v", err)
	}

	// 6. Chat domain
	sessions, err := session.NewStore(cfg.Chat.MaxSessions, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize session store: %v", err)
	}
	chatUsecaseImpl := chatUsecase.New(logger, matcher, sessions)

	// 7. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ChatUseCase:     chatUsecaseImpl,
		RateLimitPerMin: cfg.Chat.RateLimitPerMin,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	logger.Infof(ctx, "HTTP server listening on :%d", cfg.HTTPServer.Port)
	if err := srv.Run(); err != nil {
		logger.Fatalf(ctx, "HTTP server stopped: %v", err)
	}
}
