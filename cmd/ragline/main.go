package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mkrall/ragline/internal/answer"
	"github.com/mkrall/ragline/internal/api"
	"github.com/mkrall/ragline/internal/config"
	"github.com/mkrall/ragline/internal/embedding"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	logger.Info("Starting ragline...")

	// Load configuration
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "configs/ragline.json"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.String("path", cfgPath), zap.Error(err))
	}
	logger.Info("Config loaded", zap.String("path", cfgPath))

	// Embeddings always go through OpenAI regardless of the chat provider.
	embedder := embedding.NewGenerator(embedding.Config{
		Endpoint: cfg.AI.OpenAIEndpoint,
		APIKey:   cfg.AI.OpenAIAPIKey,
		Model:    cfg.AI.OpenAIEmbedModel,
	}, logger)

	synthesizer, err := answer.NewSynthesizer(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize synthesizer", zap.Error(err))
	}

	handler := api.NewHandler(embedder, synthesizer, logger)

	port := fmt.Sprintf("%d", cfg.Server.Port)
	if port == "0" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("ragline listening", zap.String("port", port))
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down ragline...")
	srv.Shutdown(context.Background())
}
