package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/HafizhRaihan31/Chatbot-MPL/internal/cache"
	"github.com/HafizhRaihan31/Chatbot-MPL/internal/chat"
	"github.com/HafizhRaihan31/Chatbot-MPL/internal/config"
	"github.com/HafizhRaihan31/Chatbot-MPL/internal/dataset"
	"github.com/HafizhRaihan31/Chatbot-MPL/internal/llm"
	"github.com/HafizhRaihan31/Chatbot-MPL/internal/observability"
)

func main() {
	// A missing .env file is fine; deployments inject real env vars.
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if len(os.Args) > 2 && os.Args[1] == "--config" {
		cfgPath = os.Args[2]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:       cfg.Observability.LogLevel,
		Format:      cfg.Observability.LogFormat,
		ServiceName: cfg.Observability.ServiceName,
	})

	store, err := dataset.Load(cfg.Dataset.Dir)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.Dataset.Dir).Msg("Failed to load dataset snapshot")
	}

	logger.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Int("teams", len(store.Teams())).
		Int("standings", len(store.Standings())).
		Int("matches", len(store.Schedule())).
		Msg("Starting chatbot API")

	answerCache := newCache(cfg, logger)
	defer answerCache.Close()

	provider, err := llm.New(llm.Config{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
		Timeout:  cfg.LLM.Timeout,
	})
	if err != nil {
		if !errors.Is(err, llm.ErrNoAPIKey) {
			logger.Fatal().Err(err).Msg("Failed to configure generation provider")
		}
		// Dataset-only mode: open-ended questions get an honest fallback.
		logger.Warn().Msg("No provider API key set, running without generation fallback")
		provider = nil
	}

	chatRouter := chat.NewRouter(store, provider, answerCache, logger, chat.Config{
		Polish:       cfg.Chat.Polish,
		CacheAnswers: cfg.Chat.CacheAnswers,
		CacheTTL:     cfg.Cache.TTL,
	})

	router := NewRouter(logger, store, chatRouter, cfg.Server.ReadTimeout)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("HTTP server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error().Err(err).Msg("Server error")
	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdown)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
		if err := srv.Close(); err != nil {
			logger.Error().Err(err).Msg("Forced shutdown failed")
		}
	}

	logger.Info().Msg("Server stopped")
}

// newCache builds the configured answer-cache driver, falling back to the
// in-process cache when redis is unreachable.
func newCache(cfg *config.Config, logger *observability.Logger) cache.Client {
	if cfg.Cache.Driver == "redis" {
		client, err := cache.NewRedisClient(cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			PoolSize: cfg.Cache.Redis.PoolSize,
		})
		if err == nil {
			return client
		}
		logger.Warn().Err(err).Msg("Redis unavailable, using in-memory answer cache")
	}
	return cache.NewMemoryClient(cfg.Cache.MaxEntries)
}
