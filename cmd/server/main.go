package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/arcadenight/leaderboard-go/internal/api"
	"github.com/arcadenight/leaderboard-go/internal/factory"
	"github.com/arcadenight/leaderboard-go/internal/services/leaderboard"
	redisstorage "github.com/arcadenight/leaderboard-go/internal/storage/redis"
)

// defaultBlockedPhones is the built-in denylist, overridable with the
// BLOCKED_PHONES environment variable
var defaultBlockedPhones = []string{
	"596161717",
	"551400977",
	"511206591",
	"574110338",
	"577078623",
	"557171006",
	"555430620",
	"592084080",
	"551664414",
}

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	svcCfg := serviceConfigFromEnv()
	cfg := factory.Config{
		BlockedPhones: blockedPhonesFromEnv(),
		ServiceConfig: &svcCfg,
		Logger:        logger,
		StorageType:   os.Getenv("STORAGE_TYPE"),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		LeaderboardService: app.LeaderboardService,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			serverConfig.Port = p
		}
	}
	serverConfig.Host = os.Getenv("HOST")
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// blockedPhonesFromEnv reads the denylist from BLOCKED_PHONES
// (comma-separated), falling back to the built-in list
func blockedPhonesFromEnv() []string {
	raw := os.Getenv("BLOCKED_PHONES")
	if raw == "" {
		return defaultBlockedPhones
	}

	var phones []string
	for _, entry := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(entry); trimmed != "" {
			phones = append(phones, trimmed)
		}
	}
	return phones
}

// serviceConfigFromEnv reads the deployment-variant toggles:
// PHONE_IDENTITY (default true) and TOP_LIMIT (default unlimited)
func serviceConfigFromEnv() leaderboard.Config {
	cfg := leaderboard.DefaultConfig()

	if v := os.Getenv("PHONE_IDENTITY"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.PhoneIdentity = enabled
		}
	}
	if v := os.Getenv("TOP_LIMIT"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit >= 0 {
			cfg.TopLimit = limit
		}
	}
	return cfg
}
