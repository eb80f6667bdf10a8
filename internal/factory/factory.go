package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/arcadenight/leaderboard-go/internal/denylist"
	"github.com/arcadenight/leaderboard-go/internal/dependencies/clock"
	"github.com/arcadenight/leaderboard-go/internal/services/leaderboard"
	"github.com/arcadenight/leaderboard-go/internal/storage"
	"github.com/arcadenight/leaderboard-go/internal/storage/memory"
	redisstorage "github.com/arcadenight/leaderboard-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Storage storage.Storage
	Clock   clock.Clock

	Denylist           *denylist.List
	LeaderboardService *leaderboard.Service
}

// Config holds configuration for the application factory
type Config struct {
	// BlockedPhones is the startup denylist of phone identifiers
	BlockedPhones []string
	// ServiceConfig holds leaderboard service toggles (optional)
	// If zero value, defaults to leaderboard.DefaultConfig()
	ServiceConfig *leaderboard.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	clk := clock.New()

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New(clk)
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	svcCfg := leaderboard.DefaultConfig()
	if cfg.ServiceConfig != nil {
		svcCfg = *cfg.ServiceConfig
	}

	return newWithDependencies(store, clk, cfg.BlockedPhones, svcCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, blockedPhones []string, svcCfg leaderboard.Config, logger *slog.Logger) *App {
	blocked := denylist.New(blockedPhones)
	service := leaderboard.New(store, blocked, clk, svcCfg, logger)

	return &App{
		Storage:            store,
		Clock:              clk,
		Denylist:           blocked,
		LeaderboardService: service,
	}
}
