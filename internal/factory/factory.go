package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"batepapo/internal/dependencies/clock"
	"batepapo/internal/dependencies/ident"
	"batepapo/internal/services/chat"
	"batepapo/internal/services/presence"
	"batepapo/internal/storage"
	"batepapo/internal/storage/memory"
	redisstorage "batepapo/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Storage storage.Storage

	Clock clock.Clock
	Ident ident.Generator

	ChatService *chat.Service
	Sweeper     *presence.Sweeper
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config

	// Sweeper settings; zero values take the presence package defaults
	SweepInterval   time.Duration
	PresenceTimeout time.Duration
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
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

	clk := clock.New()
	gen := ident.New()

	return &App{
		Storage:     store,
		Clock:       clk,
		Ident:       gen,
		ChatService: chat.New(store, clk, gen, logger),
		Sweeper:     presence.New(store, clk, gen, cfg.SweepInterval, cfg.PresenceTimeout, logger),
	}, nil
}
