package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mcoot/gobang/internal/config"
	"github.com/mcoot/gobang/internal/metrics"
	"github.com/mcoot/gobang/internal/services/players"
	"github.com/mcoot/gobang/internal/storage"
	"github.com/mcoot/gobang/internal/storage/memory"
	mongostorage "github.com/mcoot/gobang/internal/storage/mongo"
	redisstorage "github.com/mcoot/gobang/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	// Storage is the process-wide store handle, closed by Close
	Storage storage.Storage

	// Metrics
	Registry    *prometheus.Registry
	Metrics     *metrics.Service
	HTTPMetrics *metrics.HTTP

	// Services
	PlayerService *players.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "mongo")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// MongoConfig holds MongoDB connection settings (required if StorageType is "mongo")
	MongoConfig *mongostorage.Config
}

// ConfigFromEnv maps the process configuration onto factory settings
func ConfigFromEnv(cfg config.Config, logger *slog.Logger) Config {
	fc := Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
	}

	switch cfg.StorageType {
	case config.StorageTypeRedis:
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.Redis.URL
		redisCfg.KeyPrefix = cfg.Redis.KeyPrefix
		fc.RedisConfig = &redisCfg
	case config.StorageTypeMongo:
		mongoCfg := mongostorage.DefaultConfig()
		mongoCfg.URI = cfg.Mongo.URI
		mongoCfg.Database = cfg.Mongo.Database
		mongoCfg.Collection = cfg.Mongo.Collection
		fc.MongoConfig = &mongoCfg
	}

	return fc
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageTypeMemory
	}

	switch storageType {
	case config.StorageTypeMemory:
		store = memory.New()
	case config.StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	case config.StorageTypeMongo:
		if cfg.MongoConfig == nil {
			return nil, errors.New("MongoConfig required when StorageType is mongo")
		}
		mongoStore, err := mongostorage.New(ctx, *cfg.MongoConfig)
		if err != nil {
			return nil, err
		}
		store = mongoStore
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'redis' or 'mongo'", storageType)
	}

	logger.Info("storage initialized", slog.String("type", storageType))

	return newWithDependencies(store, prometheus.NewRegistry(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, registry *prometheus.Registry, logger *slog.Logger) *App {
	metricsSvc := metrics.NewService(registry)
	httpMetrics := metrics.NewHTTP(registry)
	playerService := players.New(store, metricsSvc, logger)

	return &App{
		Storage:       store,
		Registry:      registry,
		Metrics:       metricsSvc,
		HTTPMetrics:   httpMetrics,
		PlayerService: playerService,
	}
}

// Close releases the store handle
func (a *App) Close(ctx context.Context) error {
	return a.Storage.Close(ctx)
}
