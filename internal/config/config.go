package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeMongo  = "mongo"
)

// Log format constants
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Config holds all configuration for the server process
type Config struct {
	Host string
	Port int

	StorageType string
	Redis       RedisConfig
	Mongo       MongoConfig

	// AllowedOrigins lists CORS origins; "*" allows any origin
	AllowedOrigins []string

	LogLevel  slog.Level
	LogFormat string
}

type RedisConfig struct {
	URL       string
	KeyPrefix string
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// Load reads configuration from an optional .env file and the environment.
// Variables already set in the environment take precedence over .env.
func Load(envFiles ...string) (Config, error) {
	// A missing .env is normal outside local development
	_ = godotenv.Load(envFiles...)
	return FromEnv()
}

// FromEnv builds a Config from environment variables alone
func FromEnv() (Config, error) {
	cfg := Config{
		Host:        os.Getenv("HOST"),
		StorageType: getEnvOrDefault("STORAGE_TYPE", StorageTypeMemory),
		Redis: RedisConfig{
			URL:       os.Getenv("REDIS_URL"),
			KeyPrefix: getEnvOrDefault("REDIS_KEY_PREFIX", "gobang"),
		},
		Mongo: MongoConfig{
			URI:        os.Getenv("MONGODB_URI"),
			Database:   getEnvOrDefault("MONGODB_DATABASE", "gobang"),
			Collection: getEnvOrDefault("MONGODB_COLLECTION", "players"),
		},
		AllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		LogFormat:      strings.ToLower(getEnvOrDefault("LOG_FORMAT", LogFormatJSON)),
	}

	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}
	cfg.Port = port

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnvOrDefault("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the selected storage backend has what it needs
func (c Config) Validate() error {
	switch c.StorageType {
	case StorageTypeMemory:
	case StorageTypeRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("REDIS_URL required when STORAGE_TYPE=%s", StorageTypeRedis)
		}
	case StorageTypeMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("MONGODB_URI required when STORAGE_TYPE=%s", StorageTypeMongo)
		}
	default:
		return fmt.Errorf("invalid STORAGE_TYPE %q: must be memory, redis or mongo", c.StorageType)
	}

	switch c.LogFormat {
	case LogFormatJSON, LogFormatText:
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q: must be json or text", c.LogFormat)
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
