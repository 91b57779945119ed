package redis

import "time"

// Config holds Redis connection settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379/0)
	URL string

	// KeyPrefix namespaces every key this store writes
	KeyPrefix string

	// ConnectTimeout bounds the startup ping
	ConnectTimeout time.Duration

	// Pool settings
	PoolSize     int
	MinIdleConns int
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:            "redis://localhost:6379",
		KeyPrefix:      defaultKeyPrefix,
		ConnectTimeout: 5 * time.Second,
		PoolSize:       10,
		MinIdleConns:   2,
	}
}

func (c Config) keys() keys {
	if c.KeyPrefix == "" {
		return keys{prefix: defaultKeyPrefix}
	}
	return keys{prefix: c.KeyPrefix}
}
