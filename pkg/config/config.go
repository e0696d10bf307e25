// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines server, state store, feed, player, notification and logging settings

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Store selects where the application state is persisted
	Store StoreConfig

	// Feed controls how feeds are resolved
	Feed FeedConfig

	// Player controls player sessions
	Player PlayerConfig

	// Notify selects the notification transport
	Notify NotifyConfig

	// Log controls log output
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the number of requests a client may make per minute
	RateLimit int
}

// StoreConfig holds state persistence configuration
type StoreConfig struct {
	// Type specifies the backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLitePath is the database file for the sqlite backend
	SQLitePath string

	// Memory contains in-memory backend configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory backend configuration
type MemoryConfig struct {
	// CleanupInterval is how often expired entries are purged, in seconds
	CleanupInterval int
}

// FeedConfig holds feed resolution configuration
type FeedConfig struct {
	// Mode is "proxy" (rss2json) or "direct" (parse the feed in-process)
	Mode string

	// ProxyURL is the RSS-to-JSON endpoint
	ProxyURL string

	// TimeoutSeconds bounds a single fetch
	TimeoutSeconds int

	// Workers is the size of the background resolution pool
	Workers int
}

// PlayerConfig holds player session configuration
type PlayerConfig struct {
	// SettleMillis is the delay before the player asks for fullscreen
	SettleMillis int

	// DefaultScreen is the screen shown when none is selected
	DefaultScreen string
}

// NotifyConfig holds notification transport configuration
type NotifyConfig struct {
	// Type is "memory" or "redis"
	Type string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsIntOrDefault("RATE_LIMIT", 100),
		},
		Store: StoreConfig{
			Type: getEnvOrDefault("STORE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "signage.db"),
			Memory: MemoryConfig{
				CleanupInterval: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
		},
		Feed: FeedConfig{
			Mode:           getEnvOrDefault("FEED_MODE", "proxy"),
			ProxyURL:       getEnvOrDefault("FEED_PROXY_URL", "https://api.rss2json.com/v1/api.json"),
			TimeoutSeconds: getEnvAsIntOrDefault("FEED_TIMEOUT_SECONDS", 15),
			Workers:        getEnvAsIntOrDefault("FEED_WORKERS", 4),
		},
		Player: PlayerConfig{
			SettleMillis:  getEnvAsIntOrDefault("PLAYER_SETTLE_MS", 2000),
			DefaultScreen: getEnvOrDefault("PLAYER_DEFAULT_SCREEN", "1"),
		},
		Notify: NotifyConfig{
			Type: getEnvOrDefault("NOTIFY_TYPE", "memory"),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// FeedTimeout returns the per-fetch timeout
func (c *Config) FeedTimeout() time.Duration {
	return time.Duration(c.Feed.TimeoutSeconds) * time.Second
}

// SettleDelay returns the fullscreen settle delay
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.Player.SettleMillis) * time.Millisecond
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 1 {
		return errors.New("rate limit must be at least 1 request per minute")
	}

	switch c.Store.Type {
	case "memory", "sqlite":
	case "redis":
		if c.Store.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis store")
		}
	default:
		return fmt.Errorf("store type must be 'memory', 'redis' or 'sqlite', got %q", c.Store.Type)
	}

	if c.Store.Type == "sqlite" && c.Store.SQLitePath == "" {
		return errors.New("sqlite path cannot be empty when using sqlite store")
	}

	if c.Feed.Mode != "proxy" && c.Feed.Mode != "direct" {
		return fmt.Errorf("feed mode must be 'proxy' or 'direct', got %q", c.Feed.Mode)
	}

	if c.Feed.Mode == "proxy" && c.Feed.ProxyURL == "" {
		return errors.New("feed proxy URL cannot be empty in proxy mode")
	}

	if c.Feed.TimeoutSeconds < 1 {
		return errors.New("feed timeout must be at least 1 second")
	}

	if c.Feed.Workers < 1 {
		return errors.New("feed workers must be at least 1")
	}

	if c.Player.SettleMillis < 0 {
		return errors.New("player settle delay cannot be negative")
	}

	if c.Notify.Type != "memory" && c.Notify.Type != "redis" {
		return fmt.Errorf("notify type must be 'memory' or 'redis', got %q", c.Notify.Type)
	}

	if c.Notify.Type == "redis" && c.Store.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis notifications")
	}

	return nil
}
