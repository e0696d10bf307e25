// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as state persistence, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache backed by go-cache
// - cache/redis: Redis-based cache, whose client is shared with the Redis event hub
// - cache/sqlite: SQLite-backed cache for single-box installs
// - http/standard: net/http client with bounded retries for transient failures
// - logger/structured: logrus logger with optional file rotation
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(10 * time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), 0)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// SQLite Cache Example:
//
//	cache, err := sqlite.NewSQLiteCache("signage.db")
//	defer cache.Close()
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(10*time.Second, 2)
//	resp, err := client.Get(ctx, "https://example.com/feed.xml")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := structured.New(structured.Options{Level: "info", Format: "json"})
//	logger.Info("Screen registered", map[string]interface{}{
//	    "screen_id": "4",
//	})
package infrastructure
