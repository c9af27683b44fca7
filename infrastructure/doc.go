// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, persistence, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-process cache backed by go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: File-based cache that survives restarts
// - http/standard: HTTP client with retry logic and a politeness limiter
// - logger/standard: Structured logger backed by logrus
// - store/sqlite: SQLite article archive
// - store/redis: RedisJSON article archive
// - feedtable: CSV feed table loader
// - export: Per-run CSV/JSON batch writers
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(time.Hour, 2*time.Hour)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	})
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures:
//
//	client := standard.NewStandardHTTPClient(standard.Config{
//	    Timeout: 30 * time.Second,
//	})
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := standard.NewStandardLogger()
//	logger.Info("Feed processed", map[string]interface{}{
//	    "feed_name": "nhk_news",
//	    "items":     42,
//	})
//
package infrastructure
