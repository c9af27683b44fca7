// ABOUTME: Configuration management for the collector with environment variable support
// ABOUTME: Defines configuration structures for collection, cache, store, export, and serving

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Collector contains collection run configuration
	Collector CollectorConfig

	// Cache contains cache backend configuration
	Cache CacheConfig

	// Store contains article archive configuration
	Store StoreConfig

	// Export contains batch export configuration
	Export ExportConfig

	// Server contains HTTP server configuration
	Server ServerConfig

	// Redis is shared by the redis cache and store backends
	Redis RedisConfig
}

// CollectorConfig holds collection run configuration
type CollectorConfig struct {
	// FeedTablePath is the feed table CSV location
	FeedTablePath string

	// UserAgent overrides the default fetch user agent when set
	UserAgent string

	// FetchTimeout is the per-request timeout in seconds
	FetchTimeout int

	// EntryConcurrency bounds concurrent article fetches per feed
	EntryConcurrency int

	// FeedConcurrency bounds concurrently processed feeds
	FeedConcurrency int

	// Validation is the URL reachability policy (soft/hard/off)
	Validation string

	// Enrichment toggles metadata and thumbnail color enrichment
	Enrichment bool

	// RateLimit is the politeness limiter in requests per second; 0 disables it
	RateLimit float64

	// RefreshTimer is the interval in seconds between automatic
	// collection runs in serve mode; 0 disables the ticker
	RefreshTimer int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory/sqlite)
	Type string

	// DefaultTTL is the default TTL for cache entries in seconds
	DefaultTTL int

	// SQLitePath is the cache database file for the sqlite backend
	SQLitePath string
}

// StoreConfig holds article archive configuration
type StoreConfig struct {
	// Type specifies the archive backend (sqlite/redis/none)
	Type string

	// SQLitePath is the archive database file for the sqlite backend
	SQLitePath string

	// TTL is the document lifetime in seconds for the redis backend;
	// 0 keeps documents forever
	TTL int
}

// ExportConfig holds batch export configuration
type ExportConfig struct {
	// Dir is the directory batch files are written into
	Dir string

	// Formats lists the enabled exporters (csv/json)
	Formats []string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Enabled switches between run-once and serve mode
	Enabled bool

	// Port is the HTTP server port
	Port string

	// RateLimit is the per-IP request rate limit in requests per second
	RateLimit float64
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Collector: CollectorConfig{
			FeedTablePath:    getEnvOrDefault("COLLECTOR_FEED_TABLE", "data/feed_table.csv"),
			UserAgent:        getEnvOrDefault("COLLECTOR_USER_AGENT", ""),
			FetchTimeout:     getEnvAsIntOrDefault("COLLECTOR_FETCH_TIMEOUT", 30),
			EntryConcurrency: getEnvAsIntOrDefault("COLLECTOR_ENTRY_CONCURRENCY", 8),
			FeedConcurrency:  getEnvAsIntOrDefault("COLLECTOR_FEED_CONCURRENCY", 4),
			Validation:       getEnvOrDefault("COLLECTOR_VALIDATION", "soft"),
			Enrichment:       getEnvAsBoolOrDefault("COLLECTOR_ENRICHMENT", true),
			RateLimit:        getEnvAsFloatOrDefault("COLLECTOR_RATE_LIMIT", 0),
			RefreshTimer:     getEnvAsIntOrDefault("COLLECTOR_REFRESH", 0),
		},
		Cache: CacheConfig{
			Type:       getEnvOrDefault("CACHE_TYPE", "memory"),
			DefaultTTL: getEnvAsIntOrDefault("CACHE_DEFAULT_TTL", 3600),
			SQLitePath: getEnvOrDefault("CACHE_SQLITE_PATH", "cache.db"),
		},
		Store: StoreConfig{
			Type:       getEnvOrDefault("STORE_TYPE", "sqlite"),
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "articles.db"),
			TTL:        getEnvAsIntOrDefault("STORE_TTL", 0),
		},
		Export: ExportConfig{
			Dir:     getEnvOrDefault("EXPORT_DIR", "export_data"),
			Formats: getEnvAsListOrDefault("EXPORT_FORMATS", []string{"csv"}),
		},
		Server: ServerConfig{
			Enabled:   getEnvAsBoolOrDefault("SERVER_ENABLED", false),
			Port:      getEnvOrDefault("SERVER_PORT", "8000"),
			RateLimit: getEnvAsFloatOrDefault("SERVER_RATE_LIMIT", 5),
		},
		Redis: RedisConfig{
			Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnvOrDefault("REDIS_PASSWORD", ""),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
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

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsListOrDefault returns the environment variable as a comma
// separated list or a default
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			list = append(list, part)
		}
	}

	if len(list) == 0 {
		return defaultValue
	}
	return list
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Collector.FeedTablePath == "" {
		return errors.New("feed table path cannot be empty")
	}

	if c.Collector.FetchTimeout < 1 {
		return errors.New("fetch timeout must be at least 1 second")
	}

	if c.Collector.EntryConcurrency < 1 {
		return errors.New("entry concurrency must be at least 1")
	}

	if c.Collector.FeedConcurrency < 1 {
		return errors.New("feed concurrency must be at least 1")
	}

	switch c.Collector.Validation {
	case "soft", "hard", "off":
	default:
		return errors.New("validation policy must be 'soft', 'hard', or 'off'")
	}

	if c.Collector.RateLimit < 0 {
		return errors.New("rate limit cannot be negative")
	}

	if c.Collector.RefreshTimer < 0 {
		return errors.New("refresh timer cannot be negative")
	}

	switch c.Cache.Type {
	case "memory":
	case "redis":
		if c.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	case "sqlite":
		if c.Cache.SQLitePath == "" {
			return errors.New("sqlite path cannot be empty when using sqlite cache")
		}
	default:
		return errors.New("cache type must be 'redis', 'memory', or 'sqlite'")
	}

	switch c.Store.Type {
	case "sqlite":
		if c.Store.SQLitePath == "" {
			return errors.New("sqlite path cannot be empty when using sqlite store")
		}
	case "redis":
		if c.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis store")
		}
	case "none":
	default:
		return errors.New("store type must be 'sqlite', 'redis', or 'none'")
	}

	for _, format := range c.Export.Formats {
		if format != "csv" && format != "json" {
			return fmt.Errorf("unknown export format %q", format)
		}
	}

	if len(c.Export.Formats) > 0 && c.Export.Dir == "" {
		return errors.New("export directory cannot be empty when exports are enabled")
	}

	if c.Server.Enabled && c.Server.Port == "" {
		return errors.New("port cannot be empty when the server is enabled")
	}

	if c.Server.RateLimit < 0 {
		return errors.New("server rate limit cannot be negative")
	}

	return nil
}
