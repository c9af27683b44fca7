// ABOUTME: Main entry point for the newswire collector
// ABOUTME: Wires the pipeline, then runs one collection or serves the API

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newswire-collector/api"
	"newswire-collector/api/handlers"
	"newswire-collector/core/collector"
	"newswire-collector/core/dispatch"
	"newswire-collector/core/interfaces"
	"newswire-collector/core/registry"
	"newswire-collector/core/runner"
	"newswire-collector/core/search"
	"newswire-collector/core/services"
	"newswire-collector/core/workers"
	"newswire-collector/infrastructure/cache/memory"
	rediscache "newswire-collector/infrastructure/cache/redis"
	sqlitecache "newswire-collector/infrastructure/cache/sqlite"
	"newswire-collector/infrastructure/export"
	"newswire-collector/infrastructure/feedtable"
	stdhttp "newswire-collector/infrastructure/http/standard"
	stdlogger "newswire-collector/infrastructure/logger/standard"
	redisstore "newswire-collector/infrastructure/store/redis"
	sqlitestore "newswire-collector/infrastructure/store/sqlite"
	"newswire-collector/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := stdlogger.NewStandardLoggerWithLevel(os.Getenv("LOG_LEVEL"))
	logger.Info("Starting newswire collector", map[string]interface{}{
		"feed_table": cfg.Collector.FeedTablePath,
		"cache_type": cfg.Cache.Type,
		"store_type": cfg.Store.Type,
		"serve":      cfg.Server.Enabled,
	})

	// Create cache
	cache := newCache(cfg, logger)

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(stdhttp.Config{
		Timeout:   time.Duration(cfg.Collector.FetchTimeout) * time.Second,
		UserAgent: cfg.Collector.UserAgent,
		RateLimit: cfg.Collector.RateLimit,
	})

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Register collector plugins
	plugins := registry.NewPluginRegistry()
	collectorOpts := collector.Options{
		EntryConcurrency: cfg.Collector.EntryConcurrency,
		Validation:       cfg.Collector.Validation,
	}
	if err := plugins.Register(collector.NHKPluginName, collector.NewNHKCollector(logger, collectorOpts)); err != nil {
		log.Fatalf("Failed to register collector plugin: %v", err)
	}
	logger.Info("Collector plugins registered", map[string]interface{}{
		"plugins": plugins.Names(),
	})

	// Create feed registry and dispatcher
	feedSource := feedtable.NewCSVSource(cfg.Collector.FeedTablePath, logger)
	feeds := registry.NewFeedRegistry(feedSource, logger)
	dispatcher := dispatch.NewDispatcher(deps, plugins, cfg.Collector.FeedConcurrency)

	// Create article store
	store, closeStore, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to create article store: %v", err)
	}

	// Create optional run stages
	var enricher runner.Enricher
	if cfg.Collector.Enrichment {
		enricher = services.NewArticleEnrichmentService(deps)
	}
	exporters := newExporters(cfg, logger)

	// Create the run service
	service := runner.NewService(deps, feeds, dispatcher, runner.Config{
		Enricher:  enricher,
		Store:     store,
		Exporters: exporters,
	})

	if !cfg.Server.Enabled {
		runOnce(service, logger, closeStore)
		return
	}

	serve(cfg, service, store, deps, closeStore)
}

// runOnce executes a single collection run and exits
func runOnce(service *runner.Service, logger interfaces.Logger, closeStore func() error) {
	_, err := service.RunOnce(context.Background())

	if closeStore != nil {
		if cerr := closeStore(); cerr != nil {
			logger.Warn("Failed to close article store", map[string]interface{}{
				"error": cerr.Error(),
			})
		}
	}

	if err != nil {
		logger.Error("Collection run failed", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}
}

// serve runs collections in the background behind the HTTP API
func serve(cfg *config.Config, service *runner.Service, store interfaces.ArticleStore, deps interfaces.Dependencies, closeStore func() error) {
	logger := deps.Logger

	// Start the collection worker
	workerCfg := workers.DefaultWorkerConfig()
	workerCfg.Logger = logger
	worker := workers.NewCollectionWorker(service, workerCfg)
	if err := worker.Start(); err != nil {
		log.Fatalf("Failed to start collection worker: %v", err)
	}

	// Create and register handlers
	registrars := []api.RouteRegistrar{
		handlers.NewHealthHandler(),
		handlers.NewCollectHandler(worker),
	}
	if store != nil {
		searcher := search.NewArticleSearchService(store)
		colors := services.NewThumbnailColorService(deps)
		registrars = append(registrars, handlers.NewArticleHandler(store, searcher, colors))
	}

	router := api.NewRouter(api.APIConfig{
		Logger:    logger,
		RateLimit: cfg.Server.RateLimit,
	}, registrars...)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Collect once at startup, then on the refresh ticker
	if err := worker.TriggerRun(context.Background(), "startup"); err != nil {
		logger.Error("Failed to queue startup collection", map[string]interface{}{
			"error": err.Error(),
		})
	}

	var ticker *time.Ticker
	tickerDone := make(chan struct{})
	if cfg.Collector.RefreshTimer > 0 {
		interval := time.Duration(cfg.Collector.RefreshTimer) * time.Second
		ticker = time.NewTicker(interval)
		go func() {
			for {
				select {
				case <-ticker.C:
					if err := worker.TriggerRun(context.Background(), "refresh"); err != nil {
						logger.Warn("Refresh collection dropped", map[string]interface{}{
							"error": err.Error(),
						})
					}
				case <-tickerDone:
					return
				}
			}
		}()
		logger.Info("Collection refresh ticker started", map[string]interface{}{
			"interval": interval.String(),
		})
	}

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...", nil)

	if ticker != nil {
		ticker.Stop()
	}
	close(tickerDone)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if err := worker.Stop(); err != nil {
		logger.Error("Worker shutdown failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if closeStore != nil {
		if err := closeStore(); err != nil {
			logger.Warn("Failed to close article store", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	logger.Info("Collector stopped", nil)
}

// newCache builds the configured cache backend, falling back to memory
// when the preferred backend cannot be opened
func newCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := rediscache.NewRedisCache(cfg.Redis)
		if err == nil {
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Redis.Address,
			})
			return redisCache
		}
		logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	case "sqlite":
		sqliteCache, err := sqlitecache.NewSQLiteCache(cfg.Cache.SQLitePath)
		if err == nil {
			logger.Info("Using SQLite cache", map[string]interface{}{
				"path": cfg.Cache.SQLitePath,
			})
			return sqliteCache
		}
		logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	ttl := time.Duration(cfg.Cache.DefaultTTL) * time.Second
	logger.Info("Using memory cache", nil)
	return memory.NewMemoryCache(ttl, 2*ttl)
}

// newStore builds the configured article store; a "none" store leaves
// the run without persistence
func newStore(cfg *config.Config) (interfaces.ArticleStore, func() error, error) {
	switch cfg.Store.Type {
	case "sqlite":
		client, err := sqlitestore.NewSQLiteStore(cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return client, client.Close, nil
	case "redis":
		ttl := time.Duration(cfg.Store.TTL) * time.Second
		client, err := redisstore.NewRedisStore(cfg.Redis, ttl)
		if err != nil {
			return nil, nil, err
		}
		return client, client.Close, nil
	default:
		return nil, nil, nil
	}
}

// newExporters builds one exporter per configured format
func newExporters(cfg *config.Config, logger interfaces.Logger) []runner.Exporter {
	exporters := make([]runner.Exporter, 0, len(cfg.Export.Formats))
	for _, format := range cfg.Export.Formats {
		switch format {
		case "csv":
			exporters = append(exporters, export.NewCSVExporter(cfg.Export.Dir, logger))
		case "json":
			exporters = append(exporters, export.NewJSONExporter(cfg.Export.Dir, logger))
		}
	}
	return exporters
}
