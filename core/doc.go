// Package core contains the business logic for the newswire collector.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (FeedDescriptor, ArticleRecord, etc.)
// - collector: Site collector plugins that turn feed entries into articles
// - extract: Structured content extraction from article HTML
// - dates: Publication timestamp resolution
// - category: Page label to canonical category mapping
// - dispatch: Concurrent fan-out of feeds to their collectors
// - registry: Feed table filtering and plugin lookup
// - runner: End-to-end collection runs (collect, enrich, store, export)
// - services: Article enrichment (page metadata, thumbnail colors)
// - search: Title search over the article archive
// - workers: Background collection jobs for serve mode
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "newswire-collector/core/interfaces"
//	    "newswire-collector/core/services"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	enricher := services.NewArticleEnrichmentService(deps)
//
//	// Fill in page metadata and thumbnail colors
//	records = enricher.EnrichArticles(ctx, records)
//
package core
