// Package api provides the HTTP serving surface for the collector.
// It is a thin operational layer over the collection worker and the
// article store, not a content API.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: router assembly with CORS and middleware
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
// GET /health reports liveness and uptime. POST /collect queues a
// background collection run on the worker pool and returns 202 before
// the run finishes. GET /articles lists recently collected articles
// from the configured store, newest first, bounded by the limit and
// page query parameters. GET /articles/search matches archived
// articles against a title query.
//
// # Usage Example
//
//	router := api.NewRouter(api.APIConfig{
//	    Logger:    logger,
//	    RateLimit: cfg.Server.RateLimit,
//	},
//	    handlers.NewHealthHandler(),
//	    handlers.NewCollectHandler(worker),
//	    handlers.NewArticleHandler(store, searcher, colors),
//	)
//	http.ListenAndServe(":"+cfg.Server.Port, router)
//
// # Middleware
//
// Every request passes through CORS handling, request logging with a
// generated X-Request-ID, and, when configured, a per-IP token bucket
// rate limiter. The limiter returns 429 with a Retry-After header once
// a client exhausts its budget.
package api
