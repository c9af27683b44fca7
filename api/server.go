// ABOUTME: HTTP router assembly for the collector's operational endpoints
// ABOUTME: Applies CORS, request logging, and per-IP rate limiting

package api

import (
	"net/http"

	"newswire-collector/api/middleware"
	"newswire-collector/core/interfaces"

	"github.com/rs/cors"
	"golang.org/x/time/rate"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// RateLimit is the per-client budget in requests per second;
	// zero disables limiting
	RateLimit float64
}

// RouteRegistrar registers handler routes on a mux
type RouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

// NewRouter assembles the HTTP surface with middleware applied.
// CORS wraps everything so preflights bypass logging and limiting.
func NewRouter(cfg APIConfig, handlers ...RouteRegistrar) http.Handler {
	mux := http.NewServeMux()
	for _, h := range handlers {
		h.RegisterRoutes(mux)
	}

	var handler http.Handler = mux

	if cfg.RateLimit > 0 {
		burst := int(cfg.RateLimit)
		if burst < 1 {
			burst = 1
		}
		limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit), burst)
		handler = middleware.RateLimitMiddleware(limiter)(handler)
	}

	if cfg.Logger != nil {
		handler = middleware.RequestLoggingMiddleware(cfg.Logger)(handler)
	}

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}).Handler(handler)
}
