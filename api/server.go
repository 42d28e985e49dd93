// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"net/http"

	"mdpage-api/api/middleware"
	"mdpage-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"golang.org/x/time/rate"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// RateLimit is the sustained requests per second allowed per client IP;
	// zero disables rate limiting
	RateLimit int

	// RateBurst is the burst allowance per client IP
	RateBurst int
}

// NewAPIWithMiddleware creates a new Huma API with middleware configured.
// The returned chi router also carries non-API routes (the page itself and
// the static content tree).
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS runs before everything else
	router.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}).Handler)

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 {
		limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	config := huma.DefaultConfig("Markdown Page API", "1.0.0")
	config.Info.Description = "API for a markdown-backed page site: document listing, rendering, and health"

	api := humachi.New(router, config)

	// The OpenAPI spec is automatically available at /openapi.json
	// The interactive docs are automatically available at /docs

	return api, router
}
