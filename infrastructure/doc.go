// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging, and markdown conversion.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache built on patrickmn/go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: File-based cache that survives restarts
// - http/standard: Standard library HTTP client
// - logger/logrus: Structured logger with optional file rotation
// - markdown/goldmark: Markdown-to-HTML renderer
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(1*time.Hour, 10*time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cfg := config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	}
//	cache, err := redis.NewRedisCache(cfg)
//
// # HTTP Client
//
// The HTTP client performs single-attempt requests with a transport timeout:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "http://localhost:8000/content/index.md")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Markdown Renderer
//
// The goldmark renderer converts markdown text to HTML markup:
//
//	renderer := goldmark.NewRenderer()
//	markup, err := renderer.Render("# Hello\n\nWorld")
package infrastructure
