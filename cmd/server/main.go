// ABOUTME: Main entry point for the markdown page server
// ABOUTME: Wires together all components and triggers the page render on readiness

package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mdpage-api/api"
	"mdpage-api/api/handlers"
	"mdpage-api/core/interfaces"
	"mdpage-api/core/library"
	"mdpage-api/core/render"
	"mdpage-api/core/services"
	"mdpage-api/infrastructure/cache/memory"
	"mdpage-api/infrastructure/cache/redis"
	"mdpage-api/infrastructure/cache/sqlite"
	stdhttp "mdpage-api/infrastructure/http/standard"
	logrusadapter "mdpage-api/infrastructure/logger/logrus"
	"mdpage-api/infrastructure/markdown/goldmark"
	"mdpage-api/pkg/config"
)

const pageTitle = "Tutorials"

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logrusadapter.NewLogger(logrusadapter.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	logger.Info("Starting markdown page server", map[string]interface{}{
		"port":        cfg.Server.Port,
		"cache_type":  cfg.Cache.Type,
		"content_dir": cfg.Content.Dir,
		"source":      cfg.Content.SourcePath,
	})

	// Create cache
	cache := buildCache(cfg, logger)

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create renderer and services
	renderer := goldmark.NewRenderer()
	outlineService := services.NewOutlineService()
	libraryService := library.NewService(deps, renderer, outlineService, library.Config{
		ContentDir: cfg.Content.Dir,
		RenderTTL:  cfg.Content.RenderTTL,
	})

	// The page's content source is served by this process itself, so the
	// "whatever serves the page also serves the resource" contract holds.
	sourceURL := fmt.Sprintf("http://127.0.0.1:%s/content/%s", cfg.Server.Port, cfg.Content.SourcePath)
	region := render.NewRegion()
	controller := render.NewController(deps, renderer, sourceURL)

	// Create API with middleware
	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:    logger,
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
	})

	// Register JSON handlers
	documentHandler := handlers.NewDocumentHandler(libraryService)
	documentHandler.RegisterRoutes(humaAPI)

	healthHandler := handlers.NewHealthHandler(controller.State, cfg.Cache.Type)
	healthHandler.RegisterRoutes(humaAPI)

	// The page and the content tree are plain routes on the same router
	pageHandler := handlers.NewPageHandler(region, pageTitle)
	router.Get("/", pageHandler.ServeHTTP)
	router.Handle("/content/*", http.StripPrefix("/content/", http.FileServer(http.Dir(cfg.Content.Dir))))

	// Create HTTP server
	srv := &http.Server{
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ln, err := net.Listen("tcp", ":"+cfg.Server.Port)
	if err != nil {
		log.Fatalf("Failed to listen on port %s: %v", cfg.Server.Port, err)
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": ln.Addr().String(),
		})
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// The listener is bound: the page is reachable, so trigger the one-shot
	// render of its content. Not re-invoked for the process lifetime.
	go controller.RenderContent(context.Background(), region)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server exited", nil)
}

// buildCache selects the cache backend from configuration. Redis and SQLite
// failures fall back to the in-memory cache rather than aborting startup.
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	memoryCache := func() interfaces.Cache {
		ttl := time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second
		return memory.NewMemoryCache(ttl, 10*time.Minute)
	}

	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memoryCache()
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memoryCache()
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache
	default:
		logger.Info("Using memory cache", nil)
		return memoryCache()
	}
}
