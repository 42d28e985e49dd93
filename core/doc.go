// Package core contains the business logic for the markdown page service.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (ContentDocument, RenderedView, etc.)
// - render: One-shot fetch/convert/display render controller
// - library: Markdown document collection service
// - services: Heading outline extraction
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, renderer)
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
//	    "mdpage-api/core/interfaces"
//	    "mdpage-api/core/render"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create controller and render once
//	region := render.NewRegion()
//	ctrl := render.NewController(deps, myRenderer, "http://localhost:8000/content/index.md")
//	ctrl.RenderContent(ctx, region)
package core
