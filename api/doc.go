// Package api provides the HTTP layer for the markdown page service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers (page, documents, health)
// - dto/: Data Transfer Objects for responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// The page itself (GET /) and the static content tree (GET /content/*) are
// plain chi routes on the same router; the JSON surface goes through Huma.
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive docs at /docs
//
// 2. Middleware Support
//
// The API includes middleware for:
// - CORS handling
// - Request logging with unique request IDs
// - Rate limiting per IP address
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 404,
//	    "title": "Not Found",
//	    "detail": "document not found: missing-slug"
//	}
//
// Domain errors are automatically mapped to appropriate HTTP status codes.
package api
