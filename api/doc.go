// Package api provides the HTTP API layer for the Signage console.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers for screens, library, layouts, designer drafts and players
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive docs at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type ContentUpdateRequest struct {
//	    ContentID string `json:"contentId" minLength:"1"`
//	}
//
// Range rules that belong to the layout model (left width, bottom bar height,
// scroll speed) are clamped in core/layout rather than rejected here.
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with request IDs (a client X-Request-ID is kept)
// - Token bucket rate limiting per IP address, when enabled
// - CORS, panic recovery and response compression
//
// # Usage Example
//
//	limiter := middleware.NewRateLimiter(100, time.Minute)
//	defer limiter.Stop()
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:  logger,
//	    Limiter: limiter,
//	})
//
//	handlers.NewLayoutHandler(layouts).RegisterRoutes(humaAPI)
//	handlers.NewPlayerPage(deps, shell, handlers.DefaultPageRefresh).Mount(router)
//
//	http.ListenAndServe(":8080", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 404,
//	    "title": "Not Found",
//	    "detail": "screen not found: 42"
//	}
//
// Domain errors are mapped to HTTP status codes in handlers/errors.go.
package api
