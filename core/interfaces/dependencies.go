// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache persists the application state
	Cache Cache

	// HTTPClient performs outbound feed requests
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
