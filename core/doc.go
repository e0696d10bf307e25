// Package core contains the business logic for the Signage console.
// It is framework-agnostic: nothing here imports Huma, chi or a storage driver.
//
// The core package is organized into several sub-packages:
//
// - domain: screens, content, schedules, layouts and resolved feed items
// - layout: layout defaults, clamping rules, section resizing and the persisted encoding
// - youtube: video ID extraction and embed URL construction
// - feed: feed resolution through a proxy or directly, with the fallback item on failure
// - render: content dispatch, region sizing, ticker timing and frame composition
// - playback: per-screen rotation and ticker state driven by an injectable ticker
// - player: the player shell and its sessions, one per open screen
// - designer: draft editing, preview and save for screen layouts
// - store: the in-memory console state, persisted through interfaces.Cache
// - notify: content-update, command and status events (in-process or Redis)
// - workers: the bounded feed prefetch pool
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// - All external dependencies are injected via interfaces
// - Rendering is pure: a frame is computed from state and a point in time
// - Business logic is testable in isolation with fake tickers and clocks
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	state := store.New(deps, time.Now())
//	resolver := feed.NewResolver(deps, feed.Options{Mode: "proxy", ProxyURL: proxyURL})
//	layouts := designer.NewService(deps, state, resolver, nil, flags)
//
//	draft, err := layouts.Open(ctx, "1")
//	draft, err = layouts.Apply(ctx, "1", designer.SetWidth(65))
//	saved, err := layouts.Save(ctx, "1")
package core
