// ABOUTME: Main entry point for the Signage API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"signage-app-api/api"
	"signage-app-api/api/handlers"
	"signage-app-api/api/middleware"
	"signage-app-api/core/designer"
	"signage-app-api/core/feed"
	"signage-app-api/core/interfaces"
	"signage-app-api/core/notify"
	"signage-app-api/core/player"
	"signage-app-api/core/store"
	"signage-app-api/core/workers"
	"signage-app-api/infrastructure/cache/memory"
	"signage-app-api/infrastructure/cache/redis"
	"signage-app-api/infrastructure/cache/sqlite"
	stdhttp "signage-app-api/infrastructure/http/standard"
	"signage-app-api/infrastructure/logger/structured"
	"signage-app-api/pkg/config"
	"signage-app-api/pkg/featureflags"
)

// closer is implemented by the backends that hold connections or goroutines
type closer interface {
	Close() error
}

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := structured.New(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	logger.Info("Starting Signage API", map[string]interface{}{
		"port":        cfg.Server.Port,
		"store_type":  cfg.Store.Type,
		"feed_mode":   cfg.Feed.Mode,
		"notify_type": cfg.Notify.Type,
	})

	flags := featureflags.NewEnvManager("")
	cache, redisCache := newStateCache(cfg, logger)

	// Outbound feed requests are logged with their timing
	httpClient := stdhttp.NewStandardHTTPClient(cfg.FeedTimeout(), 1).
		WithTransport(middleware.NewLoggingRoundTripper(nil, logger))

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Application state
	state := store.New(deps, time.Now())
	if err := state.Load(context.Background()); err != nil {
		logger.Warn("Failed to load persisted state, starting from the seed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Feed resolution and the background prefetch pool
	resolver := feed.NewResolver(deps, feed.Options{
		Mode:     cfg.Feed.Mode,
		ProxyURL: cfg.Feed.ProxyURL,
		Flags:    flags,
	})
	workerCfg := workers.DefaultWorkerConfig()
	workerCfg.MaxWorkers = cfg.Feed.Workers
	pool := workers.NewFeedWorker(resolver, logger, workerCfg)
	if err := pool.Start(); err != nil {
		log.Fatalf("Failed to start feed workers: %v", err)
	}

	notifier := newNotifier(cfg, redisCache, logger)

	shell := player.NewShell(deps, state, pool, notifier, flags, player.Config{
		SettleDelay:   cfg.SettleDelay(),
		DefaultScreen: cfg.Player.DefaultScreen,
	})
	layouts := designer.NewService(deps, state, resolver, shell, flags)

	// Screen status changes are simulated until real players report in
	var simulator *notify.Simulator
	if flags.IsEnabled(context.Background(), featureflags.StatusSimulator) {
		ids := make([]string, 0)
		for _, scr := range state.Screens() {
			ids = append(ids, scr.ID)
		}
		simulator = notify.NewSimulator(state, notifier, logger, notify.SimulatorConfig{ScreenIDs: ids})
		simulator.Start(context.Background())
		logger.Info("Status simulator started", map[string]interface{}{"screens": len(ids)})
	}

	// Create API with middleware
	apiConfig := api.APIConfig{Logger: logger}
	var limiter *middleware.RateLimiter
	if flags.IsEnabled(context.Background(), featureflags.RateLimitEnabled) {
		limiter = middleware.NewRateLimiter(cfg.Server.RateLimit, time.Minute)
		apiConfig.Limiter = limiter
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	handlers.NewScreenHandler(deps, state, shell, layouts).RegisterRoutes(humaAPI)
	handlers.NewLibraryHandler(deps, state).RegisterRoutes(humaAPI)
	handlers.NewSettingsHandler(state).RegisterRoutes(humaAPI)
	handlers.NewLayoutHandler(layouts).RegisterRoutes(humaAPI)
	handlers.NewDesignerHandler(layouts).RegisterRoutes(humaAPI)
	handlers.NewFeedHandler(resolver).RegisterRoutes(humaAPI)
	handlers.NewYouTubeHandler().RegisterRoutes(humaAPI)
	handlers.NewPlayerHandler(shell).RegisterRoutes(humaAPI)
	handlers.NewPlayerPage(deps, shell, handlers.DefaultPageRefresh).Mount(router)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if simulator != nil {
		simulator.Stop()
	}
	shell.CloseAll()
	if err := pool.Stop(); err != nil {
		logger.Warn("Feed workers did not stop cleanly", map[string]interface{}{"error": err.Error()})
	}
	if limiter != nil {
		limiter.Stop()
	}
	for _, c := range []interface{}{notifier, cache} {
		if cl, ok := c.(closer); ok {
			if err := cl.Close(); err != nil {
				logger.Warn("Close failed during shutdown", map[string]interface{}{"error": err.Error()})
			}
		}
	}

	logger.Info("Server stopped", nil)
}

// newStateCache opens the configured state backend. A failing redis or sqlite backend
// falls back to memory so the console still starts. The redis cache is returned separately
// so the notifier can share its connection.
func newStateCache(cfg *config.Config, logger interfaces.Logger) (interfaces.Cache, *redis.RedisCache) {
	fallback := func(err error) interfaces.Cache {
		logger.Error("Failed to open state store, falling back to memory", map[string]interface{}{
			"store_type": cfg.Store.Type,
			"error":      err.Error(),
		})
		return memory.NewMemoryCache(time.Duration(cfg.Store.Memory.CleanupInterval) * time.Second)
	}

	switch cfg.Store.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Store.Redis)
		if err != nil {
			return fallback(err), nil
		}
		logger.Info("Using Redis state store", map[string]interface{}{
			"address": cfg.Store.Redis.Address,
		})
		return redisCache, redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Store.SQLitePath)
		if err != nil {
			return fallback(err), nil
		}
		logger.Info("Using SQLite state store", map[string]interface{}{
			"path": cfg.Store.SQLitePath,
		})
		return sqliteCache, nil
	default:
		logger.Info("Using memory state store", nil)
		return memory.NewMemoryCache(time.Duration(cfg.Store.Memory.CleanupInterval) * time.Second), nil
	}
}

// newNotifier picks the event transport. Redis pub/sub lets several API instances
// reach the same players; without it events stay in-process.
func newNotifier(cfg *config.Config, redisCache *redis.RedisCache, logger interfaces.Logger) notify.Notifier {
	if cfg.Notify.Type != "redis" {
		return notify.NewHub(logger)
	}

	if redisCache == nil {
		var err error
		redisCache, err = redis.NewRedisCache(cfg.Store.Redis)
		if err != nil {
			logger.Error("Failed to connect notifier to Redis, using in-process events", map[string]interface{}{
				"error": err.Error(),
			})
			return notify.NewHub(logger)
		}
	}

	hub, err := notify.NewRedisHub(context.Background(), redisCache.Client(), "", logger)
	if err != nil {
		logger.Error("Failed to subscribe to Redis events, using in-process events", map[string]interface{}{
			"error": err.Error(),
		})
		return notify.NewHub(logger)
	}
	return hub
}

func init() {
	fmt.Println(`
   _____ _
  / ___/(_)___ _____  ____ _____ ____
  \__ \/ / __ '/ __ \/ __ '/ __ '/ _ \
 ___/ / / /_/ / / / / /_/ / /_/ /  __/
/____/_/\__, /_/ /_/\__,_/\__, /\___/
       /____/            /____/
	`)
}
