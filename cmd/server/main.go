package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appinventory "github.com/storemap/backend/internal/application/inventory"
	"github.com/storemap/backend/internal/infrastructure/config"
	"github.com/storemap/backend/internal/infrastructure/logger"
	"github.com/storemap/backend/internal/infrastructure/persistence"
	"github.com/storemap/backend/internal/infrastructure/storage"
	"github.com/storemap/backend/internal/interfaces/http/handler"
	"github.com/storemap/backend/internal/interfaces/http/middleware"
	"github.com/storemap/backend/internal/interfaces/http/router"
)

const (
	appVersion = "1.0.0"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Store Map Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Inventory document store
	store := persistence.NewFileStore(cfg.Data.File)
	service := appinventory.NewService(store, cfg.Data.DefaultAisle)

	// Logo storage backend
	logos, err := newLogoStorage(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize logo storage", zap.Error(err))
	}
	log.Info("Logo storage initialized", zap.String("backend", cfg.Storage.Backend))

	// Handlers
	mapHandler := handler.NewMapHandler(service, logos)
	adminHandler := handler.NewAdminHandler(service)
	logoHandler := handler.NewLogoHandler(logos)
	systemHandler := handler.NewSystemHandler(cfg.App.Name, appVersion)

	// Set gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:  cfg.HTTP.CORSAllowOrigins,
		AllowMethods:  cfg.HTTP.CORSAllowMethods,
		AllowHeaders:  cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		MaxAge:        12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Templates and static assets
	engine.LoadHTMLGlob(cfg.Data.TemplatesGlob)
	engine.Static("/static", cfg.Data.StaticDir)

	// Routes
	pages := router.NewDomainGroup("pages", "")
	pages.GET("/", mapHandler.Index)
	pages.GET("/admin", adminHandler.EditPage)
	pages.POST("/admin", adminHandler.Save)
	pages.GET("/upload-logo", logoHandler.UploadPage)
	pages.POST("/upload-logo", logoHandler.Upload)

	api := router.NewDomainGroup("inventory", "")
	api.GET("/view", mapHandler.View)
	api.GET("/map", mapHandler.Map)
	api.GET("/items", mapHandler.Items)
	api.GET("/search", mapHandler.Search)

	v1 := router.NewDomainGroup("v1", "/v1")
	system := v1.Group("system", "/system")
	system.GET("/ping", systemHandler.Ping)
	system.GET("/info", systemHandler.GetSystemInfo)

	r := router.NewRouter(engine)
	r.RegisterPages(pages)
	r.RegisterAPI(api)
	r.RegisterAPI(v1)
	r.Setup()

	engine.GET("/health", healthHandler(store))

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// newLogoStorage builds the configured logo storage backend.
func newLogoStorage(cfg *config.Config, log *zap.Logger) (storage.LogoStorage, error) {
	if cfg.Storage.Backend == "s3" {
		return storage.NewS3LogoStorage(&cfg.Storage, storage.WithLogger(log))
	}
	return storage.NewLocalLogoStorage(cfg.Data.StaticDir, cfg.Storage.LogoFilename), nil
}

// healthHandler verifies that the inventory document is readable.
func healthHandler(store *persistence.FileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if _, err := store.Load(c.Request.Context()); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"time":   time.Now().Format(time.RFC3339),
				"data":   "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"data":   "ok",
		})
	}
}
