package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"markfy/internal/bookmarks/database"
	httpdelivery "markfy/internal/bookmarks/delivery/http"
	"markfy/internal/bookmarks/repository/entdb"
	"markfy/internal/bookmarks/usecase"
	"markfy/internal/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "go.uber.org/automaxprocs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	if cfg.DatabasePath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
			logger.Fatal("failed to create data directory", zap.Error(err))
		}
	}

	entClient, db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer entClient.Close()

	if err := database.Migrate(context.Background(), entClient); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	logger.Info("database initialized", zap.String("path", cfg.DatabasePath))

	// Redis is optional; the repository falls back to a no-op cache.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Warn("redis unavailable, caching disabled", zap.Error(err))
			rdb = nil
		}
	}

	// Wire dependencies: the single composition point of the application.
	cache := entdb.NewBookmarkCache(rdb, logger)
	repo := entdb.NewBookmarkRepository(entClient, cache, logger)
	service := usecase.NewBookmarkService(repo, logger)
	handler := httpdelivery.NewHandler(service, logger, db, rdb)
	rateLimiter := httpdelivery.NewRateLimiter(cfg.RateLimit)
	router := httpdelivery.NewRouter(handler, logger, rateLimiter)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server starting",
			zap.String("port", cfg.Port),
			zap.String("base_url", cfg.BaseURL),
			zap.Int("rate_limit", cfg.RateLimit),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return cfg.Build()
}
