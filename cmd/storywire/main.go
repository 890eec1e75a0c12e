package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/storywire/storywire/internal/api"
	"github.com/storywire/storywire/internal/article"
	"github.com/storywire/storywire/internal/cache"
	"github.com/storywire/storywire/internal/config"
	"github.com/storywire/storywire/internal/engine"
	"github.com/storywire/storywire/internal/feeds"
	"github.com/storywire/storywire/internal/ledger"
	"github.com/storywire/storywire/internal/logger"
	"github.com/storywire/storywire/internal/middleware"
	"github.com/storywire/storywire/internal/sources"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: "stdout",
		Pretty: cfg.Env != "production",
	}); err != nil {
		panic(err)
	}

	log := logger.Get()
	log.Info().Msg("Starting storywire...")

	var processed cache.ProcessedCache
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		processed = redisCache
	} else {
		log.Info().Msg("No Redis configured, using in-memory processed cache")
		processed = cache.NewMemoryCache()
	}
	defer func() {
		if err := processed.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing processed cache")
		}
	}()

	coverage := ledger.NewCoverageLedger(cfg.OutputDir, cfg.CoverageTTLDays)
	media := ledger.NewMediaLedger(cfg.OutputDir, cfg.MediaTTLDays)

	orch := engine.New(cfg, sources.Default(), feeds.NewFetcher(), article.NewFetcher(), coverage, processed)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
		IdleTimeout:  120 * time.Second,
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())

	api.SetupRoutes(app, api.NewHandlers(cfg, orch, coverage, media, processed))

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
