package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/storywire/storywire/internal/article"
	"github.com/storywire/storywire/internal/cache"
	"github.com/storywire/storywire/internal/config"
	"github.com/storywire/storywire/internal/engine"
	"github.com/storywire/storywire/internal/feeds"
	"github.com/storywire/storywire/internal/ledger"
	"github.com/storywire/storywire/internal/logger"
	"github.com/storywire/storywire/internal/publish"
	"github.com/storywire/storywire/internal/sources"
)

// One-shot selection run for cron jobs and local testing.
func main() {
	maxArticles := flag.Int("max-articles", 0, "override the article check budget")
	maxStories := flag.Int("max-stories", 0, "override the number of stories to select")
	asJSON := flag.Bool("json", false, "print the full result as JSON")
	flag.Parse()

	cfg := config.Load()

	if err := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: "stderr",
		Pretty: true,
	}); err != nil {
		panic(err)
	}

	log := logger.Get()

	var processed cache.ProcessedCache = cache.NewMemoryCache()
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, continuing without processed cache")
		} else {
			processed = redisCache
			defer redisCache.Close()
		}
	}

	coverage := ledger.NewCoverageLedger(cfg.OutputDir, cfg.CoverageTTLDays)

	orch := engine.New(cfg, sources.Default(), feeds.NewFetcher(), article.NewFetcher(), coverage, processed)

	ctx := context.Background()
	result, err := orch.Run(ctx, engine.Options{
		MaxArticles: *maxArticles,
		MaxStories:  *maxStories,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Selection run failed")
	}

	if cfg.S3Bucket != "" && len(result.Stories) > 0 {
		publisher, err := publish.New(ctx, cfg)
		if err != nil {
			log.Warn().Err(err).Msg("Publisher unavailable, skipping upload")
		} else {
			published := publisher.PublishStories(ctx, result.Stories)
			log.Info().Int("published", published).Msg("Story upload finished")
		}
	}

	if *asJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to encode result")
		}
		fmt.Println(string(out))
		return
	}

	if len(result.Stories) == 0 {
		fmt.Println("No stories selected")
		os.Exit(0)
	}

	for i, story := range result.Stories {
		fmt.Printf("%d. [%.2f] %s\n   %s\n", i+1, story.Score, story.Title, story.URL)
	}
}
