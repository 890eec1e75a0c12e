package api

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/storywire/storywire/internal/cache"
	"github.com/storywire/storywire/internal/config"
	"github.com/storywire/storywire/internal/engine"
	"github.com/storywire/storywire/internal/ledger"
	"github.com/storywire/storywire/internal/logger"
	"github.com/storywire/storywire/internal/middleware"
	"github.com/storywire/storywire/internal/models"
)

type Handlers struct {
	config    *config.Config
	engine    *engine.Orchestrator
	coverage  *ledger.CoverageLedger
	media     *ledger.MediaLedger
	processed cache.ProcessedCache

	mu         sync.Mutex
	running    bool
	lastResult *engine.Result
}

func NewHandlers(cfg *config.Config, orch *engine.Orchestrator, coverage *ledger.CoverageLedger, media *ledger.MediaLedger, processed cache.ProcessedCache) *Handlers {
	return &Handlers{
		config:    cfg,
		engine:    orch,
		coverage:  coverage,
		media:     media,
		processed: processed,
	}
}

// HealthCheck handles GET /api/v1/health
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"state":  string(h.engine.State()),
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// TriggerRun handles POST /api/v1/admin/run. The run executes in the
// background; poll /health for the state and /stories for the outcome. Only
// one run may be in flight, a second trigger while running gets 409. The
// optional body overrides the article and story limits for this run.
func (h *Handlers) TriggerRun(c *fiber.Ctx) error {
	var opts engine.Options
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&opts); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
				"msg":   err.Error(),
			})
		}
	}

	h.mu.Lock()
	if h.running {
		h.mu.Unlock()
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "A selection run is already in progress",
			"state": string(h.engine.State()),
		})
	}
	h.running = true
	h.mu.Unlock()

	go func() {
		defer func() {
			h.mu.Lock()
			h.running = false
			h.mu.Unlock()
		}()

		result, err := h.engine.Run(context.Background(), opts)
		if err != nil {
			logger.Error().Err(err).Msg("Selection run failed")
			return
		}

		h.mu.Lock()
		h.lastResult = result
		h.mu.Unlock()
	}()

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"status": "started",
	})
}

// GetStories handles GET /api/v1/stories, returning the stories selected by
// the most recent run.
func (h *Handlers) GetStories(c *fiber.Ctx) error {
	h.mu.Lock()
	result := h.lastResult
	h.mu.Unlock()

	if result == nil {
		return c.JSON(fiber.Map{
			"stories": []models.SelectedStory{},
			"count":   0,
		})
	}

	return c.JSON(fiber.Map{
		"stories":     result.Stories,
		"count":       len(result.Stories),
		"finished_at": result.FinishedAt,
	})
}

type coverageRequest struct {
	URL       string  `json:"url" validate:"required,url"`
	Title     string  `json:"title" validate:"required"`
	Source    string  `json:"source"`
	YouTubeID *string `json:"youtube_id"`
	TikTokID  *string `json:"tiktok_id"`
}

// CommitCoverage handles POST /api/v1/coverage. Callers report a story as
// covered only after its video is fully produced, so a failed production
// never burns the story.
func (h *Handlers) CommitCoverage(c *fiber.Ctx) error {
	var req coverageRequest
	if !middleware.ParseAndValidate(c, &req) {
		return nil
	}

	record := models.CoverageRecord{
		Title:       req.Title,
		DateCovered: time.Now().UTC().Format(time.RFC3339),
		Source:      req.Source,
		YouTubeID:   req.YouTubeID,
		TikTokID:    req.TikTokID,
	}

	if err := h.coverage.Commit(req.URL, record); err != nil {
		logger.Error().Err(err).Str("url", req.URL).Msg("Failed to commit coverage")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to commit coverage record",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url":          req.URL,
		"date_covered": record.DateCovered,
	})
}

// GetMedia handles GET /api/v1/media, listing the media ids still inside
// the reuse-avoidance window.
func (h *Handlers) GetMedia(c *fiber.Ctx) error {
	entries := h.media.Load()
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	return c.JSON(fiber.Map{
		"ids":   ids,
		"count": len(ids),
	})
}

type mediaRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

// CommitMedia handles POST /api/v1/media, recording stock media ids used in
// a produced video so later videos pick different footage.
func (h *Handlers) CommitMedia(c *fiber.Ctx) error {
	var req mediaRequest
	if !middleware.ParseAndValidate(c, &req) {
		return nil
	}

	if err := h.media.CommitAll(req.IDs); err != nil {
		logger.Error().Err(err).Msg("Failed to commit media ids")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to commit media ids",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"committed": len(req.IDs),
	})
}

// ClearCache handles DELETE /api/v1/admin/cache, dropping all processed
// article hashes so the next run reconsiders everything.
func (h *Handlers) ClearCache(c *fiber.Ctx) error {
	if err := h.processed.ClearProcessed(c.Context()); err != nil {
		logger.Error().Err(err).Msg("Failed to clear processed cache")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to clear processed cache",
		})
	}
	return c.JSON(fiber.Map{"status": "cleared"})
}
