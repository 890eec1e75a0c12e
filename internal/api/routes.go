package api

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes registers all API routes on the app.
func SetupRoutes(app *fiber.App, handlers *Handlers) {
	v1 := app.Group("/api/v1")

	v1.Get("/health", handlers.HealthCheck)
	v1.Get("/stories", handlers.GetStories)

	v1.Post("/coverage", handlers.CommitCoverage)
	v1.Get("/media", handlers.GetMedia)
	v1.Post("/media", handlers.CommitMedia)

	admin := v1.Group("/admin")
	admin.Post("/run", handlers.TriggerRun)
	admin.Delete("/cache", handlers.ClearCache)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
		})
	})
}
