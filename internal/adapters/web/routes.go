package web

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures the API routes.
func SetupRoutes(app *fiber.App, handlers *Handlers, limiter *ScanLimiter) {
	app.Get("/health", handlers.Health)

	app.Post("/api/scan", limiter.Middleware(), handlers.PostScan)
}
