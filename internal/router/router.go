package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/TampaDave73/youtube-transcripts-bot/internal/handler"
	"github.com/TampaDave73/youtube-transcripts-bot/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Transcript *handler.TranscriptHandler
	Journal    *handler.JournalHandler
	Health     *handler.HealthHandler
}

// Setup configures the middleware stack and all routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	listLimiter := middleware.NewListRateLimiter()
	readLimiter := middleware.NewReadRateLimiter()
	journalLimiter := middleware.NewJournalRateLimiter()

	// Liveness text, kept for compatibility with existing consumers
	app.Get("/", h.Transcript.Index)

	// Health probes
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)

	// Retrieval flow
	app.Get("/transcripts", h.Transcript.List, listLimiter.Handler())
	app.Get("/transcript/:docId", h.Transcript.Get, readLimiter.Handler())

	// Ingestion journal
	app.Get("/api/ingests", h.Journal.Recent, journalLimiter.Handler())

	// Prometheus
	app.Get("/metrics", handler.MetricsHandler())
}
