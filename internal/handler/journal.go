package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/TampaDave73/youtube-transcripts-bot/internal/middleware"
	"github.com/TampaDave73/youtube-transcripts-bot/internal/model"
	"github.com/TampaDave73/youtube-transcripts-bot/internal/repository"
)

type JournalHandler struct {
	repo *repository.JournalRepo // nil when no journal database is configured
}

func NewJournalHandler(repo *repository.JournalRepo) *JournalHandler {
	return &JournalHandler{repo: repo}
}

// Recent handles GET /api/ingests?limit=N
func (h *JournalHandler) Recent(c fiber.Ctx) error {
	if h.repo == nil {
		return middleware.ErrorResponse(c, fiber.StatusServiceUnavailable, "Ingest journal is not configured")
	}

	limit := fiber.Query[int](c, "limit", 50)

	records, err := h.repo.Recent(c.Context(), limit)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to read ingest journal")
	}

	if records == nil {
		records = []model.IngestRecord{}
	}
	return c.JSON(records)
}
