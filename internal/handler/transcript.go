package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/TampaDave73/youtube-transcripts-bot/internal/middleware"
	"github.com/TampaDave73/youtube-transcripts-bot/internal/model"
	"github.com/TampaDave73/youtube-transcripts-bot/internal/service"
)

type TranscriptHandler struct {
	svc *service.TranscriptService
}

func NewTranscriptHandler(svc *service.TranscriptService) *TranscriptHandler {
	return &TranscriptHandler{svc: svc}
}

// Index handles GET / — liveness text.
func (h *TranscriptHandler) Index(c fiber.Ctx) error {
	return c.SendString("Transcript API is running.")
}

// List handles GET /transcripts?folder_id=
// Returns a JSON array of {doc_id, title, content}; an empty folder yields [].
func (h *TranscriptHandler) List(c fiber.Ctx) error {
	folderID, errMsg := middleware.ValidateFolderID(fiber.Query[string](c, "folder_id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	transcripts, err := h.svc.ListTranscripts(c.Context(), folderID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list transcripts")
	}

	if Metrics.TranscriptsServed != nil {
		Metrics.TranscriptsServed.WithLabelValues("list").Add(float64(len(transcripts)))
	}
	return c.JSON(transcripts)
}

// Get handles GET /transcript/:docId
func (h *TranscriptHandler) Get(c fiber.Ctx) error {
	docID, errMsg := middleware.ValidateDocID(c.Params("docId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	transcript, err := h.svc.GetTranscript(c.Context(), docID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Transcript not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to read transcript")
	}

	if Metrics.TranscriptsServed != nil {
		Metrics.TranscriptsServed.WithLabelValues("single").Inc()
	}
	return c.JSON(transcript)
}
