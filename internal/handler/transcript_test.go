package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/TampaDave73/youtube-transcripts-bot/internal/model"
	"github.com/TampaDave73/youtube-transcripts-bot/internal/service"
)

type stubReader struct {
	refs  []model.DocRef
	texts map[string]string
	names map[string]string
}

func (s *stubReader) ListFolder(ctx context.Context, folderID string) ([]model.DocRef, error) {
	return s.refs, nil
}

func (s *stubReader) DocumentText(ctx context.Context, docID string) (string, error) {
	if text, ok := s.texts[docID]; ok {
		return text, nil
	}
	return "", errors.New("not readable")
}

func (s *stubReader) DocumentName(ctx context.Context, docID string) (string, error) {
	return s.names[docID], nil
}

func newTestApp(reader *stubReader) *fiber.App {
	svc := service.NewTranscriptService(reader, nil, "folder-1")
	h := NewTranscriptHandler(svc)

	app := fiber.New()
	app.Get("/", h.Index)
	app.Get("/transcripts", h.List)
	app.Get("/transcript/:docId", h.Get)
	return app
}

func TestIndex_LivenessText(t *testing.T) {
	app := newTestApp(&stubReader{})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "Transcript API is running." {
		t.Errorf("body = %q", body)
	}
}

func TestListTranscripts_EmptyFolderReturnsEmptyJSONArray(t *testing.T) {
	app := newTestApp(&stubReader{})

	resp, err := app.Test(httptest.NewRequest("GET", "/transcripts", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "[]" {
		t.Errorf("body = %q, want []", body)
	}
}

func TestListTranscripts_ReturnsDocRecords(t *testing.T) {
	app := newTestApp(&stubReader{
		refs:  []model.DocRef{{ID: "abc1234567890", Name: "A Video"}},
		texts: map[string]string{"abc1234567890": "the text"},
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/transcripts", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var docs []model.TranscriptDoc
	if err := json.NewDecoder(resp.Body).Decode(&docs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("len = %d, want 1", len(docs))
	}
	if docs[0].DocID != "abc1234567890" || docs[0].Title != "A Video" || docs[0].Content != "the text" {
		t.Errorf("doc = %+v", docs[0])
	}
}

func TestListTranscripts_RejectsBadFolderID(t *testing.T) {
	app := newTestApp(&stubReader{})

	resp, err := app.Test(httptest.NewRequest("GET", "/transcripts?folder_id=not%20valid", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGetTranscript_Found(t *testing.T) {
	app := newTestApp(&stubReader{
		texts: map[string]string{"abc1234567890": "the text"},
		names: map[string]string{"abc1234567890": "A Video"},
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/transcript/abc1234567890", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var doc model.TranscriptDoc
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Content != "the text" || doc.Title != "A Video" {
		t.Errorf("doc = %+v", doc)
	}
}

func TestGetTranscript_NotFoundBody(t *testing.T) {
	app := newTestApp(&stubReader{})

	resp, err := app.Test(httptest.NewRequest("GET", "/transcript/abc1234567890", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != `{"error":"Transcript not found"}` {
		t.Errorf("body = %q", body)
	}
}

func TestGetTranscript_RejectsMalformedID(t *testing.T) {
	app := newTestApp(&stubReader{})

	resp, err := app.Test(httptest.NewRequest("GET", "/transcript/short", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
