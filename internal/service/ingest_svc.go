package service

import (
	"context"
	"fmt"
	"log"

	"github.com/TampaDave73/youtube-transcripts-bot/internal/model"
	"github.com/TampaDave73/youtube-transcripts-bot/internal/youtube"
)

// RowSource reads and updates the tabular input of URL rows.
type RowSource interface {
	Rows(ctx context.Context) ([]model.SourceRow, error)
	SetStatus(ctx context.Context, rowIndex int, status string) error
}

// VideoProvider supplies title/uploader metadata and transcript text.
type VideoProvider interface {
	Metadata(ctx context.Context, videoURL string) (model.VideoMeta, error)
	Transcript(ctx context.Context, videoID string) (string, error)
}

// DocumentCreator creates a filled document and relocates it into a folder.
type DocumentCreator interface {
	CreateDocument(ctx context.Context, title, body string) (string, error)
	MoveToFolder(ctx context.Context, docID, folderID string) error
}

// IngestJournal records processed rows for later inspection. Journal writes
// are best effort and never fail a row.
type IngestJournal interface {
	Record(ctx context.Context, rec model.IngestRecord) error
}

// RunSummary counts the outcome of one pass over the sheet.
type RunSummary struct {
	Rows      int
	Processed int
	Skipped   int
	Failed    int
}

// IngestService drives the ingestion flow: one sequential pass over the sheet,
// each unprocessed row turned into a stored transcript document.
type IngestService struct {
	rows     RowSource
	provider VideoProvider
	store    DocumentCreator
	journal  IngestJournal // may be nil
	cache    *CacheService // may be nil
	folderID string
}

func NewIngestService(rows RowSource, provider VideoProvider, store DocumentCreator,
	journal IngestJournal, cache *CacheService, folderID string) *IngestService {
	return &IngestService{
		rows:     rows,
		provider: provider,
		store:    store,
		journal:  journal,
		cache:    cache,
		folderID: folderID,
	}
}

// ProcessSheet runs a single top-to-bottom pass. Rows already carrying a
// status and rows without a URL are skipped; every other row is processed to
// completion, a per-row failure never aborts the run.
func (s *IngestService) ProcessSheet(ctx context.Context) (RunSummary, error) {
	rows, err := s.rows.Rows(ctx)
	if err != nil {
		return RunSummary{}, fmt.Errorf("fetch rows: %w", err)
	}
	if len(rows) == 0 {
		log.Println("ingest: no data rows found")
		return RunSummary{}, nil
	}

	summary := RunSummary{Rows: len(rows)}
	for _, row := range rows {
		if row.Processed() {
			summary.Skipped++
			continue
		}
		if row.URL == "" {
			log.Printf("ingest: row %d has no URL, skipping", row.Index+2)
			summary.Skipped++
			continue
		}

		log.Printf("ingest: processing row %d: %s", row.Index+2, row.URL)
		status, rec := s.processRow(ctx, row)

		if err := s.rows.SetStatus(ctx, row.Index, status); err != nil {
			log.Printf("ingest: row %d status update failed: %v", row.Index+2, err)
		}
		s.record(ctx, rec)

		if Metrics.RowsProcessed != nil {
			Metrics.RowsProcessed.WithLabelValues(statusLabel(status)).Inc()
		}

		if status == model.StatusProcessed {
			summary.Processed++
		} else {
			summary.Failed++
		}
	}

	log.Printf("ingest: run complete, %d processed, %d skipped, %d failed",
		summary.Processed, summary.Skipped, summary.Failed)
	return summary, nil
}

// processRow runs extraction, metadata, transcript and document creation in
// order, short-circuiting to a row-specific error status on the first failure.
func (s *IngestService) processRow(ctx context.Context, row model.SourceRow) (string, model.IngestRecord) {
	rec := model.IngestRecord{URL: row.URL}

	videoID, err := youtube.ExtractVideoID(row.URL)
	if err != nil {
		log.Printf("ingest: %v", err)
		return s.fail(&rec, model.StatusInvalidURL, err)
	}
	rec.VideoID = videoID

	meta, err := s.provider.Metadata(ctx, row.URL)
	if err != nil {
		log.Printf("ingest: video info for %s: %v", videoID, err)
		return s.fail(&rec, model.StatusNoVideoInfo, err)
	}

	transcript, err := s.provider.Transcript(ctx, videoID)
	if err != nil {
		log.Printf("ingest: %v", err)
		return s.fail(&rec, model.StatusNoTranscript, err)
	}

	body := fmt.Sprintf("Title: %s\nChannel: %s\n\nTranscript:\n%s",
		meta.Title, meta.Channel, transcript)

	docID, err := s.store.CreateDocument(ctx, meta.Title, body)
	if err != nil {
		log.Printf("ingest: %v", err)
		return s.fail(&rec, model.StatusDocCreationFailed, err)
	}
	rec.DocID = &docID

	if err := s.store.MoveToFolder(ctx, docID, s.folderID); err != nil {
		// The doc exists but sits outside the folder; left for manual cleanup.
		log.Printf("ingest: %v", err)
		return s.fail(&rec, model.StatusDocCreationFailed, err)
	}

	if s.cache != nil {
		if err := s.cache.InvalidateListing(ctx, s.folderID); err != nil {
			log.Printf("ingest: listing invalidation failed: %v", err)
		}
	}

	if Metrics.DocsCreated != nil {
		Metrics.DocsCreated.Inc()
	}

	log.Printf("ingest: row done, video %s stored as doc %s", videoID, docID)
	rec.Status = model.StatusProcessed
	return model.StatusProcessed, rec
}

func (s *IngestService) fail(rec *model.IngestRecord, status string, err error) (string, model.IngestRecord) {
	detail := err.Error()
	rec.Status = status
	rec.ErrorDetail = &detail
	return status, *rec
}

func (s *IngestService) record(ctx context.Context, rec model.IngestRecord) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Record(ctx, rec); err != nil {
		log.Printf("ingest: journal write failed: %v", err)
	}
}
