package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/TampaDave73/youtube-transcripts-bot/internal/model"
)

// DocumentReader is the read-only side of the document store consumed by the
// retrieval flow.
type DocumentReader interface {
	ListFolder(ctx context.Context, folderID string) ([]model.DocRef, error)
	DocumentText(ctx context.Context, docID string) (string, error)
	DocumentName(ctx context.Context, docID string) (string, error)
}

// TranscriptService serves stored transcript documents back out of the store.
type TranscriptService struct {
	store    DocumentReader
	cache    *CacheService // may be nil
	folderID string
}

func NewTranscriptService(store DocumentReader, cache *CacheService, folderID string) *TranscriptService {
	return &TranscriptService{store: store, cache: cache, folderID: folderID}
}

// ListTranscripts returns every readable document in the folder as
// {doc_id, title, content} records. folderID overrides the configured folder
// when non-empty. A folder with no matching documents yields an empty slice,
// never nil. Documents whose text cannot be read are logged and omitted.
func (s *TranscriptService) ListTranscripts(ctx context.Context, folderID string) ([]model.TranscriptDoc, error) {
	if folderID == "" {
		folderID = s.folderID
	}

	refs, err := s.listFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}

	transcripts := make([]model.TranscriptDoc, 0, len(refs))
	for _, ref := range refs {
		content, err := s.docText(ctx, ref.ID)
		if err != nil {
			log.Printf("transcripts: reading %s: %v", ref.ID, err)
			continue
		}
		if content == "" {
			continue
		}
		transcripts = append(transcripts, model.TranscriptDoc{
			DocID:   ref.ID,
			Title:   ref.Name,
			Content: content,
		})
	}
	return transcripts, nil
}

// GetTranscript returns one document's name and text by ID. A document with
// no retrievable text yields model.ErrNotFound.
func (s *TranscriptService) GetTranscript(ctx context.Context, docID string) (*model.TranscriptDoc, error) {
	title, err := s.store.DocumentName(ctx, docID)
	if err != nil {
		log.Printf("transcripts: name of %s: %v", docID, err)
		title = "Unknown"
	}

	content, err := s.docText(ctx, docID)
	if err != nil {
		log.Printf("transcripts: reading %s: %v", docID, err)
		return nil, model.ErrNotFound
	}
	if content == "" {
		return nil, model.ErrNotFound
	}

	return &model.TranscriptDoc{DocID: docID, Title: title, Content: content}, nil
}

// listFolder is a cache-aside wrapper around the store's folder listing.
func (s *TranscriptService) listFolder(ctx context.Context, folderID string) ([]model.DocRef, error) {
	if s.cache != nil && s.cache.Enabled() {
		if data, err := s.cache.GetListing(ctx, folderID); err == nil && data != nil {
			var refs []model.DocRef
			if err := json.Unmarshal(data, &refs); err == nil {
				if Metrics.CacheHits != nil {
					Metrics.CacheHits.Inc()
				}
				return refs, nil
			}
		}
		if Metrics.CacheMisses != nil {
			Metrics.CacheMisses.Inc()
		}
	}

	refs, err := s.store.ListFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetListing(ctx, folderID, refs); err != nil {
			log.Printf("transcripts: listing cache write: %v", err)
		}
	}
	return refs, nil
}

// docText is a cache-aside wrapper around the store's document read.
// Only non-empty text is cached.
func (s *TranscriptService) docText(ctx context.Context, docID string) (string, error) {
	if s.cache != nil && s.cache.Enabled() {
		if text, err := s.cache.GetDocText(ctx, docID); err == nil && text != "" {
			if Metrics.CacheHits != nil {
				Metrics.CacheHits.Inc()
			}
			return text, nil
		}
		if Metrics.CacheMisses != nil {
			Metrics.CacheMisses.Inc()
		}
	}

	text, err := s.store.DocumentText(ctx, docID)
	if err != nil {
		return "", err
	}

	if s.cache != nil && text != "" {
		if err := s.cache.SetDocText(ctx, docID, text); err != nil {
			log.Printf("transcripts: text cache write: %v", err)
		}
	}
	return text, nil
}
