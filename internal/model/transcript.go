package model

import "time"

// Row processing statuses written back into the sheet. A non-empty status cell
// is the sole idempotency guard: such rows are never reprocessed.
const (
	StatusProcessed         = "Processed"
	StatusInvalidURL        = "Error: Invalid URL"
	StatusNoVideoInfo       = "Error: Unable to retrieve video info"
	StatusNoTranscript      = "Error: No transcript found"
	StatusDocCreationFailed = "Error: Doc creation failed"
)

// SourceRow is one record of the tabular input: a URL paired with its
// processing-status flag. Index is the zero-based data row position
// (the header row is not counted).
type SourceRow struct {
	Index  int
	URL    string
	Status string
}

// Processed reports whether the row already carries any status string.
func (r SourceRow) Processed() bool {
	return r.Status != ""
}

// VideoMeta is the title and uploader of a video as reported by the provider.
type VideoMeta struct {
	Title   string
	Channel string
}

// DocRef identifies a document inside a folder listing.
type DocRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TranscriptDoc is the retrieval-flow API representation of one stored
// transcript document.
type TranscriptDoc struct {
	DocID   string `json:"doc_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// IngestRecord is one journal entry for a processed sheet row.
type IngestRecord struct {
	ID          int64     `json:"id"`
	VideoID     string    `json:"video_id"`
	URL         string    `json:"url"`
	DocID       *string   `json:"doc_id,omitempty"`
	Status      string    `json:"status"`
	ErrorDetail *string   `json:"error,omitempty"`
	ProcessedAt time.Time `json:"processed_at"`
}
