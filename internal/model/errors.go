package model

import (
	"errors"
	"fmt"
)

// ErrInvalidURL is returned when no 11-character video ID can be found in a URL.
var ErrInvalidURL = errors.New("could not extract video id from url")

// ErrNotFound is returned when a document has no retrievable text.
var ErrNotFound = errors.New("transcript not found")

// TranscriptErrorKind classifies transcript retrieval failures. Every provider
// condition maps onto exactly one kind so callers can handle each case.
type TranscriptErrorKind int

const (
	TranscriptsDisabled TranscriptErrorKind = iota
	NoTranscriptFound
	VideoUnavailable
	TranscriptFailed
)

func (k TranscriptErrorKind) String() string {
	switch k {
	case TranscriptsDisabled:
		return "transcripts_disabled"
	case NoTranscriptFound:
		return "no_transcript_found"
	case VideoUnavailable:
		return "video_unavailable"
	default:
		return "transcript_failed"
	}
}

// TranscriptError wraps a provider failure for a specific video.
type TranscriptError struct {
	Kind    TranscriptErrorKind
	VideoID string
	Err     error
}

func (e *TranscriptError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transcript %s: %s: %v", e.VideoID, e.Kind, e.Err)
	}
	return fmt.Sprintf("transcript %s: %s", e.VideoID, e.Kind)
}

func (e *TranscriptError) Unwrap() error {
	return e.Err
}
