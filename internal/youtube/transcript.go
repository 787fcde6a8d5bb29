package youtube

import (
	"context"
	"strings"

	yt_transcript "github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript"
	yt_transcript_formatters "github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_formatters"

	"github.com/TampaDave73/youtube-transcripts-bot/internal/model"
)

// transcriptAPI is the slice of the yt_transcript client the bot consumes.
type transcriptAPI interface {
	GetFormattedTranscripts(videoID string, languages []string, preserveFormatting bool) (string, error)
}

// TranscriptClient wraps the youtube-transcript-api client with a plain-text
// formatter: segments in provider order, joined by newlines, no timestamps.
type TranscriptClient struct {
	client    transcriptAPI
	languages []string
}

func NewTranscriptClient(languages []string) *TranscriptClient {
	if len(languages) == 0 {
		languages = []string{"en"}
	}
	formatter := yt_transcript_formatters.NewTextFormatter(
		yt_transcript_formatters.WithTimestamps(false),
		yt_transcript_formatters.WithLanguageCode(false),
	)
	return &TranscriptClient{
		client:    yt_transcript.NewClient(yt_transcript.WithFormatter(formatter)),
		languages: languages,
	}
}

// Transcript fetches the full transcript text for a video ID. The underlying
// client is not context-aware, so the call runs in a goroutine and races the
// context.
func (c *TranscriptClient) Transcript(ctx context.Context, videoID string) (string, error) {
	type result struct {
		text string
		err  error
	}
	resultCh := make(chan result, 1)

	go func() {
		text, err := c.client.GetFormattedTranscripts(videoID, c.languages, false)
		resultCh <- result{text, err}
	}()

	select {
	case <-ctx.Done():
		return "", &model.TranscriptError{Kind: model.TranscriptFailed, VideoID: videoID, Err: ctx.Err()}
	case res := <-resultCh:
		if res.err != nil {
			return "", classifyTranscriptError(videoID, res.err)
		}
		text := strings.TrimSpace(res.text)
		if text == "" {
			return "", &model.TranscriptError{Kind: model.NoTranscriptFound, VideoID: videoID}
		}
		return text, nil
	}
}

// classifyTranscriptError maps provider error text onto the closed
// TranscriptError variants so callers handle every case explicitly.
func classifyTranscriptError(videoID string, err error) *model.TranscriptError {
	msg := strings.ToLower(err.Error())
	kind := model.TranscriptFailed
	switch {
	case strings.Contains(msg, "disabled"):
		kind = model.TranscriptsDisabled
	case strings.Contains(msg, "no transcript"), strings.Contains(msg, "not found"):
		kind = model.NoTranscriptFound
	case strings.Contains(msg, "unavailable"):
		kind = model.VideoUnavailable
	}
	return &model.TranscriptError{Kind: kind, VideoID: videoID, Err: err}
}
