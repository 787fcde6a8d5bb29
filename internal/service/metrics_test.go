package service

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"

	"github.com/TampaDave73/youtube-transcripts-bot/internal/model"
)

func TestMetrics_CountRowOutcomesAndDocs(t *testing.T) {
	InitMetrics()

	processedBefore := testutil.ToFloat64(Metrics.RowsProcessed.WithLabelValues("processed"))
	invalidBefore := testutil.ToFloat64(Metrics.RowsProcessed.WithLabelValues("invalid_url"))
	docsBefore := testutil.ToFloat64(Metrics.DocsCreated)

	rows := &fakeRows{rows: []model.SourceRow{
		{Index: 0, URL: validURL},
		{Index: 1, URL: "not-a-url"},
	}}
	provider := &fakeProvider{
		meta:       model.VideoMeta{Title: "My Video", Channel: "My Channel"},
		transcript: "hello",
	}
	creator := &fakeCreator{}

	svc := newTestIngest(rows, provider, creator, nil)
	if _, err := svc.ProcessSheet(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := testutil.ToFloat64(Metrics.RowsProcessed.WithLabelValues("processed")) - processedBefore; got != 1 {
		t.Errorf("processed rows counted = %v, want 1", got)
	}
	if got := testutil.ToFloat64(Metrics.RowsProcessed.WithLabelValues("invalid_url")) - invalidBefore; got != 1 {
		t.Errorf("invalid_url rows counted = %v, want 1", got)
	}
	if got := testutil.ToFloat64(Metrics.DocsCreated) - docsBefore; got != 1 {
		t.Errorf("docs created counted = %v, want 1", got)
	}
}

func TestMetrics_CacheMissCountedOnUnreachableRedis(t *testing.T) {
	InitMetrics()

	missesBefore := testutil.ToFloat64(Metrics.CacheMisses)
	hitsBefore := testutil.ToFloat64(Metrics.CacheHits)

	// Enabled cache whose backend is unreachable: every lookup is a miss and
	// the read falls through to the store.
	cache := &CacheService{rdb: redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})}
	reader := &fakeReader{texts: map[string]string{"doc-1": "some text"}, names: map[string]string{"doc-1": "Doc One"}}

	svc := NewTranscriptService(reader, cache, "folder-1")
	doc, err := svc.GetTranscript(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Content != "some text" {
		t.Errorf("content = %q, want store text", doc.Content)
	}

	if got := testutil.ToFloat64(Metrics.CacheMisses) - missesBefore; got != 1 {
		t.Errorf("cache misses counted = %v, want 1", got)
	}
	if got := testutil.ToFloat64(Metrics.CacheHits) - hitsBefore; got != 0 {
		t.Errorf("cache hits counted = %v, want 0", got)
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{model.StatusProcessed, "processed"},
		{model.StatusInvalidURL, "invalid_url"},
		{model.StatusNoVideoInfo, "no_video_info"},
		{model.StatusNoTranscript, "no_transcript"},
		{model.StatusDocCreationFailed, "doc_creation_failed"},
		{"something else", "other"},
	}
	for _, tt := range tests {
		if got := statusLabel(tt.status); got != tt.want {
			t.Errorf("statusLabel(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
