package service

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/TampaDave73/youtube-transcripts-bot/internal/model"
)

// Metrics holds the Prometheus collectors for the ingestion and retrieval
// flows. HTTP-level collectors live in the handler package; these count the
// flow outcomes themselves.
var Metrics = struct {
	RowsProcessed *prometheus.CounterVec
	DocsCreated   prometheus.Counter
	CacheHits     prometheus.Counter
	CacheMisses   prometheus.Counter
}{}

var metricsOnce sync.Once

// InitMetrics registers the flow collectors. Safe to call more than once.
func InitMetrics() {
	metricsOnce.Do(func() {
		Metrics.RowsProcessed = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transcriptbot_rows_processed_total",
				Help: "Total sheet rows processed, by outcome status.",
			},
			[]string{"status"},
		)

		Metrics.DocsCreated = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "transcriptbot_docs_created_total",
				Help: "Total transcript documents created and filed.",
			},
		)

		Metrics.CacheHits = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "transcriptbot_cache_hits_total",
				Help: "Total Redis cache hits.",
			},
		)

		Metrics.CacheMisses = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "transcriptbot_cache_misses_total",
				Help: "Total Redis cache misses.",
			},
		)

		prometheus.MustRegister(
			Metrics.RowsProcessed,
			Metrics.DocsCreated,
			Metrics.CacheHits,
			Metrics.CacheMisses,
		)
	})
}

// statusLabel maps a row status string onto a low-cardinality label value.
func statusLabel(status string) string {
	switch status {
	case model.StatusProcessed:
		return "processed"
	case model.StatusInvalidURL:
		return "invalid_url"
	case model.StatusNoVideoInfo:
		return "no_video_info"
	case model.StatusNoTranscript:
		return "no_transcript"
	case model.StatusDocCreationFailed:
		return "doc_creation_failed"
	default:
		return "other"
	}
}
