package service

import (
	"context"
	"log"
	"time"
)

// IngestWorker repeatedly runs the ingestion pass at a fixed interval,
// polling the sheet for newly submitted URLs.
type IngestWorker struct {
	svc      *IngestService
	interval time.Duration
}

func NewIngestWorker(svc *IngestService, interval time.Duration) *IngestWorker {
	return &IngestWorker{svc: svc, interval: interval}
}

// Start runs one pass immediately, then one per interval until the context
// is cancelled. A failed pass is logged and retried on the next tick.
func (w *IngestWorker) Start(ctx context.Context) {
	log.Printf("ingest-worker: starting (interval=%s)", w.interval)

	w.run(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Println("ingest-worker: stopping (context cancelled)")
			return
		}
	}
}

func (w *IngestWorker) run(ctx context.Context) {
	if _, err := w.svc.ProcessSheet(ctx); err != nil {
		log.Printf("ingest-worker: pass failed: %v", err)
	}
}
