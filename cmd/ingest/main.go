package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/TampaDave73/youtube-transcripts-bot/internal/config"
	"github.com/TampaDave73/youtube-transcripts-bot/internal/db"
	"github.com/TampaDave73/youtube-transcripts-bot/internal/docstore"
	"github.com/TampaDave73/youtube-transcripts-bot/internal/gapi"
	"github.com/TampaDave73/youtube-transcripts-bot/internal/middleware"
	"github.com/TampaDave73/youtube-transcripts-bot/internal/repository"
	"github.com/TampaDave73/youtube-transcripts-bot/internal/service"
	"github.com/TampaDave73/youtube-transcripts-bot/internal/sheetsrc"
	"github.com/TampaDave73/youtube-transcripts-bot/internal/youtube"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "transcript-ingest")

	if err := cfg.ValidateCredentials(); err != nil {
		log.Fatalf("startup: %v", err)
	}
	if cfg.SpreadsheetID == "" || cfg.DocsFolderID == "" {
		log.Fatal("startup: SPREADSHEET_ID and DOCS_FOLDER_ID are required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clients, err := gapi.New(ctx, cfg)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	rows := sheetsrc.New(clients.Sheets, cfg.SpreadsheetID, cfg.SheetName)
	store := docstore.New(clients.Docs, clients.Drive)
	provider := youtube.NewProvider(cfg.Languages)

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	// Journal database is optional; runs still work without it.
	var journal service.IngestJournal
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("startup: %v", err)
		}
		defer pool.Close()
		journal = repository.NewJournalRepo(pool)
	}

	service.InitMetrics()
	svc := service.NewIngestService(rows, provider, store, journal, cache, cfg.DocsFolderID)

	if cfg.IngestInterval > 0 {
		service.NewIngestWorker(svc, cfg.IngestInterval).Start(ctx)
		return
	}

	log.Println("starting single ingestion pass")
	if _, err := svc.ProcessSheet(ctx); err != nil {
		log.Fatalf("ingest: %v", err)
	}
}
