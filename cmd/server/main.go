package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TampaDave73/youtube-transcripts-bot/internal/config"
	"github.com/TampaDave73/youtube-transcripts-bot/internal/db"
	"github.com/TampaDave73/youtube-transcripts-bot/internal/docstore"
	"github.com/TampaDave73/youtube-transcripts-bot/internal/gapi"
	"github.com/TampaDave73/youtube-transcripts-bot/internal/handler"
	"github.com/TampaDave73/youtube-transcripts-bot/internal/middleware"
	"github.com/TampaDave73/youtube-transcripts-bot/internal/repository"
	"github.com/TampaDave73/youtube-transcripts-bot/internal/router"
	"github.com/TampaDave73/youtube-transcripts-bot/internal/service"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "transcript-api")

	if err := cfg.ValidateCredentials(); err != nil {
		log.Fatalf("startup: %v", err)
	}
	if cfg.DocsFolderID == "" {
		log.Fatal("startup: DOCS_FOLDER_ID is required")
	}

	ctx := context.Background()

	clients, err := gapi.New(ctx, cfg)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	store := docstore.New(clients.Docs, clients.Drive)
	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	// Journal database is optional: without it /api/ingests reports 503.
	var pool *pgxpool.Pool
	var journalRepo *repository.JournalRepo
	if cfg.DatabaseURL != "" {
		pool, err = db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("startup: %v", err)
		}
		defer pool.Close()
		journalRepo = repository.NewJournalRepo(pool)
	}

	handler.InitMetrics(pool)
	service.InitMetrics()

	transcriptSvc := service.NewTranscriptService(store, cache, cfg.DocsFolderID)

	h := &router.Handlers{
		Transcript: handler.NewTranscriptHandler(transcriptSvc),
		Journal:    handler.NewJournalHandler(journalRepo),
		Health:     handler.NewHealthHandler(pool, cache.Client(), clients.Drive, cfg.DocsFolderID),
	}

	app := fiber.New(fiber.Config{
		AppName:      "Transcript API",
		ServerHeader: "transcripts-bot",
	})
	router.Setup(app, h, cfg.CORSOrigins)

	// Graceful shutdown on SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	log.Printf("transcript API starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
