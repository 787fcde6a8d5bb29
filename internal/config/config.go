package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	SpreadsheetID  string
	SheetName      string
	DocsFolderID   string
	DatabaseURL    string
	RedisURL       string
	LogLevel       string
	Environment    string
	CORSOrigins    string
	IngestInterval time.Duration
	Languages      []string

	// Service-account credentials: inline JSON takes precedence over the file path.
	ServiceAccountJSON string
	ServiceAccountFile string
}

func Load() *Config {
	// Best effort: a missing .env is fine, real env vars win either way.
	_ = godotenv.Load()

	return &Config{
		Port:               getEnv("PORT", "8080"),
		SpreadsheetID:      os.Getenv("SPREADSHEET_ID"),
		SheetName:          getEnv("SHEET_NAME", "URL"),
		DocsFolderID:       os.Getenv("DOCS_FOLDER_ID"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisURL:           os.Getenv("REDIS_URL"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		CORSOrigins:        getEnv("CORS_ORIGINS", "*"),
		IngestInterval:     getDuration("INGEST_INTERVAL", 0),
		Languages:          getList("TRANSCRIPT_LANGUAGES", "en"),
		ServiceAccountJSON: os.Getenv("SERVICE_ACCOUNT_JSON"),
		ServiceAccountFile: getEnv("SERVICE_ACCOUNT_FILE", "service_account.json"),
	}
}

// ValidateCredentials checks that service-account material is available.
// Missing credentials abort startup before any row or request is served.
func (c *Config) ValidateCredentials() error {
	if c.ServiceAccountJSON != "" {
		return nil
	}
	if _, err := os.Stat(c.ServiceAccountFile); err != nil {
		return fmt.Errorf("no service account credentials: set SERVICE_ACCOUNT_JSON or provide %s", c.ServiceAccountFile)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getList(key, fallback string) []string {
	parts := strings.Split(getEnv(key, fallback), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
