package gapi

import (
	"context"
	"fmt"

	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/TampaDave73/youtube-transcripts-bot/internal/config"
)

// Clients holds the constructed Google API services. Built once at startup
// and passed into each flow explicitly.
type Clients struct {
	Sheets *sheets.Service
	Docs   *docs.Service
	Drive  *drive.Service
}

// New builds Sheets, Docs and Drive services from service-account credentials.
// Inline JSON (SERVICE_ACCOUNT_JSON) takes precedence over the credentials file.
func New(ctx context.Context, cfg *config.Config) (*Clients, error) {
	var opts []option.ClientOption
	if cfg.ServiceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON)))
	} else {
		opts = append(opts, option.WithCredentialsFile(cfg.ServiceAccountFile))
	}
	opts = append(opts, option.WithScopes(
		sheets.SpreadsheetsScope,
		docs.DocumentsScope,
		drive.DriveScope,
	))

	sheetsSvc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	docsSvc, err := docs.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create docs service: %w", err)
	}

	driveSvc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	return &Clients{Sheets: sheetsSvc, Docs: docsSvc, Drive: driveSvc}, nil
}
