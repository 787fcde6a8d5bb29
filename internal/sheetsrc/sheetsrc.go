package sheetsrc

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/TampaDave73/youtube-transcripts-bot/internal/model"
)

// Column layout of the source range: URL in A, processing status in B.
// The first row is a header.
const (
	urlColumn    = 0
	statusColumn = 1
	statusCell   = "B"
)

// Source reads and updates the URL sheet that feeds the ingestion flow.
type Source struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
}

func New(svc *sheets.Service, spreadsheetID, sheetName string) *Source {
	return &Source{svc: svc, spreadsheetID: spreadsheetID, sheetName: sheetName}
}

// Rows fetches the data rows of the A:B range, skipping the header.
// A sheet with no data rows yields an empty slice.
func (s *Source) Rows(ctx context.Context) ([]model.SourceRow, error) {
	rangeName := fmt.Sprintf("%s!A:B", s.sheetName)
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rangeName).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read sheet range %s: %w", rangeName, err)
	}

	if len(resp.Values) < 2 {
		return nil, nil
	}

	rows := make([]model.SourceRow, 0, len(resp.Values)-1)
	for i, raw := range resp.Values[1:] {
		rows = append(rows, model.SourceRow{
			Index:  i,
			URL:    cellString(raw, urlColumn),
			Status: cellString(raw, statusColumn),
		})
	}
	return rows, nil
}

// SetStatus writes a status string into the status cell of the given data row.
// The +2 offset accounts for the header row and 0- to 1-based conversion.
func (s *Source) SetStatus(ctx context.Context, rowIndex int, status string) error {
	cell := fmt.Sprintf("%s!%s%d", s.sheetName, statusCell, rowIndex+2)
	body := &sheets.ValueRange{Values: [][]interface{}{{status}}}

	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, cell, body).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("update cell %s: %w", cell, err)
	}
	return nil
}

func cellString(row []interface{}, col int) string {
	if col >= len(row) {
		return ""
	}
	v, ok := row[col].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}
