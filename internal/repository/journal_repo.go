package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TampaDave73/youtube-transcripts-bot/internal/model"
)

// JournalRepo persists one record per processed sheet row. The sheet's status
// cell stays the source of truth for idempotency; the journal is an audit
// trail read back over the API.
type JournalRepo struct {
	pool *pgxpool.Pool
}

func NewJournalRepo(pool *pgxpool.Pool) *JournalRepo {
	return &JournalRepo{pool: pool}
}

// Record inserts a journal entry for a processed row.
func (r *JournalRepo) Record(ctx context.Context, rec model.IngestRecord) error {
	query := `
		INSERT INTO ingest_journal (video_id, url, doc_id, status, error_detail, processed_at)
		VALUES ($1, $2, $3, $4, $5, now())`

	_, err := r.pool.Exec(ctx, query, rec.VideoID, rec.URL, rec.DocID, rec.Status, rec.ErrorDetail)
	return err
}

// Recent returns the latest journal entries, newest first.
func (r *JournalRepo) Recent(ctx context.Context, limit int) ([]model.IngestRecord, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := `
		SELECT id, video_id, url, doc_id, status, error_detail, processed_at
		FROM ingest_journal
		ORDER BY processed_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.IngestRecord
	for rows.Next() {
		var rec model.IngestRecord
		err := rows.Scan(&rec.ID, &rec.VideoID, &rec.URL, &rec.DocID,
			&rec.Status, &rec.ErrorDetail, &rec.ProcessedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
