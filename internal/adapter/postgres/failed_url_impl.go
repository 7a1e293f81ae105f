package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/listing-harvester/internal/entity"
)

// FailedURLRepoImpl provides a concrete implementation for the FailedURLRepository interface using PostgreSQL.
type FailedURLRepoImpl struct {
	db *pgxpool.Pool
}

// NewFailedURLRepo creates a new instance of FailedURLRepoImpl.
func NewFailedURLRepo(db *pgxpool.Pool) *FailedURLRepoImpl {
	return &FailedURLRepoImpl{db: db}
}

// Save creates or updates the record for a failed URL.
// It increments attempt_count on conflict.
func (r *FailedURLRepoImpl) Save(ctx context.Context, failedURL *entity.FailedURL) error {
	query := `
		INSERT INTO failed_urls (url, pipeline, stage, failure_reason, http_status_code, last_attempt_timestamp, attempt_count)
		VALUES ($1, $2, $3, $4, $5, $6, 1)
		ON CONFLICT (url) DO UPDATE SET
			pipeline = EXCLUDED.pipeline,
			stage = EXCLUDED.stage,
			failure_reason = EXCLUDED.failure_reason,
			http_status_code = EXCLUDED.http_status_code,
			last_attempt_timestamp = EXCLUDED.last_attempt_timestamp,
			attempt_count = failed_urls.attempt_count + 1;
	`
	_, err := r.db.Exec(ctx, query,
		failedURL.URL,
		failedURL.Pipeline,
		failedURL.Stage,
		failedURL.FailureReason,
		failedURL.HTTPStatusCode,
		failedURL.LastAttemptTimestamp,
	)
	return err
}
