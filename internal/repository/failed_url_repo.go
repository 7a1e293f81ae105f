package repository

import (
	"context"

	"github.com/user/listing-harvester/internal/entity"
)

// FailedURLRepository records URLs that were skipped, for later inspection.
type FailedURLRepository interface {
	// Save creates or updates the record for a failed URL.
	Save(ctx context.Context, failedURL *entity.FailedURL) error
}
