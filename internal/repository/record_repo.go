package repository

import (
	"context"

	"github.com/user/listing-harvester/internal/entity"
)

// RecordWriter persists one extracted record. Implementations must not retain it.
type RecordWriter interface {
	Write(ctx context.Context, record *entity.ListingRecord) error
}
