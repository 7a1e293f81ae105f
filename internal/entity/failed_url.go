package entity

import "time"

// FailedURL mirrors the `failed_urls` PostgreSQL table schema.
type FailedURL struct {
	ID                   int64
	URL                  string
	Pipeline             string // "collector", "extractor"
	Stage                string // "fetch", "parse", "extract", "href", "sink"
	FailureReason        string
	HTTPStatusCode       int
	LastAttemptTimestamp time.Time
}
