package repository

import "context"

// PageFetcher defines the contract for turning a URL into raw HTML bytes.
type PageFetcher interface {
	// Fetch retrieves the page body. Failures wrap ErrFetchFailed.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
