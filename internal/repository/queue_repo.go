package repository

import "context"

// URLReader yields URLs in input order. It returns io.EOF when exhausted.
type URLReader interface {
	Next(ctx context.Context) (string, error)
}

// URLWriter accepts collected URLs, one at a time.
type URLWriter interface {
	Write(ctx context.Context, url string) error
}
