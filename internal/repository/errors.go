package repository

import (
	"errors"
	"fmt"
)

var (
	ErrFetchFailed      = errors.New("fetch failed")
	ErrParseFailed      = errors.New("document could not be parsed")
	ErrExtractionFailed = errors.New("required field missing")
	ErrHrefPattern      = errors.New("link href does not contain a listing id")
	ErrSinkFailed       = errors.New("record could not be written")
)

// StatusError reports a non-2xx response. It unwraps to ErrFetchFailed.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status code %d", e.URL, e.StatusCode)
}

func (e *StatusError) Unwrap() error { return ErrFetchFailed }

// Stage maps an error to the label used for metrics and failure records.
func Stage(err error) string {
	switch {
	case errors.Is(err, ErrFetchFailed):
		return "fetch"
	case errors.Is(err, ErrParseFailed):
		return "parse"
	case errors.Is(err, ErrExtractionFailed):
		return "extract"
	case errors.Is(err, ErrHrefPattern):
		return "href"
	case errors.Is(err, ErrSinkFailed):
		return "sink"
	default:
		return "unknown"
	}
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
