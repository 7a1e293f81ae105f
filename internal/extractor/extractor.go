package extractor

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/user/listing-harvester/internal/entity"
	"github.com/user/listing-harvester/internal/repository"
)

// FieldError reports a field that fell back to its default.
type FieldError struct {
	Field  string
	Fatal  bool
	Reason string // "not found" or "no match"
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Reason)
}

// Result is the outcome of extracting one document.
type Result struct {
	Record *entity.ListingRecord
	Misses []*FieldError
}

// FatalMisses returns the misses on fatal fields.
func (r *Result) FatalMisses() []*FieldError {
	var out []*FieldError
	for _, m := range r.Misses {
		if m.Fatal {
			out = append(out, m)
		}
	}
	return out
}

// Extractor evaluates a field table against detail pages.
type Extractor struct {
	fields []Field
	strict bool
	now    func() time.Time
}

type Option func(*Extractor)

// WithStrict rejects a record when any fatal field misses.
func WithStrict(strict bool) Option {
	return func(e *Extractor) { e.strict = strict }
}

// WithFields replaces the default field table.
func WithFields(fields []Field) Option {
	return func(e *Extractor) { e.fields = fields }
}

// WithClock sets the timestamp source for ExtractedAt.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) { e.now = now }
}

func New(opts ...Option) *Extractor {
	e := &Extractor{
		fields: DefaultFields(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses the page body read from r and extracts one record.
func (e *Extractor) Extract(url string, r io.Reader) (*Result, error) {
	doc, err := ParseDocument(r)
	if err != nil {
		return nil, err
	}
	return e.ExtractDocument(url, doc)
}

// ExtractDocument evaluates every field independently. A miss never stops
// the remaining fields from being evaluated.
func (e *Extractor) ExtractDocument(url string, doc *Document) (*Result, error) {
	res := &Result{
		Record: &entity.ListingRecord{URL: url, ExtractedAt: e.now()},
	}

	for _, f := range e.fields {
		value, miss := evaluate(f, doc)
		if miss != nil {
			res.Misses = append(res.Misses, miss)
		}
		if f.Assign != nil {
			f.Assign(res.Record, value)
		}
	}

	if e.strict {
		if fatal := res.FatalMisses(); len(fatal) > 0 {
			errs := make([]error, len(fatal))
			for i, m := range fatal {
				errs[i] = m
			}
			return nil, fmt.Errorf("%w: %w", repository.ErrExtractionFailed, errors.Join(errs...))
		}
	}

	return res, nil
}

func evaluate(f Field, doc *Document) (string, *FieldError) {
	raw, ok := f.Locate(doc)
	if !ok {
		return f.Default, &FieldError{Field: f.Name, Fatal: f.Fatal, Reason: "not found"}
	}
	if f.Parse == nil {
		return raw, nil
	}
	value, ok := f.Parse(raw)
	if !ok {
		return f.Default, &FieldError{Field: f.Name, Fatal: f.Fatal, Reason: "no match"}
	}
	return value, nil
}
