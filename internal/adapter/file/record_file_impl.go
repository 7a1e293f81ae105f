package file

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/user/listing-harvester/internal/entity"
	"github.com/user/listing-harvester/internal/repository"
)

// RecordFileWriter writes listing records as delimited rows without a header.
type RecordFileWriter struct {
	f *os.File
	w *csv.Writer
}

// CreateRecordFile creates or truncates path.
func CreateRecordFile(path string, delimiter rune) (*RecordFileWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create record file: %w", err)
	}
	w := csv.NewWriter(f)
	w.Comma = delimiter
	return &RecordFileWriter{f: f, w: w}, nil
}

// Write appends one row and flushes it.
func (r *RecordFileWriter) Write(_ context.Context, record *entity.ListingRecord) error {
	if err := r.w.Write(record.Values()); err != nil {
		return fmt.Errorf("%w: %w", repository.ErrSinkFailed, err)
	}
	r.w.Flush()
	if err := r.w.Error(); err != nil {
		return fmt.Errorf("%w: %w", repository.ErrSinkFailed, err)
	}
	return nil
}

func (r *RecordFileWriter) Close() error {
	r.w.Flush()
	if err := r.w.Error(); err != nil {
		r.f.Close()
		return err
	}
	return r.f.Close()
}
