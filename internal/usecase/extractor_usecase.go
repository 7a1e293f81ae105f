package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/user/listing-harvester/internal/entity"
	"github.com/user/listing-harvester/internal/extractor"
	"github.com/user/listing-harvester/internal/repository"
	"github.com/user/listing-harvester/pkg/metrics"
)

// Extraction turns a list of detail URLs into listing records.
type Extraction struct {
	source    repository.URLReader
	fetcher   repository.PageFetcher
	extractor *extractor.Extractor
	writers   []repository.RecordWriter
	failure   *failureRecorder
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewExtraction creates the extractor run loop. failed may be nil.
func NewExtraction(
	source repository.URLReader,
	fetcher repository.PageFetcher,
	ex *extractor.Extractor,
	writers []repository.RecordWriter,
	failed repository.FailedURLRepository,
	m *metrics.Metrics,
	l *zap.Logger,
) *Extraction {
	return &Extraction{
		source:    source,
		fetcher:   fetcher,
		extractor: ex,
		writers:   writers,
		failure:   &failureRecorder{pipeline: pipelineExtractor, repo: failed, metrics: m, logger: l},
		metrics:   m,
		logger:    l,
	}
}

// Run processes every URL from the source in order. Records are written as
// soon as they are extracted, so a cancelled run keeps its partial output.
func (e *Extraction) Run(ctx context.Context) (*entity.RunStats, error) {
	stats := &entity.RunStats{}

	for index := 1; ; index++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		url, err := e.source.Next(ctx)
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if err != nil {
			return stats, err
		}

		stats.Processed++
		e.metrics.IncPages(pipelineExtractor)
		e.logger.Info("processing listing", zap.Int("index", index), zap.String("url", url))

		rec, err := e.process(ctx, url)
		if err != nil {
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}
			stats.Errors++
			e.failure.record(ctx, url, err)
			continue
		}
		stats.Records++
		e.metrics.IncRecords()
		e.logger.Debug("record written", zap.String("url", url), zap.String("listing_id", rec.ListingID))
	}
}

func (e *Extraction) process(ctx context.Context, url string) (*entity.ListingRecord, error) {
	body, err := e.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	res, err := e.extractor.Extract(url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	for _, miss := range res.Misses {
		e.metrics.IncFieldMiss(miss.Field)
		e.logger.Debug("field defaulted", zap.String("url", url), zap.String("field", miss.Field), zap.String("reason", miss.Reason))
	}

	for _, w := range e.writers {
		if err := w.Write(ctx, res.Record); err != nil {
			if !errors.Is(err, repository.ErrSinkFailed) {
				err = fmt.Errorf("%w: %w", repository.ErrSinkFailed, err)
			}
			return nil, err
		}
	}
	return res.Record, nil
}
