package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/user/listing-harvester/internal/entity"
	"github.com/user/listing-harvester/internal/repository"
	"github.com/user/listing-harvester/pkg/metrics"
)

const (
	pipelineCollector = "collector"
	pipelineExtractor = "extractor"
)

// failureRecorder counts, logs and optionally persists skipped items.
type failureRecorder struct {
	pipeline string
	repo     repository.FailedURLRepository
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func (f *failureRecorder) record(ctx context.Context, url string, err error) {
	stage := repository.Stage(err)
	f.metrics.IncErrors(f.pipeline, stage)
	f.logger.Warn("skipping url", zap.String("url", url), zap.String("stage", stage), zap.Error(err))

	if f.repo == nil {
		return
	}
	failed := &entity.FailedURL{
		URL:                  url,
		Pipeline:             f.pipeline,
		Stage:                stage,
		FailureReason:        err.Error(),
		HTTPStatusCode:       repository.StatusCode(err),
		LastAttemptTimestamp: time.Now(),
	}
	if err := f.repo.Save(ctx, failed); err != nil {
		f.logger.Error("failed to save failed url record", zap.String("url", url), zap.Error(err))
	}
}
