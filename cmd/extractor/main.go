package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/user/listing-harvester/internal/adapter/file"
	"github.com/user/listing-harvester/internal/adapter/postgres"
	redis_adapter "github.com/user/listing-harvester/internal/adapter/redis"
	"github.com/user/listing-harvester/internal/app"
	"github.com/user/listing-harvester/internal/extractor"
	"github.com/user/listing-harvester/internal/repository"
	"github.com/user/listing-harvester/internal/usecase"
	"github.com/user/listing-harvester/pkg/config"
	"github.com/user/listing-harvester/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Error("could not load config", zap.Error(err))
		return 1
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		zap.NewExample().Error("could not build logger", zap.Error(err))
		return 1
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	infra, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialise infrastructure", zap.Error(err))
		return 1
	}
	defer infra.Close()

	var source repository.URLReader
	switch cfg.URLSource {
	case "redis":
		if infra.Redis == nil {
			log.Error("URL_SOURCE=redis requires REDIS_ADDR")
			return 1
		}
		queue := redis_adapter.NewQueueRepo(infra.Redis, cfg.URLQueueKey)
		if size, err := queue.Size(ctx); err == nil {
			log.Info("reading urls from redis", zap.String("key", cfg.URLQueueKey), zap.Int64("queued", size))
		}
		source = queue
	default:
		in, err := file.OpenURLFile(cfg.URLsFile)
		if err != nil {
			log.Error("failed to open url list", zap.String("path", cfg.URLsFile), zap.Error(err))
			return 1
		}
		defer in.Close()
		source = in
	}

	out, err := file.CreateRecordFile(cfg.RecordsFile, cfg.Delimiter())
	if err != nil {
		log.Error("failed to create record file", zap.String("path", cfg.RecordsFile), zap.Error(err))
		return 1
	}
	defer out.Close()

	writers := []repository.RecordWriter{out}
	if infra.DB != nil {
		writers = append(writers, postgres.NewListingRecordRepo(infra.DB))
	}

	ex := extractor.New(extractor.WithStrict(cfg.ExtractStrict))
	extraction := usecase.NewExtraction(source, infra.Fetcher, ex, writers, infra.FailedURLs(), infra.Metrics, log)

	log.Info("extractor started",
		zap.String("source", cfg.URLSource),
		zap.String("records_file", cfg.RecordsFile),
		zap.Bool("strict", cfg.ExtractStrict),
		zap.String("fetch_mode", cfg.FetchMode),
	)

	stats, err := extraction.Run(ctx)
	if err != nil {
		log.Warn("extractor interrupted", zap.Error(err))
	}
	log.Info("extractor finished",
		zap.Int("processed", stats.Processed),
		zap.Int("records", stats.Records),
		zap.Int("errors", stats.Errors),
	)
	return 0
}
