package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/user/listing-harvester/internal/adapter/file"
	redis_adapter "github.com/user/listing-harvester/internal/adapter/redis"
	"github.com/user/listing-harvester/internal/app"
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

	out, err := file.CreateURLFile(cfg.URLsFile)
	if err != nil {
		log.Error("failed to create url list", zap.String("path", cfg.URLsFile), zap.Error(err))
		return 1
	}
	defer out.Close()

	writers := []repository.URLWriter{out}
	if infra.Redis != nil {
		writers = append(writers, redis_adapter.NewQueueRepo(infra.Redis, cfg.URLQueueKey))
	}

	collector, err := usecase.NewCollector(usecase.CollectorConfig{
		QueryURL:     cfg.QueryURL,
		PageCount:    cfg.PageCount,
		SiteBaseURL:  cfg.SiteBaseURL,
		LinkSelector: cfg.LinkSelector,
	}, infra.Fetcher, writers, infra.FailedURLs(), infra.Metrics, log)
	if err != nil {
		log.Error("failed to create collector", zap.Error(err))
		return 1
	}

	log.Info("collector started",
		zap.String("query_url", cfg.QueryURL),
		zap.Int("pages", cfg.PageCount),
		zap.String("fetch_mode", cfg.FetchMode),
	)

	stats, err := collector.Run(ctx)
	if err != nil {
		log.Warn("collector interrupted", zap.Error(err))
	}
	log.Info("collector finished",
		zap.Int("pages", stats.Processed),
		zap.Int("urls", stats.Records),
		zap.Int("errors", stats.Errors),
	)
	return 0
}
