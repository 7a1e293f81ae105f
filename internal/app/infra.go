// Package app wires the infrastructure shared by the collector and extractor binaries.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/user/listing-harvester/internal/adapter/chromedp_fetcher"
	"github.com/user/listing-harvester/internal/adapter/httpfetch"
	"github.com/user/listing-harvester/internal/adapter/postgres"
	deliveryhttp "github.com/user/listing-harvester/internal/delivery/http"
	"github.com/user/listing-harvester/internal/delivery/http/handler"
	"github.com/user/listing-harvester/internal/delivery/http/router"
	"github.com/user/listing-harvester/internal/proxy"
	"github.com/user/listing-harvester/internal/repository"
	"github.com/user/listing-harvester/pkg/config"
	"github.com/user/listing-harvester/pkg/metrics"
)

// Infra holds the optional backing services and the shared page fetcher.
type Infra struct {
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
	Fetcher  repository.PageFetcher
	DB       *pgxpool.Pool // nil without POSTGRES_URL
	Redis    *redis.Client // nil without REDIS_ADDR

	server  *deliveryhttp.Server
	closers []func()
	logger  *zap.Logger
}

// New connects the configured services. Any failure here is a wiring error.
func New(ctx context.Context, cfg *config.Config, l *zap.Logger) (*Infra, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	in := &Infra{Registry: reg, Metrics: metrics.New(reg), logger: l}

	if cfg.PostgresURL != "" {
		pool, err := postgres.Connect(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		in.DB = pool
		in.closers = append(in.closers, pool.Close)
		l.Info("PostgreSQL connection pool established")
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		if err := rdb.Ping(ctx).Err(); err != nil {
			in.Close()
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		in.Redis = rdb
		in.closers = append(in.closers, func() { rdb.Close() })
		l.Info("Redis connection established", zap.String("addr", cfg.RedisAddr))
	}

	pm := proxy.NewManager(cfg.ProxyList(), cfg.UserAgentList())
	switch cfg.FetchMode {
	case "chromedp":
		f := chromedp_fetcher.NewChromedpFetcher(cfg.PageLoadTimeoutDuration(), pm, in.Metrics, l)
		in.Fetcher = f
		in.closers = append(in.closers, f.Close)
	case "http", "":
		in.Fetcher = httpfetch.NewFetcher(cfg.RequestTimeoutDuration(), cfg.RequestRPS, pm, in.Metrics, l)
	default:
		in.Close()
		return nil, fmt.Errorf("unknown FETCH_MODE %q", cfg.FetchMode)
	}

	if cfg.MetricsAddr != "" {
		h := handler.NewHandler(in.pingers(), l)
		in.server = deliveryhttp.NewServer(cfg.MetricsAddr, router.New(h, reg, in.Metrics, l), l)
		in.server.Start()
	}

	return in, nil
}

func (in *Infra) pingers() map[string]handler.Pinger {
	p := make(map[string]handler.Pinger)
	if in.DB != nil {
		p["postgres"] = in.DB
	}
	if in.Redis != nil {
		rdb := in.Redis
		p["redis"] = handler.PingerFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	}
	return p
}

// FailedURLs returns the failed-URL store, or nil without Postgres.
func (in *Infra) FailedURLs() repository.FailedURLRepository {
	if in.DB == nil {
		return nil
	}
	return postgres.NewFailedURLRepo(in.DB)
}

// Close stops the monitoring server and releases every connection.
func (in *Infra) Close() {
	if in.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := in.server.Shutdown(ctx); err != nil {
			in.logger.Warn("monitoring server shutdown", zap.Error(err))
		}
		cancel()
	}
	for i := len(in.closers) - 1; i >= 0; i-- {
		in.closers[i]()
	}
}
