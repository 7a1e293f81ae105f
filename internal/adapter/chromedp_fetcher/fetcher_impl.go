package chromedp_fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/user/listing-harvester/internal/proxy"
	"github.com/user/listing-harvester/internal/repository"
	"github.com/user/listing-harvester/pkg/metrics"
)

// ChromedpFetcher renders pages in a headless Chrome and returns the final DOM.
type ChromedpFetcher struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	proxies     *proxy.Manager
	timeout     time.Duration
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewChromedpFetcher starts one browser allocator shared by every Fetch.
func NewChromedpFetcher(pageLoadTimeout time.Duration, pm *proxy.Manager, m *metrics.Metrics, l *zap.Logger) *ChromedpFetcher {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(pm.GetUserAgent()),
	)
	if p := pm.GetProxy(); p != nil {
		opts = append(opts, chromedp.ProxyServer(p.String()))
	}
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &ChromedpFetcher{
		allocCtx:    allocCtx,
		allocCancel: cancel,
		proxies:     pm,
		timeout:     pageLoadTimeout,
		metrics:     m,
		logger:      l,
	}
}

// Fetch navigates to url, waits for the body and returns the rendered markup.
func (c *ChromedpFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	taskCtx, cancel := chromedp.NewContext(c.allocCtx, chromedp.WithLogf(c.logger.Sugar().Debugf))
	defer cancel()

	taskCtx, cancel = context.WithTimeout(taskCtx, c.timeout)
	defer cancel()

	// Cancel the browser tab if the run is interrupted.
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var html string
	start := time.Now()
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	c.metrics.FetchDuration.WithLabelValues("chromedp").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("%w: render %s: %w", repository.ErrFetchFailed, url, err)
	}

	c.logger.Debug("rendered page", zap.String("url", url), zap.Int("bytes", len(html)), zap.Duration("duration", time.Since(start)))
	return []byte(html), nil
}

// Close shuts the browser down.
func (c *ChromedpFetcher) Close() {
	c.allocCancel()
}
