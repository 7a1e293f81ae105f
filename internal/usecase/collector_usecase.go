package usecase

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/user/listing-harvester/internal/entity"
	"github.com/user/listing-harvester/internal/repository"
	"github.com/user/listing-harvester/pkg/metrics"
	"github.com/user/listing-harvester/pkg/utils"
)

var listingIDHref = regexp.MustCompile(`/(\d+)#?`)

// CollectorConfig holds the inputs of a collector run.
type CollectorConfig struct {
	QueryURL     string
	PageCount    int
	SiteBaseURL  string
	LinkSelector string
}

// Collector walks the paginated results and emits detail-page URLs.
type Collector struct {
	cfg     CollectorConfig
	base    *url.URL
	fetcher repository.PageFetcher
	writers []repository.URLWriter
	failure *failureRecorder
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewCollector creates a collector. failed may be nil.
func NewCollector(
	cfg CollectorConfig,
	fetcher repository.PageFetcher,
	writers []repository.URLWriter,
	failed repository.FailedURLRepository,
	m *metrics.Metrics,
	l *zap.Logger,
) (*Collector, error) {
	base, err := url.Parse(cfg.SiteBaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse site base url: %w", err)
	}
	return &Collector{
		cfg:     cfg,
		base:    base,
		fetcher: fetcher,
		writers: writers,
		failure: &failureRecorder{pipeline: pipelineCollector, repo: failed, metrics: m, logger: l},
		metrics: m,
		logger:  l,
	}, nil
}

// Run processes pages 1..PageCount in order. A failed page is counted and
// skipped. The returned error is only non-nil when ctx is cancelled.
func (c *Collector) Run(ctx context.Context) (*entity.RunStats, error) {
	stats := &entity.RunStats{}

	for page := 1; page <= c.cfg.PageCount; page++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		pageURL := utils.PageURL(c.cfg.QueryURL, page)
		stats.Processed++
		c.metrics.IncPages(pipelineCollector)
		c.logger.Info("processing results page", zap.Int("page", page), zap.String("url", pageURL))

		urls, err := c.CollectPage(ctx, page)
		if err != nil {
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}
			stats.Errors++
			c.failure.record(ctx, pageURL, err)
			continue
		}

		for _, u := range urls {
			if err := c.emit(ctx, u.URL); err != nil {
				stats.Errors++
				c.failure.record(ctx, u.URL, err)
				continue
			}
			stats.Records++
		}
		c.logger.Debug("page collected", zap.Int("page", page), zap.Int("urls", len(urls)))
	}

	return stats, nil
}

// CollectPage fetches one results page and returns its unique detail URLs
// in first-seen order.
func (c *Collector) CollectPage(ctx context.Context, page int) ([]entity.CollectedURL, error) {
	pageURL := utils.PageURL(c.cfg.QueryURL, page)

	body, err := c.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrParseFailed, err)
	}

	var (
		urls    []entity.CollectedURL
		seen    = make(map[string]struct{})
		hrefErr error
	)
	doc.Find(c.cfg.LinkSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		m := listingIDHref.FindStringSubmatch(href)
		if m == nil {
			hrefErr = fmt.Errorf("%w: %q on %s", repository.ErrHrefPattern, href, pageURL)
			return false
		}
		abs, err := utils.ToAbsoluteURL(c.base, m[1])
		if err != nil {
			hrefErr = fmt.Errorf("%w: %w", repository.ErrHrefPattern, err)
			return false
		}
		if _, dup := seen[abs]; !dup {
			seen[abs] = struct{}{}
			urls = append(urls, entity.CollectedURL{Page: page, ListingID: m[1], URL: abs})
		}
		return true
	})
	if hrefErr != nil {
		return nil, hrefErr
	}
	return urls, nil
}

func (c *Collector) emit(ctx context.Context, u string) error {
	for _, w := range c.writers {
		if err := w.Write(ctx, u); err != nil {
			return fmt.Errorf("%w: %w", repository.ErrSinkFailed, err)
		}
	}
	return nil
}
