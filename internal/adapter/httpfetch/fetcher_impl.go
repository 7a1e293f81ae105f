package httpfetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"

	"github.com/user/listing-harvester/internal/proxy"
	"github.com/user/listing-harvester/internal/repository"
	"github.com/user/listing-harvester/pkg/metrics"
)

// DefaultMaxBodyBytes caps the size of a fetched page.
const DefaultMaxBodyBytes = 10 << 20

// Fetcher is a plain HTTP GET page fetcher.
type Fetcher struct {
	client  *http.Client
	proxies *proxy.Manager
	limiter *rate.Limiter
	maxBody int64
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewFetcher creates a fetcher. rps <= 0 disables rate limiting.
func NewFetcher(timeout time.Duration, rps float64, pm *proxy.Manager, m *metrics.Metrics, l *zap.Logger) *Fetcher {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = pm.ProxyFunc

	return &Fetcher{
		client:  &http.Client{Timeout: timeout, Transport: transport},
		proxies: pm,
		limiter: rate.NewLimiter(limit, 1),
		maxBody: DefaultMaxBodyBytes,
		metrics: m,
		logger:  l,
	}
}

// Fetch retrieves url and returns its body decoded to UTF-8.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrFetchFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", f.proxies.GetUserAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "hu-HU,hu;q=0.9,en;q=0.5")

	start := time.Now()
	resp, err := f.client.Do(req)
	f.metrics.FetchDuration.WithLabelValues("http").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &repository.StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", repository.ErrFetchFailed, err)
	}
	if int64(len(raw)) > f.maxBody {
		return nil, fmt.Errorf("%w: %s: body exceeds %d bytes", repository.ErrFetchFailed, url, f.maxBody)
	}

	body, err := charset.NewReader(bytes.NewReader(raw), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: decode body: %w", repository.ErrFetchFailed, err)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: decode body: %w", repository.ErrFetchFailed, err)
	}

	f.logger.Debug("fetched page", zap.String("url", url), zap.Int("bytes", len(data)), zap.Duration("duration", time.Since(start)))
	return data, nil
}
