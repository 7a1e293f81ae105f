package usecase

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/user/listing-harvester/internal/entity"
	"github.com/user/listing-harvester/internal/repository"
)

// fakeFetcher serves canned bodies by URL. Unknown URLs return a 404.
type fakeFetcher struct {
	pages map[string]string
	calls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.calls = append(f.calls, url)
	body, ok := f.pages[url]
	if !ok {
		return nil, &repository.StatusError{URL: url, StatusCode: 404}
	}
	return []byte(body), nil
}

type sliceReader struct {
	urls []string
	pos  int
}

func (r *sliceReader) Next(context.Context) (string, error) {
	for r.pos < len(r.urls) {
		u := r.urls[r.pos]
		r.pos++
		if u != "" {
			return u, nil
		}
	}
	return "", io.EOF
}

type memURLWriter struct {
	urls []string
	fail bool
}

func (w *memURLWriter) Write(_ context.Context, url string) error {
	if w.fail {
		return fmt.Errorf("queue unavailable")
	}
	w.urls = append(w.urls, url)
	return nil
}

type memRecordWriter struct {
	records []*entity.ListingRecord
}

func (w *memRecordWriter) Write(_ context.Context, rec *entity.ListingRecord) error {
	w.records = append(w.records, rec)
	return nil
}

type memFailedRepo struct {
	mu     sync.Mutex
	failed []*entity.FailedURL
}

func (r *memFailedRepo) Save(_ context.Context, f *entity.FailedURL) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed = append(r.failed, f)
	return nil
}

// detailPage renders a minimal listing page for id.
func detailPage(id string) string {
	return `<html><head><title>Eladó lakás</title></head><body>
<span>` + id + `0 000 Ft</span><span>55 m²</span><span>3 + 1 fél szoba</span>
<img src="https://maps.example/staticmap?center=47.49,19.04&zoom=15">
<b class="listing-id">` + id + `</b>
<table><tr><td>Lift</td><td>van</td></tr><tr><td>Erkély</td><td>nincs</td></tr></table>
</body></html>`
}

// cancellingFetcher cancels the run while fetching its n-th URL, the way a
// SIGINT lands during an in-flight request.
type cancellingFetcher struct {
	fakeFetcher
	cancel context.CancelFunc
	at     int
}

func (f *cancellingFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if len(f.calls)+1 == f.at {
		f.calls = append(f.calls, url)
		f.cancel()
		return nil, fmt.Errorf("%w: %w", repository.ErrFetchFailed, ctx.Err())
	}
	return f.fakeFetcher.Fetch(ctx, url)
}
