package mock

import (
	"context"

	"github.com/fwojciec/scrapeview"
)

var _ scrapeview.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of scrapeview.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ scrapeview.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of scrapeview.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, url string, in *scrapeview.Interactions) (string, error)
	CloseFn  func() error
}

func (r *Renderer) Render(ctx context.Context, url string, in *scrapeview.Interactions) (string, error) {
	return r.RenderFn(ctx, url, in)
}

func (r *Renderer) Close() error {
	return r.CloseFn()
}

var _ scrapeview.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of scrapeview.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
