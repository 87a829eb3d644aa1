package mock

import (
	"context"

	"github.com/fwojciec/scrapeview"
)

var _ scrapeview.PageScraper = (*PageScraper)(nil)

// PageScraper is a mock implementation of scrapeview.PageScraper.
type PageScraper struct {
	ScrapePageFn func(ctx context.Context, url string) *scrapeview.PageResult
}

func (s *PageScraper) ScrapePage(ctx context.Context, url string) *scrapeview.PageResult {
	return s.ScrapePageFn(ctx, url)
}

var _ scrapeview.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of scrapeview.PageCache.
type PageCache struct {
	FindPageFn func(ctx context.Context, url string) (*scrapeview.PageResult, error)
	SavePageFn func(ctx context.Context, result *scrapeview.PageResult) error
}

func (c *PageCache) FindPage(ctx context.Context, url string) (*scrapeview.PageResult, error) {
	return c.FindPageFn(ctx, url)
}

func (c *PageCache) SavePage(ctx context.Context, result *scrapeview.PageResult) error {
	return c.SavePageFn(ctx, result)
}
