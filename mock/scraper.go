package mock

import (
	"context"

	"github.com/fwojciec/scrapeview"
)

var _ scrapeview.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of scrapeview.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, req *scrapeview.ScrapeRequest) (*scrapeview.ScrapeResponse, error)
}

func (s *Scraper) Scrape(ctx context.Context, req *scrapeview.ScrapeRequest) (*scrapeview.ScrapeResponse, error) {
	return s.ScrapeFn(ctx, req)
}

var _ scrapeview.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of scrapeview.Exporter.
type Exporter struct {
	SaveFn func(ctx context.Context, file *scrapeview.ExportFile) (string, error)
}

func (e *Exporter) Save(ctx context.Context, file *scrapeview.ExportFile) (string, error) {
	return e.SaveFn(ctx, file)
}
