package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/scrapeview"
)

// Ensure LoggingScraper implements scrapeview.Scraper.
var _ scrapeview.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with debug logging.
type LoggingScraper struct {
	next   scrapeview.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next scrapeview.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape logs the request URL, the section count and delegates.
func (s *LoggingScraper) Scrape(ctx context.Context, req *scrapeview.ScrapeRequest) (resp *scrapeview.ScrapeResponse, err error) {
	defer func(begin time.Time) {
		sections := 0
		if resp != nil {
			sections = len(resp.Sections())
		}
		s.logger.Info("scrape",
			"url", req.URL,
			"sections", sections,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scrape(ctx, req)
}

// Ensure LoggingPageScraper implements scrapeview.PageScraper.
var _ scrapeview.PageScraper = (*LoggingPageScraper)(nil)

// LoggingPageScraper wraps a PageScraper with debug logging.
type LoggingPageScraper struct {
	next   scrapeview.PageScraper
	logger *slog.Logger
}

// NewLoggingPageScraper creates a new LoggingPageScraper.
func NewLoggingPageScraper(next scrapeview.PageScraper, logger *slog.Logger) *LoggingPageScraper {
	return &LoggingPageScraper{next: next, logger: logger}
}

// ScrapePage logs section and error counts of the result.
func (s *LoggingPageScraper) ScrapePage(ctx context.Context, url string) (result *scrapeview.PageResult) {
	defer func(begin time.Time) {
		s.logger.Info("scrape page",
			"url", url,
			"sections", len(result.Sections),
			"errors", len(result.Errors),
			"scrolls", result.Interactions.Scrolls,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.ScrapePage(ctx, url)
}
