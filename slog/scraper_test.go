package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/scrapeview"
	"github.com/fwojciec/scrapeview/mock"
	scslog "github.com/fwojciec/scrapeview/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingScraper_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("logs url and section count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		resp, err := scrapeview.ParseScrapeResponse([]byte(`{"result":{"sections":[{"id":"a"},{"id":"b"}]}}`))
		require.NoError(t, err)
		inner := &mock.Scraper{
			ScrapeFn: func(ctx context.Context, req *scrapeview.ScrapeRequest) (*scrapeview.ScrapeResponse, error) {
				return resp, nil
			},
		}

		scraper := scslog.NewLoggingScraper(inner, logger)
		got, err := scraper.Scrape(context.Background(), &scrapeview.ScrapeRequest{URL: "https://example.com"})

		require.NoError(t, err)
		assert.Same(t, resp, got)
		output := buf.String()
		assert.Contains(t, output, "msg=scrape")
		assert.Contains(t, output, "url=https://example.com")
		assert.Contains(t, output, "sections=2")
	})

	t.Run("logs error code on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Scraper{
			ScrapeFn: func(ctx context.Context, req *scrapeview.ScrapeRequest) (*scrapeview.ScrapeResponse, error) {
				return nil, scrapeview.Errorf(scrapeview.ETRANSPORT, "HTTP 502")
			},
		}

		scraper := scslog.NewLoggingScraper(inner, logger)
		_, err := scraper.Scrape(context.Background(), &scrapeview.ScrapeRequest{URL: "https://example.com"})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "sections=0")
		assert.Contains(t, output, "code=transport")
	})
}

func TestLoggingPageScraper_ScrapePage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.PageScraper{
		ScrapePageFn: func(ctx context.Context, url string) *scrapeview.PageResult {
			return &scrapeview.PageResult{
				URL:          url,
				Sections:     []*scrapeview.PageSection{{ID: "section-0"}},
				Interactions: scrapeview.Interactions{Scrolls: 3},
				Errors:       []scrapeview.PageError{{Phase: scrapeview.PhaseRender, Message: "boom"}},
			}
		},
	}

	scraper := scslog.NewLoggingPageScraper(inner, logger)
	result := scraper.ScrapePage(context.Background(), "https://example.com")

	assert.Equal(t, "https://example.com", result.URL)
	output := buf.String()
	assert.Contains(t, output, "msg=\"scrape page\"")
	assert.Contains(t, output, "sections=1")
	assert.Contains(t, output, "errors=1")
	assert.Contains(t, output, "scrolls=3")
}
