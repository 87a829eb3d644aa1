package main

import (
	"fmt"

	"github.com/fwojciec/scrapeview"
	"github.com/fwojciec/scrapeview/goquery"
	schttp "github.com/fwojciec/scrapeview/http"
	"github.com/fwojciec/scrapeview/readability"
	"github.com/fwojciec/scrapeview/rod"
	"github.com/fwojciec/scrapeview/scrape"
	scslog "github.com/fwojciec/scrapeview/slog"
	"github.com/fwojciec/scrapeview/sqlite"
	"github.com/fwojciec/scrapeview/trafilatura"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	parser := goquery.NewParser()

	var fetcher scrapeview.Fetcher = schttp.NewFetcher()
	if deps.Debug {
		fetcher = scslog.NewLoggingFetcher(fetcher, deps.Logger)
	}
	defer fetcher.Close()

	orch := &scrape.Orchestrator{
		Fetcher: fetcher,
		Parser:  parser,
		Meta:    scrape.MetaChain{parser, trafilatura.NewExtractor(), readability.NewExtractor()},
		Logger:  deps.Logger,
	}
	if c.Rate > 0 {
		orch.RateLimiter = scrape.NewDomainLimiter(c.Rate)
	}

	if c.JS {
		renderer, err := rod.NewRenderer()
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer renderer.Close()

		orch.Renderer = renderer
		if deps.Debug {
			orch.Renderer = scslog.NewLoggingRenderer(renderer, deps.Logger)
		}
	}

	if c.Cache != "" {
		db := sqlite.NewDB(c.Cache)
		if err := db.Open(); err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Set SCRAPEVIEW_CACHE to use a different cache path")
			return fmt.Errorf("failed to open cache at %q: %w", c.Cache, err)
		}
		defer db.Close()

		cache := sqlite.NewPageCache(db, sqlite.WithTTL(c.CacheTTL))
		if n, err := cache.DeleteExpired(deps.Ctx); err != nil {
			deps.Logger.Warn("cache cleanup failed", "err", err)
		} else if n > 0 {
			deps.Logger.Info("cache cleanup", "deleted", n)
		}
		orch.Cache = cache
	}

	var scraper scrapeview.PageScraper = orch
	if deps.Debug {
		scraper = scslog.NewLoggingPageScraper(orch, deps.Logger)
	}

	srv := schttp.NewServer(scraper,
		schttp.WithLogger(deps.Logger),
		schttp.WithPageTimeout(c.PageTimeout),
	)
	return srv.ListenAndServe(deps.Ctx, c.Addr)
}
