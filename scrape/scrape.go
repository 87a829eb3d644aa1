// Package scrape produces page results: a static fetch first, then a
// rendering fallback when the static content looks incomplete.
package scrape

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/scrapeview"
)

// NoSectionsMessage is recorded when nothing else explains an empty result.
const NoSectionsMessage = "No meaningful content sections found"

var _ scrapeview.PageScraper = (*Orchestrator)(nil)

// Orchestrator scrapes a single page.
type Orchestrator struct {
	Fetcher scrapeview.Fetcher
	Parser  scrapeview.SectionParser
	Meta    scrapeview.MetaExtractor

	// Renderer is the JavaScript fallback. Nil disables it.
	Renderer scrapeview.Renderer

	// Cache is optional. Only results without errors are stored.
	Cache scrapeview.PageCache

	// RateLimiter is optional and applies to both fetch and render.
	RateLimiter scrapeview.DomainLimiter

	// RetryDelays applies to the static fetch. Nil uses DefaultRetryDelays.
	RetryDelays []time.Duration

	Logger *slog.Logger
	Now    func() time.Time
}

// ScrapePage always returns a complete result; failures are recorded in
// its Errors with the phase they happened in.
func (o *Orchestrator) ScrapePage(ctx context.Context, url string) *scrapeview.PageResult {
	if o.Cache != nil {
		if cached, err := o.Cache.FindPage(ctx, url); err == nil {
			o.logger().Debug("cache hit", "url", url)
			return cached
		} else if scrapeview.ErrorCode(err) != scrapeview.ENOTFOUND {
			o.logger().Warn("cache lookup failed", "url", url, "err", err)
		}
	}

	result := &scrapeview.PageResult{
		URL:       url,
		ScrapedAt: scrapeview.FormatScrapedAt(o.now()),
		Sections:  []*scrapeview.PageSection{},
		Interactions: scrapeview.Interactions{
			Clicks: []string{},
			Pages:  []string{url},
		},
		Errors: []scrapeview.PageError{},
	}

	html, err := o.fetch(ctx, url)
	if err != nil {
		addError(result, scrapeview.PhaseFetch, err)
	} else {
		if meta, err := o.Meta.ExtractMeta(html); err == nil {
			result.Meta = *meta
		} else {
			o.logger().Debug("meta extraction failed", "url", url, "err", err)
		}
		o.parse(result, html)
	}

	if o.Renderer != nil && NeedsJSRendering(result.Sections, html) {
		rendered, err := o.render(ctx, url, &result.Interactions)
		if err != nil {
			addError(result, scrapeview.PhaseRender, err)
		} else {
			o.parse(result, rendered)
		}
	}

	if len(result.Sections) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, scrapeview.PageError{
			Message: NoSectionsMessage,
			Phase:   scrapeview.PhaseParse,
		})
	}

	pages := result.Interactions.Pages
	result.Interactions.Pages = make([]string, 0, len(pages))
	for _, p := range pages {
		result.Interactions.AddPage(p)
	}

	if o.Cache != nil && len(result.Errors) == 0 {
		if err := o.Cache.SavePage(ctx, result); err != nil {
			o.logger().Warn("cache save failed", "url", url, "err", err)
		}
	}

	return result
}

// parse replaces the result's sections with those found in html.
func (o *Orchestrator) parse(result *scrapeview.PageResult, html string) {
	sections, err := o.Parser.ExtractSections(html, result.URL)
	if err != nil {
		addError(result, scrapeview.PhaseParse, err)
		return
	}
	if sections == nil {
		sections = []*scrapeview.PageSection{}
	}
	result.Sections = sections
}

// addError records err under phase. Application errors contribute only
// their message.
func addError(result *scrapeview.PageResult, phase string, err error) {
	msg := err.Error()
	var e *scrapeview.Error
	if errors.As(err, &e) {
		msg = e.Message
	}
	result.Errors = append(result.Errors, scrapeview.PageError{Message: msg, Phase: phase})
}

func (o *Orchestrator) fetch(ctx context.Context, url string) (string, error) {
	delays := o.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetryDelays(ctx, url, func(ctx context.Context, url string) (string, error) {
		if err := o.wait(ctx, url); err != nil {
			return "", err
		}
		return o.Fetcher.Fetch(ctx, url)
	}, o.logger(), delays)
}

func (o *Orchestrator) render(ctx context.Context, url string, in *scrapeview.Interactions) (string, error) {
	if err := o.wait(ctx, url); err != nil {
		return "", err
	}
	return o.Renderer.Render(ctx, url, in)
}

func (o *Orchestrator) wait(ctx context.Context, url string) error {
	if o.RateLimiter == nil {
		return nil
	}
	return o.RateLimiter.Wait(ctx, domainOf(url))
}

func (o *Orchestrator) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

func (o *Orchestrator) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}
