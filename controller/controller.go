// Package controller drives a single scrape request through its lifecycle.
// It validates input, issues the call through a scrapeview.Scraper, keeps the
// last exportable result, and reports status to a presenter and listener.
package controller

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fwojciec/scrapeview"
)

// Controller owns the lifecycle of the one request that may be in flight.
// Submit may be called from any goroutine; calls made while a request is in
// flight return immediately without effect.
type Controller struct {
	Scraper   scrapeview.Scraper
	Presenter scrapeview.Presenter
	Listener  scrapeview.Listener

	// Results is the last exportable response. Only the controller writes it.
	Results *scrapeview.ResultSlot

	// Logger receives transport failures. Defaults to discarding output.
	Logger *slog.Logger

	// gate orders claiming and releasing the in-flight flag together with
	// the matching ControlsEnabled call.
	gate     sync.Mutex
	inFlight atomic.Bool

	mu     sync.Mutex
	status scrapeview.Status
}

// Status returns the current status.
func (c *Controller) Status() scrapeview.Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// ExportEnabled reports whether there is a result to export.
func (c *Controller) ExportEnabled() bool {
	return c.Status().ControlsEnabled() && !c.Results.Empty()
}

// Submit trims urlText and, unless a request is already in flight, runs one
// request to completion. Errors never escape: they end in a Failed status.
func (c *Controller) Submit(ctx context.Context, urlText string) {
	url, ok := c.claim(urlText)
	if !ok {
		return
	}
	defer c.release()

	resp, err := c.Scraper.Scrape(ctx, &scrapeview.ScrapeRequest{URL: url})
	if err != nil {
		c.logger().Error("scrape failed",
			"url", url,
			"code", scrapeview.ErrorCode(err),
			"err", err,
		)
		c.transition(scrapeview.Event{Kind: scrapeview.EventFailed})
		// An earlier result stays exportable.
		c.Listener.ExportEnabled(!c.Results.Empty())
		return
	}

	if !resp.HasSections() {
		c.Results.Clear()
		c.transition(scrapeview.Event{Kind: scrapeview.EventSucceeded})
		c.Listener.ExportEnabled(false)
		return
	}

	c.Results.Store(resp)
	c.Presenter.Render(resp.Sections())
	c.transition(scrapeview.Event{Kind: scrapeview.EventSucceeded, Sections: len(resp.Sections())})
	c.Listener.ExportEnabled(true)
}

// claim takes the in-flight flag for a non-blank url and disables the
// controls. The flag stands in for disabled input controls.
func (c *Controller) claim(urlText string) (string, bool) {
	c.gate.Lock()
	defer c.gate.Unlock()

	if !c.inFlight.CompareAndSwap(false, true) {
		c.logger().Debug("submit ignored", "reason", "request in flight")
		return "", false
	}

	url := strings.TrimSpace(urlText)
	if !c.transition(scrapeview.Event{Kind: scrapeview.EventSubmit, URL: url}) || url == "" {
		c.inFlight.Store(false)
		return "", false
	}

	c.Presenter.Clear()
	c.Listener.ExportEnabled(false)
	c.Listener.ControlsEnabled(false)
	return url, true
}

// release re-enables the controls before the flag is cleared, so no other
// submit can disable them first.
func (c *Controller) release() {
	c.gate.Lock()
	defer c.gate.Unlock()

	c.Listener.ControlsEnabled(true)
	c.inFlight.Store(false)
}

// transition applies e and notifies the listener when it is accepted.
func (c *Controller) transition(e scrapeview.Event) bool {
	c.mu.Lock()
	next, ok := scrapeview.Transition(c.status, e)
	if ok {
		c.status = next
	}
	c.mu.Unlock()

	if ok {
		c.Listener.StatusChanged(next)
	}
	return ok
}

func (c *Controller) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.Logger
}
