// Package rod renders JavaScript-heavy pages in headless Chrome.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/scrapeview"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Renderer defaults.
const (
	DefaultRenderTimeout = 30 * time.Second
	DefaultMaxScrolls    = 3
	DefaultScrollWait    = 1500 * time.Millisecond
)

// Ensure Renderer implements scrapeview.Renderer at compile time.
var _ scrapeview.Renderer = (*Renderer)(nil)

// Renderer loads a page in a browser tab, scrolls it to trigger lazily
// loaded content and returns the resulting HTML.
// Renderer is safe for concurrent use by multiple goroutines.
type Renderer struct {
	browser    *Browser
	timeout    time.Duration
	maxScrolls int
	scrollWait time.Duration
	userAgent  string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithRenderTimeout bounds a single Render call.
// Defaults to DefaultRenderTimeout if not specified.
func WithRenderTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		r.timeout = d
	}
}

// WithMaxScrolls sets how many times the page is scrolled at most.
func WithMaxScrolls(n int) Option {
	return func(r *Renderer) {
		r.maxScrolls = n
	}
}

// WithScrollWait sets the pause after each scroll.
func WithScrollWait(d time.Duration) Option {
	return func(r *Renderer) {
		r.scrollWait = d
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(r *Renderer) {
		r.userAgent = ua
	}
}

// NewRenderer launches a browser. Close must be called when the Renderer
// is no longer needed.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		timeout:    DefaultRenderTimeout,
		maxScrolls: DefaultMaxScrolls,
		scrollWait: DefaultScrollWait,
		userAgent:  DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(r)
	}

	browser, err := LaunchBrowser()
	if err != nil {
		return nil, err
	}
	r.browser = browser
	return r, nil
}

// Render navigates to url, scrolls until the page stops growing or the
// scroll limit is reached, and returns the rendered HTML. Every scroll
// that grew the page and the final page URL are recorded on in.
func (r *Renderer) Render(ctx context.Context, url string, in *scrapeview.Interactions) (string, error) {
	if r.browser.Closed() {
		return "", scrapeview.Errorf(scrapeview.EINVALID, "renderer is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	page, err := r.browser.OpenPage()
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: r.userAgent}); err != nil {
		return "", err
	}
	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             1280,
		Height:            800,
		DeviceScaleFactor: 1,
	}); err != nil {
		return "", err
	}

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	if err := r.scroll(ctx, page, in); err != nil {
		return "", err
	}

	if info, err := page.Info(); err == nil && info.URL != "" {
		in.AddPage(info.URL)
	}

	return page.HTML()
}

// scroll jumps to the bottom of the page until it stops growing.
func (r *Renderer) scroll(ctx context.Context, page *rod.Page, in *scrapeview.Interactions) error {
	last, err := scrollHeight(page)
	if err != nil {
		return err
	}

	for i := 0; i < r.maxScrolls; i++ {
		if _, err := page.Eval(`() => window.scrollTo(0, document.body ? document.body.scrollHeight : 0)`); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.scrollWait):
		}

		height, err := scrollHeight(page)
		if err != nil {
			return err
		}
		if height == last {
			break
		}
		last = height
		in.Scrolls++
	}
	return nil
}

func scrollHeight(page *rod.Page) (int, error) {
	res, err := page.Eval(`() => document.body ? document.body.scrollHeight : 0`)
	if err != nil {
		return 0, err
	}
	return res.Value.Int(), nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (r *Renderer) Close() error {
	return r.browser.Close()
}
