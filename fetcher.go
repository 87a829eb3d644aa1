package scrapeview

import "context"

// Fetcher retrieves raw HTML from URLs without executing JavaScript.
type Fetcher interface {
	// Fetch returns the response body for the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources.
	Close() error
}

// Renderer retrieves HTML after JavaScript has run, scrolling the page to
// trigger lazily loaded content. Scroll counts and visited pages are
// recorded on the given Interactions.
type Renderer interface {
	Render(ctx context.Context, url string, in *Interactions) (html string, err error)

	// Close releases browser resources.
	// Must be called when the Renderer is no longer needed.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
