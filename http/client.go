// Package http provides HTTP implementations of the scrapeview interfaces:
// a client for the extraction service, a static page fetcher, and the
// extraction service's own server.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/scrapeview"
)

// DefaultScrapeTimeout bounds a whole scrape call. Rendering fallbacks on
// the service side can take tens of seconds.
const DefaultScrapeTimeout = 90 * time.Second

// DefaultEndpoint is where the extraction service listens by default.
const DefaultEndpoint = "http://localhost:8000"

// ScrapePath is the extraction service route.
const ScrapePath = "/scrape"

// maxResponseBody caps how much of a response is read.
const maxResponseBody = 32 << 20

// Ensure Client implements scrapeview.Scraper at compile time.
var _ scrapeview.Scraper = (*Client)(nil)

// Client posts scrape requests to the extraction service.
type Client struct {
	client   *http.Client
	endpoint string
	timeout  time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithEndpoint sets the service base URL. Defaults to DefaultEndpoint.
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithScrapeTimeout sets the timeout for a scrape call.
// Defaults to DefaultScrapeTimeout if not specified.
func WithScrapeTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a new Client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		timeout:  DefaultScrapeTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// URL returns the full scrape URL.
func (c *Client) URL() string {
	return strings.TrimSuffix(c.endpoint, "/") + ScrapePath
}

// Scrape posts {"url": ...} and parses the response. Any non-2xx status,
// transport error or unparseable body returns ETRANSPORT.
func (c *Client) Scrape(ctx context.Context, in *scrapeview.ScrapeRequest) (*scrapeview.ScrapeResponse, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, scrapeview.Errorf(scrapeview.EINTERNAL, "encode request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(), bytes.NewReader(body))
	if err != nil {
		return nil, scrapeview.Errorf(scrapeview.ETRANSPORT, "build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, scrapeview.Errorf(scrapeview.ETRANSPORT, "post %s: %v", c.URL(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, scrapeview.Errorf(scrapeview.ETRANSPORT, "HTTP %d from %s", resp.StatusCode, c.URL())
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, scrapeview.Errorf(scrapeview.ETRANSPORT, "read response: %v", err)
	}

	return scrapeview.ParseScrapeResponse(data)
}
