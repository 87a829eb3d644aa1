package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/scrapeview"
	schttp "github.com/fwojciec/scrapeview/http"
	"github.com/fwojciec/scrapeview/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Debug   bool
	Scraper scrapeview.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Endpoint string        `default:"${endpoint}" env:"SCRAPEVIEW_ENDPOINT" help:"Extraction service base URL"`
	Timeout  time.Duration `default:"${timeout}" env:"SCRAPEVIEW_TIMEOUT" help:"Timeout for one scrape request"`
	Debug    bool          `help:"Log every request and status change"`

	Scrape ScrapeCmd `cmd:"" help:"Scrape a URL and print its sections"`
	TUI    TUICmd    `cmd:"" name:"tui" help:"Browse scrape results interactively"`
	Serve  ServeCmd  `cmd:"" help:"Run the extraction service"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL    string `arg:"" help:"URL to scrape"`
	Output string `short:"o" placeholder:"DIR" help:"Save the result as an export file in DIR"`
	Expand bool   `short:"e" help:"Show section bodies"`
}

// TUICmd is the "tui" subcommand.
type TUICmd struct {
	Output string `short:"o" default:"." placeholder:"DIR" help:"Directory for export files"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr        string        `default:":8000" env:"SCRAPEVIEW_ADDR" help:"Listen address"`
	JS          bool          `name:"js" help:"Render pages in a headless browser when static HTML looks incomplete"`
	Cache       string        `env:"SCRAPEVIEW_CACHE" placeholder:"PATH" help:"SQLite file for caching results"`
	CacheTTL    time.Duration `name:"cache-ttl" default:"${cache_ttl}" help:"How long cached results are served"`
	Rate        float64       `default:"1" help:"Requests per second per domain, 0 to disable"`
	PageTimeout time.Duration `default:"${page_timeout}" help:"Timeout for scraping one page"`
}

// Vars are the interpolation variables for CLI defaults.
var Vars = kong.Vars{
	"endpoint":     schttp.DefaultEndpoint,
	"timeout":      schttp.DefaultScrapeTimeout.String(),
	"page_timeout": schttp.DefaultPageTimeout.String(),
	"cache_ttl":    sqlite.DefaultTTL.String(),
}
