package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/scrapeview"
	schttp "github.com/fwojciec/scrapeview/http"
	scslog "github.com/fwojciec/scrapeview/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Scraper overrides the extraction service client. Used by tests.
	Scraper scrapeview.Scraper
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("scrapeview"),
		kong.Description("Submit URLs to an extraction service and browse the sections it finds"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		Vars,
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'scrapeview --help' to see available commands")
	}

	if args[0] == "help" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Kong prints help without stopping since Exit is a no-op, so commands
	// must not run after it.
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			_, _ = parser.Parse(args)
			return nil
		}
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Debug = cli.Debug
	deps.Logger = newLogger(stderr, cli.Debug)

	deps.Scraper = m.Scraper
	if deps.Scraper == nil {
		deps.Scraper = schttp.NewClient(
			schttp.WithEndpoint(cli.Endpoint),
			schttp.WithScrapeTimeout(cli.Timeout),
		)
	}
	if cli.Debug {
		deps.Scraper = scslog.NewLoggingScraper(deps.Scraper, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newLogger logs at debug level when debug is set and at info level otherwise.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
