package main

import (
	"fmt"

	"github.com/fwojciec/scrapeview"
	"github.com/fwojciec/scrapeview/controller"
	"github.com/fwojciec/scrapeview/fs"
	sclipgloss "github.com/fwojciec/scrapeview/lipgloss"
	scslog "github.com/fwojciec/scrapeview/slog"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	presenter := sclipgloss.NewPresenter(deps.Stdout, sclipgloss.WithExpanded(c.Expand))
	printer := sclipgloss.NewStatusPrinter(deps.Stderr)

	var listener scrapeview.Listener = printer
	if deps.Debug {
		listener = scslog.NewLoggingListener(printer, deps.Logger)
	}

	results := &scrapeview.ResultSlot{}
	ctrl := &controller.Controller{
		Scraper:   deps.Scraper,
		Presenter: presenter,
		Listener:  listener,
		Results:   results,
		Logger:    deps.Logger,
	}
	ctrl.Submit(deps.Ctx, c.URL)

	status := printer.Status()
	if status.State == scrapeview.StateFailed {
		return fmt.Errorf("scrape failed: %s", status.Reason)
	}

	if c.Output == "" {
		return nil
	}
	if !printer.CanExport() {
		fmt.Fprintln(deps.Stderr, "Nothing to export.")
		return nil
	}

	file, err := scrapeview.Export(results)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapeview.ErrorMessage(err))
		return err
	}
	path, err := fs.NewExporter(c.Output).Save(deps.Ctx, file)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapeview.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stderr, "Saved %s\n", path)
	return nil
}
