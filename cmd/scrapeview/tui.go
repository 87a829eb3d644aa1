package main

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/scrapeview"
	scbubbletea "github.com/fwojciec/scrapeview/bubbletea"
	"github.com/fwojciec/scrapeview/controller"
	"github.com/fwojciec/scrapeview/fs"
	scslog "github.com/fwojciec/scrapeview/slog"
)

// debugLogFile receives TUI logs when --debug is set. The terminal is
// owned by the program while it runs.
const debugLogFile = "scrapeview-debug.log"

// Run executes the tui command.
func (c *TUICmd) Run(deps *Dependencies) error {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if deps.Debug {
		f, err := tea.LogToFile(debugLogFile, "scrapeview")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
		logger = newLogger(f, true)
	}

	bridge := &scbubbletea.Bridge{}
	var listener scrapeview.Listener = bridge
	if deps.Debug {
		listener = scslog.NewLoggingListener(bridge, logger)
	}

	results := &scrapeview.ResultSlot{}
	ctrl := &controller.Controller{
		Scraper:   deps.Scraper,
		Presenter: bridge,
		Listener:  listener,
		Results:   results,
		Logger:    logger,
	}

	model := scbubbletea.New(deps.Ctx, scbubbletea.Config{
		Submit:   ctrl.Submit,
		Results:  results,
		Exporter: fs.NewExporter(c.Output),
	})

	program := tea.NewProgram(model,
		tea.WithContext(deps.Ctx),
		tea.WithOutput(deps.Stdout),
	)
	bridge.Send = program.Send

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
