package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/scrapeview"
	sclipgloss "github.com/fwojciec/scrapeview/lipgloss"
)

// focus is the area receiving key presses.
type focus int

const (
	focusInput focus = iota
	focusUnits
)

// Config wires a Model to the rest of the application.
type Config struct {
	// Submit runs one request to completion. It is called from a command
	// goroutine, never from Update.
	Submit func(ctx context.Context, url string)

	// Results is read when exporting.
	Results scrapeview.ResultReader

	// Exporter saves export files. Export is unavailable when nil.
	Exporter scrapeview.Exporter

	// Clipboard copies text. Defaults to the system clipboard.
	Clipboard func(string) error

	// Styles defaults to styles for the default renderer.
	Styles *sclipgloss.Styles
}

// Model is the bubbletea model of the scrape UI.
type Model struct {
	ctx       context.Context
	submit    func(ctx context.Context, url string)
	results   scrapeview.ResultReader
	exporter  scrapeview.Exporter
	clipboard func(string) error
	styles    sclipgloss.Styles

	input   textinput.Model
	spinner spinner.Model
	focus   focus

	units  []scrapeview.DisplayUnit
	cursor int

	status   scrapeview.Status
	controls bool
	export   bool
	notice   string
	alert    string
}

// New creates a Model. The context is passed to every submitted request.
func New(ctx context.Context, cfg Config) Model {
	input := textinput.New()
	input.Placeholder = "https://example.com"
	input.Prompt = "URL: "
	input.CharLimit = 2048
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:       ctx,
		submit:    cfg.Submit,
		results:   cfg.Results,
		exporter:  cfg.Exporter,
		clipboard: cfg.Clipboard,
		input:     input,
		spinner:   sp,
		controls:  true,
	}
	if m.clipboard == nil {
		m.clipboard = clipboard.WriteAll
	}
	if cfg.Styles != nil {
		m.styles = *cfg.Styles
	} else {
		m.styles = sclipgloss.NewStyles(nil)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := m.handleKeyPress(msg)
		return m, cmd

	case clearMsg:
		m.units = nil
		m.cursor = 0
		m.focus = focusInput
		return m, nil

	case renderMsg:
		m.units = msg.units
		m.cursor = 0
		return m, nil

	case statusMsg:
		m.status = scrapeview.Status(msg)
		if m.status.State == scrapeview.StateInFlight {
			m.notice = ""
			m.alert = ""
			return m, m.spinner.Tick
		}
		return m, nil

	case controlsMsg:
		m.controls = bool(msg)
		if !m.controls {
			m.input.Blur()
			return m, nil
		}
		if m.focus == focusInput {
			return m, m.input.Focus()
		}
		return m, nil

	case exportMsg:
		m.export = bool(msg)
		return m, nil

	case noticeMsg:
		m.notice = string(msg)
		m.alert = ""
		return m, nil

	case errorMsg:
		m.alert = string(msg)
		m.notice = ""
		return m, nil

	case spinner.TickMsg:
		if m.status.State != scrapeview.StateInFlight {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "esc":
		return tea.Quit
	case "ctrl+s":
		return m.saveExport()
	case "ctrl+y":
		return m.copyExport()
	case "tab":
		if m.focus == focusInput && len(m.units) > 0 {
			m.focus = focusUnits
			m.input.Blur()
			return nil
		}
		m.focus = focusInput
		if m.controls {
			return m.input.Focus()
		}
		return nil
	}

	if m.focus == focusUnits {
		return m.handleUnitKeys(msg)
	}

	if msg.Type == tea.KeyEnter {
		return m.submitURL()
	}
	if !m.controls {
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleUnitKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.units)-1 {
			m.cursor++
		}
	case "enter", " ":
		if m.cursor < len(m.units) {
			m.units[m.cursor].Expanded = !m.units[m.cursor].Expanded
		}
	}
	return nil
}

// submitURL hands the input to the controller. Enter is ignored while a
// request is in flight.
func (m *Model) submitURL() tea.Cmd {
	if !m.controls || m.submit == nil {
		return nil
	}
	ctx, submit, url := m.ctx, m.submit, m.input.Value()
	return func() tea.Msg {
		submit(ctx, url)
		return nil
	}
}

func (m *Model) saveExport() tea.Cmd {
	if !m.export || m.exporter == nil || m.results == nil {
		return nil
	}
	ctx, exporter, results := m.ctx, m.exporter, m.results
	return func() tea.Msg {
		file, err := scrapeview.Export(results)
		if err != nil {
			return errorMsg(fmt.Sprintf("Export failed: %s", scrapeview.ErrorMessage(err)))
		}
		path, err := exporter.Save(ctx, file)
		if err != nil {
			return errorMsg(fmt.Sprintf("Export failed: %v", err))
		}
		return noticeMsg(fmt.Sprintf("Saved %s", path))
	}
}

func (m *Model) copyExport() tea.Cmd {
	if !m.export || m.results == nil {
		return nil
	}
	results, write := m.results, m.clipboard
	return func() tea.Msg {
		file, err := scrapeview.Export(results)
		if err != nil {
			return errorMsg(fmt.Sprintf("Copy failed: %s", scrapeview.ErrorMessage(err)))
		}
		if err := write(string(file.Data)); err != nil {
			return errorMsg(fmt.Sprintf("Failed to copy to clipboard: %v", err))
		}
		return noticeMsg("Result copied to clipboard")
	}
}

// View renders the input, the status line, the units and a help line.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if line := m.styles.Status(m.status); line != "" {
		if m.status.State == scrapeview.StateInFlight {
			b.WriteString(m.spinner.View())
			b.WriteString(" ")
		}
		b.WriteString(line)
	}
	b.WriteString("\n")

	if len(m.units) > 0 {
		b.WriteString("\n")
		for i, u := range m.units {
			b.WriteString(m.styles.Unit(u, m.focus == focusUnits && i == m.cursor))
			b.WriteString("\n")
		}
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Tone(scrapeview.ToneSuccess).Render(m.notice))
		b.WriteString("\n")
	}
	if m.alert != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Tone(scrapeview.ToneError).Render(m.alert))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render(m.help()))
	return b.String()
}

func (m Model) help() string {
	parts := []string{"enter submit"}
	if len(m.units) > 0 {
		parts = append(parts, "tab sections")
	}
	if m.export {
		parts = append(parts, "ctrl+s export", "ctrl+y copy")
	}
	parts = append(parts, "esc quit")
	return strings.Join(parts, " • ")
}

// Status returns the status last received.
func (m Model) Status() scrapeview.Status {
	return m.status
}

// Units returns the units currently shown.
func (m Model) Units() []scrapeview.DisplayUnit {
	return m.units
}

// ControlsEnabled reports whether the input accepts a new submission.
func (m Model) ControlsEnabled() bool {
	return m.controls
}

// ExportEnabled reports whether export and copy are available.
func (m Model) ExportEnabled() bool {
	return m.export
}
