// Package bubbletea provides an interactive terminal UI for submitting URLs
// and browsing the returned sections.
package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/scrapeview"
)

type (
	clearMsg    struct{}
	renderMsg   struct{ units []scrapeview.DisplayUnit }
	statusMsg   scrapeview.Status
	controlsMsg bool
	exportMsg   bool
	noticeMsg   string
	errorMsg    string
)

// Ensure Bridge implements the controller-facing interfaces.
var (
	_ scrapeview.Presenter = (*Bridge)(nil)
	_ scrapeview.Listener  = (*Bridge)(nil)
)

// Bridge forwards controller callbacks into a running program as messages.
// Send is usually (*tea.Program).Send and must be set before the first
// request is submitted.
type Bridge struct {
	Send func(tea.Msg)
}

func (b *Bridge) Clear() {
	b.Send(clearMsg{})
}

func (b *Bridge) Render(sections []scrapeview.Section) {
	b.Send(renderMsg{units: scrapeview.DisplayUnits(sections)})
}

func (b *Bridge) StatusChanged(status scrapeview.Status) {
	b.Send(statusMsg(status))
}

func (b *Bridge) ControlsEnabled(enabled bool) {
	b.Send(controlsMsg(enabled))
}

func (b *Bridge) ExportEnabled(enabled bool) {
	b.Send(exportMsg(enabled))
}
