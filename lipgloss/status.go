package lipgloss

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/scrapeview"
)

// Ensure StatusPrinter implements scrapeview.Listener at compile time.
var _ scrapeview.Listener = (*StatusPrinter)(nil)

// StatusPrinter prints each status message on its own line and remembers
// the control signals for callers that act on them afterwards.
type StatusPrinter struct {
	mu       sync.Mutex
	w        io.Writer
	styles   Styles
	status   scrapeview.Status
	controls bool
	export   bool
}

// NewStatusPrinter creates a StatusPrinter writing to w.
func NewStatusPrinter(w io.Writer) *StatusPrinter {
	return &StatusPrinter{
		w:        w,
		styles:   NewStyles(lipgloss.NewRenderer(w)),
		controls: true,
	}
}

func (p *StatusPrinter) StatusChanged(status scrapeview.Status) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.status = status
	if line := p.styles.Status(status); line != "" {
		fmt.Fprintln(p.w, line)
	}
}

func (p *StatusPrinter) ControlsEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.controls = enabled
}

func (p *StatusPrinter) ExportEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.export = enabled
}

// Status returns the last status printed.
func (p *StatusPrinter) Status() scrapeview.Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// CanExport reports the last export signal.
func (p *StatusPrinter) CanExport() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.export
}

// CanSubmit reports the last controls signal.
func (p *StatusPrinter) CanSubmit() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.controls
}
