package lipgloss

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/scrapeview"
)

// Ensure Presenter implements scrapeview.Presenter at compile time.
var _ scrapeview.Presenter = (*Presenter)(nil)

// Presenter prints display units to a writer. Output cannot be taken back,
// so Clear only forgets the units held for the next Render.
type Presenter struct {
	mu     sync.Mutex
	w      io.Writer
	styles Styles
	expand bool
	units  []scrapeview.DisplayUnit
}

// PresenterOption configures a Presenter.
type PresenterOption func(*Presenter)

// WithExpanded prints every unit expanded instead of collapsed.
func WithExpanded(expand bool) PresenterOption {
	return func(p *Presenter) {
		p.expand = expand
	}
}

// NewPresenter creates a Presenter writing to w with styles detected for w.
func NewPresenter(w io.Writer, opts ...PresenterOption) *Presenter {
	p := &Presenter{
		w:      w,
		styles: NewStyles(lipgloss.NewRenderer(w)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Clear drops the current units.
func (p *Presenter) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.units = nil
}

// Render prints one unit per section in order.
func (p *Presenter) Render(sections []scrapeview.Section) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.units = scrapeview.DisplayUnits(sections)
	for i := range p.units {
		p.units[i].Expanded = p.expand
		fmt.Fprintln(p.w, p.styles.Unit(p.units[i], false))
	}
}

// Units returns a copy of the units last rendered.
func (p *Presenter) Units() []scrapeview.DisplayUnit {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]scrapeview.DisplayUnit(nil), p.units...)
}
