package mock

import "github.com/fwojciec/scrapeview"

var _ scrapeview.Presenter = (*Presenter)(nil)

// Presenter is a mock implementation of scrapeview.Presenter.
type Presenter struct {
	ClearFn  func()
	RenderFn func(sections []scrapeview.Section)
}

func (p *Presenter) Clear() {
	p.ClearFn()
}

func (p *Presenter) Render(sections []scrapeview.Section) {
	p.RenderFn(sections)
}

var _ scrapeview.Listener = (*Listener)(nil)

// Listener is a mock implementation of scrapeview.Listener.
type Listener struct {
	StatusChangedFn   func(status scrapeview.Status)
	ControlsEnabledFn func(enabled bool)
	ExportEnabledFn   func(enabled bool)
}

func (l *Listener) StatusChanged(status scrapeview.Status) {
	l.StatusChangedFn(status)
}

func (l *Listener) ControlsEnabled(enabled bool) {
	l.ControlsEnabledFn(enabled)
}

func (l *Listener) ExportEnabled(enabled bool) {
	l.ExportEnabledFn(enabled)
}
