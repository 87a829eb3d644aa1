// Package lipgloss renders scrape status and sections for terminals.
package lipgloss

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/scrapeview"
)

// Unit markers.
const (
	CollapsedMarker = "▸ "
	ExpandedMarker  = "▾ "
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"}
	colorOrange = lipgloss.AdaptiveColor{Light: "#c2410c", Dark: "#ff8700"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
)

// Styles is a set of styles bound to one renderer.
type Styles struct {
	Header   lipgloss.Style
	Selected lipgloss.Style
	Body     lipgloss.Style
	Subtle   lipgloss.Style

	tones map[scrapeview.Tone]lipgloss.Style
}

// NewStyles builds styles for r. A nil renderer uses the default one.
func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{
		Header: r.NewStyle().Bold(true).Foreground(colorCyan),
		Selected: r.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"}),
		Body:   r.NewStyle(),
		Subtle: r.NewStyle().Foreground(colorGray),
		tones: map[scrapeview.Tone]lipgloss.Style{
			scrapeview.ToneNeutral:  r.NewStyle(),
			scrapeview.ToneInvalid:  r.NewStyle().Foreground(colorOrange),
			scrapeview.ToneProgress: r.NewStyle().Foreground(colorGray).Italic(true),
			scrapeview.ToneSuccess:  r.NewStyle().Foreground(colorGreen),
			scrapeview.ToneWarning:  r.NewStyle().Foreground(colorYellow),
			scrapeview.ToneError:    r.NewStyle().Foreground(colorRed).Bold(true),
		},
	}
}

// Tone returns the style for a status tone.
func (s Styles) Tone(t scrapeview.Tone) lipgloss.Style {
	if style, ok := s.tones[t]; ok {
		return style
	}
	return s.Body
}

// Status renders the status message in its tone. Idle renders as "".
func (s Styles) Status(status scrapeview.Status) string {
	msg := status.Message()
	if msg == "" {
		return ""
	}
	return s.Tone(status.Tone()).Render(msg)
}

// Unit renders a display unit: the marker and header, followed by the
// indented body when the unit is expanded.
func (s Styles) Unit(u scrapeview.DisplayUnit, selected bool) string {
	marker := CollapsedMarker
	if u.Expanded {
		marker = ExpandedMarker
	}

	header := s.Header.Render(u.Header)
	if selected {
		header = s.Selected.Render(u.Header)
	}

	var b strings.Builder
	b.WriteString(marker)
	b.WriteString(header)
	if u.Expanded {
		for _, line := range strings.Split(u.Body, "\n") {
			b.WriteString("\n  ")
			b.WriteString(s.Body.Render(line))
		}
	}
	return b.String()
}
