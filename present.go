package scrapeview

// DisplayUnit is a collapsible rendering of one section.
type DisplayUnit struct {
	// Header is the section label, id, or UntitledSection.
	Header string

	// Body is the entire section pretty-printed, including the field the
	// header was taken from.
	Body string

	// Expanded is false for freshly built units.
	Expanded bool
}

// DisplayUnits builds one collapsed unit per section, preserving order.
// An empty slice yields no units.
func DisplayUnits(sections []Section) []DisplayUnit {
	units := make([]DisplayUnit, 0, len(sections))
	for _, s := range sections {
		body, err := s.Pretty()
		if err != nil {
			body = string(s)
		}
		units = append(units, DisplayUnit{
			Header: s.Header(),
			Body:   body,
		})
	}
	return units
}

// Presenter displays sections. Render replaces whatever was shown before.
type Presenter interface {
	// Clear removes the rendered output.
	Clear()

	// Render shows exactly the given sections in the given order.
	Render(sections []Section)
}

// Listener observes UI-facing signals of the request controller.
type Listener interface {
	// StatusChanged is called after every accepted transition.
	StatusChanged(status Status)

	// ControlsEnabled toggles the URL input and submit action.
	// It is called with true exactly once per settled request.
	ControlsEnabled(enabled bool)

	// ExportEnabled toggles the export action.
	ExportEnabled(enabled bool)
}
