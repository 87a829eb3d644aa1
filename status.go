package scrapeview

import "strings"

// State is the lifecycle stage of the current request.
type State int

// Request states. StateValidating is passed through within a single
// Transition and is never reported to listeners.
const (
	StateIdle State = iota
	StateValidating
	StateInFlight
	StateSucceeded
	StateSucceededEmpty
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateInFlight:
		return "in-flight"
	case StateSucceeded:
		return "succeeded"
	case StateSucceededEmpty:
		return "succeeded-empty"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Reason explains a StateFailed status.
type Reason string

// Failure reasons.
const (
	ReasonNone      Reason = ""
	ReasonEmptyURL  Reason = "empty-url"
	ReasonTransport Reason = "transport"
)

// Status is the tagged request status shown to the user.
type Status struct {
	State    State
	Reason   Reason
	Sections int
}

// Tone is the visual category of a status.
type Tone int

// Status tones. Each maps to a distinct color in the UIs.
const (
	ToneNeutral Tone = iota
	ToneInvalid
	ToneProgress
	ToneSuccess
	ToneWarning
	ToneError
)

// Tone returns the visual category of the status.
func (s Status) Tone() Tone {
	switch s.State {
	case StateInFlight, StateValidating:
		return ToneProgress
	case StateSucceeded:
		return ToneSuccess
	case StateSucceededEmpty:
		return ToneWarning
	case StateFailed:
		if s.Reason == ReasonEmptyURL {
			return ToneInvalid
		}
		return ToneError
	default:
		return ToneNeutral
	}
}

// Message returns the user-facing status text. An empty sections array
// reports StateSucceededEmpty, so it reads as no content rather than as a
// success with nothing to download.
func (s Status) Message() string {
	switch s.State {
	case StateInFlight, StateValidating:
		return "Extracting data..."
	case StateSucceeded:
		return "Success! Download result for detailed view"
	case StateSucceededEmpty:
		return "No content sections found."
	case StateFailed:
		if s.Reason == ReasonEmptyURL {
			return "Please enter a valid URL"
		}
		return "Error: Could not scrape this URL."
	default:
		return ""
	}
}

// ControlsEnabled reports whether submission controls accept input.
func (s Status) ControlsEnabled() bool {
	return s.State != StateInFlight && s.State != StateValidating
}

// EventKind identifies a lifecycle event.
type EventKind int

// Lifecycle events.
const (
	EventSubmit EventKind = iota
	EventSucceeded
	EventFailed
)

// Event drives Transition. URL is used by EventSubmit, Sections by
// EventSucceeded.
type Event struct {
	Kind     EventKind
	URL      string
	Sections int
}

// Transition returns the status that follows s on e, and whether e was
// accepted. Rejected events leave the status unchanged: submits while a
// request is in flight, and settlements when nothing is in flight.
func Transition(s Status, e Event) (Status, bool) {
	switch e.Kind {
	case EventSubmit:
		if !s.ControlsEnabled() {
			return s, false
		}
		if strings.TrimSpace(e.URL) == "" {
			return Status{State: StateFailed, Reason: ReasonEmptyURL}, true
		}
		return Status{State: StateInFlight}, true
	case EventSucceeded:
		if s.State != StateInFlight {
			return s, false
		}
		if e.Sections == 0 {
			return Status{State: StateSucceededEmpty}, true
		}
		return Status{State: StateSucceeded, Sections: e.Sections}, true
	case EventFailed:
		if s.State != StateInFlight {
			return s, false
		}
		return Status{State: StateFailed, Reason: ReasonTransport}, true
	}
	return s, false
}
