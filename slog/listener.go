package slog

import (
	"log/slog"

	"github.com/fwojciec/scrapeview"
)

// Ensure LoggingListener implements scrapeview.Listener.
var _ scrapeview.Listener = (*LoggingListener)(nil)

// LoggingListener wraps a Listener and logs every signal it receives.
type LoggingListener struct {
	next   scrapeview.Listener
	logger *slog.Logger
}

// NewLoggingListener creates a new LoggingListener.
func NewLoggingListener(next scrapeview.Listener, logger *slog.Logger) *LoggingListener {
	return &LoggingListener{next: next, logger: logger}
}

func (l *LoggingListener) StatusChanged(status scrapeview.Status) {
	attrs := []any{"state", status.State.String()}
	if status.Reason != scrapeview.ReasonNone {
		attrs = append(attrs, "reason", string(status.Reason))
	}
	if status.State == scrapeview.StateSucceeded {
		attrs = append(attrs, "sections", status.Sections)
	}
	l.logger.Debug("status", attrs...)
	l.next.StatusChanged(status)
}

func (l *LoggingListener) ControlsEnabled(enabled bool) {
	l.logger.Debug("controls", "enabled", enabled)
	l.next.ControlsEnabled(enabled)
}

func (l *LoggingListener) ExportEnabled(enabled bool) {
	l.logger.Debug("export", "enabled", enabled)
	l.next.ExportEnabled(enabled)
}
