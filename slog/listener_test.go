package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/scrapeview"
	"github.com/fwojciec/scrapeview/mock"
	scslog "github.com/fwojciec/scrapeview/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingListener(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var statuses []scrapeview.Status
	var controls, export []bool
	inner := &mock.Listener{
		StatusChangedFn:   func(s scrapeview.Status) { statuses = append(statuses, s) },
		ControlsEnabledFn: func(e bool) { controls = append(controls, e) },
		ExportEnabledFn:   func(e bool) { export = append(export, e) },
	}

	l := scslog.NewLoggingListener(inner, logger)
	l.StatusChanged(scrapeview.Status{State: scrapeview.StateFailed, Reason: scrapeview.ReasonEmptyURL})
	l.StatusChanged(scrapeview.Status{State: scrapeview.StateSucceeded, Sections: 4})
	l.ControlsEnabled(false)
	l.ExportEnabled(true)

	assert.Len(t, statuses, 2)
	assert.Equal(t, []bool{false}, controls)
	assert.Equal(t, []bool{true}, export)

	output := buf.String()
	assert.Contains(t, output, "state=failed reason=empty-url")
	assert.Contains(t, output, "state=succeeded sections=4")
	assert.Contains(t, output, "msg=controls enabled=false")
	assert.Contains(t, output, "msg=export enabled=true")
}
