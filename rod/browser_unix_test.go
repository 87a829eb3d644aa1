//go:build integration && !windows

package rod_test

import (
	"syscall"
	"testing"
	"time"

	"github.com/fwojciec/scrapeview/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowser_Close_KillsLauncherProcess(t *testing.T) {
	t.Parallel()

	b, err := rod.LaunchBrowser()
	require.NoError(t, err)

	pid := b.LauncherPID()
	require.NotZero(t, pid, "launcher PID should be set")

	// On Unix, signal 0 only checks that the process exists.
	require.NoError(t, syscall.Kill(pid, syscall.Signal(0)))

	require.NoError(t, b.Close())
	assert.True(t, b.Closed())

	time.Sleep(100 * time.Millisecond)

	assert.Error(t, syscall.Kill(pid, syscall.Signal(0)), "launcher process should be terminated after Close()")
}
