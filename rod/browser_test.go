//go:build integration

package rod_test

import (
	"testing"

	"github.com/fwojciec/scrapeview"
	"github.com/fwojciec/scrapeview/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openAndClose(t *testing.T, b *rod.Browser, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		page, err := b.OpenPage()
		require.NoError(t, err)
		require.NoError(t, page.Close())
	}
}

func TestBrowser_RelaunchesAfterMaxPages(t *testing.T) {
	t.Parallel()

	b, err := rod.LaunchBrowser(rod.WithMaxPages(3))
	require.NoError(t, err)
	defer b.Close()

	first := b.Current()
	require.NotNil(t, first)

	openAndClose(t, b, 3)
	assert.Same(t, first, b.Current())

	openAndClose(t, b, 1)
	assert.NotSame(t, first, b.Current())
}

func TestBrowser_KeepsInstanceBelowMaxPages(t *testing.T) {
	t.Parallel()

	b, err := rod.LaunchBrowser(rod.WithMaxPages(5))
	require.NoError(t, err)
	defer b.Close()

	first := b.Current()
	openAndClose(t, b, 2)

	assert.Same(t, first, b.Current())
}

func TestBrowser_OpenPageAfterClose(t *testing.T) {
	t.Parallel()

	b, err := rod.LaunchBrowser()
	require.NoError(t, err)
	require.NoError(t, b.Close())

	_, err = b.OpenPage()

	require.Error(t, err)
	assert.Equal(t, scrapeview.EINVALID, scrapeview.ErrorCode(err))
	assert.Zero(t, b.LauncherPID())
}
