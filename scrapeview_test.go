package scrapeview_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/scrapeview"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := scrapeview.Errorf(scrapeview.ETRANSPORT, "HTTP %d from %s", 502, "/scrape")

	assert.Equal(t, scrapeview.ETRANSPORT, scrapeview.ErrorCode(err))
	assert.Equal(t, "HTTP 502 from /scrape", scrapeview.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, scrapeview.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, scrapeview.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("scrape: %w", scrapeview.Errorf(scrapeview.EINVALID, "url required"))

	assert.Equal(t, scrapeview.EINVALID, scrapeview.ErrorCode(err))
	assert.Equal(t, "url required", scrapeview.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, scrapeview.EINTERNAL, scrapeview.ErrorCode(err))
	assert.Equal(t, "Internal error.", scrapeview.ErrorMessage(err))
}
