package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/scrapeview"
	"github.com/fwojciec/scrapeview/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ExtractMeta(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and description from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Getting Started - My Docs</title>
<meta property="og:title" content="Getting Started Guide">
<meta name="description" content="Learn how to install and run the project.">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Getting Started</h1>
<p>This is the main content of the documentation page. It explains how to install the tool and run it for the first time.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		meta, err := ext.ExtractMeta(html)

		require.NoError(t, err)
		assert.NotEmpty(t, meta.Title)
		assert.Contains(t, meta.Description, "install and run")
		assert.Nil(t, meta.Canonical)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().ExtractMeta("  ")

		require.Error(t, err)
		assert.Equal(t, scrapeview.EINVALID, scrapeview.ErrorCode(err))
	})
}
