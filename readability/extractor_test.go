package readability_test

import (
	"testing"

	"github.com/fwojciec/scrapeview"
	"github.com/fwojciec/scrapeview/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	_, err := ext.ExtractMeta("")

	require.Error(t, err)
	assert.Equal(t, scrapeview.EINVALID, scrapeview.ErrorCode(err))
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Page Title</title></head>
<body><article><p>Content</p></article></body>
</html>`

	ext := readability.NewExtractor()
	meta, err := ext.ExtractMeta(html)

	require.NoError(t, err)
	assert.Equal(t, "Page Title", meta.Title)
}

func TestExtractor_UsesExcerptAsDescription(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head>
<title>Test</title>
<meta name="description" content="A short summary of the article.">
</head>
<body>
<article><p>This is the main article content that should be preserved in the output.</p></article>
</body>
</html>`

	ext := readability.NewExtractor()
	meta, err := ext.ExtractMeta(html)

	require.NoError(t, err)
	assert.Equal(t, "A short summary of the article.", meta.Description)
	assert.Empty(t, meta.Language)
}
