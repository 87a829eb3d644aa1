package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/scrapeview"
	"github.com/fwojciec/scrapeview/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const longText = "This paragraph carries well over fifty characters of readable text."

func TestParser_ExtractSections(t *testing.T) {
	t.Parallel()

	t.Run("extracts semantic sections in document order", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<nav><a href="/home">Home</a> <a href="https://other.com/x">Other</a> navigation links with plenty of extra words</nav>
<main>
	<h1>Welcome</h1>
	<p>` + longText + `</p>
	<img src="/img/a.png" alt="A">
	<img srcset="/img/b-200.png 200w, /img/b-400.png 400w">
	<img data-src="img/c.png">
	<img alt="no source">
</main>
<footer><p>` + longText + `</p></footer>
</body>
</html>`

		sections, err := goquery.NewParser().ExtractSections(html, "https://example.com/page")

		require.NoError(t, err)
		require.Len(t, sections, 3)

		nav := sections[0]
		assert.Equal(t, "nav-0", nav.ID)
		assert.Equal(t, scrapeview.SectionTypeNav, nav.Type)
		assert.Equal(t, "Home Other navigation links with plenty", nav.Label)
		assert.Equal(t, "https://example.com/page", nav.SourceURL)
		assert.Equal(t, []scrapeview.Link{
			{Text: "Home", Href: "https://example.com/home"},
			{Text: "Other", Href: "https://other.com/x"},
		}, nav.Content.Links)

		main := sections[1]
		assert.Equal(t, "main-1", main.ID)
		assert.Equal(t, scrapeview.SectionTypeSection, main.Type)
		assert.Equal(t, "Welcome", main.Label)
		assert.Equal(t, []string{"Welcome"}, main.Content.Headings)
		assert.Equal(t, "Welcome "+longText, main.Content.Text)
		assert.Equal(t, []scrapeview.Image{
			{Src: "https://example.com/img/a.png", Alt: "A"},
			{Src: "https://example.com/img/b-200.png", Alt: ""},
			{Src: "https://example.com/img/c.png", Alt: ""},
		}, main.Content.Images)
		assert.Empty(t, main.Content.Lists)
		assert.NotNil(t, main.Content.Lists)
		assert.NotNil(t, main.Content.Tables)
		assert.True(t, strings.HasPrefix(main.RawHTML, "<main>"))
		assert.False(t, main.Truncated)

		assert.Equal(t, "footer-2", sections[2].ID)
		assert.Equal(t, scrapeview.SectionTypeFooter, sections[2].Type)
	})

	t.Run("skips short and placeholder text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<header>Short header</header>
<section>` + strings.Repeat("- ", 40) + `ok</section>
<article><p>` + longText + `</p></article>
</body></html>`

		sections, err := goquery.NewParser().ExtractSections(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, sections, 1)
		assert.Equal(t, "article-0", sections[0].ID)
	})

	t.Run("ignores script text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><section><script>var a = "` + longText + `";</script>tiny</section></body></html>`

		sections, err := goquery.NewParser().ExtractSections(html, "https://example.com")

		require.NoError(t, err)
		assert.Empty(t, sections)
	})

	t.Run("truncates raw html", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><p>` + strings.Repeat("word ", 600) + `</p></article></body></html>`

		sections, err := goquery.NewParser().ExtractSections(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, sections, 1)
		assert.True(t, sections[0].Truncated)
		assert.Len(t, []rune(sections[0].RawHTML), goquery.MaxRawHTML)
	})

	t.Run("adds an image grid section", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<figure itemprop="image"><a title="Mountain" href="/p/1"><img src="/p/1.jpg"></a></figure>
<figure itemprop="image"><meta itemprop="name" content="Lake"><img srcset="/p/2.jpg 1x" alt="A lake"></figure>
<figure itemprop="image"><meta itemprop="name" content="Forest"><img data-src="/p/3.jpg"></figure>
<figure itemprop="image"><span>no image</span></figure>
</body></html>`

		sections, err := goquery.NewParser().ExtractSections(html, "https://photos.example.com/s")

		require.NoError(t, err)
		require.Len(t, sections, 1)
		grid := sections[0]
		assert.Equal(t, "grid-0", grid.ID)
		assert.Equal(t, scrapeview.SectionTypeGrid, grid.Type)
		assert.Equal(t, "Image results", grid.Label)
		assert.Equal(t, []scrapeview.Image{
			{Src: "https://photos.example.com/p/1.jpg", Alt: "Mountain"},
			{Src: "https://photos.example.com/p/2.jpg", Alt: "A lake"},
			{Src: "https://photos.example.com/p/3.jpg", Alt: "Forest"},
		}, grid.Content.Images)
		assert.True(t, strings.HasPrefix(grid.RawHTML, "<figure"))
	})

	t.Run("falls back to table rows", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><table>
<tr class="athing"><td><a href="item?id=1">First story</a></td></tr>
<tr><td>meta row</td></tr>
<tr class="athing"><td><span class="titleline"><a href="https://news.example.org/2">Second story</a></span></td></tr>
</table></body></html>`

		sections, err := goquery.NewParser().ExtractSections(html, "https://news.example.com/")

		require.NoError(t, err)
		require.Len(t, sections, 2)
		assert.Equal(t, "item-0", sections[0].ID)
		assert.Equal(t, scrapeview.SectionTypeList, sections[0].Type)
		assert.Equal(t, "First story", sections[0].Label)
		assert.Equal(t, []scrapeview.Link{{Text: "First story", Href: "https://news.example.com/item?id=1"}}, sections[0].Content.Links)
		assert.Equal(t, "item-1", sections[1].ID)
		assert.Equal(t, "https://news.example.org/2", sections[1].Content.Links[0].Href)
	})

	t.Run("returns empty slice for empty document", func(t *testing.T) {
		t.Parallel()

		sections, err := goquery.NewParser().ExtractSections("", "https://example.com")

		require.NoError(t, err)
		assert.Empty(t, sections)
	})
}

func TestParser_ExtractMeta(t *testing.T) {
	t.Parallel()

	t.Run("reads all fields", func(t *testing.T) {
		t.Parallel()

		html := `<html lang="en"><head>
<title>  Example Page </title>
<meta name="description" content=" An example. ">
<link rel="canonical" href="https://example.com/canonical">
</head><body></body></html>`

		meta, err := goquery.NewParser().ExtractMeta(html)

		require.NoError(t, err)
		assert.Equal(t, "Example Page", meta.Title)
		assert.Equal(t, "An example.", meta.Description)
		assert.Equal(t, "en", meta.Language)
		require.NotNil(t, meta.Canonical)
		assert.Equal(t, "https://example.com/canonical", *meta.Canonical)
	})

	t.Run("leaves missing fields blank", func(t *testing.T) {
		t.Parallel()

		meta, err := goquery.NewParser().ExtractMeta(`<html><body>nothing</body></html>`)

		require.NoError(t, err)
		assert.Empty(t, meta.Title)
		assert.Empty(t, meta.Description)
		assert.Empty(t, meta.Language)
		assert.Nil(t, meta.Canonical)
	})
}
