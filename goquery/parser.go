// Package goquery extracts page metadata and content sections from HTML
// using CSS selectors.
package goquery

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scrapeview"
)

// SemanticSelector matches the elements treated as section candidates.
const SemanticSelector = "section, main, article, nav, header, footer"

// MinSectionText is the shortest text a semantic element needs to become
// a section.
const MinSectionText = 50

// Ensure Parser implements the extraction interfaces at compile time.
var (
	_ scrapeview.SectionParser = (*Parser)(nil)
	_ scrapeview.MetaExtractor = (*Parser)(nil)
)

// Parser splits HTML into sections and reads page metadata.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ExtractSections returns semantic sections in document order, followed
// by an image grid section when the page has one. Pages with neither fall
// back to one section per table row of class "athing".
func (p *Parser) ExtractSections(htmlContent string, baseURL string) ([]*scrapeview.PageSection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, scrapeview.Errorf(scrapeview.EINVALID, "failed to parse HTML: %v", err)
	}
	base, _ := url.Parse(baseURL)

	sections := semanticSections(doc, base, baseURL)
	if grid := imageGrid(doc, base, baseURL); grid != nil {
		sections = append(sections, grid)
	}
	if len(sections) == 0 {
		sections = tableRows(doc, base, baseURL)
	}
	return sections, nil
}

func semanticSections(doc *goquery.Document, base *url.URL, baseURL string) []*scrapeview.PageSection {
	sections := []*scrapeview.PageSection{}
	doc.Find(SemanticSelector).Each(func(_ int, node *goquery.Selection) {
		text := nodeText(node)
		if utf8.RuneCountInString(text) < MinSectionText || isPlaceholder(text) {
			return
		}

		content := scrapeview.NewSectionContent()
		content.Text = text
		node.Find("h1, h2, h3").Each(func(_ int, h *goquery.Selection) {
			content.Headings = append(content.Headings, cleanText(h.Text()))
		})
		content.Links = extractLinks(node, base)
		content.Images = extractImages(node, base)

		label := firstWords(text, 6)
		if len(content.Headings) > 0 {
			label = content.Headings[0]
		}

		tag := goquery.NodeName(node)
		raw, truncated := rawHTML(node)
		sections = append(sections, &scrapeview.PageSection{
			ID:        fmt.Sprintf("%s-%d", tag, len(sections)),
			Type:      sectionType(tag),
			Label:     label,
			SourceURL: baseURL,
			Content:   content,
			RawHTML:   raw,
			Truncated: truncated,
		})
	})
	return sections
}

func sectionType(tag string) string {
	switch tag {
	case "nav":
		return scrapeview.SectionTypeNav
	case "footer":
		return scrapeview.SectionTypeFooter
	default:
		return scrapeview.SectionTypeSection
	}
}

// imageGrid collects figure[itemprop=image] elements into a single grid
// section. Returns nil when no figure has a usable image.
func imageGrid(doc *goquery.Document, base *url.URL, baseURL string) *scrapeview.PageSection {
	figures := doc.Find(`figure[itemprop="image"]`)
	if figures.Length() == 0 {
		return nil
	}

	images := []scrapeview.Image{}
	figures.Each(func(_ int, fig *goquery.Selection) {
		img := fig.Find("img").First()
		if img.Length() == 0 {
			return
		}
		src := imageSource(img)
		if src == "" {
			return
		}

		title := fig.Find("a[title]").First().AttrOr("title", "")
		if name, ok := fig.Find(`meta[itemprop="name"]`).First().Attr("content"); ok {
			title = name
		}

		images = append(images, scrapeview.Image{
			Src: resolveURL(base, src),
			Alt: img.AttrOr("alt", title),
		})
	})
	if len(images) == 0 {
		return nil
	}

	content := scrapeview.NewSectionContent()
	content.Images = images
	raw, truncated := rawHTML(figures.First())
	return &scrapeview.PageSection{
		ID:        "grid-0",
		Type:      scrapeview.SectionTypeGrid,
		Label:     "Image results",
		SourceURL: baseURL,
		Content:   content,
		RawHTML:   raw,
		Truncated: truncated,
	}
}

// tableRows handles table-based listings such as news aggregators.
func tableRows(doc *goquery.Document, base *url.URL, baseURL string) []*scrapeview.PageSection {
	sections := []*scrapeview.PageSection{}
	doc.Find("tr.athing").Each(func(i int, row *goquery.Selection) {
		link := row.Find("a.storylink").First()
		if link.Length() == 0 {
			link = row.Find("a").First()
		}
		if link.Length() == 0 {
			return
		}

		title := cleanText(link.Text())
		href := resolveURL(base, link.AttrOr("href", ""))

		content := scrapeview.NewSectionContent()
		content.Headings = []string{title}
		content.Text = title
		content.Links = []scrapeview.Link{{Text: title, Href: href}}

		label := title
		if runes := []rune(title); len(runes) > 80 {
			label = string(runes[:80])
		}

		raw, truncated := rawHTML(row)
		sections = append(sections, &scrapeview.PageSection{
			ID:        fmt.Sprintf("item-%d", i),
			Type:      scrapeview.SectionTypeList,
			Label:     label,
			SourceURL: baseURL,
			Content:   content,
			RawHTML:   raw,
			Truncated: truncated,
		})
	})
	return sections
}

// ExtractMeta reads the title, meta description, html lang and canonical
// link. Missing values are left blank; canonical stays nil.
func (p *Parser) ExtractMeta(htmlContent string) (*scrapeview.Meta, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, scrapeview.Errorf(scrapeview.EINVALID, "failed to parse HTML: %v", err)
	}

	meta := &scrapeview.Meta{
		Title:       strings.TrimSpace(doc.Find("title").First().Text()),
		Description: strings.TrimSpace(doc.Find(`meta[name="description"]`).First().AttrOr("content", "")),
		Language:    strings.TrimSpace(doc.Find("html").First().AttrOr("lang", "")),
	}
	if href := strings.TrimSpace(doc.Find(`link[rel~="canonical"]`).First().AttrOr("href", "")); href != "" {
		meta.Canonical = &href
	}
	return meta, nil
}
