package goquery

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scrapeview"
	"golang.org/x/net/html"
)

// MaxRawHTML is the number of characters of a section's outer HTML kept in
// PageSection.RawHTML.
const MaxRawHTML = 2000

// resolveURL resolves href against base. Returns href unchanged when
// either side cannot be parsed, and "" for an empty href.
func resolveURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// imageSource picks the best URL for an img: src, then the first srcset
// candidate, then data-src.
func imageSource(img *goquery.Selection) string {
	if src := strings.TrimSpace(img.AttrOr("src", "")); src != "" {
		return src
	}
	if srcset := strings.TrimSpace(img.AttrOr("srcset", "")); srcset != "" {
		first := strings.TrimSpace(strings.Split(srcset, ",")[0])
		if fields := strings.Fields(first); len(fields) > 0 {
			return fields[0]
		}
	}
	return strings.TrimSpace(img.AttrOr("data-src", ""))
}

// cleanText collapses runs of whitespace into single spaces.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// nodeText joins the non-blank text nodes under sel with single spaces.
// Script and style contents are skipped.
func nodeText(sel *goquery.Selection) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "noscript", "template":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return cleanText(strings.Join(parts, " "))
}

// isPlaceholder reports whether text is too short once dashes are removed.
func isPlaceholder(text string) bool {
	stripped := strings.NewReplacer("–", "", "-", "").Replace(text)
	return utf8.RuneCountInString(strings.TrimSpace(stripped)) < 10
}

// truncateHTML keeps at most MaxRawHTML characters.
func truncateHTML(s string) (string, bool) {
	if utf8.RuneCountInString(s) <= MaxRawHTML {
		return s, false
	}
	runes := []rune(s)
	return string(runes[:MaxRawHTML]), true
}

// rawHTML returns the outer HTML of sel, truncated.
func rawHTML(sel *goquery.Selection) (string, bool) {
	raw, err := goquery.OuterHtml(sel)
	if err != nil {
		return "", false
	}
	return truncateHTML(raw)
}

// firstWords returns up to n words of text.
func firstWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

// extractLinks returns every anchor with an href under sel.
func extractLinks(sel *goquery.Selection, base *url.URL) []scrapeview.Link {
	links := []scrapeview.Link{}
	sel.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		links = append(links, scrapeview.Link{
			Text: cleanText(a.Text()),
			Href: resolveURL(base, href),
		})
	})
	return links
}

// extractImages returns every img under sel that has a usable source.
func extractImages(sel *goquery.Selection, base *url.URL) []scrapeview.Image {
	images := []scrapeview.Image{}
	sel.Find("img").Each(func(_ int, img *goquery.Selection) {
		src := imageSource(img)
		if src == "" {
			return
		}
		images = append(images, scrapeview.Image{
			Src: resolveURL(base, src),
			Alt: img.AttrOr("alt", ""),
		})
	})
	return images
}
