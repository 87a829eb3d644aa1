package scrape

import (
	"strings"

	"github.com/fwojciec/scrapeview"
)

// MinStaticSections is the section count below which a static page is
// assumed to be only partially loaded.
const MinStaticSections = 3

// infiniteScrollMarkers hint that content loads as the user scrolls.
var infiniteScrollMarkers = []string{
	"infinite-scroll",
	"pagination__next",
	"load more",
	"data-infinite-scroll",
}

// NeedsJSRendering reports whether statically fetched content looks
// incomplete: no sections, infinite scroll markers in the HTML, or fewer
// than MinStaticSections sections.
func NeedsJSRendering(sections []*scrapeview.PageSection, html string) bool {
	if len(sections) == 0 {
		return true
	}

	if html != "" {
		lower := strings.ToLower(html)
		for _, marker := range infiniteScrollMarkers {
			if strings.Contains(lower, marker) {
				return true
			}
		}
	}

	return len(sections) < MinStaticSections
}
