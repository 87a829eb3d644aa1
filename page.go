package scrapeview

import (
	"context"
	"time"
)

// Scrape error phases.
const (
	PhaseFetch  = "fetch"
	PhaseRender = "render"
	PhaseParse  = "parse"
)

// Section types produced by the extraction service.
const (
	SectionTypeSection = "section"
	SectionTypeNav     = "nav"
	SectionTypeFooter  = "footer"
	SectionTypeGrid    = "grid"
	SectionTypeList    = "list"
)

// PageResult is what the extraction service returns under "result".
// Every field is always present.
type PageResult struct {
	URL          string         `json:"url"`
	ScrapedAt    string         `json:"scrapedAt"`
	Meta         Meta           `json:"meta"`
	Sections     []*PageSection `json:"sections"`
	Interactions Interactions   `json:"interactions"`
	Errors       []PageError    `json:"errors"`
}

// FormatScrapedAt formats a scrape timestamp as UTC ISO 8601 with a Z suffix.
func FormatScrapedAt(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000Z")
}

// PageSection is one extracted region of a page.
type PageSection struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Label     string         `json:"label"`
	SourceURL string         `json:"sourceUrl"`
	Content   SectionContent `json:"content"`
	RawHTML   string         `json:"rawHtml"`
	Truncated bool           `json:"truncated"`
}

// SectionContent is the structured content of a section. Lists and tables
// are reserved and always empty.
type SectionContent struct {
	Headings []string `json:"headings"`
	Text     string   `json:"text"`
	Links    []Link   `json:"links"`
	Images   []Image  `json:"images"`
	Lists    []any    `json:"lists"`
	Tables   []any    `json:"tables"`
}

// NewSectionContent returns content with every slice non-nil so that it
// serializes as empty arrays.
func NewSectionContent() SectionContent {
	return SectionContent{
		Headings: []string{},
		Links:    []Link{},
		Images:   []Image{},
		Lists:    []any{},
		Tables:   []any{},
	}
}

// Link is an anchor found in a section.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Image is an image found in a section.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Interactions records what the renderer did to the page.
type Interactions struct {
	Clicks  []string `json:"clicks"`
	Scrolls int      `json:"scrolls"`
	Pages   []string `json:"pages"`
}

// AddPage records a visited page once.
func (in *Interactions) AddPage(url string) {
	for _, p := range in.Pages {
		if p == url {
			return
		}
	}
	in.Pages = append(in.Pages, url)
}

// PageError records a failure in one scrape phase.
type PageError struct {
	Message string `json:"message"`
	Phase   string `json:"phase"`
}

// PageScraper produces a PageResult for a URL. It never fails outright:
// problems are recorded in PageResult.Errors.
type PageScraper interface {
	ScrapePage(ctx context.Context, url string) *PageResult
}

// PageCache stores recent page results.
type PageCache interface {
	// FindPage returns a cached result for the URL.
	// Returns ENOTFOUND on a miss or an expired entry.
	FindPage(ctx context.Context, url string) (*PageResult, error)

	// SavePage stores the result under its URL.
	SavePage(ctx context.Context, result *PageResult) error
}
