// Package trafilatura reads page metadata with go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/scrapeview"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements scrapeview.MetaExtractor at compile time.
var _ scrapeview.MetaExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura. It looks past the title tag to Open
// Graph, JSON-LD and Dublin Core data.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractMeta returns the title and description trafilatura finds.
func (e *Extractor) ExtractMeta(rawHTML string) (*scrapeview.Meta, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, scrapeview.Errorf(scrapeview.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &scrapeview.Meta{
		Title:       strings.TrimSpace(result.Metadata.Title),
		Description: strings.TrimSpace(result.Metadata.Description),
	}, nil
}
