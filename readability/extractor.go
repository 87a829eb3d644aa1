// Package readability reads page metadata with go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/scrapeview"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements scrapeview.MetaExtractor at compile time.
var _ scrapeview.MetaExtractor = (*Extractor)(nil)

// Extractor wraps go-readability.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractMeta returns the article title and its excerpt as description.
func (e *Extractor) ExtractMeta(rawHTML string) (*scrapeview.Meta, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, scrapeview.Errorf(scrapeview.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &scrapeview.Meta{
		Title:       strings.TrimSpace(article.Title),
		Description: strings.TrimSpace(article.Excerpt),
	}, nil
}
