package mock

import "github.com/fwojciec/scrapeview"

var _ scrapeview.MetaExtractor = (*MetaExtractor)(nil)

// MetaExtractor is a mock implementation of scrapeview.MetaExtractor.
type MetaExtractor struct {
	ExtractMetaFn func(html string) (*scrapeview.Meta, error)
}

func (e *MetaExtractor) ExtractMeta(html string) (*scrapeview.Meta, error) {
	return e.ExtractMetaFn(html)
}

var _ scrapeview.SectionParser = (*SectionParser)(nil)

// SectionParser is a mock implementation of scrapeview.SectionParser.
type SectionParser struct {
	ExtractSectionsFn func(html string, baseURL string) ([]*scrapeview.PageSection, error)
}

func (p *SectionParser) ExtractSections(html string, baseURL string) ([]*scrapeview.PageSection, error) {
	return p.ExtractSectionsFn(html, baseURL)
}
