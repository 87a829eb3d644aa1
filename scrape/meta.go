package scrape

import "github.com/fwojciec/scrapeview"

var _ scrapeview.MetaExtractor = MetaChain(nil)

// MetaChain runs extractors in order, each filling only the fields the
// earlier ones left blank. It stops once the metadata is complete.
type MetaChain []scrapeview.MetaExtractor

// ExtractMeta returns the merged metadata. Failing extractors are skipped;
// an error is returned only when every extractor fails.
func (c MetaChain) ExtractMeta(html string) (*scrapeview.Meta, error) {
	meta := &scrapeview.Meta{}
	var firstErr error
	succeeded := false

	for _, e := range c {
		if meta.Complete() {
			break
		}
		m, err := e.ExtractMeta(html)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		succeeded = true
		meta.Merge(m)
	}

	if !succeeded && firstErr != nil {
		return nil, firstErr
	}
	return meta, nil
}
