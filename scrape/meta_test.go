package scrape_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/scrapeview"
	"github.com/fwojciec/scrapeview/mock"
	"github.com/fwojciec/scrapeview/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metaExtractor(meta *scrapeview.Meta, err error) *mock.MetaExtractor {
	return &mock.MetaExtractor{
		ExtractMetaFn: func(html string) (*scrapeview.Meta, error) {
			return meta, err
		},
	}
}

func TestMetaChain(t *testing.T) {
	t.Parallel()

	t.Run("fills blanks from later extractors", func(t *testing.T) {
		t.Parallel()

		canonical := "https://example.com/c"
		chain := scrape.MetaChain{
			metaExtractor(&scrapeview.Meta{Title: "Primary", Canonical: &canonical}, nil),
			metaExtractor(&scrapeview.Meta{Title: "Fallback", Description: "From fallback"}, nil),
			metaExtractor(&scrapeview.Meta{Description: "Too late", Language: "en"}, nil),
		}

		meta, err := chain.ExtractMeta("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, "Primary", meta.Title)
		assert.Equal(t, "From fallback", meta.Description)
		assert.Equal(t, "en", meta.Language)
		assert.Equal(t, &canonical, meta.Canonical)
	})

	t.Run("stops once complete", func(t *testing.T) {
		t.Parallel()

		chain := scrape.MetaChain{
			metaExtractor(&scrapeview.Meta{Title: "T", Description: "D", Language: "en"}, nil),
			&mock.MetaExtractor{
				ExtractMetaFn: func(html string) (*scrapeview.Meta, error) {
					t.Fatal("unexpected call")
					return nil, nil
				},
			},
		}

		_, err := chain.ExtractMeta("<html></html>")

		require.NoError(t, err)
	})

	t.Run("skips failing extractors", func(t *testing.T) {
		t.Parallel()

		chain := scrape.MetaChain{
			metaExtractor(nil, errors.New("boom")),
			metaExtractor(&scrapeview.Meta{Title: "Recovered"}, nil),
		}

		meta, err := chain.ExtractMeta("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, "Recovered", meta.Title)
	})

	t.Run("returns first error when all fail", func(t *testing.T) {
		t.Parallel()

		chain := scrape.MetaChain{
			metaExtractor(nil, errors.New("first")),
			metaExtractor(nil, errors.New("second")),
		}

		_, err := chain.ExtractMeta("<html></html>")

		assert.EqualError(t, err, "first")
	})
}
