package scrapeview

// Meta holds page-level metadata.
type Meta struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Language    string  `json:"language"`
	Canonical   *string `json:"canonical"`
}

// Complete reports whether every text field is filled.
func (m *Meta) Complete() bool {
	return m.Title != "" && m.Description != "" && m.Language != ""
}

// Merge fills blank fields of m from other.
func (m *Meta) Merge(other *Meta) {
	if other == nil {
		return
	}
	if m.Title == "" {
		m.Title = other.Title
	}
	if m.Description == "" {
		m.Description = other.Description
	}
	if m.Language == "" {
		m.Language = other.Language
	}
	if m.Canonical == nil {
		m.Canonical = other.Canonical
	}
}

// MetaExtractor reads page metadata from HTML.
type MetaExtractor interface {
	// ExtractMeta returns whatever metadata it can find; missing fields
	// are left blank.
	ExtractMeta(html string) (*Meta, error)
}

// SectionParser splits HTML into content sections.
type SectionParser interface {
	// ExtractSections returns sections in document order. The baseURL is
	// used to resolve relative links and image sources.
	ExtractSections(html string, baseURL string) ([]*PageSection, error)
}
