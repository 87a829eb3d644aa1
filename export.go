package scrapeview

import "context"

// Export file attributes.
const (
	ExportFileName    = "scrape-result.json"
	ExportContentType = "application/json"
)

// ExportFile is a downloadable artifact.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// Export serializes the whole stored response, not just its sections.
// It is computed on every call so the content always matches the slot.
// Returns ENOTFOUND when nothing is stored.
func Export(results ResultReader) (*ExportFile, error) {
	resp := results.Load()
	if resp == nil {
		return nil, Errorf(ENOTFOUND, "no result to export")
	}

	data, err := resp.Pretty()
	if err != nil {
		return nil, Errorf(EINTERNAL, "format result: %v", err)
	}

	return &ExportFile{
		Name:        ExportFileName,
		ContentType: ExportContentType,
		Data:        []byte(data),
	}, nil
}

// Exporter delivers export files to the user.
type Exporter interface {
	// Save writes the file and returns where it was written.
	Save(ctx context.Context, file *ExportFile) (string, error)
}
