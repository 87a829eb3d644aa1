// Package fs writes export files to the local filesystem.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/scrapeview"
)

// Ensure Exporter implements scrapeview.Exporter at compile time.
var _ scrapeview.Exporter = (*Exporter)(nil)

// Exporter saves export files into a directory. Files are written to a
// temporary name first and renamed into place, so a reader never sees a
// partial file.
type Exporter struct {
	dir string
}

// NewExporter creates an Exporter writing into dir.
// An empty dir means the working directory.
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// Save writes file under its own name and returns the full path.
// An existing file with the same name is replaced.
func (e *Exporter) Save(ctx context.Context, file *scrapeview.ExportFile) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if file == nil || file.Name == "" {
		return "", scrapeview.Errorf(scrapeview.EINVALID, "export file name required")
	}

	dir := e.dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, filepath.Base(file.Name))

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(file.Name)+".*.tmp")
	if err != nil {
		return "", err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(file.Data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return "", err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", err
	}

	return path, nil
}
