// Package fs provides file-based source reading and export for catalogs.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/shopgrid"
)

// Ensure SourceReader implements shopgrid.SourceReader at compile time.
var _ shopgrid.SourceReader = (*SourceReader)(nil)

// SourceReader resolves document names to files on disk.
type SourceReader struct {
	// BaseDir is prepended to relative names. Empty means the current
	// working directory.
	BaseDir string
}

// NewSourceReader creates a SourceReader rooted at baseDir.
func NewSourceReader(baseDir string) *SourceReader {
	return &SourceReader{BaseDir: baseDir}
}

// ReadSource reads the named document. A missing file maps to ENOTFOUND so
// callers can skip the source and continue the batch.
func (r *SourceReader) ReadSource(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := name
	if r.BaseDir != "" && !filepath.IsAbs(name) {
		path = filepath.Join(r.BaseDir, name)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", shopgrid.Errorf(shopgrid.ENOTFOUND, "source file %q not found", name)
	}
	if err != nil {
		return "", err
	}

	return string(data), nil
}
