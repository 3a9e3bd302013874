package fs

import (
	"context"
	"encoding/csv"
	"os"

	"github.com/fwojciec/shopgrid"
)

// Ensure CSVExporter implements shopgrid.Exporter at compile time.
var _ shopgrid.Exporter = (*CSVExporter)(nil)

// CSVExporter serializes a catalog as UTF-8 CSV with atomic write
// semantics: the table is written to a temporary file and renamed into
// place, so a failed export never leaves a partial file behind.
type CSVExporter struct {
	Path string
}

// NewCSVExporter creates a CSVExporter writing to path.
func NewCSVExporter(path string) *CSVExporter {
	return &CSVExporter{Path: path}
}

// Export writes the products in catalog order. Columns follow the fixed
// export schema; narrative columns absent from every record are omitted
// from the header and all rows.
func (e *CSVExporter) Export(ctx context.Context, products []*shopgrid.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cols := shopgrid.PresentColumns(products)

	tmp := e.Path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return shopgrid.Errorf(shopgrid.EINTERNAL, "creating output file: %v", err)
	}

	if err := writeTable(f, cols, products); err != nil {
		f.Close()
		os.Remove(tmp)
		return shopgrid.Errorf(shopgrid.EINTERNAL, "writing output file: %v", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return shopgrid.Errorf(shopgrid.EINTERNAL, "closing output file: %v", err)
	}

	if err := os.Rename(tmp, e.Path); err != nil {
		os.Remove(tmp)
		return shopgrid.Errorf(shopgrid.EINTERNAL, "replacing output file: %v", err)
	}

	return nil
}

func writeTable(f *os.File, cols []shopgrid.Column, products []*shopgrid.Product) error {
	w := csv.NewWriter(f)

	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = col.Name
	}
	if err := w.Write(header); err != nil {
		return err
	}

	row := make([]string, len(cols))
	for _, p := range products {
		for i, col := range cols {
			// Absent narrative values render as empty cells; the
			// column itself survived pruning because some other
			// record populates it.
			row[i], _ = col.Value(p)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
