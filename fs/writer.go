package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/shopgrid"
)

// HandleToPath converts a product handle to a relative sheet file path.
// Products without a handle fall back to their identifier.
func HandleToPath(p *shopgrid.Product) string {
	if p.Handle == "" {
		return fmt.Sprintf("product-%d.md", p.ID)
	}
	return p.Handle + ".md"
}

// Ensure SheetWriter implements shopgrid.ProductWriter at compile time.
var _ shopgrid.ProductWriter = (*SheetWriter)(nil)

// SheetWriter writes one markdown sheet per product to a directory. The
// description HTML fragment is converted to markdown; narrative sections
// already hold plain text and are rendered under their own headings.
type SheetWriter struct {
	baseDir   string
	converter shopgrid.Converter
}

// NewSheetWriter creates a SheetWriter writing to baseDir.
func NewSheetWriter(baseDir string, converter shopgrid.Converter) *SheetWriter {
	return &SheetWriter{baseDir: baseDir, converter: converter}
}

// WriteProduct writes a product sheet to disk.
func (w *SheetWriter) WriteProduct(ctx context.Context, p *shopgrid.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body := ""
	if strings.TrimSpace(p.DescriptionHTML) != "" {
		markdown, err := w.converter.Convert(p.DescriptionHTML)
		if err != nil {
			return err
		}
		body = markdown
	}

	fullPath := filepath.Join(w.baseDir, HandleToPath(p))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatSheet(p, body)), 0644)
}

// FormatSheet formats a product sheet with YAML frontmatter.
func FormatSheet(p *shopgrid.Product, body string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString(fmt.Sprintf("id: %d\n", p.ID))
	b.WriteString("title: ")
	b.WriteString(p.Title)
	b.WriteString("\nprice: ")
	b.WriteString(p.Price)
	b.WriteString("\nstock: ")
	b.WriteString(p.StockStatus)
	b.WriteString("\nurl: ")
	b.WriteString(p.URL)
	b.WriteString("\n---\n\n")
	b.WriteString(strings.TrimSpace(body))
	b.WriteString("\n")
	return b.String()
}
