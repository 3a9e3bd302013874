// Package etree exports catalogs as XML product feeds.
package etree

import (
	"context"
	"os"
	"strconv"

	"github.com/beevik/etree"
	"github.com/fwojciec/shopgrid"
)

// Ensure FeedExporter implements shopgrid.Exporter at compile time.
var _ shopgrid.Exporter = (*FeedExporter)(nil)

// FeedExporter serializes a catalog as an XML feed with the same atomic
// write semantics as the CSV exporter: temp file plus rename, so a failed
// export leaves no partial feed behind. Narrative elements absent from a
// product are omitted from that product's entry; the feed carries no
// timestamps so identical catalogs produce byte-identical feeds.
type FeedExporter struct {
	Path string
}

// NewFeedExporter creates a FeedExporter writing to path.
func NewFeedExporter(path string) *FeedExporter {
	return &FeedExporter{Path: path}
}

// Export writes the products in catalog order.
func (e *FeedExporter) Export(ctx context.Context, products []*shopgrid.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	catalog := doc.CreateElement("catalog")

	for _, p := range products {
		entry := catalog.CreateElement("product")
		entry.CreateAttr("id", strconv.FormatInt(p.ID, 10))

		text(entry, "title", p.Title)
		text(entry, "price", p.Price)
		text(entry, "stock_status", p.StockStatus)
		text(entry, "product_type", p.Type)
		text(entry, "vendor", p.Vendor)
		text(entry, "tags", p.Tags)
		optional(entry, "description", p.Description)
		optional(entry, "benefits", p.Benefits)
		optional(entry, "how_to_use", p.HowToUse)
		optional(entry, "ingredients", p.Ingredients)
		optional(entry, "specifications", p.Specifications)
		optional(entry, "inclusions", p.Inclusions)
		optional(entry, "care_instructions", p.CareInstructions)
		text(entry, "product_url", p.URL)
		text(entry, "primary_image_url", p.ImageURL)
	}

	doc.Indent(2)

	tmp := e.Path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return shopgrid.Errorf(shopgrid.EINTERNAL, "creating feed file: %v", err)
	}

	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return shopgrid.Errorf(shopgrid.EINTERNAL, "writing feed file: %v", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return shopgrid.Errorf(shopgrid.EINTERNAL, "closing feed file: %v", err)
	}

	if err := os.Rename(tmp, e.Path); err != nil {
		os.Remove(tmp)
		return shopgrid.Errorf(shopgrid.EINTERNAL, "replacing feed file: %v", err)
	}

	return nil
}

func text(parent *etree.Element, tag, value string) {
	parent.CreateElement(tag).SetText(value)
}

func optional(parent *etree.Element, tag string, value *string) {
	if value == nil {
		return
	}
	text(parent, tag, *value)
}
