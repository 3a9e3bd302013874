package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shopgrid"
)

// Ensure Extractor implements shopgrid.DocumentExtractor at compile time.
var _ shopgrid.DocumentExtractor = (*Extractor)(nil)

// Extractor locates product containers in a collection-grid document and
// decodes their embedded JSON payloads.
type Extractor struct {
	// Selectors target the container and structured-data markup.
	Selectors shopgrid.Selectors
}

// NewExtractor creates an Extractor for the default grid convention.
func NewExtractor() *Extractor {
	return &Extractor{Selectors: shopgrid.DefaultConfig().Selectors}
}

// ExtractItems scans one document for product containers. Containers
// without a structured-data element are skipped silently; they are
// decorative grid entries, not products. A payload that fails to decode is
// returned as an Item carrying the decode error so the caller can report
// the skip and keep processing the rest of the document.
func (e *Extractor) ExtractItems(htmlText string) ([]shopgrid.Item, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, shopgrid.Errorf(shopgrid.EINVALID, "failed to parse document: %v", err)
	}

	var items []shopgrid.Item
	doc.Find(e.Selectors.Container).Each(func(_ int, container *goquery.Selection) {
		script := container.Find(e.Selectors.ProductData).First()
		if script.Length() == 0 {
			return
		}

		var raw shopgrid.RawProduct
		if err := json.Unmarshal([]byte(script.Text()), &raw); err != nil {
			items = append(items, shopgrid.Item{
				Err: shopgrid.Errorf(shopgrid.EINVALID, "decoding product data: %v", err),
			})
			return
		}

		items = append(items, shopgrid.Item{Raw: &raw})
	})

	return items, nil
}
