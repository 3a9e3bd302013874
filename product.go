package shopgrid

import (
	"context"
	"strconv"
	"time"
)

// Stock status values for Product.StockStatus.
const (
	StockInStock = "In Stock"
	StockSoldOut = "Sold Out"
)

// RawProduct is the embedded JSON payload of a single product container,
// decoded as-is from the structured-data element. Fields that may be
// missing from hand-authored payloads decode to their zero value; the
// identifier uses a pointer so that "absent" is distinguishable from zero,
// since a payload without an identifier must be rejected rather than
// admitted with id 0.
type RawProduct struct {
	ID            *int64   `json:"id"`
	Title         string   `json:"title"`
	Handle        string   `json:"handle"`
	Price         int64    `json:"price"` // minor currency units
	Available     bool     `json:"available"`
	Type          string   `json:"type"`
	Vendor        string   `json:"vendor"`
	Tags          []string `json:"tags"`
	Description   string   `json:"description"` // rich-text HTML fragment
	FeaturedImage string   `json:"featured_image"`
}

// Product is the canonical catalog record. Narrative fields are pointers so
// that "no matching section found" stays distinguishable from "section found
// but empty" all the way through export.
type Product struct {
	ID               int64
	Title            string
	Price            string // minor units formatted with two decimals
	StockStatus      string
	Type             string
	Vendor           string
	Tags             string // comma-joined
	Description      *string
	Benefits         *string
	HowToUse         *string
	Ingredients      *string
	Specifications   *string
	Inclusions       *string
	CareInstructions *string
	URL              string
	ImageURL         string

	// Handle is the URL slug from the payload, retained for deriving
	// file paths for product sheets. Not part of the tabular schema.
	Handle string

	// DescriptionHTML is the raw description fragment, retained for
	// markdown conversion. Not part of the tabular schema.
	DescriptionHTML string

	// ImportedAt is set by storage implementations.
	ImportedAt time.Time
}

// Validate returns an error if the product contains invalid fields.
func (p *Product) Validate() error {
	if p.ID == 0 {
		return Errorf(EINVALID, "product ID required")
	}
	return nil
}

// Column describes one column of the tabular export schema. Value returns
// the cell text for a product and whether the underlying field is present;
// required columns are always present, narrative columns are present only
// when the section was found in the source markup.
type Column struct {
	Name  string
	Value func(p *Product) (string, bool)
}

// Columns returns the full export schema in its fixed order.
func Columns() []Column {
	req := func(f func(p *Product) string) func(p *Product) (string, bool) {
		return func(p *Product) (string, bool) { return f(p), true }
	}
	opt := func(f func(p *Product) *string) func(p *Product) (string, bool) {
		return func(p *Product) (string, bool) {
			v := f(p)
			if v == nil {
				return "", false
			}
			return *v, true
		}
	}

	return []Column{
		{"product_id", req(func(p *Product) string { return strconv.FormatInt(p.ID, 10) })},
		{"title", req(func(p *Product) string { return p.Title })},
		{"price ($)", req(func(p *Product) string { return p.Price })},
		{"stock_status", req(func(p *Product) string { return p.StockStatus })},
		{"product_type", req(func(p *Product) string { return p.Type })},
		{"vendor", req(func(p *Product) string { return p.Vendor })},
		{"tags", req(func(p *Product) string { return p.Tags })},
		{"description", opt(func(p *Product) *string { return p.Description })},
		{"benefits", opt(func(p *Product) *string { return p.Benefits })},
		{"how_to_use", opt(func(p *Product) *string { return p.HowToUse })},
		{"ingredients", opt(func(p *Product) *string { return p.Ingredients })},
		{"specifications", opt(func(p *Product) *string { return p.Specifications })},
		{"inclusions", opt(func(p *Product) *string { return p.Inclusions })},
		{"care_instructions", opt(func(p *Product) *string { return p.CareInstructions })},
		{"product_url", req(func(p *Product) string { return p.URL })},
		{"primary_image_url", req(func(p *Product) string { return p.ImageURL })},
	}
}

// PresentColumns returns the columns of the export schema, in order,
// restricted to those populated in at least one of the given products.
func PresentColumns(products []*Product) []Column {
	var cols []Column
	for _, col := range Columns() {
		for _, p := range products {
			if _, ok := col.Value(p); ok {
				cols = append(cols, col)
				break
			}
		}
	}
	return cols
}

// SortOrder represents the sort order for product queries.
type SortOrder string

// SortOrder constants for ProductFilter.
const (
	SortByImportedAt SortOrder = "imported_at"
	SortByID         SortOrder = "id"
)

// ProductFilter represents a filter for FindProducts.
type ProductFilter struct {
	ID     *int64  `json:"id"`
	Vendor *string `json:"vendor"`
	Type   *string `json:"type"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}

// ProductService represents a service for persisting extracted products.
type ProductService interface {
	// SaveProduct inserts a product, or replaces the stored record with
	// the same identifier.
	SaveProduct(ctx context.Context, p *Product) error

	// FindProductByID retrieves a product by identifier.
	// Returns ENOTFOUND if the product does not exist.
	FindProductByID(ctx context.Context, id int64) (*Product, error)

	// FindProducts retrieves products matching the filter.
	FindProducts(ctx context.Context, filter ProductFilter) ([]*Product, error)

	// DeleteProduct permanently removes a product.
	// Returns ENOTFOUND if the product does not exist.
	DeleteProduct(ctx context.Context, id int64) error
}

// ProductWriter writes products to storage.
type ProductWriter interface {
	WriteProduct(ctx context.Context, p *Product) error
}

// Exporter serializes an aggregated product collection.
type Exporter interface {
	Export(ctx context.Context, products []*Product) error
}

// SourceReader resolves a document name to its full text.
type SourceReader interface {
	ReadSource(ctx context.Context, name string) (string, error)
}
