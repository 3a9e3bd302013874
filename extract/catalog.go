package extract

import (
	"github.com/fwojciec/shopgrid"
	"github.com/fwojciec/shopgrid/bloom"
)

// Catalog sizing for the identifier Bloom filter.
const (
	// catalogExpectedProducts is the expected catalog size for Bloom filter sizing.
	catalogExpectedProducts = 10000
	// catalogFalsePositiveRate is the acceptable false positive rate for the fast path.
	catalogFalsePositiveRate = 0.01
)

// Catalog is the ordered collection of retained products. It exclusively
// owns the seen-identifier state: the first product admitted with a given
// identifier wins and later duplicates are dropped, regardless of which
// source document they came from. A Bloom filter answers the common
// "definitely new" case without touching the exact set; positives are
// confirmed against the exact set, so admission stays exact.
type Catalog struct {
	fast     *bloom.Filter
	seen     map[int64]struct{}
	products []*shopgrid.Product
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		fast: bloom.NewFilter(catalogExpectedProducts, catalogFalsePositiveRate),
		seen: make(map[int64]struct{}),
	}
}

// Add retains the product if its identifier has not been seen before.
// Returns false for duplicates, which are dropped without error.
func (c *Catalog) Add(p *shopgrid.Product) bool {
	if c.fast.Test(p.ID) {
		if _, ok := c.seen[p.ID]; ok {
			return false
		}
	}
	c.fast.Add(p.ID)
	c.seen[p.ID] = struct{}{}
	c.products = append(c.products, p)
	return true
}

// Seen reports whether an identifier has already been admitted.
func (c *Catalog) Seen(id int64) bool {
	_, ok := c.seen[id]
	return ok
}

// Len returns the number of retained products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns the retained products in first-seen order. The slice is
// shared; callers must treat it as read-only.
func (c *Catalog) Products() []*shopgrid.Product {
	return c.products
}
