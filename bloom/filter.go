// Package bloom provides probabilistic membership checks for product
// identifier deduplication.
package bloom

import (
	"strconv"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter wraps a Bloom filter keyed by product identifier.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected identifiers
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds an identifier to the filter.
func (f *Filter) Add(id int64) {
	f.f.AddString(strconv.FormatInt(id, 10))
}

// Test returns true if the identifier might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(id int64) bool {
	return f.f.TestString(strconv.FormatInt(id, 10))
}

// EstimatedCount returns the approximate number of identifiers in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
