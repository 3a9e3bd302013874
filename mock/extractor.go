package mock

import "github.com/fwojciec/shopgrid"

var _ shopgrid.DocumentExtractor = (*DocumentExtractor)(nil)

// DocumentExtractor is a mock implementation of shopgrid.DocumentExtractor.
type DocumentExtractor struct {
	ExtractItemsFn func(html string) ([]shopgrid.Item, error)
}

func (e *DocumentExtractor) ExtractItems(html string) ([]shopgrid.Item, error) {
	return e.ExtractItemsFn(html)
}
