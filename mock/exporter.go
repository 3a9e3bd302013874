package mock

import (
	"context"

	"github.com/fwojciec/shopgrid"
)

var _ shopgrid.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of shopgrid.Exporter.
type Exporter struct {
	ExportFn func(ctx context.Context, products []*shopgrid.Product) error
}

func (e *Exporter) Export(ctx context.Context, products []*shopgrid.Product) error {
	return e.ExportFn(ctx, products)
}
