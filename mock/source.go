package mock

import (
	"context"

	"github.com/fwojciec/shopgrid"
)

var _ shopgrid.SourceReader = (*SourceReader)(nil)

// SourceReader is a mock implementation of shopgrid.SourceReader.
type SourceReader struct {
	ReadSourceFn func(ctx context.Context, name string) (string, error)
}

func (r *SourceReader) ReadSource(ctx context.Context, name string) (string, error) {
	return r.ReadSourceFn(ctx, name)
}
