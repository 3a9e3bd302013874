package mock

import "github.com/fwojciec/shopgrid"

var _ shopgrid.Converter = (*Converter)(nil)

// Converter is a mock implementation of shopgrid.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
