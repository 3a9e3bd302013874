package mock

import (
	"context"

	"github.com/fwojciec/shopgrid"
)

var _ shopgrid.ProductService = (*ProductService)(nil)

// ProductService is a mock implementation of shopgrid.ProductService.
type ProductService struct {
	SaveProductFn     func(ctx context.Context, p *shopgrid.Product) error
	FindProductByIDFn func(ctx context.Context, id int64) (*shopgrid.Product, error)
	FindProductsFn    func(ctx context.Context, filter shopgrid.ProductFilter) ([]*shopgrid.Product, error)
	DeleteProductFn   func(ctx context.Context, id int64) error
}

func (s *ProductService) SaveProduct(ctx context.Context, p *shopgrid.Product) error {
	return s.SaveProductFn(ctx, p)
}

func (s *ProductService) FindProductByID(ctx context.Context, id int64) (*shopgrid.Product, error) {
	return s.FindProductByIDFn(ctx, id)
}

func (s *ProductService) FindProducts(ctx context.Context, filter shopgrid.ProductFilter) ([]*shopgrid.Product, error) {
	return s.FindProductsFn(ctx, filter)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	return s.DeleteProductFn(ctx, id)
}
