package main

import (
	"fmt"

	"github.com/fwojciec/shopgrid"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	if deps.Products == nil {
		return fmt.Errorf("no database specified. Use --db or set SHOPGRID_DB")
	}

	filter := shopgrid.ProductFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
		SortBy: shopgrid.SortByID,
	}
	if c.Vendor != "" {
		filter.Vendor = &c.Vendor
	}
	if c.Type != "" {
		filter.Type = &c.Type
	}

	products, err := deps.Products.FindProducts(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopgrid.ErrorMessage(err))
		return err
	}

	if len(products) == 0 {
		fmt.Fprintln(deps.Stdout, "No products found. Use 'shopgrid export' with --db to import some.")
		return nil
	}

	for _, p := range products {
		fmt.Fprintf(deps.Stdout, "%d  %s  %s  %s\n", p.ID, p.Title, p.Price, p.StockStatus)
	}

	return nil
}
