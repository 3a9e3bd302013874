package main

import (
	"fmt"

	"github.com/fwojciec/shopgrid"
	"github.com/fwojciec/shopgrid/etree"
	sgslog "github.com/fwojciec/shopgrid/slog"
)

// Run executes the feed command.
func (c *FeedCmd) Run(deps *Dependencies) error {
	catalog, result, err := runExtraction(deps, c.Files, c.Concurrency)
	if err != nil {
		return err
	}

	exporter := sgslog.NewLoggingExporter(etree.NewFeedExporter(c.Out), deps.Logger)
	if err := exporter.Export(deps.Ctx, catalog.Products()); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopgrid.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote feed with %d products to %s\n", result.Retained, c.Out)

	return nil
}
