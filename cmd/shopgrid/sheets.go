package main

import (
	"fmt"

	"github.com/fwojciec/shopgrid"
	"github.com/fwojciec/shopgrid/fs"
	"github.com/fwojciec/shopgrid/htmltomarkdown"
)

// Run executes the sheets command.
func (c *SheetsCmd) Run(deps *Dependencies) error {
	catalog, result, err := runExtraction(deps, c.Files, c.Concurrency)
	if err != nil {
		return err
	}

	writer := fs.NewSheetWriter(c.Dir, htmltomarkdown.NewConverter())

	var written int
	for _, p := range catalog.Products() {
		if err := writer.WriteProduct(deps.Ctx, p); err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", p.Title, shopgrid.ErrorMessage(err))
			continue
		}
		written++
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d of %d product sheets to %s\n",
		written, result.Retained, c.Dir)

	return nil
}
