package main

import (
	"fmt"

	"github.com/fwojciec/shopgrid"
	"github.com/fwojciec/shopgrid/extract"
	"github.com/fwojciec/shopgrid/fs"
	sgslog "github.com/fwojciec/shopgrid/slog"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	catalog, result, err := runExtraction(deps, c.Files, c.Concurrency)
	if err != nil {
		return err
	}

	exporter := sgslog.NewLoggingExporter(fs.NewCSVExporter(c.Out), deps.Logger)
	if err := exporter.Export(deps.Ctx, catalog.Products()); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopgrid.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d products to %s (%d duplicates, %d skipped)\n",
		result.Retained, c.Out, result.Duplicates, len(result.Skips))

	return nil
}

// runExtraction runs the shared extraction pipeline over the given sources,
// reporting per-source progress and per-item skips on stderr.
func runExtraction(deps *Dependencies, files []string, concurrency int) (*extract.Catalog, *extract.Result, error) {
	runner := &extract.Runner{
		Sources:     deps.Sources,
		Extractor:   deps.Extractor,
		Sections:    deps.Sections,
		Normalizer:  deps.Normalizer,
		Store:       deps.Products,
		Concurrency: concurrency,
	}

	progress := func(event extract.ProgressEvent) {
		switch event.Type {
		case extract.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Extracting from %d sources\n", event.Total)
		case extract.ProgressSourceFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Source, event.Error)
		case extract.ProgressFinished:
			// Summary printed after extraction completes
		}
	}

	catalog, result, err := runner.Run(deps.Ctx, files, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopgrid.ErrorMessage(err))
		return nil, nil, err
	}

	for _, skip := range result.Skips {
		if skip.Reason == "unreadable source" {
			continue // already reported by the progress callback
		}
		fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", skip.Source, skip.Reason)
	}

	return catalog, result, nil
}
