// Package extract provides catalog extraction orchestration. It coordinates
// source reading, container extraction, section parsing, normalization, and
// deduplicated aggregation into the final catalog.
package extract

import (
	"context"

	"github.com/fwojciec/shopgrid"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Runner orchestrates the extraction pipeline over an ordered list of
// source documents.
type Runner struct {
	Sources    shopgrid.SourceReader
	Extractor  shopgrid.DocumentExtractor
	Sections   shopgrid.SectionParser
	Normalizer *shopgrid.Normalizer

	// Store, when set, persists every retained product.
	Store shopgrid.ProductService

	// Concurrency bounds parallel per-source extraction. Values below 2
	// process sources sequentially. Catalog admission is always strictly
	// in input order, so output is deterministic either way.
	Concurrency int
}

// Skip records one recovered per-item or per-source failure.
type Skip struct {
	Source string
	Reason string
	Err    error
}

// Result holds the outcome of a run.
type Result struct {
	RunID         string
	Sources       int
	FailedSources int
	Retained      int
	Duplicates    int
	Skips         []Skip
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Source    string
	Completed int
	Total     int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressSourceDone
	ProgressSourceFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// sourceResult holds the outcome of processing a single source document.
type sourceResult struct {
	position int
	source   string
	products []*shopgrid.Product
	skips    []Skip
	err      error
}

// Run processes the named sources in order and returns the deduplicated
// catalog. Per-item and per-source failures are recovered as Skips; only a
// run that retains zero products returns an error (ENOTFOUND), which is the
// batch-level terminating condition.
func (r *Runner) Run(ctx context.Context, names []string, progress ProgressFunc) (*Catalog, *Result, error) {
	result := &Result{
		RunID:   uuid.New().String(),
		Sources: len(names),
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(names)})
	}

	results := r.processSources(ctx, names)

	// Admission happens strictly in input order: the identifier
	// uniqueness check and the insert are a single step on one
	// goroutine, so no duplicate can slip in between them.
	catalog := NewCatalog()
	for _, sr := range results {
		if sr.err != nil {
			result.FailedSources++
			result.Skips = append(result.Skips, Skip{
				Source: sr.source,
				Reason: "unreadable source",
				Err:    sr.err,
			})
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressSourceFailed,
					Source:    sr.source,
					Completed: sr.position + 1,
					Total:     len(names),
					Error:     sr.err,
				})
			}
			continue
		}

		result.Skips = append(result.Skips, sr.skips...)
		for _, p := range sr.products {
			if !catalog.Add(p) {
				result.Duplicates++
			}
		}

		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressSourceDone,
				Source:    sr.source,
				Completed: sr.position + 1,
				Total:     len(names),
			})
		}
	}

	result.Retained = catalog.Len()

	if r.Store != nil {
		for _, p := range catalog.Products() {
			if err := r.Store.SaveProduct(ctx, p); err != nil {
				result.Skips = append(result.Skips, Skip{
					Source: "store",
					Reason: "save failed",
					Err:    err,
				})
			}
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(names), Total: len(names)})
	}

	if result.Retained == 0 {
		return catalog, result, shopgrid.Errorf(shopgrid.ENOTFOUND,
			"no products extracted from %d sources", len(names))
	}

	return catalog, result, nil
}

// processSources extracts every source and returns results indexed by input
// position. Sources run concurrently when Concurrency allows it.
func (r *Runner) processSources(ctx context.Context, names []string) []sourceResult {
	results := make([]sourceResult, len(names))

	if r.Concurrency < 2 {
		for i, name := range names {
			results[i] = r.processSource(ctx, i, name)
		}
		return results
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Concurrency)
	for i, name := range names {
		g.Go(func() error {
			results[i] = r.processSource(gctx, i, name)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// processSource runs the per-document part of the pipeline: read, locate
// containers, parse sections, normalize. Item-level failures become skips.
func (r *Runner) processSource(ctx context.Context, position int, name string) sourceResult {
	sr := sourceResult{position: position, source: name}

	text, err := r.Sources.ReadSource(ctx, name)
	if err != nil {
		sr.err = err
		return sr
	}

	items, err := r.Extractor.ExtractItems(text)
	if err != nil {
		sr.err = err
		return sr
	}

	for _, item := range items {
		if item.Err != nil {
			sr.skips = append(sr.skips, Skip{
				Source: name,
				Reason: "malformed product data",
				Err:    item.Err,
			})
			continue
		}

		sections := r.Sections.ParseSections(item.Raw.Description)

		p, err := r.Normalizer.Normalize(item.Raw, sections)
		if err != nil {
			sr.skips = append(sr.skips, Skip{
				Source: name,
				Reason: "missing identifier",
				Err:    err,
			})
			continue
		}

		sr.products = append(sr.products, p)
	}

	return sr
}
