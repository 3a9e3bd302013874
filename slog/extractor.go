// Package slog provides logging decorators for shopgrid interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/shopgrid"
)

// Ensure LoggingExtractor implements shopgrid.DocumentExtractor.
var _ shopgrid.DocumentExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a DocumentExtractor with debug logging of item
// counts and timing per document.
type LoggingExtractor struct {
	next   shopgrid.DocumentExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next shopgrid.DocumentExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractItems delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) ExtractItems(html string) ([]shopgrid.Item, error) {
	begin := time.Now()
	items, err := e.next.ExtractItems(html)
	if err != nil {
		e.logger.Error("document extraction",
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}

	var failed int
	for _, item := range items {
		if item.Err != nil {
			failed++
		}
	}
	e.logger.Info("document extraction",
		"items", len(items),
		"failed", failed,
		"duration", time.Since(begin),
	)

	return items, nil
}
