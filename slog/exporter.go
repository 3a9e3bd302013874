package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/shopgrid"
)

// Ensure LoggingExporter implements shopgrid.Exporter.
var _ shopgrid.Exporter = (*LoggingExporter)(nil)

// LoggingExporter wraps an Exporter with logging of row counts and timing.
type LoggingExporter struct {
	next   shopgrid.Exporter
	logger *slog.Logger
}

// NewLoggingExporter creates a new LoggingExporter.
func NewLoggingExporter(next shopgrid.Exporter, logger *slog.Logger) *LoggingExporter {
	return &LoggingExporter{next: next, logger: logger}
}

// Export delegates to the wrapped exporter and logs the outcome.
func (e *LoggingExporter) Export(ctx context.Context, products []*shopgrid.Product) error {
	begin := time.Now()
	err := e.next.Export(ctx, products)
	if err != nil {
		e.logger.Error("catalog export",
			"rows", len(products),
			"error", err,
			"duration", time.Since(begin),
		)
		return err
	}

	e.logger.Info("catalog export",
		"rows", len(products),
		"duration", time.Since(begin),
	)

	return nil
}
