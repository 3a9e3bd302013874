package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/shopgrid"
	"github.com/fwojciec/shopgrid/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Config     shopgrid.Config
	Sources    shopgrid.SourceReader
	Extractor  shopgrid.DocumentExtractor
	Sections   shopgrid.SectionParser
	Normalizer *shopgrid.Normalizer
	DB         *sqlite.DB
	Products   shopgrid.ProductService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Path to a YAML configuration file" type:"path"`
	DB      string `env:"SHOPGRID_DB" help:"Path to a catalog database"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Export   ExportCmd   `cmd:"" help:"Extract products and export a delimited catalog"`
	Feed     FeedCmd     `cmd:"" help:"Extract products and export an XML product feed"`
	Sheets   SheetsCmd   `cmd:"" help:"Extract products and write per-product markdown sheets"`
	Sections SectionsCmd `cmd:"" help:"Show parsed description sections for one document"`
	List     ListCmd     `cmd:"" help:"List products stored in a catalog database"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Files       []string `arg:"" help:"Source HTML documents, in priority order"`
	Out         string   `short:"o" default:"products.csv" help:"Output file path"`
	Concurrency int      `short:"c" default:"1" help:"Concurrent source extraction limit"`
}

// FeedCmd is the "feed" subcommand.
type FeedCmd struct {
	Files       []string `arg:"" help:"Source HTML documents, in priority order"`
	Out         string   `short:"o" default:"products.xml" help:"Output file path"`
	Concurrency int      `short:"c" default:"1" help:"Concurrent source extraction limit"`
}

// SheetsCmd is the "sheets" subcommand.
type SheetsCmd struct {
	Files       []string `arg:"" help:"Source HTML documents, in priority order"`
	Dir         string   `short:"d" default:"sheets" help:"Output directory for markdown sheets"`
	Concurrency int      `short:"c" default:"1" help:"Concurrent source extraction limit"`
}

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct {
	File string `arg:"" help:"Source HTML document"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Vendor string `help:"Filter by vendor"`
	Type   string `help:"Filter by product type"`
	Limit  int    `help:"Maximum number of products to show"`
	Offset int    `help:"Number of products to skip"`
}
