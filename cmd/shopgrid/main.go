package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/shopgrid"
	"github.com/fwojciec/shopgrid/fs"
	"github.com/fwojciec/shopgrid/goquery"
	sgslog "github.com/fwojciec/shopgrid/slog"
	"github.com/fwojciec/shopgrid/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used by SQLite service implementations. Opened only
	// when a database path is given.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ProductService shopgrid.ProductService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("shopgrid"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'shopgrid --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Load configuration
	cfg := shopgrid.DefaultConfig()
	if cli.Config != "" {
		cfg, err = shopgrid.LoadConfig(cli.Config)
		if err != nil {
			return fmt.Errorf("failed to load config: %s", shopgrid.ErrorMessage(err))
		}
	}
	deps.Config = cfg

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire the extraction pipeline from the configuration
	deps.Sources = fs.NewSourceReader("")
	deps.Extractor = sgslog.NewLoggingExtractor(
		&goquery.Extractor{Selectors: cfg.Selectors},
		deps.Logger,
	)
	deps.Sections = &goquery.SectionParser{
		Collisions: cfg.SectionCollisions,
		Selectors:  cfg.Selectors,
	}
	deps.Normalizer = &shopgrid.Normalizer{
		URLBase: cfg.ProductURLBase,
		Aliases: cfg.Aliases,
	}

	// Open the catalog database when a path is given
	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SHOPGRID_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()

		m.ProductService = sqlite.NewProductService(m.DB)
		deps.DB = m.DB
		deps.Products = m.ProductService
	}

	return kongCtx.Run(deps)
}
