package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/rsdoc"
	rsdocexec "github.com/fwojciec/rsdoc/exec"
	rsdocfs "github.com/fwojciec/rsdoc/fs"
	"github.com/fwojciec/rsdoc/goquery"
	rsdochttp "github.com/fwojciec/rsdoc/http"
	"github.com/fwojciec/rsdoc/lipgloss"
	rsdocslog "github.com/fwojciec/rsdoc/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Root of the cargo-doc cache. Set before calling Run().
	// Empty means the working directory.
	CacheDir string

	// Documentation host queried in online mode.
	DocsURL string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CacheDir: os.Getenv("RSDOC_DIR"),
		DocsURL:  defaultDocsURL(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rsdoc"),
		kong.Description("Look up the documented items of a Rust crate."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'rsdoc --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire services
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel(cli.Verbose),
	}))

	var local rsdoc.Source = rsdocfs.NewSource(m.CacheDir)
	var remote rsdoc.Source = rsdochttp.NewSource(rsdochttp.WithRootURL(m.DocsURL))
	if cli.Verbose {
		local = rsdocslog.NewLoggingSource(local, logger)
		remote = rsdocslog.NewLoggingSource(remote, logger)
	}

	deps.Logger = logger
	deps.Local = local
	deps.Remote = remote
	deps.Extractor = goquery.NewExtractor()
	deps.Renderer = lipgloss.NewRenderer()

	builder := rsdocexec.NewCargoBuilder()
	builder.Stdout = stdout
	builder.Stderr = stderr
	deps.Builder = builder

	return kongCtx.Run(deps)
}

func logLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

func defaultDocsURL() string {
	if u := os.Getenv("RSDOC_DOCS_URL"); u != "" {
		return u
	}
	return rsdochttp.DefaultRootURL
}
