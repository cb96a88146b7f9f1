package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webscrape"
	"github.com/fwojciec/webscrape/goquery"
	"github.com/fwojciec/webscrape/htmltomarkdown"
	wshttp "github.com/fwojciec/webscrape/http"
	"github.com/fwojciec/webscrape/readability"
	"github.com/fwojciec/webscrape/rod"
	"github.com/fwojciec/webscrape/scrape"
	wsslog "github.com/fwojciec/webscrape/slog"
	"github.com/fwojciec/webscrape/trafilatura"
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
	// Renderer can be set before Run for end-to-end testing; when nil
	// a browser-backed renderer is launched for commands that render.
	Renderer webscrape.Renderer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:        ctx,
		Stdout:     stdout,
		Stderr:     stderr,
		Logger:     logger,
		Sitemaps:   wsslog.NewLoggingSitemapService(wshttp.NewSitemapService(nil), logger),
		NewScraper: newScraper,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webscrape"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'webscrape --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Commands other than discover need a browser.
	if cmd != "discover" {
		deps.Renderer = m.Renderer
		if deps.Renderer == nil {
			renderer, err := rod.NewRenderer()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer renderer.Close()
			deps.Renderer = rod.NewLoggingRenderer(renderer, logger)
		}
	}

	return kongCtx.Run(deps)
}

// newScraper builds the extraction pipeline for the chosen engine.
// The dom engine uses boilerplate-stripping DOM heuristics; the
// trafilatura and readability engines swap in alternative content
// extractors behind the same pipeline.
func newScraper(engine string) (webscrape.Scraper, error) {
	var extractor webscrape.Extractor
	switch engine {
	case "dom":
		extractor = goquery.NewCleaner()
	case "trafilatura":
		extractor = trafilatura.NewExtractor()
	case "readability":
		extractor = readability.NewExtractor()
	default:
		return nil, webscrape.Errorf(webscrape.EINVALID, "unknown engine: %s", engine)
	}

	return scrape.NewPipeline(
		extractor,
		goquery.NewStructured(),
		htmltomarkdown.NewConverter(),
	), nil
}
