package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/webscrape"
	"github.com/fwojciec/webscrape/fs"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	scraper, err := deps.NewScraper(c.Engine)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webscrape.ErrorMessage(err))
		return err
	}

	ctx := deps.Ctx
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	page, err := deps.Renderer.Render(ctx, c.URL)
	if err != nil {
		// A failed render still yields a degraded result.
		page = &webscrape.RenderedPage{
			URL:     c.URL,
			Failure: webscrape.ClassifyRenderError(err),
		}
	}

	content, err := scraper.Scrape(page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webscrape.ErrorMessage(err))
		return err
	}

	if c.Format == "markdown" {
		fmt.Fprintln(deps.Stdout, fs.FormatContentMarkdown(content))
		return nil
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(content)
}
