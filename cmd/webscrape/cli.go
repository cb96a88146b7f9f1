package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/webscrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Renderer webscrape.Renderer
	Sitemaps webscrape.SitemapService

	// NewScraper builds the extraction pipeline for the chosen engine.
	NewScraper func(engine string) (webscrape.Scraper, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape   ScrapeCmd   `cmd:"" help:"Scrape a single URL and print the result"`
	Serve    ServeCmd    `cmd:"" help:"Run the HTTP scraping service"`
	Batch    BatchCmd    `cmd:"" help:"Scrape many URLs and write results to a directory"`
	Discover DiscoverCmd `cmd:"" help:"List a site's URLs from its sitemap"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL     string        `arg:"" help:"Page URL to scrape"`
	Engine  string        `short:"e" default:"dom" enum:"dom,trafilatura,readability" help:"Extraction engine"`
	Format  string        `short:"o" default:"json" enum:"json,markdown" help:"Output format"`
	Timeout time.Duration `default:"60s" help:"Render timeout"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr          string        `default:":8000" env:"WEBSCRAPE_ADDR" help:"Listen address"`
	Engine        string        `short:"e" default:"dom" enum:"dom,trafilatura,readability" help:"Extraction engine"`
	MaxRenders    int64         `default:"4" env:"WEBSCRAPE_MAX_RENDERS" help:"Concurrent render limit"`
	RenderTimeout time.Duration `default:"60s" help:"Per-request render timeout"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	URLs        []string `arg:"" optional:"" help:"Page URLs to scrape"`
	Sitemap     string   `short:"s" help:"Discover URLs from this site's sitemap instead"`
	Filter      []string `short:"F" name:"filter" help:"Filter discovered URLs by regex (repeatable)"`
	OutDir      string   `short:"d" default:"./scraped" help:"Output directory"`
	Format      string   `short:"o" default:"json" enum:"json,markdown" help:"Output format"`
	Engine      string   `short:"e" default:"dom" enum:"dom,trafilatura,readability" help:"Extraction engine"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent scrape limit"`
	RPS         float64  `default:"1.0" help:"Requests per second per domain"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	URL    string   `arg:"" help:"Site URL"`
	Filter []string `short:"F" name:"filter" help:"Filter URLs by regex (repeatable)"`
}
