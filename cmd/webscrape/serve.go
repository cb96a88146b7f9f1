package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fwojciec/webscrape"
	wshttp "github.com/fwojciec/webscrape/http"
	wsslog "github.com/fwojciec/webscrape/slog"
)

// Run executes the serve command. It blocks until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	scraper, err := deps.NewScraper(c.Engine)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webscrape.ErrorMessage(err))
		return err
	}

	server := wshttp.NewServer()
	server.Addr = c.Addr
	server.Renderer = deps.Renderer
	server.Scraper = wsslog.NewLoggingScraper(scraper, deps.Logger)
	server.Logger = deps.Logger
	server.MaxConcurrentRenders = c.MaxRenders
	server.RenderTimeout = c.RenderTimeout

	if err := server.Open(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	ctx, stop := signal.NotifyContext(deps.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	fmt.Fprintln(deps.Stdout, "shutting down")
	return server.Close()
}
