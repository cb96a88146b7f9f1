package mock

import (
	"context"

	"github.com/fwojciec/webscrape"
)

var _ webscrape.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of webscrape.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, url string) (*webscrape.RenderedPage, error)
	CloseFn  func() error
}

func (r *Renderer) Render(ctx context.Context, url string) (*webscrape.RenderedPage, error) {
	return r.RenderFn(ctx, url)
}

func (r *Renderer) Close() error {
	if r.CloseFn == nil {
		return nil
	}
	return r.CloseFn()
}
