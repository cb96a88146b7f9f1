package mock

import (
	"context"

	"github.com/fwojciec/webscrape"
)

var _ webscrape.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of webscrape.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *webscrape.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *webscrape.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
