// Package bloom provides probabilistic URL deduplication for batch
// scraping runs.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/webscrape/scrape"
)

// Ensure Filter implements scrape.SeenFilter at compile time.
var _ scrape.SeenFilter = (*Filter)(nil)

// Filter remembers scraped URLs in a Bloom filter so large batch runs
// can skip repeats without holding every URL in memory.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given
// false positive rate. A false positive means a URL is skipped even
// though it was never scraped; false negatives never happen.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL as scraped.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test returns true if the URL was probably scraped already.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs recorded.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
