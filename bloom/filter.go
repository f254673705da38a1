// Package bloom provides a probabilistic "definitely not seen" check for
// crawl URLs using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter keyed by URL strings.
// TestAndAdd never reports false for an added URL; it may report true for a
// URL that was never added.
// Filter is not safe for concurrent use.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected URLs
// with the given false positive rate.
// Non-positive sizing falls back to 1000 URLs at 1%.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1000
	}
	if fpRate <= 0 || fpRate >= 1 {
		fpRate = 0.01
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// TestAndAdd reports whether the URL might have been in the filter and adds
// it in the same step.
func (f *Filter) TestAndAdd(url string) bool {
	return f.f.TestAndAddString(url)
}
