// Package bloom provides probabilistic URL deduplication used when
// merging URL lists from multiple sources.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter for source URL deduplication.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen records the URL and reports whether it was probably already
// present. False positives drop a URL at worst; false negatives do
// not occur.
func (f *Filter) Seen(url string) bool {
	if f.f.TestString(url) {
		return true
	}
	f.f.AddString(url)
	return false
}

// EstimatedCount returns the approximate number of URLs recorded.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

// Dedupe returns urls with probable duplicates removed, keeping
// first-seen order.
func Dedupe(urls []string) []string {
	if len(urls) == 0 {
		return urls
	}
	f := NewFilter(uint(len(urls)), 1e-6)
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if !f.Seen(u) {
			out = append(out, u)
		}
	}
	return out
}
