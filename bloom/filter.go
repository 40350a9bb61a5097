// Package bloom tracks stored filenames with a Bloom filter so a batch can
// flag URLs that map onto a file written earlier in the same run.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter keyed by filename.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected filenames
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a filename.
func (f *Filter) Add(name string) {
	f.f.AddString(name)
}

// Test returns true if the filename might have been added.
// False positives are possible; false negatives are not.
func (f *Filter) Test(name string) bool {
	return f.f.TestString(name)
}

// TestAndAdd reports whether name might have been added before, then adds it.
func (f *Filter) TestAndAdd(name string) bool {
	return f.f.TestAndAddString(name)
}

// EstimatedCount returns the approximate number of filenames in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
