package product

import (
	"sync"
	"sync/atomic"
)

// DefaultDatasetSize is the number of records pre-generated per process.
const DefaultDatasetSize = 1000

// GeneratorFunc produces a dataset of the requested size.
type GeneratorFunc func(total int) []Product

// Dataset is the stable, once-generated record set that every query reads
// from. The generator runs at most once per Dataset; after that the records
// are never mutated, so concurrent readers need no further locking.
type Dataset struct {
	size     int
	generate GeneratorFunc

	once  sync.Once
	ready atomic.Bool
	items []Product
}

// NewDataset creates a dataset of size records backed by Generate.
func NewDataset(size int) *Dataset {
	return NewDatasetWithGenerator(size, Generate)
}

// NewDatasetWithGenerator creates a dataset backed by a custom generator.
func NewDatasetWithGenerator(size int, gen GeneratorFunc) *Dataset {
	if size <= 0 {
		size = DefaultDatasetSize
	}
	return &Dataset{
		size:     size,
		generate: gen,
	}
}

// Warm materializes the dataset if it has not been built yet.
func (d *Dataset) Warm() {
	d.once.Do(func() {
		d.items = d.generate(d.size)
		d.ready.Store(true)
	})
}

// Ready reports whether the dataset has been materialized.
func (d *Dataset) Ready() bool {
	return d.ready.Load()
}

// Size returns the capacity of the dataset, which is also the upper bound of
// any slice taken from it.
func (d *Dataset) Size() int {
	return d.size
}

// Slice returns a copy of the first min(n, Size()) records.
func (d *Dataset) Slice(n int) []Product {
	d.Warm()
	if n > len(d.items) {
		n = len(d.items)
	}
	if n < 0 {
		n = 0
	}
	out := make([]Product, n)
	copy(out, d.items[:n])
	return out
}
