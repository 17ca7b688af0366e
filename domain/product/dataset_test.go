package product

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingGenerator(calls *atomic.Int32) GeneratorFunc {
	return func(total int) []Product {
		calls.Add(1)
		return Generate(total)
	}
}

func TestDataset_GeneratesOnce(t *testing.T) {
	var calls atomic.Int32
	ds := NewDatasetWithGenerator(DefaultDatasetSize, countingGenerator(&calls))

	assert.False(t, ds.Ready())

	first := ds.Slice(100)
	second := ds.Slice(100)
	ds.Warm()

	assert.True(t, ds.Ready())
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, first, second)
}

func TestDataset_ConcurrentSlices(t *testing.T) {
	var calls atomic.Int32
	ds := NewDatasetWithGenerator(DefaultDatasetSize, countingGenerator(&calls))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = ds.Slice(DefaultDatasetSize)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestDataset_SliceBounds(t *testing.T) {
	ds := NewDataset(DefaultDatasetSize)

	tests := []struct {
		name string
		n    int
		want int
	}{
		{"prefix", 10, 10},
		{"exact size", DefaultDatasetSize, DefaultDatasetSize},
		{"beyond size", DefaultDatasetSize + 500, DefaultDatasetSize},
		{"zero", 0, 0},
		{"negative", -4, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, ds.Slice(tc.n), tc.want)
		})
	}
}

func TestDataset_SliceIsPrefixOfFullGeneration(t *testing.T) {
	ds := NewDataset(DefaultDatasetSize)
	full := Generate(DefaultDatasetSize)

	got := ds.Slice(3)
	require.Len(t, got, 3)
	assert.Equal(t, full[:3], got)

	// Prefixes come from the 1000-record generation, not a fresh Generate(3).
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, "Wireless Headphones", got[0].Title)
	assert.InDelta(t, 4.3, got[0].Rating.Rate, 1e-9)
}

func TestDataset_SliceReturnsCopy(t *testing.T) {
	ds := NewDataset(DefaultDatasetSize)

	s := ds.Slice(5)
	s[0].Title = "mutated"

	assert.Equal(t, "Wireless Headphones", ds.Slice(5)[0].Title)
}

func TestNewDataset_DefaultSize(t *testing.T) {
	assert.Equal(t, DefaultDatasetSize, NewDataset(0).Size())
	assert.Equal(t, 20, NewDataset(20).Size())
}
