package ops

import (
	"fmt"
	"time"

	"github.com/jacksmith/bag/internal/model"
	"github.com/jacksmith/bag/internal/stats"
	"github.com/jacksmith/bag/internal/store"
)

// BenchReport compares the search algorithms on a generated inventory.
type BenchReport struct {
	N int

	// Comparisons summed over one successful search per item.
	ArrayLinear int64
	ArrayBinary int64
	ListLinear  int64

	// Comparisons for one search of a missing name.
	ArrayLinearMiss int64
	ArrayBinaryMiss int64
	ListLinearMiss  int64

	ArrayLinearTime time.Duration
	ArrayBinaryTime time.Duration
	ListLinearTime  time.Duration
	SortTime        time.Duration
}

// Bench fills fresh stores with n items inserted in reverse name order and
// searches for every item with each algorithm. It uses its own counters and
// leaves any session untouched.
func Bench(n int) (*BenchReport, error) {
	if n < 1 || n > store.ArrayCapacity {
		return nil, fmt.Errorf("bench size must be between 1 and %d, got %d", store.ArrayCapacity, n)
	}

	c := stats.New()
	arr := store.NewArrayStore(c)
	list := store.NewLinkedStore(c)
	defer list.Release()

	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("item-%03d", n-1-i)
		it := model.Item{Name: names[i], Category: "Bench", Quantity: 1}
		if _, err := arr.Insert(it); err != nil {
			return nil, err
		}
		if _, err := list.Insert(it); err != nil {
			return nil, err
		}
	}
	c.ResetAll()

	r := &BenchReport{N: n}
	const missing = "~missing"

	start := time.Now()
	for _, name := range names {
		arr.SearchLinear(name)
	}
	r.ArrayLinearTime = time.Since(start)
	r.ArrayLinear = c.ArraySequential.Read()
	arr.SearchLinear(missing)
	r.ArrayLinearMiss = c.ArraySequential.Read() - r.ArrayLinear

	start = time.Now()
	for _, name := range names {
		list.SearchLinear(name)
	}
	r.ListLinearTime = time.Since(start)
	r.ListLinear = c.ListSequential.Read()
	list.SearchLinear(missing)
	r.ListLinearMiss = c.ListSequential.Read() - r.ListLinear

	start = time.Now()
	arr.Sort()
	r.SortTime = time.Since(start)

	start = time.Now()
	for _, name := range names {
		if _, ok := arr.SearchBinary(name); !ok {
			return nil, fmt.Errorf("binary search missed %q after sort", name)
		}
	}
	r.ArrayBinaryTime = time.Since(start)
	r.ArrayBinary = c.ArrayBinary.Read()
	arr.SearchBinary(missing)
	r.ArrayBinaryMiss = c.ArrayBinary.Read() - r.ArrayBinary

	return r, nil
}

// Average returns total divided by the number of searched items.
func (r *BenchReport) Average(total int64) float64 {
	if r.N == 0 {
		return 0
	}
	return float64(total) / float64(r.N)
}
