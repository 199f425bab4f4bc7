package store

import (
	"iter"

	"github.com/jacksmith/bag/internal/model"
	"github.com/jacksmith/bag/internal/stats"
)

// ArrayCapacity is the fixed number of slots in an ArrayStore.
const ArrayCapacity = 100

// ArrayStore is a bounded sequential store.
// Items keep insertion order until Sort is called.
type ArrayStore struct {
	items    [ArrayCapacity]model.Item
	size     int
	sorted   bool
	counters *stats.Counters
}

// NewArrayStore returns an empty ArrayStore that records comparisons in c.
// A nil c gives the store its own counters.
func NewArrayStore(c *stats.Counters) *ArrayStore {
	if c == nil {
		c = stats.New()
	}
	return &ArrayStore{counters: c}
}

// Initialize empties the store.
func (s *ArrayStore) Initialize() {
	s.items = [ArrayCapacity]model.Item{}
	s.size = 0
	s.sorted = false
}

// Kind returns KindArray.
func (s *ArrayStore) Kind() Kind {
	return KindArray
}

// Len returns the number of stored items.
func (s *ArrayStore) Len() int {
	return s.size
}

// Cap returns the fixed capacity.
func (s *ArrayStore) Cap() int {
	return ArrayCapacity
}

// Empty reports whether the store holds no items.
func (s *ArrayStore) Empty() bool {
	return s.size == 0
}

// Sorted reports whether the items are known to be in name order, i.e. Sort
// was called and no item has been added or removed since.
// SearchBinary does not check this; it is exposed so callers can.
func (s *ArrayStore) Sorted() bool {
	return s.sorted
}

// At returns the item at index i.
func (s *ArrayStore) At(i int) (model.Item, bool) {
	if i < 0 || i >= s.size {
		return model.Item{}, false
	}
	return s.items[i], true
}

// Insert adds item, or adds its quantity to the entry with the same name.
// A full store returns a *CapacityError and is left unchanged.
func (s *ArrayStore) Insert(item model.Item) (Result, error) {
	if idx, ok := s.SearchLinear(item.Name); ok {
		s.items[idx].Quantity += item.Quantity
		return Updated, nil
	}
	if s.size >= ArrayCapacity {
		return 0, &CapacityError{Capacity: ArrayCapacity}
	}
	s.items[s.size] = item
	s.size++
	s.sorted = false
	return Inserted, nil
}

// Remove deletes the item with the given name, shifting later items left.
func (s *ArrayStore) Remove(name string) error {
	idx, ok := s.SearchLinear(name)
	if !ok {
		return &NotFoundError{Store: KindArray, Name: name}
	}
	copy(s.items[idx:s.size-1], s.items[idx+1:s.size])
	s.size--
	s.items[s.size] = model.Item{}
	s.sorted = false
	return nil
}

// List yields the items in their current order.
func (s *ArrayStore) List() iter.Seq[model.Item] {
	return func(yield func(model.Item) bool) {
		for i := 0; i < s.size; i++ {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// Find returns the item with the given name using a linear search.
func (s *ArrayStore) Find(name string) (model.Item, bool) {
	idx, ok := s.SearchLinear(name)
	if !ok {
		return model.Item{}, false
	}
	return s.items[idx], true
}

// SearchLinear scans from the first item and returns the index of name.
func (s *ArrayStore) SearchLinear(name string) (int, bool) {
	idx := linearScan(s.size, s.nameAt, name, &s.counters.ArraySequential)
	return idx, idx >= 0
}

// Sort orders the items by name using selection sort.
func (s *ArrayStore) Sort() {
	selectionSort(s.items[:s.size])
	s.sorted = true
}

// SearchBinary returns the index of name using binary search.
// The result is only meaningful if the store is sorted; see Sorted.
func (s *ArrayStore) SearchBinary(name string) (int, bool) {
	idx := binarySearch(s.size, s.nameAt, name, &s.counters.ArrayBinary)
	return idx, idx >= 0
}

func (s *ArrayStore) nameAt(i int) string {
	return s.items[i].Name
}
