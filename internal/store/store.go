// Package store provides the two inventory containers: a bounded array and
// an unbounded singly linked list.
//
// Both stores key items by name, merge quantities when a name is inserted
// twice, and count the comparisons their searches perform in a
// stats.Counters owned by the caller.
package store

import (
	"iter"
	"strings"

	"github.com/jacksmith/bag/internal/model"
	"github.com/jacksmith/bag/internal/stats"
)

// Kind identifies a store representation.
type Kind string

const (
	KindArray Kind = "array"
	KindList  Kind = "list"
)

// Result reports what a successful insert did.
type Result int

const (
	// Inserted means a new entry was added.
	Inserted Result = iota + 1
	// Updated means an existing entry's quantity was increased.
	Updated
)

func (r Result) String() string {
	switch r {
	case Inserted:
		return "inserted"
	case Updated:
		return "updated"
	default:
		return "unknown"
	}
}

// Store is the contract shared by both representations.
type Store interface {
	Kind() Kind
	Insert(item model.Item) (Result, error)
	Remove(name string) error
	Find(name string) (model.Item, bool)
	List() iter.Seq[model.Item]
	Len() int
	Empty() bool
}

var (
	_ Store = (*ArrayStore)(nil)
	_ Store = (*LinkedStore)(nil)
)

// compareNames orders names byte-wise.
func compareNames(a, b string) int {
	return strings.Compare(a, b)
}

// linearScan returns the first index in [0, n) whose name equals name, or -1.
// It counts one comparison per element examined.
func linearScan(n int, nameAt func(int) string, name string, c *stats.Counter) int {
	for i := 0; i < n; i++ {
		c.Increment()
		if nameAt(i) == name {
			return i
		}
	}
	return -1
}

// binarySearch returns the index in [0, n) whose name equals name, or -1.
// The names must be in ascending order. It counts one comparison per midpoint.
func binarySearch(n int, nameAt func(int) string, name string, c *stats.Counter) int {
	left, right := 0, n-1
	for left <= right {
		mid := left + (right-left)/2
		c.Increment()
		switch cmp := compareNames(nameAt(mid), name); {
		case cmp == 0:
			return mid
		case cmp < 0:
			left = mid + 1
		default:
			right = mid - 1
		}
	}
	return -1
}

// selectionSort orders items ascending by name. Comparisons are not counted.
func selectionSort(items []model.Item) {
	for i := 0; i < len(items)-1; i++ {
		minIdx := i
		for j := i + 1; j < len(items); j++ {
			if compareNames(items[j].Name, items[minIdx].Name) < 0 {
				minIdx = j
			}
		}
		if minIdx != i {
			items[i], items[minIdx] = items[minIdx], items[i]
		}
	}
}
