package store

import (
	"iter"

	"github.com/jacksmith/bag/internal/model"
	"github.com/jacksmith/bag/internal/stats"
)

// Node is one element of a LinkedStore. Each node owns its successor.
type Node struct {
	item model.Item
	next *Node
}

// Item returns the node's item.
func (n *Node) Item() model.Item {
	return n.item
}

// Allocator creates the node for a new item.
type Allocator func(item model.Item) (*Node, error)

func defaultAllocator(item model.Item) (*Node, error) {
	return &Node{item: item}, nil
}

// LinkedStore is an unbounded singly linked store.
// New names are added at the head, so iteration is most-recent first.
type LinkedStore struct {
	head     *Node
	size     int
	alloc    Allocator
	counters *stats.Counters
}

// LinkedOption configures a LinkedStore.
type LinkedOption func(*LinkedStore)

// WithAllocator replaces the node allocator.
func WithAllocator(a Allocator) LinkedOption {
	return func(s *LinkedStore) {
		s.alloc = a
	}
}

// NewLinkedStore returns an empty LinkedStore that records comparisons in c.
// A nil c gives the store its own counters.
func NewLinkedStore(c *stats.Counters, opts ...LinkedOption) *LinkedStore {
	if c == nil {
		c = stats.New()
	}
	s := &LinkedStore{alloc: defaultAllocator, counters: c}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Kind returns KindList.
func (s *LinkedStore) Kind() Kind {
	return KindList
}

// Len returns the number of nodes.
func (s *LinkedStore) Len() int {
	return s.size
}

// Empty reports whether the store holds no items.
func (s *LinkedStore) Empty() bool {
	return s.head == nil
}

// Insert adds its quantity to the node with the same name, or prepends a new
// node. If the allocator fails the store is unchanged and an
// *AllocationError is returned.
func (s *LinkedStore) Insert(item model.Item) (Result, error) {
	if n, ok := s.SearchLinear(item.Name); ok {
		n.item.Quantity += item.Quantity
		return Updated, nil
	}

	n, err := s.alloc(item)
	if err != nil || n == nil {
		return 0, &AllocationError{Name: item.Name, Err: err}
	}
	n.item = item
	n.next = s.head
	s.head = n
	s.size++
	return Inserted, nil
}

// Remove unlinks the node with the given name.
func (s *LinkedStore) Remove(name string) error {
	var prev *Node
	for curr := s.head; curr != nil; curr = curr.next {
		s.counters.ListSequential.Increment()
		if curr.item.Name != name {
			prev = curr
			continue
		}
		if prev == nil {
			s.head = curr.next
		} else {
			prev.next = curr.next
		}
		curr.next = nil
		s.size--
		return nil
	}
	return &NotFoundError{Store: KindList, Name: name}
}

// List yields items from head to tail.
func (s *LinkedStore) List() iter.Seq[model.Item] {
	return func(yield func(model.Item) bool) {
		for curr := s.head; curr != nil; curr = curr.next {
			if !yield(curr.item) {
				return
			}
		}
	}
}

// Find returns the item with the given name.
func (s *LinkedStore) Find(name string) (model.Item, bool) {
	n, ok := s.SearchLinear(name)
	if !ok {
		return model.Item{}, false
	}
	return n.item, true
}

// SearchLinear walks from the head and returns the node holding name.
func (s *LinkedStore) SearchLinear(name string) (*Node, bool) {
	for curr := s.head; curr != nil; curr = curr.next {
		s.counters.ListSequential.Increment()
		if curr.item.Name == name {
			return curr, true
		}
	}
	return nil, false
}

// Release unlinks every node. The store is empty afterwards and may be reused.
func (s *LinkedStore) Release() {
	curr := s.head
	for curr != nil {
		next := curr.next
		curr.next = nil
		curr = next
	}
	s.head = nil
	s.size = 0
}
