package store

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is.
var (
	ErrNotFound         = errors.New("item not found")
	ErrCapacityExceeded = errors.New("store is full")
	ErrAllocation       = errors.New("node allocation failed")
)

// NotFoundError indicates a name is not present in a store.
type NotFoundError struct {
	Store Kind   // the store that was searched
	Name  string // the name that was not found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item %q not found in %s", e.Name, e.Store)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// CapacityError indicates an insert into a full array store.
type CapacityError struct {
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("array is full (%d items), cannot insert", e.Capacity)
}

// Is reports whether target is ErrCapacityExceeded.
func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// AllocationError indicates a linked-store node could not be created.
type AllocationError struct {
	Name string // the item being inserted
	Err  error  // the allocator's error, if any
}

func (e *AllocationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot allocate node for %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("cannot allocate node for %q", e.Name)
}

// Is reports whether target is ErrAllocation.
func (e *AllocationError) Is(target error) bool {
	return target == ErrAllocation
}

func (e *AllocationError) Unwrap() error {
	return e.Err
}
