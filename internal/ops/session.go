// Package ops implements the inventory operations offered by bag.
//
// A Session owns one store of each kind and the comparison counters they
// share. Search and sort operations are timed; timings are informational and
// never influence results.
package ops

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jacksmith/bag/internal/model"
	"github.com/jacksmith/bag/internal/stats"
	"github.com/jacksmith/bag/internal/store"
)

// Session holds the state of one interactive run.
type Session struct {
	ID       string
	Array    *store.ArrayStore
	List     *store.LinkedStore
	Counters *stats.Counters

	logger *zap.Logger
}

// NewSession creates empty stores sharing a fresh set of counters.
func NewSession(logger *zap.Logger, opts ...store.LinkedOption) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	counters := stats.New()
	return &Session{
		ID:       id,
		Array:    store.NewArrayStore(counters),
		List:     store.NewLinkedStore(counters, opts...),
		Counters: counters,
		logger:   logger.With(zap.String("session", id)),
	}
}

// Store returns the store of the given kind.
func (s *Session) Store(kind store.Kind) (store.Store, error) {
	switch kind {
	case store.KindArray:
		return s.Array, nil
	case store.KindList:
		return s.List, nil
	default:
		return nil, fmt.Errorf("unknown store %q", kind)
	}
}

// Insert adds item to the store of the given kind.
func (s *Session) Insert(kind store.Kind, item model.Item) (store.Result, error) {
	st, err := s.Store(kind)
	if err != nil {
		return 0, err
	}
	res, err := st.Insert(item)
	if err != nil {
		s.logger.Info("insert rejected", zap.String("store", string(kind)),
			zap.String("name", item.Name), zap.Error(err))
		return 0, err
	}
	s.logger.Debug("item "+res.String(), zap.String("store", string(kind)),
		zap.String("name", item.Name), zap.Int("quantity", item.Quantity))
	return res, nil
}

// Remove deletes the named item from the store of the given kind.
func (s *Session) Remove(kind store.Kind, name string) error {
	st, err := s.Store(kind)
	if err != nil {
		return err
	}
	if err := st.Remove(name); err != nil {
		s.logger.Info("remove failed", zap.String("store", string(kind)),
			zap.String("name", name), zap.Error(err))
		return err
	}
	s.logger.Debug("item removed", zap.String("store", string(kind)), zap.String("name", name))
	return nil
}

// Items returns the contents of the store of the given kind in store order.
func (s *Session) Items(kind store.Kind) ([]model.Item, error) {
	st, err := s.Store(kind)
	if err != nil {
		return nil, err
	}
	return slices.Collect(st.List()), nil
}

// Seed inserts the sample inventory into both stores.
func (s *Session) Seed() error {
	var errs []error
	for _, it := range model.SampleItems() {
		if _, err := s.Array.Insert(it); err != nil {
			errs = append(errs, err)
		}
		if _, err := s.List.Insert(it); err != nil {
			errs = append(errs, err)
		}
	}
	s.logger.Debug("sample inventory loaded",
		zap.Int("array_len", s.Array.Len()), zap.Int("list_len", s.List.Len()))
	return errors.Join(errs...)
}

// ResetCounters zeroes all comparison counters.
func (s *Session) ResetCounters() {
	s.Counters.ResetAll()
	s.logger.Debug("counters reset")
}

// Close releases the linked store and flushes the logger.
func (s *Session) Close() {
	s.List.Release()
	_ = s.logger.Sync()
}

// SearchResult is the outcome of a timed search.
type SearchResult struct {
	Item  model.Item
	Index int // position in the array store, -1 for the list store or a miss
	Found bool

	// Elapsed is the wall time spent in the search.
	Elapsed time.Duration
	// Comparisons is the search's own comparison count.
	Comparisons int64
	// Total is the algorithm's accumulated counter after the search.
	Total int64
}

// SearchArrayLinear runs a linear search over the array store.
func (s *Session) SearchArrayLinear(name string) SearchResult {
	c := &s.Counters.ArraySequential
	before := c.Read()
	start := time.Now()
	idx, ok := s.Array.SearchLinear(name)
	res := s.arrayResult(idx, ok, time.Since(start), before, c)
	s.logSearch("array", "sequential", name, res)
	return res
}

// SearchArrayBinary runs a binary search over the array store.
// An unsorted store is searched anyway; the result may then be a false miss.
func (s *Session) SearchArrayBinary(name string) SearchResult {
	if !s.Array.Sorted() {
		s.logger.Warn("binary search on unsorted array", zap.String("name", name))
	}
	c := &s.Counters.ArrayBinary
	before := c.Read()
	start := time.Now()
	idx, ok := s.Array.SearchBinary(name)
	res := s.arrayResult(idx, ok, time.Since(start), before, c)
	s.logSearch("array", "binary", name, res)
	return res
}

// SearchList runs a linear search over the linked store.
func (s *Session) SearchList(name string) SearchResult {
	c := &s.Counters.ListSequential
	before := c.Read()
	start := time.Now()
	node, ok := s.List.SearchLinear(name)
	elapsed := time.Since(start)

	res := SearchResult{Index: -1, Found: ok, Elapsed: elapsed,
		Comparisons: c.Read() - before, Total: c.Read()}
	if ok {
		res.Item = node.Item()
	}
	s.logSearch("list", "sequential", name, res)
	return res
}

// SortArray sorts the array store by name and returns the time it took.
func (s *Session) SortArray() time.Duration {
	start := time.Now()
	s.Array.Sort()
	elapsed := time.Since(start)
	s.logger.Debug("array sorted", zap.Int("len", s.Array.Len()), zap.Duration("elapsed", elapsed))
	return elapsed
}

func (s *Session) arrayResult(idx int, ok bool, elapsed time.Duration, before int64, c *stats.Counter) SearchResult {
	res := SearchResult{Index: -1, Found: ok, Elapsed: elapsed,
		Comparisons: c.Read() - before, Total: c.Read()}
	if ok {
		res.Index = idx
		res.Item, _ = s.Array.At(idx)
	}
	return res
}

func (s *Session) logSearch(kind, algorithm, name string, res SearchResult) {
	s.logger.Debug("search",
		zap.String("store", kind),
		zap.String("algorithm", algorithm),
		zap.String("name", name),
		zap.Bool("found", res.Found),
		zap.Int64("comparisons", res.Comparisons),
		zap.Duration("elapsed", res.Elapsed),
	)
}
