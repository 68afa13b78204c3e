package trieset

import (
	"errors"
	"fmt"
	"iter"

	"github.com/aglyzov/go-cds/counter"
	"github.com/aglyzov/go-cds/hashing"
)

// ErrDuplicate is returned by Insert when an equal item is already present.
var ErrDuplicate = errors.New("trieset: duplicate item")

// Set is a concurrent set. All methods are safe for concurrent use except
// ClearAndTrim.
type Set[T any] struct {
	root  *interiorNode[T]
	cmp   hashing.Comparer[T]
	count *counter.Counter
}

// New creates a Set with the default comparer for T and adds items to it.
func New[T comparable](items ...T) *Set[T] {
	return NewWithComparer(hashing.Default[T](), items...)
}

// NewWithComparer creates a Set that hashes and compares items with cmp.
func NewWithComparer[T any](cmp hashing.Comparer[T], items ...T) *Set[T] {
	s := &Set[T]{
		root:  newInterior[T](0),
		cmp:   cmp,
		count: counter.New(),
	}

	for _, item := range items {
		s.Add(item)
	}

	return s
}

// Comparer returns the comparer the set was created with.
func (s *Set[T]) Comparer() hashing.Comparer[T] {
	return s.cmp
}

// find retries from the root until the walk completes.
func (s *Set[T]) find(item T, opts findOptions, action findAction[T]) (findResult, T) {
	hash := s.cmp.Hash(item)

	for {
		res, val, done := s.root.find(item, hash, s.cmp, opts, action)
		if done {
			switch res {
			case resultCreated:
				s.count.IncrementHash(hash)
			case resultRemoved:
				s.count.DecrementHash(hash)
			}

			return res, val
		}
	}
}

// Contains tells if an equal item is in the set.
func (s *Set[T]) Contains(item T) bool {
	res, _ := s.find(item, findNone, nil)
	return res == resultFound
}

// Add adds the item. It returns false if an equal item was already present.
func (s *Set[T]) Add(item T) bool {
	res, _ := s.find(item, findCreate, nil)
	return res == resultCreated
}

// Insert adds the item or returns ErrDuplicate.
func (s *Set[T]) Insert(item T) error {
	if !s.Add(item) {
		return fmt.Errorf("%w: %v", ErrDuplicate, item)
	}

	return nil
}

// Remove removes the item. It returns false if the item was not present.
func (s *Set[T]) Remove(item T) bool {
	res, _ := s.find(item, findRemove, nil)
	return res == resultRemoved
}

// GetOrAdd returns the stored item equal to item, adding item first if
// there is none.
func (s *Set[T]) GetOrAdd(item T) T {
	var stored T

	s.find(item, findCreate, func(_ findResult, entry *T) {
		stored = *entry
	})

	return stored
}

// Lookup returns the stored item equal to item.
func (s *Set[T]) Lookup(item T) (T, bool) {
	res, val := s.find(item, findNone, nil)
	return val, res == resultFound
}

// Replace swaps the stored item equal to item for item itself and returns
// the previous one. It does nothing if no equal item is stored.
func (s *Set[T]) Replace(item T) (T, bool) {
	res, old := s.find(item, findReplace, nil)
	return old, res == resultReplaced
}

// AddRange adds all items and returns how many were new.
func (s *Set[T]) AddRange(items iter.Seq[T]) int {
	var n int

	for item := range items {
		if s.Add(item) {
			n++
		}
	}

	return n
}

// RemoveRange removes all items and returns how many were present.
func (s *Set[T]) RemoveRange(items iter.Seq[T]) int {
	var n int

	for item := range items {
		if s.Remove(item) {
			n++
		}
	}

	return n
}

// Count returns the exact number of items.
func (s *Set[T]) Count() int {
	return int(s.count.Count())
}

// LongCount returns the exact number of items as int64.
func (s *Set[T]) LongCount() int64 {
	return s.count.Count()
}

// EstimatedCount returns a cheap, possibly stale number of items.
func (s *Set[T]) EstimatedCount() int64 {
	return s.count.EstimatedCount()
}

// Empty tells if the set has no items.
func (s *Set[T]) Empty() bool {
	return s.count.Count() == 0
}

// Clear removes all items but keeps the trie structure for reuse.
// Adds racing with Clear are not lost.
func (s *Set[T]) Clear() {
	s.count.Sub(s.root.clear())
}

// ClearAndTrim drops the whole trie. Unlike Clear it is not safe for
// concurrent use.
func (s *Set[T]) ClearAndTrim() {
	s.root.clearAndTrim()
	s.count = counter.New()
}
