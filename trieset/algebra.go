package trieset

import "iter"

// Bulk operations are built from single-item calls. They are not atomic:
// concurrent updates may be observed partially.

// collect returns the distinct items of seq as a set using the same comparer.
func (s *Set[T]) collect(seq iter.Seq[T]) *Set[T] {
	other := NewWithComparer(s.cmp)
	other.AddRange(seq)

	return other
}

func every[T any](seq iter.Seq[T], pred func(T) bool) bool {
	for item := range seq {
		if !pred(item) {
			return false
		}
	}

	return true
}

// UnionWith adds every item of other.
func (s *Set[T]) UnionWith(other iter.Seq[T]) {
	s.AddRange(other)
}

// IntersectWith removes the items that are not in other.
func (s *Set[T]) IntersectWith(other iter.Seq[T]) {
	if s.Empty() {
		return
	}

	keep := s.collect(other)
	if keep.Empty() {
		s.Clear()
		return
	}

	for item := range s.All() {
		if !keep.Contains(item) {
			s.Remove(item)
		}
	}
}

// ExceptWith removes every item of other.
func (s *Set[T]) ExceptWith(other iter.Seq[T]) {
	s.RemoveRange(other)
}

// SymmetricExceptWith keeps the items that are in s or in other but not in
// both.
func (s *Set[T]) SymmetricExceptWith(other iter.Seq[T]) {
	for item := range s.collect(other).All() {
		if !s.Remove(item) {
			s.Add(item)
		}
	}
}

// IsSubsetOf tells if every item of s is in other.
func (s *Set[T]) IsSubsetOf(other iter.Seq[T]) bool {
	return every(s.All(), s.collect(other).Contains)
}

// IsSupersetOf tells if every item of other is in s.
func (s *Set[T]) IsSupersetOf(other iter.Seq[T]) bool {
	return every(other, s.Contains)
}

// IsProperSubsetOf tells if s is a subset of other and other has more items.
func (s *Set[T]) IsProperSubsetOf(other iter.Seq[T]) bool {
	o := s.collect(other)
	return s.LongCount() < o.LongCount() && every(s.All(), o.Contains)
}

// IsProperSupersetOf tells if s is a superset of other and has more items.
func (s *Set[T]) IsProperSupersetOf(other iter.Seq[T]) bool {
	o := s.collect(other)
	return o.LongCount() < s.LongCount() && every(o.All(), s.Contains)
}

// Overlaps tells if s and other share at least one item.
func (s *Set[T]) Overlaps(other iter.Seq[T]) bool {
	return !every(other, func(item T) bool { return !s.Contains(item) })
}

// SetEquals tells if s and other hold the same distinct items.
func (s *Set[T]) SetEquals(other iter.Seq[T]) bool {
	o := s.collect(other)
	return s.LongCount() == o.LongCount() && every(o.All(), s.Contains)
}
