package trieset

import (
	"iter"

	"github.com/aglyzov/go-cds/flatbuf"
)

// walk visits leaves depth first in ascending child order and stops when
// visit returns false. visit is called without the leaf lock.
func (s *Set[T]) walk(visit func(*leafNode[T]) bool) bool {
	stack := make([]*node[T], 1, 2*fanOut)
	stack[0] = &s.root.node

	for len(stack) != 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.isLeaf() {
			if !visit(n.leaf()) {
				return false
			}
			continue
		}

		in := n.interior()
		for i := fanOut - 1; i >= 0; i-- {
			if child := in.children[i].Load(); child != nil {
				stack = append(stack, child)
			}
		}
	}

	return true
}

// All returns an iterator over the items. Each leaf is copied under its
// lock and yielded after the lock is released: items of one leaf reflect a
// single instant, different leaves may not.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		buf := flatbuf.New[T](leafCapacity)

		s.walk(func(leaf *leafNode[T]) bool {
			buf.Clear()

			leaf.mu.Lock()
			leaf.copyTo(buf)
			leaf.mu.Unlock()

			for _, item := range buf.Slice() {
				if !yield(item) {
					return false
				}
			}

			return true
		})
	}
}

// Items returns all items in iteration order.
func (s *Set[T]) Items() []T {
	items := make([]T, 0, max(0, s.Count()))

	for item := range s.All() {
		items = append(items, item)
	}

	return items
}

// SlowCount counts the items by walking the whole trie.
func (s *Set[T]) SlowCount() int64 {
	var n int64

	s.walk(func(leaf *leafNode[T]) bool {
		leaf.mu.Lock()
		n += leaf.count()
		leaf.mu.Unlock()

		return true
	})

	return n
}
