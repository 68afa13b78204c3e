// Package flatbuf defines a growable array-backed buffer with O(1) append,
// O(1) unordered removal and direct access to its elements by reference.
//
// A Buffer does no locking of its own; callers supply the discipline.
package flatbuf

const initialSize = 4

// Buffer is a flat list of items. Removal swaps the last item into the
// freed position, so the order of items is not preserved.
type Buffer[T any] struct {
	items []T
}

// New returns an empty Buffer with room for capacity items.
func New[T any](capacity int) *Buffer[T] {
	return &Buffer[T]{items: make([]T, 0, capacity)}
}

// Len returns the number of items in the buffer.
func (b *Buffer[T]) Len() int {
	return len(b.items)
}

// Add appends an item doubling the backing array when it is full.
func (b *Buffer[T]) Add(item T) {
	if n := len(b.items); n == cap(b.items) {
		grown := make([]T, n, max(initialSize, 2*n))
		copy(grown, b.items)
		b.items = grown
	}

	b.items = append(b.items, item)
}

// At returns a pointer to the item at index i.
// The pointer is valid until the next Add, RemoveAt or Clear.
func (b *Buffer[T]) At(i int) *T {
	return &b.items[i]
}

// Last returns a pointer to the most recently appended item.
func (b *Buffer[T]) Last() *T {
	return &b.items[len(b.items)-1]
}

// RemoveAt removes the item at index i by moving the last item into its place.
func (b *Buffer[T]) RemoveAt(i int) {
	var (
		last = len(b.items) - 1
		zero T
	)

	b.items[i] = b.items[last]
	b.items[last] = zero // drop the reference
	b.items = b.items[:last]
}

// IndexOf returns the index of the first item equal to the given one or -1.
func (b *Buffer[T]) IndexOf(item T, equal func(a, b T) bool) int {
	for i := range b.items {
		if equal(item, b.items[i]) {
			return i
		}
	}

	return -1
}

// Slice exposes the live prefix of the backing array.
// The slice aliases the buffer and is invalidated by any mutation.
func (b *Buffer[T]) Slice() []T {
	return b.items
}

// Clear zeroes all items and sets the length to zero keeping the capacity.
func (b *Buffer[T]) Clear() {
	clear(b.items)
	b.items = b.items[:0]
}
