package trieset

import (
	"math/bits"
	"sync"

	"github.com/hideo55/go-popcount"

	"github.com/aglyzov/go-cds/flatbuf"
)

// leafNode holds up to leafCapacity items inline; anything beyond that goes
// to the overflow buffer. All methods expect mu held.
type leafNode[T any] struct {
	node[T]

	mu       sync.Mutex
	presence uint32
	slots    [leafCapacity]T
	overflow *flatbuf.Buffer[T]
}

func newLeaf[T any]() *leafNode[T] {
	return &leafNode[T]{node: node[T]{kind: kindLeaf}}
}

func (l *leafNode[T]) find(
	item T,
	equal func(a, b T) bool,
	opts findOptions,
	action findAction[T],
) (findResult, T) {
	var (
		zero T
		prev T
		live = l.presence
	)

	// inline slots, bounded by the lowest and highest set bits
	if live != 0 {
		last := leafCapacity - bits.LeadingZeros32(live)

		for i := bits.TrailingZeros32(live); i < last; i++ {
			if live&(1<<i) == 0 {
				continue
			}

			entry := &l.slots[i]
			if !equal(item, *entry) {
				continue
			}

			prev = *entry

			switch {
			case opts&findReplace != 0:
				*entry = item
				return run(action, resultReplaced, &prev), prev
			case opts&findRemove != 0:
				l.presence = live &^ (1 << i)
				*entry = zero
				return run(action, resultRemoved, &prev), prev
			}

			return run(action, resultFound, entry), prev
		}
	}

	// overflow
	if l.overflow != nil {
		if i := l.overflow.IndexOf(item, equal); i >= 0 {
			entry := l.overflow.At(i)
			prev = *entry

			switch {
			case opts&findReplace != 0:
				*entry = item
				return run(action, resultReplaced, &prev), prev
			case opts&findRemove != 0:
				l.overflow.RemoveAt(i)
				return run(action, resultRemoved, &prev), prev
			}

			return run(action, resultFound, entry), prev
		}
	}

	if opts&findCreate == 0 {
		return run(action, resultNotFound, nil), zero
	}

	// first free inline slot
	if i := bits.TrailingZeros32(^live); i < leafCapacity {
		l.presence = live | 1<<i
		l.slots[i] = item
		return run(action, resultCreated, &l.slots[i]), zero
	}

	if l.overflow == nil {
		l.overflow = flatbuf.New[T](0)
	}

	l.overflow.Add(item)

	return run(action, resultCreated, l.overflow.Last()), zero
}

func run[T any](action findAction[T], res findResult, entry *T) findResult {
	if action != nil {
		action(res, entry)
	}

	return res
}

// countFast is the number of inline items; overflow is not included.
func (l *leafNode[T]) countFast() int {
	return int(popcount.Count(uint64(l.presence)))
}

func (l *leafNode[T]) count() int64 {
	n := int64(l.countFast())
	if l.overflow != nil {
		n += int64(l.overflow.Len())
	}

	return n
}

// clear empties the leaf in place, keeping the overflow buffer for reuse.
// It returns the number of items removed.
func (l *leafNode[T]) clear() int64 {
	n := l.count()

	if l.presence != 0 {
		l.presence = 0
		clear(l.slots[:])
	}

	if l.overflow != nil {
		l.overflow.Clear()
	}

	return n
}

// copyTo appends the live items to buf: inline slots in ascending order,
// then overflow in storage order.
func (l *leafNode[T]) copyTo(buf *flatbuf.Buffer[T]) {
	for live := l.presence; live != 0; live &= live - 1 {
		buf.Add(l.slots[bits.TrailingZeros32(live)])
	}

	if l.overflow != nil {
		for _, item := range l.overflow.Slice() {
			buf.Add(item)
		}
	}
}
