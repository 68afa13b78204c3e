package trieset

import (
	"sync/atomic"

	"github.com/aglyzov/go-cds/flatbuf"
	"github.com/aglyzov/go-cds/hashing"
)

// interiorNode routes on a 4-bit slice of the hash. It is never locked:
// a child slot is filled once by CAS and overwritten only by promotion.
type interiorNode[T any] struct {
	node[T]

	depth    uint8
	children [fanOut]atomic.Pointer[node[T]]
}

func newInterior[T any](depth int) *interiorNode[T] {
	return &interiorNode[T]{
		node:  node[T]{kind: kindInterior},
		depth: uint8(depth),
	}
}

func (n *interiorNode[T]) index(hash uint32) int {
	return int(hash>>(nibWidth*uint32(n.depth))) & nibMask
}

// find walks down from n to the leaf responsible for hash and runs the leaf
// search there. done is false when the walk hit a stale slot or promoted a
// leaf; the caller must then restart from the root.
func (n *interiorNode[T]) find(
	item T,
	hash uint32,
	cmp hashing.Comparer[T],
	opts findOptions,
	action findAction[T],
) (res findResult, val T, done bool) {
	cur := n

	for {
		slot := &cur.children[cur.index(hash)]
		child := slot.Load()

		if child == nil {
			if opts&findCreate == 0 {
				return run(action, resultNotFound, nil), val, true
			}

			leaf := newLeaf[T]()
			if !slot.CompareAndSwap(nil, &leaf.node) {
				continue // lost the race: use the winner's node
			}

			child = &leaf.node
		}

		if !child.isLeaf() {
			cur = child.interior()
			continue
		}

		return cur.findLeaf(slot, child.leaf(), item, cmp, opts, action)
	}
}

func (n *interiorNode[T]) findLeaf(
	slot *atomic.Pointer[node[T]],
	leaf *leafNode[T],
	item T,
	cmp hashing.Comparer[T],
	opts findOptions,
	action findAction[T],
) (res findResult, val T, done bool) {
	leaf.mu.Lock()
	defer leaf.mu.Unlock()

	if slot.Load() != &leaf.node {
		return resultNotFound, val, false // promoted under us
	}

	if opts&findCreate != 0 && n.depth < maxDepth && leaf.countFast() == leafCapacity {
		slot.Store(&n.promote(leaf, cmp).node)
		return resultNotFound, val, false
	}

	res, val = leaf.find(item, cmp.Equal, opts, action)

	return res, val, true
}

// promote builds the interior node that replaces a full leaf.
// The caller holds the leaf lock.
func (n *interiorNode[T]) promote(leaf *leafNode[T], cmp hashing.Comparer[T]) *interiorNode[T] {
	var (
		next = newInterior[T](int(n.depth) + 1)
		buf  = flatbuf.New[T](leafCapacity)
	)

	leaf.copyTo(buf)

	for _, item := range buf.Slice() {
		hash := cmp.Hash(item)
		for {
			if _, _, done := next.find(item, hash, cmp, findCreate, nil); done {
				break
			}
		}
	}

	return next
}

// clear empties every reachable leaf in place and returns the number of
// items removed. A leaf is credited only if it is still linked from its
// slot once locked; a promoted leaf is skipped and its replacement visited.
func (n *interiorNode[T]) clear() int64 {
	var total int64

	for i := range n.children {
		slot := &n.children[i]

		for {
			child := slot.Load()
			if child == nil {
				break
			}

			if !child.isLeaf() {
				total += child.interior().clear()
				break
			}

			leaf := child.leaf()

			leaf.mu.Lock()
			if slot.Load() != child {
				leaf.mu.Unlock()
				continue
			}
			total += leaf.clear()
			leaf.mu.Unlock()

			break
		}
	}

	return total
}

// clearAndTrim detaches every child without locking, leaving the
// subtrees to the garbage collector. The caller must have exclusive access.
func (n *interiorNode[T]) clearAndTrim() {
	for i := range n.children {
		n.children[i].Store(nil)
	}
}
