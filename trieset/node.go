package trieset

import (
	"fmt"
	"unsafe"
)

const (
	hashBits = 32
	nibWidth = 4
	nibMask  = 1<<nibWidth - 1

	fanOut   = 1 << nibWidth         // children per interior node
	maxDepth = hashBits/nibWidth - 1 // the deepest interior node: 7

	leafCapacity = 32 // inline items per leaf; one bit each in a uint32
)

type nodeKind uint8

const (
	kindInterior nodeKind = iota + 1
	kindLeaf
)

// node is the common header of interiorNode and leafNode. It is always the
// first field so a *node can be converted back to its container.
type node[T any] struct {
	kind nodeKind
}

func (n *node[T]) isLeaf() bool {
	return n.kind == kindLeaf
}

func (n *node[T]) leaf() *leafNode[T] {
	if n.kind != kindLeaf {
		unreachable(n)
	}

	return (*leafNode[T])(unsafe.Pointer(n))
}

func (n *node[T]) interior() *interiorNode[T] {
	if n.kind != kindInterior {
		unreachable(n)
	}

	return (*interiorNode[T])(unsafe.Pointer(n))
}

func unreachable[T any](n *node[T]) {
	panic(fmt.Sprintf("trieset: unreachable node kind %d", n.kind))
}

// findOptions selects what find does with a matching or missing item.
type findOptions uint8

const (
	findCreate findOptions = 1 << iota
	findReplace
	findRemove

	findNone findOptions = 0
)

type findResult uint8

const (
	resultNotFound findResult = iota
	resultFound
	resultCreated
	resultReplaced
	resultRemoved
)

func (r findResult) String() string {
	switch r {
	case resultNotFound:
		return "NotFound"
	case resultFound:
		return "Found"
	case resultCreated:
		return "Created"
	case resultReplaced:
		return "Replaced"
	case resultRemoved:
		return "Removed"
	}

	return fmt.Sprintf("findResult(%d)", uint8(r))
}

// findAction is called under the leaf lock once find has a result.
// entry points at the stored item for Found and Created, at a copy of the
// previous item for Replaced and Removed, and is nil for NotFound.
type findAction[T any] func(result findResult, entry *T)
