// Package hashing defines the hash/equality contract used by the
// concurrent containers together with a few ready-made implementations.
package hashing

import (
	"bytes"
	"hash/maphash"

	"github.com/zeebo/xxh3"
)

// Comparer hashes and compares items. Hash must be stable for an item for
// as long as it is stored, and equal items must have equal hashes.
type Comparer[T any] interface {
	Hash(item T) uint32
	Equal(a, b T) bool
}

type funcs[T any] struct {
	hash  func(T) uint32
	equal func(a, b T) bool
}

func (f funcs[T]) Hash(item T) uint32 { return f.hash(item) }
func (f funcs[T]) Equal(a, b T) bool  { return f.equal(a, b) }

// New returns a Comparer built from a pair of functions.
func New[T any](hash func(T) uint32, equal func(a, b T) bool) Comparer[T] {
	return funcs[T]{hash: hash, equal: equal}
}

// Strings returns a Comparer for strings based on xxh3.
func Strings() Comparer[string] {
	return funcs[string]{hash: String, equal: equal[string]}
}

// Bytes returns a Comparer for byte slices based on xxh3.
func Bytes() Comparer[[]byte] {
	return funcs[[]byte]{
		hash:  func(b []byte) uint32 { return Fold(xxh3.Hash(b)) },
		equal: bytes.Equal,
	}
}

// Default returns a Comparer using == for equality. Strings are hashed with
// xxh3, integers with a SplitMix finalizer and everything else with
// hash/maphash under a random per-comparer seed.
func Default[T comparable]() Comparer[T] {
	var zero T

	switch any(zero).(type) {
	case string:
		return funcs[T]{hash: func(v T) uint32 { return String(any(v).(string)) }, equal: equal[T]}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return funcs[T]{hash: integer[T], equal: equal[T]}
	}

	seed := maphash.MakeSeed()

	return funcs[T]{
		hash:  func(v T) uint32 { return Fold(maphash.Comparable(seed, v)) },
		equal: equal[T],
	}
}

func equal[T comparable](a, b T) bool {
	return a == b
}

func integer[T comparable](v T) uint32 {
	switch x := any(v).(type) {
	case int:
		return Uint64(uint64(x))
	case int8:
		return Uint32(uint32(x))
	case int16:
		return Uint32(uint32(x))
	case int32:
		return Uint32(uint32(x))
	case int64:
		return Uint64(uint64(x))
	case uint:
		return Uint64(uint64(x))
	case uint8:
		return Uint32(uint32(x))
	case uint16:
		return Uint32(uint32(x))
	case uint32:
		return Uint32(x)
	case uint64:
		return Uint64(x)
	case uintptr:
		return Uint64(uint64(x))
	}

	panic("hashing: not an integer")
}
