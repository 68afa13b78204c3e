package hashing

import "github.com/zeebo/xxh3"

// Uint32 mixes a 32-bit value with the SplitMix32 finalizer.
func Uint32(x uint32) uint32 {
	x += 0x9e3779b9
	x = (x ^ (x >> 16)) * 0x85ebca6b
	x = (x ^ (x >> 13)) * 0xc2b2ae35

	return x ^ (x >> 16)
}

// Uint64 mixes a 64-bit value with the SplitMix64 finalizer and folds it.
func Uint64(x uint64) uint32 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return Fold(x ^ (x >> 31))
}

// String hashes a string with xxh3 without converting it to bytes.
func String(s string) uint32 {
	return Fold(xxh3.HashString(s))
}

// Fold xors the two halves of a 64-bit hash.
func Fold(h uint64) uint32 {
	return uint32(h) ^ uint32(h>>32)
}
