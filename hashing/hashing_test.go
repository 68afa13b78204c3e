package hashing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type point struct{ X, Y int }

func TestDefault_String(t *testing.T) {
	t.Parallel()

	cmp := Default[string]()

	assert.Equal(t, String("abc"), cmp.Hash("abc"))
	assert.Equal(t, cmp.Hash("abc"), cmp.Hash(string([]byte{'a', 'b', 'c'})))
	assert.NotEqual(t, cmp.Hash("abc"), cmp.Hash("abd"))
	assert.True(t, cmp.Equal("abc", "abc"))
	assert.False(t, cmp.Equal("abc", "ABC"))
}

func TestDefault_Integers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Uint64(7), Default[int]().Hash(7))
	assert.Equal(t, Uint64(7), Default[int64]().Hash(7))
	assert.Equal(t, Uint64(7), Default[uint64]().Hash(7))
	assert.Equal(t, Uint32(7), Default[int32]().Hash(7))
	assert.Equal(t, Uint32(7), Default[uint8]().Hash(7))
	assert.Equal(t, Uint32(0xFFFF_FFFF), Default[int32]().Hash(-1))

	cmp := Default[int]()
	seen := map[uint32]struct{}{}

	for i := 0; i < 1000; i++ {
		seen[cmp.Hash(i)] = struct{}{}
	}

	assert.Len(t, seen, 1000, "sequential ints should not collide")
}

func TestDefault_Struct(t *testing.T) {
	t.Parallel()

	cmp := Default[point]()

	assert.Equal(t, cmp.Hash(point{1, 2}), cmp.Hash(point{1, 2}))
	assert.True(t, cmp.Equal(point{1, 2}, point{1, 2}))
	assert.False(t, cmp.Equal(point{1, 2}, point{2, 1}))
}

func TestBytes(t *testing.T) {
	t.Parallel()

	cmp := Bytes()

	assert.Equal(t, String("hello"), cmp.Hash([]byte("hello")))
	assert.True(t, cmp.Equal([]byte("hello"), []byte("hello")))
	assert.False(t, cmp.Equal([]byte("hello"), []byte("hell")))
}

func TestNew(t *testing.T) {
	t.Parallel()

	cmp := New(
		func(v int) uint32 { return uint32(v) & 0xF },
		func(a, b int) bool { return a == b },
	)

	assert.Equal(t, uint32(0x3), cmp.Hash(0x13))
	assert.True(t, cmp.Equal(5, 5))
	assert.Equal(t, Strings().Hash("x"), String("x"))
}

func TestFold(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(0), Fold(0))
	assert.Equal(t, uint32(0xFFFF_FFFF), Fold(0x0000_0000_FFFF_FFFF))
	assert.Equal(t, uint32(0), Fold(0xFFFF_FFFF_FFFF_FFFF))
	assert.Equal(t, uint32(0x1234_5678^0x9ABC_DEF0), Fold(0x9ABC_DEF0_1234_5678))
}
