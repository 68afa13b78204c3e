package trieset

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestSet_Mutators(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Name  string
		Init  []int
		Other []int
		Op    func(*Set[int], []int)
		Exp   []int
	}{
		{"union", []int{1, 2, 3}, []int{3, 4, 4, 5}, unionWith, []int{1, 2, 3, 4, 5}},
		{"union empty", []int{1, 2}, nil, unionWith, []int{1, 2}},
		{"intersect", []int{1, 2, 3, 4}, []int{2, 4, 6, 4}, intersectWith, []int{2, 4}},
		{"intersect empty other", []int{1, 2}, nil, intersectWith, []int{}},
		{"intersect empty self", nil, []int{1, 2}, intersectWith, []int{}},
		{"except", []int{1, 2, 3, 4}, []int{2, 4, 6}, exceptWith, []int{1, 3}},
		{"symmetric except", []int{1, 2, 3}, []int{3, 4, 4}, symmetricExceptWith, []int{1, 2, 4}},
		{"symmetric except empty self", nil, []int{5, 5}, symmetricExceptWith, []int{5}},
	} {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			t.Parallel()

			s := New(tcase.Init...)
			tcase.Op(s, tcase.Other)

			assert.Empty(t, cmp.Diff(tcase.Exp, s.Items(), sortInts, cmpopts.EquateEmpty()))
			assert.Equal(t, len(tcase.Exp), s.Count())
			assert.Equal(t, int64(len(tcase.Exp)), s.SlowCount())
		})
	}
}

func TestSet_Predicates(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Init  []int
		Other []int

		Subset, Superset, ProperSubset, ProperSuperset, Overlaps, Equals bool
	}{
		{[]int{1, 2}, []int{1, 2, 3}, true, false, true, false, true, false},
		{[]int{1, 2, 3}, []int{1, 2}, false, true, false, true, true, false},
		{[]int{1, 2}, []int{2, 1, 1, 2}, true, true, false, false, true, true},
		{[]int{1, 2}, []int{3, 4}, false, false, false, false, false, false},
		{[]int{1, 2}, []int{2, 3}, false, false, false, false, true, false},
		{nil, nil, true, true, false, false, false, true},
		{nil, []int{1}, true, false, true, false, false, false},
		{[]int{1}, nil, false, true, false, true, false, false},
	} {
		var (
			s     = New(tcase.Init...)
			other = slices.Values(tcase.Other)
			msg   = []any{"%v vs %v", tcase.Init, tcase.Other}
		)

		assert.Equal(t, tcase.Subset, s.IsSubsetOf(other), msg...)
		assert.Equal(t, tcase.Superset, s.IsSupersetOf(other), msg...)
		assert.Equal(t, tcase.ProperSubset, s.IsProperSubsetOf(other), msg...)
		assert.Equal(t, tcase.ProperSuperset, s.IsProperSupersetOf(other), msg...)
		assert.Equal(t, tcase.Overlaps, s.Overlaps(other), msg...)
		assert.Equal(t, tcase.Equals, s.SetEquals(other), msg...)
	}
}

func TestSet_AlgebraWithItself(t *testing.T) {
	t.Parallel()

	items := seq(0, 500)

	s := New(items...)
	s.UnionWith(s.All())
	assert.Equal(t, 500, s.Count())

	s.IntersectWith(s.All())
	assert.Equal(t, 500, s.Count())

	assert.True(t, s.SetEquals(s.All()))
	assert.True(t, s.IsSubsetOf(s.All()))
	assert.True(t, s.IsSupersetOf(s.All()))
	assert.False(t, s.IsProperSubsetOf(s.All()))
	assert.False(t, s.IsProperSupersetOf(s.All()))
	assert.True(t, s.Overlaps(s.All()))

	s.SymmetricExceptWith(s.All())
	assert.True(t, s.Empty())

	s.UnionWith(slices.Values(items))
	s.ExceptWith(s.All())
	assert.True(t, s.Empty())
	assert.Zero(t, s.SlowCount())
}

func unionWith(s *Set[int], other []int)           { s.UnionWith(slices.Values(other)) }
func intersectWith(s *Set[int], other []int)       { s.IntersectWith(slices.Values(other)) }
func exceptWith(s *Set[int], other []int)          { s.ExceptWith(slices.Values(other)) }
func symmetricExceptWith(s *Set[int], other []int) { s.SymmetricExceptWith(slices.Values(other)) }
