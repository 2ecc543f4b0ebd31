// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/typeclass"
)

func TestTupleFunctor(t *testing.T) {
	xs := typeclass.MakeTuple(1, 2, 1)
	square := func(x int) int { return x * x }
	isOne := func(x int) bool { return x == 1 }
	addTen := func(x int) int { return x + 10 }

	tests := []struct {
		name string
		got  any
		want typeclass.Tuple
	}{
		{"transform", typeclass.Transform(xs, square), typeclass.Tuple{1, 4, 1}},
		{"adjust_if", typeclass.AdjustIf(xs, isOne, addTen), typeclass.Tuple{11, 2, 11}},
		{"adjust", typeclass.Adjust(xs, 2, addTen), typeclass.Tuple{1, 12, 1}},
		{"replace_if", typeclass.ReplaceIf(xs, isOne, 0), typeclass.Tuple{0, 2, 0}},
		{"replace", typeclass.Replace(xs, 2, "two"), typeclass.Tuple{1, "two", 1}},
		{"fill", typeclass.Fill(xs, "x"), typeclass.Tuple{"x", "x", "x"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got, tt.name)
	}
	// the input is never modified
	assert.Equal(t, typeclass.Tuple{1, 2, 1}, xs)
}

func TestTupleMonad(t *testing.T) {
	double := func(x int) int { return x * 2 }
	inc := func(x int) int { return x + 1 }
	assert.Equal(t, typeclass.Tuple{2, 4, 2, 3},
		typeclass.Ap(typeclass.MakeTuple(double, inc), typeclass.MakeTuple(1, 2)))
	assert.Equal(t, typeclass.Tuple{7}, typeclass.Lift(typeclass.TupleFamily.Tag(), 7))

	dup := func(x int) typeclass.Tuple { return typeclass.MakeTuple(x, x) }
	assert.Equal(t, typeclass.Tuple{1, 1, 2, 2}, typeclass.Chain(typeclass.MakeTuple(1, 2), dup))
	assert.Equal(t, typeclass.Tuple{1, 2, 3},
		typeclass.Flatten(typeclass.MakeTuple(typeclass.MakeTuple(1), typeclass.MakeTuple(2, 3))))
	assert.Equal(t, typeclass.Tuple{}, typeclass.Flatten(typeclass.MakeTuple()))
}

func TestTupleMonadPlus(t *testing.T) {
	assert.Equal(t, typeclass.Tuple{1, 2, 3}, typeclass.Concat(typeclass.MakeTuple(1), typeclass.MakeTuple(2, 3)))
	assert.Equal(t, typeclass.Tuple{}, typeclass.Empty(typeclass.TupleFamily.Tag()))
	assert.Equal(t, typeclass.Tuple{1, 2}, typeclass.Append(typeclass.MakeTuple(1), 2))
	assert.Equal(t, typeclass.Tuple{0, 1}, typeclass.Prepend(typeclass.MakeTuple(1), 0))
}

func TestTupleFoldable(t *testing.T) {
	xs := typeclass.MakeTuple("a", "b", "c")
	assert.Equal(t, 3, typeclass.Length(xs))
	assert.Equal(t, "((a)b)c", typeclass.FoldLeft(xs, "", func(acc, x string) string {
		if acc == "" {
			return x
		}
		return "(" + acc + ")" + x
	}))
	assert.Equal(t, "a(b(c))", typeclass.FoldRight(xs, "", func(x, acc string) string {
		if acc == "" {
			return x
		}
		return x + "(" + acc + ")"
	}))
	assert.Equal(t, 5, typeclass.FoldLeft1(typeclass.MakeTuple(10, 2, 3), func(a, b int) int { return a - b }))
	assert.Equal(t, "abc", typeclass.Unpack(xs, func(a, b, c string) string { return a + b + c }))
	assert.Equal(t, []any{"a", "b", "c"}, typeclass.Elements(xs))

	mustPanicMessage(t, "typeclass: fold_left1 on an empty structure", func() {
		typeclass.FoldLeft1(typeclass.MakeTuple(), func(a, b int) int { return a + b })
	})
}

func TestTupleSearchable(t *testing.T) {
	xs := typeclass.MakeTuple(1, "a", 2.5)
	isString := func(x any) bool { _, ok := x.(string); return ok }

	assert.True(t, typeclass.AnyOf(xs, isString))
	assert.False(t, typeclass.AllOf(xs, isString))
	assert.False(t, typeclass.NoneOf(xs, isString))
	assert.Equal(t, typeclass.Just[any]("a"), typeclass.FindIf(xs, isString))
	assert.True(t, typeclass.Contains(xs, "a"))
	assert.False(t, typeclass.Contains(xs, "b"))
	assert.Equal(t, typeclass.Just[any](1), typeclass.Find(xs, 1))
	assert.Equal(t, typeclass.Nothing[any](), typeclass.Find(xs, "q"))
	assert.Equal(t, "a", typeclass.AtKey(xs, "a"))
	mustPanicMessage(t, "typeclass: at_key: no element matches the key", func() {
		typeclass.AtKey(xs, "z")
	})

	assert.True(t, typeclass.Any(typeclass.MakeTuple(false, true)))
	assert.False(t, typeclass.All(typeclass.MakeTuple(false, true)))
	assert.True(t, typeclass.None(typeclass.MakeTuple(false, false)))
	assert.True(t, typeclass.All(typeclass.MakeTuple()))

	assert.True(t, typeclass.IsSubset(typeclass.MakeTuple(1, 2), typeclass.MakeTuple(3, 2, 1)))
	assert.False(t, typeclass.IsSubset(typeclass.MakeTuple(1, 4), typeclass.MakeTuple(3, 2, 1)))
	assert.True(t, typeclass.IsSubset(typeclass.MakeTuple(), typeclass.MakeTuple(1)))
}

func TestTupleOrderable(t *testing.T) {
	assert.True(t, typeclass.Equal(typeclass.MakeTuple(1, "a"), typeclass.MakeTuple(1, "a")))
	assert.False(t, typeclass.Equal(typeclass.MakeTuple(1), typeclass.MakeTuple(1, 2)))
	assert.True(t, typeclass.Less(typeclass.MakeTuple(1, 2), typeclass.MakeTuple(1, 3)))
	assert.True(t, typeclass.Less(typeclass.MakeTuple(1), typeclass.MakeTuple(1, 0)))
	assert.False(t, typeclass.Less(typeclass.MakeTuple(2), typeclass.MakeTuple(1, 0)))
	assert.Equal(t, typeclass.MakeTuple(1, 3), typeclass.Max(typeclass.MakeTuple(1, 2), typeclass.MakeTuple(1, 3)))
}
