// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// Foldable operations.
var (
	OpUnpack    = NewOperation("unpack", ByFirst)
	OpFoldLeft  = NewOperation("fold_left", ByFirst)
	OpFoldRight = NewOperation("fold_right", ByFirst)
	OpFoldLeft1 = NewOperation("fold_left1", ByFirst)
	OpLength    = NewOperation("length", ByFirst)
)

// Foldable is the concept of structures that can be reduced to a value.
// Minimal complete definitions: unpack, or fold_left.
//
// unpack(xs, f) calls f with the elements of xs as separate arguments.
// fold_left(xs, state, f) calls f(state, x) left to right; fold_right
// calls f(x, state) right to left.
var Foldable *Concept

func defineFoldable() {
	OpUnpack.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		elems := r.Invoke(OpFoldLeft, args[0], []any(nil), func(acc, x any) any {
			return append(acc.([]any), x)
		}).([]any)
		return apply(args[1], elems...)
	}, OpFoldLeft)))
	OpFoldLeft.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		state, f := args[1], args[2]
		for _, x := range elementsIn(r, args[0]) {
			state = apply(f, state, x)
		}
		return state
	}, OpUnpack)))
	OpFoldRight.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		state, f := args[1], args[2]
		elems := elementsIn(r, args[0])
		for i := len(elems) - 1; i >= 0; i-- {
			state = apply(f, elems[i], state)
		}
		return state
	}, OpUnpack)))
	OpFoldLeft1.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		elems := elementsIn(r, args[0])
		if len(elems) == 0 {
			panic("typeclass: fold_left1 on an empty structure")
		}
		state := elems[0]
		for _, x := range elems[1:] {
			state = apply(args[1], state, x)
		}
		return state
	}, OpUnpack)))
	OpLength.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		return len(elementsIn(r, args[0]))
	}, OpUnpack)))
	Foldable = DefineConcept("Foldable",
		[]*Operation{OpUnpack, OpFoldLeft, OpFoldRight, OpFoldLeft1, OpLength},
		MinimalComplete(OpUnpack),
		MinimalComplete(OpFoldLeft),
	)
}

func collect(xs ...any) any { return append(make([]any, 0, len(xs)), xs...) }

// elementsIn returns the elements of a Foldable value in order.
func elementsIn(r *Registry, xs any) []any {
	return r.Invoke(OpUnpack, xs, collect).([]any)
}

// Unpack calls f with the elements of xs.
func Unpack(xs, f any) any { return Default.Invoke(OpUnpack, xs, f) }

// FoldLeft reduces xs from the left.
func FoldLeft(xs, state, f any) any { return Default.Invoke(OpFoldLeft, xs, state, f) }

// FoldRight reduces xs from the right.
func FoldRight(xs, state, f any) any { return Default.Invoke(OpFoldRight, xs, state, f) }

// FoldLeft1 reduces a non-empty xs from the left, using its first
// element as the initial state.
func FoldLeft1(xs, f any) any { return Default.Invoke(OpFoldLeft1, xs, f) }

// Length returns the number of elements of xs.
func Length(xs any) int { return Default.Invoke(OpLength, xs).(int) }

// Elements returns the elements of a Foldable value.
func Elements(xs any) []any { return elementsIn(Default, xs) }
