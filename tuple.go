// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"slices"

	"github.com/samber/lo"
)

// TupleFamily tags Tuple.
var TupleFamily = NewFamily("Tuple")

// Tuple is a heterogeneous sequence.
type Tuple []any

// MakeTuple returns the tuple of xs.
func MakeTuple(xs ...any) Tuple { return Tuple(slices.Clone(xs)) }

// Tag returns the Tuple tag.
func (Tuple) Tag() Tag { return TupleFamily.Tag() }

// registerTuple installs the models of Tuple: Comparable, Orderable
// (lexicographic), Functor, Applicative, Monad, MonadPlus, Foldable and
// Searchable. Foldable values convert to Tuple.
func registerTuple(r *Registry) {
	r.RegisterAll(TupleFamily.Tag(), Impls{
		OpEqual: func(r *Registry, args []any) any {
			xs, ys := args[0].(Tuple), args[1].(Tuple)
			if len(xs) != len(ys) {
				return false
			}
			for i := range xs {
				if !equalIn(r, xs[i], ys[i]) {
					return false
				}
			}
			return true
		},
		OpLess: func(r *Registry, args []any) any {
			xs, ys := args[0].(Tuple), args[1].(Tuple)
			for i := range min(len(xs), len(ys)) {
				if r.Invoke(OpLess, xs[i], ys[i]).(bool) {
					return true
				}
				if r.Invoke(OpLess, ys[i], xs[i]).(bool) {
					return false
				}
			}
			return len(xs) < len(ys)
		},
		OpTransform: func(_ *Registry, args []any) any {
			f := args[1]
			return Tuple(lo.Map(args[0].(Tuple), func(x any, _ int) any { return apply(f, x) }))
		},
		OpLift: func(_ *Registry, args []any) any { return Tuple{args[1]} },
		OpAp: func(_ *Registry, args []any) any {
			fs, xs := args[0].(Tuple), args[1].(Tuple)
			out := make(Tuple, 0, len(fs)*len(xs))
			for _, f := range fs {
				for _, x := range xs {
					out = append(out, apply(f, x))
				}
			}
			return out
		},
		OpFlatten: func(_ *Registry, args []any) any {
			out := Tuple{}
			for _, inner := range args[0].(Tuple) {
				out = append(out, inner.(Tuple)...)
			}
			return out
		},
		OpConcat: func(_ *Registry, args []any) any {
			return slices.Concat(args[0].(Tuple), args[1].(Tuple))
		},
		OpEmpty: func(*Registry, []any) any { return Tuple{} },
		OpUnpack: func(_ *Registry, args []any) any {
			return apply(args[1], args[0].(Tuple)...)
		},
		OpLength: func(_ *Registry, args []any) any { return len(args[0].(Tuple)) },
		OpAnyOf: func(_ *Registry, args []any) any {
			pred := args[1]
			return lo.SomeBy(args[0].(Tuple), func(x any) bool { return truthy(apply(pred, x)) })
		},
		OpFindIf: func(_ *Registry, args []any) any {
			pred := args[1]
			x, ok := lo.Find(args[0].(Tuple), func(x any) bool { return truthy(apply(pred, x)) })
			if !ok {
				return Nothing[any]()
			}
			return Just(x)
		},
	})

	tupleTag := TupleFamily.Tag()
	r.RegisterConversionRule("foldable.tuple", func(r *Registry, from, to Tag) (Converter, ConversionKind, bool) {
		if to != tupleTag || !r.Models(Foldable, from) {
			return nil, Explicit, false
		}
		return func(r *Registry, v any) any { return Tuple(elementsIn(r, v)) }, Embedding, true
	})
}
