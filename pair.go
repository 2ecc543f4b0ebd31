// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// Product operations.
var (
	OpFirst  = NewOperation("first", ByFirst)
	OpSecond = NewOperation("second", ByFirst)
	OpMake   = NewOperation("make", ByTag)
)

// Product is the concept of two-element products.
// Minimal complete definition: first, second and make.
var Product *Concept

func defineProduct() {
	Product = DefineConcept("Product", []*Operation{OpFirst, OpSecond, OpMake})
}

// PairFamily tags every Pair[A, B].
var PairFamily = NewFamily("Pair")

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// MakePair returns the pair (a, b).
func MakePair[A, B any](a A, b B) Pair[A, B] { return Pair[A, B]{Fst: a, Snd: b} }

// Tag returns the Pair tag.
func (Pair[A, B]) Tag() Tag { return PairFamily.Tag() }

func (p Pair[A, B]) erase() (any, any) { return p.Fst, p.Snd }

type erasedPair interface{ erase() (any, any) }

func pairOf(v any) (any, any) {
	p, ok := v.(erasedPair)
	if !ok {
		panic("typeclass: not a Pair")
	}
	return p.erase()
}

// registerPair installs the models of Pair: Product, Comparable,
// Orderable (lexicographic) and Foldable.
func registerPair(r *Registry) {
	r.RegisterAll(PairFamily.Tag(), Impls{
		OpFirst: func(_ *Registry, args []any) any {
			a, _ := pairOf(args[0])
			return a
		},
		OpSecond: func(_ *Registry, args []any) any {
			_, b := pairOf(args[0])
			return b
		},
		OpMake: func(_ *Registry, args []any) any { return Pair[any, any]{Fst: args[1], Snd: args[2]} },
		OpEqual: func(r *Registry, args []any) any {
			a1, b1 := pairOf(args[0])
			a2, b2 := pairOf(args[1])
			return equalIn(r, a1, a2) && equalIn(r, b1, b2)
		},
		OpLess: func(r *Registry, args []any) any {
			a1, b1 := pairOf(args[0])
			a2, b2 := pairOf(args[1])
			if r.Invoke(OpLess, a1, a2).(bool) {
				return true
			}
			if r.Invoke(OpLess, a2, a1).(bool) {
				return false
			}
			return r.Invoke(OpLess, b1, b2).(bool)
		},
		OpUnpack: func(_ *Registry, args []any) any {
			a, b := pairOf(args[0])
			return apply(args[1], a, b)
		},
	})
}

// First returns the first component of a product.
func First(p any) any { return Default.Invoke(OpFirst, p) }

// Second returns the second component of a product.
func Second(p any) any { return Default.Invoke(OpSecond, p) }

// Make builds a product of tag t from a and b.
func Make(t Tag, a, b any) any { return Default.InvokeTag(OpMake, t, a, b) }
