// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// Comparable operations.
var (
	OpEqual    = NewOperation("equal", ByPair, Heterogeneous())
	OpNotEqual = NewOperation("not_equal", ByPair, Heterogeneous())
)

// Comparable is the concept of values with an equivalence relation.
// Minimal complete definition: equal.
//
// Values of unrelated tags (no common tag) compare unequal.
var Comparable *Concept

func defineComparable() {
	OpEqual.extend(WithDefault(DefaultVia(func(*Registry, []any) any { return false }).When(DistinctTags)))
	OpNotEqual.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		return !r.Invoke(OpEqual, args[0], args[1]).(bool)
	}, OpEqual)))
	Comparable = DefineConcept("Comparable", []*Operation{OpEqual, OpNotEqual})
}

// goComparable accepts a plain tag whose values support ==.
func goComparable(tags []Tag) bool {
	t := tags[0]
	return SameTags(tags) && t.family == nil && t.typ != nil && t.typ.Comparable()
}

func registerComparableBuiltins(r *Registry) {
	r.RegisterWhen(OpEqual, "builtin.comparable", goComparable, func(_ *Registry, args []any) any {
		return args[0] == args[1]
	})
}

// Equal reports whether a and b are equal. Operands of different tags are
// compared in their common tag.
func Equal(a, b any) bool { return Default.Invoke(OpEqual, a, b).(bool) }

// NotEqual is the negation of Equal.
func NotEqual(a, b any) bool { return Default.Invoke(OpNotEqual, a, b).(bool) }

// equalIn compares two values within r.
func equalIn(r *Registry, a, b any) bool { return r.Invoke(OpEqual, a, b).(bool) }
