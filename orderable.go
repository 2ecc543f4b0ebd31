// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// Orderable operations.
var (
	OpLess         = NewOperation("less", ByPair, Heterogeneous())
	OpLessEqual    = NewOperation("less_equal", ByPair, Heterogeneous())
	OpGreater      = NewOperation("greater", ByPair, Heterogeneous())
	OpGreaterEqual = NewOperation("greater_equal", ByPair, Heterogeneous())
	OpMin          = NewOperation("min", ByPair, Heterogeneous())
	OpMax          = NewOperation("max", ByPair, Heterogeneous())
)

// Orderable is the concept of totally ordered values.
// Minimal complete definition: less.
var Orderable *Concept

func defineOrderable() {
	less := func(r *Registry, a, b any) bool { return r.Invoke(OpLess, a, b).(bool) }
	OpLessEqual.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		return !less(r, args[1], args[0])
	}, OpLess)))
	OpGreater.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		return less(r, args[1], args[0])
	}, OpLess)))
	OpGreaterEqual.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		return !less(r, args[0], args[1])
	}, OpLess)))
	OpMin.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		if less(r, args[1], args[0]) {
			return args[1]
		}
		return args[0]
	}, OpLess)))
	OpMax.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		if less(r, args[0], args[1]) {
			return args[1]
		}
		return args[0]
	}, OpLess)))
	Orderable = DefineConcept("Orderable",
		[]*Operation{OpLess, OpLessEqual, OpGreater, OpGreaterEqual, OpMin, OpMax})
}

func goOrdered(tags []Tag) bool {
	t := tags[0]
	return SameTags(tags) && t.family == nil && t.typ != nil && isOrderedKind(t.typ)
}

func registerOrderableBuiltins(r *Registry) {
	r.RegisterWhen(OpLess, "builtin.ordered", goOrdered, func(_ *Registry, args []any) any {
		return compareOrdered(args[0], args[1]) < 0
	})
}

// Less reports whether a is strictly less than b.
func Less(a, b any) bool { return Default.Invoke(OpLess, a, b).(bool) }

// LessEqual reports whether a is less than or equal to b.
func LessEqual(a, b any) bool { return Default.Invoke(OpLessEqual, a, b).(bool) }

// Greater reports whether a is strictly greater than b.
func Greater(a, b any) bool { return Default.Invoke(OpGreater, a, b).(bool) }

// GreaterEqual reports whether a is greater than or equal to b.
func GreaterEqual(a, b any) bool { return Default.Invoke(OpGreaterEqual, a, b).(bool) }

// Min returns the smaller of a and b, preferring a on ties.
func Min(a, b any) any { return Default.Invoke(OpMin, a, b) }

// Max returns the larger of a and b, preferring a on ties.
func Max(a, b any) any { return Default.Invoke(OpMax, a, b) }
