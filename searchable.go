// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// Searchable operations.
var (
	OpAnyOf    = NewOperation("any_of", ByFirst)
	OpFindIf   = NewOperation("find_if", ByFirst)
	OpAny      = NewOperation("any", ByFirst)
	OpAllOf    = NewOperation("all_of", ByFirst)
	OpAll      = NewOperation("all", ByFirst)
	OpNoneOf   = NewOperation("none_of", ByFirst)
	OpNone     = NewOperation("none", ByFirst)
	OpContains = NewOperation("contains", ByFirst)
	OpFind     = NewOperation("find", ByFirst)
	OpAtKey    = NewOperation("at_key", ByFirst)
	OpIsSubset = NewOperation("is_subset", ByPair, Heterogeneous())
)

// Searchable is the concept of structures whose keys can be searched.
// Minimal complete definition: any_of and find_if.
//
// find_if returns an Optional holding the value associated with the first
// key satisfying the predicate. For sequences keys and values coincide.
var Searchable *Concept

func defineSearchable() {
	anyOf := func(r *Registry, xs, pred any) bool { return r.Invoke(OpAnyOf, xs, pred).(bool) }
	OpAny.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		return anyOf(r, args[0], truthy)
	}, OpAnyOf)))
	OpAllOf.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		pred := args[1]
		return !anyOf(r, args[0], func(x any) bool { return !truthy(apply(pred, x)) })
	}, OpAnyOf)))
	OpAll.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		return r.Invoke(OpAllOf, args[0], truthy)
	}, OpAllOf)))
	OpNoneOf.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		return !anyOf(r, args[0], args[1])
	}, OpAnyOf)))
	OpNone.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		return r.Invoke(OpNoneOf, args[0], truthy)
	}, OpNoneOf)))
	OpContains.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		v := args[1]
		return anyOf(r, args[0], func(x any) bool { return equalIn(r, v, x) })
	}, OpAnyOf)))
	OpFind.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		k := args[1]
		return r.Invoke(OpFindIf, args[0], func(x any) bool { return equalIn(r, k, x) })
	}, OpFindIf)))
	OpAtKey.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		found := r.Invoke(OpFind, args[0], args[1]).(Optional[any])
		v, ok := found.Get()
		if !ok {
			panic("typeclass: at_key: no element matches the key")
		}
		return v
	}, OpFind)))
	OpIsSubset.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		ys := args[1]
		return r.Invoke(OpAllOf, args[0], func(x any) bool {
			return r.Invoke(OpContains, ys, x).(bool)
		})
	}, OpAllOf)))
	Searchable = DefineConcept("Searchable",
		[]*Operation{OpAnyOf, OpFindIf, OpAny, OpAllOf, OpAll, OpNoneOf, OpNone,
			OpContains, OpFind, OpAtKey, OpIsSubset},
		MinimalComplete(OpAnyOf, OpFindIf),
	)
}

// AnyOf reports whether some key of xs satisfies pred.
func AnyOf(xs, pred any) bool { return Default.Invoke(OpAnyOf, xs, pred).(bool) }

// FindIf returns the value of the first key of xs satisfying pred.
func FindIf(xs, pred any) Optional[any] { return Default.Invoke(OpFindIf, xs, pred).(Optional[any]) }

// Any reports whether some key of xs is true.
func Any(xs any) bool { return Default.Invoke(OpAny, xs).(bool) }

// AllOf reports whether every key of xs satisfies pred.
func AllOf(xs, pred any) bool { return Default.Invoke(OpAllOf, xs, pred).(bool) }

// All reports whether every key of xs is true.
func All(xs any) bool { return Default.Invoke(OpAll, xs).(bool) }

// NoneOf reports whether no key of xs satisfies pred.
func NoneOf(xs, pred any) bool { return Default.Invoke(OpNoneOf, xs, pred).(bool) }

// None reports whether no key of xs is true.
func None(xs any) bool { return Default.Invoke(OpNone, xs).(bool) }

// Contains reports whether xs has a key equal to v.
func Contains(xs, v any) bool { return Default.Invoke(OpContains, xs, v).(bool) }

// Find returns the value associated with the key k.
func Find(xs, k any) Optional[any] { return Default.Invoke(OpFind, xs, k).(Optional[any]) }

// AtKey returns the value associated with the key k and panics if there
// is none.
func AtKey(xs, k any) any { return Default.Invoke(OpAtKey, xs, k) }

// IsSubset reports whether every key of xs is a key of ys.
func IsSubset(xs, ys any) bool { return Default.Invoke(OpIsSubset, xs, ys).(bool) }
