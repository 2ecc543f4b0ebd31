// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"slices"

	"github.com/samber/lo"
)

// MapFamily tags Map.
var MapFamily = NewFamily("Map")

// Map is an associative container with heterogeneous keys.
//
// Keys are compared with the Comparable concept of the registry; keys of
// different tags never collide. Inserting an existing key leaves the map
// unchanged. Maps are values: every update returns a new Map.
type Map struct {
	entries []Pair[any, any]
}

// MakeMap returns the map of entries. Later duplicates of a key are
// ignored. Keys are compared in the Default registry; see [MakeMapIn].
func MakeMap(entries ...Pair[any, any]) Map { return MakeMapIn(Default, entries...) }

// MakeMapIn is MakeMap with keys compared in r.
func MakeMapIn(r *Registry, entries ...Pair[any, any]) Map {
	var m Map
	for _, e := range entries {
		m = m.InsertIn(r, e.Fst, e.Snd)
	}
	return m
}

// Tag returns the Map tag.
func (Map) Tag() Tag { return MapFamily.Tag() }

// Len returns the number of entries.
func (m Map) Len() int { return len(m.entries) }

// Insert returns m with the entry (k, v) added.
// With concept checks enabled, k must model Comparable.
func (m Map) Insert(k, v any) Map { return m.InsertIn(Default, k, v) }

// EraseKey returns m without the entry for k.
func (m Map) EraseKey(k any) Map { return m.EraseKeyIn(Default, k) }

// Lookup returns the value associated with k.
func (m Map) Lookup(k any) Optional[any] { return m.LookupIn(Default, k) }

// InsertIn is Insert with k checked and compared in r.
func (m Map) InsertIn(r *Registry, k, v any) Map {
	r.MustModel(Comparable, r.TagOf(k))
	if m.indexIn(r, k) >= 0 {
		return m
	}
	return Map{entries: append(slices.Clip(m.entries), Pair[any, any]{Fst: k, Snd: v})}
}

// EraseKeyIn is EraseKey with k compared in r.
func (m Map) EraseKeyIn(r *Registry, k any) Map {
	i := m.indexIn(r, k)
	if i < 0 {
		return m
	}
	return Map{entries: slices.Delete(slices.Clone(m.entries), i, i+1)}
}

// LookupIn is Lookup with k compared in r.
func (m Map) LookupIn(r *Registry, k any) Optional[any] {
	if i := m.indexIn(r, k); i >= 0 {
		return Just(m.entries[i].Snd)
	}
	return Nothing[any]()
}

// Keys returns the keys in insertion order.
func (m Map) Keys() Tuple {
	return lo.Map(m.entries, func(e Pair[any, any], _ int) any { return e.Fst })
}

// Values returns the values in insertion order.
func (m Map) Values() Tuple {
	return lo.Map(m.entries, func(e Pair[any, any], _ int) any { return e.Snd })
}

func (m Map) indexIn(r *Registry, k any) int {
	t := r.TagOf(k)
	return slices.IndexFunc(m.entries, func(e Pair[any, any]) bool {
		return r.TagOf(e.Fst) == t && equalIn(r, e.Fst, k)
	})
}

// registerMap installs the models of Map: Comparable, Searchable (keys
// are searched, values returned) and Foldable (over the entries as
// pairs). Foldable values of pairs convert to Map.
func registerMap(r *Registry) {
	r.RegisterAll(MapFamily.Tag(), Impls{
		OpEqual: func(r *Registry, args []any) any {
			m1, m2 := args[0].(Map), args[1].(Map)
			if m1.Len() != m2.Len() {
				return false
			}
			return lo.EveryBy(m1.entries, func(e Pair[any, any]) bool {
				i := m2.indexIn(r, e.Fst)
				return i >= 0 && equalIn(r, e.Snd, m2.entries[i].Snd)
			})
		},
		OpAnyOf: func(_ *Registry, args []any) any {
			pred := args[1]
			return lo.SomeBy(args[0].(Map).entries, func(e Pair[any, any]) bool { return truthy(apply(pred, e.Fst)) })
		},
		OpFindIf: func(_ *Registry, args []any) any {
			pred := args[1]
			e, ok := lo.Find(args[0].(Map).entries, func(e Pair[any, any]) bool { return truthy(apply(pred, e.Fst)) })
			if !ok {
				return Nothing[any]()
			}
			return Just(e.Snd)
		},
		OpUnpack: func(_ *Registry, args []any) any {
			return apply(args[1], lo.Map(args[0].(Map).entries, func(e Pair[any, any], _ int) any { return e })...)
		},
		OpLength: func(_ *Registry, args []any) any { return args[0].(Map).Len() },
	})

	mapTag := MapFamily.Tag()
	r.RegisterConversionRule("foldable.map", func(r *Registry, from, to Tag) (Converter, ConversionKind, bool) {
		if to != mapTag || !r.Models(Foldable, from) {
			return nil, Explicit, false
		}
		return func(r *Registry, v any) any {
			var m Map
			for _, x := range elementsIn(r, v) {
				k, val := pairOf(x)
				m = m.InsertIn(r, k, val)
			}
			return m
		}, Embedding, true
	})
}
