// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"slices"
	"strings"
)

// SlotKind classifies a resolved implementation.
type SlotKind uint8

const (
	// SlotOverride is registered for exact tags with [Registry.Register].
	SlotOverride SlotKind = iota
	// SlotConditional is registered with [Registry.RegisterWhen] and applies
	// to every tag combination its Match accepts.
	SlotConditional
	// SlotLifted converts mismatched operands into their common tag and
	// runs the slot of the common tag.
	SlotLifted
	// SlotDefault is a library fallback derived from other operations.
	// Default slots never count towards concept membership.
	SlotDefault
)

func (k SlotKind) String() string {
	switch k {
	case SlotOverride:
		return "override"
	case SlotConditional:
		return "conditional"
	case SlotLifted:
		return "lifted"
	default:
		return "default"
	}
}

// Slot is a resolved or registered implementation of an operation.
type Slot struct {
	op     *Operation
	kind   SlotKind
	impl   Impl
	source string
}

// Op returns the operation the slot implements.
func (s *Slot) Op() *Operation { return s.op }

// Kind returns the slot kind.
func (s *Slot) Kind() SlotKind { return s.kind }

// Source names where the slot comes from: "override", the name given to
// RegisterWhen, or a description of the lifting or default.
func (s *Slot) Source() string { return s.source }

// IsDefault reports whether s is a library fallback.
func (s *Slot) IsDefault() bool { return s.kind == SlotDefault }

// Call runs the slot body on args within r.
func (s *Slot) Call(r *Registry, args ...any) any { return s.impl(r, args) }

type conditional struct {
	name  string
	match Match
	slot  *Slot
}

// Impls maps operations to implementations for [Registry.RegisterAll].
type Impls map[*Operation]Impl

// Register installs impl as the override of op for the exact tags.
// ByFirst and ByTag operations take one tag, ByPair operations two.
//
// Panics with ErrArity on a tag count mismatch, ErrAmbiguousDispatch if the
// slot is already registered and ErrSealed after the first resolution.
func (r *Registry) Register(op *Operation, impl Impl, tags ...Tag) {
	if op.concept == nil {
		panic("typeclass: operation " + op.name + " does not belong to a concept")
	}
	if len(tags) != op.by.arity() {
		fail(&DispatchError{Op: op, Tags: tags, Err: ErrArity, Detail: "dispatch " + op.by.String()})
	}
	key := keyOf(op, tags)
	r.lock("register " + op.String())
	defer r.mu.Unlock()
	if _, dup := r.exact[key]; dup {
		fail(&DispatchError{Op: op, Tags: tags, Err: ErrAmbiguousDispatch, Detail: "override registered twice"})
	}
	r.exact[key] = &Slot{op: op, kind: SlotOverride, impl: impl, source: "override"}
	r.concepts[op.concept] = struct{}{}
	r.log.Debug().Stringer("op", op).Strs("tags", tagStrings(tags)).Msg("override registered")
}

// RegisterWhen installs impl as a conditional slot of op for every tag
// combination accepted by m. Overrides take precedence over conditional
// slots; two conditional slots accepting the same tags make dispatch on
// those tags ambiguous.
func (r *Registry) RegisterWhen(op *Operation, name string, m Match, impl Impl) {
	if op.concept == nil {
		panic("typeclass: operation " + op.name + " does not belong to a concept")
	}
	r.lock("register " + op.String() + " when " + name)
	defer r.mu.Unlock()
	if slices.ContainsFunc(r.cond[op], func(c conditional) bool { return c.name == name }) {
		fail(&DispatchError{Op: op, Err: ErrAmbiguousDispatch, Detail: "conditional " + name + " registered twice"})
	}
	r.cond[op] = append(r.cond[op], conditional{
		name:  name,
		match: m,
		slot:  &Slot{op: op, kind: SlotConditional, impl: impl, source: name},
	})
	r.concepts[op.concept] = struct{}{}
	r.log.Debug().Stringer("op", op).Str("when", name).Msg("conditional registered")
}

// RegisterAll registers each implementation as the override for t.
// ByPair operations are registered for (t, t).
func (r *Registry) RegisterAll(t Tag, impls Impls) {
	for op, impl := range impls {
		if op.by == ByPair {
			r.Register(op, impl, t, t)
			continue
		}
		r.Register(op, impl, t)
	}
}

// direct returns the non-default slot registered for op and tags.
func (r *Registry) direct(op *Operation, tags []Tag) (*Slot, *DispatchError) {
	if s, ok := r.exact[keyOf(op, tags)]; ok {
		return s, nil
	}
	var found *Slot
	var names []string
	for _, c := range r.cond[op] {
		if c.match(tags) {
			found = c.slot
			names = append(names, c.name)
		}
	}
	if len(names) > 1 {
		return nil, &DispatchError{Op: op, Tags: tags, Err: ErrAmbiguousDispatch, Detail: "conditionals " + strings.Join(names, ", ") + " all match"}
	}
	return found, nil
}

func keyOf(op *Operation, tags []Tag) slotKey {
	k := slotKey{op: op, a: tags[0]}
	if len(tags) > 1 {
		k.b = tags[1]
	}
	return k
}

func tagStrings(tags []Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.String()
	}
	return out
}
