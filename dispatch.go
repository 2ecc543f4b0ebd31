// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"errors"
	"slices"
)

// resolution is a memoised outcome of Resolve.
type resolution struct {
	slot *Slot
	err  *DispatchError
}

// Resolve returns the slot op dispatches to for tags, sealing r.
//
// Lookup order: the exact override, then conditional slots, then lifting
// of heterogeneous operands into their common tag, then the first viable
// default. A default is viable when every operation it requires resolves
// for the same tags. When nothing applies the error wraps
// ErrNoImplementation and lists the minimal complete definitions of the
// concept.
func (r *Registry) Resolve(op *Operation, tags ...Tag) (*Slot, error) {
	s, err := r.resolveTop(op, tags)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *Registry) resolveTop(op *Operation, tags []Tag) (*Slot, *DispatchError) {
	r.Seal()
	if len(tags) != op.by.arity() {
		return nil, &DispatchError{Op: op, Tags: tags, Err: ErrArity, Detail: "dispatch " + op.by.String()}
	}
	key := keyOf(op, tags)
	if v, ok := r.resolved.Load(key); ok {
		res := v.(resolution)
		return res.slot, res.err
	}
	visiting := acquireVisiting()
	s, err := r.resolve(op, tags, visiting)
	releaseVisiting(visiting)
	v, _ := r.resolved.LoadOrStore(key, resolution{slot: s, err: err})
	res := v.(resolution)
	if res.err != nil {
		r.log.Debug().Stringer("op", op).Strs("tags", tagStrings(tags)).Err(res.err).Msg("resolution failed")
	} else {
		r.log.Debug().Stringer("op", op).Strs("tags", tagStrings(tags)).
			Stringer("kind", res.slot.kind).Str("source", res.slot.source).Msg("resolved")
	}
	return res.slot, res.err
}

func (r *Registry) resolve(op *Operation, tags []Tag, visiting map[slotKey]bool) (*Slot, *DispatchError) {
	for _, t := range tags {
		if t.IsZero() {
			return nil, &DispatchError{Op: op, Tags: tags, Err: ErrNoImplementation, Detail: "nil operand"}
		}
	}
	if s, err := r.direct(op, tags); err != nil || s != nil {
		return s, err
	}
	hetero := op.hetero && tags[0] != tags[1]
	if hetero {
		if s, err := r.lift(op, tags, visiting); err != nil || s != nil {
			return s, err
		}
	}

	key := keyOf(op, tags)
	if visiting[key] {
		return nil, &DispatchError{Op: op, Tags: tags, Err: ErrNoImplementation, Detail: "default cycle"}
	}
	visiting[key] = true
	defer delete(visiting, key)

	for _, d := range op.defaults {
		if d.when != nil && !d.when(tags) {
			continue
		}
		viable := true
		for _, req := range d.requires {
			if _, err := r.resolve(req, reqTags(req, tags), visiting); err != nil {
				if !errors.Is(err, ErrNoImplementation) && !errors.Is(err, ErrNoCommonType) {
					return nil, err
				}
				viable = false
				break
			}
		}
		if viable {
			return &Slot{op: op, kind: SlotDefault, impl: d.impl, source: "default via " + joinOps(d.requires)}, nil
		}
	}

	de := &DispatchError{Op: op, Tags: tags, Err: ErrNoImplementation, Missing: op.concept.missing()}
	if hetero {
		if _, ok, _ := r.common(tags[0], tags[1]); !ok {
			de.Err = ErrNoCommonType
		}
	}
	return nil, de
}

// lift resolves a heterogeneous call through the common tag of its
// operands. It returns (nil, nil) when lifting does not apply.
func (r *Registry) lift(op *Operation, tags []Tag, visiting map[slotKey]bool) (*Slot, *DispatchError) {
	a, b := tags[0], tags[1]
	c, ok, cerr := r.common(a, b)
	if cerr != nil {
		return nil, cerr
	}
	if !ok {
		return nil, nil
	}
	if !r.Models(op.concept, a) || !r.Models(op.concept, b) || !r.Models(op.concept, c) {
		return nil, nil
	}
	ca, _ := r.lookupConversion(a, c)
	cb, _ := r.lookupConversion(b, c)
	for _, side := range []struct {
		from Tag
		conv *conversion
	}{{a, ca}, {b, cb}} {
		if side.conv == nil || side.conv.kind != Embedding {
			return nil, &DispatchError{Op: op, Tags: tags, Err: ErrUnsafeEmbedding,
				Detail: side.from.String() + " does not embed into " + c.String()}
		}
	}
	inner, err := r.resolve(op, []Tag{c, c}, visiting)
	if err != nil {
		return nil, err
	}
	impl := func(rr *Registry, args []any) any {
		lifted := slices.Clone(args)
		lifted[0] = ca.fn(rr, args[0])
		lifted[1] = cb.fn(rr, args[1])
		return inner.impl(rr, lifted)
	}
	return &Slot{op: op, kind: SlotLifted, impl: impl, source: "lifted to " + c.String()}, nil
}

// reqTags projects the dispatch tags of an operation onto a required
// operation with a possibly different dispatch shape.
func reqTags(req *Operation, tags []Tag) []Tag {
	if req.by == ByPair {
		if len(tags) == 2 {
			return tags
		}
		return []Tag{tags[0], tags[0]}
	}
	return tags[:1]
}

// dispatchTags computes the dispatch tags of args for op.
// ByTag operations expect the Tag as their first argument.
func (r *Registry) dispatchTags(op *Operation, args []any) ([]Tag, *DispatchError) {
	n := op.by.arity()
	if len(args) < n {
		return nil, &DispatchError{Op: op, Err: ErrArity, Detail: "too few arguments"}
	}
	if op.by == ByTag {
		t, ok := args[0].(Tag)
		if !ok {
			return nil, &DispatchError{Op: op, Err: ErrArity, Detail: "first argument must be a Tag"}
		}
		return []Tag{t}, nil
	}
	tags := make([]Tag, n)
	for i := range n {
		tags[i] = r.TagOf(args[i])
	}
	return tags, nil
}

// Invoke dispatches op on args and runs the resolved slot.
// Resolution failures panic with a *DispatchError. Panics raised by the
// slot body propagate unchanged.
func (r *Registry) Invoke(op *Operation, args ...any) any {
	tags, err := r.dispatchTags(op, args)
	if err != nil {
		fail(err)
	}
	s, err := r.resolveTop(op, tags)
	if err != nil {
		fail(err)
	}
	return s.impl(r, args)
}

// InvokeTag dispatches a ByTag operation such as zero or lift.
// The slot receives tag as its first argument, followed by args.
func (r *Registry) InvokeTag(op *Operation, tag Tag, args ...any) any {
	if op.by != ByTag {
		fail(&DispatchError{Op: op, Tags: []Tag{tag}, Err: ErrArity, Detail: "operation dispatches " + op.by.String()})
	}
	return r.Invoke(op, append([]any{tag}, args...)...)
}

// TryInvoke is like Invoke but returns resolution failures as errors.
func (r *Registry) TryInvoke(op *Operation, args ...any) (any, error) {
	tags, err := r.dispatchTags(op, args)
	if err != nil {
		return nil, err
	}
	s, err := r.resolveTop(op, tags)
	if err != nil {
		return nil, err
	}
	return s.impl(r, args), nil
}

func joinOps(ops []*Operation) string {
	if len(ops) == 0 {
		return "constant"
	}
	s := ops[0].name
	for _, op := range ops[1:] {
		s += ", " + op.name
	}
	return s
}
