// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import "github.com/samber/lo"

// Models reports whether t models c: every concept c refines is modeled,
// and some minimal complete definition of c has a non-default slot for
// each of its operations. Defaults never make a tag a model, so a tag
// without any implemented anchor does not model c even when derived
// operations could be computed.
func (r *Registry) Models(c *Concept, t Tag) bool {
	r.Seal()
	if t.IsZero() {
		return false
	}
	for _, p := range c.refines {
		if !r.Models(p, t) {
			return false
		}
	}
	return lo.SomeBy(c.mcds, func(mcd []*Operation) bool {
		return lo.EveryBy(mcd, func(op *Operation) bool {
			s, err := r.direct(op, reqTags(op, []Tag{t}))
			return err != nil || s != nil
		})
	})
}

// IsDefault reports whether op resolves to a library fallback for tags,
// or does not resolve at all.
func (r *Registry) IsDefault(op *Operation, tags ...Tag) bool {
	s, err := r.resolveTop(op, tags)
	return err != nil || s.kind == SlotDefault
}

// MustModel panics with ErrConceptCheck unless t models c.
// It is a no-op when concept checks are disabled.
func (r *Registry) MustModel(c *Concept, t Tag) {
	if !r.checks || r.Models(c, t) {
		return
	}
	fail(&DispatchError{Tags: []Tag{t}, Err: ErrConceptCheck, Missing: c.missing(),
		Detail: t.String() + " does not model " + c.name})
}
