// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"fmt"
	"slices"
)

// CommonRule proposes a common tag for a pair of tags.
// Rules are consulted for both operand orders.
//
// A rule that needs the common tag of another pair must ask s, not the
// registry: s.Common sees the pairs already being resolved and reports
// no common tag for them, while Registry.Common would wait on itself.
type CommonRule func(s CommonScope, a, b Tag) (Tag, bool)

// CommonScope answers common-tag queries made from inside a [CommonRule].
type CommonScope struct {
	r     *Registry
	chain []tagPair
}

// Registry returns the registry the rule is consulted for.
func (s CommonScope) Registry() *Registry { return s.r }

// Common returns the common tag of a and b. A pair that is already being
// resolved further up has no common tag. Panics with ErrAmbiguousCommon
// if two rules disagree.
func (s CommonScope) Common(a, b Tag) (Tag, bool) {
	c, ok, err := s.r.commonIn(s.chain, a, b)
	if err != nil {
		fail(err)
	}
	return c, ok
}

type commonRule struct {
	name string
	rule CommonRule
}

type commonResult struct {
	tag Tag
	ok  bool
	err *DispatchError
}

// RegisterCommon records c as the common tag of a and b, in both orders.
// Panics with ErrAmbiguousCommon if a different common tag is already
// recorded for the pair.
func (r *Registry) RegisterCommon(a, b, c Tag) {
	r.lock("common " + a.String() + ", " + b.String())
	defer r.mu.Unlock()
	for _, k := range []tagPair{{a, b}, {b, a}} {
		if prev, ok := r.edges[k]; ok && prev != c {
			fail(&DispatchError{Tags: []Tag{a, b}, Err: ErrAmbiguousCommon,
				Detail: "both " + prev.String() + " and " + c.String()})
		}
	}
	r.edges[tagPair{a, b}] = c
	r.edges[tagPair{b, a}] = c
	r.log.Debug().Stringer("a", a).Stringer("b", b).Stringer("common", c).Msg("common edge registered")
}

// RegisterCommonRule adds a rule consulted after explicit edges.
func (r *Registry) RegisterCommonRule(name string, rule CommonRule) {
	r.lock("common rule " + name)
	defer r.mu.Unlock()
	r.commonRules = append(r.commonRules, commonRule{name: name, rule: rule})
	r.log.Debug().Str("rule", name).Msg("common rule registered")
}

// Common returns the common tag of a and b, if any.
//
// Lookup order: identical tags, explicit edges, registered rules, the
// constant rule and the usual arithmetic conversions of predeclared
// numeric types. Two constant tags of the same family have a common tag
// in that family; two constant tags of different families collapse into
// CanonicalConstant over the common value type. The relation is
// commutative. Panics with ErrAmbiguousCommon if two rules disagree.
func (r *Registry) Common(a, b Tag) (Tag, bool) {
	c, ok, err := r.common(a, b)
	if err != nil {
		fail(err)
	}
	return c, ok
}

// TryCommon is like Common but reports a missing common tag with
// ErrNoCommonType.
func (r *Registry) TryCommon(a, b Tag) (Tag, error) {
	c, ok, err := r.common(a, b)
	switch {
	case err != nil:
		return Tag{}, err
	case !ok:
		return Tag{}, &DispatchError{Tags: []Tag{a, b}, Err: ErrNoCommonType}
	}
	return c, nil
}

func (r *Registry) common(a, b Tag) (Tag, bool, *DispatchError) {
	return r.commonIn(nil, a, b)
}

// commonIn resolves a and b. Top-level queries (empty chain) are memoised
// and deduplicated across goroutines. Queries nested in a rule run on the
// calling goroutine, are cut off when the pair is already on the chain,
// and are not memoised since the cut may shape their result.
func (r *Registry) commonIn(chain []tagPair, a, b Tag) (Tag, bool, *DispatchError) {
	if a == b {
		return a, !a.IsZero(), nil
	}
	r.Seal()
	if v, ok := r.commons.Load(tagPair{a, b}); ok {
		res := v.(commonResult)
		return res.tag, res.ok, res.err
	}
	ka, kb := tagKey(a), tagKey(b)
	if kb < ka {
		a, b = b, a
		ka, kb = kb, ka
	}
	k := tagPair{a, b}
	if len(chain) > 0 {
		if slices.Contains(chain, k) {
			return Tag{}, false, nil
		}
		res := r.computeCommon(append(slices.Clip(chain), k), a, b)
		return res.tag, res.ok, res.err
	}
	v, _, _ := r.flight.Do("common:"+ka+"|"+kb, func() (any, error) {
		res := r.computeCommon([]tagPair{k}, a, b)
		r.commons.Store(tagPair{a, b}, res)
		r.commons.Store(tagPair{b, a}, res)
		if res.ok {
			r.log.Debug().Stringer("a", a).Stringer("b", b).Stringer("common", res.tag).Msg("common type")
		}
		return res, nil
	})
	res := v.(commonResult)
	return res.tag, res.ok, res.err
}

// tagKey identifies a tag for singleflight and canonical operand order.
func tagKey(t Tag) string {
	return fmt.Sprintf("%p/%p", t.family, t.typ)
}

func (r *Registry) computeCommon(chain []tagPair, a, b Tag) commonResult {
	if a.IsZero() || b.IsZero() {
		return commonResult{}
	}
	if c, ok := r.edges[tagPair{a, b}]; ok {
		return commonResult{tag: c, ok: true}
	}

	var found Tag
	var from string
	scope := CommonScope{r: r, chain: chain}
	for _, cr := range r.commonRules {
		c, ok := cr.rule(scope, a, b)
		if !ok {
			c, ok = cr.rule(scope, b, a)
		}
		if !ok {
			continue
		}
		if from != "" && c != found {
			return commonResult{err: &DispatchError{Tags: []Tag{a, b}, Err: ErrAmbiguousCommon,
				Detail: from + " yields " + found.String() + ", " + cr.name + " yields " + c.String()}}
		}
		found, from = c, cr.name
	}
	if from != "" {
		return commonResult{tag: found, ok: true}
	}

	switch {
	case a.IsConstant() && b.IsConstant():
		u, ok, err := r.commonIn(chain, PlainTag(a.typ), PlainTag(b.typ))
		if err != nil || !ok || u.family != nil {
			return commonResult{err: err}
		}
		if a.family == b.family && a.family.wrap != nil {
			return commonResult{tag: a.family.Of(u.typ), ok: true}
		}
		return commonResult{tag: CanonicalConstant.Of(u.typ), ok: true}
	case a.IsConstant():
		c, ok, err := r.commonIn(chain, PlainTag(a.typ), b)
		return commonResult{tag: c, ok: ok, err: err}
	case b.IsConstant():
		c, ok, err := r.commonIn(chain, a, PlainTag(b.typ))
		return commonResult{tag: c, ok: ok, err: err}
	}

	if a.family == nil && b.family == nil {
		if rt, ok := commonNumeric(a.typ, b.typ); ok {
			return commonResult{tag: PlainTag(rt), ok: true}
		}
	}
	return commonResult{}
}

// IsEmbedded reports whether from converts to to without loss of
// information. Every tag embeds into itself.
func (r *Registry) IsEmbedded(from, to Tag) bool {
	kind, ok := r.Conversion(from, to)
	return ok && kind == Embedding
}

// HasCommonEmbedding reports whether a and b have a common tag which
// models c and into which both embed.
func (r *Registry) HasCommonEmbedding(c *Concept, a, b Tag) bool {
	t, ok, err := r.common(a, b)
	if err != nil || !ok {
		return false
	}
	return r.Models(c, t) && r.IsEmbedded(a, t) && r.IsEmbedded(b, t)
}

// HasNontrivialCommonEmbedding is HasCommonEmbedding for distinct tags.
func (r *Registry) HasNontrivialCommonEmbedding(c *Concept, a, b Tag) bool {
	return a != b && r.HasCommonEmbedding(c, a, b)
}
