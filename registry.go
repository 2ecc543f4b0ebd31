// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Registry holds implementation slots, common-type edges, conversions and
// tag adapters.
//
// A registry is populated first and sealed on its first resolution (or by
// [Registry.Seal]). Registering anything on a sealed registry panics with
// ErrSealed, so an (operation, tags) pair resolves to the same slot for the
// lifetime of the registry. A sealed registry is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	sealed atomic.Bool

	log     zerolog.Logger
	checks  bool
	prelude bool

	adapters    map[reflect.Type]Tag
	exact       map[slotKey]*Slot
	cond        map[*Operation][]conditional
	edges       map[tagPair]Tag
	commonRules []commonRule
	conversions map[tagPair]*conversion
	convRules   []conversionRule
	concepts    map[*Concept]struct{}

	resolved sync.Map // slotKey → resolution
	commons  sync.Map // tagPair → commonResult
	convs    sync.Map // tagPair → convResult
	flight   singleflight.Group
}

type tagPair [2]Tag

type slotKey struct {
	op   *Operation
	a, b Tag
}

// NewRegistry returns a registry with the prelude concepts and models
// installed, unless [WithoutPrelude] is given.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		log:         zerolog.Nop(),
		checks:      true,
		prelude:     true,
		adapters:    make(map[reflect.Type]Tag),
		exact:       make(map[slotKey]*Slot),
		cond:        make(map[*Operation][]conditional),
		edges:       make(map[tagPair]Tag),
		conversions: make(map[tagPair]*conversion),
		concepts:    make(map[*Concept]struct{}),
	}
	for _, o := range opts {
		o(r)
	}
	if r.prelude {
		installPrelude(r)
	}
	return r
}

// Default is the registry used by the package-level functions.
// It is configured from the environment (see [ConfigFromEnv]) when the
// package is initialized, after the prelude concepts are defined.
var Default *Registry

// Seal freezes r. Later registrations panic with ErrSealed.
// Resolution seals implicitly.
func (r *Registry) Seal() {
	if r.sealed.Load() {
		return
	}
	r.mu.Lock()
	if !r.sealed.Load() {
		r.sealed.Store(true)
		r.log.Debug().Int("slots", len(r.exact)).Int("edges", len(r.edges)).
			Int("conversions", len(r.conversions)).Msg("registry sealed")
	}
	r.mu.Unlock()
}

// Sealed reports whether r is sealed.
func (r *Registry) Sealed() bool { return r.sealed.Load() }

// ConceptChecks reports whether typed front-ends assert concept membership.
func (r *Registry) ConceptChecks() bool { return r.checks }

// Logger returns the registry logger.
func (r *Registry) Logger() zerolog.Logger { return r.log }

// lock acquires the write lock for a registration and panics if sealed.
func (r *Registry) lock(what string) {
	r.mu.Lock()
	if r.sealed.Load() {
		r.mu.Unlock()
		fail(&DispatchError{Err: ErrSealed, Detail: what})
	}
}

// TagOf returns the tag of v: an adapted tag if the dynamic type of v was
// registered with [Adapt], the tag reported by [Tagged], or the plain tag
// of its Go type.
func (r *Registry) TagOf(v any) Tag {
	if v == nil {
		return Tag{}
	}
	r.mu.RLock()
	t, ok := r.adapters[reflect.TypeOf(v)]
	r.mu.RUnlock()
	if ok {
		return t
	}
	return tagOfValue(v)
}

// TagOfType returns the tag of values of type rt.
func (r *Registry) TagOfType(rt reflect.Type) Tag {
	r.mu.RLock()
	t, ok := r.adapters[rt]
	r.mu.RUnlock()
	if ok {
		return t
	}
	if selfTagged(rt) {
		return reflect.Zero(rt).Interface().(Tagged).Tag()
	}
	return PlainTag(rt)
}

// Adapt makes values of the foreign type T carry tag.
func Adapt[T any](r *Registry, tag Tag) {
	r.AdaptType(reflect.TypeFor[T](), tag)
}

// AdaptType makes values of rt carry tag.
// Panics with ErrAmbiguousTag if rt implements [Tagged] or is already
// adapted to a different tag.
func (r *Registry) AdaptType(rt reflect.Type, tag Tag) {
	if selfTagged(rt) {
		fail(&DispatchError{Tags: []Tag{tag}, Err: ErrAmbiguousTag, Detail: rt.String() + " already implements Tagged"})
	}
	r.lock("adapt " + rt.String())
	defer r.mu.Unlock()
	if prev, ok := r.adapters[rt]; ok && prev != tag {
		fail(&DispatchError{Tags: []Tag{prev, tag}, Err: ErrAmbiguousTag, Detail: rt.String() + " adapted twice"})
	}
	r.adapters[rt] = tag
	r.log.Debug().Str("type", rt.String()).Stringer("tag", tag).Msg("type adapted")
}

// Package-level front-ends bound to Default.

// TagOf returns the tag of v in the Default registry.
func TagOf(v any) Tag { return Default.TagOf(v) }

// Models reports whether t models c in the Default registry.
func Models(c *Concept, t Tag) bool { return Default.Models(c, t) }

// Common returns the common tag of a and b in the Default registry.
func Common(a, b Tag) (Tag, bool) { return Default.Common(a, b) }

// IsEmbedded reports whether from embeds losslessly into to in the Default registry.
func IsEmbedded(from, to Tag) bool { return Default.IsEmbedded(from, to) }

// Convert converts v to tag to using the Default registry.
func Convert(v any, to Tag) any { return Default.Convert(v, to) }

// Invoke dispatches op on args using the Default registry.
func Invoke(op *Operation, args ...any) any { return Default.Invoke(op, args...) }

// InvokeTag dispatches a ByTag operation using the Default registry.
func InvokeTag(op *Operation, tag Tag, args ...any) any { return Default.InvokeTag(op, tag, args...) }
