// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Impl is the body of an implementation slot.
// It receives the registry that resolved it, so that defaults can
// dispatch other operations on the same tables.
type Impl func(r *Registry, args []any) any

// Dispatch selects which operands determine the dispatch tags.
type Dispatch uint8

const (
	// ByFirst dispatches on the tag of the first argument.
	ByFirst Dispatch = iota
	// ByPair dispatches on the tags of the first two arguments.
	ByPair
	// ByTag dispatches on an explicit tag (zero, lift, empty, make).
	ByTag
)

func (d Dispatch) arity() int {
	if d == ByPair {
		return 2
	}
	return 1
}

func (d Dispatch) String() string {
	switch d {
	case ByFirst:
		return "first"
	case ByPair:
		return "pair"
	default:
		return "tag"
	}
}

// Fallback is a library-provided default implementation of an operation.
// It is viable for a tag when every required operation resolves for the
// same tag, and its guard (if any) accepts the dispatch tags.
type Fallback struct {
	requires []*Operation
	when     Match
	impl     Impl
}

// DefaultVia returns a default implemented in terms of the required operations.
func DefaultVia(impl Impl, requires ...*Operation) Fallback {
	return Fallback{requires: requires, impl: impl}
}

// When restricts d to the tags accepted by m.
// Guarded defaults do not count towards minimal complete definitions.
func (d Fallback) When(m Match) Fallback {
	d.when = m
	return d
}

// Operation is one primitive or derived operation of a [Concept].
type Operation struct {
	name     string
	by       Dispatch
	hetero   bool
	defaults []Fallback
	concept  *Concept
}

// OperationOption configures an [Operation].
type OperationOption func(*Operation)

// Heterogeneous makes a ByPair operation lift operands with different tags
// into their common tag before dispatching.
func Heterogeneous() OperationOption {
	return func(op *Operation) { op.hetero = true }
}

// WithDefault appends a default strategy. Strategies are tried in order.
func WithDefault(d Fallback) OperationOption {
	return func(op *Operation) { op.defaults = append(op.defaults, d) }
}

// NewOperation declares an operation. It becomes usable once a concept
// containing it is defined with [DefineConcept].
func NewOperation(name string, by Dispatch, opts ...OperationOption) *Operation {
	op := &Operation{name: name, by: by}
	for _, o := range opts {
		o(op)
	}
	if op.hetero && by != ByPair {
		panic("typeclass: heterogeneous operation " + name + " must dispatch ByPair")
	}
	return op
}

// extend applies options to an operation declared before its defaults
// could name each other.
func (op *Operation) extend(opts ...OperationOption) {
	if op.concept != nil {
		panic("typeclass: operation " + op.name + " already defined")
	}
	for _, o := range opts {
		o(op)
	}
}

// Name returns the operation name.
func (op *Operation) Name() string { return op.name }

// Concept returns the concept op belongs to.
func (op *Operation) Concept() *Concept { return op.concept }

// Dispatch returns how op selects its tags.
func (op *Operation) Dispatch() Dispatch { return op.by }

// IsHeterogeneous reports whether op lifts mismatched operand tags.
func (op *Operation) IsHeterogeneous() bool { return op.hetero }

func (op *Operation) String() string {
	if op.concept == nil {
		return op.name
	}
	return op.concept.name + "." + op.name
}

// anchor reports whether op has no unguarded default.
func (op *Operation) anchor() bool {
	return !lo.SomeBy(op.defaults, func(d Fallback) bool { return d.when == nil })
}

// Concept is a named capability set.
type Concept struct {
	name    string
	ops     []*Operation
	mcds    [][]*Operation
	refines []*Concept
}

// ConceptOption configures a [Concept].
type ConceptOption func(*Concept)

// MinimalComplete adds a minimal complete definition: a set of operations
// which, once implemented for a tag, make every other operation available.
func MinimalComplete(ops ...*Operation) ConceptOption {
	return func(c *Concept) { c.mcds = append(c.mcds, ops) }
}

// Refines declares that modeling c requires modeling each parent.
// Defaults of c may require operations of its parents.
func Refines(parents ...*Concept) ConceptOption {
	return func(c *Concept) { c.refines = append(c.refines, parents...) }
}

// DefineConcept defines a concept and validates its default graph.
//
// Panics with ErrIncompleteDefinition when an operation cannot be derived
// from some minimal complete definition, when a default requires an
// operation outside the concept and its parents, or when the concept has
// neither anchors nor minimal complete definitions.
func DefineConcept(name string, ops []*Operation, opts ...ConceptOption) *Concept {
	c := &Concept{name: name, ops: ops}
	for _, o := range opts {
		o(c)
	}
	for _, op := range ops {
		if op.concept != nil {
			panic("typeclass: operation " + op.name + " already belongs to " + op.concept.name)
		}
		op.concept = c
	}
	if len(c.mcds) == 0 {
		anchors := lo.Filter(ops, func(op *Operation, _ int) bool { return op.anchor() })
		if len(anchors) == 0 {
			fail(&DispatchError{Err: ErrIncompleteDefinition, Detail: "concept " + name + " has no anchor operation"})
		}
		c.mcds = [][]*Operation{anchors}
	}
	c.validate()
	return c
}

func (c *Concept) validate() {
	available := c.inherited()
	for _, op := range c.ops {
		for _, d := range op.defaults {
			for _, req := range d.requires {
				if req.concept != c && !available[req] {
					fail(&DispatchError{Op: op, Err: ErrIncompleteDefinition,
						Detail: "default requires " + req.name + " outside " + c.name})
				}
			}
		}
	}
	for _, mcd := range c.mcds {
		resolved := make(map[*Operation]bool, len(c.ops))
		for op := range available {
			resolved[op] = true
		}
		for _, op := range mcd {
			if op.concept != c {
				fail(&DispatchError{Op: op, Err: ErrIncompleteDefinition,
					Detail: "minimal definition of " + c.name + " names a foreign operation"})
			}
			resolved[op] = true
		}
		// fixpoint over unguarded defaults
		for changed := true; changed; {
			changed = false
			for _, op := range c.ops {
				if resolved[op] {
					continue
				}
				for _, d := range op.defaults {
					if d.when != nil {
						continue
					}
					if lo.EveryBy(d.requires, func(req *Operation) bool { return resolved[req] }) {
						resolved[op] = true
						changed = true
						break
					}
				}
			}
		}
		for _, op := range c.ops {
			if !resolved[op] {
				fail(&DispatchError{Op: op, Err: ErrIncompleteDefinition,
					Detail: "not derivable from {" + strings.Join(opNames(mcd), ", ") + "}"})
			}
		}
	}
}

// inherited returns the operations of every refined concept, transitively.
func (c *Concept) inherited() map[*Operation]bool {
	out := make(map[*Operation]bool)
	var walk func(*Concept)
	walk = func(p *Concept) {
		for _, op := range p.ops {
			out[op] = true
		}
		for _, pp := range p.refines {
			walk(pp)
		}
	}
	for _, p := range c.refines {
		walk(p)
	}
	return out
}

// Name returns the concept name.
func (c *Concept) Name() string { return c.name }

// Operations returns the operations of c in declaration order.
func (c *Concept) Operations() []*Operation { return slices.Clone(c.ops) }

// MinimalDefinitions returns the minimal complete definitions of c.
func (c *Concept) MinimalDefinitions() [][]*Operation {
	return lo.Map(c.mcds, func(m []*Operation, _ int) []*Operation { return slices.Clone(m) })
}

// Refined returns the concepts c refines.
func (c *Concept) Refined() []*Concept { return slices.Clone(c.refines) }

func (c *Concept) String() string { return c.name }

func (c *Concept) missing() [][]string {
	return lo.Map(c.mcds, func(m []*Operation, _ int) []string { return opNames(m) })
}

func opNames(ops []*Operation) []string {
	return lo.Map(ops, func(op *Operation, _ int) string { return op.name })
}
