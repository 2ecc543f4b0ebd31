// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"errors"
	"strings"
)

// Dispatch failure categories.
//
// Every category except the ones recovered by the SFINAE adapter is a hard
// failure: the engine panics with a *DispatchError wrapping one of these.
// The Try* entry points return the same error instead.
var (
	ErrNoImplementation     = errors.New("no implementation")
	ErrAmbiguousDispatch    = errors.New("ambiguous dispatch")
	ErrAmbiguousCommon      = errors.New("ambiguous common type")
	ErrAmbiguousConversion  = errors.New("ambiguous conversion")
	ErrAmbiguousTag         = errors.New("ambiguous tag")
	ErrUnsafeEmbedding      = errors.New("unsafe heterogeneous operation")
	ErrNoConversion         = errors.New("no conversion")
	ErrNoCommonType         = errors.New("no common type")
	ErrIncompleteDefinition = errors.New("incomplete minimal definition")
	ErrSealed               = errors.New("registry sealed")
	ErrConceptCheck         = errors.New("concept check failed")
	ErrArity                = errors.New("dispatch arity mismatch")
)

// DispatchError describes a failed registration or resolution.
type DispatchError struct {
	// Op is the operation being registered or resolved, if any.
	Op *Operation
	// Tags are the dispatch tags involved.
	Tags []Tag
	// Missing lists the anchor sets that would make the call resolvable.
	Missing [][]string
	// Detail is a free-form explanation.
	Detail string
	// Err is one of the Err* sentinels.
	Err error
}

func (e *DispatchError) Error() string {
	var b strings.Builder
	b.WriteString("typeclass: ")
	b.WriteString(e.Err.Error())
	if e.Op != nil {
		b.WriteString(" for ")
		b.WriteString(e.Op.String())
	}
	if len(e.Tags) > 0 {
		b.WriteString(" on (")
		for i, t := range e.Tags {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(t.String())
		}
		b.WriteByte(')')
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if len(e.Missing) > 0 {
		b.WriteString("; implement one of:")
		for _, set := range e.Missing {
			b.WriteString(" {")
			b.WriteString(strings.Join(set, ", "))
			b.WriteByte('}')
		}
	}
	return b.String()
}

func (e *DispatchError) Unwrap() error { return e.Err }

// fail panics with a DispatchError.
//
//go:noinline
func fail(err *DispatchError) {
	panic(err)
}
