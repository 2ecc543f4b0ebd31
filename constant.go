// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// OpValue extracts the underlying value of a constant tag.
// It doubles as the built-in conversion from a constant tag to its value
// type.
var OpValue = NewOperation("value", ByFirst)

// Constant is the concept of values carrying a fixed underlying value.
var Constant *Concept

func defineConstant() {
	Constant = DefineConcept("Constant", []*Operation{OpValue})
}

// Number is the set of predeclared integer and floating-point types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Constant families provided by the package.
//
// IntegralConstant tags Integral[T]. CanonicalConstant tags Canonical[T]
// and is the common family of constants from two different families.
var (
	IntegralConstant  = NewConstantFamily("IntegralConstant", wrapIntegral)
	CanonicalConstant = NewConstantFamily("CanonicalConstant", wrapCanonical)
)

// Integral is an integral constant: a value of an integer type carried
// under the IntegralConstant[T] tag.
type Integral[T constraints.Integer] struct{ v T }

// IntegralOf returns the integral constant holding v.
func IntegralOf[T constraints.Integer](v T) Integral[T] { return Integral[T]{v: v} }

// Value returns the underlying value.
func (c Integral[T]) Value() T { return c.v }

func (Integral[T]) Tag() Tag { return IntegralConstant.Of(reflect.TypeFor[T]()) }

func (c Integral[T]) constValue() any { return c.v }

// Canonical is a constant in the canonical family.
type Canonical[T Number] struct{ v T }

// CanonicalOf returns the canonical constant holding v.
func CanonicalOf[T Number](v T) Canonical[T] { return Canonical[T]{v: v} }

// Value returns the underlying value.
func (c Canonical[T]) Value() T { return c.v }

func (Canonical[T]) Tag() Tag { return CanonicalConstant.Of(reflect.TypeFor[T]()) }

func (c Canonical[T]) constValue() any { return c.v }

type constantValue interface{ constValue() any }

func wrapIntegral(v reflect.Value) any {
	switch x := v.Interface().(type) {
	case int:
		return IntegralOf(x)
	case int8:
		return IntegralOf(x)
	case int16:
		return IntegralOf(x)
	case int32:
		return IntegralOf(x)
	case int64:
		return IntegralOf(x)
	case uint:
		return IntegralOf(x)
	case uint8:
		return IntegralOf(x)
	case uint16:
		return IntegralOf(x)
	case uint32:
		return IntegralOf(x)
	case uint64:
		return IntegralOf(x)
	case uintptr:
		return IntegralOf(x)
	}
	panic("typeclass: IntegralConstant cannot hold " + v.Type().String())
}

func wrapCanonical(v reflect.Value) any {
	switch x := v.Interface().(type) {
	case int:
		return CanonicalOf(x)
	case int8:
		return CanonicalOf(x)
	case int16:
		return CanonicalOf(x)
	case int32:
		return CanonicalOf(x)
	case int64:
		return CanonicalOf(x)
	case uint:
		return CanonicalOf(x)
	case uint8:
		return CanonicalOf(x)
	case uint16:
		return CanonicalOf(x)
	case uint32:
		return CanonicalOf(x)
	case uint64:
		return CanonicalOf(x)
	case uintptr:
		return CanonicalOf(x)
	case float32:
		return CanonicalOf(x)
	case float64:
		return CanonicalOf(x)
	}
	panic("typeclass: CanonicalConstant cannot hold " + v.Type().String())
}

// registerConstants installs the value primitive of the package families
// and value-based models for every constant family with a value slot.
func registerConstants(r *Registry) {
	builtin := func(tags []Tag) bool {
		return tags[0].Is(IntegralConstant) || tags[0].Is(CanonicalConstant)
	}
	r.RegisterWhen(OpValue, "constant.builtin", builtin, func(_ *Registry, args []any) any {
		return args[0].(constantValue).constValue()
	})

	// hasValue reads the slot tables directly; it only runs after sealing.
	hasValue := func(t Tag) bool {
		s, err := r.direct(OpValue, []Tag{t})
		return err != nil || s != nil
	}
	valued := func(tags []Tag) bool {
		return SameTags(tags) && tags[0].IsConstant() && hasValue(tags[0])
	}
	numericValued := func(tags []Tag) bool { return valued(tags) && isNumeric(tags[0].typ) }
	orderedValued := func(tags []Tag) bool { return valued(tags) && isOrderedKind(tags[0].typ) }
	// arithmetic results are rewrapped, so the family must be able to wrap
	wrapping := func(tags []Tag) bool { return numericValued(tags) && tags[0].family.wrap != nil }

	value := func(r *Registry, v any) any { return r.Invoke(OpValue, v) }
	onValues := func(op *Operation) Impl {
		return func(r *Registry, args []any) any {
			return r.Invoke(op, value(r, args[0]), value(r, args[1]))
		}
	}
	rewrap := func(op *Operation) Impl {
		return func(r *Registry, args []any) any {
			t := r.TagOf(args[0])
			return t.family.Wrap(reflect.ValueOf(r.Invoke(op, value(r, args[0]), value(r, args[1]))))
		}
	}
	unit := func(op *Operation) Impl {
		return func(r *Registry, args []any) any {
			t := args[0].(Tag)
			return t.family.Wrap(reflect.ValueOf(r.InvokeTag(op, PlainTag(t.typ))))
		}
	}

	r.RegisterWhen(OpEqual, "constant.value", valued, onValues(OpEqual))
	r.RegisterWhen(OpLess, "constant.value", orderedValued, onValues(OpLess))
	r.RegisterWhen(OpPlus, "constant.value", wrapping, rewrap(OpPlus))
	r.RegisterWhen(OpZero, "constant.value", wrapping, unit(OpZero))
	r.RegisterWhen(OpMinus, "constant.value", wrapping, rewrap(OpMinus))
	r.RegisterWhen(OpMult, "constant.value", wrapping, rewrap(OpMult))
	r.RegisterWhen(OpOne, "constant.value", wrapping, unit(OpOne))
	r.RegisterWhen(OpQuot, "constant.value", wrapping, rewrap(OpQuot))
	r.RegisterWhen(OpMod, "constant.value", wrapping, rewrap(OpMod))
}

// Value returns the underlying value of a constant.
func Value(c any) any { return Default.Invoke(OpValue, c) }
