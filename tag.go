// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import "reflect"

// Tag is the dispatch key of a value: its data type, independent of the
// concrete Go representation.
//
// A Tag is either plain (a Go type is its own tag) or belongs to a [Family].
// Family tags are unparametrized (every Optional[T] has the Optional tag)
// or parametrized by an underlying value type (IntegralConstant[int32]).
// Tags are comparable and may be used as map keys.
type Tag struct {
	family *Family
	typ    reflect.Type
}

// PlainTag returns the tag of a Go type that does not opt into a family.
func PlainTag(rt reflect.Type) Tag {
	return Tag{typ: rt}
}

// Family returns the family of t, or nil for plain tags.
func (t Tag) Family() *Family { return t.family }

// Type returns the Go type of a plain tag, the parameter of a parametrized
// family tag, or nil.
func (t Tag) Type() reflect.Type { return t.typ }

// IsZero reports whether t is the zero tag (the tag of nil).
func (t Tag) IsZero() bool { return t.family == nil && t.typ == nil }

// IsConstant reports whether t belongs to a constant family.
// Values of constant tags carry a value of type t.Type().
func (t Tag) IsConstant() bool { return t.family != nil && t.family.constant }

// Is reports whether t belongs to family f.
func (t Tag) Is(f *Family) bool { return t.family == f }

// String returns a readable form such as "int", "Optional" or
// "IntegralConstant[int32]".
func (t Tag) String() string {
	switch {
	case t.family == nil && t.typ == nil:
		return "<nil>"
	case t.family == nil:
		return t.typ.String()
	case t.typ == nil:
		return t.family.name
	default:
		return t.family.name + "[" + t.typ.String() + "]"
	}
}

// Tagged is implemented by types that opt into structural tagging.
// Tag must depend only on the static type of the receiver: it is called
// on zero values by [TagFor].
type Tagged interface {
	Tag() Tag
}

// TagFor returns the tag of type T without a value.
// Adapters registered with [Adapt] are not consulted; use
// [Registry.TagOf] for adapted representations.
func TagFor[T any]() Tag {
	rt := reflect.TypeFor[T]()
	if selfTagged(rt) {
		var zero T
		return any(zero).(Tagged).Tag()
	}
	return PlainTag(rt)
}

var taggedType = reflect.TypeFor[Tagged]()

// selfTagged reports whether values of rt report their own tag.
// A pointer whose Tag method is promoted from its element type is a
// distinct representation and gets a plain tag; calling the promoted
// method on a nil pointer would panic.
func selfTagged(rt reflect.Type) bool {
	if rt.Kind() == reflect.Interface || !rt.Implements(taggedType) {
		return false
	}
	return rt.Kind() != reflect.Pointer || !rt.Elem().Implements(taggedType)
}

// tagOfValue is the adapter-free part of tag resolution.
func tagOfValue(v any) Tag {
	if v == nil {
		return Tag{}
	}
	if t, ok := v.(Tagged); ok {
		rt := reflect.TypeOf(v)
		if rt.Kind() != reflect.Pointer || !rt.Elem().Implements(taggedType) {
			return t.Tag()
		}
		return PlainTag(rt)
	}
	return PlainTag(reflect.TypeOf(v))
}

// Family is a named tag constructor.
//
// Constant families describe values that carry a fixed underlying value
// (the Go rendering of a compile-time constant). Their wrap function builds
// a family value from an underlying value whose type is the tag parameter.
type Family struct {
	name     string
	constant bool
	wrap     func(reflect.Value) any
}

// NewFamily returns a non-constant family.
func NewFamily(name string) *Family {
	return &Family{name: name}
}

// NewConstantFamily returns a constant family.
// wrap receives a value of the tag parameter type and must return a value
// whose tag is f.Of(v.Type()). A nil wrap makes the family usable only as
// a conversion source.
func NewConstantFamily(name string, wrap func(reflect.Value) any) *Family {
	return &Family{name: name, constant: true, wrap: wrap}
}

// Name returns the family name.
func (f *Family) Name() string { return f.name }

// IsConstant reports whether f is a constant family.
func (f *Family) IsConstant() bool { return f.constant }

// Tag returns the unparametrized tag of f.
func (f *Family) Tag() Tag { return Tag{family: f} }

// Of returns the tag of f parametrized by rt.
func (f *Family) Of(rt reflect.Type) Tag { return Tag{family: f, typ: rt} }

// Wrap builds a value of f.Of(v.Type()) carrying v.
// Panics with ErrNoConversion if f cannot build values.
func (f *Family) Wrap(v reflect.Value) any {
	if f.wrap == nil {
		panic(&DispatchError{Tags: []Tag{f.Of(v.Type())}, Err: ErrNoConversion, Detail: "family " + f.name + " cannot wrap values"})
	}
	return f.wrap(v)
}

// match helpers used by conditional slots

// Match selects the tags a conditional slot applies to.
type Match func(tags []Tag) bool

// ForFamily matches when every tag belongs to f.
func ForFamily(f *Family) Match {
	return func(tags []Tag) bool {
		for _, t := range tags {
			if t.family != f {
				return false
			}
		}
		return len(tags) > 0
	}
}

// SameTags matches when all tags are equal.
func SameTags(tags []Tag) bool {
	for _, t := range tags[1:] {
		if t != tags[0] {
			return false
		}
	}
	return true
}

// DistinctTags matches binary dispatch with two different tags.
func DistinctTags(tags []Tag) bool {
	return len(tags) == 2 && tags[0] != tags[1]
}

// And combines matches.
func And(ms ...Match) Match {
	return func(tags []Tag) bool {
		for _, m := range ms {
			if !m(tags) {
				return false
			}
		}
		return true
	}
}
