// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ConversionKind classifies a conversion.
type ConversionKind uint8

const (
	// Explicit conversions may lose information and are only applied by
	// Convert.
	Explicit ConversionKind = iota
	// Embedding conversions are lossless and may be applied implicitly,
	// for example when lifting heterogeneous operands.
	Embedding
)

func (k ConversionKind) String() string {
	if k == Embedding {
		return "embedding"
	}
	return "explicit"
}

// Converter converts a value to a fixed target tag.
type Converter func(r *Registry, v any) any

// ConversionRule proposes a conversion for a pair of tags.
type ConversionRule func(r *Registry, from, to Tag) (Converter, ConversionKind, bool)

type conversion struct {
	fn     Converter
	kind   ConversionKind
	source string
}

type conversionRule struct {
	name string
	rule ConversionRule
}

type convResult struct {
	conv *conversion
	err  *DispatchError
}

var identity = &conversion{fn: func(_ *Registry, v any) any { return v }, kind: Embedding, source: "identity"}

// RegisterConversion installs fn as the conversion from one tag to another.
// Panics with ErrAmbiguousConversion if the pair is already registered.
func (r *Registry) RegisterConversion(from, to Tag, kind ConversionKind, fn Converter) {
	r.lock("conversion " + from.String() + " → " + to.String())
	defer r.mu.Unlock()
	k := tagPair{from, to}
	if _, dup := r.conversions[k]; dup {
		fail(&DispatchError{Tags: []Tag{from, to}, Err: ErrAmbiguousConversion, Detail: "registered twice"})
	}
	r.conversions[k] = &conversion{fn: fn, kind: kind, source: "registered"}
	r.log.Debug().Stringer("from", from).Stringer("to", to).Stringer("kind", kind).Msg("conversion registered")
}

// RegisterConversionRule adds a rule consulted after exact conversions.
func (r *Registry) RegisterConversionRule(name string, rule ConversionRule) {
	r.lock("conversion rule " + name)
	defer r.mu.Unlock()
	r.convRules = append(r.convRules, conversionRule{name: name, rule: rule})
	r.log.Debug().Str("rule", name).Msg("conversion rule registered")
}

// Conversion reports the kind of the conversion between two tags, if one
// exists. Panics with ErrAmbiguousConversion if two rules apply.
func (r *Registry) Conversion(from, to Tag) (ConversionKind, bool) {
	c, err := r.lookupConversion(from, to)
	if err != nil {
		if errors.Is(err, ErrNoConversion) {
			return Explicit, false
		}
		fail(err)
	}
	return c.kind, true
}

// Convert converts v to the tag to. Both kinds of conversions apply.
// Panics with ErrNoConversion for unregistered pairs.
func (r *Registry) Convert(v any, to Tag) any {
	from := r.TagOf(v)
	c, err := r.lookupConversion(from, to)
	if err != nil {
		fail(err)
	}
	return c.fn(r, v)
}

// TryConvert is like Convert but returns lookup failures as errors.
func (r *Registry) TryConvert(v any, to Tag) (any, error) {
	c, err := r.lookupConversion(r.TagOf(v), to)
	if err != nil {
		return nil, err
	}
	return c.fn(r, v), nil
}

// ConvertTo converts v to T using the Default registry.
func ConvertTo[T any](v any) T { return ConvertWith[T](Default, v) }

// ConvertWith converts v to T using r. The target tag is the tag of T in r.
func ConvertWith[T any](r *Registry, v any) T {
	to := r.TagOfType(reflect.TypeFor[T]())
	out := r.Convert(v, to)
	t, ok := out.(T)
	if !ok {
		fail(&DispatchError{Tags: []Tag{r.TagOf(v), to}, Err: ErrNoConversion,
			Detail: fmt.Sprintf("conversion produced %T, not %s", out, reflect.TypeFor[T]())})
	}
	return t
}

func (r *Registry) lookupConversion(from, to Tag) (*conversion, *DispatchError) {
	if from == to && !from.IsZero() {
		return identity, nil
	}
	r.Seal()
	k := tagPair{from, to}
	if v, ok := r.convs.Load(k); ok {
		res := v.(convResult)
		return res.conv, res.err
	}
	c, err := r.computeConversion(from, to)
	v, _ := r.convs.LoadOrStore(k, convResult{conv: c, err: err})
	res := v.(convResult)
	return res.conv, res.err
}

func (r *Registry) computeConversion(from, to Tag) (*conversion, *DispatchError) {
	if from.IsZero() || to.IsZero() {
		return nil, &DispatchError{Tags: []Tag{from, to}, Err: ErrNoConversion, Detail: "nil tag"}
	}
	if c, ok := r.conversions[tagPair{from, to}]; ok {
		return c, nil
	}

	var found *conversion
	var names []string
	for _, cr := range r.convRules {
		if fn, kind, ok := cr.rule(r, from, to); ok {
			found = &conversion{fn: fn, kind: kind, source: cr.name}
			names = append(names, cr.name)
		}
	}
	if len(names) > 1 {
		return nil, &DispatchError{Tags: []Tag{from, to}, Err: ErrAmbiguousConversion,
			Detail: "rules " + strings.Join(names, ", ") + " all apply"}
	}
	if found != nil {
		return found, nil
	}

	if c := r.builtinConversion(from, to); c != nil {
		return c, nil
	}
	return nil, &DispatchError{Tags: []Tag{from, to}, Err: ErrNoConversion}
}

// builtinConversion covers constant tags and predeclared numeric types.
// The value operation of a constant tag is its conversion to the
// underlying value type.
func (r *Registry) builtinConversion(from, to Tag) *conversion {
	if from.IsConstant() {
		if _, err := r.resolveTop(OpValue, []Tag{from}); err != nil {
			return nil
		}
		value := func(rr *Registry, v any) any { return rr.Invoke(OpValue, v) }
		switch {
		case to == PlainTag(from.typ):
			return &conversion{fn: value, kind: Embedding, source: "value"}
		case to.family == nil && isNumeric(from.typ) && isNumeric(to.typ):
			return &conversion{
				fn:     func(rr *Registry, v any) any { return convertNumeric(value(rr, v), to.typ) },
				kind:   numericKind(from.typ, to.typ),
				source: "value, numeric",
			}
		case to.IsConstant() && to.family.wrap != nil && (from.typ == to.typ || isNumeric(from.typ) && isNumeric(to.typ)):
			kind := Embedding
			if from.typ != to.typ {
				kind = numericKind(from.typ, to.typ)
			}
			return &conversion{
				fn: func(rr *Registry, v any) any {
					u := value(rr, v)
					if from.typ != to.typ {
						u = convertNumeric(u, to.typ)
					}
					return to.family.Wrap(reflect.ValueOf(u))
				},
				kind:   kind,
				source: "value, wrap " + to.family.name,
			}
		}
		return nil
	}
	if from.family == nil && to.family == nil && isNumeric(from.typ) && isNumeric(to.typ) {
		return &conversion{
			fn:     func(_ *Registry, v any) any { return convertNumeric(v, to.typ) },
			kind:   numericKind(from.typ, to.typ),
			source: "numeric",
		}
	}
	return nil
}

func numericKind(from, to reflect.Type) ConversionKind {
	if embedsNumeric(from, to) {
		return Embedding
	}
	return Explicit
}
