// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"errors"
	"fmt"
	"reflect"
)

// Sfinae wraps a function so that calling it with arguments it cannot
// accept yields Nothing instead of failing.
//
// f must be a function with exactly one result. The returned function
// checks the argument count and the assignability of every argument to
// the parameter types before calling f; on a mismatch f is not run and the
// result is Nothing. Otherwise the result is Just(f(args...)). Panics
// raised while f runs propagate.
func Sfinae(f any) func(args ...any) Optional[any] {
	fv := reflect.ValueOf(f)
	if fv.Kind() != reflect.Func {
		panic(fmt.Sprintf("typeclass: Sfinae of non-function %T", f))
	}
	ft := fv.Type()
	if ft.NumOut() != 1 {
		panic(fmt.Sprintf("typeclass: Sfinae of %s: want exactly one result", ft))
	}
	return func(args ...any) Optional[any] {
		in, ok := bindArgs(ft, args)
		if !ok {
			return Nothing[any]()
		}
		return Just(fv.Call(in)[0].Interface())
	}
}

// bindArgs converts args to call arguments of ft, reporting whether the
// call is well-typed.
func bindArgs(ft reflect.Type, args []any) ([]reflect.Value, bool) {
	n := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < n-1 {
			return nil, false
		}
	} else if len(args) != n {
		return nil, false
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		pt := paramType(ft, i)
		if a == nil {
			switch pt.Kind() {
			case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
				in[i] = reflect.Zero(pt)
				continue
			}
			return nil, false
		}
		av := reflect.ValueOf(a)
		if !av.Type().AssignableTo(pt) {
			return nil, false
		}
		in[i] = av
	}
	return in, true
}

// SfinaeInvoke returns a function dispatching op on the Default registry,
// yielding Nothing when op does not resolve for the arguments.
func SfinaeInvoke(op *Operation) func(args ...any) Optional[any] {
	return Default.SfinaeInvoke(op)
}

// SfinaeInvoke returns a function dispatching op within r. When no slot
// applies the result is Nothing. Ambiguities, unsafe embeddings and
// failures inside the resolved slot propagate.
func (r *Registry) SfinaeInvoke(op *Operation) func(args ...any) Optional[any] {
	return func(args ...any) Optional[any] {
		tags, err := r.dispatchTags(op, args)
		if err != nil {
			return Nothing[any]()
		}
		s, err := r.resolveTop(op, tags)
		if err != nil {
			if !substitutionFailure(err) {
				fail(err)
			}
			return Nothing[any]()
		}
		return Just(s.impl(r, args))
	}
}

// substitutionFailure reports whether err means "no candidate applies"
// rather than a defect such as an ambiguity or an unsafe embedding.
func substitutionFailure(err error) bool {
	return errors.Is(err, ErrNoImplementation) || errors.Is(err, ErrNoCommonType) || errors.Is(err, ErrArity)
}

// Probe wraps f so that it can be attempted on a value of unknown type:
// the result is Just(f(v)) when v holds an A, and Nothing otherwise.
func Probe[A, R any](f func(A) R) func(any) Optional[R] {
	return func(v any) Optional[R] {
		a, ok := v.(A)
		if !ok {
			return Nothing[R]()
		}
		return Just(f(a))
	}
}

// Supports reports whether v implements the interface I.
func Supports[I any](v any) bool {
	_, ok := v.(I)
	return ok
}
