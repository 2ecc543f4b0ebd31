// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"fmt"
	"reflect"
)

// Functor operations.
var (
	OpTransform = NewOperation("transform", ByFirst)
	OpAdjustIf  = NewOperation("adjust_if", ByFirst)
	OpAdjust    = NewOperation("adjust", ByFirst)
	OpReplaceIf = NewOperation("replace_if", ByFirst)
	OpReplace   = NewOperation("replace", ByFirst)
	OpFill      = NewOperation("fill", ByFirst)
)

// Functor is the concept of structures whose elements can be mapped.
// Minimal complete definitions: transform, or adjust_if.
var Functor *Concept

func defineFunctor() {
	OpTransform.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		return r.Invoke(OpAdjustIf, args[0], always, args[1])
	}, OpAdjustIf)))
	OpAdjustIf.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		pred, f := args[1], args[2]
		return r.Invoke(OpTransform, args[0], func(x any) any {
			if truthy(apply(pred, x)) {
				return apply(f, x)
			}
			return x
		})
	}, OpTransform)))
	OpAdjust.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		v := args[1]
		return r.Invoke(OpAdjustIf, args[0], func(x any) bool { return equalIn(r, v, x) }, args[2])
	}, OpAdjustIf)))
	OpReplaceIf.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		v := args[2]
		return r.Invoke(OpAdjustIf, args[0], args[1], func(any) any { return v })
	}, OpAdjustIf)))
	OpReplace.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		old := args[1]
		return r.Invoke(OpReplaceIf, args[0], func(x any) bool { return equalIn(r, old, x) }, args[2])
	}, OpReplaceIf)))
	OpFill.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		v := args[1]
		return r.Invoke(OpTransform, args[0], func(any) any { return v })
	}, OpTransform)))
	Functor = DefineConcept("Functor",
		[]*Operation{OpTransform, OpAdjustIf, OpAdjust, OpReplaceIf, OpReplace, OpFill},
		MinimalComplete(OpTransform),
		MinimalComplete(OpAdjustIf),
	)
}

func always(any) bool { return true }

// apply calls the function f with args. f may be any Go function with at
// most one result; common erased signatures avoid reflection.
func apply(f any, args ...any) any {
	switch g := f.(type) {
	case func(any) any:
		if len(args) == 1 {
			return g(args[0])
		}
	case func(any) bool:
		if len(args) == 1 {
			return g(args[0])
		}
	case func(any, any) any:
		if len(args) == 2 {
			return g(args[0], args[1])
		}
	case func(...any) any:
		return g(args...)
	}
	fv := reflect.ValueOf(f)
	if fv.Kind() != reflect.Func {
		panic(fmt.Sprintf("typeclass: cannot call %T", f))
	}
	ft := fv.Type()
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		if a == nil {
			in[i] = reflect.Zero(paramType(ft, i))
			continue
		}
		in[i] = reflect.ValueOf(a)
	}
	out := fv.Call(in)
	if len(out) == 0 {
		return nil
	}
	return out[0].Interface()
}

// paramType returns the type of the i-th argument of ft, expanding a
// variadic tail.
func paramType(ft reflect.Type, i int) reflect.Type {
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}
	return ft.In(i)
}

// truthy interprets the result of a predicate.
func truthy(v any) bool {
	b, ok := v.(bool)
	if !ok {
		panic(fmt.Sprintf("typeclass: predicate returned %T, want bool", v))
	}
	return b
}

// Transform applies f to every element of xs.
func Transform(xs, f any) any { return Default.Invoke(OpTransform, xs, f) }

// AdjustIf applies f to the elements of xs satisfying pred.
func AdjustIf(xs, pred, f any) any { return Default.Invoke(OpAdjustIf, xs, pred, f) }

// Adjust applies f to the elements of xs equal to v.
func Adjust(xs, v, f any) any { return Default.Invoke(OpAdjust, xs, v, f) }

// ReplaceIf replaces the elements of xs satisfying pred with v.
func ReplaceIf(xs, pred, v any) any { return Default.Invoke(OpReplaceIf, xs, pred, v) }

// Replace replaces the elements of xs equal to old with v.
func Replace(xs, old, v any) any { return Default.Invoke(OpReplace, xs, old, v) }

// Fill replaces every element of xs with v.
func Fill(xs, v any) any { return Default.Invoke(OpFill, xs, v) }
