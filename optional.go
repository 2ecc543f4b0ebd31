// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// OptionalFamily tags every Optional[T].
var OptionalFamily = NewFamily("Optional")

// Optional represents a value that is either Just a value or Nothing.
// It is the result type of searches and of the SFINAE adapter.
//
// Every Optional[T] has the Optional tag. Generic operations dispatched
// through the registry return Optional[any].
type Optional[T any] struct {
	isJust bool
	value  T
}

// Just creates an Optional holding v.
func Just[T any](v T) Optional[T] {
	return Optional[T]{isJust: true, value: v}
}

// Nothing creates an empty Optional.
func Nothing[T any]() Optional[T] {
	return Optional[T]{}
}

// Tag returns the Optional tag.
func (Optional[T]) Tag() Tag { return OptionalFamily.Tag() }

// IsJust returns true if o holds a value.
func (o Optional[T]) IsJust() bool {
	return o.isJust
}

// IsNothing returns true if o is empty.
func (o Optional[T]) IsNothing() bool {
	return !o.isJust
}

// Get returns the value and true, or zero and false.
func (o Optional[T]) Get() (T, bool) {
	if o.isJust {
		return o.value, true
	}
	var zero T
	return zero, false
}

func (o Optional[T]) erase() (any, bool) { return o.value, o.isJust }

type erasedOptional interface{ erase() (any, bool) }

// FromJust returns the value of o. It panics if o is Nothing.
func FromJust[T any](o Optional[T]) T {
	if !o.isJust {
		panic("typeclass: FromJust on Nothing")
	}
	return o.value
}

// FromMaybe returns the value of o, or def if o is Nothing.
func FromMaybe[T any](def T, o Optional[T]) T {
	if o.isJust {
		return o.value
	}
	return def
}

// Maybe returns f applied to the value of o, or def if o is Nothing.
func Maybe[T, B any](def B, f func(T) B, o Optional[T]) B {
	if o.isJust {
		return f(o.value)
	}
	return def
}

// MapOptional applies f to the value of o.
func MapOptional[T, B any](o Optional[T], f func(T) B) Optional[B] {
	if o.isJust {
		return Just(f(o.value))
	}
	return Nothing[B]()
}

// FlatMapOptional sequences two optional computations.
func FlatMapOptional[T, B any](o Optional[T], f func(T) Optional[B]) Optional[B] {
	if o.isJust {
		return f(o.value)
	}
	return Nothing[B]()
}

// OnlyWhen returns Just(f(x)) if pred(x) holds, and Nothing otherwise.
func OnlyWhen[T, B any](pred func(T) bool, f func(T) B, x T) Optional[B] {
	if pred(x) {
		return Just(f(x))
	}
	return Nothing[B]()
}

func optionalOf(v any) (any, bool) {
	o, ok := v.(erasedOptional)
	if !ok {
		panic("typeclass: not an Optional")
	}
	return o.erase()
}

// registerOptional installs the models of Optional:
// Comparable, Orderable (Nothing is less than any Just), Functor,
// Applicative, Monad, MonadPlus (the first Just wins), Foldable and
// Searchable.
func registerOptional(r *Registry) {
	r.RegisterAll(OptionalFamily.Tag(), Impls{
		OpEqual: func(r *Registry, args []any) any {
			x, xok := optionalOf(args[0])
			y, yok := optionalOf(args[1])
			if xok != yok {
				return false
			}
			return !xok || equalIn(r, x, y)
		},
		OpLess: func(r *Registry, args []any) any {
			x, xok := optionalOf(args[0])
			y, yok := optionalOf(args[1])
			switch {
			case !yok:
				return false
			case !xok:
				return true
			}
			return r.Invoke(OpLess, x, y).(bool)
		},
		OpTransform: func(_ *Registry, args []any) any {
			x, ok := optionalOf(args[0])
			if !ok {
				return Nothing[any]()
			}
			return Just(apply(args[1], x))
		},
		OpLift: func(_ *Registry, args []any) any { return Just(args[1]) },
		OpAp: func(_ *Registry, args []any) any {
			f, fok := optionalOf(args[0])
			x, xok := optionalOf(args[1])
			if !fok || !xok {
				return Nothing[any]()
			}
			return Just(apply(f, x))
		},
		OpFlatten: func(_ *Registry, args []any) any {
			inner, ok := optionalOf(args[0])
			if !ok {
				return Nothing[any]()
			}
			x, ok := optionalOf(inner)
			if !ok {
				return Nothing[any]()
			}
			return Just(x)
		},
		OpConcat: func(_ *Registry, args []any) any {
			if x, ok := optionalOf(args[0]); ok {
				return Just(x)
			}
			if y, ok := optionalOf(args[1]); ok {
				return Just(y)
			}
			return Nothing[any]()
		},
		OpEmpty: func(*Registry, []any) any { return Nothing[any]() },
		OpUnpack: func(_ *Registry, args []any) any {
			if x, ok := optionalOf(args[0]); ok {
				return apply(args[1], x)
			}
			return apply(args[1])
		},
		OpAnyOf: func(_ *Registry, args []any) any {
			x, ok := optionalOf(args[0])
			return ok && truthy(apply(args[1], x))
		},
		OpFindIf: func(_ *Registry, args []any) any {
			if x, ok := optionalOf(args[0]); ok && truthy(apply(args[1], x)) {
				return Just(x)
			}
			return Nothing[any]()
		},
	})
}
