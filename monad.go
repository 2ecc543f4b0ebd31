// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// Applicative, Monad and MonadPlus operations.
//
// Minimal definitions: lift and ap for Applicative; chain or flatten for
// Monad; concat and empty for MonadPlus. append and prepend are derived
// from lift and concat.
var (
	OpLift    = NewOperation("lift", ByTag)
	OpAp      = NewOperation("ap", ByFirst)
	OpChain   = NewOperation("chain", ByFirst)
	OpFlatten = NewOperation("flatten", ByFirst)
	OpConcat  = NewOperation("concat", ByPair)
	OpEmpty   = NewOperation("empty", ByTag)
	OpAppend  = NewOperation("append", ByFirst)
	OpPrepend = NewOperation("prepend", ByFirst)
)

// Concepts of the monad hierarchy.
var (
	Applicative *Concept
	Monad       *Concept
	MonadPlus   *Concept
)

func defineMonad() {
	Applicative = DefineConcept("Applicative", []*Operation{OpLift, OpAp}, Refines(Functor))

	// chain(xs, f) = flatten(transform(xs, f)); flatten(xss) = chain(xss, id)
	OpChain.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		return r.Invoke(OpFlatten, r.Invoke(OpTransform, args[0], args[1]))
	}, OpFlatten, OpTransform)))
	OpFlatten.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		return r.Invoke(OpChain, args[0], func(x any) any { return x })
	}, OpChain)))
	Monad = DefineConcept("Monad", []*Operation{OpChain, OpFlatten},
		MinimalComplete(OpChain),
		MinimalComplete(OpFlatten),
		Refines(Applicative),
	)

	OpAppend.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		xs := args[0]
		return r.Invoke(OpConcat, xs, r.InvokeTag(OpLift, r.TagOf(xs), args[1]))
	}, OpConcat, OpLift)))
	OpPrepend.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		xs := args[0]
		return r.Invoke(OpConcat, r.InvokeTag(OpLift, r.TagOf(xs), args[1]), xs)
	}, OpConcat, OpLift)))
	MonadPlus = DefineConcept("MonadPlus", []*Operation{OpConcat, OpEmpty, OpAppend, OpPrepend},
		MinimalComplete(OpConcat, OpEmpty),
		Refines(Monad),
	)
}

// Lift puts x into the minimal structure of tag t.
func Lift(t Tag, x any) any { return Default.InvokeTag(OpLift, t, x) }

// Ap applies the functions in fs to the values in xs.
func Ap(fs, xs any) any { return Default.Invoke(OpAp, fs, xs) }

// Chain applies f to every element of xs and flattens the results.
func Chain(xs, f any) any { return Default.Invoke(OpChain, xs, f) }

// Flatten removes one level of nesting.
func Flatten(xss any) any { return Default.Invoke(OpFlatten, xss) }

// Concat combines two structures of the same tag.
func Concat(xs, ys any) any { return Default.Invoke(OpConcat, xs, ys) }

// Empty returns the identity of Concat for tag t.
func Empty(t Tag) any { return Default.InvokeTag(OpEmpty, t) }

// Append adds x at the end of xs.
func Append(xs, x any) any { return Default.Invoke(OpAppend, xs, x) }

// Prepend adds x at the front of xs.
func Prepend(xs, x any) any { return Default.Invoke(OpPrepend, xs, x) }
