// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// Arithmetic operations.
var (
	OpPlus   = NewOperation("plus", ByPair, Heterogeneous())
	OpZero   = NewOperation("zero", ByTag)
	OpMinus  = NewOperation("minus", ByPair, Heterogeneous())
	OpNegate = NewOperation("negate", ByFirst)
	OpMult   = NewOperation("mult", ByPair, Heterogeneous())
	OpOne    = NewOperation("one", ByTag)
	OpPower  = NewOperation("power", ByFirst)
	OpQuot   = NewOperation("quot", ByPair, Heterogeneous())
	OpMod    = NewOperation("mod", ByPair, Heterogeneous())
)

// Concepts of the arithmetic hierarchy.
//
//	Monoid          plus, zero
//	Group           minus or negate; refines Monoid
//	Ring            mult, one; refines Group
//	IntegralDomain  quot, mod; refines Ring
var (
	Monoid         *Concept
	Group          *Concept
	Ring           *Concept
	IntegralDomain *Concept
)

func defineArithmetic() {
	Monoid = DefineConcept("Monoid", []*Operation{OpPlus, OpZero})

	OpMinus.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		return r.Invoke(OpPlus, args[0], r.Invoke(OpNegate, args[1]))
	}, OpNegate, OpPlus)))
	OpNegate.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		x := args[0]
		return r.Invoke(OpMinus, r.InvokeTag(OpZero, r.TagOf(x)), x)
	}, OpMinus, OpZero)))
	Group = DefineConcept("Group", []*Operation{OpMinus, OpNegate},
		MinimalComplete(OpMinus),
		MinimalComplete(OpNegate),
		Refines(Monoid),
	)

	OpPower.extend(WithDefault(DefaultVia(func(r *Registry, args []any) any {
		x, n := args[0], args[1].(int)
		if n < 0 {
			panic("typeclass: power with a negative exponent")
		}
		acc := r.InvokeTag(OpOne, r.TagOf(x))
		for ; n > 0; n-- {
			acc = r.Invoke(OpMult, acc, x)
		}
		return acc
	}, OpMult, OpOne)))
	Ring = DefineConcept("Ring", []*Operation{OpMult, OpOne, OpPower}, Refines(Group))

	IntegralDomain = DefineConcept("IntegralDomain", []*Operation{OpQuot, OpMod}, Refines(Ring))
}

// plainNumeric accepts predeclared numeric tags of the same type.
func plainNumeric(tags []Tag) bool {
	t := tags[0]
	return SameTags(tags) && t.family == nil && isNumeric(t.typ)
}

func registerArithmeticBuiltins(r *Registry) {
	binary := func(op byte) Impl {
		return func(_ *Registry, args []any) any { return arith(op, args[0], args[1]) }
	}
	constant := func(n int64) Impl {
		return func(_ *Registry, args []any) any { return numberOf(args[0].(Tag).typ, n) }
	}
	r.RegisterWhen(OpPlus, "builtin.numeric", plainNumeric, binary('+'))
	r.RegisterWhen(OpZero, "builtin.numeric", plainNumeric, constant(0))
	r.RegisterWhen(OpMinus, "builtin.numeric", plainNumeric, binary('-'))
	r.RegisterWhen(OpMult, "builtin.numeric", plainNumeric, binary('*'))
	r.RegisterWhen(OpOne, "builtin.numeric", plainNumeric, constant(1))
	r.RegisterWhen(OpQuot, "builtin.numeric", plainNumeric, binary('/'))
	r.RegisterWhen(OpMod, "builtin.numeric", plainNumeric, binary('%'))
}

// Plus adds a and b.
func Plus(a, b any) any { return Default.Invoke(OpPlus, a, b) }

// Zero returns the additive identity of tag t.
func Zero(t Tag) any { return Default.InvokeTag(OpZero, t) }

// Minus subtracts b from a.
func Minus(a, b any) any { return Default.Invoke(OpMinus, a, b) }

// Negate returns the additive inverse of x.
func Negate(x any) any { return Default.Invoke(OpNegate, x) }

// Mult multiplies a and b.
func Mult(a, b any) any { return Default.Invoke(OpMult, a, b) }

// One returns the multiplicative identity of tag t.
func One(t Tag) any { return Default.InvokeTag(OpOne, t) }

// Power multiplies x with itself n times.
func Power(x any, n int) any { return Default.Invoke(OpPower, x, n) }

// Quot returns the quotient of a and b.
func Quot(a, b any) any { return Default.Invoke(OpQuot, a, b) }

// Mod returns the remainder of a divided by b.
func Mod(a, b any) any { return Default.Invoke(OpMod, a, b) }
