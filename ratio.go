// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"math/big"
	"reflect"
)

// RatioFamily tags *big.Rat, which the prelude adapts as an exact
// rational number.
var RatioFamily = NewFamily("Ratio")

// MakeRatio returns num/den as a *big.Rat. It panics if den is zero.
func MakeRatio(num, den int64) *big.Rat { return big.NewRat(num, den) }

// integerTag accepts predeclared integer tags and integral constants.
func integerTag(t Tag) bool {
	return (t.family == nil || t.IsConstant()) && isInteger(t.typ)
}

// registerRatio adapts *big.Rat and installs its models: Comparable,
// Orderable, Monoid, Group, Ring and IntegralDomain. Division is exact,
// so mod is always zero. Integers embed into Ratio.
func registerRatio(r *Registry) {
	tag := RatioFamily.Tag()
	Adapt[*big.Rat](r, tag)

	rat := func(v any) *big.Rat { return v.(*big.Rat) }
	r.RegisterAll(tag, Impls{
		OpEqual: func(_ *Registry, args []any) any { return rat(args[0]).Cmp(rat(args[1])) == 0 },
		OpLess:  func(_ *Registry, args []any) any { return rat(args[0]).Cmp(rat(args[1])) < 0 },
		OpPlus: func(_ *Registry, args []any) any {
			return new(big.Rat).Add(rat(args[0]), rat(args[1]))
		},
		OpZero: func(*Registry, []any) any { return new(big.Rat) },
		OpMinus: func(_ *Registry, args []any) any {
			return new(big.Rat).Sub(rat(args[0]), rat(args[1]))
		},
		OpNegate: func(_ *Registry, args []any) any { return new(big.Rat).Neg(rat(args[0])) },
		OpMult: func(_ *Registry, args []any) any {
			return new(big.Rat).Mul(rat(args[0]), rat(args[1]))
		},
		OpOne: func(*Registry, []any) any { return big.NewRat(1, 1) },
		OpQuot: func(_ *Registry, args []any) any {
			return new(big.Rat).Quo(rat(args[0]), rat(args[1]))
		},
		OpMod: func(*Registry, []any) any { return new(big.Rat) },
	})

	r.RegisterCommonRule("ratio.integer", func(_ CommonScope, a, b Tag) (Tag, bool) {
		if a == tag && integerTag(b) {
			return tag, true
		}
		return Tag{}, false
	})
	r.RegisterConversionRule("integer.ratio", func(_ *Registry, from, to Tag) (Converter, ConversionKind, bool) {
		if to != tag || !integerTag(from) {
			return nil, Explicit, false
		}
		return func(r *Registry, v any) any {
			if from.IsConstant() {
				v = r.Invoke(OpValue, v)
			}
			return new(big.Rat).SetInt(bigInt(v))
		}, Embedding, true
	})
}

func bigInt(v any) *big.Int {
	rv := reflect.ValueOf(v)
	if classOf(rv.Type()) == signedInt {
		return big.NewInt(rv.Int())
	}
	return new(big.Int).SetUint64(rv.Uint())
}
