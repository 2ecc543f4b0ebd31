// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass_test

import (
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"code.hybscloud.com/typeclass"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

var numericTypes = []reflect.Type{
	reflect.TypeFor[int](), reflect.TypeFor[int8](), reflect.TypeFor[int16](), reflect.TypeFor[int32](),
	reflect.TypeFor[int64](), reflect.TypeFor[uint](), reflect.TypeFor[uint8](), reflect.TypeFor[uint16](),
	reflect.TypeFor[uint32](), reflect.TypeFor[uint64](), reflect.TypeFor[uintptr](),
	reflect.TypeFor[float32](), reflect.TypeFor[float64](),
}

// --- Group 1: Common type laws ---

// TestPropertyCommonCommutative: Common(a, b) ≡ Common(b, a)
func TestPropertyCommonCommutative(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := typeclass.PlainTag(numericTypes[rng.IntN(len(numericTypes))])
		b := typeclass.PlainTag(numericTypes[rng.IntN(len(numericTypes))])
		ab, okAB := typeclass.Common(a, b)
		ba, okBA := typeclass.Common(b, a)
		if ab != ba || okAB != okBA {
			t.Fatalf("Common(%v, %v) = %v, but Common(%v, %v) = %v", a, b, ab, b, a, ba)
		}
		if !okAB {
			t.Fatalf("predeclared numeric types %v and %v must have a common type", a, b)
		}
	}
}

// TestPropertyCommonIdempotent: Common(a, a) ≡ a
func TestPropertyCommonIdempotent(t *testing.T) {
	for _, rt := range numericTypes {
		a := typeclass.PlainTag(rt)
		if c, ok := typeclass.Common(a, a); !ok || c != a {
			t.Fatalf("Common(%v, %v) = %v", a, a, c)
		}
	}
}

// TestPropertyEmbeddingIntoCommon: an embedding into the common type
// exists for at least the wider operand.
func TestPropertyEmbeddingIntoCommon(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := typeclass.PlainTag(numericTypes[rng.IntN(len(numericTypes))])
		b := typeclass.PlainTag(numericTypes[rng.IntN(len(numericTypes))])
		c, _ := typeclass.Common(a, b)
		if !typeclass.IsEmbedded(a, c) && !typeclass.IsEmbedded(b, c) {
			t.Fatalf("neither %v nor %v embeds into their common type %v", a, b, c)
		}
	}
}

// --- Group 2: Comparable and Orderable laws ---

// TestPropertyEqualReflexive: Equal(x, x)
func TestPropertyEqualReflexive(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		x := randInt(rng)
		for _, v := range []any{x, int32(x), float64(x), typeclass.Just(x), typeclass.MakeTuple(x, -x), typeclass.IntegralOf(x)} {
			if !typeclass.Equal(v, v) {
				t.Fatalf("Equal(%v, %v) = false", v, v)
			}
		}
	}
}

// TestPropertyLiftedEqual: Equal(int32(x), float64(x)) ≡ Equal(float64(x), int32(x)) ≡ true
func TestPropertyLiftedEqual(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		x := randInt(rng)
		if !typeclass.Equal(int32(x), float64(x)) || !typeclass.Equal(float64(x), int32(x)) {
			t.Fatalf("lifted equality fails for %d", x)
		}
		if typeclass.Equal(int16(x), int64(x+1)) {
			t.Fatalf("Equal(%d, %d) = true", x, x+1)
		}
	}
}

// TestPropertyOrderTrichotomy: exactly one of a < b, a == b, b < a
func TestPropertyOrderTrichotomy(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, b := randInt(rng), randInt(rng)
		n := 0
		for _, holds := range []bool{typeclass.Less(a, b), typeclass.Equal(a, b), typeclass.Less(b, a)} {
			if holds {
				n++
			}
		}
		if n != 1 {
			t.Fatalf("trichotomy fails for %d, %d", a, b)
		}
		if typeclass.Min(a, b) != min(a, b) || typeclass.Max(a, b) != max(a, b) {
			t.Fatalf("Min/Max(%d, %d)", a, b)
		}
	}
}

// --- Group 3: Functor and Foldable laws ---

// TestPropertyFunctorIdentity: Transform(xs, id) ≡ xs
func TestPropertyFunctorIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	id := func(x any) any { return x }
	for range propertyN {
		xs := make(typeclass.Tuple, rng.IntN(6))
		for i := range xs {
			xs[i] = randInt(rng)
		}
		if !typeclass.Equal(typeclass.Transform(xs, id), xs) {
			t.Fatalf("Transform(%v, id) != %v", xs, xs)
		}
	}
}

// TestPropertyFunctorComposition: Transform(Transform(xs, f), g) ≡ Transform(xs, g∘f)
func TestPropertyFunctorComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) int { return x + 3 }
	g := func(x int) int { return x * 2 }
	for range propertyN {
		x := randInt(rng)
		for _, xs := range []any{typeclass.Just(x), typeclass.MakeTuple(x, x+1)} {
			left := typeclass.Transform(typeclass.Transform(xs, f), g)
			right := typeclass.Transform(xs, func(x int) int { return g(f(x)) })
			if !typeclass.Equal(left, right) {
				t.Fatalf("composition: %v != %v", left, right)
			}
		}
	}
}

// TestPropertyFoldLength: FoldLeft(xs, 0, count) ≡ Length(xs)
func TestPropertyFoldLength(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	count := func(n int, _ any) int { return n + 1 }
	for range propertyN {
		xs := make(typeclass.Tuple, rng.IntN(8))
		if got := typeclass.FoldLeft(xs, 0, count); got != typeclass.Length(xs) {
			t.Fatalf("fold count %v != length %d", got, typeclass.Length(xs))
		}
	}
}

// --- Group 4: Generated properties ---

func TestPropertyGenerated(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("int32 round-trips through int64", prop.ForAll(
		func(x int32) bool {
			wide := typeclass.ConvertTo[int64](x)
			return typeclass.ConvertTo[int32](wide) == x
		},
		gen.Int32(),
	))

	properties.Property("plus is commutative across widths", prop.ForAll(
		func(a int32, b int64) bool {
			return typeclass.Plus(a, b) == typeclass.Plus(b, a)
		},
		gen.Int32(), gen.Int64(),
	))

	properties.Property("minus inverts plus", prop.ForAll(
		func(a, b int64) bool {
			return typeclass.Minus(typeclass.Plus(a, b), b) == a
		},
		gen.Int64(), gen.Int64(),
	))

	properties.Property("negate is derived from minus and zero", prop.ForAll(
		func(x int) bool {
			return typeclass.Plus(x, typeclass.Negate(x)) == 0
		},
		gen.Int(),
	))

	properties.Property("constants add like their values", prop.ForAll(
		func(a, b int16) bool {
			sum := typeclass.Plus(typeclass.IntegralOf(a), typeclass.IntegralOf(b))
			return typeclass.Value(sum) == a+b
		},
		gen.Int16(), gen.Int16(),
	))

	properties.Property("not_equal negates equal", prop.ForAll(
		func(a, b string) bool {
			return typeclass.NotEqual(a, b) == (a != b)
		},
		gen.AlphaString(), gen.AlphaString(),
	))

	properties.TestingRun(t)
}
