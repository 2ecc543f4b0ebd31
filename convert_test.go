// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass_test

import (
	"math/big"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/typeclass"
)

func TestConvertNumeric(t *testing.T) {
	if got := typeclass.Convert(int32(7), tagOf[int64]()); got != int64(7) {
		t.Fatalf("Convert(int32(7), int64) = %v (%T)", got, got)
	}
	if got := typeclass.ConvertTo[float64](int32(3)); got != 3.0 {
		t.Fatalf("ConvertTo[float64](3) = %v", got)
	}
	// explicit conversions truncate like Go conversions
	if got := typeclass.ConvertTo[int8](int64(300)); got != int8(44) {
		t.Fatalf("ConvertTo[int8](300) = %v", got)
	}
	kind, ok := typeclass.Default.Conversion(tagOf[int64](), tagOf[int32]())
	assert.True(t, ok)
	assert.Equal(t, typeclass.Explicit, kind)
	kind, ok = typeclass.Default.Conversion(tagOf[int32](), tagOf[int64]())
	assert.True(t, ok)
	assert.Equal(t, typeclass.Embedding, kind)
	assert.Equal(t, "embedding", kind.String())
}

func TestConvertIdentity(t *testing.T) {
	v := typeclass.MakeTuple(1, 2)
	got := typeclass.Convert(v, typeclass.TupleFamily.Tag())
	assert.Equal(t, v, got)
}

func TestConvertConstant(t *testing.T) {
	c := typeclass.IntegralOf(int32(5))
	assert.Equal(t, int32(5), typeclass.Convert(c, tagOf[int32]()))
	assert.Equal(t, int32(5), typeclass.Value(c))
	assert.Equal(t, int32(5), c.Value())
	assert.Equal(t, int64(5), typeclass.ConvertTo[int64](c))
	assert.Equal(t, typeclass.CanonicalOf(int64(5)),
		typeclass.Convert(c, typeclass.CanonicalConstant.Of(reflect.TypeFor[int64]())))
	assert.Equal(t, typeclass.IntegralOf(int64(5)), typeclass.ConvertTo[typeclass.Integral[int64]](c))
}

func TestConvertMissing(t *testing.T) {
	_, err := typeclass.Default.TryConvert("x", tagOf[int]())
	assert.ErrorIs(t, err, typeclass.ErrNoConversion)
	mustPanicWith(t, typeclass.ErrNoConversion, func() {
		typeclass.Convert("x", tagOf[int]())
	})
	mustPanicWith(t, typeclass.ErrNoConversion, func() {
		typeclass.Convert(nil, tagOf[int]())
	})
	// a constant family without a value slot has no conversions
	long := typeclass.NewConstantFamily("Long", nil)
	_, ok := typeclass.Default.Conversion(long.Of(reflect.TypeFor[int64]()), tagOf[int64]())
	assert.False(t, ok)
}

func TestRegisterConversion(t *testing.T) {
	r := typeclass.NewRegistry(typeclass.WithoutPrelude())
	fahrenheit := typeclass.NewFamily("Fahrenheit").Tag()
	r.RegisterConversion(tagOf[celsius](), fahrenheit, typeclass.Explicit, func(_ *typeclass.Registry, v any) any {
		return float64(v.(celsius))*9/5 + 32
	})
	mustPanicWith(t, typeclass.ErrAmbiguousConversion, func() {
		r.RegisterConversion(tagOf[celsius](), fahrenheit, typeclass.Embedding, nil)
	})

	assert.Equal(t, 212.0, r.Convert(celsius(100), fahrenheit))
	assert.False(t, r.IsEmbedded(tagOf[celsius](), fahrenheit))
	kind, ok := r.Conversion(tagOf[celsius](), fahrenheit)
	assert.True(t, ok)
	assert.Equal(t, typeclass.Explicit, kind)
}

func TestConversionRuleAmbiguous(t *testing.T) {
	r := typeclass.NewRegistry(typeclass.WithoutPrelude())
	anything := func(*typeclass.Registry, typeclass.Tag, typeclass.Tag) (typeclass.Converter, typeclass.ConversionKind, bool) {
		return func(_ *typeclass.Registry, v any) any { return v }, typeclass.Explicit, true
	}
	r.RegisterConversionRule("first", anything)
	r.RegisterConversionRule("second", anything)
	mustPanicWith(t, typeclass.ErrAmbiguousConversion, func() {
		r.Conversion(tagOf[string](), tagOf[celsius]())
	})
	_, err := r.TryConvert("x", tagOf[celsius]())
	assert.ErrorIs(t, err, typeclass.ErrAmbiguousConversion)
}

func TestConvertFoldable(t *testing.T) {
	assert.Equal(t, typeclass.Tuple{1, "a"}, typeclass.Convert(typeclass.MakePair(1, "a"), typeclass.TupleFamily.Tag()))
	assert.Equal(t, typeclass.Tuple{2}, typeclass.ConvertTo[typeclass.Tuple](typeclass.Just(2)))
	assert.Equal(t, typeclass.Tuple{}, typeclass.ConvertTo[typeclass.Tuple](typeclass.Nothing[int]()))

	m := typeclass.Convert(typeclass.MakeTuple(typeclass.MakePair("x", 1), typeclass.MakePair("y", 2)),
		typeclass.MapFamily.Tag()).(typeclass.Map)
	require.Equal(t, 2, m.Len())
	assert.Equal(t, typeclass.Just[any](2), m.Lookup("y"))
}

func TestConvertRatio(t *testing.T) {
	got := typeclass.ConvertTo[*big.Rat](3)
	if got.Cmp(big.NewRat(3, 1)) != 0 {
		t.Fatalf("ConvertTo[*big.Rat](3) = %v", got)
	}
	got = typeclass.ConvertTo[*big.Rat](typeclass.IntegralOf(uint8(7)))
	if got.Cmp(big.NewRat(7, 1)) != 0 {
		t.Fatalf("ConvertTo[*big.Rat](IntegralOf(7)) = %v", got)
	}
}
