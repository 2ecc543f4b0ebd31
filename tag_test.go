// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/typeclass"
)

func TestTagPlain(t *testing.T) {
	tag := typeclass.TagOf(42)
	if tag != typeclass.PlainTag(reflect.TypeFor[int]()) {
		t.Fatalf("got %v, want plain int", tag)
	}
	if tag.String() != "int" {
		t.Fatalf("got %q, want %q", tag.String(), "int")
	}
	if tag.Family() != nil || tag.IsConstant() || tag.IsZero() {
		t.Fatalf("plain tag %v reports family %v", tag, tag.Family())
	}
	if typeclass.TagOf(celsius(1)).String() != "typeclass_test.celsius" {
		t.Fatalf("got %q", typeclass.TagOf(celsius(1)).String())
	}
}

func TestTagFamily(t *testing.T) {
	if typeclass.TagOf(typeclass.Just(1)) != typeclass.TagOf(typeclass.Nothing[string]()) {
		t.Fatal("Optional[int] and Optional[string] must share a tag")
	}
	if typeclass.TagOf(typeclass.Just(1)) != typeclass.OptionalFamily.Tag() {
		t.Fatal("Optional values must carry the Optional tag")
	}
	if got := typeclass.TagFor[typeclass.Tuple](); got != typeclass.TupleFamily.Tag() {
		t.Fatalf("TagFor[Tuple] = %v", got)
	}
	assert.Equal(t, "Optional", typeclass.OptionalFamily.Tag().String())
	assert.True(t, typeclass.TagOf(typeclass.MakePair(1, "a")).Is(typeclass.PairFamily))
}

func TestTagConstant(t *testing.T) {
	tag := typeclass.TagOf(typeclass.IntegralOf(int32(3)))
	assert.Equal(t, "IntegralConstant[int32]", tag.String())
	assert.True(t, tag.IsConstant())
	assert.Equal(t, reflect.TypeFor[int32](), tag.Type())
	assert.Equal(t, typeclass.IntegralConstant.Of(reflect.TypeFor[int32]()), tag)
	assert.NotEqual(t, tag, typeclass.TagOf(typeclass.IntegralOf(int64(3))))
	assert.True(t, typeclass.IntegralConstant.IsConstant())
	assert.False(t, typeclass.OptionalFamily.IsConstant())
}

func TestTagNil(t *testing.T) {
	if !typeclass.TagOf(nil).IsZero() {
		t.Fatal("nil must have the zero tag")
	}
	if typeclass.TagOf(nil).String() != "<nil>" {
		t.Fatalf("got %q", typeclass.TagOf(nil).String())
	}
}

func TestTagPointerToTagged(t *testing.T) {
	ptr := typeclass.PlainTag(reflect.TypeFor[*typeclass.Tuple]())
	if got := typeclass.TagFor[*typeclass.Tuple](); got != ptr {
		t.Fatalf("TagFor[*Tuple] = %v, want %v", got, ptr)
	}
	if got := typeclass.TagOf((*typeclass.Tuple)(nil)); got != ptr {
		t.Fatalf("TagOf((*Tuple)(nil)) = %v, want %v", got, ptr)
	}
	xs := typeclass.MakeTuple(1)
	assert.Equal(t, ptr, typeclass.TagOf(&xs))
	assert.Equal(t, typeclass.PlainTag(reflect.TypeFor[*typeclass.Optional[int]]()),
		typeclass.Default.TagOfType(reflect.TypeFor[*typeclass.Optional[int]]()))
	assert.Equal(t, "*typeclass.Integral[int8]", typeclass.TagFor[*typeclass.Integral[int8]]().String())

	mustPanicWith(t, typeclass.ErrNoConversion, func() {
		typeclass.ConvertTo[*typeclass.Tuple](typeclass.MakeTuple(1))
	})
}

func TestAdapt(t *testing.T) {
	r := typeclass.NewRegistry(typeclass.WithoutPrelude())
	meters := typeclass.NewFamily("Meters")
	typeclass.Adapt[float32](r, meters.Tag())

	if got := r.TagOf(float32(1.5)); got != meters.Tag() {
		t.Fatalf("TagOf adapted value = %v, want Meters", got)
	}
	if got := r.TagOfType(reflect.TypeFor[float32]()); got != meters.Tag() {
		t.Fatalf("TagOfType = %v, want Meters", got)
	}
	// adapters are per registry
	if got := typeclass.TagOf(float32(1.5)); got != tagOf[float32]() {
		t.Fatalf("Default TagOf = %v, want float32", got)
	}
	// adapting again to the same tag is allowed
	typeclass.Adapt[float32](r, meters.Tag())

	mustPanicWith(t, typeclass.ErrAmbiguousTag, func() {
		typeclass.Adapt[float32](r, typeclass.NewFamily("Feet").Tag())
	})
	mustPanicWith(t, typeclass.ErrAmbiguousTag, func() {
		typeclass.Adapt[typeclass.Tuple](r, meters.Tag())
	})

	r.Seal()
	mustPanicWith(t, typeclass.ErrSealed, func() {
		typeclass.Adapt[uint16](r, meters.Tag())
	})
}

func TestMatchHelpers(t *testing.T) {
	i, s := tagOf[int](), tagOf[string]()
	opt := typeclass.OptionalFamily.Tag()

	assert.True(t, typeclass.SameTags([]typeclass.Tag{i, i}))
	assert.False(t, typeclass.SameTags([]typeclass.Tag{i, s}))
	assert.True(t, typeclass.DistinctTags([]typeclass.Tag{i, s}))
	assert.False(t, typeclass.DistinctTags([]typeclass.Tag{i}))
	assert.True(t, typeclass.ForFamily(typeclass.OptionalFamily)([]typeclass.Tag{opt, opt}))
	assert.False(t, typeclass.ForFamily(typeclass.OptionalFamily)([]typeclass.Tag{opt, i}))

	both := typeclass.And(typeclass.SameTags, typeclass.ForFamily(typeclass.OptionalFamily))
	assert.True(t, both([]typeclass.Tag{opt, opt}))
	assert.False(t, both([]typeclass.Tag{i, i}))
}
