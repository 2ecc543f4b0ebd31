// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"code.hybscloud.com/typeclass"
)

// metersRegistry builds a small registry touching every manifest section.
func metersRegistry() *typeclass.Registry {
	fam := typeclass.NewFamily("Meters")
	meters := fam.Tag()
	r := typeclass.NewRegistry(typeclass.WithoutPrelude())
	typeclass.Adapt[float32](r, meters)
	r.Register(typeclass.OpEqual, func(_ *typeclass.Registry, args []any) any {
		return args[0] == args[1]
	}, meters, meters)
	r.Register(typeclass.OpZero, func(*typeclass.Registry, []any) any { return float32(0) }, meters)
	r.RegisterWhen(typeclass.OpLess, "meters.less", typeclass.ForFamily(fam), func(_ *typeclass.Registry, args []any) any {
		return args[0].(float32) < args[1].(float32)
	})
	r.RegisterCommon(meters, tagOf[float64](), tagOf[float64]())
	r.RegisterConversion(meters, tagOf[float64](), typeclass.Embedding, func(_ *typeclass.Registry, v any) any {
		return float64(v.(float32))
	})
	r.RegisterCommonRule("meters.feet", func(typeclass.CommonScope, typeclass.Tag, typeclass.Tag) (typeclass.Tag, bool) {
		return typeclass.Tag{}, false
	})
	r.RegisterConversionRule("meters.widen", func(*typeclass.Registry, typeclass.Tag, typeclass.Tag) (typeclass.Converter, typeclass.ConversionKind, bool) {
		return nil, typeclass.Explicit, false
	})
	return r
}

func TestManifestText(t *testing.T) {
	r := metersRegistry()
	var buf bytes.Buffer
	require.NoError(t, r.Manifest().WriteText(&buf))
	if r.Sealed() {
		t.Fatal("Manifest must not seal the registry")
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "manifest", buf.Bytes())
}

func TestManifestYAML(t *testing.T) {
	m := metersRegistry().Manifest()
	var buf bytes.Buffer
	require.NoError(t, m.WriteYAML(&buf))

	var decoded typeclass.Manifest
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, m, decoded)
	require.Len(t, decoded.Concepts, 3)
	require.Equal(t, [][]string{{"plus", "zero"}}, decoded.Concepts[1].Minimal)
}

func TestManifestCommonSameNames(t *testing.T) {
	r := typeclass.NewRegistry(typeclass.WithoutPrelude())
	a, b := typeclass.NewFamily("Meters").Tag(), typeclass.NewFamily("Meters").Tag()
	r.RegisterCommon(a, b, tagOf[float64]())
	r.RegisterCommon(a, tagOf[float64](), tagOf[float64]())

	require.Equal(t, []typeclass.CommonInfo{
		{A: "Meters", B: "Meters", Common: "float64"},
		{A: "Meters", B: "float64", Common: "float64"},
	}, r.Manifest().Common)
}

func TestManifestPrelude(t *testing.T) {
	m := typeclass.Default.Manifest()
	names := make(map[string]bool)
	for _, c := range m.Concepts {
		names[c.Name] = true
	}
	for _, want := range []string{"Comparable", "Orderable", "Constant", "Functor", "Applicative", "Monad",
		"MonadPlus", "Foldable", "Searchable", "Monoid", "Group", "Ring", "IntegralDomain", "Product"} {
		if !names[want] {
			t.Errorf("prelude manifest lacks concept %s", want)
		}
	}
	require.Contains(t, m.Adapters, typeclass.AdapterInfo{Type: "*big.Rat", Tag: "Ratio"})
	require.Contains(t, m.Rules, typeclass.RuleInfo{Kind: "common", Name: "ratio.integer"})
}
